// Package parse reconstructs a structured course schedule from the
// flattened, reading-order text of a timetable document.
//
// The source is a personal course-schedule PDF whose extracted text keeps
// no positional or table metadata, only a loosely-ordered line stream. The
// pipeline rebuilds the two-dimensional grid (day-of-week by period) from
// textual cues alone:
//
//  1. Metadata extraction — semester and student name/id, scanned across
//     all lines independently of the grid.
//  2. Header location — the contiguous 星期一..星期日 run that anchors the
//     tabular region.
//  3. Segmentation — a two-state scanner over the lines after the header,
//     classifying each as noise, a period marker, the start of a course
//     block, a block continuation, or filler. The day axis is recovered
//     from pure sequence order: the print layout emits one cell per
//     weekday, Monday first, for each period row, so an explicit modular
//     counter maps the Nth block after a marker to weekday N.
//  4. Field extraction — each assembled block yields a Course via a set of
//     independent, order-insensitive label rules (period span, weeks,
//     teacher, venue), first match wins per field.
//
// Everything degrades gracefully: absent anchors produce empty fields and
// an empty course list, never an error. Only obtaining the document text
// in the first place can fail, and that happens outside this package.
package parse
