package parse

import "strings"

// locateHeader finds the weekday header run that anchors the tabular
// region: the first line trim-equal to the Monday token, followed by the
// remaining weekday tokens in print order. It returns the index of the
// Monday line and the number of contiguous weekday lines from that point
// (1-7). found is false when no Monday line exists, which means the
// document has no table region at all.
func locateHeader(lines []string) (start, width int, found bool) {
	for i, line := range lines {
		if strings.TrimSpace(line) == weekdays[0] {
			start = i
			found = true
			break
		}
	}
	if !found {
		return 0, 0, false
	}

	for i, day := range weekdays {
		if start+i >= len(lines) || strings.TrimSpace(lines[start+i]) != day {
			break
		}
		width++
	}

	return start, width, true
}
