package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	srtTimingRegex = regexp.MustCompile(
		`(\d{2,}):(\d{2}):(\d{2}),(\d{3})\s*-->\s*(\d{2,}):(\d{2}):(\d{2}),(\d{3})`,
	)
	vttTimingRegex = regexp.MustCompile(
		`(\d{2,}):(\d{2}):(\d{2})\.(\d{3})\s*-->\s*(\d{2,}):(\d{2}):(\d{2})\.(\d{3})`,
	)
)

// readCues parses numbered timing blocks. A numeric line directly before the
// timing line is taken as the cue index; VTT header, NOTE and STYLE blocks
// are skipped.
func readCues(r io.Reader, format Format) ([]Entry, error) {
	timing := srtTimingRegex
	if format == FormatVTT {
		timing = vttTimingRegex
	}

	var (
		entries   []Entry
		current   *Entry
		textLines []string
		pending   = -1
		lineNum   int
		skipBlock bool
	)

	flush := func() {
		if current != nil {
			current.Text = strings.Join(textLines, "\n")
			entries = append(entries, *current)
		}
		current = nil
		textLines = nil
		pending = -1
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		lineNum++
		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			skipBlock = false
			flush()
			continue
		}
		if skipBlock {
			continue
		}

		if current == nil {
			if format == FormatVTT && (strings.HasPrefix(trimmed, "WEBVTT") ||
				strings.HasPrefix(trimmed, "NOTE") ||
				strings.HasPrefix(trimmed, "STYLE")) {
				skipBlock = true
				continue
			}

			if m := timing.FindStringSubmatch(line); len(m) == 9 {
				start, err := parseClock(m[1], m[2], m[3], m[4])
				if err != nil {
					return nil, fmt.Errorf("invalid start timestamp at line %d: %w", lineNum, err)
				}
				end, err := parseClock(m[5], m[6], m[7], m[8])
				if err != nil {
					return nil, fmt.Errorf("invalid end timestamp at line %d: %w", lineNum, err)
				}
				index := pending
				if index < 0 {
					index = len(entries) + 1
				}
				current = &Entry{Index: index, StartTime: start, EndTime: end}
				continue
			}

			if n, err := strconv.Atoi(trimmed); err == nil && pending < 0 {
				pending = n
				continue
			}
			continue
		}

		textLines = append(textLines, line)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s file: %w", strings.ToUpper(string(format)), err)
	}
	return entries, nil
}

func parseClock(hours, minutes, seconds, millis string) (time.Duration, error) {
	var parts [4]int
	for i, s := range []string{hours, minutes, seconds, millis} {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, err
		}
		parts[i] = n
	}

	return time.Duration(parts[0])*time.Hour +
		time.Duration(parts[1])*time.Minute +
		time.Duration(parts[2])*time.Second +
		time.Duration(parts[3])*time.Millisecond, nil
}
