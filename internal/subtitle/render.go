package subtitle

import (
	"fmt"
	"strings"
)

// ToSRT renders entries as SubRip blocks numbered from startIndex. Every
// block, including the last, ends with a blank line.
func ToSRT(entries []Entry, startIndex int) string {
	var sb strings.Builder
	for i, entry := range entries {
		sb.WriteString(fmt.Sprintf("%d\n", startIndex+i))

		// timestamps: 00:00:00,000 --> 00:00:00,000
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatSRTTime(entry.StartTime),
			formatSRTTime(entry.EndTime)))

		sb.WriteString(entry.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// ToPlainText joins entry texts with a single newline.
func ToPlainText(entries []Entry) string {
	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = entry.Text
	}
	return strings.Join(lines, "\n")
}

// ToVTT renders entries as a WebVTT document with numbered cues.
func ToVTT(entries []Entry, startIndex int) string {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")
	for i, entry := range entries {
		// optional cue identifier
		sb.WriteString(fmt.Sprintf("%d\n", startIndex+i))

		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatVTTTime(entry.StartTime),
			formatVTTTime(entry.EndTime)))

		sb.WriteString(entry.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// Render renders sub in the requested format.
func Render(sub *Subtitle, format Format) (string, error) {
	switch format {
	case FormatSRT:
		return ToSRT(sub.Entries, sub.StartIndex), nil
	case FormatVTT:
		return ToVTT(sub.Entries, sub.StartIndex), nil
	case FormatTXT:
		return ToPlainText(sub.Entries), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}
