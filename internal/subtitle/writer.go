package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SubRip format
type SRTWriter struct{}

// WebVTT format
type VTTWriter struct{}

// plain text, one subtitle per line
type TextWriter struct{}

func NewWriter(format Format) (Writer, error) {
	switch format {
	case FormatSRT:
		return &SRTWriter{}, nil
	case FormatVTT:
		return &VTTWriter{}, nil
	case FormatTXT:
		return &TextWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// writes the subtitle to an SRT file
func (w *SRTWriter) Write(sub *Subtitle, path string) error {
	return writeFile(path, ToSRT(sub.Entries, sub.StartIndex))
}

// writes the subtitle to a VTT file
func (w *VTTWriter) Write(sub *Subtitle, path string) error {
	return writeFile(path, ToVTT(sub.Entries, sub.StartIndex))
}

// writes the subtitle texts to a plain text file
func (w *TextWriter) Write(sub *Subtitle, path string) error {
	return writeFile(path, ToPlainText(sub.Entries))
}

func writeFile(path, content string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}

// ParseFormat maps a user supplied name (srt, vtt, txt, with or without a
// leading dot) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), ".") {
	case "srt":
		return FormatSRT, nil
	case "vtt":
		return FormatVTT, nil
	case "txt", "text":
		return FormatTXT, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use srt, vtt, or txt", name)
	}
}

// file extension for a format
func GetExtensionForFormat(format Format) string {
	switch format {
	case FormatSRT:
		return ".srt"
	case FormatVTT:
		return ".vtt"
	case FormatTXT:
		return ".txt"
	default:
		return ".srt"
	}
}
