package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// parsed subtitle file that can be edited and written back
type File interface {
	Format() Format
	Subtitle() *Subtitle
	SetText(index int, text string) error
	Write(path string) error
}

func Open(path string) (File, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var format Format
	switch ext {
	case ".srt":
		format = FormatSRT
	case ".vtt":
		format = FormatVTT
	default:
		return nil, fmt.Errorf("unsupported subtitle format: %s", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file: %w", strings.ToUpper(string(format)), err)
	}
	defer func() {
		_ = f.Close()
	}()

	entries, err := readCues(f, format)
	if err != nil {
		return nil, err
	}

	startIndex := 1
	if len(entries) > 0 && entries[0].Index > 0 {
		startIndex = entries[0].Index
	}

	return &cueFile{
		format:     format,
		entries:    entries,
		startIndex: startIndex,
	}, nil
}

// in-memory SRT or VTT file
type cueFile struct {
	format     Format
	entries    []Entry
	startIndex int
}

func (f *cueFile) Format() Format {
	return f.format
}

func (f *cueFile) Subtitle() *Subtitle {
	return &Subtitle{
		Entries:    f.entries,
		StartIndex: f.startIndex,
		Format:     string(f.format),
	}
}

func (f *cueFile) SetText(index int, text string) error {
	if index < 0 || index >= len(f.entries) {
		return fmt.Errorf(
			"index %d out of range (0-%d)",
			index,
			len(f.entries)-1,
		)
	}
	f.entries[index].Text = text
	return nil
}

func (f *cueFile) Write(path string) error {
	writer, err := NewWriter(f.format)
	if err != nil {
		return err
	}
	return writer.Write(f.Subtitle(), path)
}
