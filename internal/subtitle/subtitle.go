package subtitle

import (
	"time"
)

// represents single subtitle entry
//
// StartTime and EndTime already include any user offset; they are
// rendered as-is by the serializers.
type Entry struct {
	Index     int
	StartTime time.Duration
	EndTime   time.Duration
	Text      string
}

// represents complete subtitle track
type Subtitle struct {
	Entries    []Entry
	StartIndex int
	Format     string
}

// represents supported subtitle formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
	FormatTXT Format = "txt"
)

// interface for writing subtitles to files
type Writer interface {
	Write(subtitle *Subtitle, path string) error
}
