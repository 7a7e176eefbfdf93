package export

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mgpai22/draftsub/internal/subtitle"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "untitled"},
		{"   ", "untitled"},
		{"...", "untitled"},
		{"clip", "clip"},
		{"a/b\\c:d*e", "a-b-c-d-e"},
		{`what?"<>|`, "what"},
		{"tab\tand  spaces", "tab and spaces"},
		{"trailing dots..", "trailing dots"},
		{"第一集", "第一集"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SanitizeFileName(tt.in); got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeFileNameTruncatesOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("字", 100) // 300 bytes
	got := SanitizeFileName(long)
	if len(got) > maxFileNameLen {
		t.Errorf("expected at most %d bytes, got %d", maxFileNameLen, len(got))
	}
	if !utf8.ValidString(got) {
		t.Errorf("truncation split a rune: %q", got)
	}
}

func TestWithExtension(t *testing.T) {
	if got := WithExtension("subs", subtitle.FormatSRT); got != "subs.srt" {
		t.Errorf("got %q", got)
	}
	if got := WithExtension("subs.SRT", subtitle.FormatSRT); got != "subs.SRT" {
		t.Errorf("got %q", got)
	}
	if got := WithExtension("subs.srt", subtitle.FormatTXT); got != "subs.srt.txt" {
		t.Errorf("got %q", got)
	}
}

func TestStripExtension(t *testing.T) {
	if got := StripExtension("a.b.mp4"); got != "a.b" {
		t.Errorf("got %q", got)
	}
	if got := StripExtension("noext"); got != "noext" {
		t.Errorf("got %q", got)
	}
}
