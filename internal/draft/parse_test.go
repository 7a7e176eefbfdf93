package draft

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mgpai22/draftsub/internal/subtitle"
)

func loadFixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "draft_content.json"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return data
}

func TestParseFixture(t *testing.T) {
	result, err := ParseBytes(loadFixture(t), DefaultOptions())
	if err != nil {
		t.Fatalf("ParseBytes returned error: %v", err)
	}

	wantTimeline := []string{"欢迎收看", "plain caption", "second clip line", "plain caption"}
	if len(result.Timeline.Entries) != len(wantTimeline) {
		t.Fatalf("expected %d timeline entries, got %d", len(wantTimeline), len(result.Timeline.Entries))
	}
	for i, want := range wantTimeline {
		if got := result.Timeline.Entries[i].Text; got != want {
			t.Errorf("timeline entry %d: got %q, want %q", i, got, want)
		}
	}

	wantSRT := "1\n00:00:00,000 --> 00:00:01,500\n欢迎收看\n\n" +
		"2\n00:00:02,000 --> 00:00:02,500\nplain caption\n\n" +
		"3\n00:00:06,000 --> 00:00:07,000\nsecond clip line\n\n" +
		"4\n00:00:12,000 --> 00:00:13,000\nplain caption\n\n"
	if result.Timeline.SRT != wantSRT {
		t.Errorf("timeline SRT mismatch:\n got %q\nwant %q", result.Timeline.SRT, wantSRT)
	}
	if want := "欢迎收看\nplain caption\nsecond clip line\nplain caption"; result.Timeline.Text != want {
		t.Errorf("timeline text = %q, want %q", result.Timeline.Text, want)
	}

	// intro.mp4 appears again in audios and must not get a second window
	wantWindows := []Window{
		{Name: "intro.mp4", Start: 0, End: 5_000_000},
		{Name: "main.mov", Start: 5_000_000, End: 8_000_000},
		{Name: "music.mp3", Start: 8_000_000, End: 10_000_000},
	}
	if len(result.Clips) != len(wantWindows) {
		t.Fatalf("expected %d clips, got %d", len(wantWindows), len(result.Clips))
	}
	for i, want := range wantWindows {
		if result.Clips[i].Window != want {
			t.Errorf("clip %d window = %+v, want %+v", i, result.Clips[i].Window, want)
		}
	}

	main, ok := result.Clip("main.mov")
	if !ok {
		t.Fatal("expected clip main.mov")
	}
	if want := "1\n00:00:01,000 --> 00:00:02,000\nsecond clip line\n\n"; main.SRT != want {
		t.Errorf("main.mov SRT = %q, want %q", main.SRT, want)
	}

	intro, _ := result.Clip("intro.mp4")
	if len(intro.Entries) != 2 {
		t.Errorf("expected 2 entries in intro.mp4, got %d", len(intro.Entries))
	}

	music, _ := result.Clip("music.mp3")
	if len(music.Entries) != 0 || music.SRT != "" {
		t.Errorf("expected music.mp3 to be empty, got %+v", music)
	}

	if _, ok := result.Clip("missing"); ok {
		t.Error("expected lookup of unknown clip to fail")
	}
}

func TestParseAssignsSegmentToSecondClip(t *testing.T) {
	doc := &Document{
		Materials: &Materials{
			Texts: TextTable{{ID: "t1", Content: "hello"}},
			Videos: []ClipMaterial{
				{MaterialName: "A", Duration: []byte("5000000")},
				{MaterialName: "B", Duration: []byte("3000000")},
			},
		},
		Tracks: []Track{{Segments: []RawSegment{
			{MaterialID: "t1", TargetTimerange: &TimeRange{Start: []byte("6000000"), Duration: []byte("1000000")}},
		}}},
	}

	result, err := Parse(doc, DefaultOptions())
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	a, _ := result.Clip("A")
	if len(a.Entries) != 0 {
		t.Errorf("expected clip A to be empty, got %d entries", len(a.Entries))
	}
	b, _ := result.Clip("B")
	if len(b.Entries) != 1 {
		t.Fatalf("expected 1 entry in clip B, got %d", len(b.Entries))
	}
	if b.Entries[0].StartTime != time.Second {
		t.Errorf("expected window-relative start 1s, got %v", b.Entries[0].StartTime)
	}
	if want := "1\n00:00:01,000 --> 00:00:02,000\nhello\n\n"; b.SRT != want {
		t.Errorf("clip B SRT = %q, want %q", b.SRT, want)
	}
}

func TestParseSegmentOutsideAllWindows(t *testing.T) {
	doc := &Document{
		Materials: &Materials{
			Texts:  TextTable{{ID: "t1", Content: "late"}},
			Videos: []ClipMaterial{{MaterialName: "A", Duration: []byte("1000000")}},
		},
		Tracks: []Track{{Segments: []RawSegment{
			{MaterialID: "t1", TargetTimerange: &TimeRange{Start: []byte("1000000"), Duration: []byte("10")}},
		}}},
	}

	result, err := Parse(doc, DefaultOptions())
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(result.Timeline.Entries) != 1 {
		t.Errorf("expected segment in timeline, got %d entries", len(result.Timeline.Entries))
	}
	if len(result.Clips[0].Entries) != 0 {
		t.Errorf("segment starting at a window end must not be assigned to it")
	}
}

func TestParseAppliesOptions(t *testing.T) {
	opts := Options{
		StartIndex: 0,
		Offset:     subtitle.Offset{Hour: 1, Frame: 5, FrameRate: 25},
	}
	result, err := ParseBytes(loadFixture(t), opts)
	if err != nil {
		t.Fatalf("ParseBytes returned error: %v", err)
	}

	first := result.Timeline.Entries[0]
	if first.Index != 0 {
		t.Errorf("expected first index 0, got %d", first.Index)
	}
	wantStart := time.Hour + 200*time.Millisecond
	if first.StartTime != wantStart {
		t.Errorf("expected start %v, got %v", wantStart, first.StartTime)
	}

	main, _ := result.Clip("main.mov")
	if want := "0\n01:00:01,200 --> 01:00:02,200\nsecond clip line\n\n"; main.SRT != want {
		t.Errorf("main.mov SRT = %q, want %q", main.SRT, want)
	}

	// numbering restarts for every clip
	intro, _ := result.Clip("intro.mp4")
	if intro.Entries[0].Index != 0 || intro.Entries[1].Index != 1 {
		t.Errorf("expected intro indices 0,1, got %d,%d", intro.Entries[0].Index, intro.Entries[1].Index)
	}
}

func TestParseIsDeterministic(t *testing.T) {
	data := loadFixture(t)
	first, err := ParseBytes(data, DefaultOptions())
	if err != nil {
		t.Fatalf("first parse: %v", err)
	}
	second, err := ParseBytes(data, DefaultOptions())
	if err != nil {
		t.Fatalf("second parse: %v", err)
	}

	if first.Timeline.SRT != second.Timeline.SRT || first.Timeline.Text != second.Timeline.Text {
		t.Error("timeline output differs between runs")
	}
	for i := range first.Clips {
		if first.Clips[i].SRT != second.Clips[i].SRT {
			t.Errorf("clip %s output differs between runs", first.Clips[i].Name)
		}
	}
}

func TestParseMissingMaterials(t *testing.T) {
	_, err := ParseBytes([]byte(`{"tracks": []}`), DefaultOptions())
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if errors.Is(err, ErrParseFailure) {
		t.Error("missing materials must not be reported as a parse failure")
	}

	if _, err := Parse(nil, DefaultOptions()); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for nil document, got %v", err)
	}
}

func TestParseMalformedSegment(t *testing.T) {
	tests := []struct {
		name    string
		segment string
	}{
		{"missing timerange", `{"material_id": "t1"}`},
		{"missing start", `{"material_id": "t1", "target_timerange": {"duration": 10}}`},
		{"string duration", `{"material_id": "t1", "target_timerange": {"start": 0, "duration": "long"}}`},
		{"fractional start", `{"material_id": "t1", "target_timerange": {"start": 1.5, "duration": 10}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := []byte(`{"materials": {"texts": [{"id": "t1", "content": "x"}]},
				"tracks": [{"segments": [` + tt.segment + `]}]}`)

			_, err := ParseBytes(data, DefaultOptions())
			if !errors.Is(err, ErrParseFailure) {
				t.Fatalf("expected ErrParseFailure, got %v", err)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if perr.Op != OpSegment || perr.MaterialID != "t1" || perr.Track != 0 || perr.Segment != 0 {
				t.Errorf("unexpected error context: %+v", perr)
			}
		})
	}
}

func TestParseIgnoresMalformedNonTextSegments(t *testing.T) {
	data := []byte(`{"materials": {"texts": []},
		"tracks": [{"segments": [{"material_id": "video-1"}]}]}`)
	result, err := ParseBytes(data, DefaultOptions())
	if err != nil {
		t.Fatalf("expected non-text segment to be skipped, got %v", err)
	}
	if len(result.Timeline.Entries) != 0 {
		t.Errorf("expected no entries, got %d", len(result.Timeline.Entries))
	}
}

func TestParseMalformedClipDuration(t *testing.T) {
	data := []byte(`{"materials": {"videos": [{"material_name": "a.mp4", "duration": "soon"}]}}`)
	_, err := ParseBytes(data, DefaultOptions())
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Op != OpClip || perr.Clip != "a.mp4" {
		t.Errorf("unexpected error context: %+v", perr)
	}
}

func TestDecodeSyntaxError(t *testing.T) {
	_, err := ParseBytes([]byte(`{"materials": `), DefaultOptions())
	if !errors.Is(err, ErrParseFailure) {
		t.Fatalf("expected ErrParseFailure, got %v", err)
	}
}

func TestDocumentBaseName(t *testing.T) {
	tests := []struct {
		name string
		doc  *Document
		want string
	}{
		{"nil", nil, ""},
		{"no materials", &Document{}, ""},
		{"video", &Document{Materials: &Materials{
			Videos: []ClipMaterial{{MaterialName: "clip.final.mp4"}},
			Audios: []ClipMaterial{{Name: "voice.mp3"}},
		}}, "clip.final"},
		{"audio only", &Document{Materials: &Materials{
			Audios: []ClipMaterial{{Name: "voice.mp3"}},
		}}, "voice"},
		{"no extension", &Document{Materials: &Materials{
			Videos: []ClipMaterial{{MaterialName: "recording"}},
		}}, "recording"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.doc.BaseName(); got != tt.want {
				t.Errorf("BaseName() = %q, want %q", got, tt.want)
			}
		})
	}
}
