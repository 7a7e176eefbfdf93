package textfilter

import "testing"

func TestFilterRemovesFillers(t *testing.T) {
	f, err := New([]string{"嗯", "那么"}, nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	got := f.Apply("嗯今天那么我们\n开始嗯")
	if got != "今天我们\n开始" {
		t.Errorf("Apply() = %q", got)
	}
}

func TestFilterAppliesReplacementsAfterFillers(t *testing.T) {
	f, err := New(
		[]string{"uh "},
		[]Replacement{
			{Old: "^hello", New: "hi"},
			{Old: `(\d+) apples`, New: "$1 pears"},
		},
	)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	got := f.Apply("uh hello there\nhello 3 apples")
	want := "hi there\nhi 3 pears"
	if got != want {
		t.Errorf("Apply() = %q, want %q", got, want)
	}
}

func TestFilterIgnoresBlankPatterns(t *testing.T) {
	f, err := New([]string{"", "  "}, []Replacement{{Old: " ", New: "x"}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if !f.Empty() {
		t.Error("expected filter without rules")
	}
	if got := f.Apply("keep me"); got != "keep me" {
		t.Errorf("Apply() = %q", got)
	}

	var nilFilter *Filter
	if !nilFilter.Empty() || nilFilter.Apply("x") != "x" {
		t.Error("nil filter should be a no-op")
	}
}

func TestFilterRejectsInvalidPattern(t *testing.T) {
	if _, err := New([]string{"("}, nil); err == nil {
		t.Error("expected error for invalid filler pattern")
	}
	if _, err := New(nil, []Replacement{{Old: "[", New: ""}}); err == nil {
		t.Error("expected error for invalid replacement pattern")
	}
}

func TestFilterNormalizesText(t *testing.T) {
	f, err := New(nil, []Replacement{{Old: "caf\u00e9", New: "cafe"}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	// decomposed e + combining acute accent
	if got := f.Apply("cafe\u0301"); got != "cafe" {
		t.Errorf("Apply() = %q, want %q", got, "cafe")
	}
}

func TestDefaultFillers(t *testing.T) {
	f, err := New(DefaultFillers, nil)
	if err != nil {
		t.Fatalf("default fillers must compile: %v", err)
	}
	if got := f.Apply("然后呢"); got != "" {
		t.Errorf("Apply() = %q, want empty", got)
	}
}

func TestParseReplacement(t *testing.T) {
	tests := []struct {
		in      string
		want    Replacement
		wantErr bool
	}{
		{"a=b", Replacement{Old: "a", New: "b"}, false},
		{"a=", Replacement{Old: "a", New: ""}, false},
		{"x=y=z", Replacement{Old: "x", New: "y=z"}, false},
		{"novalue", Replacement{}, true},
		{"=b", Replacement{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseReplacement(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseReplacement(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseReplacement(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
