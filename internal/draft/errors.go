package draft

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput means the draft lacks the required top-level structure.
	ErrInvalidInput = errors.New("invalid draft")

	// ErrParseFailure matches every *ParseError.
	ErrParseFailure = errors.New("draft parse failed")
)

// parse stages reported in ParseError.Op
const (
	OpDecode  = "decode"
	OpSegment = "segment"
	OpClip    = "clip"
)

// ParseError reports a structural anomaly together with the element that
// caused it.
type ParseError struct {
	Op         string
	Track      int
	Segment    int
	MaterialID string
	Clip       string
	Err        error
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	sb.WriteString("parse draft")
	switch e.Op {
	case OpSegment:
		sb.WriteString(fmt.Sprintf(": track %d segment %d", e.Track, e.Segment))
		if e.MaterialID != "" {
			sb.WriteString(fmt.Sprintf(" (material %s)", e.MaterialID))
		}
	case OpClip:
		sb.WriteString(fmt.Sprintf(": clip %q", e.Clip))
	case OpDecode:
		sb.WriteString(": decode")
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParseFailure
}
