package draft

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// parseMicros reads an integral JSON number. present is false for a missing
// or null value.
func parseMicros(raw json.RawMessage) (value int64, present bool, err error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, true, fmt.Errorf("not a number: %s", raw)
	}
	if v, err := n.Int64(); err == nil {
		return v, true, nil
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt64 {
		return 0, true, fmt.Errorf("not an integer: %s", raw)
	}
	return int64(f), true, nil
}
