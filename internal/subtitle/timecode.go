package subtitle

import (
	"fmt"
	"time"
)

// native draft time unit
const (
	microsPerMilli  = int64(1_000)
	microsPerSecond = int64(1_000_000)
	microsPerMinute = 60 * microsPerSecond
	microsPerHour   = 60 * microsPerMinute
)

// DefaultFrameRate is the frame rate assumed when Offset.FrameRate is unset.
const DefaultFrameRate = 25

// user-configurable shift applied to every rendered timestamp
type Offset struct {
	Hour      int
	Minute    int
	Second    int
	Frame     int
	FrameRate int
}

// Micros returns the offset in microseconds. Frames are converted with
// FrameRate (DefaultFrameRate when not positive) and floored to whole
// microseconds.
func (o Offset) Micros() int64 {
	rate := int64(o.FrameRate)
	if rate <= 0 {
		rate = DefaultFrameRate
	}
	whole := 3600*int64(o.Hour) + 60*int64(o.Minute) + int64(o.Second)
	return whole*microsPerSecond + floorDiv(int64(o.Frame)*microsPerSecond, rate)
}

// Apply shifts t (microseconds) by the offset.
func (o Offset) Apply(t int64) int64 {
	return t + o.Micros()
}

// IsZero reports whether the offset leaves timestamps unchanged.
func (o Offset) IsZero() bool {
	return o.Micros() == 0
}

// FormatTime renders a draft timestamp (microseconds) as HH:MM:SS,mmm after
// applying off. Hours are not wrapped. Negative results are rendered
// unclamped.
func FormatTime(t int64, off Offset) string {
	return formatClock(off.Apply(t), ',')
}

// converts draft microseconds to a duration
func Micros(t int64) time.Duration {
	return time.Duration(t) * time.Microsecond
}

func formatSRTTime(d time.Duration) string {
	return formatClock(d.Microseconds(), ',')
}

func formatVTTTime(d time.Duration) string {
	return formatClock(d.Microseconds(), '.')
}

func formatClock(t int64, sep byte) string {
	millis := floorDiv(t, microsPerMilli) % 1000
	seconds := floorDiv(t, microsPerSecond) % 60
	minutes := floorDiv(t, microsPerMinute) % 60
	hours := floorDiv(t, microsPerHour)

	return fmt.Sprintf("%02d:%02d:%02d%c%03d", hours, minutes, seconds, sep, millis)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
