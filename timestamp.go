package statebuffer

import (
	"math"
	"strconv"
)

// Stamp is the ordering key for buffer entries: seconds since an arbitrary
// epoch, with fractional precision. It is an ordered, addable scalar; the
// buffer never interprets it beyond comparison and distance.
type Stamp float64

// Add returns the sum of two stamps.
func (s Stamp) Add(other Stamp) Stamp {
	return s + other
}

// Sub returns the signed difference s - other.
func (s Stamp) Sub(other Stamp) Stamp {
	return s - other
}

// Dist returns the absolute time distance between two stamps.
func (s Stamp) Dist(other Stamp) Stamp {
	return Stamp(math.Abs(float64(s - other)))
}

// Before reports whether s is strictly older than other.
func (s Stamp) Before(other Stamp) bool {
	return s < other
}

// After reports whether s is strictly newer than other.
func (s Stamp) After(other Stamp) bool {
	return s > other
}

// Equal reports whether two stamps denote the same instant.
func (s Stamp) Equal(other Stamp) bool {
	return s == other
}

// Seconds returns the stamp as a plain float64 seconds value.
func (s Stamp) Seconds() float64 {
	return float64(s)
}

// String renders the stamp with full float precision.
func (s Stamp) String() string {
	return strconv.FormatFloat(float64(s), 'f', -1, 64)
}
