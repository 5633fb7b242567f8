// Package statebuffer implements the measurement and state retention buffer
// of a modular multi-sensor state-estimation pipeline.
//
// The buffer is the single shared, time-ordered store of everything the
// estimator has produced or consumed: propagated core states, sensor-specific
// states, raw measurements, and the metadata describing how each record was
// produced. Sensors deliver asynchronously and sometimes out of temporal
// order; a fixed-lag smoother reads past entries back out of the buffer to
// re-linearize and re-propagate when a delayed measurement arrives.
//
// The package provides:
// - Stable sorted insertion, including out-of-order and synthesized entries
// - A capacity-bound retention policy that never evicts the sole remaining
//   state of an active sensor, even when that forces a transient overshoot
// - Point and range queries over entries, states, and measurements
// - Maintenance operations to invalidate trailing state history and to tear
//   down a deregistered sensor
//
// Basic usage:
//
//	buf := statebuffer.New(statebuffer.DefaultConfig())
//
//	pose := statebuffer.NewSensorHandle("pose_1")
//	entry := statebuffer.NewEntry(stamp, payload, pose, statebuffer.MetadataMeasurement)
//
//	buf.AddEntrySorted(entry)
//	buf.RemoveOverflowEntries()
//
//	if state, _, ok := buf.ClosestState(stamp); ok {
//		// run the filter step from state
//	}
//
// A Buffer is designed for single-threaded, synchronous use within one
// estimation pipeline and performs no internal locking. Callers that share a
// buffer across goroutines must serialize all mutating operations externally;
// queries may interleave with each other but not with mutation.
package statebuffer

import (
	"io"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultMaxBufferSize is the retention capacity used when none is
	// configured. Sized for a fixed-lag window of a few seconds of
	// multi-sensor data.
	DefaultMaxBufferSize = 100
	// DefaultKeepLastSensorHandle enables the retention guard that keeps the
	// sole state-bearing entry of every sensor alive during eviction.
	DefaultKeepLastSensorHandle = true
)

// Config holds construction-time configuration for a Buffer.
type Config struct {
	// MaxBufferSize is the retention capacity. Non-positive values are
	// ignored and the default capacity is retained.
	MaxBufferSize int
	// KeepLastSensorHandle guards the sole state-bearing entry of each sensor
	// against eviction.
	KeepLastSensorHandle bool
	// Logger receives diagnostics (overshoot warnings, eviction traces).
	// When nil, diagnostics are discarded.
	Logger logrus.FieldLogger
	// Color configures the terminal rendering used by Dump.
	Color ColorConfig
}

// DefaultConfig returns the default buffer configuration.
func DefaultConfig() Config {
	return Config{
		MaxBufferSize:        DefaultMaxBufferSize,
		KeepLastSensorHandle: DefaultKeepLastSensorHandle,
		Logger:               nil,
		Color:                DefaultColorConfig(),
	}
}

// Buffer is the time-ordered collection of entries, the retention policy,
// and the query surface.
//
// Entries are kept sorted ascending by timestamp; a new entry with a
// timestamp equal to existing ones is placed after all of them. The buffer
// owns its Entry records by value. It references SensorHandle identities but
// never creates or destroys them; those are owned by the sensor modules.
type Buffer struct {
	entries              []Entry
	maxBufferSize        int
	keepLastSensorHandle bool
	color                ColorConfig
	logger               logrus.FieldLogger
}

// New creates an empty buffer from the given configuration. A non-positive
// MaxBufferSize is rejected by silently retaining the default capacity,
// mirroring the setter contract.
func New(cfg Config) *Buffer {
	buf := &Buffer{
		maxBufferSize:        DefaultMaxBufferSize,
		keepLastSensorHandle: cfg.KeepLastSensorHandle,
		color:                cfg.Color,
		logger:               cfg.Logger,
	}

	if buf.logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		buf.logger = discard
	}

	buf.SetMaxBufferSize(cfg.MaxBufferSize)

	return buf
}

// NewWithCapacity creates a buffer with the given capacity and the remaining
// configuration at defaults. Convenience for the common single-option case.
func NewWithCapacity(maxBufferSize int) *Buffer {
	cfg := DefaultConfig()
	cfg.MaxBufferSize = maxBufferSize

	return New(cfg)
}

// Len returns the number of entries currently held.
func (b *Buffer) Len() int {
	return len(b.entries)
}

// IsEmpty reports whether the buffer holds no entries.
func (b *Buffer) IsEmpty() bool {
	return len(b.entries) == 0
}

// MaxBufferSize returns the configured retention capacity.
func (b *Buffer) MaxBufferSize() int {
	return b.maxBufferSize
}

// SetMaxBufferSize updates the retention capacity. Non-positive values are
// ignored and the previous capacity is retained; the call never fails.
// Shrinking the capacity does not evict by itself; eviction happens on the
// next RemoveOverflowEntries call.
func (b *Buffer) SetMaxBufferSize(size int) {
	if size <= 0 {
		return
	}

	b.maxBufferSize = size
}

// KeepLastSensorHandle reports whether the sole state-bearing entry of each
// sensor is guarded against eviction.
func (b *Buffer) KeepLastSensorHandle() bool {
	return b.keepLastSensorHandle
}

// IsSorted reports whether entries are in non-decreasing timestamp order.
// Sortedness is an invariant maintained by construction; this accessor exists
// for verification.
func (b *Buffer) IsSorted() bool {
	for i := 1; i < len(b.entries); i++ {
		if b.entries[i].Timestamp.Before(b.entries[i-1].Timestamp) {
			return false
		}
	}

	return true
}

// Reset removes all entries. The configured capacity is unchanged. Resetting
// an already empty buffer is a no-op.
func (b *Buffer) Reset() {
	b.entries = nil
}
