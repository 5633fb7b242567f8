package statebuffer

import "github.com/sirupsen/logrus"

// RemoveOverflowEntries evicts entries until the buffer is back within its
// capacity, scanning from the oldest entry forward and skipping protected
// entries. An entry is protected when it is the only state-bearing entry of
// its sensor: evicting it would leave that sensor with no state to propagate
// from, so correctness outranks the capacity bound.
//
// When every remaining entry is protected the buffer is left over capacity.
// The overshoot is intentional and transient: it resolves as soon as any
// guarded sensor gains a second state-bearing entry.
func (b *Buffer) RemoveOverflowEntries() {
	for len(b.entries) > b.maxBufferSize {
		idx := b.oldestRemovableIndex()
		if idx < 0 {
			b.logger.WithFields(logrus.Fields{
				"length":          len(b.entries),
				"max_buffer_size": b.maxBufferSize,
			}).Warn("all entries protected, buffer exceeds capacity")

			return
		}

		b.logger.WithFields(logrus.Fields{
			"timestamp": b.entries[idx].Timestamp.String(),
			"sensor":    b.entries[idx].Sensor.String(),
		}).Debug("evicting overflow entry")

		b.removeEntryAt(idx)
	}
}

// CheckForLastSensorHandleWithState reports whether exactly one entry in the
// buffer is state-bearing for the given sensor, regardless of that entry's
// position or recency. This is the protection predicate used during eviction.
func (b *Buffer) CheckForLastSensorHandleWithState(sensor SensorHandle) bool {
	count := 0

	for i := range b.entries {
		if b.entries[i].Sensor == sensor && b.entries[i].HasStates() {
			count++
			if count > 1 {
				return false
			}
		}
	}

	return count == 1
}

// oldestRemovableIndex returns the index of the first entry, oldest forward,
// that the retention guard allows to evict, or -1 when every entry is
// protected.
func (b *Buffer) oldestRemovableIndex() int {
	if !b.keepLastSensorHandle {
		return 0
	}

	for i := range b.entries {
		if !b.isProtected(i) {
			return i
		}
	}

	return -1
}

// isProtected reports whether the entry at idx is the sole state-bearing
// entry of its sensor. Entries without state data are never protected.
func (b *Buffer) isProtected(idx int) bool {
	entry := b.entries[idx]
	if !entry.HasStates() {
		return false
	}

	return b.CheckForLastSensorHandleWithState(entry.Sensor)
}

// removeEntryAt deletes the entry at idx preserving order.
func (b *Buffer) removeEntryAt(idx int) {
	b.entries = append(b.entries[:idx], b.entries[idx+1:]...)
}
