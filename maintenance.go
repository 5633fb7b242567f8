package statebuffer

import "github.com/sirupsen/logrus"

// ClearStatesStartingAtIndex strips the core and sensor state from every
// entry at or after idx, leaving raw measurements untouched so the work can
// be redone. Entries tagged MetadataAutoAdd in that range were synthesized
// purely to bridge a gap and are removed entirely rather than left as empty
// records.
//
// This invalidates a trailing window of state history, typically because an
// out-of-order measurement requires re-propagation from an earlier state.
func (b *Buffer) ClearStatesStartingAtIndex(idx int) {
	if idx < 0 {
		idx = 0
	}

	if idx >= len(b.entries) {
		return
	}

	kept := b.entries[:idx]

	for _, entry := range b.entries[idx:] {
		if entry.Metadata == MetadataAutoAdd {
			continue
		}

		entry.Data.ClearStates()
		kept = append(kept, entry)
	}

	b.entries = kept
}

// RemoveSensorFromBuffer removes every entry belonging to the given sensor,
// unconditionally. The retention guard does not apply: the sensor is being
// deregistered entirely and no future propagation will need its state.
func (b *Buffer) RemoveSensorFromBuffer(sensor SensorHandle) {
	kept := b.entries[:0]
	removed := 0

	for _, entry := range b.entries {
		if entry.Sensor == sensor {
			removed++

			continue
		}

		kept = append(kept, entry)
	}

	b.entries = kept

	b.logger.WithFields(logrus.Fields{
		"sensor":  sensor.String(),
		"removed": removed,
	}).Info("removed sensor from buffer")
}
