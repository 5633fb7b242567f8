package statebuffer

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// AddEntrySorted inserts the entry preserving ascending timestamp order and
// returns the index it ended up at. An entry with a timestamp equal to
// existing ones is placed after all of them, so records produced later stay
// later even on timestamp ties.
//
// Insertion never evicts; callers run RemoveOverflowEntries as a separate,
// explicit step once the surrounding filter iteration is done with the entry.
func (b *Buffer) AddEntrySorted(entry Entry) int {
	return b.InsertDataAtTimestamp(entry)
}

// InsertDataAtTimestamp places the entry by timestamp rank with the same
// semantics as AddEntrySorted and returns the final index. Used by callers
// that need only the index, never eviction.
func (b *Buffer) InsertDataAtTimestamp(entry Entry) int {
	// Upper bound: first index whose timestamp is strictly newer. Inserting
	// there keeps equal-timestamp peers ahead of the new entry.
	idx := sort.Search(len(b.entries), func(i int) bool {
		return b.entries[i].Timestamp.After(entry.Timestamp)
	})

	b.entries = append(b.entries, Entry{})
	copy(b.entries[idx+1:], b.entries[idx:])
	b.entries[idx] = entry

	return idx
}

// InsertIntermediateData inserts a synthesized measurement/state pair at a
// shared timestamp to bridge a temporal gap, e.g. a propagation step needed
// only to support another sensor's update. Both entries are retagged
// MetadataAutoAdd, marking them for removal when the state window they
// support is invalidated.
//
// The pair is validated before any mutation: both entries must carry the
// same timestamp, meas must be tagged MetadataMeasurement, and state must be
// tagged MetadataState. Returns false and leaves the buffer untouched when
// the validation fails.
func (b *Buffer) InsertIntermediateData(meas, state Entry) bool {
	if !meas.Timestamp.Equal(state.Timestamp) {
		return false
	}

	if meas.Metadata != MetadataMeasurement || state.Metadata != MetadataState {
		return false
	}

	meas.Metadata = MetadataAutoAdd
	state.Metadata = MetadataAutoAdd

	// Tie-stability places the measurement first, then the state after it.
	b.InsertDataAtTimestamp(meas)
	b.InsertDataAtTimestamp(state)

	b.logger.WithFields(logrus.Fields{
		"timestamp": meas.Timestamp.String(),
		"sensor":    meas.Sensor.String(),
	}).Debug("inserted intermediate measurement/state pair")

	return true
}

// IntermediateEntryPair returns the newest synthesized state-bearing entry
// together with the state-bearing entry of the given sensor at the same
// timestamp. The pair is what a consumer needs to continue propagation after
// an update that was supported by a bridged gap. Returns false when no such
// pair exists.
func (b *Buffer) IntermediateEntryPair(sensor SensorHandle) (autoState, sensorState Entry, ok bool) {
	for i := len(b.entries) - 1; i >= 0; i-- {
		candidate := b.entries[i]
		if candidate.Metadata != MetadataAutoAdd || !candidate.HasStates() {
			continue
		}

		for j := len(b.entries) - 1; j >= 0; j-- {
			peer := b.entries[j]
			if peer.Timestamp.Equal(candidate.Timestamp) && peer.Sensor == sensor && peer.HasStates() {
				return candidate, peer, true
			}
		}
	}

	return Entry{}, Entry{}, false
}
