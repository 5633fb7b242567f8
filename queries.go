package statebuffer

// Query operations. All queries are read-only scans over the sorted entry
// sequence. Failure is a data condition, not a fault: an empty buffer, no
// entry satisfying the predicate, or an out-of-range index. Queries that
// report an index return -1 on failure and a zero Entry.

// LatestEntry returns the newest entry.
func (b *Buffer) LatestEntry() (Entry, bool) {
	if len(b.entries) == 0 {
		return Entry{}, false
	}

	return b.entries[len(b.entries)-1], true
}

// OldestEntry returns the oldest entry.
func (b *Buffer) OldestEntry() (Entry, bool) {
	if len(b.entries) == 0 {
		return Entry{}, false
	}

	return b.entries[0], true
}

// EntryAtIndex returns the entry at position idx in timestamp order.
func (b *Buffer) EntryAtIndex(idx int) (Entry, bool) {
	if idx < 0 || idx >= len(b.entries) {
		return Entry{}, false
	}

	return b.entries[idx], true
}

// LatestState returns the newest state-bearing entry and its index.
func (b *Buffer) LatestState() (Entry, int, bool) {
	return b.scanNewest(func(e Entry) bool { return e.HasStates() })
}

// OldestState returns the oldest state-bearing entry and its index.
func (b *Buffer) OldestState() (Entry, int, bool) {
	return b.scanOldest(func(e Entry) bool { return e.HasStates() })
}

// OldestCoreState returns the oldest entry carrying a core state, whether or
// not a sensor state is attached, and its index.
func (b *Buffer) OldestCoreState() (Entry, int, bool) {
	return b.scanOldest(func(e Entry) bool { return e.Data.HasCoreState() })
}

// LatestInitState returns the newest state-bearing entry produced by a
// sensor initialization step, and its index.
func (b *Buffer) LatestInitState() (Entry, int, bool) {
	return b.scanNewest(func(e Entry) bool {
		return e.HasStates() && e.Metadata == MetadataInit
	})
}

// LatestSensorHandleState returns the newest state-bearing entry of the
// given sensor, and its index.
func (b *Buffer) LatestSensorHandleState(sensor SensorHandle) (Entry, int, bool) {
	return b.scanNewest(func(e Entry) bool {
		return e.Sensor == sensor && e.HasStates()
	})
}

// LatestSensorHandleMeasurement returns the newest measurement-bearing entry
// of the given sensor, and its index.
func (b *Buffer) LatestSensorHandleMeasurement(sensor SensorHandle) (Entry, int, bool) {
	return b.scanNewest(func(e Entry) bool {
		return e.Sensor == sensor && e.HasMeasurement()
	})
}

// SensorHandleMeasurements returns every measurement-bearing entry of the
// given sensor in timestamp order. Returns false when the sensor has no
// measurement in the buffer.
func (b *Buffer) SensorHandleMeasurements(sensor SensorHandle) ([]Entry, bool) {
	var entries []Entry

	for i := range b.entries {
		if b.entries[i].Sensor == sensor && b.entries[i].HasMeasurement() {
			entries = append(entries, b.entries[i])
		}
	}

	return entries, len(entries) > 0
}

// ClosestState returns the state-bearing entry whose timestamp minimizes the
// absolute distance to the query stamp, and its index. When the nearest older
// and nearest newer candidates are exactly equidistant, the newer one wins.
// A query newer than every state-bearing entry returns the newest such entry;
// there is no extrapolation. Fails when the buffer holds no state-bearing
// entry at all, even if it is not empty.
func (b *Buffer) ClosestState(timestamp Stamp) (Entry, int, bool) {
	bestIdx := -1
	var bestDist Stamp

	for i := range b.entries {
		if !b.entries[i].HasStates() {
			continue
		}

		dist := b.entries[i].Timestamp.Dist(timestamp)
		// <= so a newer candidate replaces an equidistant older one.
		if bestIdx < 0 || dist <= bestDist {
			bestIdx = i
			bestDist = dist
		}
	}

	if bestIdx < 0 {
		return Entry{}, -1, false
	}

	return b.entries[bestIdx], bestIdx, true
}

// scanNewest returns the newest entry matching the predicate and its index.
func (b *Buffer) scanNewest(match func(Entry) bool) (Entry, int, bool) {
	for i := len(b.entries) - 1; i >= 0; i-- {
		if match(b.entries[i]) {
			return b.entries[i], i, true
		}
	}

	return Entry{}, -1, false
}

// scanOldest returns the oldest entry matching the predicate and its index.
func (b *Buffer) scanOldest(match func(Entry) bool) (Entry, int, bool) {
	for i := range b.entries {
		if match(b.entries[i]) {
			return b.entries[i], i, true
		}
	}

	return Entry{}, -1, false
}
