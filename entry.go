package statebuffer

import "fmt"

// Metadata classifies how a buffer entry was produced.
type Metadata uint8

const (
	// MetadataMeasurement marks an entry created from a raw sensor measurement.
	MetadataMeasurement Metadata = iota
	// MetadataState marks an entry holding a propagated or updated state.
	MetadataState
	// MetadataInit marks the entry produced by a sensor initialization step.
	MetadataInit
	// MetadataOutOfOrder marks an entry whose timestamp was older than the
	// buffer's newest entry at the time the producer handed it over.
	MetadataOutOfOrder
	// MetadataAutoAdd marks an entry synthesized by the buffer itself to
	// bridge a temporal gap rather than supplied by a producer.
	MetadataAutoAdd
)

// IsValid reports whether the metadata value is part of the closed tag set.
func (m Metadata) IsValid() bool {
	switch m {
	case MetadataMeasurement, MetadataState, MetadataInit, MetadataOutOfOrder, MetadataAutoAdd:
		return true
	default:
		return false
	}
}

// String returns the string representation of the metadata tag.
func (m Metadata) String() string {
	switch m {
	case MetadataMeasurement:
		return "measurement"
	case MetadataState:
		return "state"
	case MetadataInit:
		return "init"
	case MetadataOutOfOrder:
		return "out_of_order"
	case MetadataAutoAdd:
		return "auto_add"
	default:
		return "unknown"
	}
}

// Entry is one timestamped record in the buffer: the payload produced or
// consumed at that instant, the identity of the sensor it belongs to, and a
// metadata tag classifying how the record came to be.
type Entry struct {
	// Timestamp is the primary ordering key.
	Timestamp Stamp
	// Data carries the optional core state, sensor state, and measurement.
	Data Payload
	// Sensor identifies the producer this entry belongs to.
	Sensor SensorHandle
	// Metadata classifies how the entry was produced.
	Metadata Metadata
}

// NewEntry assembles an entry from its parts.
func NewEntry(timestamp Stamp, data Payload, sensor SensorHandle, metadata Metadata) Entry {
	return Entry{
		Timestamp: timestamp,
		Data:      data,
		Sensor:    sensor,
		Metadata:  metadata,
	}
}

// HasStates reports whether the entry carries both a core and a sensor state.
func (e Entry) HasStates() bool {
	return e.Data.HasStates()
}

// HasMeasurement reports whether the entry carries a raw measurement.
func (e Entry) HasMeasurement() bool {
	return e.Data.HasMeasurement()
}

// HasCoreStateOnly reports whether the entry carries a core state without a
// sensor state.
func (e Entry) HasCoreStateOnly() bool {
	return e.Data.HasCoreState() && e.Data.SensorState() == nil
}

// String renders the entry for diagnostics.
func (e Entry) String() string {
	return fmt.Sprintf("t=%s sensor=%s meta=%s states=%t measurement=%t",
		e.Timestamp, e.Sensor, e.Metadata, e.HasStates(), e.HasMeasurement())
}
