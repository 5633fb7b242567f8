package statebuffer

import "sync/atomic"

var sensorHandleSeq atomic.Uint64

// SensorHandle identifies which sensor produced an entry. It is an opaque,
// comparable value: the buffer only ever tests handles for equality and never
// inspects sensor internals. Handles are minted once per sensor by the owning
// module and must stay stable for the lifetime of the buffer.
type SensorHandle struct {
	id   uint64
	name string
}

// NewSensorHandle mints a process-unique handle carrying a human-readable
// name. Two handles created with the same name are still distinct identities.
func NewSensorHandle(name string) SensorHandle {
	return SensorHandle{
		id:   sensorHandleSeq.Add(1),
		name: name,
	}
}

// Name returns the human-readable name the handle was minted with.
func (h SensorHandle) Name() string {
	return h.name
}

// IsZero reports whether the handle is the zero value, i.e. not minted
// through NewSensorHandle.
func (h SensorHandle) IsZero() bool {
	return h.id == 0
}

// String renders the handle for diagnostics.
func (h SensorHandle) String() string {
	if h.IsZero() {
		return "<no sensor>"
	}

	return h.name
}
