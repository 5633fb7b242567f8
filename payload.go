package statebuffer

// Payload is the value stored per timestamp: an optional core state, an
// optional sensor-specific state, and an optional raw measurement, each
// independently present or absent.
//
// Payload values are single-owner: the buffer copies the Payload into the
// Entry at insertion time and producers must not mutate the referenced state
// or measurement objects afterwards. A payload carrying neither states nor a
// measurement is not a meaningful record and should not be inserted.
type Payload struct {
	coreState   any
	sensorState any
	measurement any
}

// NewStatePayload returns a payload carrying a core and sensor state pair.
func NewStatePayload(coreState, sensorState any) Payload {
	var p Payload

	p.SetStates(coreState, sensorState)

	return p
}

// NewMeasurementPayload returns a payload carrying a raw measurement only.
func NewMeasurementPayload(measurement any) Payload {
	var p Payload

	p.SetMeasurement(measurement)

	return p
}

// SetStates attaches a core and sensor state pair to the payload.
func (p *Payload) SetStates(coreState, sensorState any) {
	p.coreState = coreState
	p.sensorState = sensorState
}

// SetMeasurement attaches a raw measurement to the payload.
func (p *Payload) SetMeasurement(measurement any) {
	p.measurement = measurement
}

// CoreState returns the attached core state, or nil when absent.
func (p Payload) CoreState() any {
	return p.coreState
}

// SensorState returns the attached sensor state, or nil when absent.
func (p Payload) SensorState() any {
	return p.sensorState
}

// Measurement returns the attached raw measurement, or nil when absent.
func (p Payload) Measurement() any {
	return p.measurement
}

// HasStates reports whether both the core state and the sensor state are
// present. A payload with only one of the two does not count as state-bearing.
func (p Payload) HasStates() bool {
	return p.coreState != nil && p.sensorState != nil
}

// HasCoreState reports whether a core state is present, regardless of the
// sensor state.
func (p Payload) HasCoreState() bool {
	return p.coreState != nil
}

// HasMeasurement reports whether a raw measurement is present.
func (p Payload) HasMeasurement() bool {
	return p.measurement != nil
}

// ClearStates strips the core and sensor state from the payload, leaving the
// measurement untouched. Used when a trailing window of state history must be
// invalidated for re-propagation.
func (p *Payload) ClearStates() {
	p.coreState = nil
	p.sensorState = nil
}
