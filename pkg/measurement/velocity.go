// Package measurement provides ready-made measurement record types for use
// as statebuffer payloads. The buffer itself treats payloads as opaque; these
// types exist for producers that want a concrete, loggable record without
// defining their own.
package measurement

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Velocity is a body-frame velocity measurement in [x y z] order.
type Velocity struct {
	vec *mat.VecDense
}

// NewVelocity builds a velocity measurement from its components.
func NewVelocity(x, y, z float64) Velocity {
	return Velocity{vec: mat.NewVecDense(3, []float64{x, y, z})}
}

// Vector returns the velocity as a dense 3-vector. The returned vector is a
// copy; mutating it does not affect the measurement.
func (v Velocity) Vector() *mat.VecDense {
	out := mat.NewVecDense(3, nil)
	out.CopyVec(v.vec)

	return out
}

// X returns the x component.
func (v Velocity) X() float64 { return v.vec.AtVec(0) }

// Y returns the y component.
func (v Velocity) Y() float64 { return v.vec.AtVec(1) }

// Z returns the z component.
func (v Velocity) Z() float64 { return v.vec.AtVec(2) }

// Norm returns the Euclidean speed.
func (v Velocity) Norm() float64 {
	return mat.Norm(v.vec, 2)
}

// CSVHeader returns the column header matching CSVLine.
func CSVHeader() string {
	return "t, v_x, v_y, v_z"
}

// CSVLine renders the measurement as a CSV row prefixed with the timestamp,
// with full float precision.
func (v Velocity) CSVLine(timestamp float64) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%.17g", timestamp)

	for i := 0; i < 3; i++ {
		fmt.Fprintf(&sb, ", %.17g", v.vec.AtVec(i))
	}

	return sb.String()
}

// String renders the measurement for diagnostics.
func (v Velocity) String() string {
	return fmt.Sprintf("velocity [%g %g %g]", v.X(), v.Y(), v.Z())
}
