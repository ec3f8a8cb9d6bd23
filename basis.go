package onager

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Basis selects one of the three principal axes
type Basis int

const (
	BasisX Basis = iota
	BasisY
	BasisZ
)

// Vec3 returns the unit vector along the axis.
func (b Basis) Vec3() mgl64.Vec3 {
	switch b {
	case BasisX:
		return mgl64.Vec3{1, 0, 0}
	case BasisY:
		return mgl64.Vec3{0, 1, 0}
	case BasisZ:
		return mgl64.Vec3{0, 0, 1}
	}
	panic(fmt.Sprintf("onager: unknown basis %d", int(b)))
}

func (b Basis) String() string {
	switch b {
	case BasisX:
		return "x"
	case BasisY:
		return "y"
	case BasisZ:
		return "z"
	}
	return fmt.Sprintf("Basis(%d)", int(b))
}
