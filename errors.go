package linedraw

import (
	"errors"
	"fmt"
	"math"

	"github.com/soypat/linedraw/internal/d2"
	"github.com/soypat/linedraw/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrNegativeRadius is returned when a circle is constructed with radius < 0.
	ErrNegativeRadius = errors.New("negative radius")
	// ErrNonFinite is returned when a continuous endpoint has a NaN or infinite component.
	ErrNonFinite = errors.New("non-finite coordinate")
	// ErrRange is returned when a continuous endpoint is too large to be
	// represented exactly as an integer cell coordinate.
	ErrRange = errors.New("coordinate out of range")
)

// maxCoord is the largest continuous coordinate magnitude accepted.
// Above 2^52 a float64 can no longer represent every cell border.
const maxCoord = 1 << 52

func checkR2(op, name string, v r2.Vec) error {
	var err error
	switch {
	case !d2.IsFinite(v):
		err = fmt.Errorf("%s %s %v: %w", op, name, v, ErrNonFinite)
	case d2.Max(d2.AbsElem(v)) > maxCoord:
		err = fmt.Errorf("%s %s %v: %w", op, name, v, ErrRange)
	}
	if err != nil {
		Logger().Debug("rejected input", "op", op, "err", err)
	}
	return err
}

func checkR3(op, name string, v r3.Vec) error {
	var err error
	switch {
	case !d3.IsFinite(v):
		err = fmt.Errorf("%s %s %v: %w", op, name, v, ErrNonFinite)
	case d3.Max(d3.AbsElem(v)) > maxCoord:
		err = fmt.Errorf("%s %s %v: %w", op, name, v, ErrRange)
	}
	if err != nil {
		Logger().Debug("rejected input", "op", op, "err", err)
	}
	return err
}

func checkSegment2(op string, start, end r2.Vec) error {
	if err := checkR2(op, "start", start); err != nil {
		return err
	}
	return checkR2(op, "end", end)
}

func checkSegment3(op string, start, end r3.Vec) error {
	if err := checkR3(op, "start", start); err != nil {
		return err
	}
	return checkR3(op, "end", end)
}

// cellR2 converts an already validated continuous point to its cell.
func cellR2(v r2.Vec) V2i {
	c := d2.CellElem(v)
	return V2i{int(c.X), int(c.Y)}
}

// cellR3 converts an already validated continuous point to its voxel.
func cellR3(v r3.Vec) V3i {
	c := d3.CellElem(v)
	return V3i{int(c.X), int(c.Y), int(c.Z)}
}

// sign returns the sign of x as an integer.
func sign(x float64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// nonzero returns x, or 1 if x is zero. Used for error scale factors
// of axes that never step.
func nonzero(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Abs(x)
}
