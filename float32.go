package linedraw

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// float32 entry points for callers working with glgl vectors. Inputs are
// widened to float64 so results match the r2/r3 constructors exactly.

func isFinite32(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

func check32(op, name string, v ...float32) error {
	for _, c := range v {
		if !isFinite32(c) {
			err := fmt.Errorf("%s %s %v: %w", op, name, v, ErrNonFinite)
			Logger().Debug("rejected input", "op", op, "err", err)
			return err
		}
	}
	return nil
}

func checkSegment32(op string, start, end ms2.Vec) error {
	if err := check32(op, "start", start.X, start.Y); err != nil {
		return err
	}
	return check32(op, "end", end.X, end.Y)
}

func toR2(v ms2.Vec) r2.Vec {
	return r2.Vec{X: float64(v.X), Y: float64(v.Y)}
}

func toR3(v ms3.Vec) r3.Vec {
	return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// NewWalkGrid32 is NewWalkGrid for float32 vectors.
func NewWalkGrid32(start, end ms2.Vec) (*WalkGrid, error) {
	if err := checkSegment32("walkgrid32", start, end); err != nil {
		return nil, err
	}
	return NewWalkGrid(toR2(start), toR2(end))
}

// NewSupercover32 is NewSupercover for float32 vectors.
func NewSupercover32(start, end ms2.Vec) (*Supercover, error) {
	if err := checkSegment32("supercover32", start, end); err != nil {
		return nil, err
	}
	return NewSupercover(toR2(start), toR2(end))
}

// NewXiaolinWu32 is NewXiaolinWu for float32 vectors.
func NewXiaolinWu32(start, end ms2.Vec) (*XiaolinWu, error) {
	if err := checkSegment32("xiaolinwu32", start, end); err != nil {
		return nil, err
	}
	return NewXiaolinWu(toR2(start), toR2(end))
}

// NewWalkVoxels32 is NewWalkVoxels for float32 vectors.
func NewWalkVoxels32(start, end ms3.Vec) (*WalkVoxels, error) {
	if err := check32("walkvoxels32", "start", start.X, start.Y, start.Z); err != nil {
		return nil, err
	}
	if err := check32("walkvoxels32", "end", end.X, end.Y, end.Z); err != nil {
		return nil, err
	}
	return NewWalkVoxels(toR3(start), toR3(end))
}

// Cell32 returns the cell containing v. v must be finite.
func Cell32(v ms2.Vec) V2i {
	return V2i{int(math32.Floor(v.X + 0.5)), int(math32.Floor(v.Y + 0.5))}
}

// Voxel32 returns the voxel containing v. v must be finite.
func Voxel32(v ms3.Vec) V3i {
	return V3i{
		int(math32.Floor(v.X + 0.5)),
		int(math32.Floor(v.Y + 0.5)),
		int(math32.Floor(v.Z + 0.5)),
	}
}
