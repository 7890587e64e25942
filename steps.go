package linedraw

// Step2 is a move between two consecutive cells of a 2D sequence.
type Step2 struct {
	From, To V2i
}

// Step3 is a move between two consecutive voxels of a 3D sequence.
type Step3 struct {
	From, To V3i
}

// Steps2 iterates over the moves of a Line2 instead of its cells.
// A sequence of n cells yields n-1 steps.
type Steps2 struct {
	it   Line2
	prev V2i
	ok   bool
}

// NewSteps2 returns a step iterator over it. The first cell of it is
// consumed immediately.
func NewSteps2(it Line2) *Steps2 {
	s := &Steps2{it: it}
	s.prev, s.ok = it.Next()
	return s
}

// Next returns the next step.
func (s *Steps2) Next() (Step2, bool) {
	if !s.ok {
		return Step2{}, false
	}
	next, ok := s.it.Next()
	if !ok {
		s.ok = false
		return Step2{}, false
	}
	step := Step2{From: s.prev, To: next}
	s.prev = next
	return step, true
}

// Steps3 iterates over the moves of a Line3 instead of its voxels.
type Steps3 struct {
	it   Line3
	prev V3i
	ok   bool
}

// NewSteps3 returns a step iterator over it. The first voxel of it is
// consumed immediately.
func NewSteps3(it Line3) *Steps3 {
	s := &Steps3{it: it}
	s.prev, s.ok = it.Next()
	return s
}

// Next returns the next step.
func (s *Steps3) Next() (Step3, bool) {
	if !s.ok {
		return Step3{}, false
	}
	next, ok := s.it.Next()
	if !ok {
		s.ok = false
		return Step3{}, false
	}
	step := Step3{From: s.prev, To: next}
	s.prev = next
	return step, true
}
