package stream

// Latest pairs two independently timed sources by their most recent
// values. Once both sides have produced at least one value, every push on
// either side invokes the combine function with the latest pair.
type Latest[L, R any] struct {
	left     L
	right    R
	hasLeft  bool
	hasRight bool
	combine  func(L, R)
}

// NewLatest creates a combinator that calls combine for every push once
// both sides are primed.
func NewLatest[L, R any](combine func(L, R)) *Latest[L, R] {
	return &Latest[L, R]{combine: combine}
}

// PushLeft records a new left value and fires if both sides are primed.
func (l *Latest[L, R]) PushLeft(v L) {
	l.left = v
	l.hasLeft = true
	l.fire()
}

// PushRight records a new right value and fires if both sides are primed.
func (l *Latest[L, R]) PushRight(v R) {
	l.right = v
	l.hasRight = true
	l.fire()
}

// ReplaceRight overwrites the cached right value without firing.
// It does nothing until the right side has produced a value.
func (l *Latest[L, R]) ReplaceRight(v R) {
	if l.hasRight {
		l.right = v
	}
}

// Ready reports whether both sides have produced a value.
func (l *Latest[L, R]) Ready() bool {
	return l.hasLeft && l.hasRight
}

// Values returns the cached pair and whether both sides are primed.
func (l *Latest[L, R]) Values() (L, R, bool) {
	return l.left, l.right, l.Ready()
}

func (l *Latest[L, R]) fire() {
	if l.Ready() && l.combine != nil {
		l.combine(l.left, l.right)
	}
}
