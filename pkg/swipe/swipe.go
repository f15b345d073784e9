// Package swipe turns raw pointer drags into horizontal navigation
// gestures. The tracker is pure state; the TUI feeds it mouse press,
// motion and release coordinates.
package swipe

// Direction is the recognized gesture on release.
type Direction int

const (
	None Direction = iota
	Left
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "none"
}

// DefaultThreshold is the minimum displacement, in terminal cells, before a
// drag counts as a swipe.
const DefaultThreshold = 5

// Tracker accumulates one drag at a time. Zero value is unusable; call
// NewTracker.
type Tracker struct {
	threshold int

	active bool
	moved  bool
	startX int
	startY int
	lastX  int
	lastY  int
}

// NewTracker builds a tracker. A threshold of zero or less selects
// DefaultThreshold.
func NewTracker(threshold int) *Tracker {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Tracker{threshold: threshold}
}

// Start begins a drag at the given cell.
func (t *Tracker) Start(x, y int) {
	t.active = true
	t.moved = false
	t.startX, t.startY = x, y
}

// Move records drag motion. Motion before Start is ignored.
func (t *Tracker) Move(x, y int) {
	if !t.active {
		return
	}
	t.moved = true
	t.lastX, t.lastY = x, y
}

// Active reports whether a drag is in progress.
func (t *Tracker) Active() bool { return t.active }

// End finishes the drag and classifies it. A drag that never moved, or
// whose dominant-axis displacement stays under the threshold, is None.
// Vertical-dominant drags are reported as Up/Down so callers can leave
// them to scrolling.
func (t *Tracker) End() Direction {
	if !t.active || !t.moved {
		t.active = false
		return None
	}
	t.active = false

	dx := t.startX - t.lastX
	dy := t.startY - t.lastY
	if abs(dx) > abs(dy) {
		if dx > t.threshold {
			return Left
		}
		if dx < -t.threshold {
			return Right
		}
		return None
	}
	if dy > t.threshold {
		return Up
	}
	if dy < -t.threshold {
		return Down
	}
	return None
}

// Cancel abandons the drag without classifying it.
func (t *Tracker) Cancel() {
	t.active = false
	t.moved = false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
