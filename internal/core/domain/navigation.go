package domain

// NoRecord is the open index when no detail view is shown.
const NoRecord = -1

// Direction is a relative move through the filtered sequence.
type Direction int

// Navigation directions.
const (
	// Backward moves to the previous record.
	Backward Direction = -1

	// None does not move.
	None Direction = 0

	// Forward moves to the next record.
	Forward Direction = 1
)

// String returns the string representation.
func (d Direction) String() string {
	switch d {
	case Backward:
		return "backward"
	case Forward:
		return "forward"
	default:
		return "none"
	}
}

// Swipe thresholds for pointer gestures.
const (
	// SwipeMinDistance is the horizontal distance a swipe must exceed.
	SwipeMinDistance = 50

	// SwipeDominance is how much larger the horizontal delta must be than
	// the vertical one.
	SwipeDominance = 1.5
)

// Swipe is a completed pointer gesture, measured from press to release.
type Swipe struct {
	DX int
	DY int
}

// Direction maps the gesture to a navigation direction. A leftward swipe
// moves forward, a rightward one moves backward. Short or mostly vertical
// gestures return None.
func (s Swipe) Direction() Direction {
	dx, dy := abs(s.DX), abs(s.DY)
	if dx <= SwipeMinDistance || float64(dx) <= float64(dy)*SwipeDominance {
		return None
	}
	if s.DX < 0 {
		return Forward
	}
	return Backward
}

// ScrollMetrics describes the scroll position of the rendering surface.
// Units are whatever the surface measures in (pixels, lines).
type ScrollMetrics struct {
	// ViewportHeight is the visible height.
	ViewportHeight int

	// ScrollTop is the offset of the top of the viewport.
	ScrollTop int

	// ContentHeight is the full height of the rendered content.
	ContentHeight int
}

// NearBottom reports whether the bottom of the viewport is within
// threshold of the bottom of the content.
func (m ScrollMetrics) NearBottom(threshold int) bool {
	return m.ScrollTop+m.ViewportHeight >= m.ContentHeight-threshold
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
