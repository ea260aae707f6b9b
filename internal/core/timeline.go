package core

// IdleLabel is the label of a segment during which the CPU had nothing to run.
const IdleLabel = "IDLE"

// Segment is a contiguous interval [Start, End) of the simulated clock.
type Segment struct {
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
	Label string `json:"label" yaml:"label"`
}

func (s Segment) Idle() bool {
	return s.Label == IdleLabel
}

func (s Segment) Duration() int {
	return s.End - s.Start
}

// Timeline accumulates the segments of one run in clock order.
// Segments of the same process are kept apart even when adjacent.
type Timeline struct {
	segments []Segment
}

func (t *Timeline) Run(start, end int, id string) {
	t.segments = append(t.segments, Segment{Start: start, End: end, Label: id})
}

// Idle records an idle gap; empty gaps are ignored.
func (t *Timeline) Idle(start, end int) {
	if end <= start {
		return
	}
	t.segments = append(t.segments, Segment{Start: start, End: end, Label: IdleLabel})
}

// End is the clock value at which the last recorded segment stops.
func (t *Timeline) End() int {
	if len(t.segments) == 0 {
		return 0
	}
	return t.segments[len(t.segments)-1].End
}

func (t *Timeline) Segments() []Segment {
	segments := make([]Segment, len(t.segments))
	copy(segments, t.segments)
	return segments
}

func (t *Timeline) BusyTime() int {
	busy := 0
	for _, s := range t.segments {
		if !s.Idle() {
			busy += s.Duration()
		}
	}
	return busy
}

func (t *Timeline) IdleTime() int {
	idle := 0
	for _, s := range t.segments {
		if s.Idle() {
			idle += s.Duration()
		}
	}
	return idle
}
