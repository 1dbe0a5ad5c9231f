package geometry

import (
	"math"
	"sort"
)

// Interval is a [TIn, TOut] stretch of ray parameters where the ray is
// inside a solid. Unbounded endpoints are ±Inf and carry no hit record.
type Interval struct {
	TIn    float64
	TOut   float64
	InHit  *HitRecord
	OutHit *HitRecord
}

// Operation selects the boolean combination of a CSG node
type Operation int

const (
	// Union keeps every child boundary, so surfaces inside the other
	// operand remain visible
	Union Operation = iota
	// Fusion merges overlapping intervals; only externally visible
	// entry/exit boundaries survive
	Fusion
	// Intersection keeps the stretches inside both operands
	Intersection
	// Difference keeps the stretches inside the first operand and
	// outside the second
	Difference
)

// String returns the scene-language keyword of the operation
func (op Operation) String() string {
	switch op {
	case Union:
		return "union"
	case Fusion:
		return "fusion"
	case Intersection:
		return "intersection"
	case Difference:
		return "difference"
	}
	panic("unreachable CSG operation code")
}

// boundaryEvent is one finite interval endpoint during a sweep
type boundaryEvent struct {
	t        float64
	entering bool
	fromA    bool
	hit      *HitRecord
}

// combineIntervals merges two interval lists according to the boolean
// operation. Lists may contain overlapping intervals (a Union child keeps
// its sub-boundaries), so insideness is tracked by nesting depth, not by a
// flag.
func combineIntervals(a, b []Interval, op Operation) []Interval {
	if op == Union {
		// All boundaries survive: concatenate ordered by entry
		result := make([]Interval, 0, len(a)+len(b))
		result = append(result, a...)
		result = append(result, b...)
		sort.Slice(result, func(i, j int) bool { return result[i].TIn < result[j].TIn })
		return result
	}

	events := make([]boundaryEvent, 0, 2*(len(a)+len(b)))
	depthA, depthB := 0, 0
	for _, iv := range a {
		if math.IsInf(iv.TIn, -1) {
			depthA++
		} else {
			events = append(events, boundaryEvent{iv.TIn, true, true, iv.InHit})
		}
		if !math.IsInf(iv.TOut, 1) {
			events = append(events, boundaryEvent{iv.TOut, false, true, iv.OutHit})
		}
	}
	for _, iv := range b {
		if math.IsInf(iv.TIn, -1) {
			depthB++
		} else {
			events = append(events, boundaryEvent{iv.TIn, true, false, iv.InHit})
		}
		if !math.IsInf(iv.TOut, 1) {
			events = append(events, boundaryEvent{iv.TOut, false, false, iv.OutHit})
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].t < events[j].t })

	insideOp := func() bool {
		inA, inB := depthA > 0, depthB > 0
		switch op {
		case Fusion:
			return inA || inB
		case Intersection:
			return inA && inB
		case Difference:
			return inA && !inB
		}
		panic("unreachable CSG operation code")
	}

	var result []Interval
	state := insideOp()
	current := Interval{TIn: math.Inf(-1), TOut: math.Inf(1)}

	// Process coincident boundaries as one step so a simultaneous
	// enter/exit pair cannot open a zero-width interval
	for i := 0; i < len(events); {
		j := i
		for j < len(events) && events[j].t == events[i].t {
			ev := events[j]
			if ev.fromA {
				if ev.entering {
					depthA++
				} else {
					depthA--
				}
			} else {
				if ev.entering {
					depthB++
				} else {
					depthB--
				}
			}
			j++
		}
		ev := events[i]
		i = j

		newState := insideOp()
		if newState == state {
			continue
		}
		state = newState

		if newState {
			current = Interval{TIn: ev.t, TOut: math.Inf(1), InHit: ev.hit}
		} else {
			current.TOut = ev.t
			current.OutHit = ev.hit
			result = append(result, current)
		}
	}

	if state {
		// Still inside at +Inf; the open interval is unbounded above
		result = append(result, current)
	}

	return result
}
