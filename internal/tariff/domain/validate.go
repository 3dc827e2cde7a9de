package domain

import "sort"

// ValidateAndNormalize turns raw admin input into a committed tariff table.
// It never mutates its input and has no side effects: the result is a fresh
// slice sorted by Start with Position assigned, or exactly one of the
// sentinel errors. Reversed bounds (End < Start on a bounded interval) are
// swapped rather than rejected.
func ValidateAndNormalize(inputs []IntervalInput) ([]Interval, error) {
	out := make([]Interval, 0, len(inputs))
	for _, in := range inputs {
		if in.Start == nil || in.Cost == nil {
			return nil, ErrInvalidParams
		}
		iv := Interval{Start: *in.Start, End: OpenEnd, Cost: *in.Cost}
		if in.End != nil {
			iv.End = *in.End
		}
		if iv.End != OpenEnd && iv.End < iv.Start {
			iv.Start, iv.End = iv.End, iv.Start
		}
		out = append(out, iv)
	}

	if len(out) == 0 {
		return nil, ErrMissingParams
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })

	if !IsExhaustive(out) {
		return nil, ErrNotExhaustive
	}
	if !IsContiguous(out) {
		return nil, ErrNotContiguous
	}

	for i := range out {
		out[i].Position = i
	}
	return out, nil
}

// IsExhaustive reports whether the intervals, in the given order, cover
// [0, inf): the first must start at 0 and the last must be open-ended.
func IsExhaustive(intervals []Interval) bool {
	if len(intervals) == 0 {
		return false
	}
	return intervals[0].Start == 0 && intervals[len(intervals)-1].End == OpenEnd
}

// IsContiguous reports whether every adjacent pair, in the given order,
// shares a boundary. A single interval is trivially contiguous.
func IsContiguous(intervals []Interval) bool {
	for i := 1; i < len(intervals); i++ {
		if intervals[i-1].End != intervals[i].Start {
			return false
		}
	}
	return true
}
