package scheduling

import "time"

// overlap is the half-open [start, end) intersection test shared by every range comparison
func overlap[T any](aStart, aEnd, bStart, bEnd T, less func(x, y T) bool) bool {
	return less(aStart, bEnd) && less(bStart, aEnd)
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
// Ranges that only touch at a boundary do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return overlap(aStart, aEnd, bStart, bEnd, time.Time.Before)
}

// OverlapsMinutes is Overlaps for minute-of-day ranges
func OverlapsMinutes(aStart, aEnd, bStart, bEnd int) bool {
	return overlap(aStart, aEnd, bStart, bEnd, func(x, y int) bool { return x < y })
}
