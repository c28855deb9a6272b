package incremental

import "github.com/hirobumii/catseq/compiler"

// mergeSortedEvents merges two locally-sorted event lists into one sorted
// list.
//
// Fast paths, checked in order:
//  1. Either input empty: return the other unchanged.
//  2. a entirely precedes b (a's last time <= b's first time): plain
//     concatenation. This is the block-copy optimization. The Parallel
//     case of compileNode passes two local-time lists that both start at
//     t=0, so there it applies when every event of a is at t=0 (for
//     example a Parallel of single atomics).
//  3. b strictly precedes a (b's last time < a's first time): same,
//     swapped. Strict, so that on a tie a's events still come first.
//  4. Otherwise: standard two-pointer merge, stable on ties (a before b).
func mergeSortedEvents(a, b []compiler.Event) []compiler.Event {
	if len(a) == 0 {
		return append([]compiler.Event(nil), b...)
	}
	if len(b) == 0 {
		return append([]compiler.Event(nil), a...)
	}

	result := make([]compiler.Event, 0, len(a)+len(b))

	if a[len(a)-1].Time <= b[0].Time {
		result = append(result, a...)
		result = append(result, b...)
		return result
	}
	if b[len(b)-1].Time < a[0].Time {
		result = append(result, b...)
		result = append(result, a...)
		return result
	}

	var i, j int
	for i < len(a) && j < len(b) {
		if a[i].Time <= b[j].Time {
			result = append(result, a[i])
			i++
		} else {
			result = append(result, b[j])
			j++
		}
	}
	result = append(result, a[i:]...)
	result = append(result, b[j:]...)
	return result
}
