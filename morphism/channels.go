package morphism

// mergeDedup linearly merges two sorted, duplicate-free channel lists into
// a single sorted, duplicate-free list. Used by Sequential, where the same
// channel legitimately appears in both children.
func mergeDedup(a, b []ChannelID) []ChannelID {
	out := make([]ChannelID, 0, len(a)+len(b))
	var i, j int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default: // equal: emit once
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// mergeDisjoint linearly merges two sorted channel lists known to be
// disjoint (the caller must have already checked hasIntersection). No
// equal-element case is needed because one cannot occur.
func mergeDisjoint(a, b []ChannelID) []ChannelID {
	out := make([]ChannelID, 0, len(a)+len(b))
	var i, j int
	for i < len(a) && j < len(b) {
		if a[i] < b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// hasIntersection reports whether two sorted channel lists share any
// element, in O(len(a)+len(b)) via a two-pointer scan.
func hasIntersection(a, b []ChannelID) bool {
	var i, j int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			return true
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return false
}
