package morphism

// ComposeSequence builds a balanced Sequential chain over handles by
// repeated pairwise reduction: each round combines (handles[0],
// handles[1]), (handles[2], handles[3]), ... halving the list, carrying
// an odd tail element through unchanged to the next round. An empty input
// returns (0, false); a single handle is returned unchanged.
//
// Balancing bounds the resulting tree's depth at ceil(log2(N))+1, which is
// what keeps LeafCount/MaxDepth/compilation traversals out of pathological
// recursion depth when callers fold thousands of atomics together — a
// naive left-to-right reduce would instead build a tree as deep as N.
func (a *Arena) ComposeSequence(handles []Handle) (Handle, bool) {
	if len(handles) == 0 {
		return 0, false
	}
	current := append([]Handle(nil), handles...)
	for len(current) > 1 {
		next := make([]Handle, 0, (len(current)+1)/2)
		for i := 0; i < len(current); i += 2 {
			if i+1 < len(current) {
				next = append(next, a.Sequential(current[i], current[i+1]))
			} else {
				next = append(next, current[i])
			}
		}
		current = next
	}
	return current[0], true
}

// ComposeParallel builds a balanced Parallel tree over handles using the
// same pairwise-halving scheme as ComposeSequence, propagating
// ErrChannelConflict from any pairwise combination. An empty input returns
// (0, false, nil); a single handle is returned unchanged.
func (a *Arena) ComposeParallel(handles []Handle) (Handle, bool, error) {
	if len(handles) == 0 {
		return 0, false, nil
	}
	current := append([]Handle(nil), handles...)
	for len(current) > 1 {
		next := make([]Handle, 0, (len(current)+1)/2)
		for i := 0; i < len(current); i += 2 {
			if i+1 < len(current) {
				combined, err := a.Parallel(current[i], current[i+1])
				if err != nil {
					return 0, false, err
				}
				next = append(next, combined)
			} else {
				next = append(next, current[i])
			}
		}
		current = next
	}
	return current[0], true, nil
}
