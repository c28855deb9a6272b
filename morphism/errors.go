package morphism

import "errors"

// ErrChannelConflict is returned by Parallel and ComposeParallel when the
// two subgraphs being combined share at least one channel. Parallel
// composition requires disjoint channel sets; detection runs before any
// node is appended, so the Arena is left unchanged on this error.
var ErrChannelConflict = errors.New("morphism: parallel composition requires disjoint channels")
