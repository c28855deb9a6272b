package path

import "errors"

// ErrChannelMismatch is returned by Extend when the two Paths belong to
// different channels.
var ErrChannelMismatch = errors.New("path: channel mismatch")
