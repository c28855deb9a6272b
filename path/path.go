package path

import (
	"fmt"

	"github.com/hirobumii/catseq/morphism"
)

const defaultCapacity = 64

// Step is one opaque timed operation within a Path.
//
// Payload is shared by slice-header copy, following the same
// read-only-after-handoff convention as morphism.Payload.Data.
type Step struct {
	Duration morphism.Time
	Opcode   uint16
	Payload  []byte
}

// Path is an ordered, single-channel instruction buffer.
type Path struct {
	channelID     morphism.ChannelID
	steps         []Step
	totalDuration morphism.Time
}

// NewPath returns an empty Path for channelID with a modest preallocation.
func NewPath(channelID morphism.ChannelID) *Path {
	return &Path{channelID: channelID, steps: make([]Step, 0, defaultCapacity)}
}

// WithCapacity returns an empty Path for channelID preallocated to hold
// capacity steps without reallocation.
func WithCapacity(channelID morphism.ChannelID, capacity int) *Path {
	return &Path{channelID: channelID, steps: make([]Step, 0, capacity)}
}

// ChannelID returns the channel this Path is bound to.
func (p *Path) ChannelID() morphism.ChannelID { return p.channelID }

// TotalDuration returns the sum of every step's duration.
func (p *Path) TotalDuration() morphism.Time { return p.totalDuration }

// Len reports the number of steps.
func (p *Path) Len() int { return len(p.steps) }

// IsEmpty reports whether the Path has no steps.
func (p *Path) IsEmpty() bool { return len(p.steps) == 0 }

// Steps returns the underlying step slice. Callers must not mutate it.
func (p *Path) Steps() []Step { return p.steps }

// Append adds a single step in O(1) amortized.
func (p *Path) Append(duration morphism.Time, opcode uint16, payload []byte) {
	p.steps = append(p.steps, Step{Duration: duration, Opcode: opcode, Payload: payload})
	p.totalDuration += duration
}

// Extend appends every step of other onto p, in O(len(other.steps)).
// Both Paths must share a channel; otherwise ErrChannelMismatch is
// returned and p is left unchanged.
func (p *Path) Extend(other *Path) error {
	if p.channelID != other.channelID {
		return fmt.Errorf("%w: %d vs %d", ErrChannelMismatch, p.channelID, other.channelID)
	}
	p.steps = append(p.steps, other.steps...)
	p.totalDuration += other.totalDuration
	return nil
}

// Identity returns the identity morphism on channelID: a single Wait step
// of the given duration and opcode, or an empty Path if duration is zero.
func Identity(channelID morphism.ChannelID, duration morphism.Time, opcode uint16) *Path {
	p := NewPath(channelID)
	if duration > 0 {
		p.steps = append(p.steps, Step{Duration: duration, Opcode: opcode, Payload: nil})
		p.totalDuration = duration
	}
	return p
}

// Align pads p with a single trailing Wait step so its total duration
// reaches target. A no-op if p is already at or past target.
func (p *Path) Align(target morphism.Time, opcode uint16) {
	if p.totalDuration < target {
		diff := target - p.totalDuration
		p.steps = append(p.steps, Step{Duration: diff, Opcode: opcode, Payload: nil})
		p.totalDuration = target
	}
}
