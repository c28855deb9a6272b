package compiler

import (
	"sort"

	"github.com/hirobumii/catseq/morphism"
)

// frame is one pending (node, absolute start time) pair on the work stack.
type frame struct {
	handle morphism.Handle
	start  morphism.Time
}

// Compile flattens the composition tree rooted at root into a time-ordered
// event list.
//
// Algorithm:
//  1. Explicit-stack depth-first walk starting at (root, t=0).
//  2. Sequential nodes push rhs offset by lhs's duration, then push lhs at
//     the unchanged start time — stack order (LIFO) guarantees lhs pops
//     first, so its own recursive pushes land above rhs's.
//  3. Parallel nodes push both children at the same start time.
//  4. Every Atomic node popped becomes one Event.
//  5. The collected events are stably sorted by Time.
//
// Complexity: O(N log N) for N nodes in the tree, dominated by the sort.
func Compile(arena *morphism.Arena, root morphism.Handle) []Event {
	stack := []frame{{root, 0}}
	var events []Event

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := arena.Node(top.handle)
		switch node.Kind {
		case morphism.KindAtomic:
			events = append(events, Event{
				Time:      top.start,
				ChannelID: node.ChannelID,
				Opcode:    node.Payload.Opcode,
				Data:      node.Payload.Data,
			})
		case morphism.KindSequential:
			lhsDuration := arena.Duration(node.LHS)
			stack = append(stack,
				frame{node.RHS, top.start + lhsDuration},
				frame{node.LHS, top.start},
			)
		case morphism.KindParallel:
			stack = append(stack,
				frame{node.RHS, top.start},
				frame{node.LHS, top.start},
			)
		}
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].Time < events[j].Time })
	return events
}
