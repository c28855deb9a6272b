package program

// NodeHandle is a dense index into an Arena's node storage.
type NodeHandle uint32

// NodeKind discriminates the control-flow node variants an Arena can
// store. Names follow the functional-programming convention used
// throughout this layer (Lift, Chain, ...) rather than a hardware one,
// since the nodes model a control-flow monad over morphisms, not the
// morphisms themselves.
type NodeKind uint8

const (
	// NodeLift lifts a morphism reference into the program layer, bound
	// to a set of named parameters.
	NodeLift NodeKind = iota
	// NodeDelay waits for a runtime-determined duration.
	NodeDelay
	// NodeSet assigns an expression's value to a variable.
	NodeSet
	// NodeChain runs Left, then Right.
	NodeChain
	// NodeLoop runs Body a runtime-determined number of times.
	NodeLoop
	// NodeMatch branches on Subject's runtime value.
	NodeMatch
	// NodeApply calls a FuncDef node with a list of argument values.
	NodeApply
	// NodeFuncDef defines a reusable, named subroutine.
	NodeFuncDef
	// NodeMeasure reads a hardware measurement into a variable.
	NodeMeasure
	// NodeIdentity does nothing and takes no time.
	NodeIdentity
)

type nodeData struct {
	kind NodeKind

	// Lift.
	morphismRef uint64
	params      map[string]ValueHandle

	// Delay.
	duration   ValueHandle
	maxHint    uint64
	hasMaxHint bool

	// Set / Measure share target; Set also uses value, Measure uses source.
	target ValueHandle
	value  ValueHandle
	source uint32

	// Chain.
	left, right NodeHandle

	// Loop.
	count ValueHandle
	body  NodeHandle

	// Match.
	subject    ValueHandle
	cases      map[int64]NodeHandle
	defaultTo  NodeHandle
	hasDefault bool

	// Apply.
	funcNode NodeHandle
	args     []ValueHandle

	// FuncDef.
	name   string
	fnArgs []ValueHandle
}

// Node is a read-only snapshot of one arena node, returned by Arena.Node.
// Only the fields relevant to Kind are meaningful.
type Node struct {
	Kind NodeKind

	// NodeLift.
	MorphismRef uint64
	Params      map[string]ValueHandle

	// NodeDelay.
	Duration   ValueHandle
	MaxHint    uint64
	HasMaxHint bool

	// NodeSet (Target, Value) / NodeMeasure (Target, Source).
	Target ValueHandle
	Value  ValueHandle
	Source uint32

	// NodeChain.
	Left, Right NodeHandle

	// NodeLoop.
	Count ValueHandle
	Body  NodeHandle

	// NodeMatch.
	Subject    ValueHandle
	Cases      map[int64]NodeHandle
	Default    NodeHandle
	HasDefault bool

	// NodeApply.
	Func NodeHandle
	Args []ValueHandle

	// NodeFuncDef.
	Name       string
	FuncParams []ValueHandle
}

func (d *nodeData) view() Node {
	return Node{
		Kind:        d.kind,
		MorphismRef: d.morphismRef,
		Params:      d.params,
		Duration:    d.duration,
		MaxHint:     d.maxHint,
		HasMaxHint:  d.hasMaxHint,
		Target:      d.target,
		Value:       d.value,
		Source:      d.source,
		Left:        d.left,
		Right:       d.right,
		Count:       d.count,
		Body:        d.body,
		Subject:     d.subject,
		Cases:       d.cases,
		Default:     d.defaultTo,
		HasDefault:  d.hasDefault,
		Func:        d.funcNode,
		Args:        d.args,
		Name:        d.name,
		FuncParams:  d.fnArgs,
	}
}
