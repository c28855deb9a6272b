package program

// Arena is append-only storage for a control-flow program: its AST nodes
// and the symbolic values they reference. Like morphism.Arena it is not
// safe for concurrent use.
type Arena struct {
	nodes     []nodeData
	values    []valueData
	varByName map[string]ValueHandle
}

// NewArena returns an empty Arena.
func NewArena(opts ...ArenaOption) *Arena {
	cfg := resolveConfig(opts)
	return &Arena{
		nodes:     make([]nodeData, 0, cfg.nodeCapacity),
		values:    make([]valueData, 0, cfg.valueCapacity),
		varByName: make(map[string]ValueHandle),
	}
}

// NodeCount returns the number of nodes currently stored.
func (a *Arena) NodeCount() int { return len(a.nodes) }

// ValueCount returns the number of values currently stored.
func (a *Arena) ValueCount() int { return len(a.values) }

// VarCount returns the number of distinct interned variable names.
func (a *Arena) VarCount() int { return len(a.varByName) }

// Clear drops every node, value, and interned variable name.
func (a *Arena) Clear() {
	a.nodes = a.nodes[:0]
	a.values = a.values[:0]
	a.varByName = make(map[string]ValueHandle)
}

// Node returns a read-only snapshot of the node at h. It panics if h is
// out of range, the same fail-fast contract as morphism.Arena.Node.
func (a *Arena) Node(h NodeHandle) Node {
	return a.nodeAt(h).view()
}

// Value returns a read-only snapshot of the value at h.
func (a *Arena) Value(h ValueHandle) Value {
	return a.valueAt(h).view()
}

func (a *Arena) nodeAt(h NodeHandle) *nodeData {
	if int(h) >= len(a.nodes) {
		panic("program: node handle out of range")
	}
	return &a.nodes[h]
}

func (a *Arena) valueAt(h ValueHandle) *valueData {
	if int(h) >= len(a.values) {
		panic("program: value handle out of range")
	}
	return &a.values[h]
}

func (a *Arena) pushValue(v valueData) ValueHandle {
	id := ValueHandle(len(a.values))
	a.values = append(a.values, v)
	return id
}

func (a *Arena) pushNode(n nodeData) NodeHandle {
	id := NodeHandle(len(a.nodes))
	a.nodes = append(a.nodes, n)
	return id
}

// --- Value constructors ---

// Literal interns an integer literal.
func (a *Arena) Literal(value int64) ValueHandle {
	return a.pushValue(intLiteral(value))
}

// LiteralFloat interns a float literal, stored bit-for-bit via
// math.Float64bits so no precision is lost round-tripping through Value.
func (a *Arena) LiteralFloat(value float64) ValueHandle {
	return a.pushValue(floatLiteral(value))
}

// Variable interns a named, typed symbol. A second call with the same
// name returns the original ValueHandle unchanged — the type hint from
// that first call wins, and a differing hint on a later call is ignored
// rather than rejected, matching the "first declaration wins" contract a
// single-pass compiler expects from repeated variable references.
func (a *Arena) Variable(name string, hint TypeHint) ValueHandle {
	if id, ok := a.varByName[name]; ok {
		return id
	}
	id := a.pushValue(valueData{kind: ValueVariable, name: name, typeHint: hint})
	a.varByName[name] = id
	return id
}

// BinaryExpr interns lhs op rhs.
func (a *Arena) BinaryExpr(lhs ValueHandle, op AluOp, rhs ValueHandle) ValueHandle {
	return a.pushValue(valueData{kind: ValueBinary, lhs: lhs, aluOp: op, rhs: rhs})
}

// UnaryExpr interns op operand.
func (a *Arena) UnaryExpr(op UnaryOp, operand ValueHandle) ValueHandle {
	return a.pushValue(valueData{kind: ValueUnary, unaryOp: op, operand: operand})
}

// Condition interns the comparison lhs op rhs.
func (a *Arena) Condition(lhs ValueHandle, op CmpOp, rhs ValueHandle) ValueHandle {
	return a.pushValue(valueData{kind: ValueCondition, lhs: lhs, cmpOp: op, rhs: rhs})
}

// LogicalExpr interns a boolean expression. For the unary NOT form, pass
// hasRHS=false; rhs is then ignored.
func (a *Arena) LogicalExpr(lhs ValueHandle, op LogicalOp, rhs ValueHandle, hasRHS bool) ValueHandle {
	return a.pushValue(valueData{kind: ValueLogical, lhs: lhs, logicalOp: op, rhs: rhs, hasRHS: hasRHS})
}

// --- Query helpers mirroring Value's own methods, for callers holding
// only a handle. ---

// IsLiteral reports whether h names a Literal value.
func (a *Arena) IsLiteral(h ValueHandle) bool { return a.Value(h).IsLiteral() }

// IsVariable reports whether h names a Variable value.
func (a *Arena) IsVariable(h ValueHandle) bool { return a.Value(h).IsVariable() }

// --- Node constructors ---

// Lift lifts a morphism reference into the program layer, bound to a set
// of named parameters.
func (a *Arena) Lift(morphismRef uint64, params map[string]ValueHandle) NodeHandle {
	return a.pushNode(nodeData{kind: NodeLift, morphismRef: morphismRef, params: params})
}

// Delay waits for duration (a Literal or Variable ValueHandle). maxHint,
// when hasMaxHint is true, bounds how long the wait can run for use by
// downstream compile-time optimization; it is never checked here.
func (a *Arena) Delay(duration ValueHandle, maxHint uint64, hasMaxHint bool) NodeHandle {
	return a.pushNode(nodeData{kind: NodeDelay, duration: duration, maxHint: maxHint, hasMaxHint: hasMaxHint})
}

// Set assigns value to target.
func (a *Arena) Set(target, value ValueHandle) NodeHandle {
	return a.pushNode(nodeData{kind: NodeSet, target: target, value: value})
}

// Chain runs left then right.
func (a *Arena) Chain(left, right NodeHandle) NodeHandle {
	return a.pushNode(nodeData{kind: NodeChain, left: left, right: right})
}

// Loop runs body count times.
func (a *Arena) Loop(count ValueHandle, body NodeHandle) NodeHandle {
	return a.pushNode(nodeData{kind: NodeLoop, count: count, body: body})
}

// Match branches on subject's runtime value: cases maps a concrete key
// (bool encoded as 0/1, ints used directly) to the branch to take; default,
// when hasDefault is true, is used for any key absent from cases.
func (a *Arena) Match(subject ValueHandle, cases map[int64]NodeHandle, defaultTo NodeHandle, hasDefault bool) NodeHandle {
	return a.pushNode(nodeData{kind: NodeMatch, subject: subject, cases: cases, defaultTo: defaultTo, hasDefault: hasDefault})
}

// Apply calls the FuncDef node fn with args.
func (a *Arena) Apply(fn NodeHandle, args []ValueHandle) NodeHandle {
	return a.pushNode(nodeData{kind: NodeApply, funcNode: fn, args: args})
}

// FuncDef defines a reusable subroutine. params must each be a Variable
// ValueHandle; this is a documented caller contract, not checked here.
func (a *Arena) FuncDef(name string, params []ValueHandle, body NodeHandle) NodeHandle {
	return a.pushNode(nodeData{kind: NodeFuncDef, name: name, fnArgs: params, body: body})
}

// Measure reads a hardware measurement from source into target.
func (a *Arena) Measure(target ValueHandle, source uint32) NodeHandle {
	return a.pushNode(nodeData{kind: NodeMeasure, target: target, source: source})
}

// Identity creates a zero-time no-op node.
func (a *Arena) Identity() NodeHandle {
	return a.pushNode(nodeData{kind: NodeIdentity})
}

// ChainSequence builds a balanced Chain tree over nodes by the same
// pairwise-halving reduction as morphism.Arena.ComposeSequence, bounding
// traversal depth for long linear programs. An empty input returns
// (0, false); a single node is returned unchanged.
func (a *Arena) ChainSequence(nodes []NodeHandle) (NodeHandle, bool) {
	if len(nodes) == 0 {
		return 0, false
	}
	current := append([]NodeHandle(nil), nodes...)
	for len(current) > 1 {
		next := make([]NodeHandle, 0, (len(current)+1)/2)
		for i := 0; i < len(current); i += 2 {
			if i+1 < len(current) {
				next = append(next, a.Chain(current[i], current[i+1]))
			} else {
				next = append(next, current[i])
			}
		}
		current = next
	}
	return current[0], true
}
