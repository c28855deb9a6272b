package program_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hirobumii/catseq/program"
)

func TestParseCmpOp(t *testing.T) {
	cases := map[string]program.CmpOp{
		"==": program.CmpEq,
		"!=": program.CmpNe,
		"<":  program.CmpLt,
		"<=": program.CmpLe,
		">":  program.CmpGt,
		">=": program.CmpGe,
	}
	for s, want := range cases {
		assert.Equal(t, want, program.ParseCmpOp(s), s)
	}

	assert.Equal(t, program.CmpEq, program.ParseCmpOp("??"), "unrecognized input defaults to CmpEq")
}

func TestParseAluOp(t *testing.T) {
	cases := map[string]program.AluOp{
		"+": program.AluAdd, "-": program.AluSub, "*": program.AluMul,
		"/": program.AluDiv, "%": program.AluMod, "&": program.AluBitAnd,
		"|": program.AluBitOr, "^": program.AluBitXor, "<<": program.AluShl,
		">>": program.AluShr,
	}
	for s, want := range cases {
		assert.Equal(t, want, program.ParseAluOp(s), s)
	}

	assert.Equal(t, program.AluAdd, program.ParseAluOp("??"), "unrecognized input defaults to AluAdd")
}

func TestParseUnaryOp(t *testing.T) {
	assert.Equal(t, program.UnaryNeg, program.ParseUnaryOp("-"))
	assert.Equal(t, program.UnaryNot, program.ParseUnaryOp("!"))
	assert.Equal(t, program.UnaryBitNot, program.ParseUnaryOp("~"))

	assert.Equal(t, program.UnaryNeg, program.ParseUnaryOp("??"), "unrecognized input defaults to UnaryNeg")
}

func TestParseLogicalOp_AcceptsAlternateSpellings(t *testing.T) {
	for _, s := range []string{"and", "&&"} {
		assert.Equal(t, program.LogicalAnd, program.ParseLogicalOp(s), s)
	}
	for _, s := range []string{"or", "||"} {
		assert.Equal(t, program.LogicalOr, program.ParseLogicalOp(s), s)
	}
	for _, s := range []string{"not", "!"} {
		assert.Equal(t, program.LogicalNot, program.ParseLogicalOp(s), s)
	}

	assert.Equal(t, program.LogicalAnd, program.ParseLogicalOp("??"), "unrecognized input defaults to LogicalAnd")
}

func TestParseTypeHint_AcceptsLongAndShortSpellings(t *testing.T) {
	cases := map[string]program.TypeHint{
		"int32": program.TypeInt32, "i32": program.TypeInt32,
		"int64": program.TypeInt64, "i64": program.TypeInt64,
		"float32": program.TypeFloat32, "f32": program.TypeFloat32,
		"float64": program.TypeFloat64, "f64": program.TypeFloat64,
		"bool": program.TypeBool,
	}
	for s, want := range cases {
		assert.Equal(t, want, program.ParseTypeHint(s), s)
	}

	assert.Equal(t, program.TypeInt32, program.ParseTypeHint("unknown"), "unrecognized input defaults to TypeInt32")
}
