// Package ast defines the immutable path-expression tree the parser builds
// and the selector/filter/mutate packages walk. A compiled expression is a
// chain of step Nodes linked through Next, rooted at an Absolute or
// Relative node; filter expressions reuse the same Node type for their own
// operator/literal/path-term tree.
package ast

// Kind tags the variant a Node holds.
type Kind int

const (
	KAbsolute Kind = iota
	KRelative
	KChild
	KAll
	KDescendant
	KIndexUnion
	KSlice
	KFilter
	KNumber
	KString
	KBool
	KBinOp
	KIn
)

// Op enumerates the filter comparison and logical operators.
type Op int

const (
	OpEq Op = iota
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpAnd
	OpOr
)

// Node is the tagged-union path-expression tree node. Only the fields
// relevant to Kind are populated; the rest are zero.
type Node struct {
	Kind Kind

	// KChild: the object key(s) this step selects, in request order.
	Keys []string

	// KIndexUnion: explicit indices, negative meaning "from the end".
	Indices []int

	// KSlice: nil means "use the default" for that bound; Step must be > 0
	// when present (a non-positive step is a parse-time error).
	Start *int
	End   *int
	Step  *int

	// KFilter: the predicate expression tree (rooted at a KBinOp, a bare
	// literal, or a bare path node for a truthiness test).
	Filter *Node

	// KNumber / KString / KBool: the literal payload.
	Num  float64
	Str  string
	Bool bool

	// KBinOp: the operator and its operands (paths, literals, or nested
	// KBinOp nodes for `&&`/`||` chains).
	Op    Op
	Left  *Node
	Right *Node

	// KIn: Left is the candidate path/literal, List the literal set it is
	// tested against.
	List []*Node

	// Next is the following step in the chain; nil marks the chain's end.
	Next *Node
}
