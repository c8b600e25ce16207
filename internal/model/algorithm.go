package model

// Algorithm is one expression tree together with the program kind it was
// generated for, which constrains which variables its leaves may name.
type Algorithm struct {
	Kind ProgramKind
	Root *Node
}
