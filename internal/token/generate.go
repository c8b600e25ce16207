package token

import (
	"math/rand"

	"zugzwang/internal/model"
)

// MaxDepth bounds random synthesis: once a subtree reaches this depth, the
// generator is forced to emit a variable leaf regardless of the function
// bias below.
const MaxDepth = 3

// ParentKind describes the node whose child is about to be synthesized,
// which biases the odds of generating a function node versus a leaf.
type ParentKind int8

const (
	ParentNone ParentKind = iota
	ParentFunction
	ParentVariable
)

func functionBias(parent ParentKind) float64 {
	switch parent {
	case ParentNone:
		return 1.0
	case ParentFunction:
		return 0.4
	default: // ParentVariable never actually has children, kept for completeness
		return 0.6
	}
}

// Generate synthesizes one random subtree for the given program kind. rng
// must be non-nil and is always threaded explicitly, never read from a
// package-global source.
func Generate(rng *rand.Rand, parent ParentKind, programKind model.ProgramKind, depth int) *model.Node {
	if depth >= MaxDepth || rng.Float64() >= functionBias(parent) {
		return generateVariable(rng, programKind)
	}
	return generateFunction(rng, programKind, depth)
}

// GenerateAlgorithm synthesizes a fresh root-to-leaves tree for the given
// program kind.
func GenerateAlgorithm(rng *rand.Rand, programKind model.ProgramKind) model.Algorithm {
	return model.Algorithm{
		Kind: programKind,
		Root: Generate(rng, ParentNone, programKind, 0),
	}
}

func generateVariable(rng *rand.Rand, programKind model.ProgramKind) *model.Node {
	provided := model.ProvidedVariablesFor(programKind)
	// Every provided variable allowed for this program, plus every memory
	// cell, are equally likely leaf choices.
	total := len(provided) + model.TotalMemoryCells
	pick := rng.Intn(total)
	var id model.VariableID
	if pick < len(provided) {
		id = model.ProvidedVariableID(provided[pick])
	} else {
		id = model.CustomVariableID(pick - len(provided))
	}
	return &model.Node{Kind: model.NodeVariable, Variable: id}
}

func generateFunction(rng *rand.Rand, programKind model.ProgramKind, depth int) *model.Node {
	kinds := model.FunctionKinds()
	kind := kinds[rng.Intn(len(kinds))]

	node := &model.Node{Kind: kind}
	if kind == model.NodeWrite {
		node.MemoryIndex = model.StaticMemoryCells + rng.Intn(model.DynamicMemoryCells)
	}

	n := childCount(rng, kind)
	node.Args = make([]*model.Node, n)
	for i := 0; i < n; i++ {
		node.Args[i] = Generate(rng, ParentFunction, programKind, depth+1)
	}
	return node
}

func childCount(rng *rand.Rand, kind model.NodeKind) int {
	min, max := arityRange(kind)
	if min == max {
		return min
	}
	// min/max: right-skewed draw peaked at the minimum arity. See
	// DESIGN.md's Open Question decisions for the chosen distribution.
	n := min
	for n < max && rng.Float64() < 0.35 {
		n++
	}
	return n
}
