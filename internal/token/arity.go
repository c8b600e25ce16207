package token

import "zugzwang/internal/model"

// arityRange reports the minimum and maximum number of children a function
// node of a given kind takes. Most kinds are fixed-arity; min/max take a variable count.
func arityRange(kind model.NodeKind) (min, max int) {
	switch kind {
	case model.NodeBinary, model.NodeInvert, model.NodeSqrt, model.NodeRound,
		model.NodeFloor, model.NodeCeil, model.NodeAbs, model.NodeWrite:
		return 1, 1
	case model.NodeAdd, model.NodeSub, model.NodeMul, model.NodeDiv, model.NodeMod,
		model.NodeAnd, model.NodeOr, model.NodeGT, model.NodeGTE, model.NodeLT,
		model.NodeLTE, model.NodeEQ, model.NodeNEQ, model.NodePow:
		return 2, 2
	case model.NodeIf:
		return 3, 3
	case model.NodeMin, model.NodeMax:
		return 2, 8
	default:
		return 0, 0
	}
}

// NodeWrite's single Args entry is the value expression; the target cell is
// recorded separately in Node.MemoryIndex, always within the dynamic range,
// never as a tree child.
