package variable

import (
	"errors"
	"fmt"

	"zugzwang/internal/model"
)

var (
	ErrUnknownVariable    = errors.New("unknown variable")
	ErrVariableNotAllowed = errors.New("variable not allowed for this program kind")
	ErrMemoryOutOfRange   = errors.New("memory index out of range")
)

// ResolveFunc computes one provided variable's value at a square, given the
// turn context it is being evaluated under.
type ResolveFunc func(sq model.Square, ctx *model.TurnContext) (int, error)

// registry is a dense array indexed by model.ProvidedVariable, not a map:
// the dense-enum variant means resolution never touches a string-keyed
// lookup on the interpreter's hot path.
var registry [model.NumProvidedVariables]ResolveFunc

func register(v model.ProvidedVariable, fn ResolveFunc) {
	registry[v] = fn
}

// Allowed reports whether id may be referenced by a tree of the given
// program kind. Custom ids are allowed iff their index is a valid memory
// cell; provided ids are allowed per model.ProvidedVariableAllowed.
func Allowed(id model.VariableID, kind model.ProgramKind) bool {
	if id.Kind == model.VariableCustom {
		return id.Custom >= 0 && id.Custom < model.TotalMemoryCells
	}
	if id.Provided < 0 || id.Provided >= model.NumProvidedVariables {
		return false
	}
	return model.ProvidedVariableAllowed[id.Provided].Allows(kind)
}

// Resolve computes id's value at sq under ctx, for a tree of the given
// program kind. Returns a *model.StructuralError whose reason begins with
// the text of ErrUnknownVariable/ErrVariableNotAllowed/ErrMemoryOutOfRange
// when id is not a valid reference for this program kind; the sentinel
// itself is not wrapped, so errors.Is does not match it.
func Resolve(id model.VariableID, sq model.Square, ctx *model.TurnContext, kind model.ProgramKind) (int, error) {
	if !Allowed(id, kind) {
		if id.Kind == model.VariableCustom {
			return 0, model.NewStructuralError(fmt.Sprintf("%v: custom_%d", ErrMemoryOutOfRange, id.Custom))
		}
		return 0, model.NewStructuralError(fmt.Sprintf("%v: %s not allowed in %s program", ErrVariableNotAllowed, id.Provided, kind))
	}
	if id.Kind == model.VariableCustom {
		return ctx.Agent.Memory[id.Custom].Value, nil
	}
	fn := registry[id.Provided]
	if fn == nil {
		return 0, model.NewStructuralError(fmt.Sprintf("%v: %s", ErrUnknownVariable, id.Provided))
	}
	return fn(sq, ctx)
}
