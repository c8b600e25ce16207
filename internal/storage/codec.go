package storage

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"zugzwang/internal/model"
)

// nodeDTO/agentDTO are the wire shapes persisted to sqlite; kept separate
// from model.Node/model.Agent so the storage schema can evolve without
// forcing a change to the in-memory tree representation.
type nodeDTO struct {
	Kind        string     `json:"kind"`
	VariableKey string     `json:"variable,omitempty"`
	Args        []nodeDTO  `json:"args,omitempty"`
	MemoryIndex int        `json:"memory_index,omitempty"`
}

type algorithmDTO struct {
	Kind string  `json:"kind"`
	Root nodeDTO `json:"root"`
}

type agentDTO struct {
	VersionedRecord
	ID         string         `json:"id"`
	Generation int            `json:"generation"`
	BoardAlg   algorithmDTO   `json:"board_alg"`
	MoveAlg    algorithmDTO   `json:"move_alg"`
	Memory     []int          `json:"memory"`
}

func toNodeDTO(n *model.Node) nodeDTO {
	if n == nil {
		return nodeDTO{}
	}
	dto := nodeDTO{Kind: n.Kind.String(), MemoryIndex: n.MemoryIndex}
	if n.Kind == model.NodeVariable {
		dto.VariableKey = n.Variable.String()
	}
	for _, child := range n.Args {
		dto.Args = append(dto.Args, toNodeDTO(child))
	}
	return dto
}

func toAlgorithmDTO(a model.Algorithm) algorithmDTO {
	return algorithmDTO{Kind: a.Kind.String(), Root: toNodeDTO(a.Root)}
}

func toAgentDTO(a *model.Agent) agentDTO {
	memory := make([]int, len(a.Memory))
	for i, cell := range a.Memory {
		memory[i] = cell.Value
	}
	return agentDTO{
		VersionedRecord: VersionedRecord{SchemaVersion: CurrentSchemaVersion},
		ID:              a.ID,
		Generation:      a.Generation,
		BoardAlg:        toAlgorithmDTO(a.BoardAlg),
		MoveAlg:         toAlgorithmDTO(a.MoveAlg),
		Memory:          memory,
	}
}

// EncodeAgent renders an agent as a self-describing JSON blob for sqlite
// storage.
func EncodeAgent(a *model.Agent) ([]byte, error) {
	return json.Marshal(toAgentDTO(a))
}

// DecodeAgent is the inverse of EncodeAgent. It rejects a blob whose schema
// version is newer than this binary understands.
func DecodeAgent(blob []byte) (*model.Agent, error) {
	var dto agentDTO
	if err := json.Unmarshal(blob, &dto); err != nil {
		return nil, fmt.Errorf("decode agent: %w", err)
	}
	if dto.SchemaVersion > CurrentSchemaVersion {
		return nil, fmt.Errorf("decode agent: unsupported schema version %d", dto.SchemaVersion)
	}

	memory := make([]model.MemoryCell, len(dto.Memory))
	for i, v := range dto.Memory {
		memory[i].Value = v
	}

	return &model.Agent{
		ID:         dto.ID,
		Generation: dto.Generation,
		BoardAlg:   fromAlgorithmDTO(dto.BoardAlg, model.ProgramBoard),
		MoveAlg:    fromAlgorithmDTO(dto.MoveAlg, model.ProgramMovement),
		Memory:     memory,
	}, nil
}

func fromAlgorithmDTO(dto algorithmDTO, kind model.ProgramKind) model.Algorithm {
	return model.Algorithm{Kind: kind, Root: fromNodeDTO(dto.Root)}
}

func fromNodeDTO(dto nodeDTO) *model.Node {
	kind := parseNodeKind(dto.Kind)
	node := &model.Node{Kind: kind, MemoryIndex: dto.MemoryIndex}
	if kind == model.NodeVariable {
		node.Variable = parseVariableKey(dto.VariableKey)
	}
	for _, child := range dto.Args {
		node.Args = append(node.Args, fromNodeDTO(child))
	}
	return node
}

var nodeKindByName = buildNodeKindByName()

func buildNodeKindByName() map[string]model.NodeKind {
	m := map[string]model.NodeKind{model.NodeVariable.String(): model.NodeVariable}
	for _, k := range model.FunctionKinds() {
		m[k.String()] = k
	}
	return m
}

func parseNodeKind(name string) model.NodeKind {
	if k, ok := nodeKindByName[name]; ok {
		return k
	}
	return model.NodeVariable
}

var providedVariableByName = buildProvidedVariableByName()

func buildProvidedVariableByName() map[string]model.ProvidedVariable {
	m := make(map[string]model.ProvidedVariable, model.NumProvidedVariables)
	for v := model.ProvidedVariable(0); v < model.NumProvidedVariables; v++ {
		m[v.String()] = v
	}
	return m
}

func parseVariableKey(key string) model.VariableID {
	if strings.HasPrefix(key, "custom_") {
		idx, err := strconv.Atoi(strings.TrimPrefix(key, "custom_"))
		if err != nil {
			return model.CustomVariableID(0)
		}
		return model.CustomVariableID(idx)
	}
	if v, ok := providedVariableByName[key]; ok {
		return model.ProvidedVariableID(v)
	}
	return model.ProvidedVariableID(model.VarIsSelf)
}
