package storage

import (
	"encoding/json"
	"testing"

	"zugzwang/internal/model"
)

func sampleTreeForCodec() *model.Node {
	return &model.Node{
		Kind: model.NodeIf,
		Args: []*model.Node{
			{Kind: model.NodeVariable, Variable: model.ProvidedVariableID(model.VarIsInCheck)},
			{Kind: model.NodeWrite, MemoryIndex: model.StaticMemoryCells + 1, Args: []*model.Node{
				{Kind: model.NodeVariable, Variable: model.CustomVariableID(3)},
			}},
			{Kind: model.NodeVariable, Variable: model.CustomVariableID(4)},
		},
	}
}

func TestEncodeDecodeAgentRoundTrip(t *testing.T) {
	original := &model.Agent{
		ID:         "agent-1",
		Generation: 7,
		BoardAlg:   model.Algorithm{Kind: model.ProgramBoard, Root: sampleTreeForCodec()},
		MoveAlg:    model.Algorithm{Kind: model.ProgramMovement, Root: sampleTreeForCodec()},
		Memory:     model.NewMemoryBank(),
	}
	original.Memory[0].Value = -42
	original.Memory[model.StaticMemoryCells+1].Value = 9

	blob, err := EncodeAgent(original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decoded, err := DecodeAgent(blob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if decoded.ID != original.ID || decoded.Generation != original.Generation {
		t.Fatalf("got %+v want id=%s generation=%d", decoded, original.ID, original.Generation)
	}
	if len(decoded.Memory) != len(original.Memory) {
		t.Fatalf("memory length mismatch: got %d want %d", len(decoded.Memory), len(original.Memory))
	}
	for i, cell := range original.Memory {
		if decoded.Memory[i].Value != cell.Value {
			t.Fatalf("memory cell %d: got %d want %d", i, decoded.Memory[i].Value, cell.Value)
		}
	}
	if decoded.BoardAlg.Kind != model.ProgramBoard {
		t.Fatalf("expected decoded board algorithm kind to be ProgramBoard")
	}
	if decoded.MoveAlg.Root.Kind != model.NodeIf {
		t.Fatalf("expected decoded move tree root to be an if node, got %v", decoded.MoveAlg.Root.Kind)
	}
	if decoded.MoveAlg.Root.Args[1].Kind != model.NodeWrite || decoded.MoveAlg.Root.Args[1].MemoryIndex != model.StaticMemoryCells+1 {
		t.Fatalf("write node's memory index did not survive the round trip: %+v", decoded.MoveAlg.Root.Args[1])
	}
}

func TestDecodeAgentRejectsFutureSchemaVersion(t *testing.T) {
	dto := toAgentDTO(&model.Agent{
		ID:       "agent-1",
		BoardAlg: model.Algorithm{Kind: model.ProgramBoard, Root: &model.Node{Kind: model.NodeVariable, Variable: model.CustomVariableID(0)}},
		MoveAlg:  model.Algorithm{Kind: model.ProgramMovement, Root: &model.Node{Kind: model.NodeVariable, Variable: model.CustomVariableID(0)}},
		Memory:   model.NewMemoryBank(),
	})
	dto.SchemaVersion = CurrentSchemaVersion + 1

	blob, err := json.Marshal(dto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = DecodeAgent(blob)
	if err == nil {
		t.Fatalf("expected an error for a future schema version")
	}
}

func TestDecodeAgentRejectsGarbage(t *testing.T) {
	_, err := DecodeAgent([]byte("not json"))
	if err == nil {
		t.Fatalf("expected an error for malformed input")
	}
}

func TestParseVariableKeyRoundTripsProvidedAndCustom(t *testing.T) {
	id := parseVariableKey(model.ProvidedVariableID(model.VarIsInCheck).String())
	if id.Kind != model.VariableProvided || id.Provided != model.VarIsInCheck {
		t.Fatalf("got %+v", id)
	}

	id = parseVariableKey("custom_17")
	if id.Kind != model.VariableCustom || id.Custom != 17 {
		t.Fatalf("got %+v", id)
	}
}
