package model

import "testing"

func TestFunctionKindsExcludesVariable(t *testing.T) {
	for _, k := range FunctionKinds() {
		if k == NodeVariable {
			t.Fatalf("FunctionKinds should never include NodeVariable")
		}
		if !k.IsFunction() {
			t.Fatalf("%s should report IsFunction true", k)
		}
	}
	if NodeVariable.IsFunction() {
		t.Fatalf("NodeVariable should report IsFunction false")
	}
}

func TestNodeKindStringKnownAndUnknown(t *testing.T) {
	if NodeAdd.String() != "add" {
		t.Fatalf("expected add, got %s", NodeAdd.String())
	}
	if got := NodeKind(127).String(); got != "unknown" {
		t.Fatalf("out-of-range kind should render unknown, got %s", got)
	}
}

func TestVariableIDStringAndEqual(t *testing.T) {
	a := ProvidedVariableID(VarIsSelf)
	b := ProvidedVariableID(VarIsSelf)
	c := CustomVariableID(5)

	if !a.Equal(b) {
		t.Fatalf("equal provided ids should compare equal")
	}
	if a.Equal(c) {
		t.Fatalf("provided and custom ids should not compare equal")
	}
	if c.String() != "custom_5" {
		t.Fatalf("expected custom_5, got %s", c.String())
	}
	if a.String() != "is_self" {
		t.Fatalf("expected is_self, got %s", a.String())
	}
}
