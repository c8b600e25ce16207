package model

import "testing"

func TestNewMemoryBankLayout(t *testing.T) {
	bank := NewMemoryBank()
	if len(bank) != TotalMemoryCells {
		t.Fatalf("expected %d cells, got %d", TotalMemoryCells, len(bank))
	}
	if StaticMemoryCells+DynamicMemoryCells != TotalMemoryCells {
		t.Fatalf("static+dynamic should equal total")
	}
}

func TestClampMemoryValue(t *testing.T) {
	cases := map[int]int{
		-200: MemoryMin,
		200:  MemoryMax,
		0:    0,
		-99:  -99,
		99:   99,
	}
	for in, want := range cases {
		if got := ClampMemoryValue(in); got != want {
			t.Fatalf("clamp(%d): got %d want %d", in, got, want)
		}
	}
}

func TestAgentMemorySplit(t *testing.T) {
	a := &Agent{Memory: NewMemoryBank()}
	for i := range a.StaticMemory() {
		a.Memory[i].Value = 1
	}
	for i := range a.DynamicMemory() {
		a.Memory[StaticMemoryCells+i].Value = 2
	}
	a.ResetDynamicMemory()
	for i, cell := range a.StaticMemory() {
		if cell.Value != 1 {
			t.Fatalf("static cell %d should be untouched by ResetDynamicMemory, got %d", i, cell.Value)
		}
	}
	for i, cell := range a.DynamicMemory() {
		if cell.Value != 0 {
			t.Fatalf("dynamic cell %d should be zeroed, got %d", i, cell.Value)
		}
	}
}
