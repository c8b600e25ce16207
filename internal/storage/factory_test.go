package storage

import "testing"

func TestNewStoreDefaultsToMemory(t *testing.T) {
	store, err := NewStore("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := store.(*MemoryStore); !ok {
		t.Fatalf("expected the empty kind to resolve to *MemoryStore, got %T", store)
	}
}

func TestNewStoreExplicitMemory(t *testing.T) {
	store, err := NewStore("memory", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := store.(*MemoryStore); !ok {
		t.Fatalf("expected \"memory\" to resolve to *MemoryStore, got %T", store)
	}
}

func TestNewStoreRejectsUnknownKind(t *testing.T) {
	_, err := NewStore("postgres", "")
	if err == nil {
		t.Fatalf("expected an error for an unrecognized store kind")
	}
}
