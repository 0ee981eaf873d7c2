package cache

import (
	"testing"
	"time"
)

func TestMemoryStore_SetGet(t *testing.T) {
	ms := NewMemoryStore()

	ms.Set("token", "valid", time.Minute)

	value, ok := ms.Get("token")
	if !ok || value != "valid" {
		t.Fatalf("expected stored value, got %q (ok=%v)", value, ok)
	}
}

func TestMemoryStore_ExpiredEntryReadsAsAbsent(t *testing.T) {
	ms := NewMemoryStore()

	ms.Set("token", "valid", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	if _, ok := ms.Get("token"); ok {
		t.Fatal("expired entry must read as absent")
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	ms := NewMemoryStore()

	ms.Set("token", "valid", time.Minute)
	ms.Delete("token")

	if _, ok := ms.Get("token"); ok {
		t.Fatal("deleted entry must be gone")
	}
}
