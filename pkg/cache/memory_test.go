package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()

	t.Run("get returns what set stored", func(t *testing.T) {
		m := NewMemory()
		if err := m.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
			t.Fatalf("set: %v", err)
		}
		data, ok, err := m.Get(ctx, "k")
		if err != nil || !ok {
			t.Fatalf("get: ok=%v err=%v", ok, err)
		}
		if string(data) != "v" {
			t.Fatalf("expected v, got %q", data)
		}
	})

	t.Run("missing key is a miss", func(t *testing.T) {
		m := NewMemory()
		_, ok, err := m.Get(ctx, "absent")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if ok {
			t.Fatal("expected a miss")
		}
	})

	t.Run("entry expires after ttl", func(t *testing.T) {
		m := NewMemory()
		clock := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
		m.now = func() time.Time { return clock }

		if err := m.Set(ctx, "k", []byte("v"), 10*time.Minute); err != nil {
			t.Fatalf("set: %v", err)
		}

		clock = clock.Add(9 * time.Minute)
		if _, ok, _ := m.Get(ctx, "k"); !ok {
			t.Fatal("expected hit before expiry")
		}

		clock = clock.Add(2 * time.Minute)
		if _, ok, _ := m.Get(ctx, "k"); ok {
			t.Fatal("expected miss after expiry")
		}
	})

	t.Run("delete removes the entry", func(t *testing.T) {
		m := NewMemory()
		if err := m.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
			t.Fatalf("set: %v", err)
		}
		if err := m.Delete(ctx, "k"); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, ok, _ := m.Get(ctx, "k"); ok {
			t.Fatal("expected miss after delete")
		}
	})

	t.Run("deleting a missing key is fine", func(t *testing.T) {
		m := NewMemory()
		if err := m.Delete(ctx, "absent"); err != nil {
			t.Fatalf("delete: %v", err)
		}
	})
}
