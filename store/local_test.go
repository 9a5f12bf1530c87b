package store

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestLocalGetSetDel(t *testing.T) {
	ctx := context.Background()
	s := NewLocal()
	t.Cleanup(func() { _ = s.Close(ctx) })

	if _, ok, err := s.Get(ctx, "k"); err != nil || ok {
		t.Fatalf("empty store: ok=%v err=%v", ok, err)
	}

	if ok, err := s.Set(ctx, "k", []byte("v"), 0); err != nil || !ok {
		t.Fatalf("Set: ok=%v err=%v", ok, err)
	}
	got, ok, err := s.Get(ctx, "k")
	if err != nil || !ok || !bytes.Equal(got, []byte("v")) {
		t.Fatalf("Get: ok=%v err=%v got=%q", ok, err, got)
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}

	if err := s.Del(ctx, "k"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Fatal("Get after Del should miss")
	}
	if s.Len() != 0 {
		t.Fatalf("Len = %d, want 0", s.Len())
	}
}

// TestLocalCopiesBytes guards byte-for-byte transparency: mutating the
// caller's slice after Set, or the returned slice after Get, must not leak
// into the store.
func TestLocalCopiesBytes(t *testing.T) {
	ctx := context.Background()
	s := NewLocal()
	t.Cleanup(func() { _ = s.Close(ctx) })

	in := []byte("abc")
	if _, err := s.Set(ctx, "k", in, 0); err != nil {
		t.Fatal(err)
	}
	in[0] = 'x'

	got, _, _ := s.Get(ctx, "k")
	if !bytes.Equal(got, []byte("abc")) {
		t.Fatalf("store aliased caller bytes: %q", got)
	}
	got[0] = 'y'

	got2, _, _ := s.Get(ctx, "k")
	if !bytes.Equal(got2, []byte("abc")) {
		t.Fatalf("store aliased returned bytes: %q", got2)
	}
}

func TestLocalTTLExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewLocal()
	t.Cleanup(func() { _ = s.Close(ctx) })

	if _, err := s.Set(ctx, "k", []byte("v"), 20*time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.Get(ctx, "k"); !ok {
		t.Fatal("entry should be live before TTL")
	}
	time.Sleep(40 * time.Millisecond)
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Fatal("entry should expire after TTL")
	}
}

func TestLocalZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	s := NewLocal()
	t.Cleanup(func() { _ = s.Close(ctx) })

	if _, err := s.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, ok, _ := s.Get(ctx, "k"); !ok {
		t.Fatal("zero TTL must mean no expiry")
	}
}
