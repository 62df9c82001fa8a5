package storage_test

import (
	"testing"

	"botilleria/internal/storage"
)

func TestSQLiteRoundtrip(t *testing.T) {
	kv, err := storage.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer kv.Close()

	if _, ok, err := kv.Get("products"); err != nil || ok {
		t.Fatalf("missing key should be absent without error, got ok=%v err=%v", ok, err)
	}

	if err := kv.Set("products", `[{"code":"780432001"}]`); err != nil {
		t.Fatal(err)
	}
	v, ok, err := kv.Get("products")
	if err != nil || !ok || v != `[{"code":"780432001"}]` {
		t.Fatalf("bad read back: %q ok=%v err=%v", v, ok, err)
	}

	// overwrite
	if err := kv.Set("products", `[]`); err != nil {
		t.Fatal(err)
	}
	v, _, _ = kv.Get("products")
	if v != `[]` {
		t.Fatalf("want overwritten value, got %q", v)
	}
}

func TestMemoryFailWrites(t *testing.T) {
	kv := storage.NewMemory()
	if err := kv.Set("sales", "[]"); err != nil {
		t.Fatal(err)
	}
	kv.FailWrites = true
	if err := kv.Set("sales", "[1]"); err == nil {
		t.Fatal("want write failure")
	}
	v, ok, _ := kv.Get("sales")
	if !ok || v != "[]" {
		t.Fatalf("failed write must not change the stored value, got %q", v)
	}
}
