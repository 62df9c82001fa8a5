package validate_test

import (
	"strings"
	"testing"

	"botilleria/internal/validate"
)

func TestCode(t *testing.T) {
	if _, ok := validate.Code("12345"); ok {
		t.Fatal("codes shorter than 6 must fail")
	}
	if v, ok := validate.Code(" 780432001 "); !ok || v != "780432001" {
		t.Fatalf("want trimmed valid code, got %q ok=%v", v, ok)
	}
	if _, ok := validate.Code("abc 123"); ok {
		t.Fatal("spaces are not barcode characters")
	}
}

func TestName(t *testing.T) {
	if _, ok := validate.Name("   "); ok {
		t.Fatal("blank name must fail")
	}
	if _, ok := validate.Name(strings.Repeat("x", 51)); ok {
		t.Fatal("names over 50 chars must fail")
	}
	if v, ok := validate.Name(" Cerveza Escudo "); !ok || v != "Cerveza Escudo" {
		t.Fatalf("want trimmed name, got %q ok=%v", v, ok)
	}
}

func TestPrice(t *testing.T) {
	if _, ok := validate.Price("0"); ok {
		t.Fatal("zero price must fail")
	}
	if _, ok := validate.Price("-10"); ok {
		t.Fatal("negative price must fail")
	}
	if f, ok := validate.Price("1250.50"); !ok || f != 1250.50 {
		t.Fatalf("want 1250.50, got %v ok=%v", f, ok)
	}
}

func TestTerm(t *testing.T) {
	if _, ok := validate.Term("<script>"); ok {
		t.Fatal("markup must fail")
	}
	if v, ok := validate.Term(" cerveza "); !ok || v != "cerveza" {
		t.Fatalf("want trimmed term, got %q ok=%v", v, ok)
	}
}

func TestDate(t *testing.T) {
	if _, ok := validate.Date("2026-02-30"); ok {
		t.Fatal("impossible date must fail")
	}
	if d, ok := validate.Date("2026-08-01"); !ok || d.Day() != 1 {
		t.Fatalf("want Aug 1, got %v ok=%v", d, ok)
	}
}

func TestQty(t *testing.T) {
	if _, ok := validate.Qty("0"); ok {
		t.Fatal("zero qty must fail")
	}
	if n, ok := validate.Qty(" 3 "); !ok || n != 3 {
		t.Fatalf("want 3, got %d ok=%v", n, ok)
	}
}
