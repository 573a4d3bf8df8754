package validate_test

import (
	"testing"

	"dealradar/internal/validate"
)

func TestCoord(t *testing.T) {
	if v, ok := validate.Coord("12.9399"); !ok || v == nil || *v != 12.9399 {
		t.Fatalf("Coord(12.9399) = %v,%v", v, ok)
	}
	if v, ok := validate.Coord(""); !ok || v != nil {
		t.Fatalf("empty coord should be absent-and-valid, got %v,%v", v, ok)
	}
	if _, ok := validate.Coord("north"); ok {
		t.Fatal("garbage coord accepted")
	}
	if _, ok := validate.Coord("999"); ok {
		t.Fatal("out-of-range coord accepted")
	}
}

func TestFloat(t *testing.T) {
	if v, ok := validate.Float("", 5.0); !ok || v != 5.0 {
		t.Fatalf("default not applied: %v,%v", v, ok)
	}
	if v, ok := validate.Float("2.5", 5.0); !ok || v != 2.5 {
		t.Fatalf("Float(2.5) = %v,%v", v, ok)
	}
	if _, ok := validate.Float("-1", 5.0); ok {
		t.Fatal("negative accepted")
	}
}

func TestCategory(t *testing.T) {
	if c, ok := validate.Category("Retail"); !ok || c != "retail" {
		t.Fatalf("Category(Retail) = %q,%v", c, ok)
	}
	if _, ok := validate.Category("DROP TABLE"); ok {
		t.Fatal("bad category accepted")
	}
	if c, ok := validate.Category(""); !ok || c != "" {
		t.Fatalf("empty category should pass through: %q,%v", c, ok)
	}
}
