package directory_test

import (
	"errors"
	"testing"

	"dealradar/internal/directory"
	"dealradar/internal/domain"
)

func f(v float64) *float64 { return &v }

func TestResolveByName(t *testing.T) {
	d := directory.Default()

	stores, err := d.Resolve("Jayanagar 2nd Block, Bengaluru", nil, nil, "retail")
	if err != nil {
		t.Fatal(err)
	}
	if len(stores) != 3 {
		t.Fatalf("want 3 Jayanagar retail stores, got %d", len(stores))
	}
	for _, b := range stores {
		if b.Category != "retail" {
			t.Fatalf("category filter leaked: %+v", b)
		}
	}

	// Neighborhood alias wins over the containing city alias.
	stores, err = d.Resolve("Brigade Road, Bengaluru", nil, nil, "all")
	if err != nil {
		t.Fatal(err)
	}
	if len(stores) != 4 {
		t.Fatalf("want 4 Brigade Road stores, got %d", len(stores))
	}
}

func TestResolveByCoords(t *testing.T) {
	d := directory.Default()

	stores, err := d.Resolve("", f(37.7749), f(-122.4194), "restaurant")
	if err != nil {
		t.Fatal(err)
	}
	if len(stores) != 2 {
		t.Fatalf("want 2 SF restaurants, got %d", len(stores))
	}
}

func TestResolveUnknownLocationIsEmptyNotError(t *testing.T) {
	d := directory.Default()

	stores, err := d.Resolve("Narnia", nil, nil, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(stores) != 0 {
		t.Fatalf("want empty list for unknown name, got %d", len(stores))
	}

	stores, err = d.Resolve("", f(51.5072), f(-0.1276), "")
	if err != nil {
		t.Fatal(err)
	}
	if len(stores) != 0 {
		t.Fatalf("want empty list outside all boxes, got %d", len(stores))
	}
}

func TestResolveRequiresLocation(t *testing.T) {
	d := directory.Default()

	if _, err := d.Resolve("", nil, nil, "retail"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
	// One coordinate alone is not enough.
	if _, err := d.Resolve("", f(12.9), nil, ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput with half a pair, got %v", err)
	}
}
