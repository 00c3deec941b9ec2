package auction

import (
	"errors"
	"testing"
	"time"

	"github.com/hammerlot/auctiondex/internal/domain"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNew_Valid(t *testing.T) {
	a, err := New("a1", "  Gaming Laptop ", " High-end laptop ", 1000, 1200, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Title() != "Gaming Laptop" {
		t.Errorf("expected trimmed title, got %q", a.Title())
	}
	if a.Description() != "High-end laptop" {
		t.Errorf("expected trimmed description, got %q", a.Description())
	}
	if a.StartPrice() != 1000 || a.ReservePrice() != 1200 {
		t.Errorf("unexpected prices: %g / %g", a.StartPrice(), a.ReservePrice())
	}
	if !a.CreatedAt().Equal(testNow) || !a.UpdatedAt().Equal(testNow) {
		t.Errorf("timestamps not set to now")
	}
}

func TestNew_ReserveBelowStartAllowed(t *testing.T) {
	// No invariant between the two prices.
	if _, err := New("a1", "Vintage Guitar", "1960s acoustic", 300, 100, testNow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		title, desc    string
		start, reserve float64
	}{
		{"empty id", "", "Title", "Desc", 1, 1},
		{"empty title", "a1", "", "Desc", 1, 1},
		{"blank title", "a1", "   ", "Desc", 1, 1},
		{"empty description", "a1", "Title", "", 1, 1},
		{"blank description", "a1", "Title", "\t ", 1, 1},
		{"negative start price", "a1", "Title", "Desc", -1, 1},
		{"negative reserve price", "a1", "Title", "Desc", 1, -0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.id, tt.title, tt.desc, tt.start, tt.reserve, testNow)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, domain.ErrInvalidAuction) {
				t.Errorf("expected ErrInvalidAuction, got %v", err)
			}
		})
	}
}

func TestNew_ZeroPricesAllowed(t *testing.T) {
	if _, err := New("a1", "Free Stuff", "Starts at nothing", 0, 0, testNow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReconstruct_NoValidation(t *testing.T) {
	created := testNow.Add(-time.Hour)
	a := Reconstruct("a1", "", "", -5, -5, created, testNow)
	if a.ID() != "a1" {
		t.Errorf("expected id a1, got %q", a.ID())
	}
	if a.StartPrice() != -5 {
		t.Errorf("Reconstruct must not validate, got start price %g", a.StartPrice())
	}
	if !a.CreatedAt().Equal(created) {
		t.Errorf("unexpected created_at: %v", a.CreatedAt())
	}
}
