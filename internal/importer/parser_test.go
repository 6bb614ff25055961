package importer

import (
	"strings"
	"testing"
)

func TestParseRows_Valid(t *testing.T) {
	file := "Restaurant Name,Name,Price,Category,Veg,Prep Time\n" +
		"Spice Garden,Paneer Tikka,250,Starters,yes,20\n" +
		"Spice Garden,Veg Biryani,180,,no,\n"

	rows, err := ParseRows(strings.NewReader(file))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	if rows[0].RestaurantName != "Spice Garden" {
		t.Errorf("expected 'Spice Garden', got %q", rows[0].RestaurantName)
	}
	if rows[0].ItemName != "Paneer Tikka" {
		t.Errorf("expected 'Paneer Tikka', got %q", rows[0].ItemName)
	}
	if rows[0].Price != "250" {
		t.Errorf("expected '250', got %q", rows[0].Price)
	}
	if rows[0].CategoryName != "Starters" {
		t.Errorf("expected 'Starters', got %q", rows[0].CategoryName)
	}

	if rows[1].CategoryName != "" {
		t.Errorf("expected blank category, got %q", rows[1].CategoryName)
	}
	if rows[1].PrepTime != "" {
		t.Errorf("expected blank prep time, got %q", rows[1].PrepTime)
	}
}

func TestParseRows_HeaderCaseInsensitive(t *testing.T) {
	file := "restaurant name,NAME,Price\nSpice Garden,Samosa,40\n"

	rows, err := ParseRows(strings.NewReader(file))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 1 || rows[0].ItemName != "Samosa" {
		t.Fatalf("header matching failed: %+v", rows)
	}
}

func TestParseRows_MissingRequiredColumn(t *testing.T) {
	file := "Restaurant Name,Name,Category\nSpice Garden,Samosa,Starters\n"

	_, err := ParseRows(strings.NewReader(file))
	if err == nil {
		t.Fatal("expected error for missing Price column")
	}
	if !strings.Contains(err.Error(), "price") {
		t.Errorf("expected error to name the missing column, got %q", err.Error())
	}
}

func TestParseRows_MalformedFile(t *testing.T) {
	// Ragged row: fewer fields than the header
	file := "Restaurant Name,Name,Price\nSpice Garden,Samosa\n"

	_, err := ParseRows(strings.NewReader(file))
	if err == nil {
		t.Fatal("expected error for structurally malformed csv")
	}
}

func TestParseRows_EmptyFile(t *testing.T) {
	_, err := ParseRows(strings.NewReader(""))
	if err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestParseRows_HeaderOnly(t *testing.T) {
	rows, err := ParseRows(strings.NewReader("Restaurant Name,Name,Price\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected 0 rows, got %d", len(rows))
	}
}
