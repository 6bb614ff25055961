package importer

import "testing"

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"250", 250},
		{"₹250", 250},
		{"12.50", 12.5},
		{"$ 99", 99},
		{"abc", 0},
		{"", 0},
	}

	for _, tc := range cases {
		if got := ParsePrice(tc.in); got != tc.want {
			t.Errorf("ParsePrice(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseTruthy(t *testing.T) {
	truthy := []string{"yes", "Yes", "TRUE", "1", " yes "}
	for _, in := range truthy {
		if !parseTruthy(in) {
			t.Errorf("parseTruthy(%q) = false, want true", in)
		}
	}

	falsy := []string{"", "no", "0", "false", "maybe"}
	for _, in := range falsy {
		if parseTruthy(in) {
			t.Errorf("parseTruthy(%q) = true, want false", in)
		}
	}
}

func TestParseAvailable(t *testing.T) {
	// Available unless explicitly marked otherwise
	available := []string{"", "yes", "true", "1", "anything"}
	for _, in := range available {
		if !parseAvailable(in) {
			t.Errorf("parseAvailable(%q) = false, want true", in)
		}
	}

	unavailable := []string{"no", "No", "FALSE", "0"}
	for _, in := range unavailable {
		if parseAvailable(in) {
			t.Errorf("parseAvailable(%q) = true, want false", in)
		}
	}
}

func TestParsePrepTime(t *testing.T) {
	if got := parsePrepTime("20"); got != 20 {
		t.Errorf("expected 20, got %d", got)
	}
	if got := parsePrepTime(""); got != defaultPrepTimeMinute {
		t.Errorf("expected default, got %d", got)
	}
	if got := parsePrepTime("soon"); got != defaultPrepTimeMinute {
		t.Errorf("expected default for garbage, got %d", got)
	}
	if got := parsePrepTime("-5"); got != defaultPrepTimeMinute {
		t.Errorf("expected default for negative, got %d", got)
	}
}
