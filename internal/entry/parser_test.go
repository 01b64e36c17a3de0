package entry

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain integer", "14", "14"},
		{"decimal", "15.5", "15.5"},
		{"negative", "-3.2", "-3.2"},
		{"leading and trailing spaces", "  0.30  ", "0.3"},
		{"empty", "", "0"},
		{"whitespace only", "   ", "0"},
		{"garbage", "abc", "0"},
		{"partial number", "12km", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.input)
			if got.String() != tt.expected {
				t.Errorf("ParseAmount(%q) = %s, expected %s", tt.input, got, tt.expected)
			}
		})
	}
}
