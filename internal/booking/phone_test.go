package booking

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		region   string
		expected string
	}{
		// Argentine numbers with the default region
		{"buenos aires landline", "011 4123-4567", "AR", "+541141234567"},
		{"already E.164", "+541141234567", "AR", "+541141234567"},

		// US numbers
		{"10 digits US", "(202) 555-0143", "US", "+12025550143"},
		{"E.164 US with spaces", "+1 202 555 0143", "US", "+12025550143"},

		// Kept as typed when not parseable as a valid number
		{"too short", "123", "AR", "123"},
		{"letters", "call me", "AR", "call me"},

		// Whitespace trimmed either way
		{"padded valid", "  +541141234567  ", "AR", "+541141234567"},
		{"padded invalid", "  99  ", "AR", "99"},

		{"empty", "", "AR", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePhone(tt.input, tt.region)
			if got != tt.expected {
				t.Errorf("NormalizePhone(%q, %q) = %q, want %q", tt.input, tt.region, got, tt.expected)
			}
		})
	}
}
