package validation

import "testing"

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"valid mixed case", "Alice5", false},
		{"valid minimum length", "AbcDe", false},
		{"empty", "", true},
		{"too short", "AbCd", true},
		{"no uppercase", "alicebob", true},
		{"no lowercase", "ALICEBOB", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUsername(%q) error = %v, wantErr %v", tt.username, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid with dollar", "abc1$", false},
		{"valid with at sign", "Pass1@", false},
		{"empty", "", true},
		{"too short", "a1$", true},
		{"missing digit", "abcd$", true},
		{"missing letter", "1234$", true},
		{"missing special", "abcd1", true},
		{"wrong special", "abcd1!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePassword(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid", "player@example.com", false},
		{"valid with plus", "player+tag@example.co.uk", false},
		{"empty", "", true},
		{"missing at", "playerexample.com", true},
		{"missing domain", "player@", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeWord(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"already uppercase", "APPLE", "APPLE", false},
		{"lowercase input", "apple", "APPLE", false},
		{"mixed case with spaces", "  LeMoN ", "LEMON", false},
		{"too short", "CAT", "", true},
		{"too long", "DRAGON", "", true},
		{"digits", "AB1DE", "", true},
		{"punctuation", "AB-DE", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeWord(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeWord(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NormalizeWord(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
