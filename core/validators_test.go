package core

import "testing"

func TestIsValidID(t *testing.T) {
	tests := []struct {
		name string
		id   int
		want bool
	}{
		{name: "zero", id: 0, want: false},
		{name: "negative", id: -1, want: false},
		{name: "lower bound", id: 1, want: true},
		{name: "upper bound", id: 999999, want: true},
		{name: "above upper bound", id: 1000000, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidID(tt.id); got != tt.want {
				t.Errorf("IsValidID(%d) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "empty is optional", email: "", want: true},
		{name: "simple", email: "amani@shule.ac.tz", want: true},
		{name: "local part specials", email: "a.b_c%d+e-f@shule.io", want: true},
		{name: "no at", email: "amani.shule.ac.tz", want: false},
		{name: "no tld", email: "amani@shule", want: false},
		{name: "one letter tld", email: "amani@shule.a", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{name: "empty is optional", phone: "", want: true},
		{name: "plain digits", phone: "0712345678", want: true},
		{name: "international", phone: "+255 712 345 678", want: true},
		{name: "parentheses", phone: "(021) 555-0199", want: true},
		{name: "too short", phone: "12345", want: false},
		{name: "too long", phone: "1234567890123456", want: false},
		{name: "letters", phone: "07123456ab", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPhone(tt.phone); got != tt.want {
				t.Errorf("IsValidPhone(%q) = %v, want %v", tt.phone, got, tt.want)
			}
		})
	}
}

func TestIsValidName(t *testing.T) {
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	tests := []struct {
		name string
		arg  string
		want bool
	}{
		{name: "empty", arg: "", want: false},
		{name: "simple", arg: "Neema Juma", want: true},
		{name: "apostrophe and dot", arg: "D'Souza Jr.", want: true},
		{name: "hyphen", arg: "Mary-Anne", want: true},
		{name: "too long", arg: string(long), want: false},
		{name: "delimiter char", arg: "Neema|Juma", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidName(tt.arg); got != tt.want {
				t.Errorf("IsValidName(%q) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}
}

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "trim", in: "  hello  ", want: "hello"},
		{name: "collapse spaces", in: "a   b\t c", want: "a b c"},
		{name: "strip delimiter", in: "a|b|c", want: "abc"},
		{name: "strip line breaks", in: "a\nb\rc", want: "a b c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeText(tt.in); got != tt.want {
				t.Errorf("SanitizeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
