package scoring

import "testing"

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{name: "plain", raw: "cat", want: "CAT", ok: true},
		{name: "already upper", raw: "CAT", want: "CAT", ok: true},
		{name: "surrounding whitespace", raw: "  flutter\n", want: "FLUTTER", ok: true},
		{name: "too short", raw: "at", ok: false},
		{name: "too long", raw: "overextending", ok: false},
		{name: "digits", raw: "cat2", ok: false},
		{name: "hyphen", raw: "co-op", ok: false},
		{name: "apostrophe", raw: "don't", ok: false},
		{name: "blank", raw: "   ", ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			word, ok := Validate(tc.raw, DefaultMinLen, DefaultMaxLen)
			if ok != tc.ok {
				t.Fatalf("Validate(%q) ok = %v, want %v", tc.raw, ok, tc.ok)
			}
			if ok && word != tc.want {
				t.Fatalf("Validate(%q) = %q, want %q", tc.raw, word, tc.want)
			}
		})
	}
}

func TestValidateCaseAndWhitespaceInsensitive(t *testing.T) {
	variants := []string{"cat", "CAT", "Cat", " cat ", "\tCaT\n"}
	for _, raw := range variants {
		word, ok := Validate(raw, DefaultMinLen, DefaultMaxLen)
		if !ok || word != "CAT" {
			t.Fatalf("Validate(%q) = %q, %v; want CAT, true", raw, word, ok)
		}
	}
}

func TestValidateBoundsInclusive(t *testing.T) {
	if _, ok := Validate("abc", 3, 5); !ok {
		t.Fatalf("expected length 3 to pass with min 3")
	}
	if _, ok := Validate("abcde", 3, 5); !ok {
		t.Fatalf("expected length 5 to pass with max 5")
	}
	if _, ok := Validate("abcdef", 3, 5); ok {
		t.Fatalf("expected length 6 to fail with max 5")
	}
}
