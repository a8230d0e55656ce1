package registry

import "testing"

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("4.6")
	if err != nil {
		t.Fatalf("ParseVersion: %v", err)
	}
	if !v.Valid() {
		t.Error("parsed version reports invalid")
	}
	if v.Major() != 4 || v.Minor() != 6 {
		t.Errorf("got %d.%d, want 4.6", v.Major(), v.Minor())
	}
	if v.String() != "4.6" {
		t.Errorf("String() = %q, want %q", v.String(), "4.6")
	}
}

func TestParseVersionRejects(t *testing.T) {
	for _, s := range []string{"", "4", "4.6.1", "4.x", "v4.6", "4.6 ", "four.six"} {
		if _, err := ParseVersion(s); err == nil {
			t.Errorf("ParseVersion(%q) succeeded, want error", s)
		}
	}
}

func TestVersionCompare(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"1.0", "1.0", 0},
		{"1.0", "1.1", -1},
		{"1.1", "1.0", 1},
		{"1.9", "2.0", -1},
		{"2.0", "1.9", 1},
		{"10.0", "9.9", 1},
	}
	for _, tc := range cases {
		a, b := MustVersion(tc.a), MustVersion(tc.b)
		if got := a.Compare(b); got != tc.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestZeroVersionInvalid(t *testing.T) {
	var v Version
	if v.Valid() {
		t.Error("zero Version reports valid")
	}
	if v.String() != "<invalid>" {
		t.Errorf("zero Version String() = %q", v.String())
	}
}
