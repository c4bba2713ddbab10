package types

import "testing"

func TestRRClass_IsValid(t *testing.T) {
	cases := []struct {
		c    RRClass
		want bool
	}{
		{1, true}, {3, true}, {4, true}, {254, true}, {255, true},
		{0, false}, {2, false}, {5, false}, {253, false}, {9999, false},
	}
	for _, tc := range cases {
		if got := tc.c.IsValid(); got != tc.want {
			t.Errorf("IsValid(%d) = %v, want %v", tc.c, got, tc.want)
		}
	}
}

func TestRRClass_String(t *testing.T) {
	cases := []struct {
		c    RRClass
		want string
	}{
		{RRClassIN, "IN"}, {RRClassCH, "CH"}, {RRClassHS, "HS"},
		{RRClassNONE, "NONE"}, {RRClassANY, "ANY"}, {9999, "UNKNOWN"},
	}
	for _, tc := range cases {
		if got := tc.c.String(); got != tc.want {
			t.Errorf("String(%d) = %q, want %q", tc.c, got, tc.want)
		}
	}
}

func TestParseRRClass(t *testing.T) {
	cases := []struct {
		in   string
		want RRClass
	}{
		{"IN", RRClassIN}, {"CH", RRClassCH}, {"HS", RRClassHS},
		{"NONE", RRClassNONE}, {"ANY", RRClassANY}, {"bogus", 0},
	}
	for _, tc := range cases {
		if got := ParseRRClass(tc.in); got != tc.want {
			t.Errorf("ParseRRClass(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
