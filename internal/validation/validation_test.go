package validation

import "testing"

func TestRequired(t *testing.T) {
	v := Violations{}
	Required("name", "  ", v)
	Required("email", "a@b.c", v)
	if v["name"] != "required" {
		t.Fatalf("blank field should violate: %+v", v)
	}
	if _, ok := v["email"]; ok {
		t.Fatalf("filled field should not violate: %+v", v)
	}
}

func TestParsePositiveFloat(t *testing.T) {
	cases := []struct {
		raw  string
		want string // expected violation, empty for none
	}{
		{"12.99", ""},
		{"", "required"},
		{"abc", "not_a_number"},
		{"0", "must_be_positive"},
		{"-5", "must_be_positive"},
	}
	for _, tc := range cases {
		v := Violations{}
		ParsePositiveFloat("price", tc.raw, v)
		if got := v["price"]; got != tc.want {
			t.Fatalf("ParsePositiveFloat(%q): violation %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestParseNonNegativeInt(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"0", ""},
		{"500", ""},
		{"", "required"},
		{"1.5", "not_an_integer"},
		{"-1", "must_be_non_negative"},
	}
	for _, tc := range cases {
		v := Violations{}
		ParseNonNegativeInt("inStock", tc.raw, v)
		if got := v["inStock"]; got != tc.want {
			t.Fatalf("ParseNonNegativeInt(%q): violation %q, want %q", tc.raw, got, tc.want)
		}
	}
}
