package utils

import (
	"net/url"
	"testing"
)

func TestGenerateRandomDigitString(t *testing.T) {
	otp := GenerateRandomDigitString(6)
	if len(otp) != 6 {
		t.Fatalf("expected 6 characters, got %d", len(otp))
	}
	for _, r := range otp {
		if r < '0' || r > '9' {
			t.Fatalf("non-digit %q in %q", r, otp)
		}
	}
}

func TestGenerateRandomStringLength(t *testing.T) {
	if got := GenerateRandomString(10); len(got) != 10 {
		t.Fatalf("expected 10 characters, got %d", len(got))
	}
}

func TestParsePagination(t *testing.T) {
	cases := []struct {
		query             string
		page, limit, skip int
	}{
		{"", 1, 10, 0},
		{"page=3&limit=20", 3, 20, 40},
		{"page=0&limit=-5", 1, 10, 0},
		{"page=abc", 1, 10, 0},
	}
	for _, tc := range cases {
		q, _ := url.ParseQuery(tc.query)
		page, limit, skip := ParsePagination(q, 10)
		if page != tc.page || limit != tc.limit || skip != tc.skip {
			t.Fatalf("%q: got page=%d limit=%d skip=%d, want %d/%d/%d",
				tc.query, page, limit, skip, tc.page, tc.limit, tc.skip)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"../../etc/passwd": "passwd",
		"photo (1).png":    "photo__1_.png",
	}
	for in, want := range cases {
		if got := SanitizeFilename(in); got != want {
			t.Fatalf("SanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
