package mailer

import "testing"

func TestStripTags(t *testing.T) {
	cases := map[string]string{
		"<p>Hello <strong>there</strong></p>": "Hello there",
		"plain text":                          "plain text",
		"<div>\n  spaced\n  out\n</div>":      "spaced out",
		"":                                    "",
	}
	for in, want := range cases {
		if got := stripTags(in); got != want {
			t.Fatalf("stripTags(%q) = %q, want %q", in, got, want)
		}
	}
}
