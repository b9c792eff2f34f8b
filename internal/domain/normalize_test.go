package domain

import "testing"

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "Ada Lovelace", "ada lovelace"},
		{"trim", "  engineer  ", "engineer"},
		{"compress spaces", "site   reliability   engineer", "site reliability engineer"},
		{"empty", "", ""},
		{"only spaces", "    ", ""},
		{"preserves hyphens and apostrophes", "Jean-Luc O'Brien", "jean-luc o'brien"},
		{"preserves diacritics", "Zoë", "zoë"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeText(tc.in); got != tc.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
