package docker

import "testing"

func TestShortID(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"sha256:4e5021d210f65ebe915670c7089120120bc0a303b90208592851708c1b884c14", "4e5021d210f6"},
		{"4e5021d210f65ebe", "4e5021d210f6"},
		{"sha256:4e50", "4e50"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ShortID(tc.in); got != tc.want {
			t.Errorf("ShortID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
