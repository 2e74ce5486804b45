package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmed(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"o\n", true},
		{"oui\n", true},
		{"OUI\n", true},
		{"y\n", true},
		{"yes\n", true},
		{"  oui  \n", true},
		{"n\n", false},
		{"non\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, confirmed(strings.NewReader(tc.input)), "input %q", tc.input)
	}
}

func TestHostOf(t *testing.T) {
	assert.Equal(t, "example.org", hostOf("https://example.org/page?x=1"))
	assert.Equal(t, "example.org", hostOf("example.org/page"))
	assert.Equal(t, "localhost:8080", hostOf("http://localhost:8080/health"))
	assert.Equal(t, "", hostOf(""))
}
