package browser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_EncodesQuery(t *testing.T) {
	s := NewSearcher("https://www.google.com/search?q=")

	got := s.URL("qu'est-ce que la photosynthèse ?")

	assert.Equal(t,
		"https://www.google.com/search?q=qu%27est-ce+que+la+photosynth%C3%A8se+%3F",
		got)
}

func TestOpen_DispatchesBuiltURL(t *testing.T) {
	s := NewSearcher("https://duckduckgo.com/?q=")

	var opened string
	s.open = func(_ context.Context, url string) error {
		opened = url
		return nil
	}

	require.NoError(t, s.Open(context.Background(), "photosynthèse"))
	assert.Equal(t, "https://duckduckgo.com/?q=photosynth%C3%A8se", opened)
}
