package util

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWords(t *testing.T) {
	words := Words(42, 100, 6)
	require.Len(t, words, 100)

	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		assert.Len(t, w, 6)
		assert.NotContains(t, seen, w)
		seen[w] = struct{}{}
	}
	assert.Equal(t, words, Words(42, 100, 6))
	assert.NotEqual(t, words, Words(43, 100, 6))
}

func TestTimeThis(t *testing.T) {
	var buf bytes.Buffer
	saved := log.Logger
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	defer func() { log.Logger = saved }()

	func() {
		defer TimeThis(Msg("fill"))
		time.Sleep(time.Millisecond)
	}()
	assert.Contains(t, buf.String(), `"message":"fill"`)
	assert.Contains(t, buf.String(), `"elapsed":`)
}
