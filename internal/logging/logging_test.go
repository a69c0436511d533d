package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSetGlobalLogger(t *testing.T) {
	t.Cleanup(func() { SetGlobalLogger(zerolog.Nop()) })

	var buf bytes.Buffer
	SetGlobalLogger(zerolog.New(&buf).Level(zerolog.InfoLevel))

	Debug().Msg("hidden")
	Info().Str("schema", "a.graphql").Msg("composed schema")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"schema":"a.graphql"`)
	require.Contains(t, buf.String(), `"message":"composed schema"`)
	require.Same(t, &Logger, zerolog.DefaultContextLogger)
}
