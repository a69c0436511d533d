package invariant

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorf(t *testing.T) {
	err := Errorf("expected %s to be an object type", "Entity")
	require.EqualError(t, err, "invariant violation: expected Entity to be an object type")
	require.True(t, Is(err))
	require.True(t, Is(fmt.Errorf("wrapped: %w", err)))
	require.False(t, Is(fmt.Errorf("plain")))
	require.False(t, Is(nil))
}
