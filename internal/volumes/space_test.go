package volumes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUsage(t *testing.T) {
	info, err := Usage(t.TempDir())
	require.NoError(t, err)
	require.NotZero(t, info.Total)
	require.NotEmpty(t, info.Fstype)
}

func TestUsageMissingPath(t *testing.T) {
	_, err := Usage("/does/not/exist")
	require.Error(t, err)
}

func TestValidateDestinationSpace(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, ValidateDestinationSpace(dir, 0))

	// No filesystem has MaxInt64 bytes free.
	err := ValidateDestinationSpace(dir, math.MaxInt64)
	require.Error(t, err)
	require.Contains(t, err.Error(), "insufficient space")
}
