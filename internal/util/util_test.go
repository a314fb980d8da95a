package util

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatMultiError(t *testing.T) {
	require.Equal(t, "", FormatMultiError(nil))
	require.Equal(t, "a\nb\n", FormatMultiError([]error{fmt.Errorf("a"), fmt.Errorf("b")}))
}
