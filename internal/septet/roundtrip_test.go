package septet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Verify(t *testing.T) {
	require.NoError(t, Verify(nil))
	require.NoError(t, Verify([]byte{1, 2, 3, 4, 5, 6, 7, 8}))
	require.NoError(t, Verify(hello))
	require.NoError(t, Verify(make([]byte, 7)))

	err := Verify(make([]byte, 8))
	require.Error(t, err)

	var rtErr *RoundTripError
	require.True(t, errors.As(err, &rtErr))
	require.Len(t, rtErr.Expected, 8)
	require.Len(t, rtErr.Actual, 7)
	require.Contains(t, err.Error(), "trailing zero")

	err = Verify([]byte{0x80})
	var domainErr *DomainError
	require.True(t, errors.As(err, &domainErr))
}
