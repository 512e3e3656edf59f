//go:build unit

package errs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := New("slot taken")
	cause := New("duplicate key")

	t.Run("marked error matches the sentinel", func(t *testing.T) {
		err := Mark(cause, sentinel)
		require.ErrorIs(t, err, sentinel)
	})

	t.Run("cause stays reachable through the chain", func(t *testing.T) {
		err := Mark(cause, sentinel)
		require.ErrorIs(t, err, cause)
		assert.Equal(t, cause.Error(), err.Error())
	})

	t.Run("nested marks all match", func(t *testing.T) {
		outer := New("query failed")
		err := Mark(Mark(cause, sentinel), outer)
		require.ErrorIs(t, err, outer)
		require.ErrorIs(t, err, sentinel)
	})

	t.Run("nil err yields the mark itself", func(t *testing.T) {
		require.ErrorIs(t, Mark(nil, sentinel), sentinel)
	})

	t.Run("verbose format keeps wrap context", func(t *testing.T) {
		err := Mark(Wrap(cause, "insert booking"), sentinel)
		assert.Contains(t, fmt.Sprintf("%+v", err), "insert booking")
	})
}
