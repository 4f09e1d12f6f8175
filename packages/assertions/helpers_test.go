package assertions

import (
	"testing"

	"github.com/abdul-hamid-achik/expect/packages/assert"
	"github.com/stretchr/testify/require"
)

// failureOf runs fn and returns the message of the failure it must raise.
func failureOf(t *testing.T, fn func(c *assert.Context), opts ...assert.Option) string {
	t.Helper()
	err := assert.Run(fn, opts...)
	require.Error(t, err)
	return err.Error()
}

func passes(t *testing.T, fn func(c *assert.Context), opts ...assert.Option) {
	t.Helper()
	require.NoError(t, assert.Run(fn, opts...))
}
