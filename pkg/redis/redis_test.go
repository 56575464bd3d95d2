package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r, err := New("localhost:6379", Password("secret"), DB(2), PoolSize(0))
	require.NoError(t, err)
	t.Cleanup(r.Close)

	opts := r.Client.Options()
	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Positive(t, opts.PoolSize)
	assert.Equal(t, _defaultDialTimeout, opts.DialTimeout)

	r, err = New("localhost:6379", PoolSize(7))
	require.NoError(t, err)
	t.Cleanup(r.Close)
	assert.Equal(t, 7, r.Client.Options().PoolSize)

	_, err = New("")
	assert.Error(t, err)
}
