package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(t *testing.T, c *LRUCache)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache) {
				c.Set("a", []byte("1"))

				v, ok := c.Get("a")
				require.True(t, ok)
				assert.Equal(t, "1", string(v))
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(t *testing.T, c *LRUCache) {
				c.Set("a", []byte("1"))
				time.Sleep(time.Millisecond * 60)

				_, ok := c.Get("a")
				assert.False(t, ok)
			},
		},
		{
			name:     "evict oldest when over capacity",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache) {
				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				c.Set("c", []byte("3"))

				_, ok := c.Get("a")
				assert.False(t, ok, "oldest key should be evicted")

				v, ok := c.Get("b")
				require.True(t, ok)
				assert.Equal(t, "2", string(v))

				v, ok = c.Get("c")
				require.True(t, ok)
				assert.Equal(t, "3", string(v))
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(t *testing.T, c *LRUCache) {
				c.Set("a", []byte("1"))
				time.Sleep(time.Millisecond * 30)
				c.Set("a", []byte("2"))
				time.Sleep(time.Millisecond * 30)

				v, ok := c.Get("a")
				require.True(t, ok, "refreshed entry should outlive the original TTL")
				assert.Equal(t, "2", string(v))
			},
		},
		{
			name:     "delete removes key",
			capacity: 2,
			ttl:      time.Second,
			actions: func(t *testing.T, c *LRUCache) {
				c.Set("a", []byte("1"))
				c.Delete("a")

				_, ok := c.Get("a")
				assert.False(t, ok)
				assert.Zero(t, c.Size())
			},
		},
		{
			name:     "janitor removes expired",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(t *testing.T, c *LRUCache) {
				ctx, cancel := context.WithCancel(context.Background())
				defer cancel()
				require.NoError(t, c.Start(ctx))

				c.Set("a", []byte("1"))
				time.Sleep(time.Millisecond * 60)

				c.cleanup()

				_, ok := c.Get("a")
				assert.False(t, ok)
				assert.Zero(t, c.Size())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.actions(t, NewLRUCache(tt.capacity, tt.ttl))
		})
	}
}
