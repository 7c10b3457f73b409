package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/expert-metrics-api/internal/domain"
)

func TestClientCache(t *testing.T) {
	c := NewClientCache(time.Minute)

	_, found := c.Get()
	assert.False(t, found)

	clients := []domain.Client{{Name: "Ana", GID: "1", Slug: "ana"}}
	c.Set(clients)

	cached, found := c.Get()
	require.True(t, found)
	assert.Equal(t, clients, cached)

	// a cópia devolvida não altera o cache
	cached[0].Name = "Outra"
	again, _ := c.Get()
	assert.Equal(t, "Ana", again[0].Name)

	c.Invalidate()
	_, found = c.Get()
	assert.False(t, found)
}

func TestClientCache_Expiration(t *testing.T) {
	c := NewClientCache(20 * time.Millisecond)
	c.Set([]domain.Client{{Name: "Ana"}})

	time.Sleep(40 * time.Millisecond)

	_, found := c.Get()
	assert.False(t, found)
}

func TestClientCache_Disabled(t *testing.T) {
	c := NewClientCache(0)
	c.Set([]domain.Client{{Name: "Ana"}})

	_, found := c.Get()
	assert.False(t, found)

	var nilCache *ClientCache
	_, found = nilCache.Get()
	assert.False(t, found)
	nilCache.Invalidate()
}
