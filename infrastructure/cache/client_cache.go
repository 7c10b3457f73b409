package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/vfg2006/expert-metrics-api/internal/domain"
)

const clientsKey = "clients"

// ClientCache guarda a lista de clientes (abas da planilha) por um tempo definido
type ClientCache struct {
	store *gocache.Cache
	ttl   time.Duration
}

// NewClientCache cria o cache; ttl <= 0 desliga o cache (toda leitura é um miss)
func NewClientCache(ttl time.Duration) *ClientCache {
	cleanup := 2 * ttl
	if ttl <= 0 {
		cleanup = 0
	}

	return &ClientCache{
		store: gocache.New(ttl, cleanup),
		ttl:   ttl,
	}
}

// Get retorna uma cópia da lista em cache
func (c *ClientCache) Get() ([]domain.Client, bool) {
	if c == nil || c.ttl <= 0 {
		return nil, false
	}

	value, found := c.store.Get(clientsKey)
	if !found {
		return nil, false
	}

	clients, ok := value.([]domain.Client)
	if !ok {
		return nil, false
	}

	return append([]domain.Client(nil), clients...), true
}

func (c *ClientCache) Set(clients []domain.Client) {
	if c == nil || c.ttl <= 0 {
		return
	}
	c.store.Set(clientsKey, append([]domain.Client(nil), clients...), c.ttl)
}

// Invalidate descarta a lista; a próxima leitura busca na fonte
func (c *ClientCache) Invalidate() {
	if c == nil {
		return
	}
	c.store.Delete(clientsKey)
}

func (c *ClientCache) TTL() time.Duration {
	return c.ttl
}
