package insurers

import (
	"net/http"
	"strings"
	"sync"

	"broker_quotes/internal/domain/entities"
	"broker_quotes/internal/usecase/interfaces"
)

// AdapterFactory builds the adapter serving one connection.
type AdapterFactory func(conn entities.InsurerConnection) interfaces.IInsurerAdapter

// Registry maps adapter type identifiers to adapter factories.
//
// Unmatched identifiers resolve to the fallback factory, so a misconfigured
// or newly added insurer always gets an adapter instead of failing the run.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]AdapterFactory
	fallback  AdapterFactory
}

var _ interfaces.IAdapterRegistry = (*Registry)(nil)

func NewRegistry(fallback AdapterFactory) *Registry {
	return &Registry{
		factories: make(map[string]AdapterFactory),
		fallback:  fallback,
	}
}

// NewDefaultRegistry registers the built-in integrations. The manual rate
// table adapter doubles as the fallback.
func NewDefaultRegistry(rates interfaces.IRateTableRepository, httpClient *http.Client) *Registry {
	rateTable := func(conn entities.InsurerConnection) interfaces.IInsurerAdapter {
		return NewRateTableAdapter(conn.BrokerID, conn.Insurer, rates)
	}
	liveAPI := func(conn entities.InsurerConnection) interfaces.IInsurerAdapter {
		return NewLiveAPIAdapter(conn.Insurer, WithHTTPClient(httpClient))
	}

	r := NewRegistry(rateTable)
	r.Register(entities.AdapterTypeManualRateTable, rateTable)
	r.Register("manual", rateTable)
	r.Register(entities.AdapterTypeLiveAPI, liveAPI)
	r.Register("rest_api", liveAPI)
	return r
}

func (r *Registry) Register(adapterType string, factory AdapterFactory) {
	if factory == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[normalizeAdapterType(adapterType)] = factory
}

func (r *Registry) Registered(adapterType string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[normalizeAdapterType(adapterType)]
	return ok
}

func (r *Registry) Resolve(conn entities.InsurerConnection) interfaces.IInsurerAdapter {
	r.mu.RLock()
	factory, ok := r.factories[normalizeAdapterType(conn.Insurer.AdapterType)]
	r.mu.RUnlock()
	if !ok {
		factory = r.fallback
	}
	return factory(conn)
}

func normalizeAdapterType(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
