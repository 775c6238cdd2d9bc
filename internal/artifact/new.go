package artifact

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"enterprise-advisors/internal/model"
	"enterprise-advisors/pkg/log"
)

// Config tunes the artifact manager.
type Config struct {
	PresignTTL          time.Duration
	MaxDownloadAttempts int
}

func (c Config) normalize() Config {
	if c.PresignTTL <= 0 {
		c.PresignTTL = DefaultPresignTTL
	}
	if c.MaxDownloadAttempts < 1 {
		c.MaxDownloadAttempts = DefaultMaxDownloadAttempts
	}
	return c
}

type manager struct {
	store      Store
	completers map[string]Completer
	cfg        Config
	l          log.Logger

	// Finalize transitions are serialized per artifact id so the attempt
	// counter stays consistent under concurrent polls, while downloads of
	// different artifacts proceed in parallel.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
	cache *expirable.LRU[string, model.Artifact]
	now   func() time.Time
}

var _ Manager = (*manager)(nil)

// New creates an artifact manager on top of the given blob store.
// completers maps advisor names to the component that can finish their
// asynchronous export jobs.
func New(store Store, completers map[string]Completer, cfg Config, l log.Logger) Manager {
	if completers == nil {
		completers = map[string]Completer{}
	}
	return &manager{
		store:      store,
		completers: completers,
		cfg:        cfg.normalize(),
		l:          l,
		locks:      map[string]*sync.Mutex{},
		cache:      expirable.NewLRU[string, model.Artifact](metaCacheSize, nil, metaCacheTTL),
		now:        time.Now,
	}
}
