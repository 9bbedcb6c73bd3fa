package session

import (
	"context"
	"sync"

	"github.com/A-PollyMer/blogsite-cli/internal/client/models"
	"github.com/A-PollyMer/blogsite-cli/internal/logging"
)

// Provider is the process-wide session holder. It hydrates once from the
// Store, then serves a live view of the identity to every consumer.
// Mutations made anywhere are visible everywhere; subscribers are notified
// on each transition so dependent views update without polling.
type Provider struct {
	mu       sync.Mutex
	store    Store
	logger   logging.Logger
	current  *models.User
	hydrated bool

	hydrateOnce sync.Once

	subs    map[int]func(*models.User)
	nextSub int
}

// NewProvider builds a Provider over the given store. The identity is absent
// and the session unhydrated until Hydrate is called.
func NewProvider(store Store, logger logging.Logger) *Provider {
	return &Provider{
		store:  store,
		logger: logger.With("component", "session"),
		subs:   make(map[int]func(*models.User)),
	}
}

// Hydrate restores the persisted identity. It runs at most once per process;
// repeated calls are no-ops. A missing or malformed record yields the
// logged-out state, never an error visible to the user. After Hydrate
// returns, Hydrated reports true.
func (p *Provider) Hydrate(ctx context.Context) {
	p.hydrateOnce.Do(func() {
		identity, err := p.store.Load(ctx)
		if err != nil {
			p.logger.Warn(ctx, "session restore failed, starting logged out", "error", err)
			identity = nil
		}

		p.mu.Lock()
		p.current = identity
		p.hydrated = true
		p.mu.Unlock()

		if identity != nil {
			p.logger.Info(ctx, "session restored", "username", identity.Username)
		}
		p.notify()
	})
}

// Login replaces the current identity unconditionally and persists it. The
// new identity becomes visible to all consumers before this method returns,
// even if persisting fails; the persist error is returned so the caller can
// report it.
func (p *Provider) Login(ctx context.Context, identity *models.User) error {
	p.mu.Lock()
	p.current = identity.Clone()
	p.mu.Unlock()
	p.notify()

	return p.store.Save(ctx, identity)
}

// Logout clears the identity and removes the durable record. Idempotent.
func (p *Provider) Logout(ctx context.Context) error {
	p.mu.Lock()
	p.current = nil
	p.mu.Unlock()
	p.notify()

	return p.store.Clear(ctx)
}

// Current returns a copy of the active identity, or nil when logged out.
func (p *Provider) Current() *models.User {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current.Clone()
}

// Hydrated reports whether the one-time restore has completed. While false,
// consumers must not treat the absent identity as "logged out".
func (p *Provider) Hydrated() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hydrated
}

// Subscribe registers fn to be called with the (possibly nil) identity after
// every transition. The returned cancel function removes the subscription.
func (p *Provider) Subscribe(fn func(*models.User)) func() {
	p.mu.Lock()
	id := p.nextSub
	p.nextSub++
	p.subs[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.subs, id)
		p.mu.Unlock()
	}
}

// notify invokes subscribers outside the lock so a callback may call back
// into the provider.
func (p *Provider) notify() {
	p.mu.Lock()
	identity := p.current.Clone()
	fns := make([]func(*models.User), 0, len(p.subs))
	for _, fn := range p.subs {
		fns = append(fns, fn)
	}
	p.mu.Unlock()

	for _, fn := range fns {
		fn(identity)
	}
}
