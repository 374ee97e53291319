package ban

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
)

// StrikeStore counts failed logins per key inside a sliding window.
// redissvc.RedisService implements it for multi instance deployments.
type StrikeStore interface {
	AddStrike(ctx context.Context, key string, window time.Duration) (int, error)
	Strikes(ctx context.Context, key string) (int, error)
	ResetStrikes(ctx context.Context, key string) error
	AppendBanLog(ctx context.Context, entry []byte) error
	BanLog(ctx context.Context) ([][]byte, error)
}

type BanLogEntry struct {
	Target  string    `json:"target"`
	Route   string    `json:"route"`
	Strikes int       `json:"strikes"`
	Time    time.Time `json:"time"`
}

// Guard locks a login out after MaxStrikes failures within Window.
type Guard struct {
	store      StrikeStore
	maxStrikes int
	window     time.Duration
	log        *zap.Logger
}

func NewGuard(store StrikeStore, maxStrikes int, window time.Duration, log *zap.Logger) *Guard {
	if log == nil {
		log = zap.NewNop()
	}
	return &Guard{store: store, maxStrikes: maxStrikes, window: window, log: log}
}

// Banned reports whether target is currently locked out. Store errors fail
// open so an unavailable store does not block every login.
func (g *Guard) Banned(ctx context.Context, target string) bool {
	if g.maxStrikes <= 0 {
		return false
	}
	n, err := g.store.Strikes(ctx, target)
	if err != nil {
		g.log.Warn("failed to read login strikes", zap.String("target", target), zap.Error(err))
		return false
	}
	return n >= g.maxStrikes
}

// Fail records a failed attempt on route and logs the lockout once the
// limit is reached.
func (g *Guard) Fail(ctx context.Context, target, route string) {
	if g.maxStrikes <= 0 {
		return
	}
	n, err := g.store.AddStrike(ctx, target, g.window)
	if err != nil {
		g.log.Warn("failed to record login strike", zap.String("target", target), zap.Error(err))
		return
	}
	if n != g.maxStrikes {
		return
	}

	g.log.Warn("login locked out",
		zap.String("target", target),
		zap.String("route", route),
		zap.Int("strikes", n),
		zap.Duration("window", g.window),
	)
	data, _ := json.Marshal(BanLogEntry{Target: target, Route: route, Strikes: n, Time: time.Now()})
	if err := g.store.AppendBanLog(ctx, data); err != nil {
		g.log.Warn("failed to append ban log", zap.Error(err))
	}
}

func (g *Guard) Succeed(ctx context.Context, target string) {
	if err := g.store.ResetStrikes(ctx, target); err != nil {
		g.log.Warn("failed to reset login strikes", zap.String("target", target), zap.Error(err))
	}
}

// BanLog returns the recorded lockouts, oldest first.
func (g *Guard) BanLog(ctx context.Context) ([]BanLogEntry, error) {
	items, err := g.store.BanLog(ctx)
	if err != nil {
		return nil, err
	}
	logs := make([]BanLogEntry, 0, len(items))
	for _, item := range items {
		var entry BanLogEntry
		if err := json.Unmarshal(item, &entry); err == nil {
			logs = append(logs, entry)
		}
	}
	return logs, nil
}

type strike struct {
	count   int
	expires time.Time
}

// InMemoryStrikeStore is the single instance StrikeStore.
type InMemoryStrikeStore struct {
	mu      sync.Mutex
	strikes map[string]strike
	banLog  [][]byte
}

func NewInMemoryStrikeStore() *InMemoryStrikeStore {
	return &InMemoryStrikeStore{strikes: map[string]strike{}}
}

func (s *InMemoryStrikeStore) AddStrike(_ context.Context, key string, window time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.strikes[key]
	if !ok || time.Now().After(st.expires) {
		st = strike{expires: time.Now().Add(window)}
	}
	st.count++
	s.strikes[key] = st
	return st.count, nil
}

func (s *InMemoryStrikeStore) Strikes(_ context.Context, key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.strikes[key]
	if !ok {
		return 0, nil
	}
	if time.Now().After(st.expires) {
		delete(s.strikes, key)
		return 0, nil
	}
	return st.count, nil
}

func (s *InMemoryStrikeStore) ResetStrikes(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.strikes, key)
	return nil
}

func (s *InMemoryStrikeStore) AppendBanLog(_ context.Context, entry []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.banLog = append(s.banLog, entry)
	return nil
}

func (s *InMemoryStrikeStore) BanLog(_ context.Context) ([][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([][]byte(nil), s.banLog...), nil
}
