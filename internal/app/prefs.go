package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"camping_arequita/internal/domain"
)

// Storage keys match what the web client uses in localStorage.
const (
	langStorageKey  = "camping-lang"
	themeStorageKey = "camping-theme"
)

// PrefStore holds one UI preference: an enumerated value with a default,
// persisted through PrefStorage on every change. Last writer wins; a stored
// value that fails validation falls back to the default without error.
type PrefStore struct {
	key     string
	def     string
	valid   func(string) bool
	storage domain.PrefStorage

	mu   sync.Mutex
	val  string
	subs []func(string)
}

func NewPrefStore(ctx context.Context, storage domain.PrefStorage, key, def string, valid func(string) bool) *PrefStore {
	s := &PrefStore{key: key, def: def, valid: valid, storage: storage, val: def}
	saved, err := storage.Read(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("preference read failed, using default")
		return s
	}
	if valid(saved) {
		s.val = saved
	}
	return s
}

func NewLanguageStore(ctx context.Context, storage domain.PrefStorage) *PrefStore {
	return NewPrefStore(ctx, storage, langStorageKey, string(domain.DefaultLanguage), domain.ValidLanguage)
}

func NewThemeStore(ctx context.Context, storage domain.PrefStorage) *PrefStore {
	return NewPrefStore(ctx, storage, themeStorageKey, string(domain.DefaultTheme), domain.ValidTheme)
}

func (s *PrefStore) Get() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.val
}

// Set validates, updates, persists, then notifies subscribers with the new
// value. Persistence failure is logged, not surfaced: the in-memory value
// already changed and the next Set will try again.
func (s *PrefStore) Set(ctx context.Context, v string) error {
	if !s.valid(v) {
		return fmt.Errorf("invalid value %q for %s", v, s.key)
	}
	s.mu.Lock()
	s.val = v
	subs := make([]func(string), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	if err := s.storage.Write(ctx, s.key, v); err != nil {
		log.Warn().Err(err).Str("key", s.key).Msg("preference write failed")
	}
	for _, fn := range subs {
		fn(v)
	}
	return nil
}

// Subscribe registers fn for every subsequent change.
func (s *PrefStore) Subscribe(fn func(string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
