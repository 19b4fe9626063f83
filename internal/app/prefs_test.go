package app_test

import (
	"context"
	"errors"
	"testing"

	"camping_arequita/internal/app"
	"camping_arequita/internal/domain"
)

type fakePrefStorage struct {
	values  map[string]string
	readErr error
}

func (s *fakePrefStorage) Read(ctx context.Context, key string) (string, error) {
	if s.readErr != nil {
		return "", s.readErr
	}
	return s.values[key], nil
}

func (s *fakePrefStorage) Write(ctx context.Context, key, value string) error {
	if s.values == nil {
		s.values = map[string]string{}
	}
	s.values[key] = value
	return nil
}

func TestLanguageStore_Defaults(t *testing.T) {
	s := app.NewLanguageStore(context.Background(), &fakePrefStorage{})
	if s.Get() != "es" {
		t.Fatalf("expected default es, got %s", s.Get())
	}
}

func TestLanguageStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := &fakePrefStorage{}

	s := app.NewLanguageStore(ctx, storage)
	if err := s.Set(ctx, "pt"); err != nil {
		t.Fatalf("set: %v", err)
	}

	// simulated reload: a new store over the same storage
	s2 := app.NewLanguageStore(ctx, storage)
	if s2.Get() != "pt" {
		t.Fatalf("expected pt after reload, got %s", s2.Get())
	}
}

func TestLanguageStore_CorruptStoredValueFallsBack(t *testing.T) {
	storage := &fakePrefStorage{values: map[string]string{"camping-lang": "klingon"}}
	s := app.NewLanguageStore(context.Background(), storage)
	if s.Get() != "es" {
		t.Fatalf("expected fallback to es, got %s", s.Get())
	}
}

func TestLanguageStore_ReadErrorFallsBack(t *testing.T) {
	storage := &fakePrefStorage{readErr: errors.New("storage gone")}
	s := app.NewLanguageStore(context.Background(), storage)
	if s.Get() != "es" {
		t.Fatalf("expected default on read error, got %s", s.Get())
	}
}

func TestPrefStore_RejectsInvalidValue(t *testing.T) {
	ctx := context.Background()
	s := app.NewThemeStore(ctx, &fakePrefStorage{})

	if err := s.Set(ctx, "neon"); err == nil {
		t.Fatal("expected error for value outside the enumerated set")
	}
	if s.Get() != "emerald" {
		t.Fatalf("value must be unchanged after rejected set, got %s", s.Get())
	}
}

func TestPrefStore_SubscribeAndToggle(t *testing.T) {
	ctx := context.Background()
	s := app.NewThemeStore(ctx, &fakePrefStorage{})

	var seen []string
	s.Subscribe(func(v string) { seen = append(seen, v) })

	next := domain.ToggleTheme(domain.Theme(s.Get()))
	if err := s.Set(ctx, string(next)); err != nil {
		t.Fatalf("set: %v", err)
	}
	next = domain.ToggleTheme(domain.Theme(s.Get()))
	if err := s.Set(ctx, string(next)); err != nil {
		t.Fatalf("set: %v", err)
	}

	if len(seen) != 2 || seen[0] != "forest" || seen[1] != "emerald" {
		t.Fatalf("unexpected notifications: %v", seen)
	}
}
