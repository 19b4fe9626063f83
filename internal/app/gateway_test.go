package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"camping_arequita/internal/app"
	"camping_arequita/internal/domain"
)

// ---- fakes ----

type fakeBackend struct {
	hero     []string
	services []domain.Accommodation
	page     domain.TestimonialsPage
	fail     bool

	serviceCalls int
	writeCalls   int
}

var errBackendDown = errors.New("backend down")

func (f *fakeBackend) HeroImages(ctx context.Context) ([]string, error) {
	if f.fail {
		return nil, errBackendDown
	}
	return f.hero, nil
}

func (f *fakeBackend) Services(ctx context.Context, lang domain.Language, query, typ string) ([]domain.Accommodation, error) {
	f.serviceCalls++
	if f.fail {
		return nil, errBackendDown
	}
	return f.services, nil
}

func (f *fakeBackend) Testimonials(ctx context.Context, lang domain.Language, serviceID string, page, perPage int) (domain.TestimonialsPage, error) {
	if f.fail {
		return domain.TestimonialsPage{}, errBackendDown
	}
	return f.page, nil
}

func (f *fakeBackend) CreatePreReservation(ctx context.Context, req domain.PreReservation) (domain.Ack, error) {
	f.writeCalls++
	if f.fail {
		return nil, errBackendDown
	}
	return domain.Ack{"status": "ok"}, nil
}

func (f *fakeBackend) CreateSuggestion(ctx context.Context, req domain.Suggestion) (domain.Ack, error) {
	f.writeCalls++
	if f.fail {
		return nil, errBackendDown
	}
	return domain.Ack{"status": "ok"}, nil
}

type fakeCache struct {
	store map[string]any
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *[]domain.Accommodation:
		*d = v.([]domain.Accommodation)
	case *[]string:
		*d = v.([]string)
	case *domain.TestimonialsPage:
		*d = v.(domain.TestimonialsPage)
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error { return nil }

func svc(id string, featured bool) domain.Accommodation {
	return domain.Accommodation{ID: id, Name: "Unit " + id, Type: domain.TypeCabin, Price: 100, Capacity: 4, Featured: featured}
}

// ---- read policy ----

func TestServices_FailureDegradesToEmpty(t *testing.T) {
	g := app.NewGateway(&fakeBackend{fail: true}, &fakeCache{}, time.Minute)

	out := g.Services(context.Background(), domain.LangES, "", "")
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty slice on failure, got %#v", out)
	}
}

func TestServices_CacheMissThenHit(t *testing.T) {
	be := &fakeBackend{services: []domain.Accommodation{svc("1", false)}}
	g := app.NewGateway(be, &fakeCache{}, time.Minute)

	first := g.Services(context.Background(), domain.LangES, "", "")
	if len(first) != 1 {
		t.Fatalf("unexpected first result: %#v", first)
	}

	// Mutate the backend to prove the second read comes from cache
	be.services = nil
	second := g.Services(context.Background(), domain.LangES, "", "")
	if len(second) != 1 || second[0].ID != "1" {
		t.Fatalf("expected cached listing, got %#v", second)
	}
	if be.serviceCalls != 1 {
		t.Fatalf("expected 1 backend call, got %d", be.serviceCalls)
	}
}

func TestHeroImages_FallbackOnFailureAndOnEmpty(t *testing.T) {
	g := app.NewGateway(&fakeBackend{fail: true}, &fakeCache{}, time.Minute)
	if got := g.HeroImages(context.Background()); len(got) != len(app.DefaultHeroImages) {
		t.Fatalf("expected fallback images, got %v", got)
	}

	g = app.NewGateway(&fakeBackend{hero: []string{}}, &fakeCache{}, time.Minute)
	if got := g.HeroImages(context.Background()); len(got) != len(app.DefaultHeroImages) {
		t.Fatalf("expected fallback for empty backend list, got %v", got)
	}

	g = app.NewGateway(&fakeBackend{hero: []string{"https://img/1.jpg"}}, &fakeCache{}, time.Minute)
	if got := g.HeroImages(context.Background()); len(got) != 1 || got[0] != "https://img/1.jpg" {
		t.Fatalf("expected backend images, got %v", got)
	}
}

func TestFeaturedServices_FallbackToFirstThree(t *testing.T) {
	be := &fakeBackend{services: []domain.Accommodation{
		svc("1", false), svc("2", false), svc("3", false), svc("4", false), svc("5", false),
	}}
	g := app.NewGateway(be, &fakeCache{}, time.Minute)

	out := g.FeaturedServices(context.Background(), domain.LangES)
	if len(out) != 3 {
		t.Fatalf("expected first three on zero featured, got %d", len(out))
	}
	for i, want := range []string{"1", "2", "3"} {
		if out[i].ID != want {
			t.Fatalf("expected original order, got %#v", out)
		}
	}
}

func TestFeaturedServices_KeepsFlaggedSubset(t *testing.T) {
	be := &fakeBackend{services: []domain.Accommodation{
		svc("1", false), svc("2", true), svc("3", false), svc("4", true),
	}}
	g := app.NewGateway(be, &fakeCache{}, time.Minute)

	out := g.FeaturedServices(context.Background(), domain.LangES)
	if len(out) != 2 || out[0].ID != "2" || out[1].ID != "4" {
		t.Fatalf("unexpected featured subset: %#v", out)
	}
}

func TestTestimonials_FailureYieldsZeroedPage(t *testing.T) {
	g := app.NewGateway(&fakeBackend{fail: true}, &fakeCache{}, time.Minute)

	out := g.Testimonials(context.Background(), domain.LangES, "", 1, 8)
	if len(out.Items) != 0 || out.Total != 0 || out.Pages != 1 || out.CurrentPage != 1 {
		t.Fatalf("unexpected degraded page: %+v", out)
	}
}

func TestTestimonials_ChineseFallsBackToSpanish(t *testing.T) {
	be := &fakeBackend{page: domain.TestimonialsPage{Items: []domain.Testimonial{{ID: "1"}}, Total: 1, Pages: 1, CurrentPage: 1}}
	cache := &fakeCache{}
	g := app.NewGateway(be, cache, time.Minute)

	g.Testimonials(context.Background(), domain.LangZH, "", 1, 8)
	if _, ok := cache.store["testimonials:es::1:8"]; !ok {
		t.Fatalf("expected zh request cached under es, keys: %v", keys(cache.store))
	}
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// ---- write policy ----

func TestSubmitPreReservation_ValidationBlocksNetwork(t *testing.T) {
	be := &fakeBackend{}
	g := app.NewGateway(be, &fakeCache{}, time.Minute)

	req := validPreReservation()
	req.ConfirmEmail = "b@x.com"

	_, err := g.SubmitPreReservation(context.Background(), req)
	var verr *app.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr.Fields["confirm_email"]; !ok {
		t.Fatalf("expected mismatch attached to confirm_email, got %v", verr.Fields)
	}
	if be.writeCalls != 0 {
		t.Fatalf("expected no network call, got %d", be.writeCalls)
	}
}

func TestSubmitPreReservation_GuestsOverCapacity(t *testing.T) {
	be := &fakeBackend{services: []domain.Accommodation{svc("7", false)}} // capacity 4
	g := app.NewGateway(be, &fakeCache{}, time.Minute)

	req := validPreReservation()
	req.ServiceID = 7
	req.Guests = 6

	_, err := g.SubmitPreReservation(context.Background(), req)
	var verr *app.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr.Fields["guests"]; !ok {
		t.Fatalf("expected guests error, got %v", verr.Fields)
	}
	if be.writeCalls != 0 {
		t.Fatalf("expected no network call, got %d", be.writeCalls)
	}
}

func TestSubmitPreReservation_BackendFailurePropagates(t *testing.T) {
	// valid request, broken backend: reads degrade, writes must not
	be := &fakeBackend{fail: true}
	g := app.NewGateway(be, &fakeCache{}, time.Minute)

	_, err := g.SubmitPreReservation(context.Background(), validPreReservation())
	if err == nil || !errors.Is(err, errBackendDown) {
		t.Fatalf("expected propagated backend error, got %v", err)
	}
}

func TestSubmitSuggestion_OK(t *testing.T) {
	be := &fakeBackend{}
	g := app.NewGateway(be, &fakeCache{}, time.Minute)

	ack, err := g.SubmitSuggestion(context.Background(), validSuggestion())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if ack["status"] != "ok" {
		t.Fatalf("unexpected ack: %v", ack)
	}
	if be.writeCalls != 1 {
		t.Fatalf("expected 1 write, got %d", be.writeCalls)
	}
}

func validPreReservation() domain.PreReservation {
	return domain.PreReservation{
		ServiceID:    7,
		FullName:     "Ana García",
		Email:        "a@x.com",
		ConfirmEmail: "a@x.com",
		Phone:        "+598 99 123 456",
		Guests:       2,
		CheckIn:      "2026-01-10",
		CheckOut:     "2026-01-12",
		Lang:         "es",
	}
}

func validSuggestion() domain.Suggestion {
	return domain.Suggestion{
		Name:         "Ana",
		Email:        "a@x.com",
		ConfirmEmail: "a@x.com",
		Category:     "general",
		Message:      "Más sombra en las parcelas del fondo, por favor.",
		Lang:         "es",
	}
}
