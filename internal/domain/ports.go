package domain

import "context"

// BackendClient is the raw boundary to the remote campground backend.
// Implementations return transport/decode errors untouched; the read-policy
// vs write-policy split lives one layer up in the app gateway.
type BackendClient interface {
	HeroImages(ctx context.Context) ([]string, error)
	Services(ctx context.Context, lang Language, query, typ string) ([]Accommodation, error)
	Testimonials(ctx context.Context, lang Language, serviceID string, page, perPage int) (TestimonialsPage, error)
	CreatePreReservation(ctx context.Context, req PreReservation) (Ack, error)
	CreateSuggestion(ctx context.Context, req Suggestion) (Ack, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// PrefStorage persists a single preference value per key. The web client
// keeps these in localStorage; server-side anything key-value shaped will do.
type PrefStorage interface {
	Read(ctx context.Context, key string) (string, error)
	Write(ctx context.Context, key, value string) error
}
