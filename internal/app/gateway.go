package app

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"camping_arequita/internal/domain"
)

// DefaultHeroImages keeps the landing carousel populated when the backend
// has nothing to offer.
var DefaultHeroImages = []string{
	"https://images.unsplash.com/photo-1571863533956-01c88e79957e?w=1920&q=80",
	"https://images.unsplash.com/photo-1464822759023-fed622ff2c3b?w=1920&q=80",
	"https://images.unsplash.com/photo-1501785888041-af3ef285b470?w=1920&q=80",
}

// Gateway is the site's only door to the backend. Reads are best-effort:
// any failure degrades to an empty or fallback value and is never surfaced
// to the page. Writes validate first and propagate backend failure to the
// caller, which must tell the user.
type Gateway struct {
	client   domain.BackendClient
	cache    domain.Cache
	cacheTTL time.Duration
	guard    *InflightGuard
}

func NewGateway(c domain.BackendClient, cache domain.Cache, ttl time.Duration) *Gateway {
	return &Gateway{client: c, cache: cache, cacheTTL: ttl, guard: NewInflightGuard()}
}

// ---- reads ----

func (g *Gateway) HeroImages(ctx context.Context) []string {
	key := "hero-images"
	var imgs []string
	if ok, _ := g.cache.Get(ctx, key, &imgs); ok && len(imgs) > 0 {
		return imgs
	}
	imgs, err := g.client.HeroImages(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("hero images fetch failed, using fallback")
		return DefaultHeroImages
	}
	if len(imgs) == 0 {
		return DefaultHeroImages
	}
	_ = g.cache.Set(ctx, key, imgs, int(g.cacheTTL.Seconds()))
	return imgs
}

func (g *Gateway) Services(ctx context.Context, lang domain.Language, query, typ string) []domain.Accommodation {
	key := fmt.Sprintf("services:%s:%s:%s", lang, query, typ)
	var items []domain.Accommodation
	if ok, _ := g.cache.Get(ctx, key, &items); ok {
		return items
	}
	items, err := g.client.Services(ctx, lang, query, typ)
	if err != nil {
		log.Warn().Err(err).Str("lang", string(lang)).Msg("services fetch failed")
		return []domain.Accommodation{}
	}
	if items == nil {
		items = []domain.Accommodation{}
	}
	_ = g.cache.Set(ctx, key, items, int(g.cacheTTL.Seconds()))
	return items
}

// FeaturedServices returns the featured subset, or the first three services
// when nothing is flagged so the section never renders empty and unexplained.
func (g *Gateway) FeaturedServices(ctx context.Context, lang domain.Language) []domain.Accommodation {
	all := g.Services(ctx, lang, "", "")
	featured := make([]domain.Accommodation, 0, len(all))
	for _, s := range all {
		if s.Featured {
			featured = append(featured, s)
		}
	}
	if len(featured) > 0 {
		return featured
	}
	if len(all) > 3 {
		return all[:3]
	}
	return all
}

func (g *Gateway) Testimonials(ctx context.Context, lang domain.Language, serviceID string, page, perPage int) domain.TestimonialsPage {
	lang = domain.TestimonialLanguage(lang)
	key := fmt.Sprintf("testimonials:%s:%s:%d:%d", lang, serviceID, page, perPage)
	var out domain.TestimonialsPage
	if ok, _ := g.cache.Get(ctx, key, &out); ok {
		return out
	}
	out, err := g.client.Testimonials(ctx, lang, serviceID, page, perPage)
	if err != nil {
		log.Warn().Err(err).Str("lang", string(lang)).Str("service", serviceID).Msg("testimonials fetch failed")
		return domain.EmptyTestimonialsPage()
	}
	if out.Items == nil {
		out.Items = []domain.Testimonial{}
	}
	_ = g.cache.Set(ctx, key, out, int(g.cacheTTL.Seconds()))
	return out
}

// ---- writes ----

// SubmitPreReservation validates the request, checks the guest count against
// the accommodation's capacity, and forwards it. Validation failure blocks
// the call entirely; backend failure propagates.
func (g *Gateway) SubmitPreReservation(ctx context.Context, req domain.PreReservation) (domain.Ack, error) {
	fields := ValidatePreReservation(req)
	if cap := g.capacityFor(ctx, req); cap > 0 && req.Guests > cap {
		if _, taken := fields["guests"]; !taken {
			fields["guests"] = fmt.Sprintf("Max %d guests for this accommodation", cap)
		}
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	guardKey := fmt.Sprintf("pre-reservation:%d:%s", req.ServiceID, req.Email)
	if !g.guard.Acquire(guardKey) {
		return nil, ErrSubmissionInFlight
	}
	defer g.guard.Release(guardKey)

	ack, err := g.client.CreatePreReservation(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("submit pre-reservation: %w", err)
	}
	return ack, nil
}

func (g *Gateway) SubmitSuggestion(ctx context.Context, req domain.Suggestion) (domain.Ack, error) {
	if fields := ValidateSuggestion(req); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	guardKey := "suggestion:" + req.Email
	if !g.guard.Acquire(guardKey) {
		return nil, ErrSubmissionInFlight
	}
	defer g.guard.Release(guardKey)

	ack, err := g.client.CreateSuggestion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("submit suggestion: %w", err)
	}
	return ack, nil
}

// capacityFor looks the target accommodation up in the (cached) listing so
// the guest bound can be checked against its real capacity. Unknown ids
// yield 0, which skips the dynamic check; the static 1..20 bound still holds.
func (g *Gateway) capacityFor(ctx context.Context, req domain.PreReservation) int {
	lang := domain.DefaultLanguage
	if domain.ValidLanguage(req.Lang) {
		lang = domain.Language(req.Lang)
	}
	id := strconv.FormatInt(req.ServiceID, 10)
	for _, s := range g.Services(ctx, lang, "", "") {
		if s.ID == id {
			return s.Capacity
		}
	}
	return 0
}
