// prewarm fetches every language's listing, the featured subset, the first
// testimonials page and the hero carousel through the gateway so the cache
// is hot before the site takes traffic.
package main

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"camping_arequita/internal/adapters/camping"
	"camping_arequita/internal/adapters/observability"
	redisad "camping_arequita/internal/adapters/redis"
	"camping_arequita/internal/app"
	"camping_arequita/internal/domain"
	"camping_arequita/internal/shared"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("backend", cfg.BackendBase).
		Int("workers", cfg.Workers).
		Msg("prewarm starting")

	client, err := camping.New(cfg.BackendBase, cfg.BackendRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("backend client init failed")
	}
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	gw := app.NewGateway(client, cache, cfg.CacheTTL)

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	if imgs := gw.HeroImages(ctx); len(imgs) > 0 {
		log.Info().Int("images", len(imgs)).Msg("hero carousel warmed")
	}

	for _, lang := range domain.Languages() {
		lang := lang

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(l domain.Language) {
			defer wg.Done()
			defer sem.Release(1)

			services := gw.Services(ctx, l, "", "")
			featured := gw.FeaturedServices(ctx, l)
			reviews := gw.Testimonials(ctx, l, "", 1, cfg.PerPage)

			log.Info().
				Str("lang", string(l)).
				Int("services", len(services)).
				Int("featured", len(featured)).
				Int("testimonials", len(reviews.Items)).
				Msg("language warmed")
		}(lang)
	}

	wg.Wait()
	log.Info().Msg("prewarm completed")
}
