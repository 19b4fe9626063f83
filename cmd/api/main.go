package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"camping_arequita/internal/adapters/camping"
	server "camping_arequita/internal/adapters/http_server"
	"camping_arequita/internal/adapters/observability"
	redisad "camping_arequita/internal/adapters/redis"
	"camping_arequita/internal/app"
	"camping_arequita/internal/domain"
	"camping_arequita/internal/shared"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	client, err := camping.New(cfg.BackendBase, cfg.BackendRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("backend client init failed")
	}

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	gw := app.NewGateway(client, cache, cfg.CacheTTL)

	langStore := app.NewLanguageStore(ctx, cache.Prefs())
	themeStore := app.NewThemeStore(ctx, cache.Prefs())

	// A language switch re-fetches the base listing for the new language.
	// The fetcher makes rapid toggles harmless: only the last one lands.
	var warm app.Fetcher[[]domain.Accommodation]
	langStore.Subscribe(func(lang string) {
		warm.Fetch(ctx,
			func(ctx context.Context) ([]domain.Accommodation, error) {
				return gw.Services(ctx, domain.Language(lang), "", ""), nil
			},
			func(items []domain.Accommodation, _ error) {
				log.Info().Str("lang", lang).Int("services", len(items)).Msg("listing warmed for new language")
			})
	})

	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{G: gw, Lang: langStore, Theme: themeStore})

	log.Info().Str("addr", cfg.HTTPAddr).Str("backend", cfg.BackendBase).Msg("site API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
