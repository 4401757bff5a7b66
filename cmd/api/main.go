package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"reviews_carousel/internal/adapters/fallback"
	server "reviews_carousel/internal/adapters/http_server"
	"reviews_carousel/internal/adapters/observability"
	"reviews_carousel/internal/adapters/places"
	"reviews_carousel/internal/app"
	"reviews_carousel/internal/render"
	"reviews_carousel/internal/shared"
	"reviews_carousel/internal/storage"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	reg := observability.InitRegistry()
	metricsSrv := observability.Serve(cfg.MetricsAddr, reg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// deps
	b, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("open storage failed")
	}
	defer b.Close()

	settings := app.NewSettings(b.Settings)
	loader := app.NewLoader(settings,
		places.New(cfg.PlacesBase, cfg.PlacesRPS),
		fallback.New(cfg.FallbackDelay),
		b.Cache(), cfg.CacheTTL)
	themes := app.NewThemeService(ctx, b.Settings)
	doc := render.NewDocument()
	w := app.NewWidget(loader, settings, themes, doc, cfg.Breakpoint)

	res := w.Refresh(ctx)
	log.Info().Str("origin", string(res.Origin)).Int("reviews", len(res.Payload.Reviews)).Msg("initial load done")
	if cfg.AutoPlay > 0 {
		go w.AutoPlay(ctx, cfg.AutoPlay)
	}

	// http
	srv := server.New(cfg.HTTPTimeout)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{W: w, Settings: settings, Themes: themes, Doc: doc})

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(sctx); err != nil {
			log.Error().Err(err).Msg("http shutdown failed")
		}
		if metricsSrv != nil {
			_ = metricsSrv.Shutdown(sctx)
		}
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("API stopped")
}
