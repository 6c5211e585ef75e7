package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/config"
	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/domain"
	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/infra/api_client"
	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/scheduler"
	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/service/pagination"
	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/service/selection"
	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/store"
	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/transport/httptransport"
)

type App struct {
	cfg config.Config
	log *slog.Logger

	e       *echo.Echo
	serv    *http.Server
	handler *httptransport.DashboardHandler

	store     *store.Store
	pages     *pagination.Controller
	selection *selection.Service

	updater *scheduler.Scheduler
}

func NewApp(cfg config.Config, log *slog.Logger) (*App, error) {
	app := &App{cfg: cfg, log: log}

	assetID := strings.TrimSpace(cfg.Dashboard.DefaultAsset)
	if assetID == "" {
		assetID = domain.DefaultAssetID
	}
	rng, err := domain.RangeFromDays(cfg.Dashboard.DefaultRange)
	if err != nil {
		log.Error("bad dashboard config", slog.Int("default_range_days", cfg.Dashboard.DefaultRange))
		return nil, fmt.Errorf("default range: %w", err)
	}

	client := api_client.NewClient(cfg.CoinGecko)

	app.store = store.New(store.NewState(assetID, rng), store.Reducer{DiscardStale: !cfg.Dashboard.AcceptStale})
	app.pages = pagination.NewController(client, app.store, log)
	app.selection = selection.NewService(client, app.store, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	app.e = e

	app.handler = httptransport.NewDashboardHandler(log, app.store, app.pages, app.selection, cfg.Server.AllowedOrigins)
	app.handler.RegisterRoutes(e)

	app.serv = &http.Server{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Handler:      e,
	}

	if cfg.Dashboard.RefreshInterval > 0 {
		app.updater = scheduler.NewScheduler(app.selection, cfg.Dashboard.RefreshInterval, log)
	}

	log.Info("app initialized",
		slog.String("http_addr", cfg.Server.Addr),
		slog.String("default_asset", assetID),
		slog.String("default_range", rng.Label()),
		slog.Bool("accept_stale", cfg.Dashboard.AcceptStale),
		slog.Bool("auto_refresh", app.updater != nil),
	)
	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	// первая страница списка и данные выбранной по умолчанию монеты
	a.pages.OnSentinelVisible(ctx)
	a.selection.Refresh(ctx)

	if a.updater != nil {
		a.log.Info("starting updater")
		go a.updater.Start(ctx)
	}

	a.log.Info("starting server", slog.String("addr", a.cfg.Server.Addr))
	go func() {
		if err := a.e.StartServer(a.serv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", slog.String("error", err.Error()))
		}
	}()
	<-ctx.Done()
	return a.Shutdown(context.Background())
}

func (a *App) Shutdown(ctx context.Context) error {
	timeout := a.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// websocket-соединения echo не закрывает сам
	a.handler.Close()

	if err := a.e.Shutdown(shCtx); err != nil {
		a.log.Error("http shutdown error", slog.String("error", err.Error()))
	}

	done := make(chan struct{})
	go func() {
		a.pages.Wait()
		a.selection.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-shCtx.Done():
		a.log.Warn("in-flight fetches did not finish before shutdown timeout")
	}

	a.log.Info("application stopped")
	return nil
}
