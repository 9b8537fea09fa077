package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/sellerdesk/sellerdesk/config"
	"github.com/sellerdesk/sellerdesk/internal/adapter/sellerapi"
	"github.com/sellerdesk/sellerdesk/internal/adapter/sessionfile"
	"github.com/sellerdesk/sellerdesk/internal/adapter/webui"
	"github.com/sellerdesk/sellerdesk/internal/core/service"
)

// App wires the adapters and core services into the running dashboard:
// session file + API client on the outbound side, the web shell inbound.
type App struct {
	cfg        config.Config
	httpServer webui.HTTPServer
}

func New(cfg config.Config) App {
	app := App{cfg: cfg}

	app.initLogger()

	sessions := sessionfile.New(cfg.SessionFile)
	api := sellerapi.New(cfg.APIBaseURL, cfg.RequestTimeout)

	auth := service.NewAuth(api, sessions)
	store := service.NewStore(api, sessions)
	catalog := service.NewCatalog(api, sessions)
	orders := service.NewOrders(api, sessions)

	handler, err := webui.NewHandler(auth, store, catalog, orders, cfg.APIBaseURL)
	if err != nil {
		app.fallDown("App.New", err)
	}
	router := webui.NewRouter(handler)
	app.httpServer = webui.NewHTTPServer(cfg.ListenAddr, router)

	return app
}

func (app App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("dashboard is running", "addr", app.cfg.ListenAddr)
}

func (app App) Close(ctx context.Context) {
	slog.Info("dashboard is closing...")

	app.httpServer.Close(ctx)

	slog.Info("dashboard is closed")
}

func (app App) fallDown(op string, err error) {
	slog.Error("failed to start", "op", op, "err", err)
	os.Exit(1)
}
