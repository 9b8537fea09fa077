package main

import (
	"context"
	"time"

	"github.com/sellerdesk/sellerdesk/config"
	"github.com/sellerdesk/sellerdesk/internal/app"
	"github.com/sellerdesk/sellerdesk/pkg/sigctx"
)

const closeTimeout = 5 * time.Second

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	dashboard := app.New(cfg)

	dashboard.Run(closeApp)

	<-sigCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	dashboard.Close(ctx)
}
