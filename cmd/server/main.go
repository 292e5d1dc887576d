package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/billingbricks/app/internal/config"
	"github.com/billingbricks/app/internal/db"
	"github.com/billingbricks/app/internal/obs"
	"github.com/billingbricks/app/internal/seed"
	"github.com/billingbricks/app/internal/server"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	obs.InitLogger(cfg.Env)

	conn, err := db.Open("billingbricks")
	if err != nil {
		obs.Logger.Error("store open failed", "err", err)
		os.Exit(1)
	}
	if err := seed.Load(conn); err != nil {
		obs.Logger.Error("seed failed", "err", err)
		os.Exit(1)
	}

	handler, err := server.New(conn, cfg)
	if err != nil {
		obs.Logger.Error("mount failed", "err", err)
		os.Exit(1)
	}

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: handler}
	go func() {
		obs.Logger.Info("server listening", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			obs.Logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	obs.Logger.Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		obs.Logger.Error("shutdown error", "err", err)
	}
	obs.Logger.Info("server stopped")
}
