package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backoffice/internal/auth"
	httpapi "backoffice/internal/http"
	"backoffice/internal/platform"
	"backoffice/internal/service"
	"backoffice/internal/session"

	_ "backoffice/docs"
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	addr := envOr("BACKOFFICE_ADDR", ":9092")
	platformURL := envOr("PLATFORM_API_URL", "http://localhost:8080/api")
	sessionPath := envOr("SESSION_FILE", "data/sessions.json")

	client := platform.NewClient(platformURL, 15*time.Second)

	sessions, err := session.OpenFileStore(sessionPath)
	if err != nil {
		log.Fatalf("open session store: %v", err)
	}
	defer sessions.Close()

	gate := auth.NewGate(client, sessions)
	ordersSvc := service.NewOrderService(client)
	adminsSvc := service.NewAdminService(client)
	catalogSvc := service.NewCatalogService(client)
	statsSvc := service.NewStatsService(ordersSvc, catalogSvc)

	srv := httpapi.NewServer(gate, ordersSvc, adminsSvc, catalogSvc, statsSvc)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("back-office listening on %s (platform %s)", httpServer.Addr, platformURL)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
