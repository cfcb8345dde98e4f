// README: Entry point; loads config, wires the assistant dispatcher and optional usage ledger, starts HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"voyago/internal/ai"
	"voyago/internal/config"
	httptransport "voyago/internal/http"
	"voyago/internal/infra"
	"voyago/internal/modules/assistant"
	"voyago/internal/modules/usage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.AI.GeminiKey == "" {
		log.Printf("GEMINI_API_KEY is not set; assistant requests will fail until it is configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	builder := assistant.NewBuilder(cfg.AI.BaseURL, cfg.AI.TextModel, cfg.AI.ImageModel)
	invoker := ai.NewClient(cfg.AI.GeminiKey)

	// The usage ledger is optional: no DSN and no redis address means no
	// recording, and the dispatcher runs fully stateless.
	var usageSvc *usage.Service
	if cfg.DB.DSN != "" || cfg.Redis.Addr != "" {
		usageSvc = usage.NewService(usage.NewStore(openDB(ctx, cfg.DB.DSN), openRedis(cfg.Redis.Addr)))
	}

	var recorder assistant.Recorder
	if usageSvc != nil {
		recorder = usageSvc
	}
	assistantSvc := assistant.NewService(cfg.AI.GeminiKey, builder, invoker, recorder)

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: httptransport.NewRouter(assistantSvc, usageSvc),
	}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

func openDB(ctx context.Context, dsn string) *pgxpool.Pool {
	if dsn == "" {
		return nil
	}
	pool, err := infra.NewDB(ctx, dsn)
	if err != nil {
		log.Fatalf("postgres init: %v", err)
	}
	return pool
}

func openRedis(addr string) *redis.Client {
	if addr == "" {
		return nil
	}
	return infra.NewRedis(addr)
}
