package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medkit/internal/auth"
	"medkit/internal/config"
	httpx "medkit/internal/http"
	"medkit/internal/refill"
	"medkit/internal/store"
)

func main() {
	cfg, _ := config.Load()

	docs, err := store.Open(cfg.DataFile)
	if err != nil {
		log.Fatal(err)
	}

	var policy store.SecretPolicy
	switch cfg.SecretPolicy {
	case "plain":
		policy = auth.PlainSecrets{}
	case "bcrypt":
		policy = auth.BcryptSecrets{}
	default:
		log.Fatalf("unknown SECRET_POLICY %q", cfg.SecretPolicy)
	}

	users, err := store.OpenCredentials(cfg.UsersFile, policy, docs)
	if err != nil {
		log.Fatal(err)
	}

	jwtSvc := auth.NewJWT(cfg.JWTSecret)
	r := httpx.NewRouter(cfg, docs, users, jwtSvc)

	// refill sweep
	worker := &refill.Worker{Store: docs, Threshold: cfg.RefillThreshold}

	ctx, cancel := context.WithCancel(context.Background())
	go worker.Run(ctx)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("listening on %s\n", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
