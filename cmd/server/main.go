package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/primesum/internal/cache"
	"github.com/example/primesum/internal/config"
	"github.com/example/primesum/internal/handlers"
	apihttp "github.com/example/primesum/internal/http"
	"github.com/example/primesum/internal/rate"
	"github.com/example/primesum/internal/store"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	cfg := config.Load()

	var runs store.Recorder
	if cfg.MongoURI == "" {
		log.Println("warning: MONGO_URI is empty; run history disabled")
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			cancel()
			log.Fatalf("mongo connect error: %v", err)
		}
		defer func() {
			_ = mongoClient.Disconnect(context.Background())
		}()
		rs, err := store.NewMongoRunStore(ctx, mongoClient, cfg.MongoDB)
		cancel()
		if err != nil {
			log.Fatalf("run store init error: %v", err)
		}
		runs = rs
	}

	c := cache.New(cfg.CacheTTL, cfg.CacheMaxEntries, cfg.SieveTimeout)
	stopPurge := purgeEvery(c, cfg.CacheTTL)
	defer stopPurge()

	lm := rate.NewClientLimiter(cfg.RateLimitRPM, burstFor(cfg.RateLimitRPM), 5*time.Minute)
	defer lm.Stop()

	router := apihttp.NewRouter(apihttp.Deps{
		Primes: handlers.NewPrimesHandler(handlers.PrimesDeps{
			Cache:          c,
			Store:          runs,
			MaxN:           cfg.SieveMaxN,
			Timeout:        cfg.SieveTimeout,
			MaxConcurrency: cfg.MaxConcurrency,
		}),
		TwoSum:  handlers.NewTwoSumHandler(runs, cfg.MaxNums),
		Runs:    handlers.NewRunsHandler(runs),
		Limiter: lm,
		Store:   runs,

		TrustProxy: cfg.TrustProxy,
	})

	srv := &http.Server{
		Addr:         listenAddr(cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.SieveTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("shutting down...")
	shCtx, shCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shCancel()
	_ = srv.Shutdown(shCtx)
}
