package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tryangle/coach-controller/internal/analyzer"
	"github.com/tryangle/coach-controller/internal/api"
	"github.com/tryangle/coach-controller/internal/config"
	"github.com/tryangle/coach-controller/internal/history"
	"github.com/tryangle/coach-controller/internal/pipeline"
)

// #region main

func main() {
	configPath := flag.String("config", "", "path to YAML config (defaults to COACH_CONFIG)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	store, err := history.NewStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("open history store: %v", err)
	}
	defer store.Close()

	// The analyzer sidecar is probed at startup so a misconfigured
	// address surfaces immediately; the connection itself is lazy.
	analyzerClient, err := analyzer.NewClient(cfg.AnalyzerAddr)
	if err != nil {
		log.Fatalf("analyzer client: %v", err)
	}
	defer analyzerClient.Close()
	probeAnalyzer(analyzerClient)

	pipe := pipeline.New(cfg.Pipeline())
	defer pipe.Close()

	server := api.NewServer(pipe, store)
	httpServer := &http.Server{
		Addr:    cfg.APIAddr,
		Handler: server.Routes(),
	}

	go func() {
		log.Printf("[API] listening on %s (db=%s analyzer=%s)", cfg.APIAddr, cfg.DBPath, cfg.AnalyzerAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("[API] shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("[API] shutdown: %v", err)
	}
}

// #endregion main

// #region probe

func probeAnalyzer(client *analyzer.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	h, err := client.Health(ctx)
	if err != nil {
		log.Printf("[API] analyzer not reachable yet: %v", err)
		return
	}
	log.Printf("[API] analyzer ready (model %s)", h.ModelVersion)
}

// #endregion probe
