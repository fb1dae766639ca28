package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/hazyhaar/barlaman-registry/pkg/alerts"
	"github.com/hazyhaar/barlaman-registry/pkg/api"
	"github.com/hazyhaar/barlaman-registry/pkg/chassis"
	"github.com/hazyhaar/barlaman-registry/pkg/corpus"
	"github.com/hazyhaar/barlaman-registry/pkg/history"
	"github.com/hazyhaar/barlaman-registry/pkg/roster"
	"github.com/hazyhaar/barlaman-registry/pkg/search"
	"github.com/hazyhaar/barlaman-registry/pkg/transcripts"
)

const version = "1.0.0"

type config struct {
	Addr            string `yaml:"addr"`
	DataDir         string `yaml:"data_dir"`
	SubscriptionsDB string `yaml:"subscriptions_db"`
	MatcherConfig   string `yaml:"matcher_config"`
	CertFile        string `yaml:"cert_file"`
	KeyFile         string `yaml:"key_file"`
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		cmdServe(os.Args[2:])
	case "validate":
		cmdValidate(os.Args[2:])
	case "query":
		cmdQuery(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: barlaman <command>\n\nCommands:\n  serve      Start the API server (HTTP + HTTP/3 + MCP over QUIC)\n  validate   Check the corpus files and build the segment snapshot\n  query      Call a tool on a running server over QUIC\n")
}

func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg := loadConfig(*cfgPath, logger)

	matcherCfg, err := roster.LoadMatcherConfig(cfg.MatcherConfig)
	if err != nil {
		logger.Error("failed to load matcher config", "error", err)
		os.Exit(1)
	}
	matcher := roster.NewMatcher(matcherCfg)

	// Load the corpus.
	store := corpus.NewStore(cfg.DataDir, logger)
	if err := store.Load(); err != nil {
		logger.Error("failed to load corpus", "error", err)
		os.Exit(1)
	}

	library := transcripts.NewLibrary(cfg.DataDir, logger)

	var subs *alerts.SubscriptionDB
	if cfg.SubscriptionsDB != "" {
		subs, err = alerts.OpenSubscriptionDB(cfg.SubscriptionsDB)
		if err != nil {
			logger.Error("failed to open subscription store", "path", cfg.SubscriptionsDB, "error", err)
			os.Exit(1)
		}
		defer subs.Close()
	}

	svc := &api.Service{
		Store:   store,
		Engine:  search.NewEngine(store, library, logger),
		Matcher: matcher,
		History: history.NewBuilder(matcher),
		Subs:    subs,
	}

	// HTTP router plus the raw corpus files for browser clients.
	mux := http.NewServeMux()
	mux.Handle("/data/", http.StripPrefix("/data/", http.FileServer(http.Dir(cfg.DataDir))))
	mux.Handle("/", api.NewRouter(svc))

	mcpSrv := server.NewMCPServer("barlaman-registry", version)
	api.RegisterMCPTools(mcpSrv, svc)

	srv, err := chassis.New(chassis.Config{
		Addr:      cfg.Addr,
		CertFile:  cfg.CertFile,
		KeyFile:   cfg.KeyFile,
		Handler:   mux,
		MCPServer: mcpSrv,
		Logger:    logger,
	})
	if err != nil {
		logger.Error("chassis init failed", "error", err)
		os.Exit(1)
	}

	// SIGHUP: hot reload the corpus.
	// SIGINT/SIGTERM: graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sighup := make(chan os.Signal, 1)
	signal.Notify(sighup, syscall.SIGHUP)
	go func() {
		for range sighup {
			logger.Info("SIGHUP received, reloading corpus")
			if err := store.Refresh(); err != nil {
				logger.Error("reload failed", "error", err)
			} else {
				mps, sessions, segments := store.Counts()
				logger.Info("corpus reloaded", "mps", mps, "sessions", sessions, "segments", segments)
			}
		}
	}()

	logger.Info("barlaman listening", "addr", cfg.Addr)
	if err := srv.Start(ctx); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	srv.Stop(shutdownCtx)
}

func loadConfig(path string, logger *slog.Logger) config {
	cfg := config{
		Addr:            ":8431",
		DataDir:         "data",
		SubscriptionsDB: "data/subscriptions.db",
		MatcherConfig:   "matcher.yaml",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("no config file, using defaults", "path", path)
			return cfg
		}
		logger.Error("read config", "error", err)
		os.Exit(1)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Error("parse config", "error", err)
		os.Exit(1)
	}
	return cfg
}
