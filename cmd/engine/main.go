package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"careerlift-engine/internal/config"
	"careerlift-engine/internal/domain"
	"careerlift-engine/internal/events"
	"careerlift-engine/internal/httpapi"
	"careerlift-engine/internal/scrape"
	"careerlift-engine/internal/secrets"
	"careerlift-engine/internal/store"
)

func main() {
	// No .env is fine; env vars may come from the host.
	_ = godotenv.Load()

	log := zerolog.New(os.Stderr).With().Timestamp().Str("svc", "careerlift-engine").Logger()

	dataDir := os.Getenv("CAREERLIFT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("create data dir")
	}

	// One engine per data dir; a second instance would fight over sqlite.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatal().Err(err).Msg("acquire data dir lock")
	}
	if !locked {
		log.Fatal().Str("dir", dataDir).Msg("another engine instance holds the data dir")
	}
	defer func() { _ = lock.Unlock() }()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("config bootstrap failed")
	}

	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		return config.Load(userCfgPath)
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatal().Err(err).Str("path", userCfgPath).Msg("config load failed")
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatal().Err(err).Msg("config invalid")
	}
	cfgVal.Store(cfg)

	db, err := store.Open(filepath.Join(dataDir, "careerlift.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("open db")
	}
	defer db.Close()
	if err := store.Migrate(db.Pool); err != nil {
		log.Fatal().Err(err).Msg("migrate db")
	}

	limiter := scrape.NewHostLimiter(cfg.Search.RequestsPerSecond, cfg.Search.Burst)
	client, err := scrape.NewClient(cfg.Search.TimeoutSeconds, limiter)
	if err != nil {
		log.Fatal().Err(err).Msg("build fetch client")
	}
	client.Cookie = secrets.GetSessionCookie

	pipeline := &scrape.Pipeline{
		Fetch: client,
		Cfg:   func() config.Config { return cfgVal.Load().(config.Config) },
		Log:   log.With().Str("component", "pipeline").Logger(),
	}

	hub := events.NewHub()

	var searchStatus atomic.Value
	searchStatus.Store(httpapi.SearchStatus{})

	mux := httpapi.NewMux(httpapi.Deps{
		DB:           db.Pool,
		Hub:          hub,
		Log:          log,
		CfgVal:       &cfgVal,
		SearchStatus: &searchStatus,
		UserCfgPath:  userCfgPath,
		LoadCfg:      loadCfg,
		GetProfile: func(ctx context.Context, id string) (domain.Profile, error) {
			return store.GetProfile(ctx, db.Pool, id)
		},
		UpsertProfile: func(ctx context.Context, p domain.Profile) error {
			return store.UpsertProfile(ctx, db.Pool, p)
		},
		Search: pipeline.Search,
	})

	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.WithUser,
		httpapi.Cors,
		httpapi.Recover(log),
		httpapi.AccessLog(log),
	)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal().Err(err).Str("addr", addr).Msg("listen")
	}
	log.Info().Str("addr", "http://"+addr).Str("data_dir", dataDir).Msg("engine listening")

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := srv.Serve(ln); err != nil {
		log.Fatal().Err(err).Msg("serve")
	}
}
