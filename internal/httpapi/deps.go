package httpapi

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/rs/zerolog"

	"careerlift-engine/internal/config"
	"careerlift-engine/internal/domain"
	"careerlift-engine/internal/events"
	"careerlift-engine/internal/scrape"
)

type Deps struct {
	DB *sql.DB

	Hub *events.Hub

	Log zerolog.Logger

	// Atomic stores
	CfgVal       *atomic.Value // stores config.Config
	SearchStatus *atomic.Value // stores httpapi.SearchStatus

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Injected for testability
	GetProfile    func(ctx context.Context, id string) (domain.Profile, error)
	UpsertProfile func(ctx context.Context, p domain.Profile) error
	Search        func(ctx context.Context, p domain.Profile) (scrape.Result, error)
}
