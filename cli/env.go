package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/queuectl/queuectl/config"
	"github.com/queuectl/queuectl/manager"
	"github.com/queuectl/queuectl/store"
	"github.com/queuectl/queuectl/supervisor"
)

// env bundles the dependencies every command needs: the home directory,
// the job manager, and a logger. Commands that spawn or signal workers
// also get a supervisor.
type env struct {
	dir     string
	store   *store.Store
	manager *manager.Manager
	log     *slog.Logger
}

func newEnv(ctx context.Context) (*env, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	s, err := store.Open(ctx, config.DBPath(dir))
	if err != nil {
		return nil, err
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return &env{
		dir:     dir,
		store:   s,
		manager: manager.New(s, dir),
		log:     log,
	}, nil
}

func (e *env) close() {
	_ = e.store.Close()
}

func (e *env) supervisor() *supervisor.Supervisor {
	return supervisor.New(e.dir, e.store, e.log)
}
