package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/dictio-games/dictio/internal/cache/cachelru"
	"github.com/dictio-games/dictio/internal/corpus"
	"github.com/dictio-games/dictio/internal/database"
	gamedb "github.com/dictio-games/dictio/internal/database/gamedb/database"
	"github.com/dictio-games/dictio/internal/dictio"
	"github.com/dictio-games/dictio/internal/identity"
	"github.com/dictio-games/dictio/internal/logging"
	"github.com/dictio-games/dictio/internal/random"
	"github.com/dictio-games/dictio/internal/shutdown"
	"github.com/dictio-games/dictio/internal/watch"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, done := shutdown.New()
	defer done()
	logger := logging.FromContext(ctx)
	if err := realMain(ctx); err != nil {
		logger.Fatalf("main.realMain: %v", err)
	}
}

func realMain(ctx context.Context) error {
	logger := logging.FromContext(ctx)

	config := dictio.Config{}
	if err := envconfig.Process("", &config); err != nil {
		return fmt.Errorf("processing the config: %w", err)
	}

	ctx = logging.WithLogger(ctx, logging.NewLogger(config.Debug))
	logger = logging.FromContext(ctx)

	if corpus.Size() == 0 {
		return fmt.Errorf("empty word corpus")
	}

	db, err := database.NewFromEnv(ctx, &config.Db)
	if err != nil {
		return fmt.Errorf("new database from env: %w", err)
	}
	defer db.Close(ctx)

	codes, err := cachelru.NewLRU(config.CacheSize)
	if err != nil {
		return fmt.Errorf("can not create lru cache: %w", err)
	}

	hub := watch.NewHub()
	engine := dictio.New(gamedb.New(db, codes, hub), random.New(), corpus.All())

	logger.Infof("engine ready, corpus size %d", corpus.Size())

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/identity", func(w http.ResponseWriter, _ *http.Request) {
		// anonymous actors mint their id once and keep it client-side
		_, _ = w.Write([]byte(identity.NewActorID()))
	})
	mux.HandleFunc("/debug/scoreboard", func(w http.ResponseWriter, r *http.Request) {
		roomID := r.URL.Query().Get("room")
		room, err := engine.Room(r.Context(), roomID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		players, err := engine.Players(r.Context(), roomID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(dictio.RenderScoreboard(room, players)))
	})

	srv := &http.Server{Addr: ":" + config.Port, Handler: mux}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		logger.Infof("health endpoint on :%s", config.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "shutdown: %v\n", err)
		return err
	}

	return nil
}
