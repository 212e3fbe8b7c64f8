package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/UmasivanKanthavel/shield-resume-server/app"
	"github.com/UmasivanKanthavel/shield-resume-server/auth"
	"github.com/UmasivanKanthavel/shield-resume-server/config"
	"github.com/UmasivanKanthavel/shield-resume-server/database"
	"github.com/UmasivanKanthavel/shield-resume-server/log"
	"github.com/UmasivanKanthavel/shield-resume-server/routes"
	"github.com/UmasivanKanthavel/shield-resume-server/store"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("main.db.open:", err)
	}
	defer db.Close()

	accounts := store.NewAccountStore(db)
	sessions := store.NewSessionStore(db, cfg.SessionTTL)
	submissions := store.NewSubmissionStore(db)

	handler := routes.Wire(app.App{
		DB:          db,
		Accounts:    accounts,
		Sessions:    sessions,
		Submissions: submissions,
		Analyzer:    store.NewAnalyzer(submissions),
		Access:      auth.NewAccessController(accounts, sessions),
		Config:      cfg,
	})

	err = runServer(cfg, handler)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
	log.Info("Shutdown complete, closing DB")
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		log.Info("Listening on " + cfg.Url())
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		log.Info("Signal caught, closing...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
