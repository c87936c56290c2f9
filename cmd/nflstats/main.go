package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/XavierBriggs/fortuna/services/nflstats/internal/cli"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/config"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/handlers"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/logger"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:]))
}

// run is the whole program minus the process exit. Tables go to stdout,
// logs and errors to stderr. Arguments are parsed before the environment
// is read, so help works whatever the configuration.
func run(stdout, stderr io.Writer, args []string) int {
	if len(args) > 0 {
		switch args[0] {
		case cli.ServeCommand:
			return serve(stdout, stderr, args[1:])
		case cli.GameCommand:
			return game(stdout, stderr, args[1:])
		}
	}

	opts, shouldExit, err := cli.Parse(args, stdout)
	if err != nil {
		return exitCode(stderr, err)
	}
	if shouldExit {
		return cli.ExitOK
	}

	cfg, log, err := setup(stderr)
	if err != nil {
		return exitCode(stderr, err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return cli.ExitFailure
	}
	defer a.Close()

	log.Debug().
		Str("years", opts.Query.Years.String()).
		Str("weeks", opts.Query.Weeks.String()).
		Strs("teams", opts.Query.Teams).
		Str("mode", opts.Query.Mode()).
		Msg("running query")

	if err := cli.Execute(ctx, stdout, opts, a.league); err != nil {
		return exitCode(stderr, err)
	}
	return cli.ExitOK
}

// setup loads the configuration and builds the run's logger. Configuration
// errors are usage errors.
func setup(stderr io.Writer) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), &cli.ExitError{Code: cli.ExitUsage, Message: err.Error()}
	}

	log := logger.WithRunID(logger.NewWithWriter(stderr, logger.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
	}))
	logger.SetGlobalLogger(log)

	return cfg, log, nil
}

func game(stdout, stderr io.Writer, args []string) int {
	opts, shouldExit, err := cli.ParseGame(args, stdout)
	if err != nil {
		return exitCode(stderr, err)
	}
	if shouldExit {
		return cli.ExitOK
	}

	cfg, log, err := setup(stderr)
	if err != nil {
		return exitCode(stderr, err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return cli.ExitFailure
	}
	defer a.Close()

	if err := cli.ExecuteGame(ctx, stdout, opts, a.games); err != nil {
		return exitCode(stderr, err)
	}
	return cli.ExitOK
}

func serve(stdout, stderr io.Writer, args []string) int {
	opts, shouldExit, err := cli.ParseServe(args, stdout)
	if err != nil {
		return exitCode(stderr, err)
	}
	if shouldExit {
		return cli.ExitOK
	}

	cfg, log, err := setup(stderr)
	if err != nil {
		return exitCode(stderr, err)
	}
	addr := opts.Addr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return cli.ExitFailure
	}
	defer a.Close()

	srv := &http.Server{
		Addr:         addr,
		Handler:      handlers.NewRouter(handlers.NewHandler(a.league, a.games, cfg.Source), log, cfg.Server.CORSOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 3 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Log().Str("addr", addr).Str("source", cfg.Source).Msg("nflstats listening")
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		log.Error().Err(err).Msg("server error")
		return cli.ExitFailure

	case <-ctx.Done():
		log.Log().Msg("shutting down")

		// Give outstanding requests a deadline for completion
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancelShutdown()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("graceful shutdown failed")
			srv.Close()
		}
	}

	return cli.ExitOK
}

func exitCode(stderr io.Writer, err error) int {
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(stderr, exitErr.Message)
		return exitErr.Code
	}
	fmt.Fprintln(stderr, err)
	return cli.ExitFailure
}
