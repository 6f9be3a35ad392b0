// Package app wires the converter components together for a single run:
// config, logging, argument parsing, snapshot freshness, table loading and
// the conversion itself. Presentation stays in the cli package.
package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"curconv/internal/adapters/httpclient"
	"curconv/internal/adapters/snapshotfile"
	"curconv/internal/config"
	"curconv/internal/domain"
	"curconv/internal/expr"
	"curconv/internal/rate"
)

// Process exit codes, one per failure class.
const (
	ExitOK              = 0
	ExitRefreshFailure  = 1
	ExitSnapshotFailure = 2
	ExitArgumentFailure = 3
	ExitUnknownFrom     = 4
	ExitUnknownTo       = 5
)

// ExitError pairs a failure with the process exit code it maps to.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// Result is what a successful run hands to the presentation layer. Table is
// populated for every outcome that needed the snapshot; Conversion only for
// expr.KindConvert.
type Result struct {
	Kind       expr.Kind
	Table      domain.RateTable
	Conversion domain.ConversionResult
}

// Run executes one invocation. Arguments resolve before any I/O, so help,
// version and argument errors never touch the network or the snapshot.
func Run(ctx context.Context, args []string) (*Result, error) {
	cfg, err := config.Init()
	if err != nil {
		return nil, &ExitError{Code: ExitRefreshFailure, Err: err}
	}

	if lvl, parseErr := logrus.ParseLevel(cfg.Logging.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(lvl)
	}

	outcome, err := expr.Parse(args)
	if err != nil {
		return nil, &ExitError{Code: ExitArgumentFailure, Err: err}
	}

	switch outcome.Kind {
	case expr.KindShowHelp, expr.KindShowVersion:
		return &Result{Kind: outcome.Kind}, nil
	}

	table, err := loadTable(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if outcome.Kind != expr.KindConvert {
		return &Result{Kind: outcome.Kind, Table: table}, nil
	}

	conversion, err := rate.Convert(table, outcome.Request)
	if err != nil {
		code := ExitUnknownFrom
		var unknown *domain.UnknownCurrencyError
		if errors.As(err, &unknown) && unknown.Side == domain.SideTo {
			code = ExitUnknownTo
		}
		return nil, &ExitError{Code: code, Err: err}
	}

	return &Result{Kind: expr.KindConvert, Table: table, Conversion: conversion}, nil
}

// loadTable ensures the local snapshot is fresh enough and materializes the
// rate table from it.
func loadTable(ctx context.Context, cfg *config.AppConfig) (domain.RateTable, error) {
	store := snapshotfile.NewStore(cfg.Snapshot.Path())

	httpTimeout := time.Duration(cfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	fetcher := httpclient.NewSnapshotClient(&http.Client{Timeout: httpTimeout}, cfg.Snapshot.URL)

	cache := rate.NewCache(store, cfg.Snapshot.MaxAge())
	if err := cache.Ensure(ctx, fetcher, time.Now()); err != nil {
		return domain.RateTable{}, &ExitError{Code: ExitRefreshFailure, Err: err}
	}

	data, err := store.Read()
	if err != nil {
		return domain.RateTable{}, &ExitError{Code: ExitSnapshotFailure, Err: err}
	}
	table, err := rate.ParseSnapshot(data)
	if err != nil {
		return domain.RateTable{}, &ExitError{Code: ExitSnapshotFailure, Err: err}
	}
	return table, nil
}
