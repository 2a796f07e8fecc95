/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/suparena/shopstore"
	"github.com/suparena/shopstore/config"
	"github.com/suparena/shopstore/datastore/ddb"
	"github.com/suparena/shopstore/handlers"
	"github.com/suparena/shopstore/httpapi"
	"github.com/suparena/shopstore/objstore"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := shopstore.GetVersionInfo()
		fmt.Printf("shopstore version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := cfg.Database
	client, err := ddb.NewClient(ctx, db.AccessKey, db.SecretKey, db.Region, db.Endpoint, log)
	if err != nil {
		return fmt.Errorf("failed to connect to table engine: %w", err)
	}

	store := ddb.New(client, db.Table, log)
	tokens := ddb.New(client, db.TokensTable, log)
	if err := store.EnsureTable(ctx); err != nil {
		return err
	}
	if err := tokens.EnsureTable(ctx); err != nil {
		return err
	}

	obj := cfg.Objects
	s3Client, err := objstore.NewS3Client(ctx, obj.AccessKey, obj.SecretKey, obj.Region, obj.Endpoint)
	if err != nil {
		return fmt.Errorf("failed to connect to object storage: %w", err)
	}
	storage := objstore.New(s3Client, obj.Bucket, obj.URLPrefix, log)

	svc := handlers.New(store, tokens, storage, log, cfg.TrialDays)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           httpapi.New(svc, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.Int("port", cfg.Port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}
