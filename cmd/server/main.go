package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/RusenAli99/say-nileti-im/internal/auth"
	"github.com/RusenAli99/say-nileti-im/internal/config"
	"github.com/RusenAli99/say-nileti-im/internal/db"
	"github.com/RusenAli99/say-nileti-im/internal/es"
	"github.com/RusenAli99/say-nileti-im/internal/events"
	"github.com/RusenAli99/say-nileti-im/internal/httpserver"
	"github.com/RusenAli99/say-nileti-im/internal/logging"
	loggingmw "github.com/RusenAli99/say-nileti-im/internal/middleware/logging"
	"github.com/RusenAli99/say-nileti-im/internal/repo"
	"github.com/RusenAli99/say-nileti-im/internal/search"
	"github.com/RusenAli99/say-nileti-im/internal/service"
)

func main() {
	cfg := config.Load()
	if cfg.DBDriver == "postgres" {
		config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	}

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	store := &repo.GormRepo{DB: gdb}
	if err := store.EnsureSchema(context.Background()); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)

	esClient, err := es.NewClient(cfg)
	if err != nil {
		log.Fatalf("es client: %v", err)
	}
	searchSvc := search.New(esClient, cfg.ESIndex)

	catalogSvc := &service.CatalogService{Repo: store}
	noteSvc := &service.NoteService{Repo: store}
	ledgerSvc := &service.LedgerService{Repo: store}
	creditSvc := &service.CreditService{Repo: store}

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		ProductHandler: &httpserver.ProductHTTP{Svc: catalogSvc, Producer: producer, Search: searchSvc},
		NoteHandler:    &httpserver.NoteHTTP{Svc: noteSvc},
		FinanceHandler: &httpserver.FinanceHTTP{Svc: ledgerSvc},
		CreditHandler:  &httpserver.CreditHTTP{Svc: creditSvc, Producer: producer},
		AuthHandler: &auth.Handler{
			JWTSecret:    cfg.JWTSecret,
			PasswordHash: cfg.OwnerPasswordHash,
		},
		JWTSecret: cfg.JWTSecret,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("%s listening on %s", cfg.ServiceName, srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	_ = producer.Close()

	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Println("server stopped")
}
