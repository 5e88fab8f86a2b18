package app

import (
	"context"
	"fmt"
	"go-bankist/config"
	"go-bankist/db"
	"go-bankist/handler"
	"go-bankist/logger"
	"go-bankist/model"
	"go-bankist/repository"
	"go-bankist/router"
	"go-bankist/service"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"
)

// App holds the wired layers.
type App struct {
	Router    http.Handler
	Ledger    *service.LedgerService
	Tokens    *service.TokenService
	Directory *repository.AccountDirectory
}

// New wires every layer over a directory built from seeds. A nil cache
// client disables the figure cache.
func New(cfg config.Config, seeds []*model.Account, cacheClient service.ICacheClient) *App {
	directory := repository.NewAccountDirectory(seeds)

	var cache *service.FigureCache
	if cacheClient != nil {
		cache = service.NewFigureCache(cacheClient, cfg.Redis.TTL)
	}

	ledger := service.NewLedgerService(directory, cache)
	tokens := service.NewTokenService(cfg.JWT.SecretKey, cfg.JWT.TTL)

	authHandler := handler.NewAuthHandler(ledger, tokens)
	accountHandler := handler.NewAccountHandler(ledger)
	transactionHandler := handler.NewTransactionHandler(ledger)
	authMiddleware := handler.NewAuthMiddleware(tokens, ledger)

	return &App{
		Router:    router.NewRouter(authHandler, accountHandler, transactionHandler, authMiddleware),
		Ledger:    ledger,
		Tokens:    tokens,
		Directory: directory,
	}
}

// NewTestApp wires the default accounts with a fixed secret and no cache.
func NewTestApp() *App {
	var cfg config.Config
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.TTL = time.Minute
	return New(cfg, repository.DefaultSeeds(), nil)
}

func loadSeeds() []*model.Account {
	seeds, err := repository.SeedsFromConfig(config.AppConfig.Accounts)
	if err != nil {
		logger.Log.Fatalf("Invalid seed accounts: %v", err)
	}
	return seeds
}

func setup(configPath string) {
	logger.Init()
	config.LoadConfig(configPath)
	logger.SetLevel(config.AppConfig.Log.Level)
	logger.Log.Info("Configuration loaded successfully")
}

// Run starts the HTTP server and blocks until SIGINT or SIGTERM.
func Run(configPath string) {
	setup(configPath)

	rdb, err := db.ConnectRedis(context.Background())
	if err != nil {
		logger.Log.Fatalf("Error connecting to redis: %v", err)
	}
	var cacheClient service.ICacheClient
	if rdb != nil {
		defer rdb.Close()
		cacheClient = rdb
	}

	a := New(config.AppConfig, loadSeeds(), cacheClient)

	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}

// PrintAccounts writes the configured directory with its figures to w.
func PrintAccounts(configPath string, w io.Writer) error {
	setup(configPath)
	return WriteAccounts(New(config.AppConfig, loadSeeds(), nil).Ledger, w)
}

// WriteAccounts writes one row per account in directory order.
func WriteAccounts(ledger *service.LedgerService, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "USERNAME\tOWNER\tRATE\tBALANCE\tIN\tOUT\tINTEREST")
	for _, af := range ledger.Accounts() {
		f := af.Figures
		fmt.Fprintf(tw, "%s\t%s\t%s%%\t%s\t%s\t%s\t%s\n",
			af.Account.Username,
			af.Account.Owner,
			af.Account.InterestRate.String(),
			f.Balance.StringFixed(2),
			f.Deposits.StringFixed(2),
			f.Withdrawals.StringFixed(2),
			f.Interest.StringFixed(2),
		)
	}
	return tw.Flush()
}
