package types

import (
	"context"
	"net/http"
	"time"

	"github.com/kripto-transakcije/explorer/app/explorer/poller"
	"github.com/kripto-transakcije/explorer/pkg/catalog"
	"github.com/kripto-transakcije/explorer/pkg/chaindata"
	"github.com/kripto-transakcije/explorer/pkg/redis"
	"go.uber.org/zap"
)

// Config holds the list sizes rendered by the pages.
type Config struct {
	BlocksPageSize     int
	TxsPageSize        int
	AddressTxsPageSize int
	// AddressStatsWindow is how many transactions address statistics cover.
	AddressStatsWindow int
}

type App struct {
	Reader  *chaindata.Reader
	Catalog *catalog.Catalog
	Poller  *poller.Poller
	// RedisClient is nil when live push is disabled.
	RedisClient *redis.Client
	Config      Config
	// Zap Logger
	Logger *zap.Logger
	// Server represents the HTTP server instance used to handle incoming client requests and manage HTTP routes.
	Server *http.Server
}

// Start starts the application.
func (a *App) Start(ctx context.Context) {
	go func() {
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.Logger.Error("HTTP server stopped", zap.Error(err))
		}
	}()
	if a.Poller != nil {
		a.Poller.Start()
	}
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if a.Poller != nil {
		a.Poller.Stop()
	}

	_ = a.Server.Shutdown(shutdownCtx)

	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Logger.Error("Failed to close Redis connection", zap.Error(err))
		}
	}
	a.Reader.Close()

	time.Sleep(200 * time.Millisecond)
	a.Logger.Info("さようなら!")
}
