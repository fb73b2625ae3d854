package moralis

import (
	"context"

	"github.com/kripto-transakcije/explorer/pkg/models"
)

// Client captures the Moralis calls used by the explorer.
// Methods return explorer models; provider shapes stay inside this package.
type Client interface {
	LatestBlockNumber(ctx context.Context) (uint64, error)
	BlockByNumber(ctx context.Context, number uint64) (*models.Block, error)
	Transaction(ctx context.Context, hash string) (*models.Transaction, error)
	AddressTransactions(ctx context.Context, address string, limit int) ([]models.Transaction, error)
	Balance(ctx context.Context, address string) (string, error)
	TransactionCount(ctx context.Context, address string) (uint64, error)
	TokenBalances(ctx context.Context, address string) ([]models.Token, error)
	TokenMetadata(ctx context.Context, contracts ...string) ([]models.Token, error)
}

var _ Client = (*HTTPClient)(nil)
