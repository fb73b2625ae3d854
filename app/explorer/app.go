package explorer

import (
	"context"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kripto-transakcije/explorer/app/explorer/poller"
	"github.com/kripto-transakcije/explorer/app/explorer/types"
	"github.com/kripto-transakcije/explorer/pkg/catalog"
	"github.com/kripto-transakcije/explorer/pkg/chaindata"
	"github.com/kripto-transakcije/explorer/pkg/logging"
	"github.com/kripto-transakcije/explorer/pkg/redis"
	"github.com/kripto-transakcije/explorer/pkg/utils"
	"go.uber.org/zap"
)

// Initialize initializes the application.
func Initialize(ctx context.Context) *types.App {
	// a missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	logger, err := logging.New()
	if err != nil {
		// nothing else to do here, we'll just log to stderr'
		panic(err)
	}

	reader := NewReader(logger)

	// Redis carries live status to websocket clients (optional)
	var redisClient *redis.Client
	if utils.EnvBool("REDIS_ENABLED", false) {
		redisClient, err = redis.NewClient(ctx, logger)
		if err != nil {
			logger.Warn("Failed to initialize Redis client - live status push will be disabled", zap.Error(err))
			redisClient = nil
		} else {
			logger.Info("Redis client initialized for live status push")
		}
	} else {
		logger.Info("Redis disabled - browsers will poll /api/status")
	}

	var publisher poller.Publisher
	if redisClient != nil {
		publisher = redisClient
	}
	statusPoller := poller.New(reader, publisher, logger, utils.Env("STATUS_CRON", poller.DefaultSpec))
	if err := statusPoller.SetupScheduler(ctx); err != nil {
		logger.Fatal("Unable to schedule status poller", zap.Error(err))
	}

	return &types.App{
		Reader:      reader,
		Catalog:     catalog.Default(),
		Poller:      statusPoller,
		RedisClient: redisClient,
		Config: types.Config{
			BlocksPageSize:     utils.EnvInt("BLOCKS_PAGE_SIZE", 15),
			TxsPageSize:        utils.EnvInt("TXS_PAGE_SIZE", 20),
			AddressTxsPageSize: utils.EnvInt("ADDRESS_TXS_PAGE_SIZE", 20),
			AddressStatsWindow: utils.EnvInt("ADDRESS_STATS_WINDOW", 100),
		},
		Logger: logger,
	}
}

// NewReader wires the provider clients from the environment.
func NewReader(logger *zap.Logger) *chaindata.Reader {
	ledger := NewMoralis()
	if !ledger.Configured() {
		logger.Warn("MORALIS_API_KEY is not set - ledger data will come from Dune where possible")
	}

	analytics := NewDune(logger)
	return chaindata.New(chaindata.Opts{
		Ledger:      ledger,
		Analytics:   analytics,
		Bitcoin:     analytics,
		Market:      NewCoinGecko(),
		PriceSource: strings.ToLower(utils.Env("PRICE_SOURCE", chaindata.PriceSourceCoinGecko)),
		Chain:       utils.FirstNonEmpty(os.Getenv("STATUS_CHAIN"), os.Getenv("MORALIS_CHAIN"), "eth"),
		Workers:     utils.EnvInt("READER_WORKERS", 16),
		Logger:      logger,
	})
}
