// Package poller refreshes the network status on a cron schedule and
// publishes each snapshot for live subscribers.
package poller

import (
	"context"
	"time"

	"github.com/go-jose/go-jose/v4/json"
	"github.com/kripto-transakcije/explorer/pkg/models"
	"github.com/kripto-transakcije/explorer/pkg/redis"
	"github.com/puzpuzpuz/xsync/v4"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultSpec runs every ten seconds, matching the browser polling interval.
const DefaultSpec = "*/10 * * * * *"

const tickTimeout = 25 * time.Second

// StatusSource reads a fresh network status.
type StatusSource interface {
	NetworkStatus(ctx context.Context) models.NetworkStatus
	Chain() string
}

// Publisher delivers a snapshot to a Pub/Sub channel, best-effort.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{})
}

type Poller struct {
	source    StatusSource
	publisher Publisher
	logger    *zap.Logger

	// Cron triggers a refresh according to CronSpec.
	Cron     *cron.Cron
	CronSpec string

	// snapshots holds the last status published per chain.
	snapshots *xsync.Map[string, models.NetworkStatus]
}

// New creates a Poller. publisher may be nil, in which case snapshots are
// only kept in memory.
func New(source StatusSource, publisher Publisher, logger *zap.Logger, spec string) *Poller {
	if spec == "" {
		spec = DefaultSpec
	}
	return &Poller{
		source:    source,
		publisher: publisher,
		logger:    logger,
		CronSpec:  spec,
		snapshots: xsync.NewMap[string, models.NetworkStatus](),
	}
}

// SetupScheduler sets up the cron scheduler.
func (p *Poller) SetupScheduler(ctx context.Context) error {
	logger := cronLogger{p.logger.Sugar()}
	// Seconds field, optional. A tick still running when the next is due
	// makes the next one a no-op.
	p.Cron = cron.New(cron.WithSeconds(), cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)))

	_, err := p.Cron.AddFunc(p.CronSpec, func() {
		// keep each run bounded
		rctx, cancel := context.WithTimeout(ctx, tickTimeout)
		defer cancel()
		p.Tick(rctx)
	})
	return err
}

// Start starts the cron scheduler.
func (p *Poller) Start() {
	if p.Cron == nil {
		return
	}
	p.Cron.Start()
	p.logger.Info("[poller] Cron started", zap.String("cronSpec", p.CronSpec))
}

// Stop waits for a running tick to finish.
func (p *Poller) Stop() {
	if p.Cron != nil {
		<-p.Cron.Stop().Done()
	}
}

// Tick reads the status once, stores it, and publishes it.
func (p *Poller) Tick(ctx context.Context) models.NetworkStatus {
	status := p.source.NetworkStatus(ctx)
	if ctx.Err() != nil {
		// half-filled snapshot, keep the previous one
		return status
	}
	p.snapshots.Store(status.Chain, status)

	if p.publisher != nil {
		payload, err := json.Marshal(status)
		if err != nil {
			p.logger.Error("Failed to encode status snapshot", zap.Error(err))
			return status
		}
		p.publisher.Publish(ctx, redis.StatusChannel(status.Chain), string(payload))
	}

	p.logger.Debug("Status refreshed",
		zap.String("chain", status.Chain),
		zap.Uint64("latestBlock", status.LatestBlock),
		zap.Float64("ethPrice", status.EthPrice))
	return status
}

// Latest returns the last snapshot stored for chain.
func (p *Poller) Latest(chain string) (models.NetworkStatus, bool) {
	return p.snapshots.Load(chain)
}

// cronLogger routes cron's own messages into zap.
type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}
