package controller

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"github.com/go-jose/go-jose/v4/json"
	"github.com/gorilla/websocket"
	"github.com/kripto-transakcije/explorer/pkg/models"
	"github.com/kripto-transakcije/explorer/pkg/redis"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	pingInterval = 30 * time.Second
	readDeadline = 60 * time.Second
	allChains    = "*"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ClientMessage is what browsers send over the socket.
type ClientMessage struct {
	Action string `json:"action"` // "subscribe" or "unsubscribe"
	Chain  string `json:"chain"`  // chain key, or "*" for every chain
}

// ServerMessage is what the socket sends back.
type ServerMessage struct {
	Type    string      `json:"type"` // "status", "subscribed", "unsubscribed", "info", "error"
	Payload interface{} `json:"payload"`
}

// clientSubscriptions tracks what chains a client is subscribed to.
type clientSubscriptions struct {
	mu     sync.RWMutex
	chains map[string]bool
}

func newClientSubscriptions() *clientSubscriptions {
	return &clientSubscriptions{chains: make(map[string]bool)}
}

func (cs *clientSubscriptions) subscribe(chain string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.chains[chain] = true
}

func (cs *clientSubscriptions) unsubscribe(chain string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	delete(cs.chains, chain)
}

// isSubscribed checks a chain key; the wildcard matches all chains.
func (cs *clientSubscriptions) isSubscribed(chain string) bool {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.chains[allChains] || cs.chains[chain]
}

// HandleWebSocket streams status snapshots published by the poller.
//
// Protocol:
// Client sends: {"action": "subscribe", "chain": "eth"}
// Client sends: {"action": "subscribe", "chain": "*"}
// Client sends: {"action": "unsubscribe", "chain": "eth"}
//
// Server sends:
// - {"type": "status", "payload": {"chain": "eth", "latest_block": ...}}
// - {"type": "subscribed", "payload": {"chain": "eth"}}
// - {"type": "unsubscribed", "payload": {"chain": "eth"}}
// - {"type": "error", "payload": {"message": "..."}}
//
// Browsers fall back to polling /api/status when this answers 503.
func (c *Controller) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	if c.App.RedisClient == nil {
		writeError(w, http.StatusServiceUnavailable, "live status not available (redis disabled)")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		c.App.Logger.Error("Failed to upgrade WebSocket connection", zap.Error(err))
		return
	}
	defer func() {
		if err := conn.Close(); err != nil {
			c.App.Logger.Debug("Failed to close WebSocket connection", zap.Error(err))
		}
	}()

	c.App.Logger.Info("WebSocket client connected", zap.String("remote_addr", r.RemoteAddr))

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	subs := newClientSubscriptions()
	send := make(chan ServerMessage, 64)

	var wg sync.WaitGroup
	spawn := func(name string, fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if rec := recover(); rec != nil {
					c.App.Logger.Error("Panic in WebSocket goroutine",
						zap.String("goroutine", name),
						zap.Any("panic", rec),
						zap.String("stack", string(debug.Stack())),
						zap.String("remote_addr", r.RemoteAddr))
					cancel()
				}
			}()
			fn()
		}()
	}

	spawn("redis subscriber", func() { c.subscribeToRedis(ctx, send, subs) })
	spawn("ping ticker", func() { c.sendPings(ctx, conn) })
	spawn("writer", func() { c.writeMessages(ctx, conn, send, cancel) })
	spawn("reader unblock", func() {
		<-ctx.Done()
		_ = conn.SetReadDeadline(time.Now())
	})

	// blocks until the client goes away
	c.readClientMessages(ctx, conn, cancel, subs, send)

	cancel()
	wg.Wait()

	c.App.Logger.Info("WebSocket client disconnected", zap.String("remote_addr", r.RemoteAddr))
}

// subscribeToRedis forwards status snapshots for subscribed chains and
// re-subscribes with jittered exponential backoff when Redis drops.
func (c *Controller) subscribeToRedis(ctx context.Context, send chan<- ServerMessage, subs *clientSubscriptions) {
	const (
		initialBackoff = 1 * time.Second
		maxBackoff     = 30 * time.Second
		backoffFactor  = 2.0
		jitterFactor   = 0.1
	)

	backoff := initialBackoff
	for attempt := 1; ; attempt++ {
		err := c.attemptRedisSubscription(ctx, send, subs)
		if ctx.Err() != nil {
			return
		}

		c.App.Logger.Warn("Redis subscription ended, will retry",
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", backoff))

		if !trySend(ctx, send, ServerMessage{
			Type: "error",
			Payload: map[string]interface{}{
				"message":     "Veza s Redisom izgubljena, ponovno spajanje...",
				"retryIn":     backoff.Seconds(),
				"recoverable": true,
			},
		}) {
			return
		}

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return
		}
		backoff = calculateNextBackoff(backoff, maxBackoff, backoffFactor, jitterFactor)
	}
}

func (c *Controller) attemptRedisSubscription(ctx context.Context, send chan<- ServerMessage, subs *clientSubscriptions) error {
	pubsub := c.App.RedisClient.PSubscribe(ctx, redis.StatusPattern)
	defer func() {
		if err := pubsub.Close(); err != nil {
			c.App.Logger.Debug("Error closing Redis subscription", zap.Error(err))
		}
	}()

	receiveCtx, receiveCancel := context.WithTimeout(ctx, 5*time.Second)
	defer receiveCancel()
	if _, err := pubsub.Receive(receiveCtx); err != nil {
		return fmt.Errorf("failed to confirm Redis subscription: %w", err)
	}

	return c.processRedisMessages(ctx, pubsub.Channel(), send, subs)
}

// processRedisMessages forwards messages until the channel closes (nil) or
// ctx is cancelled (ctx error).
func (c *Controller) processRedisMessages(ctx context.Context, ch <-chan *goredis.Message, send chan<- ServerMessage, subs *clientSubscriptions) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, open := <-ch:
			if !open {
				return nil
			}
			chain := redis.ChainFromChannel(msg.Channel)
			if chain == "" {
				c.App.Logger.Warn("Unexpected Redis channel", zap.String("channel", msg.Channel))
				continue
			}
			if !subs.isSubscribed(chain) {
				continue
			}

			var status models.NetworkStatus
			if err := json.Unmarshal([]byte(msg.Payload), &status); err != nil {
				c.App.Logger.Error("Failed to parse status message", zap.Error(err), zap.String("channel", msg.Channel))
				continue
			}
			if !trySend(ctx, send, ServerMessage{Type: "status", Payload: status}) {
				return ctx.Err()
			}
		}
	}
}

// calculateNextBackoff grows current by factor, caps it at max and adds
// +/- jitterFactor of random jitter, never going below current.
func calculateNextBackoff(current, max time.Duration, factor, jitterFactor float64) time.Duration {
	next := time.Duration(float64(current) * factor)
	if next > max {
		next = max
	}

	jitter := float64(next) * jitterFactor * (2*rand.Float64() - 1)
	next = time.Duration(float64(next) + jitter)

	if next < current {
		next = current
	}
	if next > max {
		next = max
	}
	return next
}

func trySend(ctx context.Context, send chan<- ServerMessage, msg ServerMessage) bool {
	select {
	case send <- msg:
		return true
	case <-ctx.Done():
		return false
	}
}

func (c *Controller) sendPings(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(10*time.Second)); err != nil {
				c.App.Logger.Debug("Failed to send ping", zap.Error(err))
				return
			}
		}
	}
}

// writeMessages is the only writer of data frames on conn.
func (c *Controller) writeMessages(ctx context.Context, conn *websocket.Conn, send <-chan ServerMessage, cancel context.CancelFunc) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-send:
			if err := conn.WriteJSON(msg); err != nil {
				c.App.Logger.Debug("Failed to write WebSocket message", zap.Error(err))
				cancel()
				return
			}
		}
	}
}

func (c *Controller) readClientMessages(ctx context.Context, conn *websocket.Conn, cancel context.CancelFunc, subs *clientSubscriptions, send chan<- ServerMessage) {
	resetDeadline := func() error {
		return conn.SetReadDeadline(time.Now().Add(readDeadline))
	}
	if err := resetDeadline(); err != nil {
		cancel()
		return
	}
	conn.SetPongHandler(func(string) error { return resetDeadline() })

	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.App.Logger.Warn("WebSocket read error", zap.Error(err))
			}
			cancel()
			return
		}
		if err := resetDeadline(); err != nil {
			cancel()
			return
		}

		var reply ServerMessage
		switch {
		case msg.Chain == "" && (msg.Action == "subscribe" || msg.Action == "unsubscribe"):
			reply = ServerMessage{Type: "error", Payload: map[string]string{"message": "chain is required"}}
		case msg.Action == "subscribe":
			subs.subscribe(msg.Chain)
			c.App.Logger.Debug("Client subscribed", zap.String("chain", msg.Chain))
			reply = ServerMessage{Type: "subscribed", Payload: map[string]string{"chain": msg.Chain}}
		case msg.Action == "unsubscribe":
			subs.unsubscribe(msg.Chain)
			reply = ServerMessage{Type: "unsubscribed", Payload: map[string]string{"chain": msg.Chain}}
		default:
			reply = ServerMessage{Type: "error", Payload: map[string]string{"message": "unknown action: " + msg.Action}}
		}
		if !trySend(ctx, send, reply) {
			return
		}
	}
}
