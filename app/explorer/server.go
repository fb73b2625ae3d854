package explorer

import (
	"net/http"
	"time"

	"github.com/kripto-transakcije/explorer/app/explorer/controller"
	"github.com/kripto-transakcije/explorer/app/explorer/types"
	"github.com/kripto-transakcije/explorer/pkg/utils"
	"go.uber.org/zap"
)

// NewServer builds the router and the HTTP server of the explorer.
func NewServer(app *types.App) error {
	ctler := controller.NewController(app)
	router, err := ctler.NewRouter()
	if err != nil {
		return err
	}

	// use <ip>:<port> to bind to a specific interface or :<port> to bind to all interfaces
	addr := utils.Env("ADDR", ":3000")

	app.Server = &http.Server{
		Addr:              addr,
		Handler:           controller.WithCORS(router),
		ReadHeaderTimeout: 10 * time.Second,
	}
	app.Logger.Info("Starting server", zap.String("addr", addr))

	return nil
}
