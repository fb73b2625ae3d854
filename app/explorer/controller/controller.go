package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kripto-transakcije/explorer/app/explorer/types"
)

type Controller struct {
	App   *types.App
	pages *renderer
}

// NewController returns a new controller.
func NewController(app *types.App) *Controller {
	return &Controller{
		App: app,
	}
}

// NewRouter returns a new router with all the routes defined in this file.
func (c *Controller) NewRouter() (*mux.Router, error) {
	pages, err := newRenderer()
	if err != nil {
		return nil, err
	}
	c.pages = pages

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(c.HandleNotFound)

	r.Handle("/health", http.HandlerFunc(c.HandleHealth)).Methods("GET")

	r.HandleFunc("/", c.HandleHome).Methods("GET")
	r.HandleFunc("/pretraga", c.HandleSearch).Methods("GET")
	r.HandleFunc("/ethereum", c.HandleEthereum).Methods("GET")

	r.HandleFunc("/blokovi", c.HandleBlocks).Methods("GET")
	r.HandleFunc("/blokovi/{broj}", c.HandleBlock).Methods("GET")
	r.HandleFunc("/transakcije", c.HandleTransactions).Methods("GET")
	r.HandleFunc("/transakcije/{hash}", c.HandleTransaction).Methods("GET")
	r.HandleFunc("/adrese", c.HandleAddresses).Methods("GET")
	r.HandleFunc("/adrese/{adresa}", c.HandleAddress).Methods("GET")
	r.HandleFunc("/tokeni", c.HandleTokens).Methods("GET")
	r.HandleFunc("/tokeni/{upit}", c.HandleTokenRedirect).Methods("GET")

	r.HandleFunc("/bitcoin", c.HandleBitcoin).Methods("GET")
	r.HandleFunc("/bitcoin/pretraga", c.HandleBitcoinSearch).Methods("GET")
	r.HandleFunc("/bitcoin/adrese/{adresa}", c.HandleBitcoinAddress).Methods("GET")

	r.HandleFunc("/api/status", c.HandleStatus).Methods("GET")
	r.HandleFunc("/api/eth", c.HandleEthAPI).Methods("GET")
	r.HandleFunc("/api/btc", c.HandleBtcAPI).Methods("GET")
	r.HandleFunc("/api/ws", c.HandleWebSocket)

	return r, nil
}

// WithCORS allows the JSON API to be read from other origins.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", http.MethodGet+", "+http.MethodOptions)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
