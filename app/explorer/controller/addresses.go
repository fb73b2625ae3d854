package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kripto-transakcije/explorer/pkg/chaindata"
	"github.com/kripto-transakcije/explorer/pkg/search"
)

func (c *Controller) HandleAddresses(w http.ResponseWriter, r *http.Request) {
	c.render(w, http.StatusOK, "addresses", page{
		Title: "Adrese",
		Nav:   "adrese",
		Scope: string(search.KindAddress),
	})
}

type addressData struct {
	Address  string
	Overview chaindata.AddressOverview
}

func (c *Controller) HandleAddress(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["adresa"]
	if !search.IsAddress(address) {
		c.notFound(w, "Adresa nije pronađena", address)
		return
	}

	cfg := c.App.Config
	overview := c.App.Reader.AddressOverview(r.Context(), address, cfg.AddressTxsPageSize, cfg.AddressStatsWindow)
	if !overview.Found() {
		c.notFound(w, "Adresa nije pronađena", address)
		return
	}

	c.render(w, http.StatusOK, "address", page{
		Title: "Adresa " + address,
		Nav:   "adrese",
		Data:  addressData{Address: address, Overview: overview},
	})
}
