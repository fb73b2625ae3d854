package controller

import (
	"context"
	"net/http"

	"github.com/kripto-transakcije/explorer/pkg/catalog"
	"github.com/kripto-transakcije/explorer/pkg/models"
)

type homeData struct {
	Chains []catalog.Chain
	Tokens []models.Token
	Status models.NetworkStatus
}

func (c *Controller) HandleHome(w http.ResponseWriter, r *http.Request) {
	c.render(w, http.StatusOK, "home", page{
		Nav: "pocetna",
		Data: homeData{
			Chains: c.App.Catalog.Chains,
			Tokens: c.App.Catalog.Tokens,
			Status: c.networkStatus(r.Context()),
		},
	})
}

// HandleNotFound renders the generic placeholder for unknown routes.
func (c *Controller) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	c.notFound(w, "Stranica nije pronađena", r.URL.Path)
}

type notFoundData struct {
	Message string
	Subject string
}

func (c *Controller) notFound(w http.ResponseWriter, message, subject string) {
	c.render(w, http.StatusNotFound, "notfound", page{
		Title: message,
		Data:  notFoundData{Message: message, Subject: subject},
	})
}

// networkStatus prefers the poller's last snapshot over a fresh read.
func (c *Controller) networkStatus(ctx context.Context) models.NetworkStatus {
	if c.App.Poller != nil {
		if status, ok := c.App.Poller.Latest(c.App.Reader.Chain()); ok {
			return status
		}
	}
	return c.App.Reader.NetworkStatus(ctx)
}
