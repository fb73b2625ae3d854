package controller

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/kripto-transakcije/explorer/pkg/models"
	"github.com/kripto-transakcije/explorer/pkg/search"
)

type tokensData struct {
	Query  string
	Tokens []models.Token
}

// HandleTokens lists catalog tokens matching ?pretraga=. An unknown contract
// address is looked up on chain.
func (c *Controller) HandleTokens(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("pretraga"))
	tokens := c.App.Catalog.SearchTokens(query)
	if len(tokens) == 0 && search.IsAddress(query) {
		if tok := c.App.Reader.TokenMetadata(r.Context(), query); tok != nil {
			tokens = append(tokens, *tok)
		}
	}

	c.render(w, http.StatusOK, "tokens", page{
		Title: "Tokeni",
		Nav:   "tokeni",
		Query: query,
		Scope: string(search.KindToken),
		Data:  tokensData{Query: query, Tokens: tokens},
	})
}

func (c *Controller) HandleTokenRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, search.TokenSearchPath(mux.Vars(r)["upit"]), http.StatusFound)
}
