package controller

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/kripto-transakcije/explorer/pkg/search"
	"go.uber.org/zap"
)

// HandleSearch classifies the query and redirects to the matching page.
// A blank query sends the user back where they came from.
func (c *Controller) HandleSearch(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	query, scope := qs.Get("upit"), qs.Get("tip")

	target, err := search.Route(query, scope)
	if errors.Is(err, search.ErrEmptyQuery) {
		http.Redirect(w, r, backTo(r), http.StatusSeeOther)
		return
	}
	if err != nil {
		c.App.Logger.Debug("Search route failed", zap.String("query", query), zap.Error(err))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	c.App.Logger.Debug("Search routed", zap.String("query", query), zap.String("scope", scope), zap.String("target", target))
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// backTo returns the local path of the referring page, or "/". Paths that a
// browser could read as protocol-relative are rejected.
func backTo(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || (ref.Host != "" && ref.Host != r.Host) {
		return "/"
	}
	back := ref.Path
	if !strings.HasPrefix(back, "/") || strings.HasPrefix(back, "//") || strings.ContainsRune(back, '\\') {
		return "/"
	}
	if ref.RawQuery != "" {
		back += "?" + ref.RawQuery
	}
	return back
}
