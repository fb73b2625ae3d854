package controller

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/kripto-transakcije/explorer/pkg/format"
	"github.com/kripto-transakcije/explorer/pkg/models"
	"github.com/kripto-transakcije/explorer/pkg/search"
	"go.uber.org/zap"
)

//go:embed templates
var templateFS embed.FS

const siteTitle = "Kripto Transakcije | Hrvatski blockchain explorer"

// page is the data every template receives.
type page struct {
	Title  string
	Nav    string
	Query  string
	Scope  string
	Scopes []search.Scope
	Data   any
}

type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	files, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}
	r := &renderer{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".html")
		tmpl, err := template.New("layout.html").
			Funcs(templateFuncs()).
			ParseFS(templateFS, "templates/layout.html", "templates/partials.html", file)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// render executes a page into a buffer first so a template error never
// leaves a half-written response.
func (c *Controller) render(w http.ResponseWriter, status int, name string, p page) {
	tmpl, ok := c.pages.pages[name]
	if !ok {
		c.App.Logger.Error("Unknown template", zap.String("template", name))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if p.Title == "" {
		p.Title = siteTitle
	} else {
		p.Title = p.Title + " | Kripto Transakcije"
	}
	if p.Scopes == nil {
		p.Scopes = search.Scopes
	}
	if p.Scope == "" {
		p.Scope = search.ScopeAll
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		c.App.Logger.Error("Failed to render template", zap.String("template", name), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"ether":       format.Ether,
		"gwei":        format.Gwei,
		"fee":         txFee,
		"short":       format.ShortHash,
		"checksum":    format.Checksum,
		"thousands":   thousands,
		"decimal":     format.Decimal,
		"usd":         format.USD,
		"datetime":    format.DateTime,
		"age":         func(t time.Time) string { return format.Age(t, time.Now()) },
		"ago":         func(t time.Time) string { return format.RelativeTime(t, time.Now()) },
		"size":        format.Size,
		"tokenAmount": format.TokenAmount,
		"sparkline":   sparkline,
		"txStatus":    txStatus,
		"na":          func() string { return format.NotAvailable },
	}
}

func thousands(v any) string {
	switch n := v.(type) {
	case uint64:
		return format.Thousands(n)
	case int:
		if n < 0 {
			return "-" + format.Thousands(uint64(-n))
		}
		return format.Thousands(uint64(n))
	case string:
		return format.Thousands(format.ParseUint(n))
	}
	return format.NotAvailable
}

func txFee(tx models.Transaction) string {
	gas := tx.GasUsed
	if gas == "" {
		gas = tx.Gas
	}
	return format.Fee(gas, tx.GasPrice)
}

type badge struct {
	Label string
	Class string
}

func txStatus(tx models.Transaction) badge {
	switch tx.Status {
	case models.TxStatusSuccess:
		return badge{Label: "Uspješno", Class: "ok"}
	case models.TxStatusFailed:
		return badge{Label: "Neuspješno", Class: "fail"}
	}
	return badge{Label: "Na čekanju", Class: "pending"}
}

func sparkline(points []models.PricePoint) string {
	values := make([]float64, 0, len(points))
	for _, p := range points {
		values = append(values, p.Price)
	}
	return format.Sparkline(values, 600, 120)
}
