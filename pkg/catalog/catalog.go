// Package catalog holds the static lists rendered by the explorer: supported
// networks and popular ERC-20 tokens.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/kripto-transakcije/explorer/pkg/models"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Chain is one network tile on the home page.
type Chain struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Symbol     string `yaml:"symbol"`
	Color      string `yaml:"color"`
	Route      string `yaml:"route"`
	Explorable bool   `yaml:"explorable"`
}

// Catalog is the parsed catalog file.
type Catalog struct {
	Chains []Chain        `yaml:"chains"`
	Tokens []models.Token `yaml:"tokens"`
}

// Load parses a catalog document.
func Load(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for i, ch := range c.Chains {
		if ch.ID == "" || ch.Name == "" {
			return nil, fmt.Errorf("chain %d: id and name are required", i)
		}
		if ch.Explorable && ch.Route == "" {
			return nil, fmt.Errorf("chain %s: explorable chains need a route", ch.ID)
		}
	}
	for i, tok := range c.Tokens {
		if tok.Symbol == "" || tok.ContractAddress == "" {
			return nil, fmt.Errorf("token %d: symbol and contract are required", i)
		}
	}
	return &c, nil
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Load(defaultCatalog)
	if err != nil {
		panic(err)
	}
	return c
}

// SearchTokens returns tokens whose name, symbol, or contract contains q,
// ignoring case. A blank q returns every token.
func (c *Catalog) SearchTokens(q string) []models.Token {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return append([]models.Token(nil), c.Tokens...)
	}
	out := make([]models.Token, 0, len(c.Tokens))
	for _, tok := range c.Tokens {
		if strings.Contains(strings.ToLower(tok.Name), q) ||
			strings.Contains(strings.ToLower(tok.Symbol), q) ||
			strings.Contains(strings.ToLower(tok.ContractAddress), q) {
			out = append(out, tok)
		}
	}
	return out
}

// TokenByContract finds a catalog token by contract address.
func (c *Catalog) TokenByContract(addr string) (models.Token, bool) {
	for _, tok := range c.Tokens {
		if strings.EqualFold(tok.ContractAddress, addr) {
			return tok, true
		}
	}
	return models.Token{}, false
}
