// Package search classifies free-text explorer queries and maps them to page routes.
package search

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

// Kind is what a query looks like.
type Kind string

const (
	KindTransaction Kind = "transakcije"
	KindAddress     Kind = "adrese"
	KindBlock       Kind = "blokovi"
	KindToken       Kind = "tokeni"
)

// ScopeAll lets the classifier pick the kind.
const ScopeAll = "sve"

// ErrEmptyQuery is returned for blank input; callers treat it as a no-op.
var ErrEmptyQuery = errors.New("empty search query")

var (
	txHashRe  = regexp.MustCompile(`^0x[a-fA-F0-9]{64}$`)
	addressRe = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
	blockRe   = regexp.MustCompile(`^\d+$`)

	btcAddressRe = regexp.MustCompile(`^(1|3|bc1)[a-zA-Z0-9]{25,42}$`)
)

// Scope is one entry of the search form's type selector.
type Scope struct {
	Value string
	Label string
}

// Scopes lists the selector options in display order.
var Scopes = []Scope{
	{Value: ScopeAll, Label: "Sve"},
	{Value: string(KindAddress), Label: "Adrese"},
	{Value: string(KindTransaction), Label: "Transakcije"},
	{Value: string(KindBlock), Label: "Blokovi"},
	{Value: string(KindToken), Label: "Tokeni"},
}

// IsTxHash reports whether q is a 32 byte hex hash.
func IsTxHash(q string) bool { return txHashRe.MatchString(q) }

// IsAddress reports whether q is a 20 byte hex address.
func IsAddress(q string) bool { return addressRe.MatchString(q) }

// IsBitcoinAddress reports whether q looks like a legacy, P2SH, or bech32
// Bitcoin address.
func IsBitcoinAddress(q string) bool { return btcAddressRe.MatchString(q) }

// BitcoinAddressPath is the Bitcoin address page for q.
func BitcoinAddressPath(q string) string { return "/bitcoin/adrese/" + url.PathEscape(q) }

// IsBlockNumber reports whether q is all digits.
func IsBlockNumber(q string) bool { return blockRe.MatchString(q) }

// Classify guesses the kind of a trimmed query. Anything that is not a hash,
// address, or block number is treated as a token search.
func Classify(query string) Kind {
	q := strings.TrimSpace(query)
	switch {
	case IsTxHash(q):
		return KindTransaction
	case IsAddress(q):
		return KindAddress
	case IsBlockNumber(q):
		return KindBlock
	default:
		return KindToken
	}
}

// ParseScope maps a form value to a kind; ok is false for "sve" and unknown values.
func ParseScope(scope string) (Kind, bool) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(scope))); k {
	case KindTransaction, KindAddress, KindBlock, KindToken:
		return k, true
	default:
		return "", false
	}
}

// Route returns the page path for query within scope.
func Route(query, scope string) (string, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return "", ErrEmptyQuery
	}
	kind, ok := ParseScope(scope)
	if !ok {
		kind = Classify(q)
	}
	return PathFor(kind, q), nil
}

// PathFor builds the route for an already classified query.
func PathFor(kind Kind, q string) string {
	if kind == KindToken {
		return TokenSearchPath(q)
	}
	return "/" + string(kind) + "/" + url.PathEscape(q)
}

// TokenSearchPath is the token list filtered by q.
func TokenSearchPath(q string) string {
	if q == "" {
		return "/" + string(KindToken)
	}
	return "/" + string(KindToken) + "?" + url.Values{"pretraga": []string{q}}.Encode()
}
