package format

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	gethmath "github.com/ethereum/go-ethereum/common/math"
)

const (
	EtherDecimals = 18
	GweiDecimals  = 9

	// EtherPrecision is the number of decimals shown for ETH values.
	EtherPrecision = 6
	// FeePrecision is the number of decimals shown for transaction fees.
	FeePrecision = 8
	// TokenPrecision is the number of decimals shown for token balances.
	TokenPrecision = 4
)

// ParseAmount reads a provider amount: decimal, 0x-hex, or float notation.
func ParseAmount(s string) (*big.Float, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	if i, ok := gethmath.ParseBig256(s); ok {
		return new(big.Float).SetInt(i), true
	}
	f, ok := new(big.Float).SetString(s)
	if !ok {
		return nil, false
	}
	return f, true
}

// ParseUint reads a decimal or 0x-hex integer, returning 0 when it does not
// parse or does not fit in 64 bits.
func ParseUint(s string) uint64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if v, ok := gethmath.ParseUint64(s); ok {
		return v
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 && f < math.MaxUint64 {
		return uint64(f)
	}
	return 0
}

func scale(amount *big.Float, decimals int) *big.Float {
	if decimals <= 0 {
		return amount
	}
	div := new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
	return new(big.Float).Quo(amount, div)
}

// Units shifts amount by decimals and prints it with precision digits.
// Unparseable input prints as zero.
func Units(amount string, decimals, precision int) string {
	f, ok := ParseAmount(amount)
	if !ok {
		f = new(big.Float)
	}
	return scale(f, decimals).Text('f', precision)
}

// UnitsFloat is Units as a float64 for arithmetic.
func UnitsFloat(amount string, decimals int) float64 {
	f, ok := ParseAmount(amount)
	if !ok {
		return 0
	}
	out, _ := scale(f, decimals).Float64()
	return out
}

// Ether renders a wei amount in ETH.
func Ether(wei string) string {
	return Units(wei, EtherDecimals, EtherPrecision)
}

func EtherFloat(wei string) float64 {
	return UnitsFloat(wei, EtherDecimals)
}

// Gwei renders a wei amount in Gwei with two decimals.
func Gwei(wei string) string {
	return Units(wei, GweiDecimals, 2)
}

func GweiFloat(wei string) float64 {
	return UnitsFloat(wei, GweiDecimals)
}

// Fee is gas*gasPrice in ETH.
func Fee(gas, gasPrice string) string {
	return strconv.FormatFloat(FeeFloat(gas, gasPrice), 'f', FeePrecision, 64)
}

func FeeFloat(gas, gasPrice string) float64 {
	g, ok := ParseAmount(gas)
	if !ok {
		return 0
	}
	p, ok := ParseAmount(gasPrice)
	if !ok {
		return 0
	}
	out, _ := scale(new(big.Float).Mul(g, p), EtherDecimals).Float64()
	return out
}

// TokenAmount renders an ERC-20 balance using the token's decimals.
func TokenAmount(balance string, decimals int) string {
	return Units(balance, decimals, TokenPrecision)
}
