package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// NotAvailable is shown wherever a provider returned nothing.
const NotAvailable = "Nije dostupno"

// ShortHash keeps the first 6 and last 4 characters of a hash or address.
func ShortHash(h string) string {
	if len(h) <= 10 {
		return h
	}
	return h[:6] + "..." + h[len(h)-4:]
}

// IsAddress reports whether s is a 20 byte hex address.
func IsAddress(s string) bool {
	return common.IsHexAddress(s)
}

// Checksum returns the EIP-55 form of a valid address and s unchanged otherwise.
func Checksum(s string) string {
	if !common.IsHexAddress(s) {
		return s
	}
	return common.HexToAddress(s).Hex()
}

// Thousands groups digits with dots, hr-HR style.
func Thousands(n uint64) string {
	s := strconv.FormatUint(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// Decimal prints x with prec decimals using hr-HR separators ("1.234,56").
func Decimal(x float64, prec int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return NotAvailable
	}
	neg := x < 0
	if neg {
		x = -x
	}
	raw := strconv.FormatFloat(x, 'f', prec, 64)
	intPart, frac, _ := strings.Cut(raw, ".")
	n, _ := strconv.ParseUint(intPart, 10, 64)
	out := Thousands(n)
	if frac != "" {
		out += "," + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

// USD renders a dollar price the way the status widget shows it.
func USD(x float64) string {
	return fmt.Sprintf("$%.2f", x)
}

// Size renders a byte count with binary units.
func Size(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	units := []string{"KB", "MB", "GB"}
	v := float64(bytes) / unit
	i := 0
	for v >= unit && i < len(units)-1 {
		v /= unit
		i++
	}
	return fmt.Sprintf("%.2f %s", v, units[i])
}

// Sparkline scales values into SVG polyline points inside a w x h box.
func Sparkline(values []float64, w, h float64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	step := 0.0
	if len(values) > 1 {
		step = w / float64(len(values)-1)
	}
	points := make([]string, 0, len(values))
	for i, v := range values {
		y := h / 2
		if hi > lo {
			y = h - (v-lo)/(hi-lo)*h
		}
		points = append(points, fmt.Sprintf("%.1f,%.1f", float64(i)*step, y))
	}
	return strings.Join(points, " ")
}
