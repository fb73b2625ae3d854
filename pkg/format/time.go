package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Location is the zone used for absolute dates.
var Location = time.Local

const dateTimeLayout = "02. 01. 2006. 15:04:05"

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.000 UTC",
	"2006-01-02 15:04:05 UTC",
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp accepts RFC 3339, Dune's "2006-01-02 15:04:05.000 UTC", dates,
// and unix seconds or milliseconds.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n > 1e12 {
			return time.UnixMilli(n).UTC(), true
		}
		return time.Unix(n, 0).UTC(), true
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// DateTime renders t as an hr-HR date and time.
func DateTime(t time.Time) string {
	if t.IsZero() {
		return NotAvailable
	}
	return t.In(Location).Format(dateTimeLayout)
}

// ShortDate renders "D.M." as used on chart axes.
func ShortDate(t time.Time) string {
	t = t.In(Location)
	return fmt.Sprintf("%d.%d.", t.Day(), int(t.Month()))
}

// Age is a compact elapsed time ("12 sek", "5 min", "3 h", "2 d").
func Age(t, now time.Time) string {
	if t.IsZero() {
		return "Nepoznato"
	}
	secs := int64(now.Sub(t).Seconds())
	if secs < 0 {
		secs = 0
	}
	switch {
	case secs < 60:
		return fmt.Sprintf("%d sek", secs)
	case secs < 3600:
		return fmt.Sprintf("%d min", secs/60)
	case secs < 86400:
		return fmt.Sprintf("%d h", secs/3600)
	default:
		return fmt.Sprintf("%d d", secs/86400)
	}
}

type unitForms struct{ one, few, many string }

var (
	minuteForms = unitForms{"minutu", "minute", "minuta"}
	hourForms   = unitForms{"sat", "sata", "sati"}
	dayForms    = unitForms{"dan", "dana", "dana"}
	monthForms  = unitForms{"mjesec", "mjeseca", "mjeseci"}
	yearForms   = unitForms{"godinu", "godine", "godina"}
)

// pick applies Croatian plural rules.
func (u unitForms) pick(n int64) string {
	mod10, mod100 := n%10, n%100
	switch {
	case mod10 == 1 && mod100 != 11:
		return u.one
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
		return u.few
	default:
		return u.many
	}
}

func atLeastOne(x float64) int64 {
	n := int64(math.Round(x))
	if n < 1 {
		return 1
	}
	return n
}

// RelativeTime renders the distance between t and now in Croatian,
// "prije 5 minuta" for the past and "za 2 minute" for the future.
func RelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return NotAvailable
	}
	d := now.Sub(t)
	prefix := "prije"
	if d < 0 {
		prefix = "za"
		d = -d
	}

	var n int64
	var forms unitForms
	days := d.Hours() / 24
	switch {
	case d < 45*time.Second:
		return prefix + " manje od minute"
	case d < 45*time.Minute:
		n, forms = atLeastOne(d.Minutes()), minuteForms
	case d < 22*time.Hour:
		n, forms = atLeastOne(d.Hours()), hourForms
	case days < 26:
		n, forms = atLeastOne(days), dayForms
	case days < 320:
		n, forms = atLeastOne(days/30), monthForms
	default:
		n, forms = atLeastOne(days/365), yearForms
	}
	return fmt.Sprintf("%s %d %s", prefix, n, forms.pick(n))
}
