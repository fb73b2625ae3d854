package format

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmounts(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"one ether", Ether("1000000000000000000"), "1.000000"},
		{"fraction", Ether("1234567000000000"), "0.001235"},
		{"hex wei", Ether("0xde0b6b3a7640000"), "1.000000"},
		{"garbage", Ether("n/a"), "0.000000"},
		{"empty", Ether(""), "0.000000"},
		{"gwei", Gwei("20000000000"), "20.00"},
		{"gwei fraction", Gwei("1234567890"), "1.23"},
		{"fee", Fee("21000", "20000000000"), "0.00042000"},
		{"fee missing", Fee("", "20000000000"), "0.00000000"},
		{"token", TokenAmount("1500000", 6), "1.5000"},
		{"token no decimals", TokenAmount("42", 0), "42.0000"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got)
		})
	}

	assert.InDelta(t, 2.5, EtherFloat("2500000000000000000"), 1e-9)
	assert.InDelta(t, 25.0, GweiFloat("25000000000"), 1e-9)
	assert.Equal(t, uint64(22417536), ParseUint("22417536"))
	assert.Equal(t, uint64(255), ParseUint("0xff"))
	assert.Equal(t, uint64(0), ParseUint("nope"))
}

func TestShortHashAndAddress(t *testing.T) {
	assert.Equal(t, "0x88df...5cb1", ShortHash("0x88df016429689c079f3b2f6ad39fa052532c56795b733da78a91ebe6a7135cb1"))
	assert.Equal(t, "0x1234", ShortHash("0x1234"))

	addr := "0xdac17f958d2ee523a2206206994597c13d831ec7"
	assert.True(t, IsAddress(addr))
	assert.False(t, IsAddress("0x123"))
	assert.Equal(t, "0xdAC17F958D2ee523a2206206994597C13D831ec7", Checksum(addr))
	assert.Equal(t, "nope", Checksum("nope"))
}

func TestNumbers(t *testing.T) {
	assert.Equal(t, "0", Thousands(0))
	assert.Equal(t, "999", Thousands(999))
	assert.Equal(t, "1.000", Thousands(1000))
	assert.Equal(t, "22.417.536", Thousands(22417536))
	assert.Equal(t, "1.234,57", Decimal(1234.567, 2))
	assert.Equal(t, "-0,50", Decimal(-0.5, 2))
	assert.Equal(t, "$1805.97", USD(1805.97))
	assert.Equal(t, "512 B", Size(512))
	assert.Equal(t, "1.50 KB", Size(1536))
	assert.Equal(t, "2.00 MB", Size(2*1024*1024))
}

func TestParseUint(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"", 0},
		{" 42 ", 42},
		{"0x10", 16},
		{"1.9e3", 1900},
		{"-5", 0},
		{"abc", 0},
		{"1e30", 0},
		{"+Inf", 0},
		{"NaN", 0},
		{"18446744073709551615", math.MaxUint64},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseUint(tt.in))
		})
	}
}

func TestSparkline(t *testing.T) {
	assert.Equal(t, "", Sparkline(nil, 100, 40))
	assert.Equal(t, "0.0,20.0", Sparkline([]float64{5}, 100, 40))
	assert.Equal(t, "0.0,40.0 50.0,0.0 100.0,20.0", Sparkline([]float64{1, 3, 2}, 100, 40))
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2025, 4, 29, 9, 30, 0, 0, time.UTC)
	for _, in := range []string{
		"2025-04-29T09:30:00.000Z",
		"2025-04-29 09:30:00.000 UTC",
		"2025-04-29 09:30:00",
		"1745919000",
		"1745919000000",
	} {
		got, ok := ParseTimestamp(in)
		require.True(t, ok, in)
		assert.True(t, want.Equal(got), in)
	}
	_, ok := ParseTimestamp("yesterday")
	assert.False(t, ok)
}

func TestDateTime(t *testing.T) {
	prev := Location
	Location = time.UTC
	t.Cleanup(func() { Location = prev })

	ts := time.Date(2025, 4, 9, 7, 5, 3, 0, time.UTC)
	assert.Equal(t, "09. 04. 2025. 07:05:03", DateTime(ts))
	assert.Equal(t, "9.4.", ShortDate(ts))
	assert.Equal(t, NotAvailable, DateTime(time.Time{}))
}

func TestAge(t *testing.T) {
	now := time.Date(2025, 4, 29, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "Nepoznato", Age(time.Time{}, now))
	assert.Equal(t, "12 sek", Age(now.Add(-12*time.Second), now))
	assert.Equal(t, "5 min", Age(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3 h", Age(now.Add(-3*time.Hour), now))
	assert.Equal(t, "2 d", Age(now.Add(-49*time.Hour), now))
	assert.Equal(t, "0 sek", Age(now.Add(time.Minute), now))
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2025, 4, 29, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{10 * time.Second, "prije manje od minute"},
		{time.Minute, "prije 1 minutu"},
		{3 * time.Minute, "prije 3 minute"},
		{5 * time.Minute, "prije 5 minuta"},
		{12 * time.Minute, "prije 12 minuta"},
		{21 * time.Minute, "prije 21 minutu"},
		{2 * time.Hour, "prije 2 sata"},
		{5 * time.Hour, "prije 5 sati"},
		{24 * time.Hour, "prije 1 dan"},
		{3 * 24 * time.Hour, "prije 3 dana"},
		{60 * 24 * time.Hour, "prije 2 mjeseca"},
		{400 * 24 * time.Hour, "prije 1 godinu"},
		{-2 * time.Minute, "za 2 minute"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, RelativeTime(now.Add(-tc.ago), now))
		})
	}
	assert.Equal(t, NotAvailable, RelativeTime(time.Time{}, now))
}
