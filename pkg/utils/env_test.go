package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvHelpers(t *testing.T) {
	t.Setenv("EXPLORER_TEST_INT", "42")
	t.Setenv("EXPLORER_TEST_BAD_INT", "abc")
	t.Setenv("EXPLORER_TEST_DURATION", "1500ms")
	t.Setenv("EXPLORER_TEST_BOOL", "true")
	t.Setenv("EXPLORER_TEST_LIST", " https://a.example/ , ,https://b.example")

	assert.Equal(t, "fallback", Env("EXPLORER_TEST_MISSING", "fallback"))
	assert.Equal(t, 42, EnvInt("EXPLORER_TEST_INT", 1))
	assert.Equal(t, 1, EnvInt("EXPLORER_TEST_BAD_INT", 1))
	assert.Equal(t, 1500*time.Millisecond, EnvDuration("EXPLORER_TEST_DURATION", time.Second))
	assert.True(t, EnvBool("EXPLORER_TEST_BOOL", false))
	assert.False(t, EnvBool("EXPLORER_TEST_MISSING", false))
	assert.Equal(t, []string{"https://a.example/", "https://b.example"}, EnvList("EXPLORER_TEST_LIST", nil))
	assert.Equal(t, []string{"x"}, EnvList("EXPLORER_TEST_MISSING", []string{"x"}))
}

func TestDedup(t *testing.T) {
	got := Dedup([]string{"https://a.example/", "https://a.example", "", "https://b.example"})
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, got)
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", FirstNonEmpty("", "  ", "b", "c"))
	assert.Equal(t, "", FirstNonEmpty())
}
