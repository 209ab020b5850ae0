package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvFallbacks(t *testing.T) {
	assert.Equal(t, "fallback", GetEnv("FABQUOTE_TEST_UNSET", "fallback"))
	assert.Equal(t, 7, GetEnvInt("FABQUOTE_TEST_UNSET", 7))
	assert.Equal(t, 1.5, GetEnvFloat("FABQUOTE_TEST_UNSET", 1.5))

	t.Setenv("FABQUOTE_TEST_INT", "not a number")
	assert.Equal(t, 7, GetEnvInt("FABQUOTE_TEST_INT", 7))
}

func TestSeededPricesPath(t *testing.T) {
	assert.Equal(t, "seeded_prices.json", SeededPricesPath())

	t.Setenv("SEEDED_PRICES_PATH", "/etc/fabquote/prices.json")
	assert.Equal(t, "/etc/fabquote/prices.json", SeededPricesPath())
}
