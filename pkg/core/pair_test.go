package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPair_Market(t *testing.T) {
	assert.Equal(t, "ETH-BTC", NewPair("ETH", "BTC").Market())
	assert.Equal(t, "BTC-EUR", NewPair("BTC", "EUR").Market())
}

func TestPair_String(t *testing.T) {
	assert.Equal(t, "ETHBTC", NewPair("ETH", "BTC").String())
}
