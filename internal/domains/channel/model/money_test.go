package model_test

import (
	"encoding/json"
	"testing"

	"staysync/internal/domains/channel/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "0.00", model.Money(0).String())
	assert.Equal(t, "1.05", model.Money(105).String())
	assert.Equal(t, "-12.50", model.Money(-1250).String())
}

func TestMoneyUnmarshal(t *testing.T) {
	tests := map[string]model.Money{
		`"120.50"`: 12050,
		`"120.5"`:  12050,
		`"120"`:    12000,
		`99.999`:   9999,
		`null`:     0,
		`"-3.10"`:  -310,
	}

	for raw, want := range tests {
		var got model.Money

		require.NoError(t, json.Unmarshal([]byte(raw), &got), raw)
		assert.Equal(t, want, got, raw)
	}

	var bad model.Money
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &bad))
}

func TestBookingPageHasNext(t *testing.T) {
	assert.True(t, model.BookingPage{Page: 1, Limit: 2, Total: 3}.HasNext())
	assert.False(t, model.BookingPage{Page: 2, Limit: 2, Total: 3}.HasNext())
	assert.False(t, model.BookingPage{Page: 1, Limit: 0, Total: 3}.HasNext())
}
