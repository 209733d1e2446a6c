package bitvavo

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitvavo/pkg/core"
)

func decimal(t *testing.T, s string) *apd.Decimal {
	t.Helper()
	d, _, err := apd.NewFromString(s)
	require.NoError(t, err)
	return d
}

func captureBodyServer(t *testing.T, body *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		*body = string(data)
		w.Write([]byte(`{}`))
	}))
}

func TestCreateOrder_NilOptions(t *testing.T) {
	var body string
	server := captureBodyServer(t, &body)
	defer server.Close()

	client := newTestClient(t, server.URL, &testCreds)

	_, err := client.CreateOrder(context.Background(),
		core.NewPair("BTC", "EUR"), core.SideSell, core.TypeMarket, nil)
	require.NoError(t, err)

	assert.Equal(t, `{"market":"BTC-EUR","side":"SELL","orderType":"MARKET"}`, body)
}

func TestCreateOrder_FullOptionsFieldOrder(t *testing.T) {
	var body string
	server := captureBodyServer(t, &body)
	defer server.Close()

	client := newTestClient(t, server.URL, &testCreds)

	tif := core.GTC
	stp := core.CancelOldest
	postOnly := true
	noProtection := false
	full := true

	_, err := client.CreateOrder(context.Background(),
		core.NewPair("BTC", "EUR"), core.SideBuy, core.TypeLimit,
		&OrderOptions{
			Amount:                  decimal(t, "0.5"),
			Price:                   decimal(t, "30000"),
			TimeInForce:             &tif,
			SelfTradePrevention:     &stp,
			PostOnly:                &postOnly,
			DisableMarketProtection: &noProtection,
			FullResponse:            &full,
		})
	require.NoError(t, err)

	assert.Equal(t,
		`{"market":"BTC-EUR","side":"BUY","orderType":"LIMIT","amount":"0.5","price":"30000",`+
			`"postOnly":"true","disableMarketProtection":"false","responseRequired":"true",`+
			`"timeInForce":"GTC","selfTradePrevention":"cancelOldest"}`,
		body)
}

func TestCreateOrder_SelfTradePreventionIndependentOfTimeInForce(t *testing.T) {
	var body string
	server := captureBodyServer(t, &body)
	defer server.Close()

	client := newTestClient(t, server.URL, &testCreds)

	// selfTradePrevention must be sent even when no time-in-force is set.
	stp := core.CancelBoth
	_, err := client.CreateOrder(context.Background(),
		core.NewPair("ETH", "BTC"), core.SideBuy, core.TypeMarket,
		&OrderOptions{
			AmountQuote:         decimal(t, "10"),
			SelfTradePrevention: &stp,
		})
	require.NoError(t, err)

	assert.Contains(t, body, `"selfTradePrevention":"cancelBoth"`)
	assert.NotContains(t, body, "timeInForce")
}

func TestCreateOrder_TimeInForceWithoutSelfTradePrevention(t *testing.T) {
	var body string
	server := captureBodyServer(t, &body)
	defer server.Close()

	client := newTestClient(t, server.URL, &testCreds)

	tif := core.FOK
	_, err := client.CreateOrder(context.Background(),
		core.NewPair("ETH", "BTC"), core.SideSell, core.TypeLimit,
		&OrderOptions{
			Amount:      decimal(t, "1"),
			Price:       decimal(t, "0.05"),
			TimeInForce: &tif,
		})
	require.NoError(t, err)

	assert.Contains(t, body, `"timeInForce":"FOK"`)
	assert.NotContains(t, body, "selfTradePrevention")
}

func TestUpdateOrder_Body(t *testing.T) {
	var body string
	server := captureBodyServer(t, &body)
	defer server.Close()

	client := newTestClient(t, server.URL, &testCreds)

	_, err := client.UpdateOrder(context.Background(),
		core.NewPair("BTC", "EUR"), "abc-123",
		&OrderOptions{Price: decimal(t, "31000")})
	require.NoError(t, err)

	assert.Equal(t, `{"market":"BTC-EUR","orderId":"abc-123","price":"31000"}`, body)
}

func TestWithdraw_Body(t *testing.T) {
	var body string
	server := captureBodyServer(t, &body)
	defer server.Close()

	client := newTestClient(t, server.URL, &testCreds)

	internal := false
	_, err := client.Withdraw(context.Background(), "BTC", decimal(t, "0.25"), "bc1qaddress",
		&WithdrawOptions{Internal: &internal})
	require.NoError(t, err)

	assert.Equal(t, `{"symbol":"BTC","amount":"0.25","address":"bc1qaddress","internal":"false"}`, body)
}
