package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeOrders_ConcreteScenario(t *testing.T) {
	payload := `[{"id":"o1","userId":"u1","status":"pending","total":10,"currency":"USD","createdAt":"2024-01-01T00:00:00Z","lineItems":[]}]`

	orders, err := decodeOrders([]byte(payload))
	require.NoError(t, err)
	require.Len(t, orders, 1)

	o := orders[0]
	assert.Equal(t, "o1", o.ID)
	assert.Equal(t, "u1", o.UserID)
	assert.Equal(t, OrderPending, o.Status)
	assert.True(t, o.Total.Equal(decimalFromString(t, "10")))
	assert.Equal(t, "USD", o.Currency)
	assert.Equal(t, "2024-01-01T00:00:00Z", o.CreatedAt)
	assert.Empty(t, o.UpdatedAt)
	require.NotNil(t, o.LineItems)
	assert.Len(t, o.LineItems, 0)
}

func TestDecodeOrders_Defaults(t *testing.T) {
	payload := `[{"id":"o2","userId":"u2","status":"fulfilled","total":25.5,"createdAt":"2024-02-01T00:00:00Z"}]`

	orders, err := decodeOrders([]byte(payload))
	require.NoError(t, err)
	require.Len(t, orders, 1)

	assert.Equal(t, "USD", orders[0].Currency, "absent currency takes the default")
	require.NotNil(t, orders[0].LineItems, "absent lineItems defaults to an empty sequence")
	assert.Len(t, orders[0].LineItems, 0)
}

func TestDecodeOrders_LineItems(t *testing.T) {
	payload := `[{
		"id":"o3","userId":"u1","status":"processing","total":199.98,"createdAt":"2024-03-01T00:00:00Z",
		"lineItems":[{"productId":"btc-ledger","name":"Ledger","quantity":2,"price":99.99}]
	}]`

	orders, err := decodeOrders([]byte(payload))
	require.NoError(t, err)
	require.Len(t, orders[0].LineItems, 1)

	item := orders[0].LineItems[0]
	assert.Equal(t, "btc-ledger", item.ProductID)
	assert.Equal(t, 2, item.Quantity)
	assert.True(t, item.Price.Equal(decimalFromString(t, "99.99")))
	assert.Equal(t, "USD", item.Currency)
}

func TestDecodeOrders_RejectsUnknownStatus(t *testing.T) {
	payload := `[{"id":"o1","userId":"u1","status":"shipped","total":10,"createdAt":"2024-01-01T00:00:00Z"}]`

	_, err := decodeOrders([]byte(payload))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Contains(t, verr.Fields[0], "[0].status")
	assert.Contains(t, verr.Fields[0], "shipped")
}

func TestDecodeOrders_CollectsAllViolations(t *testing.T) {
	payload := `[{
		"id":1,"status":"paused","total":"ten","createdAt":"2024-01-01T00:00:00Z",
		"lineItems":[{"productId":"p1","name":"x","quantity":-1,"price":true}]
	}]`

	_, err := decodeOrders([]byte(payload))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	joined := verr.Error()
	assert.Contains(t, joined, "[0].id: expected string")
	assert.Contains(t, joined, "[0].userId: required")
	assert.Contains(t, joined, "[0].status")
	assert.Contains(t, joined, "[0].total: expected number")
	assert.Contains(t, joined, "[0].lineItems[0].quantity: must not be negative")
	assert.Contains(t, joined, "[0].lineItems[0].price: expected number")
}

func TestDecodeOrders_TopLevelMustBeArray(t *testing.T) {
	_, err := decodeOrders([]byte(`{"id":"o1"}`))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"expected array"}, verr.Fields)
}

func TestDecodeProduct_RoundTrip(t *testing.T) {
	payload := `{
		"id":"btc-ledger","name":"Ledger","description":"A wallet","price":189.99,
		"currency":"EUR","status":"active","stock":45,"tags":["security","hardware"],
		"createdAt":"2024-01-01T00:00:00Z","updatedAt":"2024-01-02T00:00:00Z"
	}`

	p, err := decodeProduct([]byte(payload))
	require.NoError(t, err)

	assert.Equal(t, "btc-ledger", p.ID)
	assert.Equal(t, "Ledger", p.Name)
	assert.Equal(t, "A wallet", p.Description)
	assert.True(t, p.Price.Equal(decimalFromString(t, "189.99")))
	assert.Equal(t, "EUR", p.Currency)
	assert.Equal(t, ProductActive, p.Status)
	require.NotNil(t, p.Stock)
	assert.Equal(t, 45, *p.Stock)
	assert.Equal(t, []string{"security", "hardware"}, p.Tags)
	assert.Equal(t, "2024-01-01T00:00:00Z", p.CreatedAt)
	assert.Equal(t, "2024-01-02T00:00:00Z", p.UpdatedAt)
}

func TestDecodeProduct_OptionalsAbsent(t *testing.T) {
	p, err := decodeProduct([]byte(`{"id":"p1","name":"Minimal","price":5}`))
	require.NoError(t, err)

	assert.Equal(t, "", p.Description, "description defaults to empty")
	assert.Equal(t, "USD", p.Currency, "currency defaults to USD")
	assert.Equal(t, ProductStatus(""), p.Status)
	assert.Nil(t, p.Stock)
	assert.Nil(t, p.Tags)
	assert.Empty(t, p.CreatedAt)
	assert.Empty(t, p.UpdatedAt)
}

func TestDecodeProduct_NullIsNotAbsent(t *testing.T) {
	_, err := decodeProduct([]byte(`{"id":"p1","name":null,"price":5,"stock":null}`))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	joined := verr.Error()
	assert.Contains(t, joined, "name: expected string")
	assert.Contains(t, joined, "stock: expected integer")
}

func TestDecodeProduct_RejectsBadStockAndTags(t *testing.T) {
	_, err := decodeProduct([]byte(`{"id":"p1","name":"x","price":5,"stock":1.5,"tags":["ok",2]}`))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	joined := verr.Error()
	assert.Contains(t, joined, "stock: expected integer")
	assert.Contains(t, joined, "tags[1]: expected string")
}

func TestDecodeProducts_ElementPaths(t *testing.T) {
	payload := `[{"id":"p1","name":"ok","price":1},{"id":"p2","price":"free"}]`

	_, err := decodeProducts([]byte(payload))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	joined := verr.Error()
	assert.Contains(t, joined, "[1].name: required")
	assert.Contains(t, joined, "[1].price: expected number")
	assert.NotContains(t, joined, "[0]")
}

func TestDecodeHealth(t *testing.T) {
	payload := `{"status":"ok","version":"1.0.0","dependencies":{"database":"connected","cache":"degraded"}}`

	h, err := decodeHealth([]byte(payload))
	require.NoError(t, err)

	assert.Equal(t, "ok", h.Status)
	assert.Equal(t, "1.0.0", h.Version)
	assert.Empty(t, h.Uptime)
	assert.Equal(t, map[string]string{"database": "connected", "cache": "degraded"}, h.Dependencies)
}

func TestDecodeHealth_RequiresStatus(t *testing.T) {
	_, err := decodeHealth([]byte(`{"version":"1.0.0"}`))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"status: required"}, verr.Fields)
}

func TestDecodeHealth_RejectsNonStringDependency(t *testing.T) {
	_, err := decodeHealth([]byte(`{"status":"ok","dependencies":{"database":7}}`))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "dependencies.database: expected string")
}
