package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fixtures are the hand-authored substitute results served in mock mode and
// whenever the live backend fails. They are trusted as-is; nothing validates
// them. Timestamps are anchored to process start so the storefront always
// shows plausibly recent activity.

var fixtureNow = time.Now().UTC()

func daysAgo(d int) string {
	return fixtureNow.AddDate(0, 0, -d).Format(time.RFC3339)
}

func hoursAgo(h int) string {
	return fixtureNow.Add(-time.Duration(h) * time.Hour).Format(time.RFC3339)
}

func intPtr(n int) *int { return &n }

// MockHealth is the fixture result for the health endpoint.
var MockHealth = HealthResponse{
	Status:  "ok",
	Version: "1.0.0",
	Uptime:  "72h 15m",
	Dependencies: map[string]string{
		"database": "connected",
		"cache":    "degraded",
	},
}

// MockProducts is the fixture catalog.
var MockProducts = []Product{
	{
		ID:          "btc-ledger",
		Name:        "Cryptotrade Ledger Cold Wallet",
		Description: "Secure hardware wallet supporting Bitcoin, Ethereum, and ERC-20 tokens with multi-sig compatibility.",
		Price:       decimal.NewFromFloat(189.99),
		Currency:    "USD",
		Status:      ProductActive,
		Stock:       intPtr(45),
		Tags:        []string{"security", "hardware"},
		CreatedAt:   daysAgo(15),
		UpdatedAt:   daysAgo(1),
	},
	{
		ID:          "eth-node",
		Name:        "Ethereum Validator Node",
		Description: "Turn-key staking node with automated updates, monitoring, and slashing protection dashboard.",
		Price:       decimal.NewFromInt(2499),
		Currency:    "USD",
		Status:      ProductActive,
		Stock:       intPtr(12),
		Tags:        []string{"staking", "infrastructure"},
		CreatedAt:   daysAgo(30),
		UpdatedAt:   daysAgo(2),
	},
	{
		ID:          "analytics-suite",
		Name:        "On-chain Analytics Suite",
		Description: "Subscription analytics for market movements, whale tracking, and customizable alerts.",
		Price:       decimal.NewFromInt(99),
		Currency:    "USD",
		Status:      ProductDraft,
		Stock:       intPtr(999),
		Tags:        []string{"subscription", "analytics"},
		CreatedAt:   daysAgo(45),
		UpdatedAt:   daysAgo(10),
	},
	{
		ID:          "defi-bundle",
		Name:        "DeFi Starter Bundle",
		Description: "Educational course, simulated trading account, and curated DeFi strategies for beginners.",
		Price:       decimal.NewFromInt(349),
		Currency:    "USD",
		Status:      ProductActive,
		Stock:       intPtr(120),
		Tags:        []string{"education", "defi"},
		CreatedAt:   daysAgo(8),
		UpdatedAt:   daysAgo(3),
	},
}

// MockOrders is the fixture order history. Totals are authored values and are
// not derived from the line items.
var MockOrders = []Order{
	{
		ID:        "order-4012",
		UserID:    "user-123",
		Status:    OrderFulfilled,
		Total:     decimal.NewFromFloat(2798.99),
		Currency:  "USD",
		CreatedAt: daysAgo(6),
		UpdatedAt: daysAgo(2),
		LineItems: []OrderLineItem{
			{ProductID: "eth-node", Name: "Ethereum Validator Node", Quantity: 1, Price: decimal.NewFromInt(2499), Currency: "USD"},
			{ProductID: "analytics-suite", Name: "On-chain Analytics Suite", Quantity: 1, Price: decimal.NewFromInt(99), Currency: "USD"},
			{ProductID: "btc-ledger", Name: "Cryptotrade Ledger Cold Wallet", Quantity: 1, Price: decimal.NewFromFloat(189.99), Currency: "USD"},
		},
	},
	{
		ID:        "order-4013",
		UserID:    "user-456",
		Status:    OrderProcessing,
		Total:     decimal.NewFromFloat(538.99),
		Currency:  "USD",
		CreatedAt: daysAgo(1),
		LineItems: []OrderLineItem{
			{ProductID: "defi-bundle", Name: "DeFi Starter Bundle", Quantity: 1, Price: decimal.NewFromInt(349), Currency: "USD"},
			{ProductID: "btc-ledger", Name: "Cryptotrade Ledger Cold Wallet", Quantity: 1, Price: decimal.NewFromFloat(189.99), Currency: "USD"},
		},
	},
	{
		ID:        "order-4014",
		UserID:    "user-123",
		Status:    OrderPending,
		Total:     decimal.NewFromInt(99),
		Currency:  "USD",
		CreatedAt: hoursAgo(12),
		LineItems: []OrderLineItem{
			{ProductID: "analytics-suite", Name: "On-chain Analytics Suite", Quantity: 1, Price: decimal.NewFromInt(99), Currency: "USD"},
		},
	},
}

// MockProduct returns the fixture product with the given id, or nil. A miss
// is an expected outcome: single-product lookups are the one operation whose
// fallback is not guaranteed to produce a value.
func MockProduct(id string) *Product {
	for i := range MockProducts {
		if MockProducts[i].ID == id {
			return &MockProducts[i]
		}
	}
	return nil
}
