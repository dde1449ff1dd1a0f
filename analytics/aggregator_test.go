package analytics

import (
	"testing"
	"time"

	"genzshop-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(v float64) *float64 {
	return &v
}

func orderWith(email string, total float64) models.Order {
	return models.Order{
		TotalAmount:     amount(total),
		Status:          models.StatusPending,
		ShippingAddress: models.ShippingAddress{Email: email},
	}
}

func TestResolveAmountPrecedence(t *testing.T) {
	tests := []struct {
		name  string
		order models.Order
		want  float64
	}{
		{"totalAmount wins", models.Order{TotalAmount: amount(100), Total: amount(90), Subtotal: amount(80)}, 100},
		{"falls back to total", models.Order{Total: amount(90), Subtotal: amount(80)}, 90},
		{"falls back to subtotal", models.Order{Subtotal: amount(80)}, 80},
		{"zero totalAmount falls through", models.Order{TotalAmount: amount(0), Total: amount(90)}, 90},
		{"zero total falls through", models.Order{TotalAmount: amount(0), Total: amount(0), Subtotal: amount(80)}, 80},
		{"nothing populated", models.Order{}, 0},
		{"all zero", models.Order{TotalAmount: amount(0), Total: amount(0), Subtotal: amount(0)}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveAmount(tt.order))
		})
	}
}

func TestSummarizeCustomersAndRevenue(t *testing.T) {
	// Two orders from the same customer and one from another.
	orders := []models.Order{
		orderWith("a@x.com", 100),
		orderWith("a@x.com", 50),
		orderWith("b@x.com", 200),
	}

	s := Summarize(orders)
	assert.Equal(t, 350.0, s.Revenue)
	assert.Equal(t, 3, s.OrderCount)
	assert.Equal(t, 2, s.DistinctCustomers)
	assert.InDelta(t, 350.0/3, s.AverageOrderValue, 1e-9)
}

func TestSummarizeEmptyInput(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0.0, s.Revenue)
	assert.Equal(t, 0, s.OrderCount)
	assert.Equal(t, 0, s.DistinctCustomers)
	assert.Equal(t, 0.0, s.AverageOrderValue)
	assert.Empty(t, TopProducts(nil, 5))
}

func TestSummarizeRevenueIsOrderIndependent(t *testing.T) {
	forward := []models.Order{
		orderWith("a@x.com", 100),
		orderWith("b@x.com", 50),
		orderWith("c@x.com", 200),
	}
	reversed := []models.Order{forward[2], forward[1], forward[0]}

	assert.Equal(t, Summarize(forward).Revenue, Summarize(reversed).Revenue)
}

func TestSummarizeMissingEmailCountsRevenueOnly(t *testing.T) {
	// An order without a shipping email still contributes to revenue but
	// never to the distinct customer count.
	orders := []models.Order{
		{TotalAmount: amount(500)},
	}

	s := Summarize(orders)
	assert.Equal(t, 500.0, s.Revenue)
	assert.Equal(t, 0, s.DistinctCustomers)
}

func TestSummarizeStatusCounts(t *testing.T) {
	orders := []models.Order{
		{Status: models.StatusPending},
		{Status: models.StatusPending},
		{Status: models.StatusDelivered},
		{Status: "refunded"}, // unknown status is ignored, not an error
	}

	s := Summarize(orders)
	assert.Equal(t, 2, s.StatusCounts[models.StatusPending])
	assert.Equal(t, 1, s.StatusCounts[models.StatusDelivered])
	assert.Equal(t, 0, s.StatusCounts[models.StatusCancelled])
	assert.NotContains(t, s.StatusCounts, "refunded")
}

func TestSummarizeEmailIsCaseSensitive(t *testing.T) {
	orders := []models.Order{
		orderWith("A@x.com", 10),
		orderWith("a@x.com", 10),
	}
	assert.Equal(t, 2, Summarize(orders).DistinctCustomers)
}

func TestTopProductsAccumulatesAcrossItems(t *testing.T) {
	orders := []models.Order{
		{Items: []models.OrderItem{
			{ProductID: "p1", Name: "Silk Saree", Price: 10, Quantity: 2},
			{ProductID: "p1", Name: "Silk Saree", Price: 10, Quantity: 1},
		}},
	}

	top := TopProducts(orders, 5)
	require.Len(t, top, 1)
	assert.Equal(t, "p1", top[0].ProductID)
	assert.Equal(t, 3, top[0].Quantity)
	assert.Equal(t, 30.0, top[0].Revenue)
}

func TestTopProductsRankingAndTruncation(t *testing.T) {
	orders := []models.Order{
		{Items: []models.OrderItem{
			{ProductID: "p1", Price: 5, Quantity: 1},
			{ProductID: "p2", Price: 50, Quantity: 2},
			{ProductID: "p3", Price: 20, Quantity: 1},
			{ProductID: "p4", Price: 30, Quantity: 1},
		}},
	}

	top := TopProducts(orders, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "p2", top[0].ProductID)
	assert.Equal(t, "p4", top[1].ProductID)
	assert.GreaterOrEqual(t, top[0].Revenue, top[1].Revenue)
}

func TestTopProductsTiesKeepEncounterOrder(t *testing.T) {
	orders := []models.Order{
		{Items: []models.OrderItem{
			{ProductID: "first", Price: 10, Quantity: 1},
			{ProductID: "second", Price: 10, Quantity: 1},
		}},
	}

	top := TopProducts(orders, 5)
	require.Len(t, top, 2)
	assert.Equal(t, "first", top[0].ProductID)
	assert.Equal(t, "second", top[1].ProductID)
}

func TestTopProductsSkipsItemsWithoutID(t *testing.T) {
	orders := []models.Order{
		{Items: []models.OrderItem{
			{Name: "mystery", Price: 999, Quantity: 1},
			{ProductID: "p1", Price: 10, Quantity: 1},
		}},
	}

	top := TopProducts(orders, 5)
	require.Len(t, top, 1)
	assert.Equal(t, "p1", top[0].ProductID)
}

func TestTopProductsDefaultsQuantityAndPrice(t *testing.T) {
	orders := []models.Order{
		{Items: []models.OrderItem{
			{ProductID: "p1", Price: 10}, // missing quantity counts as 1
			{ProductID: "p2", Quantity: 3},
		}},
	}

	top := TopProducts(orders, 5)
	require.Len(t, top, 2)
	assert.Equal(t, 1, top[0].Quantity)
	assert.Equal(t, 10.0, top[0].Revenue)
	assert.Equal(t, "p2", top[1].ProductID)
	assert.Equal(t, 3, top[1].Quantity)
	assert.Equal(t, 0.0, top[1].Revenue)
}

func TestDistinctProductCount(t *testing.T) {
	orders := []models.Order{
		{Items: []models.OrderItem{
			{ProductID: "p1"},
			{ProductID: "p2"},
			{ProductID: ""},
		}},
		{Items: []models.OrderItem{{ProductID: "p1"}}},
		{CreatedAt: time.Now()},
	}
	assert.Equal(t, 2, DistinctProductCount(orders))
}
