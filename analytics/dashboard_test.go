package analytics

import (
	"fmt"
	"testing"
	"time"

	"genzshop-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSnapshotUsesCatalogCount(t *testing.T) {
	orders := []models.Order{
		orderWith("a@x.com", 100),
		orderWith("b@x.com", 300),
	}

	snap := BuildSnapshot(orders, 42, true)
	assert.Equal(t, 400.0, snap.Revenue)
	assert.Equal(t, 2, snap.Orders)
	assert.Equal(t, 2, snap.Customers)
	assert.Equal(t, 42, snap.Products)
	assert.Equal(t, 200.0, snap.AverageOrderValue)
}

func TestBuildSnapshotFallsBackToDistinctProducts(t *testing.T) {
	// When the products read failed the count degrades to the distinct
	// productIds seen in the orders instead of erroring.
	orders := []models.Order{
		{Items: []models.OrderItem{{ProductID: "p1"}, {ProductID: "p2"}}},
		{Items: []models.OrderItem{{ProductID: "p2"}}},
	}

	snap := BuildSnapshot(orders, 0, false)
	assert.Equal(t, 2, snap.Products)
}

func TestSnapshotFromReusesSummary(t *testing.T) {
	orders := []models.Order{
		orderWith("a@x.com", 100),
		orderWith("b@x.com", 300),
	}
	summary := Summarize(orders)

	snap := SnapshotFrom(summary, orders, 42, true)
	assert.Equal(t, BuildSnapshot(orders, 42, true), snap)
	assert.Equal(t, summary.Revenue, snap.Revenue)
	assert.Equal(t, summary.AverageOrderValue, snap.AverageOrderValue)
}

func TestBuildSnapshotEmptyOrders(t *testing.T) {
	snap := BuildSnapshot(nil, 0, false)
	assert.Equal(t, Snapshot{}, snap)
}

func TestRecentOrdersTakesLeadingFive(t *testing.T) {
	var orders []models.Order
	for i := 0; i < 8; i++ {
		orders = append(orders, models.Order{OrderID: fmt.Sprintf("o%d", i)})
	}

	recent := RecentOrders(orders)
	require.Len(t, recent, 5)
	// Input is newest-first already; no re-sort happens here.
	assert.Equal(t, "o0", recent[0].OrderID)
	assert.Equal(t, "o4", recent[4].OrderID)

	assert.Len(t, RecentOrders(orders[:3]), 3)
	assert.Empty(t, RecentOrders(nil))
}

func TestRecentActivityNarration(t *testing.T) {
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{OrderID: "ORD-1", Status: models.StatusDelivered, CreatedAt: at},
		{Status: models.StatusPending},
	}

	feed := RecentActivity(orders)
	require.Len(t, feed, 2)
	assert.Equal(t, "Order ORD-1 delivered", feed[0].Text)
	assert.Equal(t, at, feed[0].Time)
	assert.Equal(t, "Order N/A pending", feed[1].Text)
}
