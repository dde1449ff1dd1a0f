package analytics

import (
	"testing"
	"time"

	"genzshop-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customerOrder(id, email, name string, total float64, at time.Time) models.Order {
	return models.Order{
		OrderID:     id,
		TotalAmount: amount(total),
		Status:      models.StatusPending,
		CreatedAt:   at,
		ShippingAddress: models.ShippingAddress{
			Name:  name,
			Email: email,
			City:  "Jaipur",
			State: "RJ",
		},
	}
}

func TestBuildCustomersRollUp(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{
		customerOrder("o1", "a@x.com", "Asha", 100, base),
		customerOrder("o2", "a@x.com", "Asha", 50, base.Add(48*time.Hour)),
		customerOrder("o3", "b@x.com", "Bela", 200, base.Add(24*time.Hour)),
	}

	customers := BuildCustomers(orders)
	require.Len(t, customers, 2)

	var asha Customer
	for _, c := range customers {
		if c.Email == "a@x.com" {
			asha = c
		}
	}
	assert.Equal(t, 2, asha.TotalOrders)
	assert.Equal(t, 150.0, asha.TotalSpent)
	assert.Equal(t, base, asha.FirstOrder)
	assert.Equal(t, base.Add(48*time.Hour), asha.LastOrder)
	assert.Equal(t, "Jaipur, RJ", asha.Address)
	require.Len(t, asha.Orders, 2)
}

func TestBuildCustomersSortedByRecency(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	orders := []models.Order{
		customerOrder("o1", "old@x.com", "Old", 10, base),
		customerOrder("o2", "new@x.com", "New", 10, base.Add(time.Hour)),
	}

	customers := BuildCustomers(orders)
	require.Len(t, customers, 2)
	assert.Equal(t, "new@x.com", customers[0].Email)
	assert.Equal(t, "old@x.com", customers[1].Email)
}

func TestBuildCustomersMissingTimestampsSortLast(t *testing.T) {
	dated := customerOrder("o1", "dated@x.com", "Dated", 10, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	undated := customerOrder("o2", "undated@x.com", "Undated", 10, time.Time{})

	customers := BuildCustomers([]models.Order{undated, dated})
	require.Len(t, customers, 2)
	assert.Equal(t, "dated@x.com", customers[0].Email)
	assert.True(t, customers[1].LastOrder.IsZero())
}

func TestBuildCustomersExcludesOrdersWithoutEmail(t *testing.T) {
	// Intentional asymmetry: the order still counts toward revenue in the
	// aggregator but produces no customer record here.
	noEmail := models.Order{TotalAmount: amount(500), CreatedAt: time.Now()}

	customers := BuildCustomers([]models.Order{noEmail})
	assert.Empty(t, customers)
	assert.Equal(t, 500.0, Summarize([]models.Order{noEmail}).Revenue)
}

func TestBuildCustomersNameFallsBackToEmail(t *testing.T) {
	o := customerOrder("o1", "anon@x.com", "", 10, time.Now())

	customers := BuildCustomers([]models.Order{o})
	require.Len(t, customers, 1)
	assert.Equal(t, "anon@x.com", customers[0].Name)
}

func TestBuildCustomersFallsBackToUpdatedAt(t *testing.T) {
	updated := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	o := customerOrder("o1", "a@x.com", "Asha", 10, time.Time{})
	o.UpdatedAt = updated

	customers := BuildCustomers([]models.Order{o})
	require.Len(t, customers, 1)
	assert.Equal(t, updated, customers[0].LastOrder)
	assert.Equal(t, updated, customers[0].FirstOrder)
}

func TestHistorySortsNewestFirstWithoutMutating(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	orders := []models.Order{
		customerOrder("o1", "a@x.com", "Asha", 10, base),
		customerOrder("o2", "a@x.com", "Asha", 10, base.Add(time.Hour)),
	}

	customers := BuildCustomers(orders)
	require.Len(t, customers, 1)

	history := customers[0].History()
	require.Len(t, history, 2)
	assert.Equal(t, "o2", history[0].ID)
	assert.Equal(t, "o1", history[1].ID)

	// The directory keeps encounter order until the detail view asks.
	assert.Equal(t, "o1", customers[0].Orders[0].ID)
}

func TestFilterCustomers(t *testing.T) {
	customers := []Customer{
		{Name: "Asha Verma", Email: "asha@x.com"},
		{Name: "Bela", Email: "bela@y.com"},
	}

	assert.Len(t, FilterCustomers(customers, ""), 2)
	assert.Len(t, FilterCustomers(customers, "ASHA"), 1)
	assert.Len(t, FilterCustomers(customers, "y.com"), 1)
	assert.Empty(t, FilterCustomers(customers, "nobody"))
}
