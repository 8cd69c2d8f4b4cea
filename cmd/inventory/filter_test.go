package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fidellopezm03/giakiemso-backend/cmd/model"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func sampleProducts() []model.Product {
	return []model.Product{
		{ID: "1", Name: "abc123", SKU: strPtr("SKU-000001-AAA"), Category: "Điện tử"},
		{ID: "2", Name: "Áo thun", SKU: nil, Category: "Thời trang"},
		{ID: "3", Name: "Nồi cơm", SKU: strPtr("ABC-9"), Category: "Gia dụng"},
		{ID: "4", Name: "Tai nghe", SKU: strPtr("TN-1"), Category: "Điện tử"},
	}
}

func ids(products []model.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterProductsAll(t *testing.T) {
	products := sampleProducts()
	assert.Equal(t, products, FilterProducts(products, "", AllCategories))
	assert.Equal(t, products, FilterProducts(products, "   ", ""))
}

func TestFilterProductsCaseInsensitive(t *testing.T) {
	got := FilterProducts(sampleProducts(), "ABC", AllCategories)
	assert.Equal(t, []string{"1", "3"}, ids(got))
}

func TestFilterProductsBySKU(t *testing.T) {
	got := FilterProducts(sampleProducts(), "tn-", AllCategories)
	assert.Equal(t, []string{"4"}, ids(got))
}

func TestFilterProductsCategory(t *testing.T) {
	got := FilterProducts(sampleProducts(), "", "Điện tử")
	assert.Equal(t, []string{"1", "4"}, ids(got))

	got = FilterProducts(sampleProducts(), "abc", "Điện tử")
	assert.Equal(t, []string{"1"}, ids(got))

	got = FilterProducts(sampleProducts(), "", "điện tử")
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"Điện tử", "Thời trang", "Gia dụng"}, Categories(sampleProducts()))
	assert.Equal(t, []string{}, Categories(nil))
}

func TestProfit(t *testing.T) {
	profit, margin, ok := Profit(model.Product{Price: 200, CostPrice: floatPtr(150)})
	assert.True(t, ok)
	assert.InDelta(t, 50, profit, 1e-9)
	assert.InDelta(t, 25, margin, 1e-9)

	profit, margin, ok = Profit(model.Product{Price: 100, CostPrice: floatPtr(120)})
	assert.True(t, ok)
	assert.InDelta(t, -20, profit, 1e-9)
	assert.InDelta(t, -20, margin, 1e-9)

	_, margin, ok = Profit(model.Product{Price: 0, CostPrice: floatPtr(10)})
	assert.True(t, ok)
	assert.Zero(t, margin)

	_, _, ok = Profit(model.Product{Price: 100})
	assert.False(t, ok)
}
