package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fidellopezm03/giakiemso-backend/cmd/model"
	"github.com/fidellopezm03/giakiemso-backend/cmd/repository"
)

func ptr[T any](v T) *T { return &v }

func validInput() model.ProductInput {
	return model.ProductInput{
		Name:          "  Nồi cơm điện  ",
		Category:      "Gia dụng",
		Price:         ptr(450000.0),
		CostPrice:     ptr(300000.0),
		StockQuantity: ptr(4),
		MinStockLevel: ptr(5),
	}
}

func TestProductListFiltersInMemory(t *testing.T) {
	repo := &fakeProductRepo{products: []model.Product{
		{ID: "1", Name: "Tai nghe", Category: "Điện tử"},
		{ID: "2", Name: "Áo khoác", Category: "Thời trang"},
		{ID: "3", Name: "Tai nghe gaming", Category: "Điện tử"},
	}}
	svc := NewProductService(repo)

	got, err := svc.List(context.Background(), "TAI", "Điện tử")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
	assert.Equal(t, []model.ProductQuery{{ActiveOnly: true}}, repo.queries)
}

func TestProductListStoreError(t *testing.T) {
	svc := NewProductService(&fakeProductRepo{err: errors.New("db down")})
	_, err := svc.List(context.Background(), "", "all")
	assert.EqualError(t, err, "db down")
}

func TestProductLowStockLimit(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductService(repo)

	_, _ = svc.LowStock(context.Background(), 0)
	_, _ = svc.LowStock(context.Background(), 500)
	_, _ = svc.LowStock(context.Background(), 3)

	assert.Equal(t, []model.ProductQuery{
		{ActiveOnly: true, LowStockOnly: true, Limit: 10},
		{ActiveOnly: true, LowStockOnly: true, Limit: 100},
		{ActiveOnly: true, LowStockOnly: true, Limit: 3},
	}, repo.queries)
}

func TestProductCreateNormalizes(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductService(repo).(*productService)
	svc.now = func() time.Time { return time.UnixMilli(1717171234567) }

	p, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, "new-id", p.ID)
	assert.Equal(t, "Nồi cơm điện", p.Name)
	assert.True(t, p.IsActive)
	assert.Nil(t, p.Description)
	require.NotNil(t, p.SKU)
	assert.Regexp(t, regexp.MustCompile(`^SKU-234567-[0-9A-F]{3}$`), *p.SKU)
	require.NotNil(t, p.CostPrice)
	assert.Equal(t, 300000.0, *p.CostPrice)
}

func TestProductCreateDefaults(t *testing.T) {
	repo := &fakeProductRepo{}
	in := validInput()
	in.SKU = "NC-01"
	in.StockQuantity = nil
	in.MinStockLevel = nil
	in.CostPrice = ptr(0.0)
	in.IsActive = ptr(false)

	p, err := NewProductService(repo).Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "NC-01", *p.SKU)
	assert.Equal(t, 0, p.StockQuantity)
	assert.Equal(t, 5, p.MinStockLevel)
	assert.Nil(t, p.CostPrice)
	assert.False(t, p.IsActive)
}

func TestProductCreateValidation(t *testing.T) {
	repo := &fakeProductRepo{}
	in := model.ProductInput{
		Name:          " ",
		Price:         ptr(-1.0),
		CostPrice:     ptr(-5.0),
		StockQuantity: ptr(-2),
	}

	_, err := NewProductService(repo).Create(context.Background(), in)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{
		"name":           "Tên sản phẩm là bắt buộc",
		"category":       "Danh mục là bắt buộc",
		"price":          "Giá phải lớn hơn 0",
		"cost_price":     "Giá vốn phải lớn hơn 0",
		"stock_quantity": "Số lượng phải là số nguyên dương",
	}, verr.Fields)
	assert.Zero(t, repo.callCount, "store must not be called on invalid input")
}

func TestProductUpdateRequiresAllNumbers(t *testing.T) {
	repo := &fakeProductRepo{}
	in := validInput()
	in.Price = nil
	in.MinStockLevel = nil

	_, err := NewProductService(repo).Update(context.Background(), "id-1", in)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Giá là bắt buộc", verr.Fields["price"])
	assert.Contains(t, verr.Fields, "min_stock_level")
	assert.Zero(t, repo.callCount)
}

func TestProductUpdateNotFound(t *testing.T) {
	repo := &fakeProductRepo{notFound: true}
	_, err := NewProductService(repo).Update(context.Background(), "gone", validInput())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProductDelete(t *testing.T) {
	repo := &fakeProductRepo{}
	require.NoError(t, NewProductService(repo).Delete(context.Background(), "id-9"))
	assert.Equal(t, []string{"id-9"}, repo.deleted)

	repo.notFound = true
	assert.ErrorIs(t, NewProductService(repo).Delete(context.Background(), "id-9"), repository.ErrNotFound)
}

func TestProductCategories(t *testing.T) {
	repo := &fakeProductRepo{products: []model.Product{
		{Category: "B"}, {Category: "A"}, {Category: "B"},
	}}
	cats, err := NewProductService(repo).Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, cats)
}

func TestProductUpdateKeepsStoredActiveFlag(t *testing.T) {
	repo := &fakeProductRepo{products: []model.Product{{ID: "id-1", Name: "Quạt cũ", IsActive: false}}}
	svc := NewProductService(repo)

	p, err := svc.Update(context.Background(), "id-1", validInput())
	require.NoError(t, err)
	assert.False(t, p.IsActive)
	require.Len(t, repo.updated, 1)
	assert.False(t, repo.updated[0].IsActive)

	in := validInput()
	in.IsActive = ptr(true)
	p, err = svc.Update(context.Background(), "id-1", in)
	require.NoError(t, err)
	assert.True(t, p.IsActive)
}

func TestProductDuplicateSKUIsFieldError(t *testing.T) {
	repo := &fakeProductRepo{err: repository.ErrSKUTaken}
	svc := NewProductService(repo)

	_, err := svc.Create(context.Background(), validInput())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{"sku": "Mã SKU đã tồn tại"}, verr.Fields)

	in := validInput()
	in.IsActive = ptr(true)
	_, err = svc.Update(context.Background(), "id-1", in)
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "sku")
}
