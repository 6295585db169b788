package productcontroller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/hafez-365/damanhourcoffeestore/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Category{}))
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/products", GetProducts(db))
	r.GET("/products/:id", GetProductByID(db))
	return r
}

func seedProducts(t *testing.T, db *gorm.DB) {
	t.Helper()
	products := []models.Product{
		{Name: "Turkish Roast", NameAR: "تحميص تركي", Price: 120, Available: true, Featured: true},
		{Name: "French Press", NameAR: "فرنش برس", Price: 350, Available: true},
		{Name: "Retired Blend", NameAR: "خلطة قديمة", Price: 60, Available: false},
	}
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}
}

func listProducts(t *testing.T, r *gin.Engine, query string) []models.Product {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products"+query, nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	return products
}

func TestGetProductsReturnsAll(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	seedProducts(t, db)

	products := listProducts(t, r, "")
	assert.Len(t, products, 3)
}

func TestGetProductsAvailableFilter(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	seedProducts(t, db)

	products := listProducts(t, r, "?available=true")
	require.Len(t, products, 2)
	for _, p := range products {
		assert.True(t, p.Available)
	}
}

func TestGetProductsFeaturedFilter(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	seedProducts(t, db)

	products := listProducts(t, r, "?featured=true")
	require.Len(t, products, 1)
	assert.Equal(t, "Turkish Roast", products[0].Name)
}

func TestGetProductsPriceRange(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	seedProducts(t, db)

	products := listProducts(t, r, "?min_price=100&max_price=200")
	require.Len(t, products, 1)
	assert.Equal(t, "Turkish Roast", products[0].Name)
}

func TestGetProductsSortByPrice(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	seedProducts(t, db)

	products := listProducts(t, r, "?sort_by=price&order=asc")
	require.Len(t, products, 3)
	assert.InDelta(t, 60, products[0].Price, 1e-9)
	assert.InDelta(t, 350, products[2].Price, 1e-9)
}

func TestGetProductsSearchIsCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	seedProducts(t, db)

	products := listProducts(t, r, "?search=turkish")
	require.Len(t, products, 1)
	assert.Equal(t, "Turkish Roast", products[0].Name)

	products = listProducts(t, r, "?search=TURKISH")
	require.Len(t, products, 1)
	assert.Equal(t, "Turkish Roast", products[0].Name)
}

func TestGetProductsSearchMatchesArabicName(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	seedProducts(t, db)

	products := listProducts(t, r, "?search="+url.QueryEscape("تحميص"))
	require.Len(t, products, 1)
	assert.Equal(t, "Turkish Roast", products[0].Name)
}

func TestGetProductsSearchNoMatches(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	seedProducts(t, db)

	products := listProducts(t, r, "?search=nonexistent")
	assert.Empty(t, products)
}

func TestGetProductsRejectsUnknownSortColumn(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	seedProducts(t, db)

	// Falls back to created_at instead of interpolating the input.
	products := listProducts(t, r, "?sort_by=;drop+table")
	assert.Len(t, products, 3)
}

func TestGetProductsInvalidPrice(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products?min_price=cheap", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProductByID(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	product := models.Product{Name: "V60 Dripper", NameAR: "قمع ترشيح", Price: 95, Available: true}
	require.NoError(t, db.Create(&product).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/products/%d", product.ID), nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var fetched models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, product.Name, fetched.Name)
	assert.Equal(t, product.NameAR, fetched.NameAR)
}

func TestGetProductByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/999", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProductByIDInvalid(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/not-a-number", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
