package orderControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/hafez-365/damanhourcoffeestore/models"
)

const testUserID = "user-1"

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Product{},
		&models.Category{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	require.NoError(t, db.Create(&models.User{
		ID:           testUserID,
		Email:        "orders@test.local",
		PasswordHash: "x",
	}).Error)
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", testUserID)
		c.Next()
	})

	r.POST("/user/orders", PlaceOrderHandler(db))
	r.POST("/user/orders/direct", DirectOrderHandler(db))
	r.GET("/user/orders", GetUserOrdersHandler(db))
	r.GET("/user/orders/:orderID", GetOrderByIDHandler(db))

	r.PUT("/admin/orders/:orderID/status", UpdateOrderStatusHandler(db))
	r.PUT("/admin/orders/:orderID/payment-status", UpdatePaymentStatusHandler(db))

	return r
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) models.Product {
	t.Helper()
	product := models.Product{
		Name:          name,
		NameAR:        name + "-ar",
		Price:         price,
		StockQuantity: stock,
		Available:     true,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func seedCartWithItems(t *testing.T, db *gorm.DB, items ...models.CartItem) models.Cart {
	t.Helper()
	cart := models.Cart{UserID: testUserID}
	require.NoError(t, db.Create(&cart).Error)
	for i := range items {
		items[i].CartID = cart.CartID
		items[i].TotalPrice = float64(items[i].Quantity) * items[i].UnitPrice
		items[i].AddedAt = time.Now()
		require.NoError(t, db.Create(&items[i]).Error)
	}
	return cart
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func stockOf(t *testing.T, db *gorm.DB, productID uint) int {
	t.Helper()
	var product models.Product
	require.NoError(t, db.First(&product, productID).Error)
	return product.StockQuantity
}

func countOrders(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Order{}).Count(&n).Error)
	return n
}

func TestPlaceOrderFromCart(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	beans := seedProduct(t, db, "beans", 20, 10)
	sugar := seedProduct(t, db, "sugar", 5, 10)

	seedCartWithItems(t, db,
		models.CartItem{ProductID: beans.ID, ProductName: beans.Name, UnitPrice: beans.Price, Quantity: 2},
		models.CartItem{ProductID: sugar.ID, ProductName: sugar.Name, UnitPrice: sugar.Price, Quantity: 3},
	)

	w := doJSON(t, r, http.MethodPost, "/user/orders", gin.H{"shipping_address": "12 Corniche St, Damanhour"})
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.NotEmpty(t, order.OrderRef)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	assert.InDelta(t, 55, order.TotalAmount, 1e-9)
	assert.Len(t, order.Items, 2)

	assert.Equal(t, 8, stockOf(t, db, beans.ID))
	assert.Equal(t, 7, stockOf(t, db, sugar.ID))

	var cartRows int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&cartRows).Error)
	assert.EqualValues(t, 0, cartRows, "cart should be emptied after checkout")
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := doJSON(t, r, http.MethodPost, "/user/orders", gin.H{"shipping_address": "somewhere"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cart is empty")
	assert.EqualValues(t, 0, countOrders(t, db))
}

func TestPlaceOrderInsufficientStockRollsBack(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	plenty := seedProduct(t, db, "plenty", 10, 50)
	scarce := seedProduct(t, db, "scarce", 10, 2)

	seedCartWithItems(t, db,
		models.CartItem{ProductID: plenty.ID, ProductName: plenty.Name, UnitPrice: plenty.Price, Quantity: 1},
		models.CartItem{ProductID: scarce.ID, ProductName: scarce.Name, UnitPrice: scarce.Price, Quantity: 5},
	)

	w := doJSON(t, r, http.MethodPost, "/user/orders", gin.H{"shipping_address": "somewhere"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient stock")

	assert.EqualValues(t, 0, countOrders(t, db))
	assert.Equal(t, 50, stockOf(t, db, plenty.ID), "earlier deduction must roll back")
	assert.Equal(t, 2, stockOf(t, db, scarce.ID))

	var cartRows int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&cartRows).Error)
	assert.EqualValues(t, 2, cartRows, "cart must survive a failed checkout")
}

func TestDirectOrderCreatesOrderAndDeductsStock(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	product := seedProduct(t, db, "espresso set", 30, 10)

	w := doJSON(t, r, http.MethodPost, "/user/orders/direct", gin.H{
		"product_id":       product.ID,
		"quantity":         2,
		"shipping_address": "El-Sadat Rd",
		"notes":            "call first",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.InDelta(t, 60, order.Items[0].TotalPrice, 1e-9)
	assert.InDelta(t, 60, order.TotalAmount, 1e-9)
	assert.Equal(t, "call first", order.Notes)

	assert.Equal(t, 8, stockOf(t, db, product.ID))
}

func TestDirectOrderDefaultsQuantityToOne(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	product := seedProduct(t, db, "single", 12, 10)

	w := doJSON(t, r, http.MethodPost, "/user/orders/direct", gin.H{
		"product_id":       product.ID,
		"shipping_address": "somewhere",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	require.Len(t, order.Items, 1)
	assert.Equal(t, 1, order.Items[0].Quantity)
	assert.Equal(t, 9, stockOf(t, db, product.ID))
}

func TestDirectOrderRequiresShippingAddress(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	product := seedProduct(t, db, "no-address", 12, 10)

	w := doJSON(t, r, http.MethodPost, "/user/orders/direct", gin.H{
		"product_id": product.ID,
		"quantity":   1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.EqualValues(t, 0, countOrders(t, db))
	assert.Equal(t, 10, stockOf(t, db, product.ID))
}

func TestDirectOrderInsufficientStock(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	product := seedProduct(t, db, "low", 12, 1)

	w := doJSON(t, r, http.MethodPost, "/user/orders/direct", gin.H{
		"product_id":       product.ID,
		"quantity":         5,
		"shipping_address": "somewhere",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient stock")
	assert.EqualValues(t, 0, countOrders(t, db))
	assert.Equal(t, 1, stockOf(t, db, product.ID))
}

func TestDirectOrderUnavailableProduct(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	product := seedProduct(t, db, "hidden", 12, 10)
	require.NoError(t, db.Model(&product).Update("available", false).Error)

	w := doJSON(t, r, http.MethodPost, "/user/orders/direct", gin.H{
		"product_id":       product.ID,
		"quantity":         1,
		"shipping_address": "somewhere",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not available")
	assert.Equal(t, 10, stockOf(t, db, product.ID))
}

func TestPlaceOrderSkipsRetiredProducts(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	live := seedProduct(t, db, "live", 20, 10)
	retired := seedProduct(t, db, "retired", 15, 10)

	seedCartWithItems(t, db,
		models.CartItem{ProductID: live.ID, ProductName: live.Name, UnitPrice: live.Price, Quantity: 2},
		models.CartItem{ProductID: retired.ID, ProductName: retired.Name, UnitPrice: retired.Price, Quantity: 1},
	)
	require.NoError(t, db.Delete(&retired).Error)

	w := doJSON(t, r, http.MethodPost, "/user/orders", gin.H{"shipping_address": "somewhere"})
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	require.Len(t, order.Items, 1)
	assert.Equal(t, live.ID, order.Items[0].ProductID)
	assert.InDelta(t, 40, order.TotalAmount, 1e-9)

	assert.Equal(t, 8, stockOf(t, db, live.ID))

	var cartRows int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&cartRows).Error)
	assert.EqualValues(t, 0, cartRows)
}

func TestPlaceOrderOnlyRetiredProducts(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	retired := seedProduct(t, db, "retired", 15, 10)

	seedCartWithItems(t, db,
		models.CartItem{ProductID: retired.ID, ProductName: retired.Name, UnitPrice: retired.Price, Quantity: 1},
	)
	require.NoError(t, db.Delete(&retired).Error)

	w := doJSON(t, r, http.MethodPost, "/user/orders", gin.H{"shipping_address": "somewhere"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cart is empty")
	assert.EqualValues(t, 0, countOrders(t, db))
}

func TestGetOrderByNumericID(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	product := seedProduct(t, db, "by-id", 10, 10)

	order, err := DirectOrder(db, testUserID, DirectOrderRequest{
		ProductID:       product.ID,
		Quantity:        1,
		ShippingAddress: "somewhere",
	})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/user/orders/%d", order.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, order.ID, fetched.ID)
}

func TestGetOrderByRef(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	product := seedProduct(t, db, "lookup", 10, 10)

	order, err := DirectOrder(db, testUserID, DirectOrderRequest{
		ProductID:       product.ID,
		Quantity:        1,
		ShippingAddress: "somewhere",
	})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/user/orders/"+order.OrderRef, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, order.OrderRef, fetched.OrderRef)
	assert.Len(t, fetched.Items, 1)
}

func TestUpdateOrderStatus(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	product := seedProduct(t, db, "status", 10, 10)

	order, err := DirectOrder(db, testUserID, DirectOrderRequest{
		ProductID:       product.ID,
		ShippingAddress: "somewhere",
	})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPut, "/admin/orders/1/status", gin.H{"status": "shipped"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Order
	require.NoError(t, db.First(&updated, order.ID).Error)
	assert.Equal(t, models.OrderStatusShipped, updated.Status)
}

func TestUpdateOrderStatusRejectsUnknownValue(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := doJSON(t, r, http.MethodPut, "/admin/orders/1/status", gin.H{"status": "vanished"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePaymentStatusMissingOrder(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := doJSON(t, r, http.MethodPut, "/admin/orders/999/payment-status", gin.H{"payment_status": "paid"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
