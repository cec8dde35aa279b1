package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"techshop/internal/auth"
	"techshop/internal/config"
	apperrors "techshop/internal/errors"
	"techshop/internal/events"
	"techshop/internal/handler"
	"techshop/internal/model"
	"techshop/internal/repository"
	"techshop/internal/service"
)

type testServer struct {
	e   *echo.Echo
	jwt *auth.JWTService
	db  *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithConfig(t, &config.Config{AllowedOrigins: []string{"*"}})
}

func newTestServerWithConfig(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(model.All()...))

	log := zerolog.Nop()
	jwtService := auth.NewJWTService("test-secret", time.Hour)

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	authService := service.NewAuthService(userRepo, jwtService, auth.NewLoginLimiter(nil, 5, time.Minute), log)
	userService := service.NewUserService(userRepo, orderRepo)
	catalogService := service.NewCatalogService(productRepo, nil, log)
	orderService := service.NewOrderService(orderRepo, productRepo, events.NopPublisher{}, log)

	e := echo.New()
	Register(e, cfg, log, jwtService,
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService),
		handler.NewProductHandler(catalogService),
		handler.NewOrderHandler(orderService, userService),
		handler.NewPaymentHandler(),
		handler.NewSeedHandler(catalogService, service.SeedPolicyReset),
	)
	return &testServer{e: e, jwt: jwtService, db: db}
}

func (s *testServer) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) login(email, password string) *httptest.ResponseRecorder {
	form := url.Values{"username": {email}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) register(t *testing.T, email, password string) string {
	t.Helper()
	rec := s.do(http.MethodPost, "/auth/register", fmt.Sprintf(`{"email":%q,"name":"Test User","password":%q}`, email, password), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var tok handler.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tok))
	assert.Equal(t, "bearer", tok.TokenType)
	return tok.AccessToken
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apperrors.ErrorResponse {
	t.Helper()
	var body apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func TestRoot(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","message":"TechShop API is running"}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/healthz", "", "")
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRegister(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "ana@example.com", "secret123")

	sub, err := s.jwt.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", sub)

	rec := s.do(http.MethodPost, "/auth/register", `{"email":"ana@example.com","name":"Again","password":"other"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "EMAIL_ALREADY_REGISTERED", decodeError(t, rec).Code)

	invalid := []struct {
		name string
		body string
	}{
		{"bad email", `{"email":"not-an-email","name":"Ana","password":"x"}`},
		{"missing name", `{"email":"bob@example.com","password":"secret123"}`},
		{"empty name", `{"email":"bob@example.com","name":"","password":"secret123"}`},
		{"missing password", `{"email":"bob@example.com","name":"Bob"}`},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(http.MethodPost, "/auth/register", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_ERROR", decodeError(t, rec).Code)
		})
	}

	assert.Equal(t, http.StatusUnauthorized, s.login("bob@example.com", "secret123").Code)
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "ana@example.com", "secret123")

	rec := s.login("ana@example.com", "secret123")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var tok handler.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tok))
	assert.NotEmpty(t, tok.AccessToken)

	wrong := s.login("ana@example.com", "nope")
	unknown := s.login("nobody@example.com", "secret123")
	for _, rec := range []*httptest.ResponseRecorder{wrong, unknown} {
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
	}
	assert.Equal(t, decodeError(t, wrong), decodeError(t, unknown))
	assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, wrong).Code)

	jsonLogin := s.do(http.MethodPost, "/auth/login", `{"username":"ana@example.com","password":"secret123"}`, "")
	assert.Equal(t, http.StatusOK, jsonLogin.Code)
}

func TestSecuredRoutes_TokenErrors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name     string
		token    string
		wantCode string
	}{
		{"missing", "", "UNAUTHENTICATED"},
		{"garbage", "not-a-jwt", "INVALID_TOKEN"},
		{"foreign signature", func() string {
			tok, _ := auth.NewJWTService("other-secret", time.Hour).Issue("ana@example.com")
			return tok
		}(), "INVALID_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(http.MethodGet, "/auth/me", "", tt.token)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
		})
	}
}

func TestMe_UnknownSubject(t *testing.T) {
	s := newTestServer(t)
	token, err := s.jwt.Issue("ghost@example.com")
	require.NoError(t, err)

	rec := s.do(http.MethodGet, "/auth/me", "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", decodeError(t, rec).Code)

	rec = s.do(http.MethodPost, "/orders", `{"items":[]}`, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfile_TokenSurvivesPasswordChange(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "ana@example.com", "secret123")

	rec := s.do(http.MethodPut, "/auth/me", `{"name":"Ana María","password":"new-secret"}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var user map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "Ana María", user["name"])
	assert.Equal(t, "ana@example.com", user["email"])
	assert.NotContains(t, user, "password_hash")

	rec = s.do(http.MethodGet, "/auth/me", "", token)
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, http.StatusUnauthorized, s.login("ana@example.com", "secret123").Code)
	assert.Equal(t, http.StatusOK, s.login("ana@example.com", "new-secret").Code)
}

func TestProducts_CreateListAndFilter(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/products", `{"name":"AirPods Max","price":549.99,"description":"Hi-fi","image":"https://img/airpods.jpg","category":"Premium Audio"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"id":1,"name":"AirPods Max","price":549.99,"description":"Hi-fi","image":"https://img/airpods.jpg","category":"Premium Audio"}`, rec.Body.String())

	s.do(http.MethodPost, "/products", `{"name":"Cable","price":9.5,"category":"Audio"}`, "")
	s.do(http.MethodPost, "/products", `{"name":"Speaker","price":99,"category":"audio"}`, "")

	rec = s.do(http.MethodGet, "/products?category=Audio", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var products []model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Cable", products[0].Name)

	rec = s.do(http.MethodGet, "/products?skip=1&limit=1", "", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Cable", products[0].Name)

	rec = s.do(http.MethodGet, "/products?limit=-1", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = s.do(http.MethodGet, "/products?skip=abc", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/products", `{"name":"","price":1}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProducts_CreateRejectsInvalidPrice(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing price", `{"name":"Freebie","category":"Misc"}`},
		{"null price", `{"name":"Freebie","price":null}`},
		{"negative price", `{"name":"Refund","price":-1}`},
		{"three decimals", `{"name":"Cable","price":19.999}`},
		{"too large for the column", `{"name":"Yacht","price":100000000}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(http.MethodPost, "/products", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Equal(t, "VALIDATION_ERROR", decodeError(t, rec).Code)
		})
	}

	var count int64
	require.NoError(t, s.db.Model(&model.Product{}).Count(&count).Error)
	assert.Zero(t, count)

	rec := s.do(http.MethodPost, "/products", `{"name":"Gift Card","price":0}`, "")
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestOrders_PlaceListAndActivity(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "ana@example.com", "secret123")
	s.do(http.MethodPost, "/products", `{"name":"Mouse","price":99.99,"category":"Laptops & Work"}`, "")
	s.do(http.MethodPost, "/products", `{"name":"Hub","price":59.99,"category":"Laptops & Work"}`, "")

	rec := s.do(http.MethodGet, "/auth/me/activity", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_orders":0`)
	assert.Contains(t, rec.Body.String(), `"last_order_date":null`)

	rec = s.do(http.MethodPost, "/orders", `{"items":[{"product_id":1,"quantity":2},{"product_id":999,"quantity":1},{"product_id":2,"quantity":1}]}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var order model.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, model.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 2)
	assert.True(t, decimal.RequireFromString("259.97").Equal(order.TotalPrice), order.TotalPrice.String())

	s.do(http.MethodPost, "/orders", `{"items":[{"product_id":2,"quantity":1}]}`, token)

	rec = s.do(http.MethodGet, "/orders/me", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []model.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 2)
	assert.Greater(t, orders[0].ID, orders[1].ID)
	assert.Len(t, orders[1].Items, 2)

	rec = s.do(http.MethodGet, "/auth/me/activity", "", token)
	assert.Contains(t, rec.Body.String(), `"total_orders":2`)

	rec = s.do(http.MethodPost, "/orders", `{"items":[{"product_id":1,"quantity":0}]}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeError(t, rec).Code)

	rec = s.do(http.MethodPost, "/orders", `{"items":[]}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrders_PriceIsSnapshotAtPurchase(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "ana@example.com", "secret123")
	s.do(http.MethodPost, "/products", `{"name":"Mouse","price":99.99,"category":"Laptops & Work"}`, "")

	rec := s.do(http.MethodPost, "/orders", `{"items":[{"product_id":1,"quantity":2}]}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.NoError(t, s.db.Model(&model.Product{}).Where("id = ?", 1).
		Update("price", decimal.RequireFromString("1.00")).Error)

	rec = s.do(http.MethodGet, "/products", "", "")
	var products []model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.True(t, decimal.RequireFromString("1.00").Equal(products[0].Price), products[0].Price.String())

	rec = s.do(http.MethodGet, "/orders/me", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []model.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 1)
	assert.True(t, decimal.RequireFromString("99.99").Equal(orders[0].Items[0].Price), orders[0].Items[0].Price.String())
	assert.True(t, decimal.RequireFromString("199.98").Equal(orders[0].TotalPrice), orders[0].TotalPrice.String())
}

func TestOrders_ClientPriceIsIgnored(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "ana@example.com", "secret123")
	s.do(http.MethodPost, "/products", `{"name":"Hub","price":59.99,"category":"Laptops & Work"}`, "")

	rec := s.do(http.MethodPost, "/orders", `{"items":[{"product_id":1,"quantity":3,"price":0.01}],"total_price":0.03}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var order model.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	require.Len(t, order.Items, 1)
	assert.True(t, decimal.RequireFromString("59.99").Equal(order.Items[0].Price), order.Items[0].Price.String())
	assert.True(t, decimal.RequireFromString("179.97").Equal(order.TotalPrice), order.TotalPrice.String())

	rec = s.do(http.MethodGet, "/orders/me", "", token)
	var orders []model.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.True(t, decimal.RequireFromString("59.99").Equal(orders[0].Items[0].Price))
}

func TestCORS_Credentials(t *testing.T) {
	tests := []struct {
		name            string
		origins         []string
		wantAllowOrigin string
		wantCredentials string
	}{
		{"wildcard never allows credentials", []string{"*"}, "*", ""},
		{"explicit origin allows credentials", []string{"https://shop.example.com"}, "https://shop.example.com", "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServerWithConfig(t, &config.Config{AllowedOrigins: tt.origins})
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(echo.HeaderOrigin, "https://shop.example.com")
			rec := httptest.NewRecorder()
			s.e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantAllowOrigin, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
			assert.Equal(t, tt.wantCredentials, rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
		})
	}
}

func TestPayments_ComingSoon(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(http.MethodPost, "/payments", `{"order_id":3,"amount":259.97}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"coming_soon","message":"Payment gateway integration coming soon","data":{"order_id":3,"amount":259.97}}`, rec.Body.String())

	rec = s.do(http.MethodPost, "/payments", `{"order_id":3}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSeedProducts(t *testing.T) {
	s := newTestServer(t)
	s.do(http.MethodPost, "/products", `{"name":"Leftover","price":1,"category":"Misc"}`, "")

	rec := s.do(http.MethodPost, "/seed_products", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Data seeded successfully","count":32}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/products", "", "")
	var products []model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Len(t, products, 32)

	rec = s.do(http.MethodGet, "/products?category=Mobile%20Gear", "", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Len(t, products, 8)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.do(http.MethodGet, "/", "", "")

	rec := s.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}
