package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/northhaul/northhaul-backend/internal/admins"
	"github.com/northhaul/northhaul-backend/internal/auth"
	"github.com/northhaul/northhaul-backend/internal/blog"
	"github.com/northhaul/northhaul-backend/internal/jobs"
	"github.com/northhaul/northhaul-backend/internal/orders"
	"github.com/northhaul/northhaul-backend/internal/products"
	"github.com/northhaul/northhaul-backend/internal/stats"
	"github.com/northhaul/northhaul-backend/internal/testimonials"
	"github.com/northhaul/northhaul-backend/internal/warehouse"
	"github.com/northhaul/northhaul-backend/pkg/auth/session"
	"github.com/northhaul/northhaul-backend/pkg/config"
	"github.com/northhaul/northhaul-backend/pkg/db"
	"github.com/northhaul/northhaul-backend/pkg/db/models"
	"github.com/northhaul/northhaul-backend/pkg/security"
)

type testAPI struct {
	handler http.Handler
	cfg     *config.Config
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	client, err := db.New(context.Background(), config.DBConfig{DSN: dsn, Driver: "sqlite"}, nil)
	require.NoError(t, err)
	require.NoError(t, client.DB().AutoMigrate(
		&models.Job{}, &models.JobApplication{},
		&models.BlogPost{}, &models.Testimonial{},
		&models.Product{}, &models.Order{}, &models.OrderItem{},
		&models.WarehouseRequest{}, &models.AdminUser{},
	))

	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.Session.CookieName = "northhaul_admin_session"
	cfg.Stats = config.StatsConfig{JobsBaseline: 734, EmployersBaseline: 370, HiredBaseline: 1485}

	manager, err := session.NewManager(session.NewMemoryStore(), cfg.Session)
	require.NoError(t, err)

	adminRepo := admins.NewRepository(client.DB())
	hash, err := security.HashPassword("dispatch-window-42", config.PasswordConfig{BcryptCost: 4})
	require.NoError(t, err)
	_, err = adminRepo.Create(context.Background(), &models.AdminUser{Username: "admin", PasswordHash: hash})
	require.NoError(t, err)

	authSvc, err := auth.NewService(adminRepo, manager)
	require.NoError(t, err)

	jobRepo := jobs.NewRepository(client.DB())
	jobSvc, err := jobs.NewService(jobRepo)
	require.NoError(t, err)

	blogSvc, err := blog.NewService(blog.NewRepository(client.DB()))
	require.NoError(t, err)

	testimonialSvc, err := testimonials.NewService(testimonials.NewRepository(client.DB()))
	require.NoError(t, err)

	productRepo := products.NewRepository(client.DB())
	productSvc, err := products.NewService(productRepo)
	require.NoError(t, err)

	orderSvc, err := orders.NewService(orders.NewRepository(client.DB()), productRepo, client)
	require.NoError(t, err)

	warehouseSvc, err := warehouse.NewService(warehouse.NewRepository(client.DB()))
	require.NoError(t, err)

	statsSvc, err := stats.NewService(jobRepo, orderSvc, warehouseSvc, cfg.Stats)
	require.NoError(t, err)

	handler := NewRouter(cfg, nil, client, nil, manager, Services{
		Auth:         authSvc,
		Jobs:         jobSvc,
		Blog:         blogSvc,
		Testimonials: testimonialSvc,
		Products:     productSvc,
		Orders:       orderSvc,
		Warehouse:    warehouseSvc,
		Stats:        statsSvc,
	})

	return &testAPI{handler: handler, cfg: cfg}
}

func (a *testAPI) do(t *testing.T, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp := httptest.NewRecorder()
	a.handler.ServeHTTP(resp, req)
	return resp
}

func (a *testAPI) login(t *testing.T) *http.Cookie {
	t.Helper()

	resp := a.do(t, http.MethodPost, "/api/admin/login", map[string]string{
		"username": "admin",
		"password": "dispatch-window-42",
	}, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	for _, cookie := range resp.Result().Cookies() {
		if cookie.Name == a.cfg.Session.CookieName {
			return cookie
		}
	}
	t.Fatal("login response did not set the session cookie")
	return nil
}

func decodeData(t *testing.T, resp *httptest.ResponseRecorder, dest any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, dest))
}

func TestAdminRoutesRequireSession(t *testing.T) {
	api := newTestAPI(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/jobs/pending"},
		{http.MethodPost, "/api/jobs/"},
		{http.MethodGet, "/api/applications"},
		{http.MethodGet, "/api/admin/blog/"},
		{http.MethodPost, "/api/testimonials/"},
		{http.MethodPost, "/api/products/"},
		{http.MethodGet, "/api/orders/"},
		{http.MethodGet, "/api/warehouse/requests/"},
		{http.MethodGet, "/api/admin/stats"},
		{http.MethodPost, "/api/admin/logout"},
	}
	for _, route := range paths {
		resp := api.do(t, route.method, route.path, nil, nil)
		require.Equalf(t, http.StatusUnauthorized, resp.Code, "%s %s", route.method, route.path)
	}
}

func TestLoginResponseOmitsHash(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(t, http.MethodPost, "/api/admin/login", map[string]string{
		"username": "admin",
		"password": "dispatch-window-42",
	}, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	require.NotContains(t, strings.ToLower(resp.Body.String()), "hash")
	require.NotContains(t, resp.Body.String(), "password")

	var data map[string]string
	decodeData(t, resp, &data)
	require.Equal(t, "admin", data["username"])
	require.NotEmpty(t, data["id"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(t, http.MethodPost, "/api/admin/login", map[string]string{
		"username": "admin",
		"password": "wrong",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestModerationFlowEndToEnd(t *testing.T) {
	api := newTestAPI(t)
	cookie := api.login(t)

	// public submission lands in moderation
	resp := api.do(t, http.MethodPost, "/api/jobs/submit", map[string]any{
		"title":       "Freight Coordinator",
		"description": "Coordinate inbound and outbound freight schedules.",
		"location":    "Toronto, ON",
		"company":     "Northern Lines",
		"type":        "Full-Time",
		"category":    "Logistics",
	}, nil)
	require.Equal(t, http.StatusCreated, resp.Code)

	var created map[string]string
	decodeData(t, resp, &created)
	jobID := created["jobId"]
	require.NotEmpty(t, jobID)

	resp = api.do(t, http.MethodGet, "/api/jobs/", nil, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var publicJobs []models.Job
	decodeData(t, resp, &publicJobs)
	require.Empty(t, publicJobs)

	resp = api.do(t, http.MethodGet, "/api/jobs/pending", nil, cookie)
	require.Equal(t, http.StatusOK, resp.Code)
	var pending []models.Job
	decodeData(t, resp, &pending)
	require.Len(t, pending, 1)

	resp = api.do(t, http.MethodPatch, "/api/jobs/"+jobID+"/status", map[string]string{"status": "approved"}, cookie)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = api.do(t, http.MethodGet, "/api/jobs/", nil, nil)
	decodeData(t, resp, &publicJobs)
	require.Len(t, publicJobs, 1)

	// repeating the decision is an illegal transition
	resp = api.do(t, http.MethodPatch, "/api/jobs/"+jobID+"/status", map[string]string{"status": "pending"}, cookie)
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestCheckoutEndToEnd(t *testing.T) {
	api := newTestAPI(t)
	cookie := api.login(t)

	resp := api.do(t, http.MethodPost, "/api/products/", map[string]any{
		"name":        "Pallet Wrap",
		"description": "Industrial stretch film.",
		"price":       "24.99",
		"category":    "Packaging",
		"stock":       5,
		"published":   true,
	}, cookie)
	require.Equal(t, http.StatusCreated, resp.Code)
	var product models.Product
	decodeData(t, resp, &product)

	// client-supplied price is ignored by checkout
	resp = api.do(t, http.MethodPost, "/api/orders/", map[string]any{
		"customerName":    "Dana Whitfield",
		"customerEmail":   "dana@prairiefoods.example",
		"shippingAddress": "400 Industrial Rd, Winnipeg, MB",
		"items": []map[string]any{
			{"productId": product.ID.String(), "quantity": 2},
		},
	}, nil)
	require.Equal(t, http.StatusCreated, resp.Code)
	var order models.Order
	decodeData(t, resp, &order)
	require.Equal(t, "49.98", order.Total)

	// shortage is a 400, not a 409
	resp = api.do(t, http.MethodPost, "/api/orders/", map[string]any{
		"customerName":    "Dana Whitfield",
		"customerEmail":   "dana@prairiefoods.example",
		"shippingAddress": "400 Industrial Rd, Winnipeg, MB",
		"items": []map[string]any{
			{"productId": product.ID.String(), "quantity": 10},
		},
	}, nil)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Contains(t, resp.Body.String(), product.ID.String())
}

func TestBlogPublicAndAdminSurfaces(t *testing.T) {
	api := newTestAPI(t)
	cookie := api.login(t)

	resp := api.do(t, http.MethodPost, "/api/admin/blog/", map[string]any{
		"title":     "Cold Chain Basics",
		"excerpt":   "What refrigerated freight demands.",
		"content":   "Temperature-controlled shipping starts with the right trailer.",
		"published": false,
	}, cookie)
	require.Equal(t, http.StatusCreated, resp.Code)
	var post models.BlogPost
	decodeData(t, resp, &post)
	require.Equal(t, "cold-chain-basics", post.Slug)

	// drafts are public 404s
	resp = api.do(t, http.MethodGet, "/api/blog/"+post.Slug, nil, nil)
	require.Equal(t, http.StatusNotFound, resp.Code)

	resp = api.do(t, http.MethodPatch, "/api/admin/blog/"+post.ID.String(), map[string]any{"published": true}, cookie)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = api.do(t, http.MethodGet, "/api/blog/"+post.Slug, nil, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	// duplicate slug conflicts
	resp = api.do(t, http.MethodPost, "/api/admin/blog/", map[string]any{
		"title":   "Cold Chain Basics",
		"excerpt": "Duplicate.",
		"content": "Duplicate.",
	}, cookie)
	require.Equal(t, http.StatusConflict, resp.Code)
}

func TestPublicStatsEndpoint(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(t, http.MethodGet, "/api/stats", nil, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var data map[string]int64
	decodeData(t, resp, &data)
	require.EqualValues(t, 734, data["jobs"])
	require.EqualValues(t, 370, data["employers"])
	require.EqualValues(t, 1485, data["hired"])
}

func TestLogoutRevokesCookieSession(t *testing.T) {
	api := newTestAPI(t)
	cookie := api.login(t)

	resp := api.do(t, http.MethodPost, "/api/admin/logout", nil, cookie)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = api.do(t, http.MethodGet, "/api/admin/stats", nil, cookie)
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestHealthEndpoints(t *testing.T) {
	api := newTestAPI(t)

	resp := api.do(t, http.MethodGet, "/health/live", nil, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = api.do(t, http.MethodGet, "/health/ready", nil, nil)
	require.Equal(t, http.StatusOK, resp.Code)
}
