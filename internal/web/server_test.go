package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/pharmacatalog/internal/config"
	"github.com/JonMunkholm/pharmacatalog/internal/core"
	"github.com/JonMunkholm/pharmacatalog/internal/store"
	mw "github.com/JonMunkholm/pharmacatalog/internal/web/middleware"
)

const testPassword = "anandpharma2024"

func testConfig() *config.Config {
	return &config.Config{
		Server:   config.ServerConfig{RequestTimeout: 5 * time.Second},
		Upload:   config.UploadConfig{MaxFileSize: 1 << 20},
		Rate:     config.RateLimitConfig{Enabled: false},
		Security: config.SecurityConfig{AdminPassword: testPassword, EnableCSP: true},
		Metrics:  config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()
	local, err := store.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	gw, err := store.NewGateway(store.Config{Local: local})
	require.NoError(t, err)

	srv := NewServer(core.NewService(gw, core.ServiceOptions{}), cfg)
	t.Cleanup(func() { _ = srv.Shutdown(t.Context()) })
	return srv
}

func do(t *testing.T, srv *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func uploadRequest(t *testing.T, fileName, content, password string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mpw := multipart.NewWriter(&body)
	if fileName != "" {
		part, err := mpw.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mpw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", &body)
	req.Header.Set("Content-Type", mpw.FormDataContentType())
	if password != "" {
		req.Header.Set(mw.PasswordHeader, password)
	}
	return req
}

const validCSV = "PRODUCT,UNIT,COMPANY FULL NAME\n" +
	"ENSURE VAN,400GM,ABBOTT HEALTH(NUT)\n" +
	"PROTINEX,2+1 OFFER,DANONE\n" +
	"SENSODYNE,70GM,GSK CONSUMER\n"

func TestCatalogPage_ServesSeed(t *testing.T) {
	srv := newTestServer(t, testConfig())

	rec := do(t, srv, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))

	body := rec.Body.String()
	assert.Contains(t, body, "ENSURE CH-RF")
	assert.Contains(t, body, "sample data")
	assert.Contains(t, body, "Showing 1-24 of 75 products")
	assert.Contains(t, body, `aria-current="page">1<`)
}

func TestCatalogPage_EscapesInput(t *testing.T) {
	srv := newTestServer(t, testConfig())

	rec := do(t, srv, httptest.NewRequest(http.MethodGet, "/?q="+url.QueryEscape(`"><script>x</script>`), nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<script>x</script>")
	assert.Contains(t, rec.Body.String(), "No products found")
}

func TestListProducts(t *testing.T) {
	srv := newTestServer(t, testConfig())

	rec := do(t, srv, httptest.NewRequest(http.MethodGet, "/api/products?q=colgate", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[productsResponse](t, rec)
	assert.Equal(t, "seed", resp.Source.String())
	require.NotEmpty(t, resp.Items)
	for _, p := range resp.Items {
		assert.Contains(t, strings.ToLower(p.Name+" "+p.Company), "colgate")
	}
}

func TestListProducts_PaginationAndReset(t *testing.T) {
	srv := newTestServer(t, testConfig())

	rec := do(t, srv, httptest.NewRequest(http.MethodGet, "/api/products?page=99&pageSize=10", nil))
	resp := decode[productsResponse](t, rec)
	assert.Equal(t, 8, resp.TotalPages)
	assert.Equal(t, 8, resp.Page, "page clamps to the last page")
	assert.Equal(t, 71, resp.First)
	assert.Equal(t, 75, resp.Last)

	rec = do(t, srv, httptest.NewRequest(http.MethodGet, "/api/products?page=3&pageSize=10&q=e&prev_q=", nil))
	resp = decode[productsResponse](t, rec)
	assert.Equal(t, 1, resp.Page, "changed filters reset to page 1")

	rec = do(t, srv, httptest.NewRequest(http.MethodGet, "/api/products?page=2&pageSize=10&q=e&prev_q=e", nil))
	resp = decode[productsResponse](t, rec)
	assert.Equal(t, 2, resp.Page)
}

func TestListProducts_CategorySentinel(t *testing.T) {
	srv := newTestServer(t, testConfig())

	all := decode[productsResponse](t, do(t, srv,
		httptest.NewRequest(http.MethodGet, "/api/products?category="+url.QueryEscape(core.AllCategories), nil)))
	assert.Equal(t, 75, all.TotalCount)

	oral := decode[productsResponse](t, do(t, srv,
		httptest.NewRequest(http.MethodGet, "/api/products?pageSize=100&category="+url.QueryEscape(core.CategoryOralCare), nil)))
	require.NotZero(t, oral.TotalCount)
	for _, p := range oral.Items {
		assert.Equal(t, core.CategoryOralCare, p.Category)
	}
}

func TestListCategoriesAndCompanies(t *testing.T) {
	srv := newTestServer(t, testConfig())

	cats := decode[map[string][]string](t, do(t, srv, httptest.NewRequest(http.MethodGet, "/api/categories", nil)))
	assert.Equal(t, core.Categories(), cats["categories"])

	companies := decode[map[string][]string](t, do(t, srv, httptest.NewRequest(http.MethodGet, "/api/companies", nil)))
	assert.Contains(t, companies["companies"], "COLGATE")
	assert.IsNonDecreasing(t, companies["companies"])
}

func TestUpload_Success(t *testing.T) {
	srv := newTestServer(t, testConfig())

	rec := do(t, srv, uploadRequest(t, "stock.csv", validCSV, testPassword))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	result := decode[core.UploadResult](t, rec)
	assert.Equal(t, 3, result.Count)
	assert.Equal(t, "Successfully uploaded 3 products to local storage", result.Message)

	resp := decode[productsResponse](t, do(t, srv, httptest.NewRequest(http.MethodGet, "/api/products", nil)))
	assert.Equal(t, "local", resp.Source.String())
	require.Len(t, resp.Items, 3)
	assert.Equal(t, core.CategoryNutrition, resp.Items[0].Category)
	assert.Equal(t, "400g", resp.Items[0].DisplayUnit)
	assert.True(t, resp.Items[1].SpecialOffer)
	assert.True(t, resp.Items[1].Promotion)
	assert.Equal(t, core.CategoryOralCare, resp.Items[2].Category)
}

func TestUpload_Errors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		password string
		status   int
		code     string
	}{
		{"missing password", "stock.csv", validCSV, "", http.StatusUnauthorized, "AUTH001"},
		{"wrong password", "stock.csv", validCSV, "guess", http.StatusForbidden, "AUTH002"},
		{"no file", "", "", testPassword, http.StatusBadRequest, "FILE002"},
		{"unsupported type", "stock.txt", validCSV, testPassword, http.StatusUnsupportedMediaType, "VAL003"},
		{"unreadable workbook", "stock.xlsx", "not a zip", testPassword, http.StatusBadRequest, "VAL004"},
		{"missing company", "stock.csv", "PRODUCT,UNIT\nENSURE,400GM\n", testPassword, http.StatusUnprocessableEntity, "VAL001"},
		{"header only", "stock.csv", "PRODUCT,UNIT,COMPANY FULL NAME\n", testPassword, http.StatusUnprocessableEntity, "VAL002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, testConfig())

			rec := do(t, srv, uploadRequest(t, tt.file, tt.content, tt.password))
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())

			resp := decode[ErrorResponse](t, rec)
			assert.Equal(t, tt.code, resp.Code)

			// A rejected upload never changes the catalog.
			after := decode[productsResponse](t, do(t, srv, httptest.NewRequest(http.MethodGet, "/api/products", nil)))
			assert.Equal(t, "seed", after.Source.String())
		})
	}
}

func TestUpload_ValidationMessageIsVerbatim(t *testing.T) {
	srv := newTestServer(t, testConfig())

	rec := do(t, srv, uploadRequest(t, "stock.csv", "PRODUCT,COMPANY FULL NAME\nA,B\n,C\n", testPassword))
	resp := decode[ErrorResponse](t, rec)
	assert.Equal(t, "row 2: missing required columns: PRODUCT, COMPANY FULL NAME", resp.Message)
}

func TestUpload_LegacyWorkbook(t *testing.T) {
	srv := newTestServer(t, testConfig())

	ole := string([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}) + strings.Repeat("\x00", 64)
	rec := do(t, srv, uploadRequest(t, "stock.xls", ole, testPassword))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decode[ErrorResponse](t, rec)
	assert.Equal(t, "VAL004", resp.Code)
	assert.Contains(t, resp.Action, "save as .xlsx")
}

func TestUploadFailure_TimeoutInPrimaryWrite(t *testing.T) {
	err := fmt.Errorf("store catalog: %w", &store.PrimaryError{
		Backend: "postgres", Op: "insert", Done: 3, Total: 10, Err: context.DeadlineExceeded,
	})

	assert.Equal(t, http.StatusGatewayTimeout, uploadStatus(err))
	assert.Equal(t, "UPL002", core.MapError(err).Code)
}

func TestUpload_TooLarge(t *testing.T) {
	cfg := testConfig()
	cfg.Upload.MaxFileSize = 16
	srv := newTestServer(t, cfg)

	rec := do(t, srv, uploadRequest(t, "stock.csv", validCSV, testPassword))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "FILE001", decode[ErrorResponse](t, rec).Code)
}

func TestLogin(t *testing.T) {
	srv := newTestServer(t, testConfig())

	tests := []struct {
		name   string
		body   string
		ctype  string
		status int
	}{
		{"json ok", `{"password":"anandpharma2024"}`, "application/json", http.StatusOK},
		{"form ok", "password=anandpharma2024", "application/x-www-form-urlencoded", http.StatusOK},
		{"json wrong", `{"password":"nope"}`, "application/json", http.StatusForbidden},
		{"empty", `{}`, "application/json", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.ctype)
			rec := do(t, srv, req)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestStatusHealthAndMetrics(t *testing.T) {
	srv := newTestServer(t, testConfig())

	status := decode[map[string]any](t, do(t, srv, httptest.NewRequest(http.MethodGet, "/api/status", nil)))
	assert.Equal(t, false, status["primaryReady"])
	assert.Equal(t, "local", status["writeTarget"])
	assert.Equal(t, "seed", status["readSource"])
	assert.EqualValues(t, 75, status["count"])

	health := do(t, srv, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, health.Code)

	metricsRec := do(t, srv, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, metricsRec.Code)
}

func TestAdminPage(t *testing.T) {
	srv := newTestServer(t, testConfig())

	rec := do(t, srv, httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Uploads go to local storage")
	assert.Contains(t, rec.Body.String(), mw.PasswordHeader)
}

func TestRateLimiter(t *testing.T) {
	rl := newRateLimiter(2, time.Minute)
	defer rl.stop()

	assert.True(t, rl.allow("1.1.1.1"))
	assert.True(t, rl.allow("1.1.1.1"))
	assert.False(t, rl.allow("1.1.1.1"))
	assert.True(t, rl.allow("2.2.2.2"), "limits are per client")
}

func TestRateLimitedResponse(t *testing.T) {
	cfg := testConfig()
	cfg.Rate = config.RateLimitConfig{Enabled: true, RequestsPerMinute: 1, UploadLimit: 1, LoginLimit: 1}
	srv := newTestServer(t, cfg)

	first := do(t, srv, httptest.NewRequest(http.MethodGet, "/api/categories", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := do(t, srv, httptest.NewRequest(http.MethodGet, "/api/categories", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "RATE001", decode[ErrorResponse](t, second).Code)
}
