package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/xbanking-gateway/internal/logger"
	"github.com/MKhiriev/xbanking-gateway/internal/service"
	"github.com/MKhiriev/xbanking-gateway/models"
	"github.com/stretchr/testify/require"
)

// ---- Fake: AuthService ----

type fakeAuthService struct {
	user models.User
	err  error

	gotInitData string
}

func (f *fakeAuthService) GetUser(_ context.Context, initData string) (models.User, error) {
	f.gotInitData = initData
	return f.user, f.err
}

// ---- Fake: MarketService ----

type fakeMarketService struct {
	resp models.UpstreamResponse
	err  error

	calls       []string
	listQuery   models.NFTListQuery
	searchQuery models.NFTSearchQuery
}

func (f *fakeMarketService) result(call string) (models.UpstreamResponse, error) {
	f.calls = append(f.calls, call)
	return f.resp, f.err
}

func (f *fakeMarketService) GetConfig(context.Context) (models.UpstreamResponse, error) {
	return f.result("config")
}

func (f *fakeMarketService) GetWalletBalance(context.Context) (models.UpstreamResponse, error) {
	return f.result("wallet balance")
}

func (f *fakeMarketService) ListNFTs(_ context.Context, q models.NFTListQuery) (models.UpstreamResponse, error) {
	f.listQuery = q
	return f.result("list nfts")
}

func (f *fakeMarketService) SearchNFTs(_ context.Context, q models.NFTSearchQuery) (models.UpstreamResponse, error) {
	f.searchQuery = q
	return f.result("search nfts")
}

func (f *fakeMarketService) GetBackdrops(context.Context) (models.UpstreamResponse, error) {
	return f.result("backdrops")
}

func (f *fakeMarketService) GetUserNFTs(context.Context) (models.UpstreamResponse, error) {
	return f.result("user nfts")
}

// ---- Fake: AppInfoService ----

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string {
	return f.version
}

func (f *fakeAppInfoService) GetHealth(context.Context) models.HealthStatus {
	return models.HealthStatus{
		Status:    "ok",
		Timestamp: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Service:   "xbanking-api",
		Version:   f.version,
	}
}

// ---- Helpers ----

type testDeps struct {
	auth   *fakeAuthService
	market *fakeMarketService
}

func newTestServices() (*service.Services, testDeps) {
	deps := testDeps{
		auth:   &fakeAuthService{},
		market: &fakeMarketService{resp: models.UpstreamResponse{StatusCode: http.StatusOK, Body: json.RawMessage(`{}`)}},
	}

	return &service.Services{
		AuthService:     deps.auth,
		MarketService:   deps.market,
		ReferralService: service.NewReferralService(logger.Nop()),
		WithdrawService: service.NewWithdrawService(logger.Nop()),
		AppInfoService:  &fakeAppInfoService{version: "test-version"},
	}, deps
}

func newTestRouter(t *testing.T, opts ...Option) (http.Handler, testDeps) {
	t.Helper()
	services, deps := newTestServices()
	return NewHandler(services, logger.Nop(), opts...).Init(), deps
}

func newRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

func do(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func serve(router http.Handler, method, target string) *httptest.ResponseRecorder {
	return do(router, newRequest(method, target))
}

func decodeDetail(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp.Detail
}
