package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/greenloop/reports-service/internal/auth"
	"github.com/greenloop/reports-service/internal/export"
	"github.com/greenloop/reports-service/internal/http/middleware"
	"github.com/greenloop/reports-service/internal/model"
	"github.com/greenloop/reports-service/internal/service"
	"github.com/greenloop/reports-service/internal/share"
	"github.com/greenloop/reports-service/internal/store"
)

const testSecret = "handler-test-secret"

type fakeAccounts map[string]*model.Account

func (f fakeAccounts) FetchUser(_ context.Context, id string) (*model.Account, error) {
	if account, ok := f[id]; ok {
		return account, nil
	}
	return nil, store.ErrAccountNotFound
}

type fakeSource struct {
	collections []model.CollectionRecord
	schedules   []model.ScheduleRecord
}

func (f *fakeSource) FetchCollections(_ context.Context) ([]model.CollectionRecord, error) {
	return f.collections, nil
}

func (f *fakeSource) FetchSchedules(_ context.Context) ([]model.ScheduleRecord, error) {
	return f.schedules, nil
}

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	log := zerolog.Nop()

	source := &fakeSource{
		collections: []model.CollectionRecord{
			{ID: "c1", Address: "1 Oak St, North, Metro", WasteType: "Organic", TotalWeight: "100.5", TotalCost: "40", Status: model.PaymentPaid},
		},
		schedules: []model.ScheduleRecord{
			{ID: "s1", Status: model.ScheduleScheduled},
		},
	}

	reports := service.NewReportService(source, log)
	orchestrator := export.NewOrchestrator(share.NewFilePrinter(t.TempDir()), share.NewLogSharer(log), log)

	accounts := fakeAccounts{
		"admin-1": {ID: "admin-1", Role: "admin"},
		"user-1":  {ID: "user-1", Role: "customer"},
	}
	gate := auth.NewGate(auth.NewParser(testSecret), accounts, "admin")

	handler := NewHandler(reports, orchestrator, log)
	return NewRouter(handler, middleware.Auth(gate), "test")
}

func bearerFor(t *testing.T, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return "Bearer " + signed
}

func doRequest(t *testing.T, router http.Handler, path, authHeader, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestReports_RequiresSignIn(t *testing.T) {
	router := testRouter(t)
	rec := doRequest(t, router, "/reports", "", `{"report_type":"waste-generation"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestReports_RequiresAdminRole(t *testing.T) {
	router := testRouter(t)
	rec := doRequest(t, router, "/reports", bearerFor(t, "user-1"), `{"report_type":"waste-generation"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestReports_UnknownAccount(t *testing.T) {
	router := testRouter(t)
	rec := doRequest(t, router, "/reports", bearerFor(t, "ghost"), `{"report_type":"waste-generation"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestReports_GeneratesPayload(t *testing.T) {
	router := testRouter(t)
	rec := doRequest(t, router, "/reports", bearerFor(t, "admin-1"), `{"report_type":"waste-generation"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Report model.Report `json:"report"`
		KPIs   []model.KPI  `json:"kpis"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Report.Type != model.ReportWasteGeneration {
		t.Fatalf("report type = %q", payload.Report.Type)
	}
	if len(payload.KPIs) != 3 {
		t.Fatalf("got %d KPIs, want 3", len(payload.KPIs))
	}
	if payload.KPIs[0].Value != "100.5" {
		t.Fatalf("first KPI = %q, want 100.5", payload.KPIs[0].Value)
	}
}

func TestReports_UnsupportedType(t *testing.T) {
	router := testRouter(t)
	rec := doRequest(t, router, "/reports", bearerFor(t, "admin-1"), `{"report_type":"user-activity"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestExport_CSVDownload(t *testing.T) {
	router := testRouter(t)
	rec := doRequest(t, router, "/reports/export", bearerFor(t, "admin-1"),
		`{"report_type":"waste-generation","format":"csv"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("content type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Fatalf("content disposition = %q", cd)
	}
	if !strings.Contains(rec.Body.String(), "North,All,1,100.5,100.5") {
		t.Fatalf("unexpected csv body:\n%s", rec.Body.String())
	}
}

func TestExport_InvalidDateRange(t *testing.T) {
	router := testRouter(t)
	rec := doRequest(t, router, "/reports/export", bearerFor(t, "admin-1"),
		`{"report_type":"waste-generation","format":"csv","start_date":"soon","end_date":"later"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
