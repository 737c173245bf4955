package screening

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	svc, _ := newScreeningService()
	h := NewHandler(svc)
	e := echo.New()
	return h, e
}

func seedReadings(h *Handler, ref string) {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	h.svc.IngestReading(context.Background(), ref, input(base, 16, 120, "Alert"))
	h.svc.IngestReading(context.Background(), ref, input(base.Add(15*time.Minute), 24, 95, "Drowsy"))
}

func TestHandler_CreateReading(t *testing.T) {
	h, e := newTestHandler()
	body := `{"taken_at":"2025-06-01T08:00:00Z","respiratory_rate":22,"systolic_bp":100,"mental_status":"alert"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("ref")
	c.SetParamValues("bed-4")

	err := h.CreateReading(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"qsofa_score":2`) {
		t.Errorf("expected scored reading in response, got %s", rec.Body.String())
	}
}

func TestHandler_CreateReading_MissingVital(t *testing.T) {
	h, e := newTestHandler()
	body := `{"taken_at":"2025-06-01T08:00:00Z","systolic_bp":100,"mental_status":"alert"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("ref")
	c.SetParamValues("bed-4")

	if err := h.CreateReading(c); err == nil {
		t.Error("expected error for missing respiratory_rate")
	}
}

func TestHandler_ListReadings(t *testing.T) {
	h, e := newTestHandler()
	seedReadings(h, "bed-4")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("ref")
	c.SetParamValues("bed-4")

	err := h.ListReadings(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"total":2`) {
		t.Errorf("expected paginated envelope with 2 readings, got %s", rec.Body.String())
	}
}

func TestHandler_ListReadings_UnknownPatient(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("ref")
	c.SetParamValues("bed-99")

	if err := h.ListReadings(c); err == nil {
		t.Error("expected error for unknown patient")
	}
}

func TestHandler_GetAlerts(t *testing.T) {
	h, e := newTestHandler()
	seedReadings(h, "bed-4")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("ref")
	c.SetParamValues("bed-4")

	err := h.GetAlerts(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), AlertTypeRiskEscalating) {
		t.Errorf("expected escalation alert in feed, got %s", rec.Body.String())
	}
}

func TestHandler_GetAlerts_UnknownPatient(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("ref")
	c.SetParamValues("bed-99")

	err := h.GetAlerts(c)
	if err == nil {
		t.Fatal("expected error for unknown patient")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestHandler_GetSummary(t *testing.T) {
	h, e := newTestHandler()
	seedReadings(h, "bed-4")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("ref")
	c.SetParamValues("bed-4")

	err := h.GetSummary(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"reading_count":2`) {
		t.Errorf("expected summary stats, got %s", body)
	}
	if !strings.Contains(body, `"alerts"`) || !strings.Contains(body, `"readings"`) {
		t.Errorf("expected combined view, got %s", body)
	}
}

func TestHandler_GetDemo(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.GetDemo(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, DemoPatientLocation) {
		t.Errorf("expected demo patient, got %s", body)
	}
	if !strings.Contains(body, `"qsofa_score":3`) {
		t.Errorf("expected final demo score in response, got %s", body)
	}
}
