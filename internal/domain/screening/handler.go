package screening

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vitalwatch/vitalwatch/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/patients/:ref/readings", h.CreateReading)
	api.GET("/patients/:ref/readings", h.ListReadings)
	api.GET("/patients/:ref/alerts", h.GetAlerts)
	api.GET("/patients/:ref/summary", h.GetSummary)
	api.GET("/demo", h.GetDemo)
}

func (h *Handler) CreateReading(c echo.Context) error {
	var in ReadingInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rd, err := h.svc.IngestReading(c.Request().Context(), c.Param("ref"), &in)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, rd)
}

func (h *Handler) ListReadings(c echo.Context) error {
	p, err := h.svc.GetPatientByRef(c.Request().Context(), c.Param("ref"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListReadingsByPatient(c.Request().Context(), p.ID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetAlerts(c echo.Context) error {
	p, err := h.svc.GetPatientByRef(c.Request().Context(), c.Param("ref"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	alerts, err := h.svc.AlertsForPatient(c.Request().Context(), p.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, alerts)
}

func (h *Handler) GetSummary(c echo.Context) error {
	p, err := h.svc.GetPatientByRef(c.Request().Context(), c.Param("ref"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	summary, err := h.svc.SummarizePatient(c.Request().Context(), p)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, summary)
}

// GetDemo returns the canned deteriorating-patient scenario without
// touching storage. Useful for exercising clients against an empty
// database.
func (h *Handler) GetDemo(c echo.Context) error {
	return c.JSON(http.StatusOK, DemoSummary(time.Now().UTC()))
}
