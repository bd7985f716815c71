package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/greenloop/reports-service/internal/export"
	"github.com/greenloop/reports-service/internal/model"
	"github.com/greenloop/reports-service/internal/report"
	"github.com/greenloop/reports-service/internal/service"
)

type Handler struct {
	reports      *service.ReportService
	orchestrator *export.Orchestrator
	log          zerolog.Logger
}

func NewHandler(reports *service.ReportService, orchestrator *export.Orchestrator, log zerolog.Logger) *Handler {
	return &Handler{reports: reports, orchestrator: orchestrator, log: log}
}

type reportRequest struct {
	ReportType string `json:"report_type" binding:"required"`
	Format     string `json:"format"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Area       string `json:"area"`
	WasteType  string `json:"waste_type"`
	Title      string `json:"title"`
}

// generateReport is the on-screen path: the report plus its derived KPIs and
// chart series in one payload.
func (h *Handler) generateReport(c *gin.Context) {
	_, reportType, filter, ok := h.bindRequest(c)
	if !ok {
		return
	}

	result, err := h.reports.Create(c.Request.Context(), reportType, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"report": result,
		"kpis":   report.DeriveKPIs(result),
		"charts": report.DeriveChartSeries(result),
	})
}

// exportReport renders the report in the requested format and returns the
// delivered bytes as a download.
func (h *Handler) exportReport(c *gin.Context) {
	req, reportType, filter, ok := h.bindRequest(c)
	if !ok {
		return
	}

	format := model.FormatPDF
	if req.Format != "" {
		parsed, ok := model.ParseExportFormat(req.Format)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid format"})
			return
		}
		format = parsed
	}

	result, err := h.reports.Create(c.Request.Context(), reportType, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	delivery, err := h.orchestrator.Export(c.Request.Context(), format, result, filter, req.Title)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+delivery.FileName+"\"")
	c.Data(http.StatusOK, delivery.ContentType, delivery.Content)
}

func (h *Handler) bindRequest(c *gin.Context) (reportRequest, model.ReportType, model.Filter, bool) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, "", model.Filter{}, false
	}

	reportType, ok := model.ParseReportType(req.ReportType)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported report type"})
		return req, "", model.Filter{}, false
	}

	filter := model.Filter{Area: strings.TrimSpace(req.Area), WasteType: strings.TrimSpace(req.WasteType)}
	if req.StartDate != "" || req.EndDate != "" {
		start, err := parseDate(req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
			return req, "", model.Filter{}, false
		}
		end, err := parseDate(req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date"})
			return req, "", model.Filter{}, false
		}
		filter.DateRange = &model.DateRange{Start: start, End: end}
	}

	return req, reportType, filter, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnsupportedReportType):
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported report type"})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, export.ErrExportFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": "export failed"})
	default:
		h.log.Error().Err(err).Msg("report request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}
