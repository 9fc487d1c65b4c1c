package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"commission-reporting-api/internal/reporting"
	"commission-reporting-api/internal/services"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"

	csvContentType = "text/csv; charset=utf-8"
)

// ReportHandler serves the monthly reports as JSON or CSV.
type ReportHandler struct {
	reportService services.ReportService
	logger        *logrus.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService services.ReportService, logger *logrus.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// @Summary Management overview report
// @Description Monthly sales totals, top five performers and days without sales. The average per person divides by every personnel record on file, even when personnelId narrows the sales.
// @Tags reports
// @Produce json
// @Produce text/csv
// @Param year query int false "Report year (defaults to the current year)"
// @Param month query int false "Report month 1-12 (defaults to the current month)"
// @Param personnelId query int false "Limit the figures to one person"
// @Param format query string false "Response format" Enums(json, csv) default(json)
// @Success 200 {object} models.APIResponse{data=reporting.ManagementOverview}
// @Failure 400 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /reports/management-overview [get]
func (h *ReportHandler) ManagementOverview(c *gin.Context) {
	req, format, ok := h.parseReportQuery(c)
	if !ok {
		return
	}

	report, err := h.reportService.ManagementOverview(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, h.logger, err, "management_overview")
		return
	}

	if format == formatCSV {
		var buf bytes.Buffer
		if err := reporting.WriteManagementOverviewCSV(&buf, report); err != nil {
			handleServiceError(c, h.logger, err, "management_overview_csv")
			return
		}
		period := report.ReportPeriod.Period()
		h.sendCSV(c, reporting.CSVFilename(reporting.ManagementOverviewReport, period), buf.Bytes())
		return
	}

	respondSuccess(c, http.StatusOK, report, "")
}

// @Summary Commission payout report
// @Description Fixed and variable commission owed to each person for the month
// @Tags reports
// @Produce json
// @Produce text/csv
// @Param year query int false "Report year (defaults to the current year)"
// @Param month query int false "Report month 1-12 (defaults to the current month)"
// @Param personnelId query int false "Limit the payout to one person"
// @Param format query string false "Response format" Enums(json, csv) default(json)
// @Success 200 {object} models.APIResponse{data=reporting.CommissionPayout}
// @Failure 400 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /reports/commission-payout [get]
func (h *ReportHandler) CommissionPayout(c *gin.Context) {
	req, format, ok := h.parseReportQuery(c)
	if !ok {
		return
	}

	report, err := h.reportService.CommissionPayout(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, h.logger, err, "commission_payout")
		return
	}

	if format == formatCSV {
		var buf bytes.Buffer
		if err := reporting.WriteCommissionPayoutCSV(&buf, report); err != nil {
			handleServiceError(c, h.logger, err, "commission_payout_csv")
			return
		}
		period := report.Summary.ReportPeriod.Period()
		h.sendCSV(c, reporting.CSVFilename(reporting.CommissionPayoutReport, period), buf.Bytes())
		return
	}

	respondSuccess(c, http.StatusOK, report, "")
}

func (h *ReportHandler) parseReportQuery(c *gin.Context) (*services.ReportRequest, string, bool) {
	format := strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", formatJSON)))
	if format != formatJSON && format != formatCSV {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("Invalid format %q: must be json or csv", format))
		return nil, "", false
	}

	req := &services.ReportRequest{}
	var ok bool
	if req.Year, ok = optionalIntQuery(c, "year"); !ok {
		return nil, "", false
	}
	if req.Month, ok = optionalIntQuery(c, "month"); !ok {
		return nil, "", false
	}
	if req.PersonnelID, ok = optionalInt64Query(c, "personnelId"); !ok {
		return nil, "", false
	}

	return req, format, true
}

func (h *ReportHandler) sendCSV(c *gin.Context, filename string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, csvContentType, body)
}
