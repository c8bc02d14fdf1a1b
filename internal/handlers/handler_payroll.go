package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/assureline/payroll_engine/internal/core/domain"
	portssvc "github.com/assureline/payroll_engine/internal/core/ports/services"
	"github.com/assureline/payroll_engine/internal/dto"
	"github.com/assureline/payroll_engine/internal/middleware"
)

// payrollHandler exposes the compiled payroll read views.
type payrollHandler struct {
	payrollService   portssvc.PayrollSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

func newPayrollHandler(payroll portssvc.PayrollSvcFacade, reporting portssvc.ReportingSvcFacade) *payrollHandler {
	return &payrollHandler{payrollService: payroll, reportingService: reporting}
}

func registerPayrollRoutes(rg *gin.RouterGroup, payroll portssvc.PayrollSvcFacade, reporting portssvc.ReportingSvcFacade) {
	h := newPayrollHandler(payroll, reporting)

	payrollGroup := rg.Group("/payroll")
	{
		payrollGroup.GET("/employees/:employee_id/summary", h.getEmployeeSummary)
		payrollGroup.GET("/employees/:employee_id/daily", h.getDailyBreakdown)
		payrollGroup.GET("/company/summary", h.getCompanySummary)
	}
}

// resolvePeriod resolves the payroll period from the refDate query
// parameter, defaulting to today. Any date inside a period names it.
func (h *payrollHandler) resolvePeriod(c *gin.Context) (domain.PayrollPeriod, bool) {
	ref := time.Now().UTC()
	if raw := c.Query("refDate"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "refDate must be YYYY-MM-DD"})
			return domain.PayrollPeriod{}, false
		}
		ref = parsed
	}
	return h.payrollService.PeriodFor(ref), true
}

// getEmployeeSummary godoc
// @Summary Get an employee's period summary
// @Description Compiles hours, pay and the bonus breakdown for the payroll period containing refDate (default today). Bonuses held behind unresolved high-value reviews are reported separately and the summary is marked provisional.
// @Tags payroll
// @Produce json
// @Param employee_id path string true "Employee ID"
// @Param refDate query string false "Any date inside the requested period (YYYY-MM-DD)"
// @Success 200 {object} dto.EmployeeSummaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /payroll/employees/{employee_id}/summary [get]
func (h *payrollHandler) getEmployeeSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, ok := h.resolvePeriod(c)
	if !ok {
		return
	}
	employeeID := c.Param("employee_id")

	summary, err := h.payrollService.ComputePeriodSummary(c.Request.Context(), employeeID, period)
	if err != nil {
		respondServiceError(c, logger, "Failed to compute employee summary", err)
		return
	}

	logger.Info("Employee summary served",
		slog.String("employee_id", employeeID),
		slog.String("period", period.String()))
	c.JSON(http.StatusOK, dto.ToEmployeeSummaryResponse(*summary))
}

// getDailyBreakdown godoc
// @Summary Get an employee's per-day activity breakdown
// @Description Rebuilds daily hours, policies sold and sales amounts from the period's time logs and sales. Days with no activity are omitted.
// @Tags payroll
// @Produce json
// @Param employee_id path string true "Employee ID"
// @Param refDate query string false "Any date inside the requested period (YYYY-MM-DD)"
// @Success 200 {array} dto.DailySummaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /payroll/employees/{employee_id}/daily [get]
func (h *payrollHandler) getDailyBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, ok := h.resolvePeriod(c)
	if !ok {
		return
	}
	employeeID := c.Param("employee_id")

	days, err := h.payrollService.DailyBreakdown(c.Request.Context(), employeeID, period)
	if err != nil {
		respondServiceError(c, logger, "Failed to compute daily breakdown", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDailySummaryResponses(days))
}

// getCompanySummary godoc
// @Summary Get the company-wide period summary
// @Description Rolls up every active employee's summary by department, ranks the top three by sales and carries the pending high-value review indicators.
// @Tags payroll
// @Produce json
// @Param refDate query string false "Any date inside the requested period (YYYY-MM-DD)"
// @Success 200 {object} dto.CompanySummaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /payroll/company/summary [get]
func (h *payrollHandler) getCompanySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, ok := h.resolvePeriod(c)
	if !ok {
		return
	}

	summary, err := h.reportingService.ComputeCompanySummary(c.Request.Context(), period)
	if err != nil {
		respondServiceError(c, logger, "Failed to compute company summary", err)
		return
	}

	logger.Info("Company summary served", slog.String("period", period.String()))
	c.JSON(http.StatusOK, dto.ToCompanySummaryResponse(*summary))
}
