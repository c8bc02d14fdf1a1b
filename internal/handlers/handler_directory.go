package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/assureline/payroll_engine/internal/core/ports/services"
	"github.com/assureline/payroll_engine/internal/dto"
	"github.com/assureline/payroll_engine/internal/middleware"
)

// directoryHandler exposes the mirrored employee directory.
type directoryHandler struct {
	directoryService portssvc.DirectorySvcFacade
}

func newDirectoryHandler(s portssvc.DirectorySvcFacade) *directoryHandler {
	return &directoryHandler{directoryService: s}
}

func registerDirectoryRoutes(rg *gin.RouterGroup, s portssvc.DirectorySvcFacade) {
	h := newDirectoryHandler(s)

	employees := rg.Group("/employees")
	{
		employees.PUT("/:employee_id", h.upsertEmployee)
		employees.GET("/:employee_id", h.getEmployee)
	}
}

// upsertEmployee godoc
// @Summary Upsert an employee directory entry
// @Description Inserts or refreshes the mirrored reference data for one employee. Restricted to admin and service actors.
// @Tags employees
// @Accept json
// @Produce json
// @Param employee_id path string true "Employee ID"
// @Param employee body dto.UpsertEmployeeRequest true "Employee reference data"
// @Success 200 {object} domain.Employee
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /employees/{employee_id} [put]
func (h *directoryHandler) upsertEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpsertEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	employee, err := h.directoryService.UpsertEmployee(c.Request.Context(), c.Param("employee_id"), req, actor)
	if err != nil {
		respondServiceError(c, logger, "Failed to upsert employee", err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// getEmployee godoc
// @Summary Get an employee directory entry
// @Description Retrieves the mirrored reference data for one employee.
// @Tags employees
// @Produce json
// @Param employee_id path string true "Employee ID"
// @Success 200 {object} domain.Employee
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Unknown employee"
// @Security BearerAuth
// @Router /employees/{employee_id} [get]
func (h *directoryHandler) getEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employee, err := h.directoryService.GetEmployee(c.Request.Context(), c.Param("employee_id"))
	if err != nil {
		respondServiceError(c, logger, "Failed to get employee", err)
		return
	}
	c.JSON(http.StatusOK, employee)
}
