package employee

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"opsdash/internal/exporter"
	"opsdash/internal/shared/apperror"
	"opsdash/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const exportPageSize = 10000

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func filterFromQuery(c *gin.Context) Filter {
	return Filter{
		Department:    c.Query("department"),
		Role:          c.Query("role"),
		Location:      c.Query("location"),
		CostCenter:    c.Query("costCenter"),
		EmployeeType:  c.Query("employeeType"),
		BillingStatus: c.Query("billingStatus"),
		Skill:         c.Query("skill"),
	}
}

func (h *Handler) Create(c *gin.Context) {
	var in Input
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("http create employee bind failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	resp, total, err := h.service.List(c.Request.Context(), filterFromQuery(c), page, pageSize)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update employee bind failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) Search(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	term := c.Param("term")

	resp, err := h.service.Search(c.Request.Context(), term, limit)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"employees": resp, "searchTerm": term}, nil)
}

func (h *Handler) FilterOptions(c *gin.Context) {
	field := UniqueField(c.Param("type"))

	values, err := h.service.FilterOptions(c.Request.Context(), field)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{string(field): values}, nil)
}

// Export streams the filtered employee set as a CSV or JSON attachment.
func (h *Handler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	resp, _, err := h.service.List(c.Request.Context(), filterFromQuery(c), 1, exportPageSize)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if len(resp) == 0 {
		response.Error(c, http.StatusNotFound, apperror.CodeNotFound, "No employees found to export", nil)
		return
	}

	timestamp := time.Now().Format(dateLayout)
	if format == "json" {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "employees_"+timestamp+".json"))
		c.Data(http.StatusOK, "application/json", []byte(exporter.ToJSON(toExportRecords(resp))))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "employees_"+timestamp+".csv"))
	c.Data(http.StatusOK, "text/csv", []byte(exporter.ToCSV(toExportRecords(resp))))
}

func toExportRecords(resp []EmployeeResponse) []exporter.Record {
	records := make([]exporter.Record, len(resp))
	for i, e := range resp {
		records[i] = exporter.Record{
			ID:                e.ID,
			Department:        e.Department,
			CostCenter:        e.CostCenter,
			Role:              e.Role,
			EmployeeType:      e.EmployeeType,
			Location:          e.Location,
			BillingStatus:     e.BillingStatus,
			HourlyRate:        e.HourlyRate,
			UtilizationTarget: e.UtilizationTarget,
			StartDate:         e.StartDate,
			EndDate:           e.EndDate,
			Skills:            e.Skills,
			Status:            e.Status,
			CreatedAt:         e.CreatedAt,
			UpdatedAt:         e.UpdatedAt,
		}
	}
	return records
}
