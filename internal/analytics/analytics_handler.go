package analytics

import (
	"net/http"
	"strconv"

	"opsdash/internal/shared/apperror"
	"opsdash/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("analytics.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("analytics.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("analytics request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Overview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, overview, nil)
}

func (h *Handler) Analytics(c *gin.Context) {
	departments, err := h.service.DepartmentAnalytics(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"departments": departments}, nil)
}

func (h *Handler) Utilization(c *gin.Context) {
	period := c.DefaultQuery("period", "30")

	metrics, err := h.service.UtilizationMetrics(c.Request.Context(), period)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, metrics, nil)
}

func (h *Handler) Departments(c *gin.Context) {
	breakdown, err := h.service.DepartmentBreakdown(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"departments": breakdown}, nil)
}

func (h *Handler) Skills(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	skills, err := h.service.SkillsDistribution(c.Request.Context(), limit)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"skills": skills}, nil)
}

func (h *Handler) Activities(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	activities, err := h.service.RecentActivities(c.Request.Context(), limit)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"activities": activities}, nil)
}

func (h *Handler) Locations(c *gin.Context) {
	locations, err := h.service.LocationDistribution(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"locations": locations}, nil)
}

func (h *Handler) Billing(c *gin.Context) {
	billing, err := h.service.BillingOverview(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"billing": billing}, nil)
}

func (h *Handler) EmployeeTypes(c *gin.Context) {
	types, err := h.service.EmployeeTypeDistribution(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"employeeTypes": types}, nil)
}

func (h *Handler) Bench(c *gin.Context) {
	analysis, err := h.service.BenchAnalysis(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, analysis, nil)
}
