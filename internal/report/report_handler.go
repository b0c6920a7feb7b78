package report

import (
	"fmt"
	"net/http"

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
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("report request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Generate streams a rendered report as an attachment.
func (h *Handler) Generate(c *gin.Context) {
	reportType := c.Param("type")
	format := c.DefaultQuery("format", "pdf")

	doc, err := h.service.Generate(c.Request.Context(), reportType, format)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}

// Types lists the report types the generator supports.
func (h *Handler) Types(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"types": []string{
			TypeComprehensive, TypeUtilization, TypeDepartment,
			TypeBench, TypeSkills, TypeBilling,
		},
		"formats": []string{"pdf", "excel"},
	}, nil)
}
