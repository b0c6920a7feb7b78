package finance

import (
	"net/http"

	"opsdash/internal/shared/apperror"
	"opsdash/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	provider MetricsProvider
	logger   *zap.Logger
}

func NewHandler(provider MetricsProvider, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("finance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("finance.handler")
	}
	return &Handler{provider: provider, logger: l}
}

func (h *Handler) Financials(c *gin.Context) {
	metrics, err := h.provider.Metrics(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("financials request failed", zap.Error(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, metrics, nil)
}
