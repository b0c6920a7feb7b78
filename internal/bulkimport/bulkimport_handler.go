package bulkimport

import (
	"io"
	"net/http"

	bulkimporterrors "opsdash/internal/bulkimport/errors"
	"opsdash/internal/shared/apperror"
	"opsdash/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxUploadBytes = 10 << 20 // 10MB

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("bulkimport.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("bulkimport.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("import request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// readUpload pulls the "file" form part and enforces the size cap.
func (h *Handler) readUpload(c *gin.Context) (string, []byte, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput,
			"No file uploaded. Use the \"file\" form field", err.Error())
		return "", nil, false
	}

	if fileHeader.Size > maxUploadBytes {
		h.writeServiceError(c, bulkimporterrors.ErrFileTooLarge)
		return "", nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.writeServiceError(c, bulkimporterrors.ErrParseFailed)
		return "", nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		h.writeServiceError(c, bulkimporterrors.ErrParseFailed)
		return "", nil, false
	}
	if int64(len(data)) > maxUploadBytes {
		h.writeServiceError(c, bulkimporterrors.ErrFileTooLarge)
		return "", nil, false
	}

	return fileHeader.Filename, data, true
}

func (h *Handler) Import(c *gin.Context) {
	filename, data, ok := h.readUpload(c)
	if !ok {
		return
	}

	report, err := h.service.Import(c.Request.Context(), filename, data)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, report, nil)
}

func (h *Handler) Preview(c *gin.Context) {
	filename, data, ok := h.readUpload(c)
	if !ok {
		return
	}

	report, err := h.service.Preview(c.Request.Context(), filename, data)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, report, nil)
}

const csvTemplate = `department,costCenter,role,employeeType,location,billingStatus,hourlyRate,utilizationTarget,startDate,endDate,skills
Engineering,CC-ENG-001,Software Engineer,Full-time,New York,Billable,85.50,80,2024-01-15,,Go;PostgreSQL;Docker
`

const jsonTemplate = `{
  "employees": [
    {
      "department": "Engineering",
      "costCenter": "CC-ENG-001",
      "role": "Software Engineer",
      "employeeType": "Full-time",
      "location": "New York",
      "billingStatus": "Billable",
      "hourlyRate": 85.5,
      "utilizationTarget": 80,
      "startDate": "2024-01-15",
      "skills": ["Go", "PostgreSQL", "Docker"]
    }
  ]
}
`

// Template serves a downloadable import template in the requested format.
func (h *Handler) Template(c *gin.Context) {
	if c.DefaultQuery("format", "csv") == "json" {
		c.Header("Content-Disposition", `attachment; filename="employee_import_template.json"`)
		c.Data(http.StatusOK, "application/json", []byte(jsonTemplate))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="employee_import_template.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(csvTemplate))
}
