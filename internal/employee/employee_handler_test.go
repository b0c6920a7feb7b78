package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"opsdash/internal/employee"
	employeeerrors "opsdash/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// fakeService lets each test pin just the method it exercises.
type fakeService struct {
	createFn        func(ctx context.Context, in employee.Input) (employee.EmployeeResponse, error)
	listFn          func(ctx context.Context, filter employee.Filter, page, pageSize int) ([]employee.EmployeeResponse, int64, error)
	getByIDFn       func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	updateFn        func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	deleteFn        func(ctx context.Context, id string) error
	searchFn        func(ctx context.Context, term string, limit int) ([]employee.EmployeeResponse, error)
	filterOptionsFn func(ctx context.Context, field employee.UniqueField) ([]string, error)
}

func (f *fakeService) Create(ctx context.Context, in employee.Input) (employee.EmployeeResponse, error) {
	return f.createFn(ctx, in)
}

func (f *fakeService) List(ctx context.Context, filter employee.Filter, page, pageSize int) ([]employee.EmployeeResponse, int64, error) {
	return f.listFn(ctx, filter, page, pageSize)
}

func (f *fakeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.updateFn(ctx, id, req)
}

func (f *fakeService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeService) Search(ctx context.Context, term string, limit int) ([]employee.EmployeeResponse, error) {
	return f.searchFn(ctx, term, limit)
}

func (f *fakeService) FilterOptions(ctx context.Context, field employee.UniqueField) ([]string, error) {
	return f.filterOptionsFn(ctx, field)
}

func setupRouter(svc employee.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := employee.NewHandler(svc)

	g := r.Group("/api/v1")
	employees := g.Group("/employees")
	{
		employees.GET("", h.GetAll)
		employees.POST("", h.Create)
		employees.GET("/export", h.Export)
		employees.GET("/search/:term", h.Search)
		employees.GET("/options/:type", h.FilterOptions)
		employees.GET("/:id", h.GetByID)
		employees.PUT("/:id", h.Update)
		employees.DELETE("/:id", h.Delete)
	}
	return r
}

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &fakeService{
			createFn: func(_ context.Context, in employee.Input) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{ID: "e1", Department: in.Department}, nil
			},
		}
		r := setupRouter(svc)

		w, env := doRequest(t, r, http.MethodPost, "/api/v1/employees",
			`{"department":"Engineering","role":"Dev","employeeType":"Full-time","location":"NYC","billingStatus":"Billable","startDate":"2024-01-15"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, env.Ok)
		assert.Contains(t, string(env.Data), `"Engineering"`)
	})

	t.Run("invalid json body", func(t *testing.T) {
		r := setupRouter(&fakeService{})

		w, env := doRequest(t, r, http.MethodPost, "/api/v1/employees", `{"department":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("validation error from service", func(t *testing.T) {
		svc := &fakeService{
			createFn: func(_ context.Context, _ employee.Input) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrValidationFailed.WithDetails([]employee.FieldError{
					{Field: "employeeType", Message: "Employee type is required"},
				})
			},
		}
		r := setupRouter(svc)

		w, env := doRequest(t, r, http.MethodPost, "/api/v1/employees", `{"department":"Engineering"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	svc := &fakeService{
		listFn: func(_ context.Context, filter employee.Filter, page, pageSize int) ([]employee.EmployeeResponse, int64, error) {
			assert.Equal(t, "Engineering", filter.Department)
			assert.Equal(t, 2, page)
			assert.Equal(t, 5, pageSize)
			return []employee.EmployeeResponse{{ID: "e1"}}, 12, nil
		},
	}
	r := setupRouter(svc)

	w, env := doRequest(t, r, http.MethodGet, "/api/v1/employees?department=Engineering&page=2&limit=5", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Ok)

	var raw map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Contains(t, string(raw["meta"]), `"total":12`)
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc := &fakeService{
			getByIDFn: func(_ context.Context, id string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		r := setupRouter(svc)

		w, env := doRequest(t, r, http.MethodGet, "/api/v1/employees/missing", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	svc := &fakeService{
		deleteFn: func(_ context.Context, id string) error {
			assert.Equal(t, "e1", id)
			return nil
		},
	}
	r := setupRouter(svc)

	w, env := doRequest(t, r, http.MethodDelete, "/api/v1/employees/e1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Ok)
	assert.Contains(t, string(env.Data), `"deleted":true`)
}

func TestEmployeeHandler_Search(t *testing.T) {
	svc := &fakeService{
		searchFn: func(_ context.Context, term string, limit int) ([]employee.EmployeeResponse, error) {
			assert.Equal(t, "golang", term)
			assert.Equal(t, 10, limit)
			return []employee.EmployeeResponse{{ID: "e1"}}, nil
		},
	}
	r := setupRouter(svc)

	w, env := doRequest(t, r, http.MethodGet, "/api/v1/employees/search/golang", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"searchTerm":"golang"`)
}

func TestEmployeeHandler_FilterOptions(t *testing.T) {
	svc := &fakeService{
		filterOptionsFn: func(_ context.Context, field employee.UniqueField) ([]string, error) {
			assert.Equal(t, employee.UniqueDepartments, field)
			return []string{"Engineering", "HR"}, nil
		},
	}
	r := setupRouter(svc)

	w, env := doRequest(t, r, http.MethodGet, "/api/v1/employees/options/departments", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"departments":["Engineering","HR"]`)
}

func TestEmployeeHandler_Export(t *testing.T) {
	listOne := func(_ context.Context, _ employee.Filter, _, _ int) ([]employee.EmployeeResponse, int64, error) {
		return []employee.EmployeeResponse{{
			ID:         "e1",
			Department: "Engineering",
			Role:       "Dev",
			Skills:     []string{"Go"},
		}}, 1, nil
	}

	t.Run("csv attachment", func(t *testing.T) {
		r := setupRouter(&fakeService{listFn: listOne})

		w, _ := doRequest(t, r, http.MethodGet, "/api/v1/employees/export?format=csv", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
		assert.Contains(t, w.Body.String(), "Engineering")
	})

	t.Run("json attachment", func(t *testing.T) {
		r := setupRouter(&fakeService{listFn: listOne})

		w, _ := doRequest(t, r, http.MethodGet, "/api/v1/employees/export?format=json", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "organizationalInfo")
	})

	t.Run("empty set", func(t *testing.T) {
		r := setupRouter(&fakeService{
			listFn: func(_ context.Context, _ employee.Filter, _, _ int) ([]employee.EmployeeResponse, int64, error) {
				return nil, 0, nil
			},
		})

		w, env := doRequest(t, r, http.MethodGet, "/api/v1/employees/export", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "No employees found to export", env.Error.Message)
	})
}
