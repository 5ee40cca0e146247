package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"scale_workshop/internal/adapter/http/handlers"
	"scale_workshop/internal/adapter/http/handlers/mocks"
	"scale_workshop/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobs := mocks.NewMockIJobUseCase(ctrl)
	docs := mocks.NewMockIDocumentUseCase(ctrl)
	h := Handlers{
		Customers: handlers.NewCustomerHandler(mocks.NewMockICustomerUseCase(ctrl)),
		Jobs:      handlers.NewJobHandler(jobs),
		Workflow:  handlers.NewWorkflowHandler(mocks.NewMockIWorkflowUseCase(ctrl)),
		Documents: handlers.NewDocumentHandler(docs),
		Payments:  handlers.NewInvoicePaymentHandler(mocks.NewMockIInvoicePaymentUseCase(ctrl), true),
	}

	t.Run("ping", func(t *testing.T) {
		r := NewRouter(h, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("export route is not taken for a job id", func(t *testing.T) {
		docs.EXPECT().RegisterWorkbook(gomock.Any(), entities.JobStatus("")).Return([]byte("PK"), nil)
		r := NewRouter(h, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/jobs/export.xlsx", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("job by id", func(t *testing.T) {
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", Status: entities.JobStatusIntake}, nil)
		r := NewRouter(h, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("swagger document is registered", func(t *testing.T) {
		r := NewRouter(h, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Scale Workshop API") {
			t.Fatalf("expected swagger document, got %d", w.Code)
		}
	})

	t.Run("metrics only with a registry", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewRouter(h, nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404 without registry, got %d", w.Code)
		}

		reg := prometheus.NewRegistry()
		counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "scrape_check_total", Help: "scrape check"})
		reg.MustRegister(counter)
		counter.Inc()

		w = httptest.NewRecorder()
		NewRouter(h, reg).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "scrape_check_total 1") {
			t.Fatalf("unexpected metrics response %d: %s", w.Code, w.Body.String())
		}
	})
}
