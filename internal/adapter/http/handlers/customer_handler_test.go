package handlers

import (
	"net/http"
	"testing"

	"scale_workshop/internal/adapter/http/handlers/mocks"
	"scale_workshop/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCustomerHandler(t *testing.T) {
	t.Run("create customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)
		r := gin.New()
		r.POST("/customers", h.CreateCustomer)

		uc.EXPECT().
			Create(gomock.Any(), "Acme Mills", entities.Contact{Phone: "555-0100"}).
			Return(entities.Customer{ID: "c-1", Name: "Acme Mills", Contact: entities.Contact{Phone: "555-0100"}}, nil)

		w := perform(r, http.MethodPost, "/customers", `{"name":"Acme Mills","phone":"555-0100"}`, "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("create without name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewCustomerHandler(mocks.NewMockICustomerUseCase(ctrl))
		r := gin.New()
		r.POST("/customers", h.CreateCustomer)

		w := perform(r, http.MethodPost, "/customers", `{"phone":"555-0100"}`, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("get unknown customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)
		r := gin.New()
		r.GET("/customers/:id", h.GetCustomer)

		uc.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Customer{}, &entities.NotFoundError{Entity: "customer", ID: "nope"})

		w := perform(r, http.MethodGet, "/customers/nope", "", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Details["entity"] != "customer" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("update contact without phone or email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewCustomerHandler(mocks.NewMockICustomerUseCase(ctrl))
		r := gin.New()
		r.PATCH("/customers/:id/contact", h.UpdateContact)

		w := perform(r, http.MethodPatch, "/customers/c-1/contact", `{}`, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "VALIDATION_ERROR" {
			t.Fatalf("unexpected code %s", body.Code)
		}
	})

	t.Run("update contact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)
		r := gin.New()
		r.PATCH("/customers/:id/contact", h.UpdateContact)

		uc.EXPECT().
			UpdateContact(gomock.Any(), "c-1", entities.Contact{Email: "ops@acme.test"}).
			Return(entities.Customer{ID: "c-1", Name: "Acme Mills", Contact: entities.Contact{Email: "ops@acme.test"}}, nil)

		w := perform(r, http.MethodPatch, "/customers/c-1/contact", `{"email":" ops@acme.test "}`, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}
