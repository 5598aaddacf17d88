package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"portal_pricing/internal/adapter/http/handlers/mocks"
	"portal_pricing/internal/domain/entities"
	"portal_pricing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func overrideRouter(h *ManualOverrideHandler) *gin.Engine {
	r := gin.New()
	r.PUT("/v1/pricing/records/:id/override", h.SetOverride)
	r.DELETE("/v1/pricing/records/:id/override", h.ClearOverride)
	return r
}

func TestManualOverrideHandler_SetOverride(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIManualOverrideUseCase(ctrl)
		r := overrideRouter(NewManualOverrideHandler(uc))

		req := httptest.NewRequest(http.MethodPut, "/v1/pricing/records/rec-1/override", bytes.NewBufferString(`{"note":"promo"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("zero price is a valid pin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIManualOverrideUseCase(ctrl)
		r := overrideRouter(NewManualOverrideHandler(uc))

		uc.EXPECT().SetOverride(gomock.Any(), "rec-1", 0.0, "comp", "ana").Return(entities.RecordPriceState{RecordID: "rec-1", Price: 0}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/pricing/records/rec-1/override", bytes.NewBufferString(`{"price":0,"note":"comp","set_by":"ana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("negative price rejected by usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIManualOverrideUseCase(ctrl)
		r := overrideRouter(NewManualOverrideHandler(uc))

		uc.EXPECT().SetOverride(gomock.Any(), "rec-1", -5.0, "", "").Return(entities.RecordPriceState{}, usecase.ErrInvalidOverridePrice)

		req := httptest.NewRequest(http.MethodPut, "/v1/pricing/records/rec-1/override", bytes.NewBufferString(`{"price":-5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestManualOverrideHandler_ClearOverride(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("keeps pinned price by default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIManualOverrideUseCase(ctrl)
		r := overrideRouter(NewManualOverrideHandler(uc))

		uc.EXPECT().ClearOverride(gomock.Any(), "rec-1", false).Return(entities.RecordPriceState{RecordID: "rec-1", Price: 99}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/pricing/records/rec-1/override", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("apply_latest forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIManualOverrideUseCase(ctrl)
		r := overrideRouter(NewManualOverrideHandler(uc))

		uc.EXPECT().ClearOverride(gomock.Any(), "rec-1", true).Return(entities.RecordPriceState{RecordID: "rec-1", Price: 210}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/pricing/records/rec-1/override?apply_latest=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("no active override conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIManualOverrideUseCase(ctrl)
		r := overrideRouter(NewManualOverrideHandler(uc))

		uc.EXPECT().ClearOverride(gomock.Any(), "rec-1", false).Return(entities.RecordPriceState{}, usecase.ErrOverrideNotActive)

		req := httptest.NewRequest(http.MethodDelete, "/v1/pricing/records/rec-1/override", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
