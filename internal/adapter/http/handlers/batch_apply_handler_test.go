package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"portal_pricing/internal/adapter/http/handlers/mocks"
	"portal_pricing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func batchRouter(h *BatchApplyHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/pricing/batches", h.StartBatch)
	r.GET("/v1/pricing/batches/:id", h.GetProgress)
	r.POST("/v1/pricing/batches/:id/cancel", h.CancelBatch)
	return r
}

func TestBatchApplyHandler_StartBatch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBatchApplyUseCase(ctrl)
		r := batchRouter(NewBatchApplyHandler(uc))

		uc.EXPECT().Start(gomock.Any(), []string{"r1", "r2"}).Return("batch-1", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/batches", bytes.NewBufferString(`{"record_ids":["r1","r2"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if body["batch_id"] != "batch-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBatchApplyUseCase(ctrl)
		r := batchRouter(NewBatchApplyHandler(uc))

		uc.EXPECT().Start(gomock.Any(), []string{}).Return("", usecase.ErrEmptyBatch)

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/batches", bytes.NewBufferString(`{"record_ids":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestBatchApplyHandler_GetProgress(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBatchApplyUseCase(ctrl)
		r := batchRouter(NewBatchApplyHandler(uc))

		uc.EXPECT().Progress("batch-1").Return(usecase.BatchProgress{
			BatchID:      "batch-1",
			Total:        10,
			Completed:    4,
			CurrentID:    "r5",
			SuccessCount: 3,
			SkippedCount: 1,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/pricing/batches/batch-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body usecase.BatchProgress
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if body.Completed != 4 || body.SkippedCount != 1 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("unknown batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBatchApplyUseCase(ctrl)
		r := batchRouter(NewBatchApplyHandler(uc))

		uc.EXPECT().Progress("ghost").Return(usecase.BatchProgress{}, usecase.ErrBatchNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/pricing/batches/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestBatchApplyHandler_CancelBatch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBatchApplyUseCase(ctrl)
	r := batchRouter(NewBatchApplyHandler(uc))

	uc.EXPECT().Cancel("batch-1").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/pricing/batches/batch-1/cancel", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", w.Code)
	}
}
