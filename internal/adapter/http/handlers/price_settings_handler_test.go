package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"portal_pricing/internal/adapter/http/handlers/mocks"
	"portal_pricing/internal/domain/entities"
	"portal_pricing/internal/domain/formula"
	"portal_pricing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func settingsRouter(h *PriceSettingsHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/pricing/settings", h.GetSettings)
	r.POST("/v1/pricing/settings", h.SaveSettings)
	r.POST("/v1/pricing/settings/validate", h.ValidateFormula)
	r.DELETE("/v1/pricing/settings/parameters/:id", h.RemoveParameter)
	r.POST("/v1/pricing/settings/cleanup/confirm", h.ConfirmCleanup)
	return r
}

func TestPriceSettingsHandler_GetSettings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPriceSettingsUseCase(ctrl)
	h := NewPriceSettingsHandler(uc)
	r := settingsRouter(h)

	uc.EXPECT().Get(gomock.Any()).Return(usecase.SettingsView{
		Parameters:      []entities.Parameter{{ID: "p_base", Name: "Base", Type: entities.ParameterTypeFixed, Value: 10}},
		DisplayFormula:  "A*2",
		InternalFormula: "p_base*2",
		Letters:         []string{"A"},
		Version:         3,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/pricing/settings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body["display_formula"] != "A*2" || body["internal_formula"] != "p_base*2" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestPriceSettingsHandler_SaveSettings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPriceSettingsUseCase(ctrl)
		r := settingsRouter(NewPriceSettingsHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/settings", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation failure returns structured 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPriceSettingsUseCase(ctrl)
		r := settingsRouter(NewPriceSettingsHandler(uc))

		uc.EXPECT().Save(gomock.Any(), gomock.Any(), "A*Z").Return(usecase.SettingsView{}, &usecase.ValidationFailedError{
			Result: formula.ValidationResult{
				Errors:           []string{`undefined parameter "Z"`},
				UsedLetters:      []string{"A", "Z"},
				AvailableLetters: []string{"A"},
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/settings", bytes.NewBufferString(`{"parameters":[{"name":"Base","type":"fixed","value":10}],"formula":"A*Z"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body struct {
			Code       string                   `json:"code"`
			Validation formula.ValidationResult `json:"validation"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if body.Code != "VALIDATION_FAILED" {
			t.Fatalf("expected VALIDATION_FAILED, got %q", body.Code)
		}
		if len(body.Validation.Errors) != 1 {
			t.Fatalf("expected validation detail, got %+v", body.Validation)
		}
	})

	t.Run("integrity block returns structured 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPriceSettingsUseCase(ctrl)
		r := settingsRouter(NewPriceSettingsHandler(uc))

		uc.EXPECT().Save(gomock.Any(), gomock.Any(), "A*B").Return(usecase.SettingsView{}, &usecase.IntegrityBlockedError{
			Report: formula.IntegrityReport{
				OrphanParameters: []formula.OrphanParameter{{ID: "p_w", Name: "Weight", Letter: "B", FormFieldID: "f_gone", InFormula: true}},
				OrphansInFormula: []string{"B"},
				Errors:           []string{`parameter "Weight" references missing form field f_gone`},
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/settings", bytes.NewBufferString(`{"parameters":[],"formula":"A*B"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body struct {
			Code      string                  `json:"code"`
			Integrity formula.IntegrityReport `json:"integrity"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if body.Code != "INTEGRITY_BLOCKED" {
			t.Fatalf("expected INTEGRITY_BLOCKED, got %q", body.Code)
		}
		if len(body.Integrity.OrphanParameters) != 1 || body.Integrity.OrphanParameters[0].Letter != "B" {
			t.Fatalf("expected orphan detail, got %+v", body.Integrity)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPriceSettingsUseCase(ctrl)
		r := settingsRouter(NewPriceSettingsHandler(uc))

		uc.EXPECT().Save(gomock.Any(), gomock.Any(), "A*2").DoAndReturn(
			func(_ any, params []entities.Parameter, f string) (usecase.SettingsView, error) {
				if len(params) != 1 || params[0].Name != "Base" {
					t.Fatalf("unexpected parameters: %+v", params)
				}
				return usecase.SettingsView{DisplayFormula: f, Version: 4}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/settings", bytes.NewBufferString(`{"parameters":[{"name":"Base","type":"fixed","value":10}],"formula":"A*2"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPriceSettingsHandler_ValidateFormula(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPriceSettingsUseCase(ctrl)
	r := settingsRouter(NewPriceSettingsHandler(uc))

	uc.EXPECT().ValidateFormula(gomock.Any(), "A+B").Return(formula.ValidationResult{
		IsValid:          true,
		UsedLetters:      []string{"A", "B"},
		AvailableLetters: []string{"A", "B"},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/pricing/settings/validate", bytes.NewBufferString(`{"formula":"A+B"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res formula.ValidationResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsValid || len(res.UsedLetters) != 2 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestPriceSettingsHandler_RemoveParameter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("referenced parameter conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPriceSettingsUseCase(ctrl)
		r := settingsRouter(NewPriceSettingsHandler(uc))

		uc.EXPECT().RemoveParameter(gomock.Any(), "p_base").Return(usecase.SettingsView{}, usecase.ErrParameterReferenced)

		req := httptest.NewRequest(http.MethodDelete, "/v1/pricing/settings/parameters/p_base", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown parameter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPriceSettingsUseCase(ctrl)
		r := settingsRouter(NewPriceSettingsHandler(uc))

		uc.EXPECT().RemoveParameter(gomock.Any(), "p_ghost").Return(usecase.SettingsView{}, usecase.ErrParameterNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/pricing/settings/parameters/p_ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPriceSettingsHandler_ConfirmCleanup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("stale preview conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPriceSettingsUseCase(ctrl)
		r := settingsRouter(NewPriceSettingsHandler(uc))

		uc.EXPECT().ConfirmCleanup(gomock.Any(), gomock.Any()).Return(usecase.SettingsView{}, formula.ErrStalePreview)

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/settings/cleanup/confirm", bytes.NewBufferString(`{"parameter_id":"p_w","letter":"B","formula_before":"A*B","formula_after":"A*0"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestMapPriceSettingsError(t *testing.T) {
	if got := mapPriceSettingsError(usecase.ErrInvalidParameter); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", got.HTTPStatus)
	}
	if got := mapPriceSettingsError(usecase.ErrParameterNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", got.HTTPStatus)
	}
	if got := mapPriceSettingsError(usecase.ErrParameterReferenced); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409, got %d", got.HTTPStatus)
	}
	if got := mapPriceSettingsError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", got.HTTPStatus)
	}
}
