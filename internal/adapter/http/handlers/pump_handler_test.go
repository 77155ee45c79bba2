package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"petromap/internal/adapter/http/handlers/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPumpHandler_Districts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPumpUseCase(ctrl)
		h := NewPumpHandler(uc)

		r := gin.New()
		r.GET("/v1/pumps/districts", h.Districts)

		uc.EXPECT().Districts(gomock.Any()).Return([]string{"MUMBAI", "PUNE"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/pumps/districts", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Districts []string `json:"districts"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if !reflect.DeepEqual(body.Districts, []string{"MUMBAI", "PUNE"}) {
			t.Fatalf("unexpected districts: %v", body.Districts)
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPumpUseCase(ctrl)
		h := NewPumpHandler(uc)

		r := gin.New()
		r.GET("/v1/pumps/districts", h.Districts)

		uc.EXPECT().Districts(gomock.Any()).Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/pumps/districts", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
