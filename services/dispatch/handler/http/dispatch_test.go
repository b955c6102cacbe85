package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/antarkan/internal/pkg/models"
	"github.com/piresc/antarkan/services/dispatch/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestNewDispatchHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC)

	assert.NotNil(t, handler)
	assert.Equal(t, mockUC, handler.dispatchUC)
}

func TestDispatchHandler_RunPass(t *testing.T) {
	tests := []struct {
		name       string
		report     *models.DispatchPassReport
		err        error
		wantStatus int
		check      func(t *testing.T, body map[string]interface{})
	}{
		{
			name: "pass completed",
			report: &models.DispatchPassReport{
				PassID:          "pass-1",
				OrdersEligible:  4,
				GroupsCreated:   2,
				DriversAssigned: 1,
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, true, body["success"])
				data := body["data"].(map[string]interface{})
				assert.Equal(t, "pass-1", data["pass_id"])
				assert.Equal(t, float64(2), data["groups_created"])
				assert.Equal(t, float64(1), data["drivers_assigned"])
			},
		},
		{
			name:       "pass already running",
			report:     &models.DispatchPassReport{PassID: "pass-2", Skipped: true},
			err:        models.ErrPassInProgress,
			wantStatus: http.StatusConflict,
			check: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, false, body["success"])
				assert.Equal(t, models.ErrPassInProgress.Error(), body["error"])
			},
		},
		{
			name:       "pass failed",
			err:        errors.New("failed to list orders: db down"),
			wantStatus: http.StatusInternalServerError,
			check: func(t *testing.T, body map[string]interface{}) {
				assert.Contains(t, body["error"], "db down")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockDispatchUC(ctrl)
			mockUC.EXPECT().RunPass(gomock.Any()).Return(tt.report, tt.err).Times(1)

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/v1/dispatch/passes", nil), rec)

			err := NewDispatchHandler(mockUC).RunPass(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			tt.check(t, decode(t, rec))
		})
	}
}

func TestDispatchHandler_GetSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	mockUC.EXPECT().GetPlatformSettings(gomock.Any()).Return(models.PlatformSettings{
		DriverRadiusInMeters: 7500,
		MaxOrdersPerGroup:    4,
	})

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/dispatch/settings", nil), rec)

	require.NoError(t, NewDispatchHandler(mockUC).GetSettings(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, float64(7500), data["driver_radius_in_meters"])
	assert.Equal(t, float64(4), data["max_orders_per_group"])
}
