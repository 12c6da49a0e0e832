package settings_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chris/library-lending/pkg/api"
	"github.com/chris/library-lending/pkg/fees"
	"github.com/chris/library-lending/pkg/handlers/settings"
	"github.com/chris/library-lending/pkg/lending"
	"github.com/chris/library-lending/pkg/storage"
	"github.com/chris/library-lending/pkg/storage/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var defaultConfig = fees.Config{Enabled: true, Rate: decimal.NewFromInt(10), Interval: "day"}

func TestGetLateFeeConfig(t *testing.T) {
	t.Run("Falls Back To Default", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("GetLateFeeConfig", mock.Anything).Return(fees.Config{}, storage.ErrNotFound)

		h := settings.NewSettingsHandler(mockStorage, lending.NewSettingsFeeProvider(mockStorage, defaultConfig))

		req := httptest.NewRequest(http.MethodGet, "/settings/late-fees", nil)
		rr := httptest.NewRecorder()

		h.GetLateFeeConfig(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var returned api.LateFeeConfig
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
		assert.True(t, returned.Enabled)
		assert.Equal(t, "day", returned.Interval)
		assert.True(t, returned.Rate.Equal(decimal.NewFromInt(10)))
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("GetLateFeeConfig", mock.Anything).Return(fees.Config{}, assert.AnError)

		h := settings.NewSettingsHandler(mockStorage, lending.NewSettingsFeeProvider(mockStorage, defaultConfig))

		req := httptest.NewRequest(http.MethodGet, "/settings/late-fees", nil)
		rr := httptest.NewRecorder()

		h.GetLateFeeConfig(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestPutLateFeeConfig(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("PutLateFeeConfig", mock.Anything, mock.MatchedBy(func(cfg fees.Config) bool {
			return cfg.Enabled && cfg.Interval == "week" && cfg.Rate.Equal(decimal.RequireFromString("2.50"))
		})).Return(nil)

		h := settings.NewSettingsHandler(mockStorage, lending.NewSettingsFeeProvider(mockStorage, defaultConfig))

		req := httptest.NewRequest(http.MethodPut, "/settings/late-fees", strings.NewReader(`{"enabled":true,"rate":"2.50","interval":"week"}`))
		rr := httptest.NewRecorder()

		h.PutLateFeeConfig(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Invalid Interval", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		h := settings.NewSettingsHandler(mockStorage, fees.StaticProvider(defaultConfig))

		req := httptest.NewRequest(http.MethodPut, "/settings/late-fees", strings.NewReader(`{"enabled":true,"rate":"1","interval":"fortnightly"}`))
		rr := httptest.NewRecorder()

		h.PutLateFeeConfig(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		mockStorage.AssertNotCalled(t, "PutLateFeeConfig", mock.Anything, mock.Anything)
	})

	t.Run("Negative Rate", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		h := settings.NewSettingsHandler(mockStorage, fees.StaticProvider(defaultConfig))

		req := httptest.NewRequest(http.MethodPut, "/settings/late-fees", strings.NewReader(`{"enabled":true,"rate":"-1","interval":"day"}`))
		rr := httptest.NewRecorder()

		h.PutLateFeeConfig(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})
}
