package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Someshsw1109/soundwave-backend/models"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     int
		message  string
		errorLog bool
	}{
		{
			name:    "http error with sentinel",
			err:     echo.NewHTTPError(http.StatusForbidden, models.ErrNotAuthorized),
			code:    http.StatusForbidden,
			message: "not authorized",
		},
		{
			name:    "http error with string",
			err:     echo.NewHTTPError(http.StatusNotFound, "Not Found"),
			code:    http.StatusNotFound,
			message: "Not Found",
		},
		{
			name:    "record not found",
			err:     gorm.ErrRecordNotFound,
			code:    http.StatusNotFound,
			message: "record not found",
		},
		{
			name:     "anything else",
			err:      errors.New("connection refused"),
			code:     http.StatusInternalServerError,
			message:  "connection refused",
			errorLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, hook := test.NewNullLogger()
			application := &Application{Log: log}

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/x", nil), rec)

			application.HTTPErrorHandler(tt.err, c)

			require.Equal(t, tt.code, rec.Code)
			assert.Equal(t, models.ErrorResponse{Error: tt.message}, decode[models.ErrorResponse](t, rec))

			if tt.errorLog {
				require.NotNil(t, hook.LastEntry())
				assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
			} else {
				assert.Empty(t, hook.Entries)
			}
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	ts := setupTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/nope", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", decode[models.ErrorResponse](t, rec).Error)
}
