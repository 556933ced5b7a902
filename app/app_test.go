package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Someshsw1109/soundwave-backend/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testServer struct {
	app   *Application
	e     *echo.Echo
	db    *gorm.DB
	redis *miniredis.Miniredis
}

// setupTestServer wires an Application to an in-memory SQLite database and a
// miniredis instance. Its clock moves one second forward on every read.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	mr := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rc.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := DefaultConfig()
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.BcryptCost = bcrypt.MinCost

	application, err := New(cfg, log, db, rc)
	require.NoError(t, err)

	base := time.Now().UTC().Truncate(time.Second)
	var ticks atomic.Int64
	application.now = func() time.Time {
		return base.Add(time.Duration(ticks.Add(1)) * time.Second)
	}

	require.NoError(t, application.Migrate())

	return &testServer{
		app:   application,
		e:     application.Router(),
		db:    db,
		redis: mr,
	}
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)

	return rec
}

func (ts *testServer) doRaw(t *testing.T, method, path, token string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)

	return rec
}

type testUser struct {
	ID    string
	Token string
}

func (ts *testServer) register(t *testing.T, name string) testUser {
	t.Helper()

	rec := ts.do(t, http.MethodPost, "/api/auth/register", "", models.RegisterRequest{
		Email:    name + "@example.com",
		Password: "secret-" + name,
		Name:     name,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	res := decode[models.AuthResponse](t, rec)
	require.NotEmpty(t, res.Token)

	return testUser{ID: res.User.ID, Token: res.Token}
}

func (ts *testServer) createPlaylist(t *testing.T, owner testUser, name string, public bool) models.PlaylistResponse {
	t.Helper()

	rec := ts.do(t, http.MethodPost, "/api/playlists", owner.Token, models.CreatePlaylistRequest{
		Name:     name,
		IsPublic: public,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return decode[models.PlaylistResponse](t, rec)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())

	return v
}

func requireError(t *testing.T, rec *httptest.ResponseRecorder, code int, err error) {
	t.Helper()

	require.Equal(t, code, rec.Code, rec.Body.String())
	require.Equal(t, models.ErrorResponse{Error: err.Error()}, decode[models.ErrorResponse](t, rec))
}
