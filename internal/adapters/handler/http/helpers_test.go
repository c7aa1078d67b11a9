package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	adapterHTTP "github.com/comitanigiacomo/habitpal/internal/adapters/handler/http"
	"github.com/comitanigiacomo/habitpal/internal/adapters/repository"
	"github.com/comitanigiacomo/habitpal/internal/core/domain"
	"github.com/comitanigiacomo/habitpal/internal/core/services"
)

var testNow = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.Local)

// flakyStore is an in-memory store whose writes can be switched off.
type flakyStore struct {
	*repository.InMemoryStore
	failWrites atomic.Bool
}

func (s *flakyStore) Set(ctx context.Context, key, value string) error {
	if s.failWrites.Load() {
		return errors.New("disk full")
	}
	return s.InMemoryStore.Set(ctx, key, value)
}

type testServer struct {
	router *gin.Engine
	store  *flakyStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx := context.Background()
	store := &flakyStore{InMemoryStore: repository.NewInMemoryStore()}
	opts := services.Options{
		Logger: zap.NewNop(),
		Now:    func() time.Time { return testNow },
	}

	catalog := domain.DefaultCatalog()
	catalogSvc := services.NewCatalogService(ctx, catalog, repository.NewKVSelectionRepository(store, "test"), opts)
	progressSvc := services.NewProgressService(ctx, repository.NewKVProgressRepository(store, "test"), nil, opts)
	statsSvc := services.NewStatsService(catalog, progressSvc, nil, opts)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		HabitHandler:    adapterHTTP.NewHabitHandler(catalogSvc, nil),
		ProgressHandler: adapterHTTP.NewProgressHandler(progressSvc, catalogSvc, nil),
		StatsHandler:    adapterHTTP.NewStatsHandler(statsSvc, catalogSvc, nil),
		Store:           store,
		StartTime:       time.Now(),
	})

	return &testServer{router: router, store: store}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
