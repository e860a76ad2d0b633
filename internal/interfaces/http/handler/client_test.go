package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	appClient "github.com/gescom/backend/internal/application/client"
	"github.com/gescom/backend/internal/domain/client"
	"github.com/gescom/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *MockClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]client.Client, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]client.Client), args.Error(1)
}

func (m *MockClientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClientRepository) Save(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newClientRouter(t *testing.T, repo client.Repository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewClientHandler(appClient.NewClientService(repo), zap.NewNop())

	engine := gin.New()
	group := engine.Group("/api/v1/clients")
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.PATCH("/:id/actif", h.SetActive)
	group.DELETE("/:id", h.Delete)
	return engine
}

func TestClientHandler_SetActive(t *testing.T) {
	stored, err := client.New("Paul", "Martin", "paul.martin@example.fr")
	require.NoError(t, err)

	repo := new(MockClientRepository)
	repo.On("FindByID", mock.Anything, stored.ID).Return(stored, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	engine := newClientRouter(t, repo)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/clients/"+stored.ID.String()+"/actif",
		bytes.NewReader([]byte(`{"is_active":false}`)))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeResponse(t, w)
	data := body["data"].(map[string]any)
	assert.Equal(t, false, data["is_active"])
	repo.AssertExpectations(t)
}

func TestClientHandler_SetActive_MissingFlag(t *testing.T) {
	repo := new(MockClientRepository)
	engine := newClientRouter(t, repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/clients/"+uuid.NewString()+"/actif",
		bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "Save")
}

func TestClientHandler_SetActive_NotFound(t *testing.T) {
	repo := new(MockClientRepository)
	repo.On("FindByID", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

	engine := newClientRouter(t, repo)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/clients/"+uuid.NewString()+"/actif",
		bytes.NewReader([]byte(`{"is_active":true}`)))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	errInfo := resp["error"].(map[string]any)
	assert.Equal(t, "ERR_NOT_FOUND", errInfo["code"])
}
