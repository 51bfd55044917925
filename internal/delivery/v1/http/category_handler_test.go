package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DRSN-tech/pricing-backend/internal/domain"
	"github.com/DRSN-tech/pricing-backend/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategoryUC struct {
	created *domain.Category
	listed  []*domain.Category
	err     error
}

func (f *fakeCategoryUC) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = &domain.Category{ID: uuid.New(), Name: name}
	return f.created, nil
}

func (f *fakeCategoryUC) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return f.listed, f.err
}

func (f *fakeCategoryUC) UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Category{ID: id, Name: name}, nil
}

func (f *fakeCategoryUC) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return f.err
}

func newCategoryTestServer(uc *fakeCategoryUC) *httptest.Server {
	r := chi.NewRouter()
	registerCategoryRoutes(r, NewCategoryHandler(uc, noopLogger{}))
	return httptest.NewServer(r)
}

func TestCreateCategoryHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &fakeCategoryUC{}
		srv := newCategoryTestServer(uc)
		defer srv.Close()

		resp, err := http.Post(srv.URL+"/categories", "application/json",
			strings.NewReader(`{"name":"Electronics"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body categoryResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Electronics", body.Name)
		assert.NotEqual(t, uuid.Nil, body.ID)
	})

	t.Run("empty name", func(t *testing.T) {
		srv := newCategoryTestServer(&fakeCategoryUC{err: e.ErrCategoryNameRequired})
		defer srv.Close()

		resp, err := http.Post(srv.URL+"/categories", "application/json", strings.NewReader(`{"name":""}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, e.ErrCategoryNameRequired.Error(), decodeError(t, resp).Message)
	})
}

func TestDeleteCategoryHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := newCategoryTestServer(&fakeCategoryUC{})
		defer srv.Close()

		req, err := http.NewRequest(http.MethodDelete, srv.URL+"/categories/"+uuid.NewString(), nil)
		require.NoError(t, err)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("invalid id", func(t *testing.T) {
		srv := newCategoryTestServer(&fakeCategoryUC{})
		defer srv.Close()

		req, err := http.NewRequest(http.MethodDelete, srv.URL+"/categories/42", nil)
		require.NoError(t, err)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, e.ErrInvalidCategoryID.Error(), decodeError(t, resp).Message)
	})

	t.Run("not found", func(t *testing.T) {
		srv := newCategoryTestServer(&fakeCategoryUC{err: e.ErrCategoryNotFound})
		defer srv.Close()

		req, err := http.NewRequest(http.MethodDelete, srv.URL+"/categories/"+uuid.NewString(), nil)
		require.NoError(t, err)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
