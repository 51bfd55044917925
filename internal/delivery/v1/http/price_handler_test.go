package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DRSN-tech/pricing-backend/internal/usecase"
	"github.com/DRSN-tech/pricing-backend/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debugf(format string, args ...any)            {}
func (noopLogger) Infof(format string, args ...any)             {}
func (noopLogger) Warnf(format string, args ...any)             {}
func (noopLogger) Errorf(err error, format string, args ...any) {}

type fakePriceUC struct {
	setReq *usecase.SetPriceReq
	setErr error

	avgReq *usecase.AveragePriceReq
	avg    *decimal.Decimal
	avgErr error
}

func (f *fakePriceUC) SetPriceForPeriod(ctx context.Context, req *usecase.SetPriceReq) (*usecase.OutboxEvent, error) {
	f.setReq = req
	if f.setErr != nil {
		return nil, f.setErr
	}
	return &usecase.OutboxEvent{ID: 1, EventID: uuid.NewString()}, nil
}

func (f *fakePriceUC) GetAveragePriceForPeriod(ctx context.Context, req *usecase.AveragePriceReq) (*decimal.Decimal, error) {
	f.avgReq = req
	if f.avgErr != nil {
		return nil, f.avgErr
	}
	return f.avg, nil
}

func newPriceTestServer(uc *fakePriceUC) *httptest.Server {
	r := chi.NewRouter()
	registerPriceRoutes(r, NewPriceHandler(uc, noopLogger{}))
	return httptest.NewServer(r)
}

func decodeError(t *testing.T, resp *http.Response) *ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return &body
}

func postSetPrice(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url+"/prices/products/set-price", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestSetPriceHandler(t *testing.T) {
	productID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		uc := &fakePriceUC{}
		srv := newPriceTestServer(uc)
		defer srv.Close()

		resp := postSetPrice(t, srv.URL,
			`{"product_id":"`+productID+`","start_date":"2025-01-01","end_date":"2025-01-31","price":599.99}`)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		require.NotNil(t, uc.setReq)
		assert.Equal(t, productID, uc.setReq.ProductID.String())
		assert.Equal(t, int64(59999), uc.setReq.PriceCents)
		assert.Equal(t, 31, uc.setReq.Range.Len())

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Price was set for a period!", body["message"])
		assert.NotEmpty(t, body["event_id"])
	})

	t.Run("price as quoted decimal string", func(t *testing.T) {
		uc := &fakePriceUC{}
		srv := newPriceTestServer(uc)
		defer srv.Close()

		resp := postSetPrice(t, srv.URL,
			`{"product_id":"`+productID+`","start_date":"2025-01-01","end_date":"2025-01-02","price":"599.99"}`)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		require.NotNil(t, uc.setReq)
		assert.Equal(t, int64(59999), uc.setReq.PriceCents)
	})

	t.Run("price as non-numeric string", func(t *testing.T) {
		uc := &fakePriceUC{}
		srv := newPriceTestServer(uc)
		defer srv.Close()

		resp := postSetPrice(t, srv.URL,
			`{"product_id":"`+productID+`","start_date":"2025-01-01","end_date":"2025-01-02","price":"free"}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Nil(t, uc.setReq)
	})

	t.Run("invalid product id", func(t *testing.T) {
		srv := newPriceTestServer(&fakePriceUC{})
		defer srv.Close()

		resp := postSetPrice(t, srv.URL,
			`{"product_id":"not-a-uuid","start_date":"2025-01-01","end_date":"2025-01-02","price":100}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, e.ErrInvalidProductID.Error(), decodeError(t, resp).Message)
	})

	t.Run("invalid date format", func(t *testing.T) {
		srv := newPriceTestServer(&fakePriceUC{})
		defer srv.Close()

		resp := postSetPrice(t, srv.URL,
			`{"product_id":"`+productID+`","start_date":"01-01-2025","end_date":"2025-01-02","price":100}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, e.ErrInvalidDateFormat.Error(), decodeError(t, resp).Message)
	})

	t.Run("end before start", func(t *testing.T) {
		srv := newPriceTestServer(&fakePriceUC{})
		defer srv.Close()

		resp := postSetPrice(t, srv.URL,
			`{"product_id":"`+productID+`","start_date":"2025-01-31","end_date":"2025-01-01","price":100}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, e.ErrInvalidDateOrder.Error(), decodeError(t, resp).Message)
	})

	t.Run("negative price", func(t *testing.T) {
		srv := newPriceTestServer(&fakePriceUC{})
		defer srv.Close()

		resp := postSetPrice(t, srv.URL,
			`{"product_id":"`+productID+`","start_date":"2025-01-01","end_date":"2025-01-02","price":-5}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, e.ErrInvalidPrice.Error(), decodeError(t, resp).Message)
	})

	t.Run("missing dates", func(t *testing.T) {
		srv := newPriceTestServer(&fakePriceUC{})
		defer srv.Close()

		resp := postSetPrice(t, srv.URL, `{"product_id":"`+productID+`","price":100}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, e.ErrBothDatesRequired.Error(), decodeError(t, resp).Message)
	})

	t.Run("product not found", func(t *testing.T) {
		srv := newPriceTestServer(&fakePriceUC{setErr: e.ErrProductNotFound})
		defer srv.Close()

		resp := postSetPrice(t, srv.URL,
			`{"product_id":"`+productID+`","start_date":"2025-01-01","end_date":"2025-01-02","price":100}`)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, e.ErrProductNotFound.Error(), decodeError(t, resp).Message)
	})
}

func TestGetAveragePriceHandler(t *testing.T) {
	productID := uuid.NewString()
	getURL := func(srv *httptest.Server, query string) string {
		return srv.URL + "/prices/products/get-price/" + productID + query
	}

	t.Run("success", func(t *testing.T) {
		avg := decimal.RequireFromString("150.51")
		uc := &fakePriceUC{avg: &avg}
		srv := newPriceTestServer(uc)
		defer srv.Close()

		resp, err := http.Get(getURL(srv, "?start_date=2025-01-01&end_date=2025-01-31"))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			AveragePrice *decimal.Decimal `json:"average_price"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.NotNil(t, body.AveragePrice)
		assert.Equal(t, "150.51", body.AveragePrice.StringFixed(2))

		require.NotNil(t, uc.avgReq)
		assert.Equal(t, productID, uc.avgReq.ProductID.String())
	})

	t.Run("no data yields null", func(t *testing.T) {
		srv := newPriceTestServer(&fakePriceUC{})
		defer srv.Close()

		resp, err := http.Get(getURL(srv, "?start_date=2025-01-01&end_date=2025-01-31"))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			AveragePrice *decimal.Decimal `json:"average_price"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Nil(t, body.AveragePrice)
	})

	t.Run("missing query dates", func(t *testing.T) {
		srv := newPriceTestServer(&fakePriceUC{})
		defer srv.Close()

		resp, err := http.Get(getURL(srv, "?start_date=2025-01-01"))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, e.ErrBothDatesRequired.Error(), decodeError(t, resp).Message)
	})

	t.Run("invalid date format", func(t *testing.T) {
		srv := newPriceTestServer(&fakePriceUC{})
		defer srv.Close()

		resp, err := http.Get(getURL(srv, "?start_date=2025-01-01&end_date=31.01.2025"))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, e.ErrInvalidDateFormat.Error(), decodeError(t, resp).Message)
	})

	t.Run("product not found", func(t *testing.T) {
		srv := newPriceTestServer(&fakePriceUC{avgErr: e.ErrProductNotFound})
		defer srv.Close()

		resp, err := http.Get(getURL(srv, "?start_date=2025-01-01&end_date=2025-01-31"))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
