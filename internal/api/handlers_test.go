package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ptaxservice/internal/service"
)

const testSourceURL = "https://api.bcb.gov.br/dados/serie/bcdata.sgs.1/dados?formato=json&dataInicial=06/08/2025&dataFinal=06/08/2025"

func testQuotation() *service.Quotation {
	return &service.Quotation{
		Rate:      decimal.RequireFromString("5.4638"),
		Date:      time.Date(2025, time.August, 6, 0, 0, 0, 0, time.UTC),
		SourceURL: testSourceURL,
	}
}

// renderingService renders with the real renderer on top of a fixed quotation.
func renderingService() *mockConversionService {
	return &mockConversionService{
		convertFunc: func(ctx context.Context, req service.ConversionRequest) (*service.ConversionResult, error) {
			q := testQuotation()
			text, err := service.Render(req.USDAmount, q, req.ShowSource)
			if err != nil {
				return nil, err
			}
			return &service.ConversionResult{
				USDAmount: req.USDAmount,
				BRLAmount: req.USDAmount.Mul(q.Rate),
				Quotation: q,
				Text:      text,
			}, nil
		},
		rateFunc: func(ctx context.Context, referenceDate *time.Time) (*service.Quotation, error) {
			return testQuotation(), nil
		},
	}
}

func postConvert(t *testing.T, svc service.ConversionServiceInterface, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/convert", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	HandleConvert(svc, time.UTC).ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp.Success)
	return resp
}

func TestHandleConvert(t *testing.T) {
	t.Run("valid amount returns 200", func(t *testing.T) {
		svc := renderingService()
		w := postConvert(t, svc, `{"usd_amount": 6774.00}`)

		require.Equal(t, http.StatusOK, w.Code)
		var resp ConvertResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

		assert.True(t, resp.Success)
		assert.Equal(t, 6774.00, resp.Data.USDAmount)
		assert.Equal(t, 37011.78, resp.Data.BRLAmount)
		assert.Equal(t, 5.4638, resp.Data.Rate)
		assert.Equal(t, "06/08/2025", resp.Data.Date)
		assert.Equal(t, sourceName, resp.Data.Source)
		assert.Empty(t, resp.Data.SourceURL)
		assert.Contains(t, resp.Text, "USD 6.774,00")
		assert.NotContains(t, resp.Text, "Fonte dos dados")
	})

	t.Run("show_url adds source url", func(t *testing.T) {
		svc := renderingService()
		w := postConvert(t, svc, `{"usd_amount": 100, "show_url": true}`)

		require.Equal(t, http.StatusOK, w.Code)
		var resp ConvertResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, testSourceURL, resp.Data.SourceURL)
		assert.Contains(t, resp.Text, "\nFonte dos dados: "+testSourceURL)
	})

	t.Run("reference date is passed through unadjusted", func(t *testing.T) {
		var got *time.Time
		svc := renderingService()
		inner := svc.convertFunc
		svc.convertFunc = func(ctx context.Context, req service.ConversionRequest) (*service.ConversionResult, error) {
			got = req.ReferenceDate
			return inner(ctx, req)
		}

		w := postConvert(t, svc, `{"usd_amount": 100, "date": "07082025"}`)
		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, got)
		assert.Equal(t, "07/08/2025", got.Format(service.DateLayout))
	})

	badAmounts := []string{
		`{"usd_amount": -100}`,
		`{"usd_amount": 0}`,
		`{}`,
		`{"usd_amount": "100"}`,
		`{"usd_amount": null}`,
		`{"usd_amount": true}`,
	}
	for _, body := range badAmounts {
		t.Run("invalid amount "+body, func(t *testing.T) {
			svc := renderingService()
			w := postConvert(t, svc, body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, msgInvalidAmount, decodeError(t, w).Error)
			assert.Equal(t, 0, svc.calls)
		})
	}

	t.Run("empty body returns 400", func(t *testing.T) {
		svc := renderingService()
		w := postConvert(t, svc, ``)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, msgNoData, decodeError(t, w).Error)
		assert.Equal(t, 0, svc.calls)
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		svc := renderingService()
		w := postConvert(t, svc, `{"usd_amount":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, svc.calls)
	})

	t.Run("wrong date length returns 400", func(t *testing.T) {
		svc := renderingService()
		w := postConvert(t, svc, `{"usd_amount": 100, "date": "123"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, msgInvalidFormat, decodeError(t, w).Error)
		assert.Equal(t, 0, svc.calls)
	})

	t.Run("impossible date returns 400", func(t *testing.T) {
		svc := renderingService()
		w := postConvert(t, svc, `{"usd_amount": 100, "date": "32082025"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.True(t, strings.HasPrefix(decodeError(t, w).Error, msgInvalidDate))
		assert.Equal(t, 0, svc.calls)
	})

	t.Run("year zero returns 400", func(t *testing.T) {
		svc := renderingService()
		w := postConvert(t, svc, `{"usd_amount": 100, "date": "01010000"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.True(t, strings.HasPrefix(decodeError(t, w).Error, msgInvalidDate))
		assert.Equal(t, 0, svc.calls)
	})

	t.Run("numeric date returns 400", func(t *testing.T) {
		svc := renderingService()
		w := postConvert(t, svc, `{"usd_amount": 100, "date": 7082025}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, msgInvalidFormat, decodeError(t, w).Error)
	})

	t.Run("resolver failure returns 500 with cause", func(t *testing.T) {
		svc := &mockConversionService{
			convertFunc: func(ctx context.Context, req service.ConversionRequest) (*service.ConversionResult, error) {
				return nil, fmt.Errorf("%w: SGS returned status 503", service.ErrRateUnavailable)
			},
		}
		w := postConvert(t, svc, `{"usd_amount": 100}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		msg := decodeError(t, w).Error
		assert.True(t, strings.HasPrefix(msg, msgInternal))
		assert.Contains(t, msg, "status 503")
	})
}

func TestHandleGetRate(t *testing.T) {
	t.Run("no date returns rate", func(t *testing.T) {
		var got *time.Time
		svc := renderingService()
		svc.rateFunc = func(ctx context.Context, referenceDate *time.Time) (*service.Quotation, error) {
			got = referenceDate
			return testQuotation(), nil
		}

		req := httptest.NewRequest(http.MethodGet, "/api/rate", nil)
		w := httptest.NewRecorder()
		HandleGetRate(svc, time.UTC).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, got)

		var resp RateResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 5.4638, resp.Data.Rate)
		assert.Equal(t, "06/08/2025", resp.Data.Date)
		assert.Equal(t, sourceName, resp.Data.Source)
		assert.Equal(t, testSourceURL, resp.Data.SourceURL)
	})

	t.Run("with date", func(t *testing.T) {
		var got *time.Time
		svc := renderingService()
		svc.rateFunc = func(ctx context.Context, referenceDate *time.Time) (*service.Quotation, error) {
			got = referenceDate
			return testQuotation(), nil
		}

		req := httptest.NewRequest(http.MethodGet, "/api/rate?date=07082025", nil)
		w := httptest.NewRecorder()
		HandleGetRate(svc, time.UTC).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, got)
		assert.Equal(t, 7, got.Day())
	})

	t.Run("malformed date returns 400", func(t *testing.T) {
		svc := renderingService()
		req := httptest.NewRequest(http.MethodGet, "/api/rate?date=2025-08-07", nil)
		w := httptest.NewRecorder()
		HandleGetRate(svc, time.UTC).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, msgInvalidFormat, decodeError(t, w).Error)
		assert.Equal(t, 0, svc.calls)
	})

	t.Run("resolver failure returns 500", func(t *testing.T) {
		svc := &mockConversionService{
			rateFunc: func(ctx context.Context, referenceDate *time.Time) (*service.Quotation, error) {
				return nil, service.ErrRateUnavailable
			},
		}
		req := httptest.NewRequest(http.MethodGet, "/api/rate", nil)
		w := httptest.NewRecorder()
		HandleGetRate(svc, time.UTC).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHandleHealth(t *testing.T) {
	w := httptest.NewRecorder()
	HandleHealth().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, HealthResponse{Status: "healthy", Service: ServiceName, Version: Version}, resp)
}

func TestHandleInfo(t *testing.T) {
	w := httptest.NewRecorder()
	HandleInfo().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/info", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp InfoResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, Version, resp.Version)
	assert.Len(t, resp.Endpoints, 4)
	assert.Contains(t, resp.Endpoints, "POST /api/convert")
	assert.Equal(t, sourceName, resp.Source)
}

func TestHandleNotFound(t *testing.T) {
	w := httptest.NewRecorder()
	HandleNotFound().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, msgNotFound, decodeError(t, w).Error)
}
