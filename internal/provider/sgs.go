package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var _ RatesProvider = (*SGSProvider)(nil)

// Defaults for the Banco Central SGS API. Series 1 is the USD sell rate.
const (
	DefaultSGSBaseURL   = "https://api.bcb.gov.br/dados/serie"
	DefaultSGSSeries    = 1
	DefaultSGSTimeout   = 10
	DefaultSGSUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

const sgsDateLayout = "02/01/2006"

// ErrNoValue is returned when the SGS response carries no "valor" field.
var ErrNoValue = errors.New("no valor field in SGS response")

// SGSProvider fetches rates from the Banco Central do Brasil time-series API.
// Every call performs exactly one request; there is no retry.
type SGSProvider struct {
	baseURL   string
	series    int
	userAgent string
	client    *http.Client
}

// NewSGSProvider creates a new SGSProvider. Zero values fall back to the defaults.
func NewSGSProvider(baseURL string, series, timeoutSec int, userAgent string) *SGSProvider {
	if baseURL == "" {
		baseURL = DefaultSGSBaseURL
	}
	if series <= 0 {
		series = DefaultSGSSeries
	}
	if timeoutSec <= 0 {
		timeoutSec = DefaultSGSTimeout
	}
	if userAgent == "" {
		userAgent = DefaultSGSUserAgent
	}
	return &SGSProvider{
		baseURL:   strings.TrimRight(baseURL, "/"),
		series:    series,
		userAgent: userAgent,
		client:    &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}
}

// QueryURL forms the request URL for a single-day range. Slashes in the dates
// are left unescaped so the URL reads the same way it is shown to users.
func (p *SGSProvider) QueryURL(date time.Time) string {
	d := date.Format(sgsDateLayout)
	return fmt.Sprintf("%s/bcdata.sgs.%d/dados?formato=json&dataInicial=%s&dataFinal=%s",
		p.baseURL, p.series, d, d)
}

type sgsRecord struct {
	Data  string          `json:"data"`
	Valor json.RawMessage `json:"valor"`
}

// GetRate fetches the rate published for date.
func (p *SGSProvider) GetRate(ctx context.Context, date time.Time) (*Rate, error) {
	reqURL := p.QueryURL(date)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("SGS request creation failed: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("SGS request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("SGS returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode SGS response: %w", err)
	}

	value, err := parseSGSValue(raw)
	if err != nil {
		return nil, err
	}

	return &Rate{Value: value, SourceURL: reqURL}, nil
}

// parseSGSValue extracts the first "valor" from either a list of records (the
// documented shape) or a single record.
func parseSGSValue(raw json.RawMessage) (decimal.Decimal, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return decimal.Zero, ErrNoValue
	}

	switch raw[0] {
	case '[':
		var records []sgsRecord
		if err := json.Unmarshal(raw, &records); err != nil {
			return decimal.Zero, fmt.Errorf("failed to decode SGS records: %w", err)
		}
		for _, rec := range records {
			if hasValue(rec.Valor) {
				return parseValor(rec.Valor)
			}
		}
	case '{':
		var rec sgsRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return decimal.Zero, fmt.Errorf("failed to decode SGS record: %w", err)
		}
		if hasValue(rec.Valor) {
			return parseValor(rec.Valor)
		}
	}

	return decimal.Zero, ErrNoValue
}

func hasValue(v json.RawMessage) bool {
	return len(v) > 0 && !bytes.Equal(v, []byte("null"))
}

// parseValor accepts both "5.4638" and 5.4638.
func parseValor(v json.RawMessage) (decimal.Decimal, error) {
	text := string(v)
	if v[0] == '"' {
		if err := json.Unmarshal(v, &text); err != nil {
			return decimal.Zero, fmt.Errorf("failed to decode SGS valor: %w", err)
		}
	}
	value, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid SGS valor %q: %w", text, err)
	}
	return value, nil
}
