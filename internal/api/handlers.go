package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"ptaxservice/internal/service"
)

var validate = validator.New()

// ConvertRequest represents the request body for a conversion
type ConvertRequest struct {
	USDAmount *float64 `json:"usd_amount" validate:"required,gt=0" example:"6774.00"`
	Date      string   `json:"date,omitempty" example:"07082025"`
	ShowURL   bool     `json:"show_url,omitempty" example:"false"`
}

// ConvertData holds the figures behind a rendered disclosure
type ConvertData struct {
	USDAmount float64 `json:"usd_amount" example:"6774.00"`
	BRLAmount float64 `json:"brl_amount" example:"37011.78"`
	Rate      float64 `json:"rate" example:"5.4638"`
	Date      string  `json:"date" example:"06/08/2025"`
	Source    string  `json:"source" example:"SGS - Banco Central do Brasil"`
	SourceURL string  `json:"source_url,omitempty" example:"https://api.bcb.gov.br/dados/serie/bcdata.sgs.1/dados?formato=json&dataInicial=06/08/2025&dataFinal=06/08/2025"`
}

// ConvertResponse represents the response for a conversion
type ConvertResponse struct {
	Success bool        `json:"success" example:"true"`
	Text    string      `json:"text" example:"Valor recebido em moeda estrangeira (USD 6.774,00), convertido conforme PTAX de venda de 06/08/2025 (R$ 5,4638), conforme IN RFB nº 1.312/2012. Valor total em reais: R$ 37.011,78."`
	Data    ConvertData `json:"data"`
}

// RateData holds a resolved quotation
type RateData struct {
	Rate      float64 `json:"rate" example:"5.4638"`
	Date      string  `json:"date" example:"06/08/2025"`
	Source    string  `json:"source" example:"SGS - Banco Central do Brasil"`
	SourceURL string  `json:"source_url" example:"https://api.bcb.gov.br/dados/serie/bcdata.sgs.1/dados?formato=json&dataInicial=06/08/2025&dataFinal=06/08/2025"`
}

// RateResponse represents the response for a rate lookup
type RateResponse struct {
	Success bool     `json:"success" example:"true"`
	Data    RateData `json:"data"`
}

// HandleConvert godoc
// @Summary Render a PTAX conversion disclosure
// @Description Converts a USD amount to BRL at the PTAX sell rate of the day before the reference date and renders the IN RFB nº 1.312/2012 disclosure text. Without a date, the reference date is today.
// @Tags conversion
// @Accept json
// @Produce json
// @Param request body ConvertRequest true "Amount in USD, optional reference date (DDMMYYYY) and source flag"
// @Success 200 {object} ConvertResponse "Conversion rendered"
// @Failure 400 {object} ErrorResponse "Invalid amount or date"
// @Failure 500 {object} ErrorResponse "Rate unavailable"
// @Router /api/convert [post]
func HandleConvert(svc service.ConversionServiceInterface, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ConvertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, decodeErrorMessage(err))
			return
		}
		if err := validate.Struct(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidAmount)
			return
		}

		refDate, err := service.ParseReferenceDate(req.Date, loc)
		if err != nil {
			writeError(w, http.StatusBadRequest, dateErrorMessage(err))
			return
		}

		usd := decimal.NewFromFloat(*req.USDAmount)
		res, err := svc.Convert(r.Context(), service.ConversionRequest{
			USDAmount:     usd,
			ReferenceDate: refDate,
			ShowSource:    req.ShowURL,
		})
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidAmount):
				writeError(w, http.StatusBadRequest, msgInvalidAmount)
			default:
				writeError(w, http.StatusInternalServerError, msgInternal+err.Error())
			}
			return
		}

		data := ConvertData{
			USDAmount: *req.USDAmount,
			BRLAmount: res.BRLAmount.Round(2).InexactFloat64(),
			Rate:      res.Quotation.Rate.InexactFloat64(),
			Date:      res.Quotation.DateString(),
			Source:    sourceName,
		}
		if req.ShowURL {
			data.SourceURL = res.Quotation.SourceURL
		}

		writeJSON(w, http.StatusOK, ConvertResponse{
			Success: true,
			Text:    res.Text,
			Data:    data,
		})
	}
}

// HandleGetRate godoc
// @Summary Get the applicable PTAX sell rate
// @Description Returns the PTAX sell rate of the day before the reference date. Without a date, the reference date is today.
// @Tags conversion
// @Produce json
// @Param date query string false "Reference date in DDMMYYYY" minlength(8) maxlength(8)
// @Success 200 {object} RateResponse "Rate found"
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Failure 500 {object} ErrorResponse "Rate unavailable"
// @Router /api/rate [get]
func HandleGetRate(svc service.ConversionServiceInterface, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		refDate, err := service.ParseReferenceDate(r.URL.Query().Get("date"), loc)
		if err != nil {
			writeError(w, http.StatusBadRequest, dateErrorMessage(err))
			return
		}

		q, err := svc.Rate(r.Context(), refDate)
		if err != nil {
			writeError(w, http.StatusInternalServerError, msgInternal+err.Error())
			return
		}

		writeJSON(w, http.StatusOK, RateResponse{
			Success: true,
			Data: RateData{
				Rate:      q.Rate.InexactFloat64(),
				Date:      q.DateString(),
				Source:    sourceName,
				SourceURL: q.SourceURL,
			},
		})
	}
}

// decodeErrorMessage maps a body decoding failure to the message for the offending field.
func decodeErrorMessage(err error) string {
	if errors.Is(err, io.EOF) {
		return msgNoData
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		switch typeErr.Field {
		case "usd_amount":
			return msgInvalidAmount
		case "date":
			return msgInvalidFormat
		}
	}
	return msgNoData
}

func dateErrorMessage(err error) string {
	if errors.Is(err, service.ErrDateFormat) {
		return msgInvalidFormat
	}
	return msgInvalidDate + err.Error()
}
