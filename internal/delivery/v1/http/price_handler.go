package http

import (
	"encoding/json"
	"net/http"

	"github.com/DRSN-tech/pricing-backend/internal/domain"
	"github.com/DRSN-tech/pricing-backend/internal/usecase"
	"github.com/DRSN-tech/pricing-backend/pkg/e"
	"github.com/DRSN-tech/pricing-backend/pkg/logger"
)

type PriceHandler struct {
	priceUsecase usecase.PriceUC
	logger       logger.Logger
}

func NewPriceHandler(priceUsecase usecase.PriceUC, logger logger.Logger) *PriceHandler {
	return &PriceHandler{priceUsecase: priceUsecase, logger: logger}
}

type setPriceRequest struct {
	ProductID string      `json:"product_id"`
	StartDate string      `json:"start_date"`
	EndDate   string      `json:"end_date"`
	Price     json.Number `json:"price"`
}

// setPrice устанавливает цену на каждый день диапазона [start_date, end_date].
// Повторный вызов с теми же аргументами не меняет итоговое состояние.
func (p *PriceHandler) setPrice(w http.ResponseWriter, r *http.Request) {
	var body setPriceRequest
	if err := decodeJSON(r, &body); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	productID, err := parseUUIDString(body.ProductID, e.ErrInvalidProductID)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, err.Error(), body.ProductID)
		WriteError(w, err)
		return
	}

	if body.StartDate == "" || body.EndDate == "" {
		p.logger.Warnf("%d %s", http.StatusBadRequest, e.ErrBothDatesRequired.Error())
		WriteError(w, e.ErrBothDatesRequired)
		return
	}

	rng, err := domain.ParseDateRange(body.StartDate, body.EndDate)
	if err != nil {
		p.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	priceCents, err := domain.ParsePriceToCents(body.Price.String())
	if err != nil {
		p.logger.Warnf("%d %s: %q", http.StatusBadRequest, err.Error(), body.Price.String())
		WriteError(w, err)
		return
	}

	event, err := p.priceUsecase.SetPriceForPeriod(r.Context(), usecase.NewSetPriceReq(productID, rng, priceCents))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"message":  "Price was set for a period!",
		"event_id": event.EventID,
	})
}

// getAveragePrice возвращает среднюю цену продукта за диапазон дат.
// Если в диапазоне нет ни одной записи, average_price равен null.
func (p *PriceHandler) getAveragePrice(w http.ResponseWriter, r *http.Request) {
	productID, err := parseUUIDParam(r, e.ErrInvalidProductID)
	if err != nil {
		p.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	rng, err := parseDateRangeQuery(r)
	if err != nil {
		p.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	avg, err := p.priceUsecase.GetAveragePriceForPeriod(r.Context(), usecase.NewAveragePriceReq(productID, rng))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"average_price": avg,
	})
}
