package http

import (
	"net/http"

	"github.com/DRSN-tech/pricing-backend/internal/usecase"
	"github.com/DRSN-tech/pricing-backend/pkg/e"
	"github.com/DRSN-tech/pricing-backend/pkg/logger"
	"github.com/google/uuid"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

type createProductRequest struct {
	Name       string  `json:"name"`
	CategoryID *string `json:"category_id"`
}

type updateProductRequest struct {
	Name       *string `json:"name"`
	CategoryID *string `json:"category_id"`
}

type productResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	CategoryID   *uuid.UUID `json:"category_id,omitempty"`
	CategoryName *string    `json:"category_name,omitempty"`
}

func parseOptionalCategoryID(s *string) (*uuid.UUID, error) {
	if s == nil {
		return nil, nil
	}
	id, err := parseUUIDString(*s, e.ErrInvalidCategoryID)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var body createProductRequest
	if err := decodeJSON(r, &body); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	categoryID, err := parseOptionalCategoryID(body.CategoryID)
	if err != nil {
		p.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	product, err := p.productUsecase.CreateProduct(r.Context(), &usecase.CreateProductReq{
		Name:       body.Name,
		CategoryID: categoryID,
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, &productResponse{
		ID:         product.ID,
		Name:       product.Name,
		CategoryID: product.CategoryID,
	})
}

func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, e.ErrInvalidProductID)
	if err != nil {
		p.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	info, err := p.productUsecase.GetProductInfo(r.Context(), id)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, &productResponse{
		ID:           info.ID,
		Name:         info.Name,
		CategoryName: info.CategoryName,
	})
}

func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	infos, err := p.productUsecase.ListProducts(r.Context())
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	resp := make([]*productResponse, 0, len(infos))
	for _, info := range infos {
		resp = append(resp, &productResponse{
			ID:           info.ID,
			Name:         info.Name,
			CategoryName: info.CategoryName,
		})
	}

	WriteSuccess(w, http.StatusOK, resp)
}

func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, e.ErrInvalidProductID)
	if err != nil {
		p.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	var body updateProductRequest
	if err := decodeJSON(r, &body); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	if body.Name == nil && body.CategoryID == nil {
		p.logger.Warnf("%d %s", http.StatusBadRequest, e.ErrMissingFields.Error())
		WriteError(w, e.ErrMissingFields)
		return
	}

	categoryID, err := parseOptionalCategoryID(body.CategoryID)
	if err != nil {
		p.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	product, err := p.productUsecase.UpdateProduct(r.Context(), &usecase.UpdateProductReq{
		ID:         id,
		Name:       body.Name,
		CategoryID: categoryID,
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, &productResponse{
		ID:         product.ID,
		Name:       product.Name,
		CategoryID: product.CategoryID,
	})
}

func (p *ProductHandler) archiveProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, e.ErrInvalidProductID)
	if err != nil {
		p.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	if err := p.productUsecase.ArchiveProduct(r.Context(), id); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
