package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	categorymodel "cozastore-backend/internal/domains/category/model"
	"cozastore-backend/internal/domains/product/model"
	"cozastore-backend/internal/domains/product/service"
	"cozastore-backend/internal/shared/response"
)

type ProductHandler struct {
	service service.ServiceInterface
}

func NewProductHandler(s service.ServiceInterface) *ProductHandler {
	return &ProductHandler{service: s}
}

func (h *ProductHandler) GetAll(c *gin.Context) {
	products, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to list products")
		return
	}

	response.Success(c, http.StatusOK, products)
}

func (h *ProductHandler) GetByCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	products, err := h.service.GetByCategory(c.Request.Context(), categoryID)
	if err != nil {
		response.InternalServerError(c, "failed to list products")
		return
	}

	response.Success(c, http.StatusOK, products)
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}

	product, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		response.InternalServerError(c, "failed to get product")
		return
	}

	response.Success(c, http.StatusOK, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req model.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	product, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, categorymodel.ErrCategoryNotFound) {
			response.BadRequest(c, "category not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}

	var req model.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	product, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		response.InternalServerError(c, "failed to delete product")
		return
	}

	response.Message(c, http.StatusOK, "product deleted")
}
