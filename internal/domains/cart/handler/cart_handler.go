package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cozastore-backend/internal/domains/cart/model"
	"cozastore-backend/internal/domains/cart/service"
	"cozastore-backend/internal/shared/middleware"
	"cozastore-backend/internal/shared/response"
)

type CartHandler struct {
	service service.ServiceInterface
}

func NewCartHandler(s service.ServiceInterface) *CartHandler {
	return &CartHandler{service: s}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	userID := middleware.UserID(c)

	snapshot, err := h.service.GetCart(c.Request.Context(), userID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, snapshot)
}

func (h *CartHandler) AddToCart(c *gin.Context) {
	userID := middleware.UserID(c)

	var req model.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if _, err := h.service.AddToCart(c.Request.Context(), userID, req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "product added to cart")
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	userID := middleware.UserID(c)

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid cart item id")
		return
	}

	var req model.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if _, err := h.service.UpdateQuantity(c.Request.Context(), userID, itemID, req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "quantity updated")
}

func (h *CartHandler) Remove(c *gin.Context) {
	userID := middleware.UserID(c)

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid cart item id")
		return
	}

	if err := h.service.Remove(c.Request.Context(), userID, itemID); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "product removed from cart")
}

func (h *CartHandler) Clear(c *gin.Context) {
	userID := middleware.UserID(c)

	if err := h.service.Clear(c.Request.Context(), userID); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "cart cleared")
}

func (h *CartHandler) writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidQuantity):
		response.BadRequest(c, model.ErrInvalidQuantity.Error())
	case errors.Is(err, model.ErrProductNotFound):
		response.BadRequest(c, model.ErrProductNotFound.Error())
	case errors.Is(err, model.ErrLineNotFound):
		response.BadRequest(c, model.ErrLineNotFound.Error())
	case errors.Is(err, model.ErrStoreUnavailable):
		response.BadRequest(c, "cart store unavailable")
	default:
		response.BadRequest(c, err.Error())
	}
}
