package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TamTranZrgz/ecom-nest/internal/http/middleware"
	"github.com/TamTranZrgz/ecom-nest/internal/modules/cart"
	"github.com/TamTranZrgz/ecom-nest/internal/shared/apperr"
)

type CartHandler struct {
	Svc *cart.Service
}

func NewCartHandler(svc *cart.Service) *CartHandler {
	return &CartHandler{Svc: svc}
}

type addToCartInput struct {
	SKUID    int64 `json:"skuId" binding:"required"`
	Quantity int   `json:"quantity" binding:"required,gt=0"`
}

// POST /cart
func (h *CartHandler) Add(c *gin.Context) {
	var in addToCartInput
	if !bindJSON(c, &in) {
		return
	}

	item, err := h.Svc.Add(c.Request.Context(), middleware.CurrentUserID(c), in.SKUID, in.Quantity)
	if err != nil {
		middleware.Fail(c, cartError(err))
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GET /cart
func (h *CartHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)

	res, err := h.Svc.List(c.Request.Context(), middleware.CurrentUserID(c), page, limit)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":       res.Data,
		"totalItems": res.TotalItems,
		"page":       res.Page,
		"limit":      res.Limit,
		"totalPages": totalPages(res.TotalItems, res.Limit),
	})
}

type updateCartItemInput struct {
	SKUID    int64 `json:"skuId" binding:"required"`
	Quantity int   `json:"quantity" binding:"required,gt=0"`
}

// PUT /cart/:cartItemId
func (h *CartHandler) Update(c *gin.Context) {
	cartItemID, ok := paramID(c, "cartItemId")
	if !ok {
		return
	}
	var in updateCartItemInput
	if !bindJSON(c, &in) {
		return
	}

	item, err := h.Svc.UpdateItem(c.Request.Context(), middleware.CurrentUserID(c), cartItemID, in.SKUID, in.Quantity)
	if err != nil {
		middleware.Fail(c, cartError(err))
		return
	}
	c.JSON(http.StatusOK, item)
}

type deleteCartInput struct {
	CartItemIDs []int64 `json:"cartItemIds" binding:"required,min=1"`
}

// POST /cart/delete
func (h *CartHandler) Delete(c *gin.Context) {
	var in deleteCartInput
	if !bindJSON(c, &in) {
		return
	}

	count, err := h.Svc.Delete(c.Request.Context(), middleware.CurrentUserID(c), in.CartItemIDs)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func cartError(err error) error {
	switch {
	case errors.Is(err, cart.ErrSKUNotFound):
		return apperr.NotFoundErr("SKU not found")
	case errors.Is(err, cart.ErrProductNotFound):
		return apperr.NotFoundErr("Product not found")
	case errors.Is(err, cart.ErrCartItemNotFound):
		return apperr.NotFoundErr("Cart item not found")
	case errors.Is(err, cart.ErrOutOfStock):
		return apperr.ConflictErr("SKU is out of stock")
	default:
		return apperr.Wrap(err)
	}
}
