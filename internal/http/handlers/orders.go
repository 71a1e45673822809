package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TamTranZrgz/ecom-nest/internal/http/middleware"
	"github.com/TamTranZrgz/ecom-nest/internal/http/validation"
	"github.com/TamTranZrgz/ecom-nest/internal/modules/checkout"
	"github.com/TamTranZrgz/ecom-nest/internal/modules/orders"
	"github.com/TamTranZrgz/ecom-nest/internal/shared/apperr"
)

type OrdersHandler struct {
	OrderSvc    *orders.Service
	CheckoutSvc *checkout.Service
}

func NewOrdersHandler(orderSvc *orders.Service, checkoutSvc *checkout.Service) *OrdersHandler {
	return &OrdersHandler{OrderSvc: orderSvc, CheckoutSvc: checkoutSvc}
}

// GET /orders
func (h *OrdersHandler) List(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !orders.ValidStatus(status) {
		middleware.Fail(c, apperr.InvalidErr("Unknown order status.", nil))
		return
	}

	in := orders.ListByUserParams{
		UserID:   middleware.CurrentUserID(c),
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "limit", 20),
		Status:   status,
	}
	res, err := h.OrderSvc.List(c.Request.Context(), in)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":       res.Items,
		"totalItems": res.Total,
		"page":       in.Page,
		"limit":      in.PageSize,
		"totalPages": totalPages(res.Total, in.PageSize),
	})
}

type checkoutGroupInput struct {
	ShopID   int64 `json:"shopId" binding:"required"`
	Receiver struct {
		Name    string `json:"name" binding:"required"`
		Phone   string `json:"phone" binding:"required,min=9,max=20"`
		Address string `json:"address" binding:"required"`
	} `json:"receiver" binding:"required"`
	CartItemIDs []int64 `json:"cartItemIds" binding:"required,min=1"`
}

// POST /orders: the checkout call. Body is an array of shipment groups,
// one per shop.
func (h *OrdersHandler) Create(c *gin.Context) {
	var in []checkoutGroupInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fields := validation.FromBindError(err, &checkoutGroupInput{})
		middleware.Fail(c, apperr.InvalidErr("Request body is invalid.", fields))
		return
	}
	if len(in) == 0 {
		middleware.Fail(c, apperr.InvalidErr("Checkout needs at least one group.", nil))
		return
	}

	groups := make([]checkout.Group, 0, len(in))
	for _, g := range in {
		groups = append(groups, checkout.Group{
			ShopID: g.ShopID,
			Receiver: orders.Receiver{
				Name:    g.Receiver.Name,
				Phone:   g.Receiver.Phone,
				Address: g.Receiver.Address,
			},
			CartItemIDs: g.CartItemIDs,
		})
	}

	res, err := h.CheckoutSvc.Create(c.Request.Context(), middleware.CurrentUserID(c), groups)
	if err != nil {
		middleware.Fail(c, checkoutError(err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"paymentId": res.PaymentID,
		"orders":    res.Orders,
	})
}

// GET /orders/:orderId
func (h *OrdersHandler) Detail(c *gin.Context) {
	orderID, ok := paramID(c, "orderId")
	if !ok {
		return
	}

	o, err := h.OrderSvc.Detail(c.Request.Context(), middleware.CurrentUserID(c), orderID)
	if err != nil {
		middleware.Fail(c, orderError(err))
		return
	}
	c.JSON(http.StatusOK, o)
}

// PUT /orders/:orderId/cancel
func (h *OrdersHandler) Cancel(c *gin.Context) {
	orderID, ok := paramID(c, "orderId")
	if !ok {
		return
	}

	o, err := h.OrderSvc.Cancel(c.Request.Context(), middleware.CurrentUserID(c), orderID)
	if err != nil {
		middleware.Fail(c, orderError(err))
		return
	}
	c.JSON(http.StatusOK, o)
}

func checkoutError(err error) error {
	switch {
	case errors.Is(err, checkout.ErrEmptyCheckout):
		return apperr.InvalidErr("Checkout needs at least one cart item.", nil)
	case errors.Is(err, checkout.ErrCartItemNotFound):
		return apperr.NotFoundErr("Cart item not found")
	case errors.Is(err, checkout.ErrProductNotFound):
		return apperr.NotFoundErr("Product not found")
	case errors.Is(err, checkout.ErrOutOfStock):
		return apperr.ConflictErr("SKU is out of stock")
	case errors.Is(err, checkout.ErrSKUNotBelongToShop):
		return apperr.ConflictErr("SKU does not belong to the declared shop")
	default:
		return apperr.Wrap(err)
	}
}

func orderError(err error) error {
	switch {
	case errors.Is(err, orders.ErrOrderNotFound):
		return apperr.NotFoundErr("Order not found")
	case errors.Is(err, orders.ErrCannotCancelOrder):
		return apperr.ConflictErr("Order can no longer be cancelled")
	default:
		return apperr.Wrap(err)
	}
}
