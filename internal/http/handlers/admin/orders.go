package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/TamTranZrgz/ecom-nest/internal/http/middleware"
	"github.com/TamTranZrgz/ecom-nest/internal/http/validation"
	"github.com/TamTranZrgz/ecom-nest/internal/modules/orders"
	"github.com/TamTranZrgz/ecom-nest/internal/shared/apperr"
)

type OrdersHandler struct {
	Svc *orders.AdminService
}

func NewOrdersHandler(svc *orders.AdminService) *OrdersHandler {
	return &OrdersHandler{Svc: svc}
}

// GET /admin/orders
func (h *OrdersHandler) List(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !orders.ValidStatus(status) {
		middleware.Fail(c, apperr.InvalidErr("Unknown order status.", nil))
		return
	}
	shopID, _ := strconv.ParseInt(c.Query("shopId"), 10, 64)
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	res, err := h.Svc.List(c.Request.Context(), orders.AdminListParams{
		Status:   status,
		ShopID:   shopID,
		Page:     page,
		PageSize: limit,
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": res.Items, "totalItems": res.Total})
}

type transitionInput struct {
	Action string `json:"action" binding:"required,oneof=ship deliver return"`
}

// POST /admin/orders/:orderId/transition
func (h *OrdersHandler) Transition(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil || orderID < 1 {
		middleware.Fail(c, apperr.InvalidErr("Invalid order id.", nil))
		return
	}

	var in transitionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fields := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Request body is invalid.", fields))
		return
	}

	o, err := h.Svc.Transition(c.Request.Context(), orders.TransitionInput{
		OrderID:     orderID,
		ActorUserID: middleware.CurrentUserID(c),
		Action:      in.Action,
	})
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			middleware.Fail(c, apperr.NotFoundErr("Order not found"))
		case errors.Is(err, orders.ErrInvalidTransition), errors.Is(err, orders.ErrNotActionable):
			middleware.Fail(c, apperr.ConflictErr("Order cannot take this transition"))
		default:
			middleware.Fail(c, apperr.Wrap(err))
		}
		return
	}
	c.JSON(http.StatusOK, o)
}
