package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/TamTranZrgz/ecom-nest/internal/http/middleware"
	"github.com/TamTranZrgz/ecom-nest/internal/http/validation"
	"github.com/TamTranZrgz/ecom-nest/internal/modules/payments"
	"github.com/TamTranZrgz/ecom-nest/internal/shared/apperr"
)

type WebhookHandler struct {
	WebhookSvc *payments.WebhookService
}

func NewWebhookHandler(svc *payments.WebhookService) *WebhookHandler {
	return &WebhookHandler{WebhookSvc: svc}
}

// POST /payment/receiver
// The raw body is kept verbatim for the audit row, so the payload is read
// once here and unmarshalled by hand.
func (h *WebhookHandler) Receive(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("Cannot read request body.", nil))
		return
	}

	var payload payments.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Webhook payload is not valid JSON.", nil))
		return
	}
	if err := binding.Validator.ValidateStruct(&payload); err != nil {
		fields := validation.FromBindError(err, &payload)
		middleware.Fail(c, apperr.InvalidErr("Webhook payload is invalid.", fields))
		return
	}

	if err := h.WebhookSvc.Receive(c.Request.Context(), payload, body); err != nil {
		if _, ok := apperr.As(err); ok {
			middleware.Fail(c, err)
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment success"})
}
