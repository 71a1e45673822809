package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"

	"github.com/TamTranZrgz/ecom-nest/internal/config"
	"github.com/TamTranZrgz/ecom-nest/internal/http/handlers"
	adminhandlers "github.com/TamTranZrgz/ecom-nest/internal/http/handlers/admin"
	"github.com/TamTranZrgz/ecom-nest/internal/http/middleware"
	"github.com/TamTranZrgz/ecom-nest/internal/mailer"
	"github.com/TamTranZrgz/ecom-nest/internal/modules/cart"
	"github.com/TamTranZrgz/ecom-nest/internal/modules/checkout"
	"github.com/TamTranZrgz/ecom-nest/internal/modules/email"
	"github.com/TamTranZrgz/ecom-nest/internal/modules/orders"
	"github.com/TamTranZrgz/ecom-nest/internal/modules/payments"
	"github.com/TamTranZrgz/ecom-nest/internal/modules/products"
	"github.com/TamTranZrgz/ecom-nest/internal/modules/users"
	"github.com/TamTranZrgz/ecom-nest/internal/queue"
)

func NewRouter(logger *slog.Logger, db *gorm.DB, cfg config.Config, asynqClient *asynq.Client) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	r := gin.New()
	// ErrorHandler sits outside Recovery so a recovered panic still gets
	// the JSON error envelope on the way out.
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.ErrorHandler(logger))
	r.Use(middleware.Recovery(logger))

	// services
	roleCache := users.NewRoleCache(db)
	cartSvc := cart.NewService(db)
	orderSvc := orders.NewService(db)
	adminOrderSvc := orders.NewAdminService(db)
	productRepo := products.NewRepo(db)

	var notifier payments.Notifier
	if cfg.SMTP.Host != "" {
		notifier = email.NewService(mailer.NewSMTPMailer(cfg.SMTP), cfg.EmailFrom, cfg.EmailFromName)
	}
	webhookSvc := payments.NewWebhookService(db, notifier, logger)

	var scheduler checkout.CancellationScheduler
	if asynqClient != nil {
		scheduler = queue.NewProducer(asynqClient, cfg.PaymentCancelDelay)
	}
	checkoutSvc := checkout.NewService(db, scheduler, logger)

	// handlers
	cartH := handlers.NewCartHandler(cartSvc)
	ordersH := handlers.NewOrdersHandler(orderSvc, checkoutSvc)
	productsH := handlers.NewProductsHandler(productRepo)
	webhookH := handlers.NewWebhookHandler(webhookSvc)
	adminOrdersH := adminhandlers.NewOrdersHandler(adminOrderSvc)

	// public catalog
	r.GET("/products", productsH.List)
	r.GET("/products/:productId", productsH.Detail)

	// authenticated buyer routes
	authed := r.Group("/", middleware.RequireAuth(cfg.JWTSecret))
	{
		authed.GET("/cart", cartH.List)
		authed.POST("/cart", cartH.Add)
		authed.PUT("/cart/:cartItemId", cartH.Update)
		authed.POST("/cart/delete", cartH.Delete)

		authed.GET("/orders", ordersH.List)
		authed.POST("/orders", ordersH.Create)
		authed.GET("/orders/:orderId", ordersH.Detail)
		authed.PUT("/orders/:orderId/cancel", ordersH.Cancel)
	}

	// back office
	adminGroup := r.Group("/admin",
		middleware.RequireAuth(cfg.JWTSecret),
		middleware.RequireRole(roleCache, users.RoleAdmin))
	{
		adminGroup.GET("/orders", adminOrdersH.List)
		adminGroup.POST("/orders/:orderId/transition", adminOrdersH.Transition)
	}

	// payment gateway webhook
	r.POST("/payment/receiver",
		middleware.RequirePaymentAPIKey(cfg.PaymentAPIKey),
		webhookH.Receive)

	return r
}
