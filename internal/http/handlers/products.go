package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TamTranZrgz/ecom-nest/internal/http/middleware"
	"github.com/TamTranZrgz/ecom-nest/internal/modules/products"
	"github.com/TamTranZrgz/ecom-nest/internal/shared/apperr"
)

type ProductsHandler struct {
	Repo *products.Repo
}

func NewProductsHandler(repo *products.Repo) *ProductsHandler {
	return &ProductsHandler{Repo: repo}
}

// GET /products
func (h *ProductsHandler) List(c *gin.Context) {
	in := products.ListParams{
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "limit", 20),
	}
	res, err := h.Repo.List(c.Request.Context(), in)
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

// GET /products/:productId
func (h *ProductsHandler) Detail(c *gin.Context) {
	productID, ok := paramID(c, "productId")
	if !ok {
		return
	}

	p, err := h.Repo.GetPublished(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, products.ErrNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Product not found"))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, p)
}
