package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adminboard/internal/domain"
	productsvc "adminboard/internal/service/product"
)

// productView augments a product with the stock status the dashboard tables
// display next to each row.
type productView struct {
	domain.Product
	StockStatus string `json:"stockStatus"`
}

func stockStatus(p domain.Product) string {
	switch {
	case p.Status == domain.ProductUnavailable:
		return "unavailable"
	case p.Stock == 0:
		return "out of stock"
	case p.Stock <= 5:
		return "low stock"
	default:
		return "in stock"
	}
}

func toProductView(p domain.Product) productView {
	return productView{Product: p, StockStatus: stockStatus(p)}
}

func listProducts(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := domain.ProductCategory(c.Query("category"))
		result, err := svc.List(c.Request.Context(), c.Query("q"), category)
		if err != nil {
			respondError(c, err)
			return
		}
		views := make([]productView, 0, len(result))
		for _, p := range result {
			views = append(views, toProductView(p))
		}
		c.JSON(http.StatusOK, gin.H{"products": views})
	}
}

func getProduct(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toProductView(*out))
	}
}

func createProduct(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in productsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondInvalid(c, err)
			return
		}
		out, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, toProductView(*out))
	}
}

func updateProduct(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in productsvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			respondInvalid(c, err)
			return
		}
		out, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toProductView(*out))
	}
}

func deleteProduct(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
