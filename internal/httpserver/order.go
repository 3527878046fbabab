package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adminboard/internal/domain"
	ordersvc "adminboard/internal/service/order"
)

func listOrders(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		if result == nil {
			result = []domain.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"orders": result})
	}
}

func getOrder(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func createOrder(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ordersvc.CommitInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondInvalid(c, err)
			return
		}
		out, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}

func updateOrder(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ordersvc.CommitInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondInvalid(c, err)
			return
		}
		out, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func deleteOrder(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// previewOrder runs the composition engine on a draft without persisting:
// the SPA calls this while the user edits to keep quantities clamped and the
// displayed total consistent.
func previewOrder(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ordersvc.CommitInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondInvalid(c, err)
			return
		}
		out, err := svc.Preview(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
