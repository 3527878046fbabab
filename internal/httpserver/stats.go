package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func getStats(repo StatsRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := repo.Summary(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("top", "5"))
		top, err := repo.TopCustomers(c.Request.Context(), limit)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"summary": summary, "topCustomers": top})
	}
}
