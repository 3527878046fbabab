package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adminboard/internal/domain"
	employeesvc "adminboard/internal/service/employee"
)

func listEmployees(svc EmployeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := svc.List(c.Request.Context(), c.Query("q"))
		if err != nil {
			respondError(c, err)
			return
		}
		if result == nil {
			result = []domain.Employee{}
		}
		c.JSON(http.StatusOK, gin.H{"employees": result})
	}
}

func getEmployee(svc EmployeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func createEmployee(svc EmployeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in employeesvc.Input
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

func updateEmployee(svc EmployeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in employeesvc.Input
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

func deleteEmployee(svc EmployeeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
