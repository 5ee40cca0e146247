package routes

import (
	"scale_workshop/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathCustomers = "/customers"

func addCustomerRoutes(rg *gin.RouterGroup, h *handlers.CustomerHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", h.CreateCustomer)
		customers.GET("/:id", h.GetCustomer)
		customers.PATCH("/:id/contact", h.UpdateContact)
	}
}
