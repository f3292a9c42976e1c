package router

import (
	"github.com/labstack/echo/v4"

	"lingxi/internal/rest"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired, adminOnly, selfOrAdmin echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.GET("/email-verification/:code", handler.VerifyEmail)
	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)

	users.PUT("/:id", handler.UpdateUser, authRequired, selfOrAdmin)
	users.GET("", handler.GetAllUsers, authRequired, adminOnly)
	users.GET("/:id", handler.GetUserByID, authRequired, adminOnly)
	users.DELETE("/:id", handler.DeleteUser, authRequired, adminOnly)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts)
	products.POST("/analysis", handler.AnalyzeProduct)
}

func SetupCustomerRoutes(
	api *echo.Group,
	customerHandler *rest.CustomerHandler,
	feedbackHandler *rest.FeedbackHandler,
	recommendHandler *rest.RecommendHandler,
) {
	customers := api.Group("/customers")

	customers.GET("/random", customerHandler.GetRandomCustomer)
	customers.GET("/:custNo", customerHandler.GetCustomer)
	customers.POST("/:custNo/feedback", feedbackHandler.SubmitFeedback)
	customers.GET("/:custNo/next-recommendations", recommendHandler.NextRecommendations)
	customers.GET("/:custNo/recommendations/debug", recommendHandler.DebugRecommendations)
}
