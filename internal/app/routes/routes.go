package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/ucsbapi/internal/app/auth"
	"github.com/yigit/ucsbapi/internal/app/controllers"
	"github.com/yigit/ucsbapi/internal/app/models/dto"
	"github.com/yigit/ucsbapi/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authMiddleware *middleware.AuthMiddleware,
	resources ...controllers.Resource,
) {
	// a known path with a method the resource does not expose answers 405
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, dto.NewErrorResponse(dto.ErrorTypeMethod,
			"Request method '"+c.Request.Method+"' is not supported"))
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// every /api route requires a valid bearer token
	api := router.Group("/api")
	api.Use(authMiddleware.JWTAuth())

	for _, resource := range resources {
		registerResource(api, authMiddleware, resource)
	}
}

// registerResource mounts the enabled operations of resource under its base path
func registerResource(api *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware, resource controllers.Resource) {
	group := api.Group(resource.BasePath())
	ops := resource.Operations()

	readers := group.Group("")
	readers.Use(authMiddleware.RoleRequired(auth.CapabilityUser))
	{
		if ops.Has(controllers.OpList) {
			readers.GET("/all", resource.GetAll)
		}
		if ops.Has(controllers.OpGet) {
			readers.GET("", resource.GetByKey)
		}
	}

	admins := group.Group("")
	admins.Use(authMiddleware.RoleRequired(auth.CapabilityAdmin))
	{
		if ops.Has(controllers.OpCreate) {
			admins.POST("/post", resource.Create)
		}
		if ops.Has(controllers.OpUpdate) {
			admins.PUT("", resource.Update)
		}
		if ops.Has(controllers.OpDelete) {
			admins.DELETE("", resource.Delete)
		}
	}
}
