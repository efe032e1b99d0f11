package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/yigit/ucsbapi/internal/app/models/dto"
	"github.com/yigit/ucsbapi/internal/app/services"
	"github.com/yigit/ucsbapi/internal/middleware"
	"github.com/yigit/ucsbapi/internal/pkg/apperrors"
)

// Operations is the set of endpoints a resource exposes
type Operations uint8

const (
	OpList Operations = 1 << iota
	OpGet
	OpCreate
	OpUpdate
	OpDelete

	OpReadCreate = OpList | OpGet | OpCreate
	OpAll        = OpReadCreate | OpUpdate | OpDelete
)

// Has reports whether every operation in op is enabled
func (o Operations) Has(op Operations) bool {
	return o&op == op
}

// Resource is a controller the router can mount under /api
type Resource interface {
	BasePath() string
	Operations() Operations
	GetAll(ctx *gin.Context)
	GetByKey(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

// ResourceController binds HTTP parameters for one entity type and delegates to its service
type ResourceController[T any, K comparable] struct {
	service    *services.ResourceService[T, K]
	basePath   string
	keyParam   string
	parseKey   func(string) (K, error)
	bindCreate func(*gin.Context) (*T, error)
	operations Operations
}

// BasePath returns the path below /api the resource is mounted on
func (c *ResourceController[T, K]) BasePath() string {
	return c.basePath
}

// Operations returns the enabled endpoints
func (c *ResourceController[T, K]) Operations() Operations {
	return c.operations
}

// GetAll handles GET /api/<entity>/all
func (c *ResourceController[T, K]) GetAll(ctx *gin.Context) {
	all, err := c.service.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, all)
}

// GetByKey handles GET /api/<entity>?<key>=K
func (c *ResourceController[T, K]) GetByKey(ctx *gin.Context) {
	key, err := c.key(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	entity, err := c.service.Get(ctx.Request.Context(), key)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, entity)
}

// Create handles POST /api/<entity>/post with the fields as query or form parameters
func (c *ResourceController[T, K]) Create(ctx *gin.Context) {
	entity, err := c.bindCreate(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	saved, err := c.service.Create(ctx.Request.Context(), entity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, saved)
}

// Update handles PUT /api/<entity>?<key>=K with the new field values as a JSON body
func (c *ResourceController[T, K]) Update(ctx *gin.Context) {
	key, err := c.key(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var incoming T
	if err := ctx.ShouldBindJSON(&incoming); err != nil {
		middleware.HandleAPIError(ctx, middleware.BindingError(err))
		return
	}

	updated, err := c.service.Update(ctx.Request.Context(), key, &incoming)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/<entity>?<key>=K
func (c *ResourceController[T, K]) Delete(ctx *gin.Context) {
	key, err := c.key(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), key); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(c.service.DeletedMessage(key)))
}

func (c *ResourceController[T, K]) key(ctx *gin.Context) (K, error) {
	var zero K

	raw, ok := ctx.GetQuery(c.keyParam)
	if !ok {
		return zero, apperrors.NewValidationError(fmt.Sprintf("Required parameter '%s' is not present", c.keyParam))
	}

	key, err := c.parseKey(raw)
	if err != nil {
		return zero, apperrors.NewValidationError(fmt.Sprintf("Invalid value '%s' for parameter '%s'", raw, c.keyParam))
	}
	return key, nil
}

// bindForm binds the create parameters of request type R from the query string or form body
func bindForm[T any, R interface{ ToModel() *T }](ctx *gin.Context) (*T, error) {
	var request R
	if err := ctx.ShouldBindWith(&request, binding.Form); err != nil {
		return nil, middleware.BindingError(err)
	}
	return request.ToModel(), nil
}
