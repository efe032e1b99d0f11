package controllers

import (
	"github.com/yigit/ucsbapi/internal/app/models"
	"github.com/yigit/ucsbapi/internal/app/models/dto"
	"github.com/yigit/ucsbapi/internal/app/services"
)

// ArticleController serves /api/ucsbarticles
type ArticleController = ResourceController[models.Article, int64]

// NewArticleController creates a new ArticleController
func NewArticleController(service *services.ArticleService) *ArticleController {
	return &ArticleController{
		service:    service,
		basePath:   "/ucsbarticles",
		keyParam:   "id",
		parseKey:   parseInt64Key,
		bindCreate: bindForm[models.Article, dto.CreateArticleRequest],
		operations: OpReadCreate,
	}
}
