package services

import "github.com/yigit/ucsbapi/internal/app/models"

// Entity names as they appear in response messages
const (
	MenuItemEntity     = "UCSBDiningCommonsMenuItem"
	OrganizationEntity = "UCSBOrganizations"
	ArticleEntity      = "UCSBArticles"
)

// MenuItemResource has no update support
var MenuItemResource = Resource[models.MenuItem, int64]{
	Name:  MenuItemEntity,
	KeyOf: func(m *models.MenuItem) int64 { return m.ID },
}

// OrganizationResource allows orgTranslation, orgTranslationShort and inactive to change
var OrganizationResource = Resource[models.Organization, string]{
	Name:  OrganizationEntity,
	KeyOf: func(o *models.Organization) string { return o.OrgCode },
	Merge: func(dst, src *models.Organization) {
		dst.OrgTranslation = src.OrgTranslation
		dst.OrgTranslationShort = src.OrgTranslationShort
		dst.Inactive = src.Inactive
	},
}

var ArticleResource = Resource[models.Article, int64]{
	Name:  ArticleEntity,
	KeyOf: func(a *models.Article) int64 { return a.ID },
}
