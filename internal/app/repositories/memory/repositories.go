package memory

import (
	"fmt"

	"github.com/hashicorp/go-memdb"
	"github.com/yigit/ucsbapi/internal/app/models"
	"github.com/yigit/ucsbapi/internal/app/repositories"
)

const (
	menuItemsTable     = "menu_items"
	organizationsTable = "organizations"
	articlesTable      = "articles"
)

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			menuItemsTable: {
				Name: menuItemsTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {Name: "id", Unique: true, Indexer: &memdb.IntFieldIndex{Field: "ID"}},
				},
			},
			organizationsTable: {
				Name: organizationsTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {Name: "id", Unique: true, Indexer: &memdb.StringFieldIndex{Field: "OrgCode"}},
				},
			},
			articlesTable: {
				Name: articlesTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {Name: "id", Unique: true, Indexer: &memdb.IntFieldIndex{Field: "ID"}},
				},
			},
		},
	}
}

// NewRepositories creates empty in-memory stores for every entity. Integer ids are
// varint encoded in the index, so surrogate-key tables sort FindAll by id.
func NewRepositories() (*repositories.Repositories, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory database: %w", err)
	}

	return &repositories.Repositories{
		MenuItems: &Store[models.MenuItem, int64]{
			db:        db,
			table:     menuItemsTable,
			keyOf:     func(m *models.MenuItem) int64 { return m.ID },
			assignKey: func(m *models.MenuItem, id int64) { m.ID = id },
			less:      func(a, b *models.MenuItem) bool { return a.ID < b.ID },
		},
		Organizations: &Store[models.Organization, string]{
			db:    db,
			table: organizationsTable,
			keyOf: func(o *models.Organization) string { return o.OrgCode },
		},
		Articles: &Store[models.Article, int64]{
			db:        db,
			table:     articlesTable,
			keyOf:     func(a *models.Article) int64 { return a.ID },
			assignKey: func(a *models.Article, id int64) { a.ID = id },
			less:      func(a, b *models.Article) bool { return a.ID < b.ID },
		},
	}, nil
}
