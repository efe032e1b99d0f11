package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/ucsbapi/internal/app/models"
)

// Store errors shared by every adapter
var (
	// ErrNotFound is returned when no row matches the requested key
	ErrNotFound = errors.New("not found")
	// ErrDuplicateKey is returned when an insert collides with an existing key
	ErrDuplicateKey = errors.New("duplicate key")
)

// DBTX is the subset of *pgxpool.Pool the PostgreSQL repositories need.
// pgx.Tx satisfies it too.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store is the persistence contract for one entity type T keyed by K
type Store[T any, K comparable] interface {
	// FindByID returns ErrNotFound when id is absent
	FindByID(ctx context.Context, id K) (*T, error)
	FindAll(ctx context.Context) ([]T, error)
	// Insert creates a new record. Surrogate keys are assigned by the store and
	// reflected in the returned value; an existing key yields ErrDuplicateKey.
	Insert(ctx context.Context, entity *T) (*T, error)
	// Save writes entity under its key, creating or replacing it
	Save(ctx context.Context, entity *T) (*T, error)
	Delete(ctx context.Context, entity *T) error
}

// Store instantiations used by the application
type (
	MenuItemStore     = Store[models.MenuItem, int64]
	OrganizationStore = Store[models.Organization, string]
	ArticleStore      = Store[models.Article, int64]
)

// Repositories holds all the repository instances
type Repositories struct {
	MenuItems     MenuItemStore
	Organizations OrganizationStore
	Articles      ArticleStore
}

// NewRepositories initializes the PostgreSQL repositories
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		MenuItems:     NewMenuItemRepository(db),
		Organizations: NewOrganizationRepository(db),
		Articles:      NewArticleRepository(db),
	}
}

func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

var (
	_ MenuItemStore     = (*MenuItemRepository)(nil)
	_ OrganizationStore = (*OrganizationRepository)(nil)
	_ ArticleStore      = (*ArticleRepository)(nil)
)
