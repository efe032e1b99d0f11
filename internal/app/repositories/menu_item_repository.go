package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/ucsbapi/internal/app/models"
	"github.com/yigit/ucsbapi/internal/pkg/dberrors"
	"github.com/yigit/ucsbapi/internal/pkg/logger"
)

const menuItemsTable = "ucsb_dining_commons_menu_items"

var menuItemColumns = []string{"id", "dining_commons_code", "name", "station"}

// MenuItemRepository handles dining commons menu item database operations
type MenuItemRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewMenuItemRepository creates a new MenuItemRepository
func NewMenuItemRepository(db DBTX) *MenuItemRepository {
	return &MenuItemRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanMenuItem(row pgx.Row) (*models.MenuItem, error) {
	item := &models.MenuItem{}
	if err := row.Scan(&item.ID, &item.DiningCommonsCode, &item.Name, &item.Station); err != nil {
		return nil, err
	}
	return item, nil
}

// FindByID retrieves a menu item by ID
func (r *MenuItemRepository) FindByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	sql, args, err := r.sb.Select(menuItemColumns...).
		From(menuItemsTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get menu item query: %w", err)
	}

	item, err := scanMenuItem(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("menuItemID", id).Msg("Error scanning menu item row")
		return nil, fmt.Errorf("error getting menu item by ID: %w", err)
	}
	return item, nil
}

// FindAll retrieves all menu items
func (r *MenuItemRepository) FindAll(ctx context.Context) ([]models.MenuItem, error) {
	sql, args, err := r.sb.Select(menuItemColumns...).
		From(menuItemsTable).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all menu items query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all menu items query")
		return nil, fmt.Errorf("error querying menu items: %w", err)
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning menu item row: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating menu item rows")
		return nil, fmt.Errorf("error iterating menu item rows: %w", err)
	}

	return items, nil
}

// Insert creates a menu item, letting the database assign its ID
func (r *MenuItemRepository) Insert(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	sql, args, err := r.sb.Insert(menuItemsTable).
		Columns("dining_commons_code", "name", "station").
		Values(item.DiningCommonsCode, item.Name, item.Station).
		Suffix("RETURNING " + joinColumns(menuItemColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create menu item query: %w", err)
	}

	saved, err := scanMenuItem(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, ErrDuplicateKey
		}
		logger.Error().Err(err).Msg("Error executing create menu item query")
		return nil, fmt.Errorf("error creating menu item: %w", err)
	}
	return saved, nil
}

// Save upserts a menu item by ID; a zero ID is inserted as a new row
func (r *MenuItemRepository) Save(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	if item.ID == 0 {
		return r.Insert(ctx, item)
	}

	sql, args, err := r.sb.Insert(menuItemsTable).
		Columns(menuItemColumns...).
		Values(item.ID, item.DiningCommonsCode, item.Name, item.Station).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			dining_commons_code = EXCLUDED.dining_commons_code,
			name = EXCLUDED.name,
			station = EXCLUDED.station
		RETURNING ` + joinColumns(menuItemColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build save menu item query: %w", err)
	}

	saved, err := scanMenuItem(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		logger.Error().Err(err).Int64("menuItemID", item.ID).Msg("Error executing save menu item query")
		return nil, fmt.Errorf("error saving menu item: %w", err)
	}
	return saved, nil
}

// Delete removes a menu item
func (r *MenuItemRepository) Delete(ctx context.Context, item *models.MenuItem) error {
	sql, args, err := r.sb.Delete(menuItemsTable).
		Where(squirrel.Eq{"id": item.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete menu item query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("menuItemID", item.ID).Msg("Error executing delete menu item query")
		return fmt.Errorf("error deleting menu item: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
