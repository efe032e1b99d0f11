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

const organizationsTable = "ucsb_organizations"

var organizationColumns = []string{"org_code", "org_translation", "org_translation_short", "inactive"}

// OrganizationRepository handles student organization database operations
type OrganizationRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewOrganizationRepository creates a new OrganizationRepository
func NewOrganizationRepository(db DBTX) *OrganizationRepository {
	return &OrganizationRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanOrganization(row pgx.Row) (*models.Organization, error) {
	org := &models.Organization{}
	if err := row.Scan(&org.OrgCode, &org.OrgTranslation, &org.OrgTranslationShort, &org.Inactive); err != nil {
		return nil, err
	}
	return org, nil
}

// FindByID retrieves an organization by its code
func (r *OrganizationRepository) FindByID(ctx context.Context, orgCode string) (*models.Organization, error) {
	sql, args, err := r.sb.Select(organizationColumns...).
		From(organizationsTable).
		Where(squirrel.Eq{"org_code": orgCode}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get organization query: %w", err)
	}

	org, err := scanOrganization(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("orgCode", orgCode).Msg("Error scanning organization row")
		return nil, fmt.Errorf("error getting organization by code: %w", err)
	}
	return org, nil
}

// FindAll retrieves all organizations
func (r *OrganizationRepository) FindAll(ctx context.Context) ([]models.Organization, error) {
	sql, args, err := r.sb.Select(organizationColumns...).
		From(organizationsTable).
		OrderBy("org_code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all organizations query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all organizations query")
		return nil, fmt.Errorf("error querying organizations: %w", err)
	}
	defer rows.Close()

	orgs := []models.Organization{}
	for rows.Next() {
		org, err := scanOrganization(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning organization row: %w", err)
		}
		orgs = append(orgs, *org)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating organization rows")
		return nil, fmt.Errorf("error iterating organization rows: %w", err)
	}

	return orgs, nil
}

// Insert creates an organization; an existing code yields ErrDuplicateKey
func (r *OrganizationRepository) Insert(ctx context.Context, org *models.Organization) (*models.Organization, error) {
	sql, args, err := r.sb.Insert(organizationsTable).
		Columns(organizationColumns...).
		Values(org.OrgCode, org.OrgTranslation, org.OrgTranslationShort, org.Inactive).
		Suffix("RETURNING " + joinColumns(organizationColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create organization query: %w", err)
	}

	saved, err := scanOrganization(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, ErrDuplicateKey
		}
		logger.Error().Err(err).Str("orgCode", org.OrgCode).Msg("Error executing create organization query")
		return nil, fmt.Errorf("error creating organization: %w", err)
	}
	return saved, nil
}

// Save upserts an organization by code
func (r *OrganizationRepository) Save(ctx context.Context, org *models.Organization) (*models.Organization, error) {
	sql, args, err := r.sb.Insert(organizationsTable).
		Columns(organizationColumns...).
		Values(org.OrgCode, org.OrgTranslation, org.OrgTranslationShort, org.Inactive).
		Suffix(`ON CONFLICT (org_code) DO UPDATE SET
			org_translation = EXCLUDED.org_translation,
			org_translation_short = EXCLUDED.org_translation_short,
			inactive = EXCLUDED.inactive
		RETURNING ` + joinColumns(organizationColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build save organization query: %w", err)
	}

	saved, err := scanOrganization(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		logger.Error().Err(err).Str("orgCode", org.OrgCode).Msg("Error executing save organization query")
		return nil, fmt.Errorf("error saving organization: %w", err)
	}
	return saved, nil
}

// Delete removes an organization
func (r *OrganizationRepository) Delete(ctx context.Context, org *models.Organization) error {
	sql, args, err := r.sb.Delete(organizationsTable).
		Where(squirrel.Eq{"org_code": org.OrgCode}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete organization query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("orgCode", org.OrgCode).Msg("Error executing delete organization query")
		return fmt.Errorf("error deleting organization: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
