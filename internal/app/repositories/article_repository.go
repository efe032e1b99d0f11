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

const articlesTable = "ucsb_articles"

var articleColumns = []string{"id", "title", "url", "explanation", "email", "date_added"}

// ArticleRepository handles article database operations
type ArticleRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewArticleRepository creates a new ArticleRepository
func NewArticleRepository(db DBTX) *ArticleRepository {
	return &ArticleRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanArticle(row pgx.Row) (*models.Article, error) {
	a := &models.Article{}
	if err := row.Scan(&a.ID, &a.Title, &a.URL, &a.Explanation, &a.Email, &a.DateAdded.Time); err != nil {
		return nil, err
	}
	return a, nil
}

// FindByID retrieves an article by ID
func (r *ArticleRepository) FindByID(ctx context.Context, id int64) (*models.Article, error) {
	sql, args, err := r.sb.Select(articleColumns...).
		From(articlesTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get article query: %w", err)
	}

	a, err := scanArticle(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("articleID", id).Msg("Error scanning article row")
		return nil, fmt.Errorf("error getting article by ID: %w", err)
	}
	return a, nil
}

// FindAll retrieves all articles
func (r *ArticleRepository) FindAll(ctx context.Context) ([]models.Article, error) {
	sql, args, err := r.sb.Select(articleColumns...).
		From(articlesTable).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all articles query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all articles query")
		return nil, fmt.Errorf("error querying articles: %w", err)
	}
	defer rows.Close()

	articles := []models.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning article row: %w", err)
		}
		articles = append(articles, *a)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating article rows")
		return nil, fmt.Errorf("error iterating article rows: %w", err)
	}

	return articles, nil
}

// Insert creates an article, letting the database assign its ID
func (r *ArticleRepository) Insert(ctx context.Context, a *models.Article) (*models.Article, error) {
	sql, args, err := r.sb.Insert(articlesTable).
		Columns("title", "url", "explanation", "email", "date_added").
		Values(a.Title, a.URL, a.Explanation, a.Email, a.DateAdded.Time).
		Suffix("RETURNING " + joinColumns(articleColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create article query: %w", err)
	}

	saved, err := scanArticle(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, ErrDuplicateKey
		}
		logger.Error().Err(err).Msg("Error executing create article query")
		return nil, fmt.Errorf("error creating article: %w", err)
	}
	return saved, nil
}

// Save upserts an article by ID; a zero ID is inserted as a new row
func (r *ArticleRepository) Save(ctx context.Context, a *models.Article) (*models.Article, error) {
	if a.ID == 0 {
		return r.Insert(ctx, a)
	}

	sql, args, err := r.sb.Insert(articlesTable).
		Columns(articleColumns...).
		Values(a.ID, a.Title, a.URL, a.Explanation, a.Email, a.DateAdded.Time).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			url = EXCLUDED.url,
			explanation = EXCLUDED.explanation,
			email = EXCLUDED.email,
			date_added = EXCLUDED.date_added
		RETURNING ` + joinColumns(articleColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build save article query: %w", err)
	}

	saved, err := scanArticle(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		logger.Error().Err(err).Int64("articleID", a.ID).Msg("Error executing save article query")
		return nil, fmt.Errorf("error saving article: %w", err)
	}
	return saved, nil
}

// Delete removes an article
func (r *ArticleRepository) Delete(ctx context.Context, a *models.Article) error {
	sql, args, err := r.sb.Delete(articlesTable).
		Where(squirrel.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete article query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("articleID", a.ID).Msg("Error executing delete article query")
		return fmt.Errorf("error deleting article: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
