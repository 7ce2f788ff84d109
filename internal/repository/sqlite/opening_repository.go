package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/chessdash/internal/logger"
	"github.com/vytor/chessdash/internal/models"
	"github.com/vytor/chessdash/internal/repository"
)

var openingColumns = []string{
	"name", "effectiveness_white", "effectiveness_black", "aggressivity", "volatility", "popularity",
}

type openingRepository struct {
	db *sql.DB
}

// NewOpeningRepository creates a new OpeningRepository implementation
func NewOpeningRepository(db *sql.DB) repository.OpeningRepository {
	return &openingRepository{db: db}
}

// ReplaceAll swaps the catalog contents for openings, keeping their order.
func (r *openingRepository) ReplaceAll(ctx context.Context, openings []models.OpeningRecord) error {
	log := logger.FromContext(ctx).WithPrefix("opening_repo")
	log.Debug("replacing opening catalog with %d openings", len(openings))

	insertSQL, _, err := sqlBuilder.Insert("openings").
		Columns(append([]string{"position"}, openingColumns...)...).
		Values(0, "", 0.0, 0.0, 0.0, 0.0, 0.0).
		ToSql()
	if err != nil {
		log.Error("failed to build insert: %v", err)
		return err
	}

	return tx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM openings`); err != nil {
			log.Error("failed to clear openings: %v", err)
			return err
		}
		stmt, err := tx.PrepareContext(ctx, insertSQL)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, o := range openings {
			if _, err := stmt.ExecContext(ctx, i, o.Name, o.EffectivenessWhite, o.EffectivenessBlack, o.Aggressivity, o.Volatility, o.Popularity); err != nil {
				log.Error("failed to insert opening %q: %v", o.Name, err)
				return err
			}
		}
		return nil
	})
}

// List returns openings in catalog order, optionally narrowed by a
// case-insensitive name substring.
func (r *openingRepository) List(ctx context.Context, filter models.OpeningFilter) ([]models.OpeningRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("opening_repo")
	log.Debug("listing openings: name_contains=%q, limit=%d", filter.NameContains, filter.Limit)

	query := sqlBuilder.Select(openingColumns...).From("openings").OrderBy("position ASC")
	if filter.NameContains != "" {
		query = query.Where(squirrel.Expr(`name LIKE ? ESCAPE '\'`, containsPattern(filter.NameContains)))
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list openings: %v", err)
		return nil, err
	}
	defer rows.Close()

	openings := []models.OpeningRecord{}
	for rows.Next() {
		var o models.OpeningRecord
		if err := rows.Scan(&o.Name, &o.EffectivenessWhite, &o.EffectivenessBlack, &o.Aggressivity, &o.Volatility, &o.Popularity); err != nil {
			log.Error("failed to scan opening row: %v", err)
			return nil, err
		}
		openings = append(openings, o)
	}
	log.Debug("found %d openings", len(openings))
	return openings, rows.Err()
}

// Get returns the named opening, or nil when it is not in the catalog.
func (r *openingRepository) Get(ctx context.Context, name string) (*models.OpeningRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("opening_repo")
	log.Debug("getting opening: name=%q", name)

	sqlStr, args, err := sqlBuilder.Select(openingColumns...).
		From("openings").
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var o models.OpeningRecord
	err = r.db.QueryRowContext(ctx, sqlStr, args...).
		Scan(&o.Name, &o.EffectivenessWhite, &o.EffectivenessBlack, &o.Aggressivity, &o.Volatility, &o.Popularity)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("opening not found: name=%q", name)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get opening: %v", err)
		return nil, err
	}
	return &o, nil
}

func (r *openingRepository) Count(ctx context.Context) (int, error) {
	sqlStr, args, err := sqlBuilder.Select("COUNT(*)").From("openings").ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).WithPrefix("opening_repo").Error("failed to count openings: %v", err)
		return 0, err
	}
	return count, nil
}
