package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"

	"github.com/warehousr/inventory-api/internal/models"
)

const uniqueViolationCode = "23505"

type PostgresCategoryRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresCategoryRepository(db *sql.DB, log *logrus.Logger) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db, log: log}
}

func (r *PostgresCategoryRepository) GetAll() ([]models.Category, error) {
	query := `SELECT category_id, category_name FROM categories ORDER BY category_name`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresCategoryRepository) Create(name string) (models.Category, error) {
	query := `INSERT INTO categories (category_name) VALUES ($1) RETURNING category_id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	c := models.Category{Name: name}
	err := r.db.QueryRowContext(ctx, query, name).Scan(&c.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			r.log.Warnf("attempted to create duplicate category %q", name)
			return models.Category{}, ErrCategoryExists
		}
		return models.Category{}, err
	}
	return c, nil
}
