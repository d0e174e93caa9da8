package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/warehousr/inventory-api/internal/models"
)

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	query := `INSERT INTO products (product_name, price, stock_quantity, category_id) VALUES ($1, $2, $3, $4) RETURNING product_id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, p.Name, p.Price, p.Quantity, p.CategoryID).Scan(&p.ID)
	return p, err
}

func (r *PostgresProductRepository) GetAll(f ProductFilter) ([]models.ProductWithCategory, error) {
	conditions, args := filterConditions(f)

	query := `SELECT p.product_id, p.product_name, p.price, p.stock_quantity, c.category_name
		FROM products p
		LEFT JOIN categories c ON c.category_id = p.category_id
		WHERE 1=1` + conditions + ` ORDER BY p.product_name`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.ProductWithCategory
	for rows.Next() {
		var p models.ProductWithCategory
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Quantity, &p.CategoryName); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) GetByID(id int) (models.ProductWithCategory, error) {
	query := `SELECT p.product_id, p.product_name, p.price, p.stock_quantity, p.category_id, c.category_name
		FROM products p
		LEFT JOIN categories c ON c.category_id = p.category_id
		WHERE p.product_id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.ProductWithCategory
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Price, &p.Quantity, &p.CategoryID, &p.CategoryName)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ProductWithCategory{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Update(p models.Product) (models.Product, error) {
	query := `UPDATE products SET product_name = $1, price = $2, stock_quantity = $3, category_id = $4 WHERE product_id = $5`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, p.Name, p.Price, p.Quantity, p.CategoryID, p.ID)
	if err != nil {
		return models.Product{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (r *PostgresProductRepository) Delete(id int) error {
	query := `DELETE FROM products WHERE product_id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// filterConditions builds the conjunctive predicate for the supplied bounds.
// Values are always bound parameters, never interpolated into the SQL text.
func filterConditions(f ProductFilter) (string, []any) {
	query := ""
	argIdx := 1
	args := []any{}

	if f.MinPrice != nil {
		query += fmt.Sprintf(" AND p.price >= $%d", argIdx)
		args = append(args, *f.MinPrice)
		argIdx++
	}
	if f.MaxPrice != nil {
		query += fmt.Sprintf(" AND p.price <= $%d", argIdx)
		args = append(args, *f.MaxPrice)
		argIdx++
	}
	if f.MinQty != nil {
		query += fmt.Sprintf(" AND p.stock_quantity >= $%d", argIdx)
		args = append(args, *f.MinQty)
		argIdx++
	}
	if f.MaxQty != nil {
		query += fmt.Sprintf(" AND p.stock_quantity <= $%d", argIdx)
		args = append(args, *f.MaxQty)
		argIdx++
	}

	return query, args
}
