package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/pricing-backend/internal/domain"
	"github.com/DRSN-tech/pricing-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/pricing-backend/internal/usecase"
	"github.com/DRSN-tech/pricing-backend/pkg/e"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
// Архивированные продукты невидимы для всех операций чтения и изменения.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (name, category_id)
		VALUES ($1, $2)
		RETURNING id, name, category_id, created_at, updated_at, is_archived;
	`

	var model converter.ProductModel
	if err := querier(ctx, p.pool).QueryRow(ctx, query, product.Name, product.CategoryID).
		Scan(
			&model.ID, &model.Name, &model.CategoryID,
			&model.CreatedAt, &model.UpdatedAt, &model.IsArchived,
		); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// GetActiveByID возвращает неархивированный продукт или ErrProductNotFound.
func (p *ProductRepo) GetActiveByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `
		SELECT id, name, category_id, created_at, updated_at, is_archived
		FROM products
		WHERE id = $1 AND NOT is_archived;
	`

	var model converter.ProductModel
	if err := querier(ctx, p.pool).QueryRow(ctx, query, id).
		Scan(
			&model.ID, &model.Name, &model.CategoryID,
			&model.CreatedAt, &model.UpdatedAt, &model.IsArchived,
		); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// GetProductInfo возвращает информацию о продукте, включая название категории.
func (p *ProductRepo) GetProductInfo(ctx context.Context, id uuid.UUID) (*usecase.ProductInfo, error) {
	query := `
		SELECT pr.id, pr.name, cat.name
		FROM products pr
		LEFT JOIN categories cat ON pr.category_id = cat.id
		WHERE pr.id = $1 AND NOT pr.is_archived;
	`

	var info usecase.ProductInfo
	if err := p.pool.QueryRow(ctx, query, id).
		Scan(&info.ID, &info.Name, &info.CategoryName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &info, nil
}

// ListActive возвращает все неархивированные продукты с названиями категорий.
func (p *ProductRepo) ListActive(ctx context.Context) ([]usecase.ProductInfo, error) {
	query := `
		SELECT pr.id, pr.name, cat.name
		FROM products pr
		LEFT JOIN categories cat ON pr.category_id = cat.id
		WHERE NOT pr.is_archived
		ORDER BY pr.created_at;
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.ProductInfo, 0)
	for rows.Next() {
		var info usecase.ProductInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.CategoryName); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, info)
	}

	return result, nil
}

// Update частично обновляет продукт; NULL-аргументы оставляют поле без изменений.
func (p *ProductRepo) Update(ctx context.Context, req *usecase.UpdateProductReq) (*domain.Product, error) {
	query := `
		UPDATE products
		SET
			name = COALESCE($2, name),
			category_id = COALESCE($3, category_id),
			updated_at = NOW()
		WHERE id = $1 AND NOT is_archived
		RETURNING id, name, category_id, created_at, updated_at, is_archived;
	`

	var model converter.ProductModel
	if err := querier(ctx, p.pool).QueryRow(ctx, query, req.ID, req.Name, req.CategoryID).
		Scan(
			&model.ID, &model.Name, &model.CategoryID,
			&model.CreatedAt, &model.UpdatedAt, &model.IsArchived,
		); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Archive мягко удаляет продукт. Записи цен не трогаются.
func (p *ProductRepo) Archive(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE products
		SET is_archived = TRUE, updated_at = NOW()
		WHERE id = $1 AND NOT is_archived;
	`

	tag, err := querier(ctx, p.pool).Exec(ctx, query, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.ErrProductNotFound
	}

	return nil
}
