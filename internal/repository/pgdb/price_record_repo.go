package pgdb

import (
	"context"
	"fmt"

	"github.com/DRSN-tech/pricing-backend/internal/domain"
	"github.com/DRSN-tech/pricing-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/pricing-backend/pkg/e"
	"github.com/DRSN-tech/pricing-backend/pkg/tr"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

// PriceRecordRepo реализует хранилище записей цен поверх PostgreSQL.
// Инвариант уникальности (product_id, date) обеспечивается ограничением схемы.
type PriceRecordRepo struct {
	pool *pgxpool.Pool
	conv converter.PriceRecordConverter
}

func NewPriceRecordRepo(pool *pgxpool.Pool, conv converter.PriceRecordConverter) *PriceRecordRepo {
	return &PriceRecordRepo{
		pool: pool,
		conv: conv,
	}
}

// GetByProductAndRange возвращает записи цен продукта за диапазон одним запросом.
// Выполняется строго в транзакции из контекста: результат используется
// для формирования батчей изменений.
func (p *PriceRecordRepo) GetByProductAndRange(ctx context.Context, productID uuid.UUID, rng domain.DateRange) ([]*domain.PriceRecord, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		SELECT id, product_id, date, price, created_at, updated_at
		FROM price_records
		WHERE product_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date;
	`

	rows, err := tx.Query(ctx, query, productID, rng.Start, rng.End)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]*converter.PriceRecordModel, 0, rng.Len())
	for rows.Next() {
		var model converter.PriceRecordModel
		if err := rows.Scan(
			&model.ID, &model.ProductID, &model.Date,
			&model.Price, &model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		models = append(models, &model)
	}

	return p.conv.ToArrEntity(models), nil
}

// BulkUpdatePrice одним запросом выставляет новую цену всем записям по их ID.
// Обновляется только колонка price.
func (p *PriceRecordRepo) BulkUpdatePrice(ctx context.Context, ids []int64, priceCents int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE price_records
		SET price = $1
		WHERE id = ANY($2);
	`

	tag, err := tx.Exec(ctx, query, priceCents, ids)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() != int64(len(ids)) {
		return e.Wrap(whereami.WhereAmI(),
			fmt.Errorf("bulk update touched %d of %d records", tag.RowsAffected(), len(ids)))
	}

	return nil
}

// BulkInsert создаёт записи цен одним батчем через COPY.
func (p *PriceRecordRepo) BulkInsert(ctx context.Context, records []*domain.PriceRecord) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	copied, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"price_records"},
		[]string{"product_id", "date", "price"},
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			rec := records[i]
			return []any{rec.ProductID, rec.Date, rec.Price}, nil
		}),
	)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if copied != int64(len(records)) {
		return e.Wrap(whereami.WhereAmI(),
			fmt.Errorf("bulk insert copied %d of %d records", copied, len(records)))
	}

	return nil
}

// AverageByRange возвращает среднюю цену (в копейках) за диапазон
// на стороне БД. nil — в диапазоне нет ни одной записи.
func (p *PriceRecordRepo) AverageByRange(ctx context.Context, productID uuid.UUID, rng domain.DateRange) (*decimal.Decimal, error) {
	query := `
		SELECT AVG(price)::text
		FROM price_records
		WHERE product_id = $1 AND date BETWEEN $2 AND $3;
	`

	var avgStr *string
	if err := p.pool.QueryRow(ctx, query, productID, rng.Start, rng.End).Scan(&avgStr); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if avgStr == nil {
		return nil, nil
	}

	avg, err := decimal.NewFromString(*avgStr)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &avg, nil
}
