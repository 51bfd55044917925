package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/DRSN-tech/pricing-backend/internal/domain"
	"github.com/DRSN-tech/pricing-backend/pkg/e"
	"github.com/DRSN-tech/pricing-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PriceUseCase реализует бизнес-логику работы с ценами по дням:
// установку цены на диапазон дат и расчёт средней цены за диапазон.
type PriceUseCase struct {
	productRepo ProductRepository
	priceRepo   PriceRecordRepository
	outboxRepo  OutboxRepository
	dbPool      transaction.Transactional
	logger      logger.Logger
}

func NewPriceUC(
	productRepo ProductRepository,
	priceRepo PriceRecordRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *PriceUseCase {
	return &PriceUseCase{
		productRepo: productRepo,
		priceRepo:   priceRepo,
		outboxRepo:  outboxRepo,
		dbPool:      dbPool,
		logger:      logger,
	}
}

// SetPriceForPeriod гарантирует, что на каждый день диапазона [Start, End]
// у продукта есть ровно одна запись цены с заданным значением.
// Существующие записи обновляются, отсутствующие — создаются; обе операции
// выполняются батчами в одной транзакции. Операция идемпотентна: повторный
// вызов с теми же аргументами не меняет итоговое состояние.
// При конкурентных вызовах на пересекающихся диапазонах побеждает последняя
// закоммиченная запись.
func (p *PriceUseCase) SetPriceForPeriod(ctx context.Context, req *SetPriceReq) (*OutboxEvent, error) {
	const op = "PriceUseCase.SetPriceForPeriod"

	// Валидация данных до какого-либо обращения к хранилищу
	var err error
	if err = validatePriceCents(req.PriceCents); err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	// При ошибке транзакция откатывается целиком, частичных записей не остаётся
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	product, err := p.productRepo.GetActiveByID(ctx, req.ProductID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Один запрос на весь диапазон, индексация записей по дате
	existing, err := p.priceRepo.GetByProductAndRange(ctx, product.ID, req.Range)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	byDate := make(map[string]*domain.PriceRecord, len(existing))
	for _, rec := range existing {
		byDate[rec.DateKey()] = rec
	}

	// Линейный проход по дням диапазона: существующие записи попадают
	// в батч обновления, отсутствующие — в батч создания.
	updateIDs := make([]int64, 0, len(existing))
	inserts := make([]*domain.PriceRecord, 0, req.Range.Len()-len(existing))
	for day := range req.Range.Days() {
		if rec, ok := byDate[day.Format(domain.DateLayout)]; ok {
			updateIDs = append(updateIDs, rec.ID)
		} else {
			inserts = append(inserts, domain.NewPriceRecord(product.ID, day, req.PriceCents))
		}
	}

	if len(updateIDs) > 0 {
		if err = p.priceRepo.BulkUpdatePrice(ctx, updateIDs, req.PriceCents); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	if len(inserts) > 0 {
		if err = p.priceRepo.BulkInsert(ctx, inserts); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	event, err := p.createOutboxEvent(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return event, nil
}

// GetAveragePriceForPeriod возвращает среднюю цену продукта за диапазон,
// округлённую до двух знаков. nil означает отсутствие записей в диапазоне
// (в отличие от нулевой средней цены).
func (p *PriceUseCase) GetAveragePriceForPeriod(ctx context.Context, req *AveragePriceReq) (*decimal.Decimal, error) {
	const op = "PriceUseCase.GetAveragePriceForPeriod"

	product, err := p.productRepo.GetActiveByID(ctx, req.ProductID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	avgCents, err := p.priceRepo.AverageByRange(ctx, product.ID, req.Range)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if avgCents == nil {
		return nil, nil
	}

	avg := avgCents.Div(decimal.NewFromInt(100)).Round(2)
	return &avg, nil
}

// createOutboxEvent пишет событие установки цены в outbox в рамках текущей транзакции.
func (p *PriceUseCase) createOutboxEvent(ctx context.Context, req *SetPriceReq) (*OutboxEvent, error) {
	eventID := uuid.NewString()

	payload, err := json.Marshal(&PriceRangeAssignedPayload{
		EventID:    eventID,
		ProductID:  req.ProductID.String(),
		StartDate:  req.Range.Start.Format(domain.DateLayout),
		EndDate:    req.Range.End.Format(domain.DateLayout),
		PriceCents: req.PriceCents,
		AssignedAt: time.Now().UnixNano(),
	})
	if err != nil {
		return nil, err
	}

	return p.outboxRepo.Create(ctx, &OutboxEvent{
		EventID:   eventID,
		EventType: PriceRangeAssigned,
		ProductID: req.ProductID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now(),
	})
}

// validatePriceCents проверяет ограничения цены: неотрицательная,
// не больше 7 значащих цифр (максимум 99999.99).
func validatePriceCents(cents int64) error {
	const maxPriceCents = 9_999_999

	if cents < 0 {
		return e.ErrInvalidPrice
	}

	if cents > maxPriceCents {
		return e.ErrPricePrecision
	}

	return nil
}
