package usecase

import (
	"context"
	"sync"

	"github.com/DRSN-tech/pricing-backend/internal/domain"
	"github.com/DRSN-tech/pricing-backend/pkg/e"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

type noopLogger struct{}

func (noopLogger) Debugf(format string, args ...any)          {}
func (noopLogger) Infof(format string, args ...any)           {}
func (noopLogger) Warnf(format string, args ...any)           {}
func (noopLogger) Errorf(err error, format string, args ...any) {}

// fakeTx реализует pgx.Tx и фиксирует завершение транзакции.
type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

func (t *fakeTx) CopyFrom(ctx context.Context, _ pgx.Identifier, _ []string, _ pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (t *fakeTx) SendBatch(ctx context.Context, _ *pgx.Batch) pgx.BatchResults { return nil }
func (t *fakeTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }

func (t *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (t *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (t *fakeTx) Conn() *pgx.Conn                                               { return nil }

// fakeDB подменяет пул соединений при открытии транзакций.
type fakeDB struct {
	mu         sync.Mutex
	tx         *fakeTx
	beginCalls int
}

func (db *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	return db.BeginTx(ctx, pgx.TxOptions{})
}

func (db *fakeDB) BeginTx(ctx context.Context, _ pgx.TxOptions) (pgx.Tx, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.beginCalls++
	db.tx = &fakeTx{}
	return db.tx, nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*domain.Product
	infos    map[uuid.UUID]*ProductInfo
	infoErr  error
}

func newFakeProductRepo(products ...*domain.Product) *fakeProductRepo {
	repo := &fakeProductRepo{
		products: make(map[uuid.UUID]*domain.Product),
		infos:    make(map[uuid.UUID]*ProductInfo),
	}
	for _, pr := range products {
		repo.products[pr.ID] = pr
	}
	return repo
}

func (f *fakeProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	product.ID = uuid.New()
	f.products[product.ID] = product
	return product, nil
}

func (f *fakeProductRepo) GetActiveByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, ok := f.products[id]
	if !ok || product.IsArchived {
		return nil, e.ErrProductNotFound
	}
	return product, nil
}

func (f *fakeProductRepo) GetProductInfo(ctx context.Context, id uuid.UUID) (*ProductInfo, error) {
	if f.infoErr != nil {
		return nil, f.infoErr
	}
	info, ok := f.infos[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	return info, nil
}

func (f *fakeProductRepo) ListActive(ctx context.Context) ([]ProductInfo, error) {
	var infos []ProductInfo
	for _, info := range f.infos {
		infos = append(infos, *info)
	}
	return infos, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, req *UpdateProductReq) (*domain.Product, error) {
	product, ok := f.products[req.ID]
	if !ok || product.IsArchived {
		return nil, e.ErrProductNotFound
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.CategoryID != nil {
		product.CategoryID = req.CategoryID
	}
	return product, nil
}

func (f *fakeProductRepo) Archive(ctx context.Context, id uuid.UUID) error {
	product, ok := f.products[id]
	if !ok || product.IsArchived {
		return e.ErrProductNotFound
	}
	product.IsArchived = true
	return nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*domain.Category
}

func newFakeCategoryRepo(categories ...*domain.Category) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{categories: make(map[uuid.UUID]*domain.Category)}
	for _, cat := range categories {
		repo.categories[cat.ID] = cat
	}
	return repo
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	category.ID = uuid.New()
	f.categories[category.ID] = category
	return category, nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	cat, ok := f.categories[id]
	if !ok {
		return nil, e.ErrCategoryNotFound
	}
	return cat, nil
}

func (f *fakeCategoryRepo) List(ctx context.Context) ([]*domain.Category, error) {
	var cats []*domain.Category
	for _, cat := range f.categories {
		cats = append(cats, cat)
	}
	return cats, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, id uuid.UUID, name string) (*domain.Category, error) {
	cat, ok := f.categories[id]
	if !ok {
		return nil, e.ErrCategoryNotFound
	}
	cat.Name = name
	return cat, nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.categories[id]; !ok {
		return e.ErrCategoryNotFound
	}
	delete(f.categories, id)
	return nil
}

type fakePriceRepo struct {
	existing []*domain.PriceRecord
	getErr   error

	updatedIDs   []int64
	updatedPrice int64
	updateErr    error

	inserted  []*domain.PriceRecord
	insertErr error

	avg    *decimal.Decimal
	avgErr error
}

func (f *fakePriceRepo) GetByProductAndRange(ctx context.Context, productID uuid.UUID, rng domain.DateRange) ([]*domain.PriceRecord, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.existing, nil
}

func (f *fakePriceRepo) BulkUpdatePrice(ctx context.Context, ids []int64, priceCents int64) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedIDs = ids
	f.updatedPrice = priceCents
	return nil
}

func (f *fakePriceRepo) BulkInsert(ctx context.Context, records []*domain.PriceRecord) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = records
	return nil
}

func (f *fakePriceRepo) AverageByRange(ctx context.Context, productID uuid.UUID, rng domain.DateRange) (*decimal.Decimal, error) {
	if f.avgErr != nil {
		return nil, f.avgErr
	}
	return f.avg, nil
}

type fakeOutboxRepo struct {
	created *OutboxEvent
}

func (f *fakeOutboxRepo) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	event.ID = 1
	f.created = event
	return event, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error { return nil }

type fakeCacheRepo struct {
	mu      sync.Mutex
	cache   map[uuid.UUID]*ProductInfo
	deleted []uuid.UUID
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{cache: make(map[uuid.UUID]*ProductInfo)}
}

func (f *fakeCacheRepo) GetProduct(ctx context.Context, id uuid.UUID) (*ProductInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cache[id], nil
}

func (f *fakeCacheRepo) SetProduct(ctx context.Context, info *ProductInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cache[info.ID] = info
	return nil
}

func (f *fakeCacheRepo) DeleteProducts(ctx context.Context, ids []uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, ids...)
	for _, id := range ids {
		delete(f.cache, id)
	}
	return nil
}
