package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/pricing-backend/internal/domain"
	"github.com/DRSN-tech/pricing-backend/pkg/e"
	"github.com/DRSN-tech/pricing-backend/pkg/logger"
	"github.com/google/uuid"
)

// CategoryUseCase реализует бизнес-логику управления категориями.
type CategoryUseCase struct {
	categoryRepo CategoryRepository
	logger       logger.Logger
}

func NewCategoryUC(categoryRepo CategoryRepository, logger logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo, logger: logger}
}

func (c *CategoryUseCase) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	const op = "CategoryUseCase.CreateCategory"

	if strings.TrimSpace(name) == "" {
		return nil, e.Wrap(op, e.ErrCategoryNameRequired)
	}

	category, err := c.categoryRepo.Create(ctx, domain.NewCategory(name))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

func (c *CategoryUseCase) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	const op = "CategoryUseCase.ListCategories"

	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return categories, nil
}

func (c *CategoryUseCase) UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*domain.Category, error) {
	const op = "CategoryUseCase.UpdateCategory"

	if strings.TrimSpace(name) == "" {
		return nil, e.Wrap(op, e.ErrCategoryNameRequired)
	}

	category, err := c.categoryRepo.Update(ctx, id, name)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

// DeleteCategory физически удаляет категорию; у продуктов категории
// ссылка на неё обнуляется на уровне схемы (ON DELETE SET NULL).
func (c *CategoryUseCase) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	const op = "CategoryUseCase.DeleteCategory"

	if err := c.categoryRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
