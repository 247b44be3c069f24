package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/gestion-stock/internal/application/dto"
	"github.com/jhoicas/gestion-stock/internal/domain"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

// ExpenseUseCase casos de uso de gastos.
type ExpenseUseCase struct {
	repo         repository.ExpenseRepository
	supplierRepo repository.SupplierRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository, supplierRepo repository.SupplierRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, supplierRepo: supplierRepo}
}

// Create registra un gasto. Sin fecha se usa hoy; sin categoría, "General".
func (uc *ExpenseUseCase) Create(ctx context.Context, ownerID string, in dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	e := &entity.Expense{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		CreatedAt: time.Now(),
	}
	if err := uc.apply(ctx, ownerID, e, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toExpenseResponse(e), nil
}

// Update reemplaza los datos del gasto; nil si no existe.
func (uc *ExpenseUseCase) Update(ctx context.Context, ownerID, id string, in dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	e, err := uc.repo.GetByID(ctx, ownerID, id)
	if err != nil || e == nil {
		return nil, err
	}
	if err := uc.apply(ctx, ownerID, e, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return toExpenseResponse(e), nil
}

// List gastos del dueño en el rango.
func (uc *ExpenseUseCase) List(ctx context.Context, ownerID string, r repository.DateRange) ([]dto.ExpenseResponse, error) {
	list, err := uc.repo.List(ctx, ownerID, r)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *toExpenseResponse(e))
	}
	return out, nil
}

// Delete elimina un gasto.
func (uc *ExpenseUseCase) Delete(ctx context.Context, ownerID, id string) error {
	e, err := uc.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, ownerID, id)
}

func (uc *ExpenseUseCase) apply(ctx context.Context, ownerID string, e *entity.Expense, in dto.ExpenseRequest) error {
	if strings.TrimSpace(in.Description) == "" || in.Amount.IsNegative() {
		return domain.ErrInvalidInput
	}
	if in.SupplierID != "" {
		s, err := uc.supplierRepo.GetByID(ctx, ownerID, in.SupplierID)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrNotFound
		}
	}
	e.Date = time.Now()
	if in.Date != nil {
		e.Date = *in.Date
	}
	e.Description = strings.TrimSpace(in.Description)
	e.Amount = in.Amount
	e.Category = strings.TrimSpace(in.Category)
	if e.Category == "" {
		e.Category = entity.DefaultExpenseCategory
	}
	e.SupplierID = in.SupplierID
	return nil
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          e.ID,
		Date:        e.Date,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		SupplierID:  e.SupplierID,
	}
}
