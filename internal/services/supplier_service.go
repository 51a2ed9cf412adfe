package services

import (
	"context"
	"time"

	"github.com/joshua-takyi/eventmarket/internal/apperr"
	"github.com/joshua-takyi/eventmarket/internal/models"
)

type SupplierService struct {
	suppliers models.SupplierRepo
	users     models.UserRepo
}

func NewSupplierService(suppliers models.SupplierRepo, users models.UserRepo) *SupplierService {
	return &SupplierService{
		suppliers: suppliers,
		users:     users,
	}
}

// RegisterSupplier snapshots the contact fields from the user profile at
// registration time; they are not refreshed when the profile changes.
func (ss *SupplierService) RegisterSupplier(ctx context.Context, supplier *models.Supplier) (*models.Supplier, error) {
	if err := models.Validate.Struct(supplier); err != nil {
		return nil, apperr.Wrap(apperr.InvalidInput, "invalid supplier data", err)
	}

	user, err := ss.users.GetUserByID(ctx, supplier.UserID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Transient, "failed to load user", err)
	}
	if user == nil {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}

	now := time.Now()
	supplier.Name = user.Name
	supplier.Email = user.Email
	supplier.PhoneNumber = user.PhoneNumber
	supplier.CreatedAt = now
	supplier.UpdatedAt = now

	saved, err := ss.suppliers.SaveSupplier(ctx, supplier)
	if err != nil {
		return nil, apperr.Wrap(apperr.Transient, "failed to save supplier", err)
	}
	return saved, nil
}

func (ss *SupplierService) GetSupplierByUserID(ctx context.Context, userID string) (*models.Supplier, error) {
	supplier, err := ss.suppliers.GetSupplierByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Transient, "failed to load supplier", err)
	}
	if supplier == nil {
		return nil, apperr.New(apperr.NotFound, "supplier not found")
	}
	return supplier, nil
}

func (ss *SupplierService) UpdateSupplier(ctx context.Context, id string, updated *models.Supplier) (*models.Supplier, error) {
	existing, err := ss.suppliers.GetSupplierByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Transient, "failed to load supplier", err)
	}
	if existing == nil {
		return nil, apperr.New(apperr.NotFound, "supplier not found")
	}

	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()

	saved, err := ss.suppliers.SaveSupplier(ctx, updated)
	if err != nil {
		return nil, apperr.Wrap(apperr.Transient, "failed to save supplier", err)
	}
	return saved, nil
}

func (ss *SupplierService) DeleteSupplier(ctx context.Context, id string) error {
	if err := ss.suppliers.DeleteSupplier(ctx, id); err != nil {
		return apperr.Wrap(apperr.Transient, "failed to delete supplier", err)
	}
	return nil
}

func (ss *SupplierService) ListSuppliers(ctx context.Context) ([]*models.Supplier, error) {
	suppliers, err := ss.suppliers.ListSuppliers(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Transient, "failed to list suppliers", err)
	}
	return suppliers, nil
}
