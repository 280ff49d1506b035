package postgres

import (
	"context"

	"gamestore/internal/domain/entity"
	domainerrors "gamestore/internal/domain/errors"
	"gamestore/internal/domain/repository"
	"gamestore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// purchaseRepository implements the domain's PurchaseRepository interface using GORM.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository is the constructor for purchaseRepository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{db: db}
}

// Create persists a new purchase record to the database.
func (repo *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	purchaseM := fromPurchaseDomain(purchase)

	if err := repo.db.WithContext(ctx).Create(purchaseM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrGameNotFound.WrapMessage("referenced game or user does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create purchase")
	}

	purchase.ID = purchaseM.ID

	return nil
}

// ListByUser returns a user's order history, newest first.
func (repo *purchaseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Purchase, error) {
	var purchaseModels []model.PurchaseModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("purchase_date DESC").
		Find(&purchaseModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchases by user")
	}

	purchases := make([]*entity.Purchase, 0, len(purchaseModels))
	for i := range purchaseModels {
		purchases = append(purchases, toPurchaseDomain(&purchaseModels[i]))
	}

	return purchases, nil
}

// toPurchaseDomain converts a GORM PurchaseModel to a domain Purchase entity.
func toPurchaseDomain(data *model.PurchaseModel) *entity.Purchase {
	if data == nil {
		return nil
	}

	return &entity.Purchase{
		ID:            data.ID,
		UserID:        data.UserID,
		GameID:        data.GameID,
		Amount:        data.Amount,
		PurchaseDate:  data.PurchaseDate,
		PaymentStatus: entity.PaymentStatus(data.PaymentStatus),
		PaymentMethod: entity.PaymentMethod(data.PaymentMethod),
	}
}

// fromPurchaseDomain converts a domain Purchase entity to a GORM PurchaseModel for persistence.
func fromPurchaseDomain(data *entity.Purchase) *model.PurchaseModel {
	if data == nil {
		return nil
	}

	return &model.PurchaseModel{
		ID:            data.ID,
		UserID:        data.UserID,
		GameID:        data.GameID,
		Amount:        data.Amount,
		PurchaseDate:  data.PurchaseDate,
		PaymentStatus: string(data.PaymentStatus),
		PaymentMethod: string(data.PaymentMethod),
	}
}
