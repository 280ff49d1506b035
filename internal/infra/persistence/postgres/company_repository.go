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
	"gorm.io/gorm/clause"
)

// companyRepository implements the domain's CompanyRepository interface using GORM.
type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository is the constructor for companyRepository.
func NewCompanyRepository(db *gorm.DB) repository.CompanyRepository {
	return &companyRepository{db: db}
}

// FindByID retrieves a single company by its unique ID, preloading its game references.
func (repo *companyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	var companyM model.CompanyModel
	err := repo.db.WithContext(ctx).
		Preload("Games").
		First(&companyM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, "failed to find company by id")
	}

	return toCompanyDomain(&companyM), nil
}

// FindByEmail retrieves a single company by its email address.
func (repo *companyRepository) FindByEmail(ctx context.Context, email string) (*entity.Company, error) {
	var companyM model.CompanyModel
	err := repo.db.WithContext(ctx).
		Preload("Games").
		First(&companyM, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, "failed to find company by email")
	}

	return toCompanyDomain(&companyM), nil
}

// FindByResetToken retrieves the company holding the given outstanding reset token.
func (repo *companyRepository) FindByResetToken(ctx context.Context, token string) (*entity.Company, error) {
	var companyM model.CompanyModel
	err := repo.db.WithContext(ctx).
		First(&companyM, "reset_token = ? AND reset_token <> ''", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, "failed to find company by reset token")
	}

	return toCompanyDomain(&companyM), nil
}

// Create persists a new company entity to the database.
func (repo *companyRepository) Create(ctx context.Context, company *entity.Company) error {
	companyM := fromCompanyDomain(company)

	if err := repo.db.WithContext(ctx).Create(companyM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required company information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create company")
	}

	company.ID = companyM.ID
	company.CreatedAt = companyM.CreatedAt
	company.UpdatedAt = companyM.UpdatedAt

	return nil
}

// Update modifies an existing company's scalar fields. Game ownership is
// derived from the games table and never written from here.
func (repo *companyRepository) Update(ctx context.Context, company *entity.Company) error {
	companyM := fromCompanyDomain(company)

	err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(companyM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update company")
	}

	company.UpdatedAt = companyM.UpdatedAt

	return nil
}

// List returns all company accounts.
func (repo *companyRepository) List(ctx context.Context) ([]*entity.Company, error) {
	var companyModels []model.CompanyModel
	err := repo.db.WithContext(ctx).
		Preload("Games").
		Find(&companyModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list companies")
	}

	companies := make([]*entity.Company, 0, len(companyModels))
	for i := range companyModels {
		companies = append(companies, toCompanyDomain(&companyModels[i]))
	}

	return companies, nil
}

// toCompanyDomain converts a GORM CompanyModel to a domain Company entity.
func toCompanyDomain(data *model.CompanyModel) *entity.Company {
	if data == nil {
		return nil
	}

	games := make([]uuid.UUID, 0, len(data.Games))
	for _, game := range data.Games {
		games = append(games, game.ID)
	}

	return &entity.Company{
		ID:           data.ID,
		Email:        data.Email,
		CompanyName:  data.CompanyName,
		PasswordHash: data.PasswordHash,
		Country:      data.Country,
		City:         data.City,
		Street:       data.Street,
		Address:      data.Address,
		PhoneNumber:  data.PhoneNumber,
		Games:        games,
		ResetToken:   data.ResetToken,
		ResetExpiry:  data.ResetExpiry,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromCompanyDomain converts a domain Company entity to a GORM CompanyModel for persistence.
func fromCompanyDomain(data *entity.Company) *model.CompanyModel {
	if data == nil {
		return nil
	}

	return &model.CompanyModel{
		ID:           data.ID,
		Email:        data.Email,
		CompanyName:  data.CompanyName,
		PasswordHash: data.PasswordHash,
		Country:      data.Country,
		City:         data.City,
		Street:       data.Street,
		Address:      data.Address,
		PhoneNumber:  data.PhoneNumber,
		ResetToken:   data.ResetToken,
		ResetExpiry:  data.ResetExpiry,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
