package postgres

import (
	"context"
	"strings"

	"gamestore/internal/domain/entity"
	domainerrors "gamestore/internal/domain/errors"
	"gamestore/internal/domain/repository"
	"gamestore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the domain's UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading the
// wishlist, library and comment references.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("WishlistEntries").
		Preload("LibraryEntries").
		Preload("Comments").
		First(&userM, "id = ?", id).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("WishlistEntries").
		Preload("LibraryEntries").
		Preload("Comments").
		First(&userM, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindByResetToken retrieves the user holding the given outstanding reset token.
func (repo *userRepository) FindByResetToken(ctx context.Context, token string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		First(&userM, "reset_token = ? AND reset_token <> ''", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by reset token")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			if strings.Contains(strings.ToLower(err.Error()), "username") {
				return domainerrors.ErrUsernameAlreadyTaken.WrapMessage("username already exists")
			}

			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user's scalar fields. Wishlist and library
// membership are handled by the dedicated set methods below.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(userM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// List returns all users.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userModels []model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("WishlistEntries").
		Preload("LibraryEntries").
		Preload("Comments").
		Find(&userModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, toUserDomain(&userModels[i]))
	}

	return users, nil
}

// AddWishlistGame inserts the game into the user's wishlist set.
func (repo *userRepository) AddWishlistGame(ctx context.Context, userID, gameID uuid.UUID) error {
	row := model.UserWishlistModel{UserID: userID, GameID: gameID}
	if err := repo.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyWishlisted.WrapMessage("wishlist row already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add wishlist entry")
	}

	return nil
}

// RemoveWishlistGame removes the game from the user's wishlist set.
// Removing an absent member is not an error.
func (repo *userRepository) RemoveWishlistGame(ctx context.Context, userID, gameID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Delete(&model.UserWishlistModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove wishlist entry")
	}

	return nil
}

// AddLibraryGame inserts the game into the user's purchased set.
func (repo *userRepository) AddLibraryGame(ctx context.Context, userID, gameID uuid.UUID) error {
	row := model.UserLibraryModel{UserID: userID, GameID: gameID}
	if err := repo.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyOwned.WrapMessage("library row already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add library entry")
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	wishlist := make([]uuid.UUID, 0, len(data.WishlistEntries))
	for _, row := range data.WishlistEntries {
		wishlist = append(wishlist, row.GameID)
	}

	library := make([]uuid.UUID, 0, len(data.LibraryEntries))
	for _, row := range data.LibraryEntries {
		library = append(library, row.GameID)
	}

	comments := make([]uuid.UUID, 0, len(data.Comments))
	for _, row := range data.Comments {
		comments = append(comments, row.ID)
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		DateOfBirth:  data.DateOfBirth,
		PhoneNumber:  data.PhoneNumber,
		Card:         toCardDomain(data),
		Wishlist:     wishlist,
		Library:      library,
		Comments:     comments,
		ResetToken:   data.ResetToken,
		ResetExpiry:  data.ResetExpiry,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// toCardDomain builds the stored card from its columns, nil when no column is set.
func toCardDomain(data *model.UserModel) *entity.PaymentCard {
	if data.CardName == "" && data.CardNumber == "" && data.CardExpiration == "" && data.CardCVV == "" {
		return nil
	}

	return &entity.PaymentCard{
		Name:       data.CardName,
		Number:     data.CardNumber,
		Expiration: data.CardExpiration,
		CVV:        data.CardCVV,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		DateOfBirth:  data.DateOfBirth,
		PhoneNumber:  data.PhoneNumber,
		ResetToken:   data.ResetToken,
		ResetExpiry:  data.ResetExpiry,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.Card != nil {
		userM.CardName = data.Card.Name
		userM.CardNumber = data.Card.Number
		userM.CardExpiration = data.Card.Expiration
		userM.CardCVV = data.Card.CVV
	}

	return userM
}
