// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// Insert persists a new account. Uniqueness is enforced by the database's
// unique indexes, so a racing insert has exactly one winner; the loser gets a
// DuplicateKeyError naming the colliding field.
func (repo *accountRepository) Insert(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if dupErr := asDuplicateKeyError(err); dupErr != nil {
			return dupErr
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert account")
	}

	// Propagate store-assigned values back to the entity.
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt

	return nil
}

// FindByPublicID retrieves a single account by its public identifier.
func (repo *accountRepository) FindByPublicID(ctx context.Context, publicID string) (*entity.Account, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx), "public_id = ?", publicID)
}

// FindByPublicIDForUpdate is FindByPublicID holding a row lock. It serializes
// read-check-write transitions on the same account for the duration of the
// surrounding transaction.
func (repo *accountRepository) FindByPublicIDForUpdate(ctx context.Context, publicID string) (*entity.Account, error) {
	tx := repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})

	return repo.findOne(ctx, tx, "public_id = ?", publicID)
}

// FindByUsername retrieves a single account by its unique username.
func (repo *accountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx), "username = ?", username)
}

func (repo *accountRepository) findOne(ctx context.Context, tx *gorm.DB, query string, arg any) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := tx.Where(query, arg).First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return toAccountDomain(&accountM), nil
}

// List returns all accounts, newest first, ties broken by internal id so the
// order is deterministic.
func (repo *accountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	var accountModels []*model.AccountModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id ASC").
		Find(&accountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// Update overwrites all fields of an existing account as a unit.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", accountM.ID).
		Select("public_id", "username", "email", "first_name", "last_name", "password_hash", "active", "admin").
		Updates(accountM)
	if err := result.Error; err != nil {
		if dupErr := asDuplicateKeyError(err); dupErr != nil {
			return dupErr
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// Delete permanently removes an account. There is no tombstone state.
func (repo *accountRepository) Delete(ctx context.Context, publicID string) error {
	result := repo.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		Delete(&model.AccountModel{})
	if err := result.Error; err != nil {
		return errors.Wrap(err, "failed to delete account")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		PublicID:     data.PublicID,
		Username:     data.Username,
		Email:        data.Email,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		PasswordHash: data.PasswordHash,
		Active:       data.Active,
		Admin:        data.Admin,
		CreatedAt:    data.CreatedAt,
	}
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:           data.ID,
		PublicID:     data.PublicID,
		Username:     data.Username,
		Email:        data.Email,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		PasswordHash: data.PasswordHash,
		Active:       data.Active,
		Admin:        data.Admin,
		CreatedAt:    data.CreatedAt,
	}
}
