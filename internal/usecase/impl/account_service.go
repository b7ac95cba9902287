// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "roster/internal/delivery/context"
	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	tokens      service.TokenService
	publicIDs   service.PublicIDGenerator
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Tokens      service.TokenService
	PublicIDs   service.PublicIDGenerator
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		tokens:      params.Tokens,
		publicIDs:   params.PublicIDs,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if err := validateRegisterInput(input); err != nil {
		srv.log(ctx).Warn("Registration input validation failed", slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	publicID, err := srv.publicIDs.NewPublicID()
	if err != nil {
		srv.log(ctx).Error("Failed to generate public id", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate public id during registration")
	}

	account := &entity.Account{
		PublicID:     publicID,
		Username:     input.Username,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: hashedPassword,
		Active:       true,
		Admin:        false,
	}

	if err := srv.accountRepo.Insert(ctx, account); err != nil {
		var dupErr *repository.DuplicateKeyError
		if errors.As(err, &dupErr) {
			srv.log(ctx).Warn("Registration conflict", slog.String("field", dupErr.Field), slog.String("username", input.Username))

			return nil, duplicateKeyToAppError(dupErr)
		}

		return nil, errors.Wrap(err, "failed to insert account during registration")
	}

	srv.log(ctx).Info("Account registered", slog.String("publicID", account.PublicID), slog.String("username", account.Username))

	return &usecase.RegisterOutput{Account: toAccountSummary(account)}, nil
}

func validateRegisterInput(input *usecase.RegisterInput) error {
	if input == nil {
		return domainerrors.ErrInvalidInput.WrapMessage("registration input is required")
	}

	for field, value := range map[string]string{
		"username": input.Username,
		"email":    input.Email,
		"password": input.Password,
	} {
		if strings.TrimSpace(value) == "" {
			return domainerrors.ErrInvalidInput.WithDetails(field + " is required")
		}
	}

	return nil
}

func duplicateKeyToAppError(dupErr *repository.DuplicateKeyError) error {
	switch dupErr.Field {
	case "username":
		return domainerrors.ErrUsernameTaken.WrapMessage("username already registered")
	case "email":
		return domainerrors.ErrEmailTaken.WrapMessage("email already registered")
	case "public_id":
		return domainerrors.ErrPublicIDTaken.WrapMessage("public id collision")
	default:
		return domainerrors.ErrAccountConflict.WithDetails("conflict on " + dupErr.Field)
	}
}

// Login authenticates by username and password and issues a signed token.
// An unknown username and a wrong password produce the same failure so the
// response never reveals which usernames exist.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || input.Username == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("username and password are required")
	}

	srv.log(ctx).Debug("Starting login", slog.String("username", input.Username))

	account, err := srv.accountRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	// bcrypt comparison happens outside any transaction (CPU-bound).
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokens.Issue(account.PublicID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token during login")
	}

	srv.log(ctx).Debug("Login succeeded", slog.String("publicID", account.PublicID))

	return &usecase.LoginOutput{Token: token}, nil
}

// List returns all accounts newest first.
func (srv *accountService) List(ctx context.Context) ([]*usecase.AccountSummary, error) {
	accounts, err := srv.accountRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	summaries := make([]*usecase.AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		summaries = append(summaries, toAccountSummary(account))
	}

	return summaries, nil
}

// GetByPublicID returns the minimal projection for a single account.
// A missing account maps to a distinct not-found failure.
func (srv *accountService) GetByPublicID(ctx context.Context, publicID string) (*usecase.AccountView, error) {
	account, err := srv.accountRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("account lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find account by public id")
	}

	return &usecase.AccountView{
		PublicID: account.PublicID,
		Username: account.Username,
	}, nil
}

// Promote grants admin status. Already-admin accounts report the transition
// as already satisfied instead of silently succeeding.
func (srv *accountService) Promote(ctx context.Context, publicID string) (*usecase.StatusOutput, error) {
	return srv.transition(ctx, publicID, func(account *entity.Account) error {
		if account.Admin {
			return domainerrors.ErrAlreadyAdmin.WrapMessage("promote is a no-op")
		}
		account.Admin = true

		return nil
	})
}

// Demote revokes admin status.
func (srv *accountService) Demote(ctx context.Context, publicID string) (*usecase.StatusOutput, error) {
	return srv.transition(ctx, publicID, func(account *entity.Account) error {
		if !account.Admin {
			return domainerrors.ErrNotAdmin.WrapMessage("demote is a no-op")
		}
		account.Admin = false

		return nil
	})
}

// Activate reinstates a suspended account.
func (srv *accountService) Activate(ctx context.Context, publicID string) (*usecase.StatusOutput, error) {
	return srv.transition(ctx, publicID, func(account *entity.Account) error {
		if account.Active {
			return domainerrors.ErrAlreadyActive.WrapMessage("activate is a no-op")
		}
		account.Active = true

		return nil
	})
}

// Deactivate suspends an account.
func (srv *accountService) Deactivate(ctx context.Context, publicID string) (*usecase.StatusOutput, error) {
	return srv.transition(ctx, publicID, func(account *entity.Account) error {
		if !account.Active {
			return domainerrors.ErrAlreadyInactive.WrapMessage("deactivate is a no-op")
		}
		account.Active = false

		return nil
	})
}

// transition runs a read-check-write status change under a row lock so a
// concurrent transition on the same account cannot be lost. The admin and
// active flags are independent; apply flips exactly one of them.
func (srv *accountService) transition(ctx context.Context, publicID string, apply func(*entity.Account) error) (*usecase.StatusOutput, error) {
	var updated *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		account, err := accountRepo.FindByPublicIDForUpdate(ctx, publicID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("status transition failed")
			}

			return errors.Wrap(err, "failed to load account for status transition")
		}

		if err := apply(account); err != nil {
			return err
		}

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to persist status transition")
		}

		updated = account

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Status transition rejected", slog.String("publicID", publicID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Status transition applied",
		slog.String("publicID", publicID),
		slog.Bool("admin", updated.Admin),
		slog.Bool("active", updated.Active),
	)

	return &usecase.StatusOutput{Account: toAccountSummary(updated)}, nil
}

// Delete permanently removes an account.
func (srv *accountService) Delete(ctx context.Context, publicID string) error {
	if err := srv.accountRepo.Delete(ctx, publicID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound.WrapMessage("delete failed")
		}

		return errors.Wrap(err, "failed to delete account")
	}

	srv.log(ctx).Info("Account deleted", slog.String("publicID", publicID))

	return nil
}

func toAccountSummary(account *entity.Account) *usecase.AccountSummary {
	return &usecase.AccountSummary{
		PublicID:  account.PublicID,
		Username:  account.Username,
		Email:     account.Email,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Active:    account.Active,
		Admin:     account.Admin,
		CreatedAt: account.CreatedAt,
	}
}
