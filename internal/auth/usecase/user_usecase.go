package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	"github.com/allisson/gamestats/internal/auth/domain"
	authService "github.com/allisson/gamestats/internal/auth/service"
	"github.com/allisson/gamestats/internal/database"
	apperrors "github.com/allisson/gamestats/internal/errors"
	customValidation "github.com/allisson/gamestats/internal/validation"
)

// userUseCase implements UserUseCase.
type userUseCase struct {
	txManager       database.TxManager
	userRepo        UserRepository
	passwordService authService.PasswordService
}

// Create provisions a single user.
func (u *userUseCase) Create(ctx context.Context, input *domain.CreateUserInput) (*domain.User, error) {
	user, err := u.newUser(input)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateMissing provisions the inputs whose usernames are free, all or nothing.
func (u *userUseCase) CreateMissing(ctx context.Context, inputs []*domain.CreateUserInput) (int, error) {
	created := 0
	err := u.txManager.WithTx(ctx, func(ctx context.Context) error {
		for _, input := range inputs {
			_, err := u.userRepo.GetByUsername(ctx, input.Username)
			if err == nil {
				continue
			}
			if !errors.Is(err, domain.ErrUserNotFound) {
				return err
			}

			user, err := u.newUser(input)
			if err != nil {
				return err
			}
			if err := u.userRepo.Create(ctx, user); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

// validateCreateUserInput rejects credentials that could never be used to log in.
func validateCreateUserInput(input *domain.CreateUserInput) error {
	err := validation.ValidateStruct(input,
		validation.Field(&input.Username,
			validation.Required,
			customValidation.NotBlank,
			customValidation.NoWhitespace,
			customValidation.Username,
			validation.Length(1, 255),
		),
		validation.Field(&input.Password,
			validation.Required,
			customValidation.NotBlank,
		),
	)
	return customValidation.WrapValidationError(err)
}

func (u *userUseCase) newUser(input *domain.CreateUserInput) (*domain.User, error) {
	if err := validateCreateUserInput(input); err != nil {
		return nil, err
	}
	if !input.Role.Valid() {
		return nil, apperrors.Wrap(domain.ErrUnknownRole, input.Username)
	}

	hashed, err := u.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	return &domain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     input.Username,
		PasswordHash: hashed,
		Role:         input.Role,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// NewUserUseCase creates a new UserUseCase with the provided dependencies.
func NewUserUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	passwordService authService.PasswordService,
) UserUseCase {
	return &userUseCase{
		txManager:       txManager,
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}
