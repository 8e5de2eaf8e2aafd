package services

import (
	"context"

	"shopfront/internal/application/command"
	"shopfront/internal/application/interfaces"
	"shopfront/internal/domain/entities"
	"shopfront/internal/domain/repositories"
	"shopfront/internal/infrastructure"
)

type AuthService struct {
	userRepo       repositories.UserRepository
	captchaService *infrastructure.CaptchaService
	attemptLimiter *infrastructure.AttemptLimiter
	mailer         *infrastructure.Mailer
}

func NewAuthService(
	userRepo repositories.UserRepository,
	captchaService *infrastructure.CaptchaService,
	attemptLimiter *infrastructure.AttemptLimiter,
	mailer *infrastructure.Mailer,
) interfaces.AuthService {
	return &AuthService{
		userRepo:       userRepo,
		captchaService: captchaService,
		attemptLimiter: attemptLimiter,
		mailer:         mailer,
	}
}

func (s *AuthService) SignUp(ctx context.Context, signUpCommand *command.SignUpCommand) (*command.SignUpCommandResult, error) {
	if !s.captchaService.Verify(ctx, signUpCommand.CaptchaToken) {
		return nil, entities.ErrVerificationFailed
	}

	newUser := entities.NewUser(signUpCommand.Email, signUpCommand.Phone)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, err
	}

	if !s.attemptLimiter.Allow(ctx, signUpCommand.Email) {
		return nil, entities.ErrTooManyAttempts
	}

	// Check first for a friendly redirect; the unique constraint still
	// decides the concurrent case inside Create.
	existingUser, err := s.userRepo.FindByEmail(ctx, signUpCommand.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, entities.ErrDuplicateEmail
	}

	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		return nil, err
	}

	go s.mailer.SendWelcome(createdUser.Email)

	return &command.SignUpCommandResult{User: createdUser}, nil
}

func (s *AuthService) SignIn(ctx context.Context, signInCommand *command.SignInCommand) (*command.SignInCommandResult, error) {
	if !s.captchaService.Verify(ctx, signInCommand.CaptchaToken) {
		return nil, entities.ErrVerificationFailed
	}

	if !s.attemptLimiter.Allow(ctx, signInCommand.Email) {
		return nil, entities.ErrTooManyAttempts
	}

	user, err := s.userRepo.FindByEmailAndPhone(ctx, signInCommand.Email, signInCommand.Phone)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, entities.ErrIdentityNotFound
	}

	return &command.SignInCommandResult{User: user}, nil
}

func (s *AuthService) IdentityExists(ctx context.Context, email, phone string) (bool, error) {
	return s.userRepo.Exists(ctx, email, phone)
}
