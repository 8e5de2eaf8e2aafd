package interfaces

import (
	"context"

	"shopfront/internal/application/command"
	"shopfront/internal/application/query"
	"shopfront/internal/domain/entities"
)

type AuthService interface {
	SignUp(ctx context.Context, signUpCommand *command.SignUpCommand) (*command.SignUpCommandResult, error)
	SignIn(ctx context.Context, signInCommand *command.SignInCommand) (*command.SignInCommandResult, error)
	IdentityExists(ctx context.Context, email, phone string) (bool, error)
}

type CatalogService interface {
	Browse(ctx context.Context, filter entities.CatalogFilter) (*query.CatalogQueryResult, error)
}
