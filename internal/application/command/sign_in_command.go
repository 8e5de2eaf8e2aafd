package command

import "shopfront/internal/domain/entities"

type SignInCommand struct {
	Email        string
	Phone        string
	CaptchaToken string
}

type SignInCommandResult struct {
	User *entities.User
}
