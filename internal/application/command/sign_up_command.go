package command

import "shopfront/internal/domain/entities"

type SignUpCommand struct {
	Email        string
	Phone        string
	CaptchaToken string
}

type SignUpCommandResult struct {
	User *entities.User
}
