package dto

import "time"

type SignupInput struct {
	Username string
	Email    string
	Password string
	Confirm  string
}

type LoginInput struct {
	Username string
	Password string
}

type UserOutput struct {
	ID        string
	Username  string
	Email     string
	CreatedAt time.Time
}

type ActiveUserOutput struct {
	Username   string
	Name       string
	LoggedInAt time.Time
	Greeting   string
}
