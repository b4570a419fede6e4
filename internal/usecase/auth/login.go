package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/feedback-hub/internal/audit"
	domain "github.com/BruksfildServices01/feedback-hub/internal/domain/auth"
	"github.com/BruksfildServices01/feedback-hub/internal/dto"
	"github.com/BruksfildServices01/feedback-hub/internal/httperr"
	"github.com/BruksfildServices01/feedback-hub/internal/validators"
)

var ErrCredentialsRequired = httperr.New(httperr.KindValidation, "Email and password are required")

// ======================================================
// INPUT / OUTPUT
// ======================================================

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	Token string      `json:"token"`
	User  dto.UserDTO `json:"user"`
}

// ======================================================
// USE CASE
// ======================================================

type Login struct {
	users  domain.UserRepository
	tokens *TokenService
	audit  audit.Recorder
}

func NewLogin(
	users domain.UserRepository,
	tokens *TokenService,
	audit audit.Recorder,
) *Login {
	return &Login{
		users:  users,
		tokens: tokens,
		audit:  audit,
	}
}

// Execute exchanges credentials for a bearer token. Unknown email and
// wrong password are indistinguishable to the caller.
func (uc *Login) Execute(
	ctx context.Context,
	in LoginInput,
) (*LoginOutput, error) {

	email := validators.NormalizeEmail(in.Email)
	if email == "" || strings.TrimSpace(in.Password) == "" {
		return nil, ErrCredentialsRequired
	}

	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := uc.tokens.Sign(user)
	if err != nil {
		return nil, httperr.Internal(err)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  user.ID,
		Action:   audit.ActionLogin,
		Entity:   audit.EntityUser,
		EntityID: user.ID,
	})

	return &LoginOutput{
		Token: token,
		User:  ToUserDTO(user.ID, user.Email, user.Role),
	}, nil
}

func ToUserDTO(id, email, role string) dto.UserDTO {
	return dto.UserDTO{ID: id, Email: email, Role: role}
}
