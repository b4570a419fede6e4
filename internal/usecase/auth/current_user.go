package auth

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/feedback-hub/internal/domain/auth"
	"github.com/BruksfildServices01/feedback-hub/internal/dto"
)

type GetCurrentUser struct {
	users domain.UserRepository
}

func NewGetCurrentUser(users domain.UserRepository) *GetCurrentUser {
	return &GetCurrentUser{users: users}
}

// Execute loads the user behind a verified principal. A token whose user
// was removed is no longer valid.
func (uc *GetCurrentUser) Execute(
	ctx context.Context,
	p domain.Principal,
) (*dto.UserDTO, error) {

	user, err := uc.users.FindByID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}

	out := ToUserDTO(user.ID, user.Email, user.Role)
	return &out, nil
}
