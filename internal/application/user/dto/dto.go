package dto

import (
	"github.com/sevendesk/helpdesk/internal/domain/user"
	"github.com/sevendesk/helpdesk/internal/shared/mapper"
)

// UserDTO is the public view of an account. The password hash is never mapped.
type UserDTO struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	AvatarURL *string `json:"avatar_url"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

type CreateUserRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	Password *string `json:"password"`
}

type CreateUserResponse struct {
	User              UserDTO `json:"user"`
	GeneratedPassword *string `json:"generatedPassword"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

type UpdateProfileRequest struct {
	Name string `json:"name"`
}

type ResetPasswordResponse struct {
	TemporaryPassword string `json:"temporaryPassword"`
}

type AvatarResponse struct {
	AvatarURL string `json:"avatar_url"`
}

type ListUsersResponse struct {
	Items []UserDTO `json:"items"`
	Total int64     `json:"total"`
}

func ToUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		Role:      u.Role().String(),
		AvatarURL: u.AvatarURL(),
	}
}

func ToUserDTOList(users []*user.User) []UserDTO {
	return mapper.MapSlice(users, ToUserDTO)
}
