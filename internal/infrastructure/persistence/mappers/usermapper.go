package mappers

import (
	"github.com/sevendesk/helpdesk/internal/domain/user"
	"github.com/sevendesk/helpdesk/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
	ToDomainList(modelList []models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		Role:         u.Role().String(),
		PasswordHash: u.PasswordHash(),
		AvatarURL:    u.AvatarURL(),
		CreatedAt:    u.CreatedAt(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}
	return user.ReconstructUser(
		model.ID,
		model.Name,
		model.Email,
		model.Role,
		model.PasswordHash,
		model.AvatarURL,
		model.CreatedAt.UTC(),
	)
}

func (m *UserMapperImpl) ToDomainList(modelList []models.UserModel) ([]*user.User, error) {
	users := make([]*user.User, 0, len(modelList))
	for i := range modelList {
		u, err := m.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
