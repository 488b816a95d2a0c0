package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/resource-api/internal/application/dto"
	"github.com/jhoicas/resource-api/internal/domain"
	"github.com/jhoicas/resource-api/internal/domain/entity"
	"github.com/jhoicas/resource-api/internal/domain/repository"
)

// UserUseCase casos de uso CRUD para usuarios. El password solo se guarda como hash bcrypt.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create hashea el password y persiste. domain.ErrDuplicate si username o email ya existen.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := timestamp()
	user := &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}

// List lista usuarios filtrando por subcadena de username/email.
func (uc *UserUseCase) List(ctx context.Context, q dto.UserQuery) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx, repository.UserFilter{Username: q.Username, Email: q.Email})
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// Replace sobrescribe username, email y password (re-hasheado).
func (uc *UserUseCase) Replace(ctx context.Context, id string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Username = in.Username
	user.Email = in.Email
	user.PasswordHash = string(hash)
	user.UpdatedAt = timestamp()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Patch aplica username y/o email.
func (uc *UserUseCase) Patch(ctx context.Context, id string, in dto.PatchUserRequest) (*dto.UserResponse, error) {
	if in.IsEmpty() {
		return nil, domain.ErrNoFieldsToUpdate
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	user.UpdatedAt = timestamp()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina el usuario y devuelve el registro borrado.
func (uc *UserUseCase) Delete(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}
