package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"freight-service/internal/auth"
	"freight-service/internal/dto"
	"freight-service/internal/model"
	"freight-service/internal/repository"
)

type UserStore interface {
	store[model.User]
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetWithRole(ctx context.Context, id uuid.UUID) (*model.User, error)
	ListViews(ctx context.Context) ([]model.UserView, error)
	GetView(ctx context.Context, id uuid.UUID) (*model.UserView, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	ReplacePassword(ctx context.Context, id uuid.UUID, next func(current string) (string, error)) error
	RoleExists(ctx context.Context, roleID uuid.UUID) (bool, error)
}

// TokenIssuer signs access tokens for signed-in users.
type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, error)
}

type UserService struct {
	entity[model.User]
	repo   UserStore
	tokens TokenIssuer
	log    zerolog.Logger
}

func NewUserService(repo UserStore, tokens TokenIssuer, log zerolog.Logger) *UserService {
	return &UserService{
		entity: newEntity[model.User](repo, "user", nil, ""),
		repo:   repo,
		tokens: tokens,
		log:    log,
	}
}

// Signin checks the credentials and returns a fresh access token.
func (s *UserService) Signin(ctx context.Context, req dto.SigninRequest) (string, error) {
	if err := validated(&req); err != nil {
		return "", err
	}
	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return "", storeErr(err, "user", "signin", req.Email)
	}
	if err := auth.CheckPassword(u.Password, req.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return "", badInput("wrong password")
		}
		return "", failure("signin", req.Email, err)
	}
	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return "", failure("issue token", req.Email, err)
	}
	s.log.Info().Str("user_id", u.ID.String()).Msg("user signed in")
	return token, nil
}

// RequireManager lets the caller through only when their role is a manager one.
func (s *UserService) RequireManager(ctx context.Context, principal model.Principal) error {
	u, err := s.repo.GetWithRole(ctx, principal.UserID)
	if err != nil {
		return storeErr(err, "user", "load caller", principal.UserID)
	}
	if u.Role == nil || !u.Role.IsManager() {
		return forbidden("manager role required")
	}
	return nil
}

func (s *UserService) Current(ctx context.Context, principal model.Principal) (*model.UserView, error) {
	return s.View(ctx, principal.UserID)
}

// UpdateCurrent renames the caller. id must be the caller's own.
func (s *UserService) UpdateCurrent(ctx context.Context, principal model.Principal, id uuid.UUID, req dto.UserNameRequest) error {
	if id != principal.UserID {
		return forbidden("users can only edit themselves")
	}
	if err := validated(&req); err != nil {
		return err
	}
	u, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	u.Name, u.Lastname = req.Name, req.Lastname
	return s.update(ctx, id, u, fullNameUnique(u))
}

// ChangePassword replaces the caller's password after checking the old one.
// The row stays locked between the check and the write.
func (s *UserService) ChangePassword(ctx context.Context, principal model.Principal, id uuid.UUID, req dto.PasswordChangeRequest) error {
	if id != principal.UserID {
		return forbidden("users can only change their own password")
	}
	if err := validated(&req); err != nil {
		return err
	}
	err := s.repo.ReplacePassword(ctx, id, func(current string) (string, error) {
		if err := auth.CheckPassword(current, req.OldPassword); err != nil {
			if errors.Is(err, auth.ErrPasswordMismatch) {
				return "", unauthorized("old password does not match")
			}
			return "", err
		}
		return auth.HashPassword(req.NewPassword)
	})
	return storeErr(err, "user", "change password", id)
}

func (s *UserService) List(ctx context.Context) ([]model.UserView, error) {
	rows, err := s.repo.ListViews(ctx)
	if err != nil {
		return nil, failure("list users", nil, err)
	}
	return rows, nil
}

func (s *UserService) View(ctx context.Context, id uuid.UUID) (*model.UserView, error) {
	v, err := s.repo.GetView(ctx, id)
	if err != nil {
		return nil, storeErr(err, "user", "get user", id)
	}
	return v, nil
}

func (s *UserService) Create(ctx context.Context, req dto.UserRequest) error {
	if err := validated(&req); err != nil {
		return err
	}
	u := req.ToModel()
	if err := s.roleExists(ctx, u.RoleID); err != nil {
		return err
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return failure("hash password", u.Email, err)
	}
	u.Password = hash
	return s.create(ctx, u.ID, &u,
		unique("user email already exists", repository.Key{Column: "email", Value: u.Email}),
		fullNameUnique(&u))
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, req dto.UserUpdateRequest) error {
	if err := validated(&req); err != nil {
		return err
	}
	u, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	req.ApplyTo(u)
	if err := s.roleExists(ctx, u.RoleID); err != nil {
		return err
	}
	return s.update(ctx, id, u, fullNameUnique(u))
}

// ResetPassword sets a new password without asking for the old one.
func (s *UserService) ResetPassword(ctx context.Context, id uuid.UUID, req dto.PasswordResetRequest) error {
	if err := validated(&req); err != nil {
		return err
	}
	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return failure("hash password", id, err)
	}
	return storeErr(s.repo.UpdatePassword(ctx, id, hash), "user", "reset password", id)
}

func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.delete(ctx, id)
}

func (s *UserService) roleExists(ctx context.Context, roleID uuid.UUID) error {
	ok, err := s.repo.RoleExists(ctx, roleID)
	if err != nil {
		return failure("check role", roleID, err)
	}
	if !ok {
		return notFound("role")
	}
	return nil
}

func fullNameUnique(u *model.User) uniqueCheck {
	return unique("user name and lastname already exist",
		repository.Key{Column: "name", Value: u.Name},
		repository.Key{Column: "lastname", Value: u.Lastname})
}
