package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"freight-service/internal/auth"
	"freight-service/internal/dto"
	"freight-service/internal/model"
)

type userStub struct {
	*memStore[model.User]
	roles map[uuid.UUID]model.Role
}

func newUserStub() userStub {
	return userStub{
		memStore: newMemStore(
			func(u *model.User) uuid.UUID { return u.ID },
			func(u *model.User, column string) string {
				switch column {
				case "email":
					return u.Email
				case "name":
					return u.Name
				case "lastname":
					return u.Lastname
				}
				return ""
			},
		),
		roles: map[uuid.UUID]model.Role{},
	}
}

func (s userStub) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range s.rows {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s userStub) GetWithRole(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role, ok := s.roles[u.RoleID]; ok {
		u.Role = &role
	}
	return u, nil
}

func (s userStub) ListViews(context.Context) ([]model.UserView, error) {
	return []model.UserView{}, nil
}

func (s userStub) GetView(_ context.Context, id uuid.UUID) (*model.UserView, error) {
	if _, ok := s.rows[id]; !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.UserView{}, nil
}

func (s userStub) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	u, ok := s.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Password = hash
	s.rows[id] = u
	return nil
}

func (s userStub) ReplacePassword(ctx context.Context, id uuid.UUID, next func(string) (string, error)) error {
	u, ok := s.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	hash, err := next(u.Password)
	if err != nil {
		return err
	}
	return s.UpdatePassword(ctx, id, hash)
}

func (s userStub) RoleExists(_ context.Context, roleID uuid.UUID) (bool, error) {
	_, ok := s.roles[roleID]
	return ok, nil
}

type fixedTokens struct{}

func (fixedTokens) Issue(userID uuid.UUID) (string, error) {
	return "token-" + userID.String(), nil
}

const strongPassword = "Secreto#2024"

// seedUser creates a user holding the given role through the service.
func seedUser(t *testing.T, svc *UserService, repo userStub, roleName string) uuid.UUID {
	t.Helper()
	role := model.Role{ID: uuid.New(), Name: roleName}
	repo.roles[role.ID] = role

	id := uuid.New()
	err := svc.Create(context.Background(), dto.UserRequest{
		ID:       id.String(),
		Name:     "Rosa",
		Lastname: "Quispe " + roleName,
		Email:    "Rosa." + roleName + "@Freight.pe",
		Password: strongPassword,
		RoleID:   role.ID.String(),
	})
	require.NoError(t, err)
	return id
}

func TestSignin(t *testing.T) {
	ctx := context.Background()
	repo := newUserStub()
	svc := NewUserService(repo, fixedTokens{}, zerolog.Nop())
	id := seedUser(t, svc, repo, "Gerente")

	token, err := svc.Signin(ctx, dto.SigninRequest{Email: " ROSA.gerente@freight.pe ", Password: strongPassword})
	require.NoError(t, err)
	assert.Equal(t, "token-"+id.String(), token)

	_, err = svc.Signin(ctx, dto.SigninRequest{Email: "rosa.gerente@freight.pe", Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Signin(ctx, dto.SigninRequest{Email: "ghost@freight.pe", Password: strongPassword})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateUserChecksRoleAndEmail(t *testing.T) {
	ctx := context.Background()
	repo := newUserStub()
	svc := NewUserService(repo, fixedTokens{}, zerolog.Nop())
	seedUser(t, svc, repo, "Gerente")

	req := dto.UserRequest{
		ID:       uuid.NewString(),
		Name:     "Ana",
		Lastname: "Torres",
		Email:    "ana@freight.pe",
		Password: strongPassword,
		RoleID:   uuid.NewString(),
	}
	assert.ErrorIs(t, svc.Create(ctx, req), ErrNotFound)

	for id := range repo.roles {
		req.RoleID = id.String()
	}
	req.Email = "rosa.gerente@freight.pe"
	assert.ErrorIs(t, svc.Create(ctx, req), ErrConflict)

	req.Email = "ana@freight.pe"
	req.Password = "weak"
	assert.ErrorIs(t, svc.Create(ctx, req), ErrInvalidInput)

	req.Password = strongPassword
	require.NoError(t, svc.Create(ctx, req))
	stored := repo.rows[uuid.MustParse(req.ID)]
	assert.NotEqual(t, strongPassword, stored.Password)
	assert.NoError(t, auth.CheckPassword(stored.Password, strongPassword))
}

func TestRequireManager(t *testing.T) {
	repo := newUserStub()
	svc := NewUserService(repo, fixedTokens{}, zerolog.Nop())
	manager := seedUser(t, svc, repo, "Gerente")
	clerk := seedUser(t, svc, repo, "Asistente")

	ctx := context.Background()
	assert.NoError(t, svc.RequireManager(ctx, model.Principal{UserID: manager}))
	assert.ErrorIs(t, svc.RequireManager(ctx, model.Principal{UserID: clerk}), ErrPermissionDenied)
	assert.ErrorIs(t, svc.RequireManager(ctx, model.Principal{UserID: uuid.New()}), ErrNotFound)
}

func TestUsersOnlyEditThemselves(t *testing.T) {
	ctx := context.Background()
	repo := newUserStub()
	svc := NewUserService(repo, fixedTokens{}, zerolog.Nop())
	me := seedUser(t, svc, repo, "Gerente")
	other := seedUser(t, svc, repo, "Asistente")
	principal := model.Principal{UserID: me}

	err := svc.UpdateCurrent(ctx, principal, other, dto.UserNameRequest{Name: "Luis", Lastname: "Rojas"})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	err = svc.ChangePassword(ctx, principal, other, dto.PasswordChangeRequest{OldPassword: strongPassword, NewPassword: "Nuevo#2025x"})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	require.NoError(t, svc.UpdateCurrent(ctx, principal, me, dto.UserNameRequest{Name: "Luis", Lastname: "Rojas"}))
	assert.Equal(t, "Luis", repo.rows[me].Name)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	repo := newUserStub()
	svc := NewUserService(repo, fixedTokens{}, zerolog.Nop())
	me := seedUser(t, svc, repo, "Gerente")
	principal := model.Principal{UserID: me}

	err := svc.ChangePassword(ctx, principal, me, dto.PasswordChangeRequest{OldPassword: "Wrong#2024", NewPassword: "Nuevo#2025x"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, svc.ChangePassword(ctx, principal, me, dto.PasswordChangeRequest{OldPassword: strongPassword, NewPassword: "Nuevo#2025x"}))
	assert.NoError(t, auth.CheckPassword(repo.rows[me].Password, "Nuevo#2025x"))

	require.NoError(t, svc.ResetPassword(ctx, me, dto.PasswordResetRequest{NewPassword: strongPassword}))
	assert.NoError(t, auth.CheckPassword(repo.rows[me].Password, strongPassword))
}
