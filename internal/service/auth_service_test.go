package service

import (
	"context"
	"testing"

	"Volunteer_Hub/internal/model"
	"Volunteer_Hub/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService() (*AuthService, *MockUserRepo, *MockSessionStore) {
	users := new(MockUserRepo)
	sessions := new(MockSessionStore)
	return NewAuthService(users, sessions, nil, zap.NewNop()), users, sessions
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginUsernameNotFound(t *testing.T) {
	svc, users, _ := newAuthService()
	users.On("FindByUsername", mock.Anything, "ghost").Return(nil, pkg.ErrNotFound)

	_, _, err := svc.Login(context.Background(), "ghost", "pw")

	assert.ErrorIs(t, err, pkg.ErrUsernameNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, users, sessions := newAuthService()
	u := &model.User{ID: primitive.NewObjectID(), Username: "lisi", Password: hashOf(t, "right")}
	users.On("FindByUsername", mock.Anything, "lisi").Return(u, nil)

	_, _, err := svc.Login(context.Background(), "lisi", "wrong")

	assert.ErrorIs(t, err, pkg.ErrWrongPassword)
	sessions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginSavesSingleActiveToken(t *testing.T) {
	svc, users, sessions := newAuthService()
	u := &model.User{ID: primitive.NewObjectID(), Username: "lisi", Role: model.RoleVolunteer, Password: hashOf(t, "right")}
	users.On("FindByUsername", mock.Anything, "lisi").Return(u, nil)
	sessions.On("Save", mock.Anything, u.ID.Hex(), mock.Anything).Return(nil)

	pair, got, err := svc.Login(context.Background(), "lisi", "right")

	require.NoError(t, err)
	assert.Equal(t, u.Username, got.Username)
	sessions.AssertCalled(t, "Save", mock.Anything, u.ID.Hex(), pair.AccessToken)

	claims, err := pkg.ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID.Hex(), claims.UserID)
	assert.Equal(t, model.RoleVolunteer, claims.Role)
}

func TestRegisterForbiddenForNonAdmin(t *testing.T) {
	svc, users, _ := newAuthService()

	for _, role := range []string{model.RoleLeader, model.RoleVolunteer} {
		ident := pkg.Identity{UserID: primitive.NewObjectID().Hex(), Role: role}
		_, _, err := svc.Register(context.Background(), ident, RegisterInput{Username: "x", Email: "x@x.cn", Password: "p"})
		assert.ErrorIs(t, err, pkg.ErrForbidden)
	}
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterDefaultsToVolunteer(t *testing.T) {
	svc, users, sessions := newAuthService()
	users.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.User).ID = primitive.NewObjectID()
	}).Return(nil)
	sessions.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	ident := pkg.Identity{UserID: primitive.NewObjectID().Hex(), Role: model.RoleAdmin}
	user, pair, err := svc.Register(context.Background(), ident, RegisterInput{Username: "new", Email: "n@x.cn", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, model.RoleVolunteer, user.Role)
	assert.NotEmpty(t, pair.AccessToken)
	// 密码必须已经散列
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, users, _ := newAuthService()
	users.On("Create", mock.Anything, mock.Anything).Return(pkg.ErrConflict)

	ident := pkg.Identity{UserID: primitive.NewObjectID().Hex(), Role: model.RoleAdmin}
	_, _, err := svc.Register(context.Background(), ident, RegisterInput{Username: "dup", Email: "d@x.cn", Password: "p"})

	assert.ErrorIs(t, err, pkg.ErrConflict)
}

func TestRefreshUsesStoredRole(t *testing.T) {
	svc, users, sessions := newAuthService()
	id := primitive.NewObjectID()

	// 旧 token 里是 volunteer，存储里已升为 leader
	old, err := pkg.GeneratePair(id.Hex(), model.RoleVolunteer)
	require.NoError(t, err)
	users.On("FindByID", mock.Anything, id).Return(&model.User{ID: id, Role: model.RoleLeader}, nil)
	sessions.On("Save", mock.Anything, id.Hex(), mock.Anything).Return(nil)

	pair, err := svc.Refresh(context.Background(), old.RefreshToken)

	require.NoError(t, err)
	claims, err := pkg.ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, model.RoleLeader, claims.Role)
}

func TestRefreshVanishedUser(t *testing.T) {
	svc, users, _ := newAuthService()
	id := primitive.NewObjectID()
	old, err := pkg.GeneratePair(id.Hex(), model.RoleVolunteer)
	require.NoError(t, err)
	users.On("FindByID", mock.Anything, id).Return(nil, pkg.ErrNotFound)

	_, err = svc.Refresh(context.Background(), old.RefreshToken)

	assert.ErrorIs(t, err, pkg.ErrUnauthenticated)
}

func TestLogoutDeletesSession(t *testing.T) {
	svc, _, sessions := newAuthService()
	sessions.On("Delete", mock.Anything, "u1").Return(nil)

	require.NoError(t, svc.Logout(context.Background(), "u1"))
	sessions.AssertExpectations(t)
}
