package service

import (
	"context"
	"errors"
	"strings"

	"Volunteer_Hub/internal/model"
	"Volunteer_Hub/internal/pkg"
	"Volunteer_Hub/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Mailer 发信钩子，nil 表示不发
type Mailer func(to, subject, htmlBody string) error

type AuthService struct {
	users    repository.UserRepository
	sessions repository.SessionStore
	mailer   Mailer
	log      *zap.Logger
}

func NewAuthService(users repository.UserRepository, sessions repository.SessionStore, mailer Mailer, log *zap.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, mailer: mailer, log: log}
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
}

// Login 区分账号不存在与密码错误，前端按 errorType 提示
func (s *AuthService) Login(ctx context.Context, username, password string) (*pkg.Pair, *model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, pkg.ErrNotFound) {
		return nil, nil, pkg.ErrUsernameNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil, pkg.ErrWrongPassword
	}

	pair, err := pkg.GeneratePair(user.ID.Hex(), user.Role)
	if err != nil {
		return nil, nil, err
	}
	if err := s.sessions.Save(ctx, user.ID.Hex(), pair.AccessToken); err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

// Register 仅管理员可开通账号；创建人身份来自已解析的凭证，不信任请求体
func (s *AuthService) Register(ctx context.Context, ident pkg.Identity, in RegisterInput) (*model.User, *pkg.Pair, error) {
	if !pkg.Permit(ident, model.RoleAdmin) {
		return nil, nil, pkg.ErrForbidden
	}

	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, nil, pkg.Invalidf("username, email and password are required")
	}
	if in.Role == "" {
		in.Role = model.RoleVolunteer
	}
	if !model.IsValidRole(in.Role) {
		return nil, nil, pkg.Invalidf("unknown role %q", in.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := &model.User{
		Username: in.Username,
		Email:    in.Email,
		Password: string(hash),
		FullName: in.FullName,
		Phone:    in.Phone,
		Role:     in.Role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := pkg.GeneratePair(user.ID.Hex(), user.Role)
	if err != nil {
		return nil, nil, err
	}
	if err := s.sessions.Save(ctx, user.ID.Hex(), pair.AccessToken); err != nil {
		return nil, nil, err
	}

	if s.mailer != nil {
		go func(to, fullName, username string) {
			html := pkg.WelcomeHTML(fullName, username)
			if err := s.mailer(to, "志愿者平台账号已开通", html); err != nil && s.log != nil {
				s.log.Warn("welcome mail failed", zap.String("to", to), zap.Error(err))
			}
		}(user.Email, user.FullName, user.Username)
	}

	return user, pair, nil
}

func (s *AuthService) Profile(ctx context.Context, userID string) (*model.User, error) {
	id, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, id)
}

func (s *AuthService) Users(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.sessions.Delete(ctx, userID)
}

// Refresh 换发新 token；角色从存储重查，不沿用旧 token 里的值
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*pkg.Pair, error) {
	claims, err := pkg.ParseRefresh(refreshToken)
	if err != nil {
		return nil, err
	}
	id, err := parseID(claims.UserID)
	if err != nil {
		return nil, pkg.ErrRefreshInvalid
	}
	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, pkg.ErrNotFound) {
		return nil, pkg.ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}

	pair, err := pkg.GeneratePair(user.ID.Hex(), user.Role)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, user.ID.Hex(), pair.AccessToken); err != nil {
		return nil, err
	}
	return pair, nil
}
