package user

import (
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"shchuropedia/wiki-service/internal/middleware"
	userModel "shchuropedia/wiki-service/internal/model/user"
)

var (
	ErrUserNotFound    = errors.New("用户不存在")
	ErrUsernameExists  = errors.New("用户名已被占用")
	ErrInvalidUsername = errors.New("用户名只能包含字母、数字、下划线和连字符")
	ErrWrongPassword   = errors.New("用户名或密码错误")
)

// 用户名白名单，避免把任意输入带进URL和日志
var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type UserService struct {
	db       *gorm.DB
	userRepo *UserRepository
}

func NewUserService(db *gorm.DB, userRepo *UserRepository) *UserService {
	return &UserService{db: db, userRepo: userRepo}
}

// Register 注册新用户
// 密码只存bcrypt哈希，角色固定为普通用户
func (s *UserService) Register(username, password string) (*userModel.User, error) {
	if !usernameRe.MatchString(username) {
		return nil, ErrInvalidUsername
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &userModel.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         "user",
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := NewUserRepository(tx)

		exists, err := repo.ExistsByUsername(username)
		if err != nil {
			return err
		}
		if exists {
			return ErrUsernameExists
		}

		return repo.Create(u)
	})
	if err != nil {
		return nil, err
	}

	return u, nil
}

// Login 校验口令并签发JWT
// 用户不存在与密码错误返回同一个错误，不泄露用户名是否注册
func (s *UserService) Login(username, password string) (*userModel.User, string, error) {
	u, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, "", ErrWrongPassword
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrWrongPassword
	}

	token, err := middleware.GenerateToken(u.ID, u.Username, u.Role)
	if err != nil {
		return nil, "", err
	}

	return u, token, nil
}
