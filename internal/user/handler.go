package user

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"shchuropedia/wiki-service/internal/dto"
	"shchuropedia/wiki-service/pkg/response"
)

type UserHandler struct {
	userService *UserService
}

// NewUserHandler 初始化handler（内部会自动初始化所有依赖）
func NewUserHandler(db *gorm.DB) *UserHandler {
	userRepo := NewUserRepository(db)
	return &UserHandler{
		userService: NewUserService(db, userRepo),
	}
}

func errorResponse(c *gin.Context, err error) {
	var code response.ResponseCode
	switch {
	case errors.Is(err, ErrUsernameExists):
		code = response.Conflict
	case errors.Is(err, ErrInvalidUsername):
		code = response.InvalidParameter
	case errors.Is(err, ErrWrongPassword):
		code = response.Unauthorized
	default:
		code = response.StorageError
	}
	dto.ErrorResponse(c, response.NewBusinessError(
		response.WithErrorCode(code),
		response.WithErrorMessage(err.Error()),
		response.WithError(err),
	))
}

// Register 注册
// @Summary 注册新用户
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "注册请求"
// @Success 200 {object} response.Response{data=dto.AuthResponse}
// @Router /auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	u, err := h.userService.Register(req.Username, req.Password)
	if err != nil {
		errorResponse(c, err)
		return
	}

	dto.SuccessResponse(c, dto.AuthResponse{
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
	})
}

// Login 登录
// @Summary 登录并签发访问令牌
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录请求"
// @Success 200 {object} response.Response{data=dto.AuthResponse}
// @Router /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	u, token, err := h.userService.Login(req.Username, req.Password)
	if err != nil {
		errorResponse(c, err)
		return
	}

	// 同时下发cookie，便于浏览器端直接携带
	c.SetCookie("access_token", token, 3600*24, "/", "", false, true)

	dto.SuccessResponse(c, dto.AuthResponse{
		UserID:      u.ID,
		Username:    u.Username,
		Role:        u.Role,
		AccessToken: token,
	})
}
