package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hridsync/cmd/api/dto"
	"hridsync/cmd/api/services"
	"hridsync/internal/logger"
	"hridsync/models"
)

func authUserDTO(u *models.User) dto.AuthUserDTO {
	return dto.AuthUserDTO{
		ID:    u.ID.Hex(),
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}

// SignupHandler godoc
// @Summary      회원가입
// @Description  이메일/비밀번호/이름으로 계정을 생성하고 액세스 토큰을 발급합니다. 비밀번호는 8자 이상이어야 합니다.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SignupRequestDTO  true  "signup request"
// @Success      201   {object}  dto.AuthResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /auth/signup [post]
func SignupHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SignupRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		token, user, err := authSvc.Signup(c.Request.Context(), req.Email, req.Password, req.Name)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWeakPassword), errors.Is(err, services.ErrEmailTaken):
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			default:
				logger.ErrorWithFields("signup failed", errorFields(c, err))
				c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "signup_failed"})
			}
			return
		}

		c.JSON(http.StatusCreated, dto.AuthResponseDTO{Token: token, User: authUserDTO(user)})
	}
}

// LoginHandler godoc
// @Summary      로그인
// @Description  이메일/비밀번호를 검증하고 액세스 토큰을 발급합니다.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequestDTO  true  "login request"
// @Success      200   {object}  dto.AuthResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /auth/login [post]
func LoginHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LoginRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		token, user, err := authSvc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: err.Error()})
				return
			}
			logger.ErrorWithFields("login failed", errorFields(c, err))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "login_failed"})
			return
		}

		c.JSON(http.StatusOK, dto.AuthResponseDTO{Token: token, User: authUserDTO(user)})
	}
}
