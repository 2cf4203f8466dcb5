package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hridsync/cmd/api/dto"
	"hridsync/cmd/api/middleware"
	"hridsync/cmd/api/services"
	"hridsync/internal/logger"
)

// GetUserProfileHandler godoc
// @Summary      내 프로필 조회
// @Description  인증된 사용자의 계정 정보를 반환합니다.
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.UserProfileDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /users/profile [get]
func GetUserProfileHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := authSvc.Profile(c.Request.Context(), c.GetString(middleware.CtxUserID))
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: err.Error()})
				return
			}
			logger.ErrorWithFields("profile lookup failed", errorFields(c, err))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "profile_failed"})
			return
		}

		c.JSON(http.StatusOK, dto.UserProfileDTO{
			ID:        user.ID.Hex(),
			Email:     user.Email,
			Name:      user.Name,
			Role:      user.Role,
			CreatedAt: user.CreatedAt.Format(time.RFC3339),
			UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
		})
	}
}
