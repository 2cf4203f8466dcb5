package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hridsync/cmd/api/auth"
	"hridsync/cmd/api/dto"
	"hridsync/cmd/api/services"
	"hridsync/internal/logger"
	"hridsync/models"
)

// ListNutritionistsHandler godoc
// @Summary      영양사 목록 조회
// @Description  평점 내림차순으로 정렬된 영양사 디렉터리를 반환합니다.
// @Tags         nutritionists
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.NutritionistListResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /nutritionists [get]
func ListNutritionistsHandler(svc *services.NutritionistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := requesterID(c); !ok {
			return
		}

		joined, err := svc.List(c.Request.Context())
		if err != nil {
			logger.ErrorWithFields("list nutritionists failed", errorFields(c, err))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "list_failed"})
			return
		}

		items := make([]dto.NutritionistDTO, 0, len(joined))
		for _, n := range joined {
			items = append(items, dto.NutritionistDTO{
				ID:              n.Profile.ID.Hex(),
				UserID:          n.Profile.UserID.Hex(),
				Name:            n.User.Name,
				Email:           n.User.Email,
				Bio:             n.Profile.Bio,
				Specialties:     n.Profile.Specialties,
				YearsExperience: n.Profile.YearsExperience,
				Rating:          n.Profile.Rating,
			})
		}

		c.JSON(http.StatusOK, dto.NutritionistListResponseDTO{Items: items})
	}
}

// UpsertNutritionistProfileHandler godoc
// @Summary      영양사 프로필 등록/수정
// @Description  영양사 본인의 디렉터리 프로필을 생성하거나 갱신합니다. 영양사 역할만 사용할 수 있습니다.
// @Tags         nutritionists
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.NutritionistProfileRequestDTO  true  "profile"
// @Success      200   {object}  dto.MessageResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      403   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /nutritionists/profile [put]
func UpsertNutritionistProfileHandler(svc *services.NutritionistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requesterID(c)
		if !ok {
			return
		}
		if requesterRole(c) != auth.RoleNutritionist {
			c.JSON(http.StatusForbidden, dto.ErrorResponseDTO{Error: "nutritionist_role_required"})
			return
		}

		var req dto.NutritionistProfileRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		err := svc.UpsertProfile(c.Request.Context(), userID, models.Nutritionist{
			Bio:             req.Bio,
			Specialties:     req.Specialties,
			YearsExperience: req.YearsExperience,
			Rating:          req.Rating,
		})
		if err != nil {
			logger.ErrorWithFields("upsert nutritionist profile failed", errorFields(c, err))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "profile_upsert_failed"})
			return
		}

		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "profile saved"})
	}
}
