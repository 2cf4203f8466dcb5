package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hridsync/cmd/api/dto"
	"hridsync/cmd/api/services"
	"hridsync/internal/logger"
	"hridsync/models"
)

// CreateAssessmentHandler godoc
// @Summary      건강 평가 제출
// @Description  설문을 저장하고 가중합 위험 점수를 계산합니다. 조언 생성 실패는 요청을 실패시키지 않습니다.
// @Tags         assessments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AssessmentRequestDTO  true  "assessment"
// @Success      201   {object}  dto.AssessmentResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /assessments [post]
func CreateAssessmentHandler(svc *services.AssessmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requesterID(c)
		if !ok {
			return
		}

		var req dto.AssessmentRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		assessment := models.HealthAssessment{
			Age:           req.Age,
			Gender:        req.Gender,
			Systolic:      req.Systolic,
			Diastolic:     req.Diastolic,
			Cholesterol:   req.Cholesterol,
			BMI:           req.BMI,
			Diabetes:      req.Diabetes,
			FamilyHistory: req.FamilyHistory,
			Smoking:       req.Smoking,
			Lifestyle:     req.Lifestyle,
		}

		stored, risk, err := svc.Create(c.Request.Context(), userID, assessment)
		if err != nil {
			logger.ErrorWithFields("create assessment failed", errorFields(c, err))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "assessment_failed"})
			return
		}

		c.JSON(http.StatusCreated, dto.AssessmentResponseDTO{
			AssessmentID: stored.ID.Hex(),
			Risk: dto.RiskResultDTO{
				RiskScore: risk.RiskScore,
				RiskLevel: risk.RiskLevel,
				Advice:    risk.Advice,
			},
		})
	}
}

// AssessmentHistoryHandler godoc
// @Summary      위험 평가 이력 조회
// @Description  본인의 과거 위험 평가 결과를 최신순으로 반환합니다.
// @Tags         assessments
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.RiskHistoryResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /assessments/history [get]
func AssessmentHistoryHandler(svc *services.AssessmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requesterID(c)
		if !ok {
			return
		}

		risks, err := svc.History(c.Request.Context(), userID, 0)
		if err != nil {
			logger.ErrorWithFields("assessment history failed", errorFields(c, err))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "history_failed"})
			return
		}

		results := make([]dto.RiskHistoryItemDTO, 0, len(risks))
		for _, r := range risks {
			results = append(results, dto.RiskHistoryItemDTO{
				AssessmentID: r.AssessmentID.Hex(),
				RiskScore:    r.RiskScore,
				RiskLevel:    r.RiskLevel,
				CreatedAt:    r.CreatedAt,
			})
		}

		c.JSON(http.StatusOK, dto.RiskHistoryResponseDTO{Results: results})
	}
}
