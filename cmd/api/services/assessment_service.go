package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"hridsync/internal/logger"
	"hridsync/models"
)

// AssessmentStore persists submitted questionnaires.
type AssessmentStore interface {
	Insert(ctx context.Context, a *models.HealthAssessment) (*models.HealthAssessment, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID, limit int) ([]models.HealthAssessment, error)
}

// RiskStore persists scored outcomes.
type RiskStore interface {
	Insert(ctx context.Context, h *models.HealthRisk) (*models.HealthRisk, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID, limit int) ([]models.HealthRisk, error)
}

type AssessmentService struct {
	assessments AssessmentStore
	risks       RiskStore
	llm         LLMClient // optional; nil skips advice generation
}

func NewAssessmentService(assessments AssessmentStore, risks RiskStore, llm LLMClient) *AssessmentService {
	return &AssessmentService{assessments: assessments, risks: risks, llm: llm}
}

// EvaluateRisk computes the weighted-sum heart-risk score. The score is
// capped at 150; <=50 is low, <=100 medium, above that high.
func EvaluateRisk(a models.HealthAssessment) (score int, level string) {
	// Age factor
	switch {
	case a.Age > 65:
		score += 30
	case a.Age > 55:
		score += 20
	case a.Age > 45:
		score += 10
	}

	// Gender factor
	if a.Gender == "male" {
		score += 10
	}

	// Blood pressure
	switch {
	case a.Systolic > 140 || a.Diastolic > 90:
		score += 25
	case a.Systolic > 130 || a.Diastolic > 80:
		score += 15
	}

	// Cholesterol
	switch {
	case a.Cholesterol > 240:
		score += 20
	case a.Cholesterol > 200:
		score += 10
	}

	// BMI
	switch {
	case a.BMI > 30:
		score += 15
	case a.BMI > 25:
		score += 10
	}

	if a.Diabetes {
		score += 20
	}
	if a.FamilyHistory {
		score += 15
	}

	// Smoking
	switch a.Smoking {
	case models.SmokingCurrent:
		score += 25
	case models.SmokingFormer:
		score += 10
	}

	// Lifestyle
	switch a.Lifestyle {
	case models.LifestyleSedentary:
		score += 15
	case models.LifestyleModerate:
		score += 5
	}

	if score > 150 {
		score = 150
	}

	switch {
	case score <= 50:
		level = models.RiskLow
	case score <= 100:
		level = models.RiskMedium
	default:
		level = models.RiskHigh
	}
	return score, level
}

// Create stores the questionnaire, scores it and persists the outcome.
// Advice generation is best-effort; an LLM failure never fails the request.
func (s *AssessmentService) Create(ctx context.Context, userID primitive.ObjectID, a models.HealthAssessment) (*models.HealthAssessment, *models.HealthRisk, error) {
	a.UserID = userID
	stored, err := s.assessments.Insert(ctx, &a)
	if err != nil {
		return nil, nil, err
	}

	score, level := EvaluateRisk(*stored)

	advice := ""
	if s.llm != nil {
		prompt := fmt.Sprintf(
			"A patient scored %d/150 (%s risk) on a heart-disease screening: age %d, blood pressure %d/%d, cholesterol %d, BMI %.1f, diabetes=%t, smoking=%s, lifestyle=%s. Give three short lifestyle recommendations.",
			score, level, stored.Age, stored.Systolic, stored.Diastolic, stored.Cholesterol, stored.BMI, stored.Diabetes, stored.Smoking, stored.Lifestyle,
		)
		if text, err := s.llm.Generate(ctx, prompt); err != nil {
			logger.WarnWithFields("risk advice generation failed", logger.Fields{
				"user_id": userID.Hex(),
				"error":   err.Error(),
			})
		} else {
			advice = text
		}
	}

	risk, err := s.risks.Insert(ctx, &models.HealthRisk{
		UserID:       userID,
		AssessmentID: stored.ID,
		RiskScore:    score,
		RiskLevel:    level,
		Advice:       advice,
	})
	if err != nil {
		return nil, nil, err
	}
	return stored, risk, nil
}

// History lists the caller's past risk results, newest first.
func (s *AssessmentService) History(ctx context.Context, userID primitive.ObjectID, limit int) ([]models.HealthRisk, error) {
	return s.risks.ListByUser(ctx, userID, limit)
}
