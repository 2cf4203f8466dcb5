package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"hridsync/models"
)

func TestEvaluateRisk(t *testing.T) {
	testCases := []struct {
		name       string
		assessment models.HealthAssessment
		wantScore  int
		wantLevel  string
	}{
		{
			name: "young healthy female is low risk",
			assessment: models.HealthAssessment{
				Age: 30, Gender: "female", Systolic: 110, Diastolic: 70,
				Cholesterol: 180, BMI: 22, Smoking: models.SmokingNever,
				Lifestyle: models.LifestyleActive,
			},
			wantScore: 0,
			wantLevel: models.RiskLow,
		},
		{
			name: "each factor adds its weight",
			assessment: models.HealthAssessment{
				// 20 (age) + 10 (male) + 15 (bp) + 10 (chol) + 10 (bmi)
				// + 10 (former smoker) + 5 (moderate lifestyle) = 80
				Age: 60, Gender: "male", Systolic: 135, Diastolic: 78,
				Cholesterol: 210, BMI: 27, Smoking: models.SmokingFormer,
				Lifestyle: models.LifestyleModerate,
			},
			wantScore: 80,
			wantLevel: models.RiskMedium,
		},
		{
			name: "diastolic alone can trigger the bp weight",
			assessment: models.HealthAssessment{
				Age: 30, Gender: "female", Systolic: 120, Diastolic: 95,
				Cholesterol: 180, BMI: 22, Smoking: models.SmokingNever,
				Lifestyle: models.LifestyleActive,
			},
			wantScore: 25,
			wantLevel: models.RiskLow,
		},
		{
			name: "boundary values do not trigger the next bracket",
			assessment: models.HealthAssessment{
				// 45/130/80/200/25 are all strict thresholds
				Age: 45, Gender: "female", Systolic: 130, Diastolic: 80,
				Cholesterol: 200, BMI: 25, Smoking: models.SmokingNever,
				Lifestyle: models.LifestyleActive,
			},
			wantScore: 0,
			wantLevel: models.RiskLow,
		},
		{
			name: "score is capped at 150",
			assessment: models.HealthAssessment{
				// 30+10+25+20+15+20+15+25+15 = 175 before the cap
				Age: 70, Gender: "male", Systolic: 160, Diastolic: 100,
				Cholesterol: 260, BMI: 32, Diabetes: true, FamilyHistory: true,
				Smoking: models.SmokingCurrent, Lifestyle: models.LifestyleSedentary,
			},
			wantScore: 150,
			wantLevel: models.RiskHigh,
		},
		{
			name: "above 100 is high",
			assessment: models.HealthAssessment{
				// 30+10+25+20+15+5 = 105
				Age: 70, Gender: "male", Systolic: 160, Diastolic: 100,
				Cholesterol: 260, BMI: 32, Smoking: models.SmokingNever,
				Lifestyle: models.LifestyleModerate,
			},
			wantScore: 105,
			wantLevel: models.RiskHigh,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			score, level := EvaluateRisk(testCase.assessment)
			assert.Equal(t, testCase.wantScore, score)
			assert.Equal(t, testCase.wantLevel, level)
		})
	}
}

type fakeAssessmentStore struct {
	items []models.HealthAssessment
}

func (s *fakeAssessmentStore) Insert(ctx context.Context, a *models.HealthAssessment) (*models.HealthAssessment, error) {
	stored := *a
	stored.ID = primitive.NewObjectID()
	stored.CreatedAt = time.Now()
	s.items = append(s.items, stored)
	return &stored, nil
}

func (s *fakeAssessmentStore) ListByUser(ctx context.Context, userID primitive.ObjectID, limit int) ([]models.HealthAssessment, error) {
	var out []models.HealthAssessment
	for _, a := range s.items {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeRiskStore struct {
	items []models.HealthRisk
}

func (s *fakeRiskStore) Insert(ctx context.Context, h *models.HealthRisk) (*models.HealthRisk, error) {
	stored := *h
	stored.ID = primitive.NewObjectID()
	stored.CreatedAt = time.Now()
	s.items = append(s.items, stored)
	return &stored, nil
}

func (s *fakeRiskStore) ListByUser(ctx context.Context, userID primitive.ObjectID, limit int) ([]models.HealthRisk, error) {
	var out []models.HealthRisk
	for _, h := range s.items {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	return out, nil
}

type stubLLM struct {
	reply string
	err   error
	calls int
}

func (s *stubLLM) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func TestAssessmentCreateScoresAndStoresOutcome(t *testing.T) {
	assessments := &fakeAssessmentStore{}
	risks := &fakeRiskStore{}
	llm := &stubLLM{reply: "eat more vegetables"}
	svc := NewAssessmentService(assessments, risks, llm)

	userID := primitive.NewObjectID()
	stored, risk, err := svc.Create(context.Background(), userID, models.HealthAssessment{
		Age: 60, Gender: "male", Systolic: 135, Diastolic: 78,
		Cholesterol: 210, BMI: 27, Smoking: models.SmokingFormer,
		Lifestyle: models.LifestyleModerate,
	})
	assert.NoError(t, err)
	assert.Equal(t, userID, stored.UserID)
	assert.Equal(t, 80, risk.RiskScore)
	assert.Equal(t, models.RiskMedium, risk.RiskLevel)
	assert.Equal(t, stored.ID, risk.AssessmentID)
	assert.Equal(t, "eat more vegetables", risk.Advice)
	assert.Equal(t, 1, llm.calls)
}

func TestAssessmentCreateSurvivesAdviceFailure(t *testing.T) {
	assessments := &fakeAssessmentStore{}
	risks := &fakeRiskStore{}
	llm := &stubLLM{err: errors.New("quota exceeded")}
	svc := NewAssessmentService(assessments, risks, llm)

	_, risk, err := svc.Create(context.Background(), primitive.NewObjectID(), models.HealthAssessment{
		Age: 30, Gender: "female", Systolic: 110, Diastolic: 70,
		Cholesterol: 180, BMI: 22, Smoking: models.SmokingNever,
		Lifestyle: models.LifestyleActive,
	})
	assert.NoError(t, err)
	assert.Empty(t, risk.Advice)
	assert.Equal(t, models.RiskLow, risk.RiskLevel)
}

func TestAssessmentCreateWithoutLLMSkipsAdvice(t *testing.T) {
	assessments := &fakeAssessmentStore{}
	risks := &fakeRiskStore{}
	svc := NewAssessmentService(assessments, risks, nil)

	_, risk, err := svc.Create(context.Background(), primitive.NewObjectID(), models.HealthAssessment{
		Age: 30, Gender: "female", Systolic: 110, Diastolic: 70,
		Cholesterol: 180, BMI: 22, Smoking: models.SmokingNever,
		Lifestyle: models.LifestyleActive,
	})
	assert.NoError(t, err)
	assert.Empty(t, risk.Advice)
}
