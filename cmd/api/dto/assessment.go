package dto

import "time"

// AssessmentRequestDTO는 /assessments 요청 바디이다.
type AssessmentRequestDTO struct {
	Age           int     `json:"age" binding:"required" example:"52"`
	Gender        string  `json:"gender" binding:"required" example:"male"`
	Systolic      int     `json:"systolic" binding:"required" example:"135"`
	Diastolic     int     `json:"diastolic" binding:"required" example:"85"`
	Cholesterol   int     `json:"cholesterol" binding:"required" example:"210"`
	BMI           float64 `json:"bmi" binding:"required" example:"27.5"`
	Diabetes      bool    `json:"diabetes" example:"false"`
	FamilyHistory bool    `json:"family_history" example:"true"`
	Smoking       string  `json:"smoking" example:"former"`
	Lifestyle     string  `json:"lifestyle" example:"moderate"`
}

// RiskResultDTO는 가중합 점수와 등급이다. 점수 상한은 150이다.
type RiskResultDTO struct {
	RiskScore int    `json:"risk_score" example:"75"`
	RiskLevel string `json:"risk_level" example:"medium"`
	Advice    string `json:"advice,omitempty"`
}

// AssessmentResponseDTO는 평가 생성 응답이다.
type AssessmentResponseDTO struct {
	AssessmentID string        `json:"assessment_id" example:"665f1c2ab1e4a2d3c4e5f606"`
	Risk         RiskResultDTO `json:"risk"`
}

// RiskHistoryItemDTO는 과거 평가 결과 한 건이다.
type RiskHistoryItemDTO struct {
	AssessmentID string    `json:"assessment_id"`
	RiskScore    int       `json:"risk_score"`
	RiskLevel    string    `json:"risk_level"`
	CreatedAt    time.Time `json:"created_at"`
}

// RiskHistoryResponseDTO는 /assessments/history 응답이다.
type RiskHistoryResponseDTO struct {
	Results []RiskHistoryItemDTO `json:"results"`
}
