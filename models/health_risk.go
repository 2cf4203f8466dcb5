package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Risk levels derived from the weighted assessment score.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// HealthRisk is the scored outcome of one assessment.
// Collection: health_risks
type HealthRisk struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"user_id" json:"user_id"`
	AssessmentID primitive.ObjectID `bson:"assessment_id" json:"assessment_id"`
	RiskScore    int                `bson:"risk_score" json:"risk_score"`
	RiskLevel    string             `bson:"risk_level" json:"risk_level"`
	Advice       string             `bson:"advice,omitempty" json:"advice,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
