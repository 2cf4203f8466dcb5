package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Smoking statuses accepted by the assessment form.
const (
	SmokingNever   = "never"
	SmokingFormer  = "former"
	SmokingCurrent = "current"
)

// Lifestyle levels accepted by the assessment form.
const (
	LifestyleSedentary = "sedentary"
	LifestyleModerate  = "moderate"
	LifestyleActive    = "active"
)

// HealthAssessment stores one submitted questionnaire.
// Collection: health_assessments
type HealthAssessment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"user_id" json:"user_id"`
	Age           int                `bson:"age" json:"age"`
	Gender        string             `bson:"gender" json:"gender"`
	Systolic      int                `bson:"systolic" json:"systolic"`
	Diastolic     int                `bson:"diastolic" json:"diastolic"`
	Cholesterol   int                `bson:"cholesterol" json:"cholesterol"`
	BMI           float64            `bson:"bmi" json:"bmi"`
	Diabetes      bool               `bson:"diabetes" json:"diabetes"`
	FamilyHistory bool               `bson:"family_history" json:"family_history"`
	Smoking       string             `bson:"smoking" json:"smoking"`
	Lifestyle     string             `bson:"lifestyle" json:"lifestyle"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}
