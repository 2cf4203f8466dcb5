package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Nutritionist is the professional profile attached to a user account.
// Collection: nutritionists
type Nutritionist struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"user_id" json:"user_id"`
	Bio             string             `bson:"bio" json:"bio"`
	Specialties     []string           `bson:"specialties" json:"specialties"`
	YearsExperience int                `bson:"years_experience" json:"years_experience"`
	Rating          float64            `bson:"rating" json:"rating"`
}
