package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hridsync/models"
)

type NutritionistRepository struct {
	col *mongo.Collection
}

func NewNutritionistRepository(db *mongo.Database) *NutritionistRepository {
	return &NutritionistRepository{col: db.Collection("nutritionists")}
}

// UpsertByUser upserts a nutritionist profile keyed on user_id.
func (r *NutritionistRepository) UpsertByUser(ctx context.Context, n *models.Nutritionist) error {
	filter := bson.M{"user_id": n.UserID}
	update := bson.M{
		"$set": bson.M{
			"bio":              n.Bio,
			"specialties":      n.Specialties,
			"years_experience": n.YearsExperience,
			"rating":           n.Rating,
			"updated_at":       time.Now(),
		},
		"$setOnInsert": bson.M{"user_id": n.UserID},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.col.UpdateOne(ctx, filter, update, opts)
	return err
}

func (r *NutritionistRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Nutritionist, error) {
	var n models.Nutritionist
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&n); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

// List returns all nutritionist profiles.
func (r *NutritionistRepository) List(ctx context.Context) ([]models.Nutritionist, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "rating", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.Nutritionist
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
