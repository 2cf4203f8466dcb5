package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hridsync/models"
)

type HealthAssessmentRepository struct {
	col *mongo.Collection
}

func NewHealthAssessmentRepository(db *mongo.Database) *HealthAssessmentRepository {
	return &HealthAssessmentRepository{col: db.Collection("health_assessments")}
}

func (r *HealthAssessmentRepository) Insert(ctx context.Context, a *models.HealthAssessment) (*models.HealthAssessment, error) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return nil, err
	}
	a.ID = res.InsertedID.(primitive.ObjectID)
	return a, nil
}

func (r *HealthAssessmentRepository) ListByUser(ctx context.Context, userID primitive.ObjectID, limit int) ([]models.HealthAssessment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(int64(limit))
	}
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.HealthAssessment
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
