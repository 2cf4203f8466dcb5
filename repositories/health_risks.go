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

type HealthRiskRepository struct {
	col *mongo.Collection
}

func NewHealthRiskRepository(db *mongo.Database) *HealthRiskRepository {
	return &HealthRiskRepository{col: db.Collection("health_risks")}
}

func (r *HealthRiskRepository) Insert(ctx context.Context, h *models.HealthRisk) (*models.HealthRisk, error) {
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now()
	}
	res, err := r.col.InsertOne(ctx, h)
	if err != nil {
		return nil, err
	}
	h.ID = res.InsertedID.(primitive.ObjectID)
	return h, nil
}

func (r *HealthRiskRepository) ListByUser(ctx context.Context, userID primitive.ObjectID, limit int) ([]models.HealthRisk, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(int64(limit))
	}
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.HealthRisk
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
