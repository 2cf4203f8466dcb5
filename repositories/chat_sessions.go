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

type ChatSessionRepository struct {
	col *mongo.Collection
}

func NewChatSessionRepository(db *mongo.Database) *ChatSessionRepository {
	return &ChatSessionRepository{col: db.Collection("chat_sessions")}
}

// GetOrCreate returns the session for the given participant pair, creating
// it when absent. The lookup and the insert are one FindOneAndUpdate upsert
// keyed on (user_id, counterpart_id, with_nutritionist), so two concurrent
// calls for the same pair resolve to a single document.
func (r *ChatSessionRepository) GetOrCreate(ctx context.Context, userID primitive.ObjectID, counterpartID *primitive.ObjectID, withNutritionist bool) (*models.ChatSession, error) {
	now := time.Now()
	filter := bson.M{
		"user_id":           userID,
		"counterpart_id":    counterpartID,
		"with_nutritionist": withNutritionist,
	}
	update := bson.M{
		"$setOnInsert": bson.M{
			"user_id":           userID,
			"counterpart_id":    counterpartID,
			"with_nutritionist": withNutritionist,
			"created_at":        now,
		},
		"$set": bson.M{"updated_at": now},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var s models.ChatSession
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ChatSessionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ChatSession, error) {
	var s models.ChatSession
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Touch bumps updated_at, used when a message lands in the session.
func (r *ChatSessionRepository) Touch(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"updated_at": time.Now()},
	})
	return err
}
