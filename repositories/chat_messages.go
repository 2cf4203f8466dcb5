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

type ChatMessageRepository struct {
	col *mongo.Collection
}

func NewChatMessageRepository(db *mongo.Database) *ChatMessageRepository {
	return &ChatMessageRepository{col: db.Collection("chat_messages")}
}

// Insert writes one immutable message and returns it with the
// server-assigned id and timestamp.
func (r *ChatMessageRepository) Insert(ctx context.Context, m *models.ChatMessage) (*models.ChatMessage, error) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	res, err := r.col.InsertOne(ctx, m)
	if err != nil {
		return nil, err
	}
	m.ID = res.InsertedID.(primitive.ObjectID)
	return m, nil
}

// ListBySession returns messages ordered by created_at ascending. A
// positive limit truncates to the most recent N, still returned ascending.
func (r *ChatMessageRepository) ListBySession(ctx context.Context, sessionID primitive.ObjectID, limit int) ([]models.ChatMessage, error) {
	filter := bson.M{"session_id": sessionID}

	if limit <= 0 {
		cur, err := r.col.Find(ctx, filter, options.Find().
			SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}))
		if err != nil {
			return nil, err
		}
		defer cur.Close(ctx)
		var items []models.ChatMessage
		if err := cur.All(ctx, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	// Fetch the newest N descending, then reverse into ascending order.
	cur, err := r.col.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.ChatMessage
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return items, nil
}
