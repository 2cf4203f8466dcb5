package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatSession is a logical, persistent conversation between a user and a
// counterpart. The counterpart is nil for sessions with the automated
// assistant. At most one session exists per
// (user_id, counterpart_id, with_nutritionist) triple; the repository
// enforces this with a conditional upsert against a unique index.
// Collection: chat_sessions
type ChatSession struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID           primitive.ObjectID  `bson:"user_id" json:"user_id"`
	CounterpartID    *primitive.ObjectID `bson:"counterpart_id,omitempty" json:"counterpart_id,omitempty"`
	WithNutritionist bool                `bson:"with_nutritionist" json:"with_nutritionist"`
	CreatedAt        time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time           `bson:"updated_at" json:"updated_at"`
}

// HasParticipant reports whether the given user id is the session's user
// or its counterpart. This is the single authorization rule shared by the
// realtime join path and the REST history/send paths.
func (s *ChatSession) HasParticipant(userID primitive.ObjectID) bool {
	if s.UserID == userID {
		return true
	}
	return s.CounterpartID != nil && *s.CounterpartID == userID
}
