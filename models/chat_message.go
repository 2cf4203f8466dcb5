package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sender kinds. The professional role of this domain is the nutritionist.
const (
	SenderUser         = "user"
	SenderNutritionist = "nutritionist"
	SenderAssistant    = "assistant"
)

// Sender is the tagged sender designation of a chat message. ID is nil for
// assistant messages.
type Sender struct {
	Kind string              `bson:"kind" json:"kind"`
	ID   *primitive.ObjectID `bson:"id,omitempty" json:"id,omitempty"`
}

// Metadata is a free-form but closed-shape payload attached to a message.
// Permitted value shapes: string, number, boolean and nested maps of the
// same. Validate rejects anything else before a write.
type Metadata map[string]any

const maxMetadataDepth = 8

// Validate checks every value against the permitted shapes.
func (m Metadata) Validate() error {
	return validateMetadataMap(map[string]any(m), 0)
}

func validateMetadataMap(m map[string]any, depth int) error {
	if depth >= maxMetadataDepth {
		return fmt.Errorf("metadata nested deeper than %d levels", maxMetadataDepth)
	}
	for key, value := range m {
		switch v := value.(type) {
		case nil, string, bool,
			int, int32, int64, float32, float64:
			// scalar shapes are fine
		case map[string]any:
			if err := validateMetadataMap(v, depth+1); err != nil {
				return err
			}
		case Metadata:
			if err := validateMetadataMap(map[string]any(v), depth+1); err != nil {
				return err
			}
		default:
			return fmt.Errorf("metadata key %q has unsupported value type %T", key, value)
		}
	}
	return nil
}

// ChatMessage is one immutable message inside a session. Ordering within a
// session is by created_at; there is no sequence counter.
// Collection: chat_messages
type ChatMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID primitive.ObjectID `bson:"session_id" json:"session_id"`
	Sender    Sender             `bson:"sender" json:"sender"`
	Text      string             `bson:"text" json:"text"`
	Metadata  Metadata           `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
