package eventbus

import (
	"context"
	"encoding/json"
	"errors"
)

// Topic은 토픽 이름을 한 곳에서 관리하기 위한 타입입니다.
type Topic struct {
	base string
}

func NewTopic(base string) Topic {
	return Topic{base: base}
}

func (t Topic) Base() string {
	return t.base
}

// 전역 토픽 선언. 필요시 환경설정으로 교체할 수 있도록 한 곳에서 관리합니다.
var (
	// TopicChatEvents는 REST 경로로 저장된 채팅 메시지를 라이브 룸으로
	// 전달하기 위한 토픽입니다.
	TopicChatEvents = NewTopic("hridsync.chat.events")
)

// Event는 버스 메시지의 페이로드로 사용되는 구조체입니다.
type Event struct {
	ID      string          `json:"id"`
	Payload json.RawMessage `json:"payload"`
}

// EventHandler는 이벤트 처리 함수의 시그니처입니다.
type EventHandler func(ctx context.Context, event Event) error

// EventBus 인터페이스는 이벤트 발행 및 구독의 추상화를 정의합니다.
// 채팅 팬아웃은 fire-and-forget이며, 유실된 브로드캐스트는 다음 join의
// 히스토리 리플레이로 복구되므로 재시도 토픽을 두지 않습니다.
type EventBus interface {
	Publish(ctx context.Context, topic string, event Event) error
	Subscribe(ctx context.Context, groupID string, topic Topic, handler EventHandler) error
	Close()
}

// ErrBusClosed는 종료된 버스에 발행을 시도했을 때 반환됩니다.
var ErrBusClosed = errors.New("event bus closed")
