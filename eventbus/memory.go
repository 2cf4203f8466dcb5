package eventbus

import (
	"context"
	"sync"

	"hridsync/internal/logger"
)

// MemoryEventBus는 단일 프로세스용 EventBus 구현체입니다.
// 운영 기본값이며 테스트에서도 그대로 사용합니다.
type MemoryEventBus struct {
	mu       sync.RWMutex
	closed   bool
	handlers map[string][]EventHandler
}

func NewMemoryEventBus() *MemoryEventBus {
	return &MemoryEventBus{handlers: make(map[string][]EventHandler)}
}

// Publish는 등록된 모든 핸들러를 동기적으로 호출합니다.
// 핸들러 오류는 로그만 남기고 발행 자체는 성공으로 처리합니다.
func (b *MemoryEventBus) Publish(ctx context.Context, topic string, event Event) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrBusClosed
	}
	hs := make([]EventHandler, len(b.handlers[topic]))
	copy(hs, b.handlers[topic])
	b.mu.RUnlock()

	for _, h := range hs {
		if err := h(ctx, event); err != nil {
			logger.ErrorWithFields("memory bus handler failed", logger.Fields{
				"topic":    topic,
				"event_id": event.ID,
				"error":    err.Error(),
			})
		}
	}
	return nil
}

// Subscribe는 핸들러를 등록하고 즉시 반환합니다. groupID는 Kafka 구현과의
// 시그니처 호환을 위해서만 존재합니다.
func (b *MemoryEventBus) Subscribe(ctx context.Context, groupID string, topic Topic, handler EventHandler) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrBusClosed
	}
	b.handlers[topic.Base()] = append(b.handlers[topic.Base()], handler)
	return nil
}

func (b *MemoryEventBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.handlers = make(map[string][]EventHandler)
}
