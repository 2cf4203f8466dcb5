package eventbus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testPayload struct {
	Value string `json:"value"`
}

func TestMemoryBusDeliversToAllSubscribers(t *testing.T) {
	bus := NewMemoryEventBus()
	defer bus.Close()
	ctx := context.Background()
	topic := NewTopic("test.topic")

	var first, second []testPayload
	err := SubscribeJSON(ctx, bus, "g1", topic, func(ctx context.Context, p testPayload, _ Event) error {
		first = append(first, p)
		return nil
	})
	assert.NoError(t, err)
	err = SubscribeJSON(ctx, bus, "g2", topic, func(ctx context.Context, p testPayload, _ Event) error {
		second = append(second, p)
		return nil
	})
	assert.NoError(t, err)

	evt, err := NewJSONEvent("", testPayload{Value: "hello"})
	assert.NoError(t, err)
	assert.NotEmpty(t, evt.ID)

	assert.NoError(t, bus.Publish(ctx, topic.Base(), evt))
	assert.Equal(t, []testPayload{{Value: "hello"}}, first)
	assert.Equal(t, []testPayload{{Value: "hello"}}, second)
}

func TestMemoryBusIgnoresOtherTopics(t *testing.T) {
	bus := NewMemoryEventBus()
	defer bus.Close()
	ctx := context.Background()

	var received int
	err := bus.Subscribe(ctx, "g1", NewTopic("topic.a"), func(ctx context.Context, evt Event) error {
		received++
		return nil
	})
	assert.NoError(t, err)

	evt, err := NewJSONEvent("evt-1", testPayload{Value: "x"})
	assert.NoError(t, err)
	assert.NoError(t, bus.Publish(ctx, "topic.b", evt))
	assert.Equal(t, 0, received)
}

func TestMemoryBusHandlerErrorDoesNotFailPublish(t *testing.T) {
	bus := NewMemoryEventBus()
	defer bus.Close()
	ctx := context.Background()
	topic := NewTopic("test.topic")

	err := bus.Subscribe(ctx, "g1", topic, func(ctx context.Context, evt Event) error {
		return errors.New("handler boom")
	})
	assert.NoError(t, err)

	evt, err := NewJSONEvent("evt-1", testPayload{Value: "x"})
	assert.NoError(t, err)
	assert.NoError(t, bus.Publish(ctx, topic.Base(), evt))
}

func TestMemoryBusRejectsUseAfterClose(t *testing.T) {
	bus := NewMemoryEventBus()
	bus.Close()
	ctx := context.Background()
	topic := NewTopic("test.topic")

	evt, err := NewJSONEvent("evt-1", testPayload{Value: "x"})
	assert.NoError(t, err)

	assert.ErrorIs(t, bus.Publish(ctx, topic.Base(), evt), ErrBusClosed)
	assert.ErrorIs(t, bus.Subscribe(ctx, "g1", topic, func(ctx context.Context, evt Event) error { return nil }), ErrBusClosed)
}

func TestDecodeJSONRejectsMalformedPayload(t *testing.T) {
	_, err := DecodeJSON[testPayload](Event{ID: "evt-1", Payload: []byte("{broken")})
	assert.Error(t, err)
}
