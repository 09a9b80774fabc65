package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ChannelMock struct {
	mock.Mock
}

func (m *ChannelMock) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func TestPublisher_Publish(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	event := PostCreated{PostID: 7, AuthorID: 3, Title: "Snow", Status: "published", OccurredAt: at}

	ch := new(ChannelMock)
	ch.On("Publish", "blog.events", RoutingPostCreated, false, false,
		mock.MatchedBy(func(msg amqp.Publishing) bool {
			var got PostCreated
			if err := json.Unmarshal(msg.Body, &got); err != nil {
				return false
			}
			return msg.ContentType == "application/json" &&
				msg.DeliveryMode == amqp.Persistent &&
				got == event
		})).Return(nil).Once()

	p := NewPublisher(ch, "blog.events")
	require.NoError(t, p.Publish(context.Background(), RoutingPostCreated, event))
	ch.AssertExpectations(t)
}

func TestPublisher_PublishErrors(t *testing.T) {
	t.Run("channel error", func(t *testing.T) {
		ch := new(ChannelMock)
		ch.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("channel closed"))

		err := NewPublisher(ch, "blog.events").Publish(context.Background(), RoutingCommentCreated, CommentCreated{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rabbitmq.Publish")
	})

	t.Run("marshal error", func(t *testing.T) {
		ch := new(ChannelMock)
		badMsg := struct {
			Ch chan int `json:"ch"`
		}{Ch: make(chan int)}

		err := NewPublisher(ch, "blog.events").Publish(context.Background(), "x", badMsg)
		require.Error(t, err)
		ch.AssertNotCalled(t, "Publish")
	})

	t.Run("canceled context", func(t *testing.T) {
		ch := new(ChannelMock)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := NewPublisher(ch, "blog.events").Publish(ctx, "x", PostCreated{})
		require.ErrorIs(t, err, context.Canceled)
		ch.AssertNotCalled(t, "Publish")
	})
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NoopPublisher{}.Publish(context.Background(), RoutingPostCreated, PostCreated{}))
}
