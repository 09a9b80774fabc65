package rabbitmq

import "context"

// EventPublisher публикует события по ключу маршрутизации.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
}

// EventObserver учитывает результат публикации.
type EventObserver interface {
	ObserveEvent(routingKey string, err error)
}

// ObservedPublisher передает каждую публикацию в EventObserver.
type ObservedPublisher struct {
	next EventPublisher
	obs  EventObserver
}

// NewObservedPublisher оборачивает next.
func NewObservedPublisher(next EventPublisher, obs EventObserver) *ObservedPublisher {
	return &ObservedPublisher{next: next, obs: obs}
}

// Publish публикует событие и сообщает результат наблюдателю.
func (p *ObservedPublisher) Publish(ctx context.Context, routingKey string, event any) error {
	err := p.next.Publish(ctx, routingKey, event)
	p.obs.ObserveEvent(routingKey, err)
	return err
}
