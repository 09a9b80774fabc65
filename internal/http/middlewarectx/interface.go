package middlewarectx

import (
	"context"

	"github.com/magabrotheeeer/weather-blog/internal/services/auth"
)

// Resolver проверяет заголовок Authorization.
type Resolver interface {
	Resolve(ctx context.Context, authorization string) auth.Result
}

// Observer учитывает решения гейта в метриках.
type Observer interface {
	ObserveGate(outcome, reason string)
}
