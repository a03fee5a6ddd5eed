package lambdaproxy

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
)

// Dispatcher разбирает сырое событие Lambda: прогрев или HTTP запрос
type Dispatcher struct {
	proxy  *Proxy
	warmer *Warmer
}

// NewDispatcher создает точку входа для lambda.Start
func NewDispatcher(proxy *Proxy, warmer *Warmer) *Dispatcher {
	return &Dispatcher{proxy: proxy, warmer: warmer}
}

// Handle обрабатывает событие. Прогрев проверяется первым.
func (d *Dispatcher) Handle(ctx context.Context, event json.RawMessage) (any, error) {
	if warmup, ok := IsWarmupEvent(event); ok {
		return d.warmer.Handle(ctx, warmup), nil
	}

	var req events.APIGatewayV2HTTPRequest
	if err := json.Unmarshal(event, &req); err != nil {
		return nil, fmt.Errorf("error decoding API Gateway event: %w", err)
	}
	return d.proxy.Serve(ctx, req)
}
