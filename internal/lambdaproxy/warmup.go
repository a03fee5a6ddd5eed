package lambdaproxy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	lambdasdk "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"go.uber.org/zap"
)

const (
	// WarmupSource - значение поля source у событий прогрева
	WarmupSource = "warmup"

	// WarmupDelay держит экземпляр занятым, чтобы дочерние вызовы попали на новые экземпляры
	WarmupDelay = 75 * time.Millisecond
)

// WarmupEvent - событие прогрева от планировщика
type WarmupEvent struct {
	Source      string `json:"source"`
	Concurrency int    `json:"concurrency"`
}

// WarmupResponse - тело ответа на прогрев
type WarmupResponse struct {
	Status          string `json:"status"`
	InstancesWarmed int    `json:"instancesWarmed"`
}

// WarmupResult - ответ Lambda на событие прогрева
type WarmupResult struct {
	StatusCode int            `json:"statusCode"`
	Body       WarmupResponse `json:"body"`
}

// IsWarmupEvent проверяет, является ли событие прогревом
func IsWarmupEvent(event json.RawMessage) (*WarmupEvent, bool) {
	var warmup WarmupEvent
	if err := json.Unmarshal(event, &warmup); err != nil {
		return nil, false
	}
	if warmup.Source != WarmupSource {
		return nil, false
	}
	if warmup.Concurrency < 0 {
		warmup.Concurrency = 0
	}
	return &warmup, true
}

// Invoker вызывает функцию Lambda. Реализуется *lambdasdk.Client.
type Invoker interface {
	Invoke(ctx context.Context, params *lambdasdk.InvokeInput, optFns ...func(*lambdasdk.Options)) (*lambdasdk.InvokeOutput, error)
}

// Warmer поддерживает заданное число прогретых экземпляров функции
type Warmer struct {
	invoker      Invoker
	functionName string
	delay        time.Duration
	logger       *zap.Logger
}

// NewWarmer создает обработчик прогрева.
// При nil invoker самовызов пропускается и прогревается только текущий экземпляр.
func NewWarmer(invoker Invoker, functionName string, logger *zap.Logger) *Warmer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Warmer{
		invoker:      invoker,
		functionName: functionName,
		delay:        WarmupDelay,
		logger:       logger,
	}
}

// NewLambdaInvoker создает клиент Lambda из стандартной цепочки настроек AWS
func NewLambdaInvoker(ctx context.Context) (*lambdasdk.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}
	return lambdasdk.NewFromConfig(cfg), nil
}

// Handle обрабатывает событие прогрева
func (wr *Warmer) Handle(ctx context.Context, warmup *WarmupEvent) WarmupResult {
	instancesWarmed := 1

	if warmup.Concurrency > 0 {
		if err := wr.selfInvoke(ctx, warmup.Concurrency); err != nil {
			wr.logger.Warn("Error warming up instances",
				zap.Int("concurrency", warmup.Concurrency),
				zap.Error(err))
		} else {
			instancesWarmed += warmup.Concurrency
		}
	}

	select {
	case <-time.After(wr.delay):
	case <-ctx.Done():
	}

	return WarmupResult{
		StatusCode: 200,
		Body: WarmupResponse{
			Status:          "warm",
			InstancesWarmed: instancesWarmed,
		},
	}
}

// selfInvoke асинхронно вызывает эту же функцию count раз
func (wr *Warmer) selfInvoke(ctx context.Context, count int) error {
	if wr.invoker == nil || wr.functionName == "" {
		return errors.New("self invocation is not configured")
	}

	// Дочерние вызовы идут с concurrency=0, иначе прогрев зациклится
	payload, err := json.Marshal(WarmupEvent{Source: WarmupSource})
	if err != nil {
		return fmt.Errorf("error encoding warmup payload: %w", err)
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for i := 0; i < count; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := wr.invoker.Invoke(ctx, &lambdasdk.InvokeInput{
				FunctionName:   aws.String(wr.functionName),
				InvocationType: types.InvocationTypeEvent,
				Payload:        payload,
			})
			if err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return errors.Join(errs...)
}
