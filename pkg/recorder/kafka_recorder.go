package recorder

import (
	"context"
	"time"

	"signalrelay/pkg/kafka"
	"signalrelay/pkg/utils"
)

// KafkaRecorder 把决策记录发布到 Kafka，ticker 作为消息key
type KafkaRecorder struct {
	producer kafka.ProducerService
	retries  int
}

func NewKafkaRecorder(producer kafka.ProducerService) *KafkaRecorder {
	return &KafkaRecorder{producer: producer, retries: 3}
}

func (r *KafkaRecorder) Record(ctx context.Context, e Event) error {
	return utils.Retry(ctx, r.retries, 100*time.Millisecond, true, func() error {
		return r.producer.Produce(ctx, []byte(e.Ticker), e)
	})
}

func (r *KafkaRecorder) Close() error {
	return r.producer.Close()
}
