package kafka

import (
	"context"
	"time"

	"signalrelay/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
)

// Kafka 生产者服务
// 定义接口，方便测试和替换
type ProducerService interface {
	Produce(ctx context.Context, key []byte, msg any) error
	Close() error
}

// messageWriter kafka.Writer 的子集
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaProducer struct {
	writer messageWriter
	topic  string
}

func NewKafkaProducer(brokerURL, topic string) ProducerService {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokerURL),
		Topic:        topic,
		Balancer:     &kafka.Hash{}, // 相同key进入同一个 Partition，保证单个ticker有序
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	return newProducer(w, topic)
}

func newProducer(w messageWriter, topic string) *kafkaProducer {
	return &kafkaProducer{writer: w, topic: topic}
}

// Produce JSON 序列化后写入 Kafka
func (p *kafkaProducer) Produce(ctx context.Context, key []byte, msg any) error {
	value, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
		Time:  time.Now(),
	})
}

func (p *kafkaProducer) Close() error {
	if err := p.writer.Close(); err != nil {
		logger.Errorf("Error closing %s writer: %v", p.topic, err)
		return err
	}
	return nil
}
