package producer

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"

	"github.com/feastly/payment_service/internal/domain/models"
	"github.com/feastly/payment_service/pkg/logger"
)

type Producer struct {
	log logger.Logger

	orderEventTopic string
	orderEventsChan chan models.Event
	done            chan struct{}

	// order finalization does not depend on the broker accepting the event,
	// so the async producer is enough here
	producer sarama.AsyncProducer
}

func NewProducer(
	ctx context.Context,
	log logger.Logger,
	orderEventTopic string,
	orderEventsChan chan models.Event,
	done chan struct{},
	brokerAddress []string,
) (*Producer, error) {
	producerConfig := sarama.NewConfig()
	producerConfig.Producer.RequiredAcks = sarama.WaitForLocal
	producerConfig.Producer.Compression = sarama.CompressionNone
	producerConfig.Producer.Return.Successes = true
	producerConfig.Producer.Return.Errors = true

	producer, err := sarama.NewAsyncProducer(brokerAddress, producerConfig)
	if err != nil {
		return nil, err
	}

	go func() {
		for {
			select {
			case sendErr, ok := <-producer.Errors():
				if !ok {
					return
				}

				log.Warn("failed to send message", logger.String("error", sendErr.Error()))
			case success, ok := <-producer.Successes():
				if !ok {
					return
				}

				log.Debug("successfully sent message", logger.String("topic", success.Topic))
			case <-ctx.Done():
				return
			}
		}
	}()

	return &Producer{
		log:             log,
		orderEventTopic: orderEventTopic,
		orderEventsChan: orderEventsChan,
		producer:        producer,
		done:            done,
	}, nil
}

func (p *Producer) ProduceOrderEvents(ctx context.Context) {
	const op = "brokers.kafka.producer.ProduceOrderEvents"

ProducerLoop:
	for {
		select {
		case event, ok := <-p.orderEventsChan:
			if !ok {
				break ProducerLoop
			}

			p.log.Debug(op, logger.String("event", event.UUID()))

			bytes, err := json.Marshal(event)
			if err != nil {
				p.log.Error(op, logger.String("failed to marshal event", err.Error()))
				continue
			}

			message := &sarama.ProducerMessage{
				Topic: p.orderEventTopic,
				Key:   sarama.StringEncoder(event.UUID()),
				Value: sarama.ByteEncoder(bytes),
			}

			p.producer.Input() <- message
		case <-ctx.Done():
			break ProducerLoop
		}
	}
}

func (p *Producer) Close() error {
	close(p.producer.Input())

	err := p.producer.Close()
	if err != nil {
		return err
	}

	close(p.done)
	close(p.orderEventsChan)

	return nil
}
