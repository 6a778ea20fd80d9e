package kafka

import (
	"encoding/json"

	"cardpay-system/domain/constants"

	"github.com/Shopify/sarama"
)

// Publisher emits payment outcome events. Publishing is best-effort: callers
// submit it on the pool and the payment flow never waits on the broker.
type Publisher struct {
	storage Storage
}

func NewPublisher(storage Storage) *Publisher {
	return &Publisher{storage: storage}
}

func (p *Publisher) Publish(topic string, key string, payload interface{}) error {
	body, err := json.Marshal(constants.Message{
		Event:       topic,
		Key:         key,
		MessageData: payload,
	})
	if err != nil {
		return err
	}

	_, _, err = p.storage.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(body),
	})

	return err
}
