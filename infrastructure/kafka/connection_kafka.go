package kafka

import (
	"strings"
	"time"

	"github.com/Shopify/sarama"
	"github.com/lysu/kazoo-go"
)

type Storage struct {
	sarama.SyncProducer
	*kazoo.Kazoo
}

func NewConnection(zkAddrs, brokers string) (storage Storage, err error) {
	conf := kazoo.NewConfig()
	conf.Timeout = time.Minute

	kz, err := kazoo.NewKazoo(strings.Split(zkAddrs, ","), conf)
	if err != nil {
		return storage, err
	}

	producer, err := sarama.NewSyncProducer(strings.Split(brokers, ","), nil)
	if err != nil {
		return storage, err
	}

	return Storage{
		Kazoo:        kz,
		SyncProducer: producer,
	}, err
}
