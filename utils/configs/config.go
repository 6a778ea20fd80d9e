package configs

import (
	"github.com/spf13/viper"
)

type Config struct {
	Prefix            string            `json:"prefix" mapstructure:"prefix"`
	ENV               string            `json:"env" mapstructure:"env"`
	MaxPoolSize       int               `json:"max_pool_size" mapstructure:"max_pool_size"`
	MongoURI          string            `json:"mongo_uri" mapstructure:"mongo_uri"`
	MongoDBName       string            `json:"mongo_db_name" mapstructure:"mongo_db_name"`
	KafkaConfig       Kafka             `json:"kafka_config"  mapstructure:"kafka_config"`
	Posnet            Posnet            `json:"posnet" mapstructure:"posnet"`
	TelegramChannelId TelegramChannelId `json:"telegram_channel_id" mapstructure:"telegram_channel_id"`
	TelegramBotToken  string            `json:"telegram_bot_token" mapstructure:"telegram_bot_token"`
}

// Posnet carries the gateway credentials and endpoints. Loaded once at
// startup, read-only afterwards.
type Posnet struct {
	URI               string `json:"uri" mapstructure:"uri"`
	OosURI            string `json:"oos_uri" mapstructure:"oos_uri"`
	MerchantID        string `json:"merchant_id" mapstructure:"merchant_id"`
	TerminalID        string `json:"terminal_id" mapstructure:"terminal_id"`
	PosnetID          string `json:"posnet_id" mapstructure:"posnet_id"`
	EncKey            string `json:"enc_key" mapstructure:"enc_key"`
	MerchantReturnURL string `json:"merchant_return_url" mapstructure:"merchant_return_url"`
	TimeoutSeconds    int    `json:"timeout_seconds" mapstructure:"timeout_seconds"`
	ThreeDSecure      bool   `json:"three_d_secure" mapstructure:"three_d_secure"`
	UseMock           bool   `json:"use_mock" mapstructure:"use_mock"`
	AcceptPartialAuth bool   `json:"accept_partial_auth" mapstructure:"accept_partial_auth"`
}

type TelegramChannelId struct {
	Fraud  int64 `json:"fraud" mapstructure:"fraud"`
	Refund int64 `json:"refund" mapstructure:"refund"`
}

type Kafka struct {
	Zookeepers     string `json:"zookeepers" mapstructure:"zookeepers"`
	Brokers        string `json:"brokers" mapstructure:"brokers"`
	Partitions     int    `mapstructure:"partitions"`
	Replicas       int    `mapstructure:"replicas"`
	ReturnDuration int    `mapstructure:"return_duration"`
}

func LoadConfig() (*Config, error) {
	viper.AddConfigPath("./")
	viper.SetConfigType("json")
	viper.SetConfigName("config.json")
	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	result := &Config{}
	err = viper.Unmarshal(result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// LoadTestConfig load config for running tests
func LoadTestConfig(configPath string) (*Config, error) {
	viper.AddConfigPath(configPath)
	viper.SetConfigType("json")
	viper.SetConfigName("config_test.json")
	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	result := &Config{}
	err = viper.Unmarshal(result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
