package application

import (
	"go.uber.org/zap"

	"cardpay-system/domain/repositories"
	"cardpay-system/infrastructure/database_mgo"
	"cardpay-system/infrastructure/database_mgo/order"
	"cardpay-system/infrastructure/database_mgo/payment"
	"cardpay-system/infrastructure/database_mgo/transaction_log"
	"cardpay-system/infrastructure/kafka"
	"cardpay-system/infrastructure/service/posnet"
	"cardpay-system/utils/configs"
	"cardpay-system/utils/gpooling"
)

const ProviderName = "posnet"

type PaymentApplication struct {
	Config                   *configs.Config
	Logger                   *zap.Logger
	OrderRepository          repositories.OrderRepository
	PaymentRepository        repositories.PaymentRepository
	TransactionLogRepository repositories.TransactionLogRepository
	GatewayRepository        repositories.GatewayRepository
	EventStream              repositories.IEventStream
	IPool                    gpooling.IPool
	Mac                      *posnet.MacEngine
}

func NewPaymentApplication(config *configs.Config, logger *zap.Logger, pool gpooling.IPool) *PaymentApplication {
	db := database_mgo.NewMongoDBconnection(config.MongoURI)

	us := &PaymentApplication{
		Config:                   config,
		Logger:                   logger,
		OrderRepository:          order.NewOrderCollection(db, config.MongoDBName),
		PaymentRepository:        payment.NewPaymentCollection(db, config.MongoDBName),
		TransactionLogRepository: transaction_log.NewTransactionLogCollection(db, config.MongoDBName),
		IPool:                    pool,
		Mac:                      posnet.NewMacEngine(config.Posnet.MerchantID, config.Posnet.TerminalID, config.Posnet.EncKey),
	}

	recorder := NewAuditRecorder(us.TransactionLogRepository, pool, logger)

	if config.Posnet.UseMock {
		us.GatewayRepository = posnet.NewMockImpl(config.Posnet)
	} else {
		us.GatewayRepository = posnet.NewRepoImpl(config.Posnet, logger, recorder)
	}

	if config.KafkaConfig.Brokers != "" {
		storage, err := kafka.NewConnection(config.KafkaConfig.Zookeepers, config.KafkaConfig.Brokers)
		if err != nil {
			logger.With(zap.Error(err)).Error("kafka connection failed, payment events disabled")
		} else {
			us.EventStream = kafka.NewPublisher(storage)
		}
	}

	return us
}
