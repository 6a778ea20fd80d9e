package test

import (
	"cardpay-system/application"
	"cardpay-system/domain/repositories/mocks"
	"cardpay-system/infrastructure/service/posnet"
	"cardpay-system/utils/configs"
	"cardpay-system/utils/gpooling"
	logger2 "cardpay-system/utils/logger"

	"github.com/stretchr/testify/mock"
)

type MockService struct {
	Config             *configs.Config
	Orders             *mocks.OrderRepository
	Payments           *mocks.PaymentRepository
	Logs               *mocks.TransactionLogRepository
	Gateway            *mocks.GatewayRepository
	Events             *mocks.IEventStream
	Mac                *posnet.MacEngine
	PaymentApplication *application.PaymentApplication
}

func NewTestPaymentApplication() *MockService {
	config := &configs.Config{
		ENV:         "test",
		MaxPoolSize: 10,
		Posnet: configs.Posnet{
			MerchantID:        "6706598320",
			TerminalID:        "67005551",
			PosnetID:          "9644",
			EncKey:            "10,10,10,10,10,10,10,10",
			MerchantReturnURL: "https://shop.example.com/payment/callback",
			OosURI:            "https://bank.example.com/3ds/gate",
			ThreeDSecure:      true,
		},
	}

	logger, err := logger2.NewLogger("production")
	if err != nil {
		panic(err)
	}

	pool, err := gpooling.NewPooling(config.MaxPoolSize)
	if err != nil {
		panic(err)
	}

	orders := &mocks.OrderRepository{}
	payments := &mocks.PaymentRepository{}
	logs := &mocks.TransactionLogRepository{}
	gateway := &mocks.GatewayRepository{}
	events := &mocks.IEventStream{}

	// outcome events are fire and forget in every scenario
	events.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	mac := posnet.NewMacEngine(config.Posnet.MerchantID, config.Posnet.TerminalID, config.Posnet.EncKey)

	return &MockService{
		Config:   config,
		Orders:   orders,
		Payments: payments,
		Logs:     logs,
		Gateway:  gateway,
		Events:   events,
		Mac:      mac,
		PaymentApplication: &application.PaymentApplication{
			Config:                   config,
			Logger:                   logger,
			OrderRepository:          orders,
			PaymentRepository:        payments,
			TransactionLogRepository: logs,
			GatewayRepository:        gateway,
			EventStream:              events,
			IPool:                    pool,
			Mac:                      mac,
		},
	}
}
