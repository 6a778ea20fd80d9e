package application

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"cardpay-system/domain/constants"
	"cardpay-system/domain/entities"
	"cardpay-system/utils/telegram"
)

// notifySecurity pushes a suspected-tamper alert to the operator fraud
// channel and the security topic. Fire and forget.
func (us *PaymentApplication) notifySecurity(payment *entities.PaymentEntity, reason string) {
	snapshot := *payment

	if us.Config.TelegramChannelId.Fraud != 0 {
		us.IPool.Submit(func() {
			telegram.SendTelegram(
				us.Config.TelegramBotToken,
				telegram.SendSecurityAlert(&snapshot, reason),
				us.Config.TelegramChannelId.Fraud,
			)
		})
	}

	us.publishEvent(constants.TopicPaymentSecurityAlert, snapshot.OrderID, &snapshot)
}

func (us *PaymentApplication) publishEvent(topic, key string, payload interface{}) {
	if us.EventStream == nil {
		return
	}

	us.IPool.Submit(func() {
		if err := us.EventStream.Publish(topic, key, payload); err != nil {
			us.Logger.With(zap.Error(err)).With(zapcore.Field{
				Key:    "topic",
				Type:   zapcore.StringType,
				String: topic,
			}).Error(constants.SERVICE_EVENT_STREAM_ERROR + "publish failed")
		}
	})
}
