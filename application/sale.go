package application

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"cardpay-system/domain/constants"
	"cardpay-system/domain/entities"
	ePosnet "cardpay-system/domain/entities/posnet"
	"cardpay-system/domain/value_objects"
	pErrors "cardpay-system/errors"
	"cardpay-system/presenters"
	"cardpay-system/utils/helpers"
	"cardpay-system/utils/telegram"
)

// directSale charges the card in a single round-trip. Used when 3-D Secure is
// switched off for the deployment.
func (us *PaymentApplication) directSale(ctx context.Context, order *entities.OrderEntity, payment *entities.PaymentEntity, card value_objects.CardDetails, installment int) (*value_objects.PaymentResult, error) {
	response, err := us.GatewayRepository.Sale(order.OrderID, order.Amount, order.Currency, installment, card)
	if err != nil {
		return us.settleFailure(ctx, payment, err), nil
	}
	if !response.IsApproved() {
		return us.settleFailure(ctx, payment, pErrors.NewGatewayRejected(string(response.RespCode), response.RespText)), nil
	}

	return us.settleSuccess(ctx, payment, response), nil
}

// settleSuccess records an approved charge. The money has already moved when
// this runs, so store failures are logged loudly but never turn the outcome
// back into a failure.
func (us *PaymentApplication) settleSuccess(ctx context.Context, payment *entities.PaymentEntity, response *ePosnet.Response) *value_objects.PaymentResult {
	now := helpers.GetCurrentTime()

	payment.Status = entities.PAYMENT_PAID
	payment.HostLogKey = response.HostLogKey
	payment.AuthCode = response.AuthCode
	if response.OrderID != "" {
		payment.BankRef = response.OrderID
	}
	payment.FailClass = ""
	payment.FailReason = ""
	payment.PaidAt = now

	if _, err := us.PaymentRepository.Upsert(ctx, payment); err != nil {
		us.logStoreFailure("payment", payment.OrderID, err)
	}
	if err := us.OrderRepository.MarkPaid(ctx, payment.OrderID, now); err != nil {
		us.logStoreFailure("order", payment.OrderID, err)
	}

	us.publishEvent(constants.TopicPaymentSuccess, payment.OrderID, payment)

	return &value_objects.PaymentResult{
		Approved:      true,
		OrderID:       payment.OrderID,
		HostLogKey:    payment.HostLogKey,
		AuthCode:      payment.AuthCode,
		BankRef:       payment.BankRef,
		TransactionID: payment.Xid,
	}
}

// settleFailure records a failed charge and maps the cause onto the result the
// checkout may show. Security classes additionally raise the fraud alert; the
// order is never marked paid on any path through here.
func (us *PaymentApplication) settleFailure(ctx context.Context, payment *entities.PaymentEntity, cause error) *value_objects.PaymentResult {
	class := pErrors.ClassOf(cause)
	reason := helpers.Truncate(cause.Error(), 512)

	// a settled record never flips back; the rejection is reported and
	// alerted on without touching the store
	if !payment.Status.IsPaid() {
		payment.Status = entities.PAYMENT_FAILED
		payment.FailClass = string(class)
		payment.FailReason = reason

		if _, err := us.PaymentRepository.Upsert(ctx, payment); err != nil {
			us.logStoreFailure("payment", payment.OrderID, err)
		}
		if err := us.OrderRepository.MarkFailed(ctx, payment.OrderID, reason); err != nil {
			us.logStoreFailure("order", payment.OrderID, err)
		}
	}

	if pErrors.IsSecurity(cause) {
		us.Logger.With(zap.Error(cause)).With(zapcore.Field{
			Key:    "order_id",
			Type:   zapcore.StringType,
			String: payment.OrderID,
		}).With(zapcore.Field{
			Key:    "class",
			Type:   zapcore.StringType,
			String: string(class),
		}).Error(constants.SERVICE_GATEWAY_ERROR + "suspected callback tampering")
		us.notifySecurity(payment, cause.Error())
	} else {
		us.publishEvent(constants.TopicPaymentFailed, payment.OrderID, payment)
		us.notifyFailure(payment)
	}

	var code, gatewayText string
	var pe *pErrors.PaymentError
	if errors.As(cause, &pe) {
		code = pe.Code
		gatewayText = pe.Message
	}

	return &value_objects.PaymentResult{
		OrderID:       payment.OrderID,
		Class:         string(class),
		TransactionID: payment.Xid,
		ErrorCode:     code,
		ErrorMessage:  reason,
		UserMessage:   presenters.UserMessage(class, gatewayText),
	}
}

func (us *PaymentApplication) notifyFailure(payment *entities.PaymentEntity) {
	if us.Config.TelegramChannelId.Refund == 0 {
		return
	}

	snapshot := *payment
	us.IPool.Submit(func() {
		telegram.SendTelegram(
			us.Config.TelegramBotToken,
			telegram.SendPaymentFailed(&snapshot),
			us.Config.TelegramChannelId.Refund,
		)
	})
}

func (us *PaymentApplication) logStoreFailure(store, orderID string, err error) {
	us.Logger.With(zap.Error(err)).With(zapcore.Field{
		Key:    "store",
		Type:   zapcore.StringType,
		String: store,
	}).With(zapcore.Field{
		Key:    "order_id",
		Type:   zapcore.StringType,
		String: orderID,
	}).Error(constants.SERVICE_ORDER_STORE_ERROR + "write failed")
}
