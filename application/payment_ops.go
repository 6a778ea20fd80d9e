package application

import (
	"context"
	"errors"

	"cardpay-system/domain/constants"
	"cardpay-system/domain/entities"
	"cardpay-system/domain/value_objects"
	pErrors "cardpay-system/errors"
	"cardpay-system/utils/helpers"

	"github.com/spf13/cast"
)

// Refund sends money back on a settled payment, full or partial, keyed by the
// host log key the bank issued at charge time.
func (us *PaymentApplication) Refund(ctx context.Context, orderID string, amount int64) (*value_objects.PaymentResult, error) {
	payment, err := us.findPayment(ctx, orderID)
	if err != nil {
		return notFoundResult(orderID), nil
	}

	if !payment.Status.IsPaid() {
		return &value_objects.PaymentResult{
			OrderID:      orderID,
			Class:        string(pErrors.ClassValidation),
			ErrorMessage: "payment is not in a refundable state",
			UserMessage:  constants.MsgGenericFailure,
		}, nil
	}
	if amount <= 0 || amount > payment.Amount {
		return &value_objects.PaymentResult{
			OrderID:      orderID,
			Class:        string(pErrors.ClassValidation),
			ErrorMessage: "refund amount out of range",
			UserMessage:  constants.MsgGenericFailure,
		}, nil
	}

	response, err := us.GatewayRepository.Refund(payment.HostLogKey, amount, payment.Currency)
	if err != nil {
		return failureResult(orderID, err), nil
	}
	if !response.IsApproved() {
		return failureResult(orderID, pErrors.NewGatewayRejected(string(response.RespCode), response.RespText)), nil
	}

	if amount == payment.Amount {
		payment.Status = entities.PAYMENT_REFUNDED
	}
	payment.UpdatedAt = helpers.GetCurrentTime()
	if _, err := us.PaymentRepository.Upsert(ctx, payment); err != nil {
		us.logStoreFailure("payment", orderID, err)
	}

	return &value_objects.PaymentResult{
		Approved:   true,
		OrderID:    orderID,
		HostLogKey: response.HostLogKey,
		AuthCode:   response.AuthCode,
	}, nil
}

// Reverse voids a same-day sale before settlement.
func (us *PaymentApplication) Reverse(ctx context.Context, orderID string) (*value_objects.PaymentResult, error) {
	payment, err := us.findPayment(ctx, orderID)
	if err != nil {
		return notFoundResult(orderID), nil
	}
	if !payment.Status.IsPaid() {
		return &value_objects.PaymentResult{
			OrderID:      orderID,
			Class:        string(pErrors.ClassValidation),
			ErrorMessage: "payment is not in a reversible state",
			UserMessage:  constants.MsgGenericFailure,
		}, nil
	}

	response, err := us.GatewayRepository.Reverse("sale", payment.HostLogKey, payment.AuthCode)
	if err != nil {
		return failureResult(orderID, err), nil
	}
	if !response.IsApproved() {
		return failureResult(orderID, pErrors.NewGatewayRejected(string(response.RespCode), response.RespText)), nil
	}

	payment.Status = entities.PAYMENT_REVERSED
	payment.UpdatedAt = helpers.GetCurrentTime()
	if _, err := us.PaymentRepository.Upsert(ctx, payment); err != nil {
		us.logStoreFailure("payment", orderID, err)
	}

	return &value_objects.PaymentResult{
		Approved:   true,
		OrderID:    orderID,
		HostLogKey: payment.HostLogKey,
	}, nil
}

// Authorize blocks the order amount on the card without settling it. The
// gateway reference comes back on the response and is kept for the capture.
func (us *PaymentApplication) Authorize(ctx context.Context, orderID string, card value_objects.CardDetails, installment int) (*value_objects.PaymentResult, error) {
	if !card.Valid() {
		return &value_objects.PaymentResult{
			OrderID:      orderID,
			Class:        string(pErrors.ClassValidation),
			ErrorMessage: "card details failed validation",
			UserMessage:  constants.MsgGenericFailure,
		}, nil
	}

	order, err := us.OrderRepository.FindByOrderID(ctx, orderID)
	if err != nil {
		return notFoundResult(orderID), nil
	}

	response, err := us.GatewayRepository.Authorize(order.OrderID, order.Amount, order.Currency, installment, card)
	if err != nil {
		return failureResult(orderID, err), nil
	}
	if !response.IsApproved() {
		return failureResult(orderID, pErrors.NewGatewayRejected(string(response.RespCode), response.RespText)), nil
	}

	payment := &entities.PaymentEntity{
		OrderID:     order.OrderID,
		Provider:    ProviderName,
		Status:      entities.PAYMENT_INITIATED,
		Amount:      order.Amount,
		Currency:    constants.GatewayCurrency(order.Currency),
		HostLogKey:  response.HostLogKey,
		AuthCode:    response.AuthCode,
		BankRef:     response.OrderID,
		Installment: cast.ToString(installment),
		MaskedPan:   helpers.MaskCardNumber(card.NormalizedNumber()),
		UpdatedAt:   helpers.GetCurrentTime(),
	}
	if _, err := us.PaymentRepository.Upsert(ctx, payment); err != nil {
		us.logStoreFailure("payment", orderID, err)
	}

	return &value_objects.PaymentResult{
		Approved:   true,
		OrderID:    orderID,
		HostLogKey: response.HostLogKey,
		AuthCode:   response.AuthCode,
		BankRef:    response.OrderID,
	}, nil
}

// Capture settles a previously authorized amount under the same gateway
// reference.
func (us *PaymentApplication) Capture(ctx context.Context, orderID string, amount int64, installment int) (*value_objects.PaymentResult, error) {
	payment, err := us.findPayment(ctx, orderID)
	if err != nil {
		return notFoundResult(orderID), nil
	}
	if payment.BankRef == "" {
		return &value_objects.PaymentResult{
			OrderID:      orderID,
			Class:        string(pErrors.ClassValidation),
			ErrorMessage: "no gateway reference recorded for capture",
			UserMessage:  constants.MsgGenericFailure,
		}, nil
	}

	response, err := us.GatewayRepository.Capture(payment.BankRef, amount, payment.Currency, installment)
	if err != nil {
		return failureResult(orderID, err), nil
	}
	if !response.IsApproved() {
		return failureResult(orderID, pErrors.NewGatewayRejected(string(response.RespCode), response.RespText)), nil
	}

	return us.settleSuccess(ctx, payment, response), nil
}

// Status reports the engine's view of a payment; when the bank issued a
// reference it is cross-checked against the gateway's agreement inquiry.
func (us *PaymentApplication) Status(ctx context.Context, orderID string) (*value_objects.PaymentResult, error) {
	payment, err := us.findPayment(ctx, orderID)
	if err != nil {
		return notFoundResult(orderID), nil
	}

	result := &value_objects.PaymentResult{
		Approved:      payment.Status.IsPaid(),
		OrderID:       orderID,
		HostLogKey:    payment.HostLogKey,
		AuthCode:      payment.AuthCode,
		BankRef:       payment.BankRef,
		TransactionID: payment.Xid,
		Class:         payment.FailClass,
		ErrorMessage:  payment.FailReason,
	}

	if payment.BankRef != "" {
		if response, err := us.GatewayRepository.StatusInquiry(payment.BankRef); err == nil {
			result.ErrorCode = string(response.RespCode)
		}
	}

	return result, nil
}

// Points reads the loyalty balance carried on a card. Nothing is charged and
// nothing is stored.
func (us *PaymentApplication) Points(ctx context.Context, card value_objects.CardDetails) (*value_objects.PointBalance, error) {
	if !card.Valid() {
		return nil, pErrors.NewValidation("card details failed validation")
	}

	response, err := us.GatewayRepository.PointInquiry(card)
	if err != nil {
		return nil, err
	}
	if !response.IsApproved() || response.Point == nil {
		return nil, pErrors.NewGatewayRejected(string(response.RespCode), response.RespText)
	}

	return &value_objects.PointBalance{
		Point:       response.Point.Point,
		PointAmount: response.Point.PointAmount,
	}, nil
}

func (us *PaymentApplication) findPayment(ctx context.Context, orderID string) (*entities.PaymentEntity, error) {
	payment, err := us.PaymentRepository.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, errors.New("payment not found")
	}
	return payment, nil
}

func notFoundResult(orderID string) *value_objects.PaymentResult {
	return &value_objects.PaymentResult{
		OrderID:      orderID,
		Class:        string(pErrors.ClassValidation),
		ErrorMessage: "no payment recorded for this order",
		UserMessage:  constants.MsgOrderNotFound,
	}
}

func failureResult(orderID string, cause error) *value_objects.PaymentResult {
	class := pErrors.ClassOf(cause)
	result := &value_objects.PaymentResult{
		OrderID:      orderID,
		Class:        string(class),
		ErrorMessage: cause.Error(),
		UserMessage:  constants.MsgGenericFailure,
	}

	var pe *pErrors.PaymentError
	if errors.As(cause, &pe) {
		result.ErrorCode = pe.Code
	}
	return result
}
