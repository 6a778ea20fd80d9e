package application

import (
	"context"
	"errors"

	"github.com/spf13/cast"

	"cardpay-system/domain/constants"
	"cardpay-system/domain/entities"
	"cardpay-system/domain/value_objects"
	pErrors "cardpay-system/errors"
	"cardpay-system/utils/gen_ids"
	"cardpay-system/utils/helpers"
)

// InitiatePayment starts a card payment for an existing order. The charged
// amount and currency always come from the stored order, never from the
// caller. Expected failures come back inside the result; only store faults
// surface as errors.
func (us *PaymentApplication) InitiatePayment(ctx context.Context, orderID string, card value_objects.CardDetails, installment int) (*value_objects.PaymentResult, error) {
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
		if errors.Is(err, pErrors.ErrOrderNotFound) {
			return &value_objects.PaymentResult{
				OrderID:      orderID,
				Class:        string(pErrors.ClassValidation),
				ErrorMessage: pErrors.ErrOrderNotFound.Error(),
				UserMessage:  constants.MsgOrderNotFound,
			}, nil
		}
		return nil, pErrors.NewSystem("order lookup failed", err)
	}

	if order.Status.IsSuccess() {
		return alreadyPaidResult(orderID), nil
	}
	if existing, err := us.PaymentRepository.FindByOrderID(ctx, orderID); err == nil && existing != nil && existing.Status.IsPaid() {
		return alreadyPaidResult(orderID), nil
	}

	payment := &entities.PaymentEntity{
		OrderID:     order.OrderID,
		Provider:    ProviderName,
		Status:      entities.PAYMENT_INITIATED,
		Amount:      order.Amount,
		Currency:    constants.GatewayCurrency(order.Currency),
		Installment: cast.ToString(installment),
		MaskedPan:   helpers.MaskCardNumber(card.NormalizedNumber()),
	}
	payment, err = us.PaymentRepository.Upsert(ctx, payment)
	if err != nil {
		return nil, pErrors.NewSystem("payment record could not be created", err)
	}

	if us.Config.Posnet.ThreeDSecure {
		return us.initiateThreeDS(ctx, order, payment, card, installment)
	}
	return us.directSale(ctx, order, payment, card, installment)
}

// initiateThreeDS asks the gateway for the off-site packets and hands the
// checkout the form that pushes the shopper to the bank's verification page.
// Nothing is charged here; money moves in CompletePayment.
func (us *PaymentApplication) initiateThreeDS(ctx context.Context, order *entities.OrderEntity, payment *entities.PaymentEntity, card value_objects.CardDetails, installment int) (*value_objects.PaymentResult, error) {
	xid := gen_ids.OosXID(order.OrderID)

	response, err := us.GatewayRepository.OosRequest(xid, order.Amount, order.Currency, installment, constants.TranTypeSale, card)
	if err != nil {
		return us.settleFailure(ctx, payment, err), nil
	}
	if !response.IsApproved() || response.OosRequestData == nil {
		return us.settleFailure(ctx, payment, pErrors.NewGatewayRejected(string(response.RespCode), response.RespText)), nil
	}

	payment.Xid = xid
	payment.Status = entities.PAYMENT_REDIRECT
	if _, err := us.PaymentRepository.Upsert(ctx, payment); err != nil {
		return nil, pErrors.NewSystem("payment record could not be updated", err)
	}

	return &value_objects.PaymentResult{
		OrderID:       order.OrderID,
		TransactionID: xid,
		Redirect: &value_objects.RedirectForm{
			URL: us.Config.Posnet.OosURI,
			Fields: map[string]string{
				"mid":               us.Config.Posnet.MerchantID,
				"posnetID":          us.Config.Posnet.PosnetID,
				"posnetData":        response.OosRequestData.Data1,
				"posnetData2":       response.OosRequestData.Data2,
				"digest":            response.OosRequestData.Sign,
				"merchantReturnURL": us.Config.Posnet.MerchantReturnURL,
				"lang":              "tr",
			},
		},
	}, nil
}

func alreadyPaidResult(orderID string) *value_objects.PaymentResult {
	return &value_objects.PaymentResult{
		OrderID:      orderID,
		Class:        string(pErrors.ClassValidation),
		ErrorMessage: pErrors.ErrPaidOrder.Error(),
		UserMessage:  constants.MsgOrderAlreadyPaid,
	}
}
