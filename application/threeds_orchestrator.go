package application

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cast"
	"go.uber.org/zap/zapcore"

	"cardpay-system/domain/constants"
	"cardpay-system/domain/entities"
	ePosnet "cardpay-system/domain/entities/posnet"
	"cardpay-system/domain/value_objects"
	pErrors "cardpay-system/errors"
	"cardpay-system/infrastructure/service/posnet"
	"cardpay-system/utils/gen_ids"
)

// CompletePayment finishes an off-site payment from the browser callback.
// Every field of the callback is untrusted: the MAC gate runs before any
// answer is produced, the packets are resolved through the gateway, the
// resolved view is MAC-checked again and compared against the amounts agreed
// before the redirect, and only then is the charge finalized. A rejection at
// any gate is terminal; the engine never retries a failed verification.
func (us *PaymentApplication) CompletePayment(ctx context.Context, callback *ePosnet.CallbackPayload) (*value_objects.PaymentResult, error) {
	order, err := us.resolveOrder(ctx, callback)
	if err != nil {
		if !errors.Is(err, pErrors.ErrOrderNotFound) {
			// store fault, not a bad callback; operators triage these
			return failureResult(gen_ids.OrderIDFromXID(callback.Xid), err), nil
		}
		return &value_objects.PaymentResult{
			Class:        string(pErrors.ClassValidation),
			ErrorMessage: pErrors.ErrOrderNotFound.Error(),
			UserMessage:  constants.MsgOrderNotFound,
		}, nil
	}

	payment, err := us.findPayment(ctx, order.OrderID)
	if err != nil {
		return notFoundResult(order.OrderID), nil
	}

	// gate 1: the bank-signed MAC over the raw callback fields. This runs
	// before the replay answer, so a forged callback never learns anything
	// about a settled payment.
	ok, err := us.Mac.VerifyCallbackMac(string(callback.MdStatus), callback.Xid, callback.Amount, callback.Currency, callback.Mac)
	if err != nil {
		return us.settleFailure(ctx, payment, pErrors.NewMacValidationFailed(err.Error())), nil
	}
	if !ok {
		return us.settleFailure(ctx, payment, pErrors.NewMacValidationFailed("callback mac mismatch")), nil
	}

	if payment.Status.IsPaid() {
		// replayed callback; the first delivery already settled it
		return &value_objects.PaymentResult{
			Approved:      true,
			OrderID:       payment.OrderID,
			HostLogKey:    payment.HostLogKey,
			AuthCode:      payment.AuthCode,
			BankRef:       payment.BankRef,
			TransactionID: payment.Xid,
		}, nil
	}

	// gate 2: the verification outcome itself
	if rejected := us.classifyMdStatus(callback.MdStatus, payment.OrderID); rejected != nil {
		return us.settleFailure(ctx, payment, rejected), nil
	}

	// gate 3: resolve the opaque packets through the gateway. The MAC on the
	// resolve request is computed over the values agreed before the redirect,
	// never over what the browser delivered.
	storedAmount := cast.ToString(payment.Amount)
	resolveMac, err := us.Mac.FinalizeMac(payment.Xid, storedAmount, payment.Currency)
	if err != nil {
		return us.settleFailure(ctx, payment, pErrors.NewMacValidationFailed(err.Error())), nil
	}

	resolveResponse, err := us.GatewayRepository.OosResolve(callback, resolveMac)
	if err != nil {
		return us.settleFailure(ctx, payment, err), nil
	}
	if !resolveResponse.IsApproved() || resolveResponse.OosResolveData == nil {
		return us.settleFailure(ctx, payment, pErrors.NewGatewayRejected(string(resolveResponse.RespCode), resolveResponse.RespText)), nil
	}
	resolved := resolveResponse.OosResolveData

	// gate 4: the resolved view carries its own MAC; verify it independently
	ok, err = us.Mac.VerifyCallbackMac(string(resolved.MdStatus), resolved.Xid, resolved.Amount, resolved.Currency, resolved.Mac)
	if err != nil || !ok {
		return us.settleFailure(ctx, payment, pErrors.NewMacValidationFailed("resolved data mac mismatch")), nil
	}
	if rejected := us.classifyMdStatus(resolved.MdStatus, payment.OrderID); rejected != nil {
		return us.settleFailure(ctx, payment, rejected), nil
	}

	// gate 5: the resolved transaction must match what was agreed before the
	// redirect. Any drift means the callback was tampered with in flight.
	if mismatch := describeMismatch(payment, resolved); mismatch != "" {
		return us.settleFailure(ctx, payment, pErrors.NewSecurityViolation(mismatch)), nil
	}

	// gate 6: finalize the charge
	finalizeMac, err := us.Mac.FinalizeMac(payment.Xid, storedAmount, payment.Currency)
	if err != nil {
		return us.settleFailure(ctx, payment, pErrors.NewMacValidationFailed(err.Error())), nil
	}

	finalResponse, err := us.GatewayRepository.OosFinalize(callback.BankData, storedAmount, finalizeMac)
	if err != nil {
		return us.settleFailure(ctx, payment, err), nil
	}

	if finalResponse.IsApproved() {
		return us.settleSuccess(ctx, payment, finalResponse), nil
	}
	if finalResponse.IsAlreadyProcessed() {
		// the gateway settled this reference on an earlier delivery
		us.Logger.With(zapcore.Field{
			Key:    "order_id",
			Type:   zapcore.StringType,
			String: payment.OrderID,
		}).Info("finalize replay converged on completed transaction")
		return us.settleSuccess(ctx, payment, finalResponse), nil
	}

	return us.settleFailure(ctx, payment, pErrors.NewGatewayRejected(string(finalResponse.RespCode), finalResponse.RespText)), nil
}

// resolveOrder recovers the order behind a callback. The merchant packet
// carries the order id when the gateway echoes it; the XID padding is the
// fallback.
func (us *PaymentApplication) resolveOrder(ctx context.Context, callback *ePosnet.CallbackPayload) (*entities.OrderEntity, error) {
	var candidates []string

	if parts := strings.Split(callback.MerchantData, "|"); len(parts) >= 2 {
		if id := strings.TrimSpace(parts[len(parts)-1]); id != "" {
			candidates = append(candidates, id)
		}
	}
	if id := gen_ids.OrderIDFromXID(callback.Xid); id != "" {
		candidates = append(candidates, id)
	}

	for _, id := range candidates {
		order, err := us.OrderRepository.FindByOrderID(ctx, id)
		if err == nil && order != nil {
			return order, nil
		}
		if err != nil && !errors.Is(err, pErrors.ErrOrderNotFound) {
			return nil, pErrors.NewSystem("order lookup failed during callback", err)
		}
	}
	return nil, pErrors.ErrOrderNotFound
}

// classifyMdStatus turns a verification status into the terminal rejection it
// implies, or nil when the payment may proceed. Attempt statuses pass only
// when the deployment accepts partial authentication.
func (us *PaymentApplication) classifyMdStatus(md constants.MdStatus, orderID string) error {
	switch {
	case md.IsVerified():
		return nil
	case md.IsAttempt():
		if us.Config.Posnet.AcceptPartialAuth {
			us.Logger.With(zapcore.Field{
				Key:    "order_id",
				Type:   zapcore.StringType,
				String: orderID,
			}).With(zapcore.Field{
				Key:    "md_status",
				Type:   zapcore.StringType,
				String: string(md),
			}).Warn("accepting partially authenticated payment")
			return nil
		}
		return pErrors.NewThreeDSFailed(string(md), md.Reason())
	default:
		return pErrors.NewThreeDSFailed(string(md), md.Reason())
	}
}

// describeMismatch compares the gateway-resolved transaction against the
// pre-redirect record. Returns an empty string when everything lines up.
func describeMismatch(payment *entities.PaymentEntity, resolved *ePosnet.ResolvedData) string {
	if strings.TrimSpace(resolved.Xid) != payment.Xid {
		return "resolved xid does not match the initiated transaction"
	}
	if posnet.NormalizeAmount(resolved.Amount) != posnet.NormalizeAmount(cast.ToString(payment.Amount)) {
		return "resolved amount does not match the order amount"
	}
	if posnet.NormalizeCurrency(resolved.Currency) != posnet.NormalizeCurrency(payment.Currency) {
		return "resolved currency does not match the order currency"
	}
	return ""
}
