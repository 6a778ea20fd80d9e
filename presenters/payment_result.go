package presenters

import (
	"cardpay-system/domain/constants"
	pErrors "cardpay-system/errors"
)

// UserMessage maps an error classification to the message the checkout is
// allowed to show. Security and system faults stay generic on purpose;
// decline reasons may be specific.
func UserMessage(class pErrors.Class, gatewayText string) string {
	switch class {
	case pErrors.ClassGatewayRejected:
		if gatewayText != "" {
			return constants.MsgGatewayDeclined + ": " + gatewayText
		}
		return constants.MsgGatewayDeclined
	case pErrors.ClassThreeDSFailed:
		return constants.MsgVerificationFailed
	case pErrors.ClassConnection:
		return constants.MsgConnectionProblem
	case pErrors.ClassValidation:
		return constants.MsgGenericFailure
	}
	// MacValidationFailed, SecurityViolation, SystemError
	return constants.MsgGenericFailure
}
