package constants

const (
	MsgGenericFailure     = "The payment could not be completed. Please try again or contact support"
	MsgVerificationFailed = "Card verification failed. Please try the payment again"
	MsgOrderNotFound      = "The order for this payment could not be found"
	MsgGatewayDeclined    = "The bank declined the payment"
	MsgConnectionProblem  = "The bank could not be reached. Please try again in a moment"
	MsgOrderAlreadyPaid   = "This order has already been paid"
)

const (
	SERVICE_GATEWAY_ERROR      = "[SERVICE_GATEWAY].error "
	SERVICE_ORDER_STORE_ERROR  = "[SERVICE_ORDER_STORE].error "
	SERVICE_PAYMENT_LOG_ERROR  = "[SERVICE_PAYMENT_LOG].error "
	SERVICE_EVENT_STREAM_ERROR = "[SERVICE_EVENT_STREAM].error "
)
