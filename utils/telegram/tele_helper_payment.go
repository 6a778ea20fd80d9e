package telegram

import (
	"fmt"
	"time"

	"cardpay-system/domain/entities"

	"github.com/dustin/go-humanize"
	"github.com/leekchan/accounting"
)

var moneyFormat = accounting.Accounting{Symbol: "", Precision: 2}

// formatMinorUnits renders an amount held in minor units.
func formatMinorUnits(amount int64) string {
	return moneyFormat.FormatMoney(float64(amount) / 100)
}

// SendSecurityAlert formats the fraud-channel message for a suspected tamper
// (MAC mismatch or resolve-data mismatch). Card data arrives already masked.
func SendSecurityAlert(payment *entities.PaymentEntity, reason string) string {
	return fmt.Sprintf(`
SECURITY ALERT - card payment
Order: %v
Amount: %v %v
Card: %v
Reason: %v
Received: %v
			`,
		payment.OrderID,
		formatMinorUnits(payment.Amount),
		payment.Currency,
		payment.MaskedPan,
		reason,
		humanize.Time(time.Now()),
	)
}

// SendPaymentFailed formats the operator message for a declined payment.
func SendPaymentFailed(payment *entities.PaymentEntity) string {
	return fmt.Sprintf(`
Payment failed
Order: %v
Amount: %v %v
Class: %v
Reason: %v
			`,
		payment.OrderID,
		formatMinorUnits(payment.Amount),
		payment.Currency,
		payment.FailClass,
		payment.FailReason,
	)
}
