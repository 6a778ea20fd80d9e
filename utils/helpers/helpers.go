package helpers

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jakehl/goid"
)

func GetUUId() string {
	v4UUID := goid.NewV4UUID()
	return fmt.Sprint(v4UUID.String())
}

func ContextWithTimeOut() context.Context {
	ctx, _ := context.WithTimeout(context.Background(), time.Second*30)
	return ctx
}

func IsStringSliceContains(slice []string, value string) bool {
	for _, v := range slice {
		if v == value {
			return true
		}
	}
	return false
}

var (
	panPattern = regexp.MustCompile(`\b(\d{6})(\d{3,9})(\d{4})\b`)
	cvcTag     = regexp.MustCompile(`(?i)(<cvc2?>)\s*\d{3,4}\s*(</cvc2?>)`)
	ccnoTag    = regexp.MustCompile(`(?i)(<ccno>)\s*(\d{6})\d{3,9}(\d{4})\s*(</ccno>)`)
)

// MaskCardNumber keeps the first six and last four digits of a PAN and
// replaces the middle with asterisks.
func MaskCardNumber(pan string) string {
	digits := strings.TrimSpace(pan)
	if len(digits) < 11 {
		return strings.Repeat("*", len(digits))
	}
	return digits[:6] + strings.Repeat("*", len(digits)-10) + digits[len(digits)-4:]
}

// MaskSensitiveXML blanks card verification codes and masks card numbers in a
// raw gateway document before it is logged or stored. Works on the raw text,
// so it also catches documents that failed to parse.
func MaskSensitiveXML(raw string) string {
	masked := cvcTag.ReplaceAllString(raw, "${1}***${2}")
	masked = ccnoTag.ReplaceAllStringFunc(masked, func(m string) string {
		sub := ccnoTag.FindStringSubmatch(m)
		return sub[1] + sub[2] + "******" + sub[3] + sub[4]
	})
	masked = panPattern.ReplaceAllStringFunc(masked, func(m string) string {
		return MaskCardNumber(m)
	})
	return masked
}

// Truncate bounds gateway error text before storage.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func GetCurrentTime() time.Time {
	return time.Now().UTC()
}
