package payments

import (
	"fmt"
	"strconv"
	"strings"
)

// PrefixPaymentCode is the token the buyer puts in the transfer note so the
// bank notification can be matched back to a payment ("DH" + decimal id).
const PrefixPaymentCode = "DH"

// FormatPaymentCode renders the code embedded in payment instructions.
func FormatPaymentCode(paymentID int64) string {
	return fmt.Sprintf("%s%d", PrefixPaymentCode, paymentID)
}

// ParsePaymentCode extracts the payment id from a gateway field. The id is
// the decimal run immediately following the last occurrence of the prefix;
// free-text around it (bank transfer notes) is ignored.
func ParsePaymentCode(s string) (int64, bool) {
	i := strings.LastIndex(s, PrefixPaymentCode)
	if i < 0 {
		return 0, false
	}
	rest := s[i+len(PrefixPaymentCode):]

	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	id, err := strconv.ParseInt(rest[:end], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ResolvePaymentID tries the dedicated code field first, then the free-form
// transfer content.
func ResolvePaymentID(code, content string) (int64, bool) {
	if code != "" {
		if id, ok := ParsePaymentCode(code); ok {
			return id, true
		}
	}
	if content != "" {
		if id, ok := ParsePaymentCode(content); ok {
			return id, true
		}
	}
	return 0, false
}
