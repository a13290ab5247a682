package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizeAmount приводит денежную строку к виду с ровно двумя знаками
// после запятой ("100" -> "100.00"). Возвращает ошибку, если строка
// не является числом.
func NormalizeAmount(raw string) (string, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	return d.StringFixed(2), nil
}

// FormatCount форматирует целое число с разделителями тысяч (12345 -> "12,345").
func FormatCount(n int64) string {
	s := ""
	negative := n < 0
	if negative {
		n = -n
	}

	digits := []byte{}
	if n == 0 {
		digits = append(digits, '0')
	}
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}

	for i := len(digits) - 1; i >= 0; i-- {
		s += string(digits[i])
		if i > 0 && i%3 == 0 {
			s += ","
		}
	}

	if negative {
		return "-" + s
	}
	return s
}
