package utils

import (
	"strings"
	"time"
)

// ParseDate converte uma data no formato YYYY-MM-DD. O segundo retorno indica
// se a conversão foi possível.
func ParseDate(dateStr string) (time.Time, bool) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, false
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return time.Time{}, false
	}

	return date, true
}
