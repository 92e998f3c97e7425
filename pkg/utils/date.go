package utils

import (
	"fmt"
	"strings"
	"time"
)

// ParseDate aceita "2006-01-02" ou um timestamp RFC3339 e devolve só a data (UTC)
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("data vazia")
	}

	if date, err := time.Parse(time.DateOnly, dateStr); err == nil {
		return date, nil
	}

	ts, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("data inválida %q: esperado YYYY-MM-DD", dateStr)
	}

	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), nil
}
