package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/revenue-dashboard-api/pkg/utils"
)

// Date é uma data de calendário serializada como "YYYY-MM-DD"
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "null" || raw == "" {
		return fmt.Errorf("date é obrigatório")
	}

	parsed, err := utils.ParseDate(raw)
	if err != nil {
		return err
	}

	d.Time = parsed
	return nil
}
