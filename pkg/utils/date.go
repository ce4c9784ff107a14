package utils

import "time"

// MonthLayout é o formato de mês usado no dataset (yyyy-mm)
const MonthLayout = "2006-01"

// ParseMonth interpreta um mês no formato yyyy-mm
func ParseMonth(monthStr string) (time.Time, error) {
	return time.Parse(MonthLayout, monthStr)
}
