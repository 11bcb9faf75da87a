package utils

import "time"

const DateLayout = "2006-01-02"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(DateLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// TruncateToDay descarta o horário, mantendo apenas a data no fuso informado
func TruncateToDay(date time.Time) time.Time {
	year, month, day := date.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, date.Location())
}

func SameDay(a, b time.Time) bool {
	return FormatDate(a) == FormatDate(b)
}
