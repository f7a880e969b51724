package utils

import (
	"errors"
	"time"
)

// DayKeyLayout is the canonical YYYY-MM-DD aggregation boundary for entries.
const DayKeyLayout = "2006-01-02"

// MonthKeyLayout identifies a dashboard month (YYYY-MM).
const MonthKeyLayout = "2006-01"

func FormatDayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

func ParseDayKey(dayKey string) (time.Time, error) {
	t, err := time.Parse(DayKeyLayout, dayKey)
	if err != nil {
		return time.Time{}, errors.New("invalid day key, expected YYYY-MM-DD")
	}
	return t, nil
}

func IsValidDayKey(dayKey string) bool {
	_, err := ParseDayKey(dayKey)
	return err == nil
}

// AddDays shifts a day key by n days (n may be negative).
func AddDays(dayKey string, n int) (string, error) {
	t, err := ParseDayKey(dayKey)
	if err != nil {
		return "", err
	}
	return FormatDayKey(t.AddDate(0, 0, n)), nil
}

// WeekWindow returns the Monday and Sunday day keys of the ISO week
// containing dayKey.
func WeekWindow(dayKey string) (string, string, error) {
	t, err := ParseDayKey(dayKey)
	if err != nil {
		return "", "", err
	}
	// time.Weekday has Sunday == 0; shift so Monday == 0
	offset := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)
	return FormatDayKey(monday), FormatDayKey(sunday), nil
}

// WeekDayKeys lists the seven day keys Monday through Sunday of the ISO week
// containing dayKey.
func WeekDayKeys(dayKey string) ([]string, error) {
	monday, _, err := WeekWindow(dayKey)
	if err != nil {
		return nil, err
	}
	start, _ := ParseDayKey(monday)
	keys := make([]string, 7)
	for i := 0; i < 7; i++ {
		keys[i] = FormatDayKey(start.AddDate(0, 0, i))
	}
	return keys, nil
}

// GetLastWeekSameWeekday returns the day key exactly one week before dayKey.
func GetLastWeekSameWeekday(dayKey string) (string, error) {
	return AddDays(dayKey, -7)
}

// LastNDayKeys returns the n day keys ending at (and including) the day of
// now, oldest first.
func LastNDayKeys(now time.Time, n int) []string {
	keys := make([]string, n)
	for i := 0; i < n; i++ {
		keys[i] = FormatDayKey(now.AddDate(0, 0, -(n - 1 - i)))
	}
	return keys
}

// MonthDayKeys lists every day key of the month given as YYYY-MM.
func MonthDayKeys(month string) ([]string, error) {
	first, err := time.Parse(MonthKeyLayout, month)
	if err != nil {
		return nil, errors.New("invalid month, expected YYYY-MM")
	}
	var keys []string
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		keys = append(keys, FormatDayKey(d))
	}
	return keys, nil
}

// MonthWindow returns the first and last day keys of a YYYY-MM month.
func MonthWindow(month string) (string, string, error) {
	keys, err := MonthDayKeys(month)
	if err != nil {
		return "", "", err
	}
	return keys[0], keys[len(keys)-1], nil
}

// ClampDayKeyToMonth pins a reference day into the given month: days before
// the month snap to its first day, days after snap to its last day.
func ClampDayKeyToMonth(dayKey, month string) (string, error) {
	first, last, err := MonthWindow(month)
	if err != nil {
		return "", err
	}
	if !IsValidDayKey(dayKey) {
		return "", errors.New("invalid day key, expected YYYY-MM-DD")
	}
	if dayKey < first {
		return first, nil
	}
	if dayKey > last {
		return last, nil
	}
	return dayKey, nil
}
