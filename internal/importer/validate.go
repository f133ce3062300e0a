package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Year bounds accepted for data_aula.
const (
	minYear = 2000
	maxYear = 2100
)

var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// ValidDate reports whether s is an exact YYYY-MM-DD string naming a real
// Gregorian calendar date with the year in [2000, 2100].
func ValidDate(s string) bool {
	return DateError(s) == ""
}

// DateError explains why a date string is invalid, or returns "" when it is
// a well-formed, calendar-valid YYYY-MM-DD within the accepted year range.
func DateError(s string) string {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return "formato inválido"
	}
	year, errY := atoiDigits(s[0:4])
	month, errM := atoiDigits(s[5:7])
	day, errD := atoiDigits(s[8:10])
	if errY != nil || errM != nil || errD != nil {
		return "formato inválido"
	}

	if year < minYear || year > maxYear {
		return fmt.Sprintf("ano fora do intervalo (%d-%d)", minYear, maxYear)
	}
	if month < 1 || month > 12 {
		return "mês fora do intervalo (1-12)"
	}
	max := daysInMonth[month]
	if month == 2 && isLeapYear(year) {
		max = 29
	}
	if day < 1 || day > max {
		return fmt.Sprintf("dia fora do intervalo (1-%d)", max)
	}
	return ""
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// atoiDigits parses a string of ASCII digits only. strconv.Atoi alone would
// accept signs and spaces, which the fixed-width format forbids.
func atoiDigits(s string) (int, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-digit %q", r)
		}
	}
	return strconv.Atoi(s)
}

// ParseTimeRange validates an HH:MM-HH:MM string. It returns the parsed pair
// only when both halves are well-formed 24-hour times and the start is
// strictly before the end.
func ParseTimeRange(s string) (TimeRange, bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return TimeRange{}, false
	}
	start, okStart := minutesOfDay(strings.TrimSpace(parts[0]))
	end, okEnd := minutesOfDay(strings.TrimSpace(parts[1]))
	if !okStart || !okEnd || start >= end {
		return TimeRange{}, false
	}
	return TimeRange{Inicio: strings.TrimSpace(parts[0]), Fim: strings.TrimSpace(parts[1])}, true
}

// minutesOfDay converts HH:MM to minutes since midnight. Hours accept one or
// two digits in [0,23]; minutes must be exactly two digits in [00,59].
func minutesOfDay(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	if len(parts[0]) < 1 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return 0, false
	}
	hour, err := atoiDigits(parts[0])
	if err != nil || hour > 23 {
		return 0, false
	}
	minute, err := atoiDigits(parts[1])
	if err != nil || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

// RequiredText reports whether s is non-empty after trimming.
func RequiredText(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Weekday derives the ISO weekday (Monday=1 .. Sunday=7) and its Portuguese
// display name for a valid YYYY-MM-DD date. The computation is anchored at
// UTC so daylight-saving transitions cannot skew the result.
func Weekday(dateISO string) (int, string, error) {
	t, err := time.Parse("2006-01-02", dateISO)
	if err != nil {
		return 0, "", fmt.Errorf("parse date %q: %w", dateISO, err)
	}
	t = t.UTC()
	iso := int(t.Weekday())
	if iso == 0 {
		iso = 7
	}
	return iso, weekdayNames[iso], nil
}

// weekdayNames maps ISO weekday numbers to display names.
var weekdayNames = [8]string{
	"",
	"Segunda-feira",
	"Terça-feira",
	"Quarta-feira",
	"Quinta-feira",
	"Sexta-feira",
	"Sábado",
	"Domingo",
}
