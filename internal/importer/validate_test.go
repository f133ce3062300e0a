package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidDate(t *testing.T) {
	valid := []string{
		"2000-01-01",
		"2100-12-31",
		"2024-02-29", // leap year
		"2000-02-29", // divisible by 400
		"2025-11-10",
	}
	for _, s := range valid {
		assert.True(t, ValidDate(s), s)
	}

	invalid := []string{
		"",
		"2025-1-10",    // month not two digits
		"25-11-10",     // short year
		"2025/11/10",   // wrong separator
		"1999-12-31",   // below year range
		"2101-01-01",   // above year range
		"2025-13-10",   // month out of range
		"2025-00-10",   // month zero
		"2025-04-31",   // April has 30 days
		"2023-02-29",   // not a leap year
		"1900-02-29",   // divisible by 100, not 400 (also below range)
		"2025-11-1a",   // non-digit
		"2025-11-100",  // too long
		" 2025-11-10 ", // untrimmed
	}
	for _, s := range invalid {
		assert.False(t, ValidDate(s), s)
	}
}

func TestDateErrorReasons(t *testing.T) {
	assert.Contains(t, DateError("2025-13-10"), "mês fora do intervalo")
	assert.Contains(t, DateError("2023-02-29"), "dia fora do intervalo")
	assert.Contains(t, DateError("1999-01-01"), "ano fora do intervalo")
	assert.Contains(t, DateError("not-a-date1"), "formato inválido")
	assert.Empty(t, DateError("2024-02-29"))
}

func TestParseTimeRange(t *testing.T) {
	tr, ok := ParseTimeRange("18:50-19:40")
	require.True(t, ok)
	assert.Equal(t, TimeRange{Inicio: "18:50", Fim: "19:40"}, tr)

	tr, ok = ParseTimeRange("8:00-9:30")
	require.True(t, ok)
	assert.Equal(t, "8:00", tr.Inicio)

	tr, ok = ParseTimeRange("00:00-23:59")
	require.True(t, ok)
	assert.Equal(t, "23:59", tr.Fim)
}

func TestParseTimeRangeRejections(t *testing.T) {
	cases := []string{
		"",
		"18:50",        // no end
		"19:40-18:50",  // start after end
		"18:50-18:50",  // start equals end
		"24:00-25:00",  // hour out of range
		"18:60-19:40",  // minute out of range
		"18:5-19:40",   // one-digit minute
		"185:0-19:40",  // three-digit hour
		"18h50-19h40",  // wrong separator
		"18:50-19:40x", // trailing garbage
	}
	for _, s := range cases {
		_, ok := ParseTimeRange(s)
		assert.False(t, ok, s)
	}
}

func TestRequiredText(t *testing.T) {
	assert.True(t, RequiredText("x"))
	assert.True(t, RequiredText("  x  "))
	assert.False(t, RequiredText(""))
	assert.False(t, RequiredText("   "))
	assert.False(t, RequiredText("\t\n"))
}

func TestWeekday(t *testing.T) {
	day, name, err := Weekday("2025-11-10")
	require.NoError(t, err)
	assert.Equal(t, 1, day)
	assert.Equal(t, "Segunda-feira", name)

	day, name, err = Weekday("2025-11-16")
	require.NoError(t, err)
	assert.Equal(t, 7, day)
	assert.Equal(t, "Domingo", name)

	day, name, err = Weekday("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 4, day)
	assert.Equal(t, "Quinta-feira", name)

	_, _, err = Weekday("2025-13-10")
	require.Error(t, err)
}
