package tui

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

var syncMagnitudes = []humanize.RelTimeMagnitude{
	{D: 2 * time.Minute, Format: "1 minuto", DivBy: 1},
	{D: time.Hour, Format: "%d minutos", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "1 hora", DivBy: 1},
	{D: humanize.Day, Format: "%d horas", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "1 dia", DivBy: 1},
	{D: humanize.Week, Format: "%d dias", DivBy: humanize.Day},
	{D: math.MaxInt64, Format: "mais de uma semana", DivBy: 1},
}

// FormatSyncAge describes when data was last fetched.
func FormatSyncAge(then, now time.Time) string {
	if then.IsZero() {
		return "não sincronizado"
	}
	if now.Sub(then) < time.Minute {
		return "sincronizado agora"
	}
	return "sincronizado há " + humanize.CustomRelTime(then, now, "", "", syncMagnitudes)
}

// FormatWeekCount renders the filtered/total counter.
func FormatWeekCount(visible, total int) string {
	if visible == total {
		return fmt.Sprintf("%d semanas", total)
	}
	return fmt.Sprintf("%d/%d semanas", visible, total)
}
