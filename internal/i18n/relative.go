package i18n

import (
	"fmt"
	"math"
	"time"
)

type distanceUnit int

const (
	unitLessThanMinute distanceUnit = iota
	unitMinutes
	unitAboutHours
	unitDays
	unitAboutMonths
	unitMonths
	unitAboutYears
	unitOverYears
	unitAlmostYears
)

const (
	minutesInDay           = 1440
	minutesInAlmostTwoDays = 2520
	minutesInMonth         = 43200
	minutesInTwoMonths     = 86400
)

// distance 按 date-fns formatDistance 的分段规则把 a、b 之间的间隔归类。
// 两个月以上改按日历月计算，与 differenceInMonths 一致。
func distance(a, b time.Time) (distanceUnit, int) {
	earlier, later := a, b
	if later.Before(earlier) {
		earlier, later = later, earlier
	}
	d := later.Sub(earlier)
	minutes := int(math.Round(d.Seconds() / 60))
	switch {
	case minutes < 1:
		return unitLessThanMinute, 1
	case minutes < 45:
		return unitMinutes, minutes
	case minutes < 90:
		return unitAboutHours, 1
	case minutes < minutesInDay:
		return unitAboutHours, int(math.Round(float64(minutes) / 60))
	case minutes < minutesInAlmostTwoDays:
		return unitDays, 1
	case minutes < minutesInMonth:
		return unitDays, int(math.Round(float64(minutes) / minutesInDay))
	case minutes < minutesInTwoMonths:
		return unitAboutMonths, int(math.Round(float64(minutes) / minutesInMonth))
	}

	months := calendarMonths(earlier, later)
	if months < 12 {
		return unitMonths, int(math.Round(float64(minutes) / minutesInMonth))
	}
	years := months / 12
	switch rest := months % 12; {
	case rest < 3:
		return unitAboutYears, years
	case rest < 9:
		return unitOverYears, years
	default:
		return unitAlmostYears, years + 1
	}
}

// calendarMonths 返回 earlier 到 later 之间完整的日历月数。
func calendarMonths(earlier, later time.Time) int {
	earlier = earlier.In(later.Location())
	months := (later.Year()-earlier.Year())*12 + int(later.Month()) - int(earlier.Month())
	if months > 0 && monthPosition(later) < monthPosition(earlier) {
		months--
	}
	return months
}

// monthPosition 是时间点在所属月份内的偏移，用于判断最后一个月是否已满。
func monthPosition(t time.Time) time.Duration {
	y, m, _ := t.Date()
	return t.Sub(time.Date(y, m, 1, 0, 0, 0, 0, t.Location()))
}

// Ago 以 "about 2 hours ago" 的形式描述 t 距 now 的时间；t 晚于 now 时用 "in …"。
func (l Language) Ago(t, now time.Time) string {
	if t.IsZero() {
		return l.T(KeyUnknownTime)
	}
	unit, n := distance(t, now)
	future := t.After(now)
	if l.supported() == LanguageChinese {
		text := zhDistance(unit, n)
		if future {
			return text + "后"
		}
		return text + "前"
	}
	text := enDistance(unit, n)
	if future {
		return "in " + text
	}
	return text + " ago"
}

func enDistance(unit distanceUnit, n int) string {
	switch unit {
	case unitLessThanMinute:
		return "less than a minute"
	case unitMinutes:
		return plural(n, "minute")
	case unitAboutHours:
		return "about " + plural(n, "hour")
	case unitDays:
		return plural(n, "day")
	case unitAboutMonths:
		return "about " + plural(n, "month")
	case unitMonths:
		return plural(n, "month")
	case unitAboutYears:
		return "about " + plural(n, "year")
	case unitOverYears:
		return "over " + plural(n, "year")
	default:
		return "almost " + plural(n, "year")
	}
}

func zhDistance(unit distanceUnit, n int) string {
	switch unit {
	case unitLessThanMinute:
		return "不到 1 分钟"
	case unitMinutes:
		return fmt.Sprintf("%d 分钟", n)
	case unitAboutHours:
		return fmt.Sprintf("大约 %d 小时", n)
	case unitDays:
		return fmt.Sprintf("%d 天", n)
	case unitAboutMonths:
		return fmt.Sprintf("大约 %d 个月", n)
	case unitMonths:
		return fmt.Sprintf("%d 个月", n)
	case unitAboutYears:
		return fmt.Sprintf("大约 %d 年", n)
	case unitOverYears:
		return fmt.Sprintf("超过 %d 年", n)
	default:
		return fmt.Sprintf("将近 %d 年", n)
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
