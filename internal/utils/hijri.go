package utils

import (
	"fmt"
	"time"
)

// HijriDate is a date in the tabular (civil) Islamic calendar.
type HijriDate struct {
	Year      int
	Month     int // 1..12
	Day       int
	MonthName string
	DayName   string
}

var hijriMonths = [12]string{
	"محرم",
	"صفر",
	"ربيع الأول",
	"ربيع الثاني",
	"جمادى الأولى",
	"جمادى الثانية",
	"رجب",
	"شعبان",
	"رمضان",
	"شوال",
	"ذو القعدة",
	"ذو الحجة",
}

var arabicDayNames = [7]string{
	"الأحد",
	"الاثنين",
	"الثلاثاء",
	"الأربعاء",
	"الخميس",
	"الجمعة",
	"السبت",
}

// GregorianToHijri converts a Gregorian date using the tabular Islamic
// calendar. Accurate to within a day of the observational calendar, which is
// sufficient for display.
func GregorianToHijri(date time.Time) HijriDate {
	gy, gm, gd := date.Year(), int(date.Month()), date.Day()

	// Gregorian date to Julian day number (Fliegel & Van Flandern; Go's
	// truncating integer division is the arithmetic the formula expects).
	a := (gm - 14) / 12
	jd := (1461*(gy+4800+a))/4 +
		(367*(gm-2-12*a))/12 -
		(3*((gy+4900+a)/100))/4 +
		gd - 32075

	// Julian day number to tabular Hijri.
	l := jd - 1948440 + 10632
	n := (l - 1) / 10631
	l = l - 10631*n + 354
	j := ((10985-l)/5316)*((50*l)/17719) + (l/5670)*((43*l)/15238)
	l = l - ((30-j)/15)*((17719*j)/50) - (j/16)*((15238*j)/43) + 29
	m := (24 * l) / 709
	d := l - (709*m)/24
	y := 30*n + j - 30

	return HijriDate{
		Year:      y,
		Month:     m,
		Day:       d,
		MonthName: hijriMonths[m-1],
		DayName:   arabicDayNames[int(date.Weekday())],
	}
}

// FormatHijriDate renders a Hijri date in its conventional Arabic form.
func FormatHijriDate(h HijriDate) string {
	return fmt.Sprintf("%s، %d %s %d هـ", h.DayName, h.Day, h.MonthName, h.Year)
}

// CurrentHijriDate returns today's date in the Hijri calendar.
func CurrentHijriDate() HijriDate {
	return GregorianToHijri(time.Now())
}
