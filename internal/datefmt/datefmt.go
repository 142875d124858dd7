// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package datefmt renders times with PHP date() style patterns such as
// "F j, Y" or "g:i a", the pattern language host applications store their
// display settings in.
//
// Every letter listed in [Format] is replaced; any other character is copied
// verbatim and a backslash copies the following character verbatim.
package datefmt

import (
	"strconv"
	"strings"
	"time"
)

// Format renders t using pattern.
//
// Supported letters:
//
//	day:      d D j l N S w z
//	week:     W
//	month:    F m M n t
//	year:     L o Y y
//	time:     a A g G h H i s u v
//	timezone: e I O P T Z
//	full:     c r U
func Format(t time.Time, pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern) * 3)

	escaped := false
	for _, ch := range pattern {
		if escaped {
			b.WriteRune(ch)
			escaped = false
			continue
		}
		if ch == '\\' {
			escaped = true
			continue
		}
		writeLetter(&b, t, ch)
	}

	return b.String()
}

func writeLetter(b *strings.Builder, t time.Time, ch rune) {
	switch ch {
	// day
	case 'd':
		b.WriteString(pad2(t.Day()))
	case 'D':
		b.WriteString(t.Weekday().String()[:3])
	case 'j':
		b.WriteString(strconv.Itoa(t.Day()))
	case 'l':
		b.WriteString(t.Weekday().String())
	case 'N':
		b.WriteString(strconv.Itoa(isoWeekday(t)))
	case 'S':
		b.WriteString(ordinalSuffix(t.Day()))
	case 'w':
		b.WriteString(strconv.Itoa(int(t.Weekday())))
	case 'z':
		b.WriteString(strconv.Itoa(t.YearDay() - 1))

	// week
	case 'W':
		_, week := t.ISOWeek()
		b.WriteString(pad2(week))

	// month
	case 'F':
		b.WriteString(t.Month().String())
	case 'm':
		b.WriteString(pad2(int(t.Month())))
	case 'M':
		b.WriteString(t.Month().String()[:3])
	case 'n':
		b.WriteString(strconv.Itoa(int(t.Month())))
	case 't':
		b.WriteString(strconv.Itoa(daysIn(t)))

	// year
	case 'L':
		if isLeap(t.Year()) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	case 'o':
		year, _ := t.ISOWeek()
		b.WriteString(strconv.Itoa(year))
	case 'Y':
		b.WriteString(strconv.Itoa(t.Year()))
	case 'y':
		b.WriteString(pad2(t.Year() % 100))

	// time
	case 'a':
		b.WriteString(meridiem(t))
	case 'A':
		b.WriteString(strings.ToUpper(meridiem(t)))
	case 'g':
		b.WriteString(strconv.Itoa(hour12(t)))
	case 'G':
		b.WriteString(strconv.Itoa(t.Hour()))
	case 'h':
		b.WriteString(pad2(hour12(t)))
	case 'H':
		b.WriteString(pad2(t.Hour()))
	case 'i':
		b.WriteString(pad2(t.Minute()))
	case 's':
		b.WriteString(pad2(t.Second()))
	case 'u':
		b.WriteString(padN(t.Nanosecond()/1000, 6))
	case 'v':
		b.WriteString(padN(t.Nanosecond()/1000000, 3))

	// timezone
	case 'e':
		b.WriteString(t.Location().String())
	case 'I':
		if t.IsDST() {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	case 'O':
		b.WriteString(t.Format("-0700"))
	case 'P':
		b.WriteString(t.Format("-07:00"))
	case 'T':
		name, _ := t.Zone()
		b.WriteString(name)
	case 'Z':
		_, offset := t.Zone()
		b.WriteString(strconv.Itoa(offset))

	// full date/time
	case 'c':
		b.WriteString(t.Format("2006-01-02T15:04:05-07:00"))
	case 'r':
		b.WriteString(t.Format("Mon, 02 Jan 2006 15:04:05 -0700"))
	case 'U':
		b.WriteString(strconv.FormatInt(t.Unix(), 10))

	default:
		b.WriteRune(ch)
	}
}

func pad2(n int) string {
	return padN(n, 2)
}

func padN(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		return 12
	}
	return h
}

func meridiem(t time.Time) string {
	if t.Hour() < 12 {
		return "am"
	}
	return "pm"
}

func isoWeekday(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}
	return int(t.Weekday())
}

func ordinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
