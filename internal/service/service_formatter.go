// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/MKhiriev/store-last-login/internal/config"
	"github.com/MKhiriev/store-last-login/internal/datefmt"
	"github.com/MKhiriev/store-last-login/internal/hooks"
	"github.com/MKhiriev/store-last-login/internal/i18n"
	"github.com/MKhiriev/store-last-login/models"
)

// Patterns used when the host configures none.
const (
	DefaultDateFormat = "F j, Y"
	DefaultTimeFormat = "g:i a"
)

// stampFormatter is the default [StampFormatter].
type stampFormatter struct {
	// display holds the host's date and time patterns.
	display config.Display

	// location is the zone dates and times are rendered in.
	location *time.Location

	translator i18n.Translator
	hooks      *hooks.Registry
	clock      Clock
}

func NewStampFormatter(display config.Display, location *time.Location, translator i18n.Translator, registry *hooks.Registry, clock Clock) StampFormatter {
	if location == nil {
		location = time.UTC
	}
	return &stampFormatter{
		display:    display,
		location:   location,
		translator: translator,
		hooks:      registry,
		clock:      clock,
	}
}

// FormatStamp renders instant according to kind. An empty or unknown kind
// yields the raw decimal instant. The sentinel is formatted like any other
// instant; callers decide whether to show it.
func (f *stampFormatter) FormatStamp(ctx context.Context, instant models.Instant, kind models.FormatKind, userID int64) string {
	args := hooks.Args{UserID: userID, Instant: instant}

	switch kind {
	case models.FormatHuman:
		return f.relative(instant.Time(), f.clock.Now())
	case models.FormatDate:
		pattern := f.hooks.DateFormat.Apply(ctx, cmp.Or(f.display.DateFormat, DefaultDateFormat), args)
		return datefmt.Format(instant.Time().In(f.location), pattern)
	case models.FormatTime:
		pattern := f.hooks.TimeFormat.Apply(ctx, cmp.Or(f.display.TimeFormat, DefaultTimeFormat), args)
		return datefmt.Format(instant.Time().In(f.location), pattern)
	default:
		return instant.String()
	}
}

// relativeUnits maps the unit names of relativeMagnitudes to catalog keys.
var relativeUnits = map[string]string{
	"second": i18n.Seconds,
	"minute": i18n.Minutes,
	"hour":   i18n.Hours,
	"day":    i18n.Days,
	"week":   i18n.Weeks,
	"month":  i18n.Months,
	"year":   i18n.Years,
}

// relativeMagnitudes follows the go-humanize default buckets. Each format
// renders "<unit> <count>" so the phrase itself comes from the catalog.
var relativeMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Second, Format: i18n.Now, DivBy: time.Second},
	{D: 2 * time.Second, Format: "second 1", DivBy: 1},
	{D: time.Minute, Format: "second %d", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "minute 1", DivBy: 1},
	{D: time.Hour, Format: "minute %d", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "hour 1", DivBy: 1},
	{D: humanize.Day, Format: "hour %d", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "day 1", DivBy: 1},
	{D: humanize.Week, Format: "day %d", DivBy: humanize.Day},
	{D: 2 * humanize.Week, Format: "week 1", DivBy: 1},
	{D: humanize.Month, Format: "week %d", DivBy: humanize.Week},
	{D: 2 * humanize.Month, Format: "month 1", DivBy: 1},
	{D: humanize.Year, Format: "month %d", DivBy: humanize.Month},
	{D: 18 * humanize.Month, Format: "year 1", DivBy: 1},
	{D: 2 * humanize.Year, Format: "year 2", DivBy: 1},
	{D: math.MaxInt64, Format: "year %d", DivBy: humanize.Year},
}

// relative renders the distance between then and now as a localized phrase
// such as "3 hours ago" or "vor 3 Stunden".
func (f *stampFormatter) relative(then, now time.Time) string {
	bucket := humanize.CustomRelTime(then, now, "", "", relativeMagnitudes)

	unit, n, ok := strings.Cut(bucket, " ")
	if !ok {
		return f.translator.T(i18n.Now)
	}
	amount, err := strconv.Atoi(n)
	if err != nil {
		return f.translator.T(i18n.Now)
	}

	phrase := f.translator.Sprintf(relativeUnits[unit], amount)
	if then.After(now) {
		return f.translator.Sprintf(i18n.FromNow, phrase)
	}
	return f.translator.Sprintf(i18n.Ago, phrase)
}
