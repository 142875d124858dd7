// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"math"
	"strconv"
	"time"
)

// LastLoginMetaKey is the user attribute under which the last login instant
// is persisted.
const LastLoginMetaKey = "_slld_last_login"

// Instant is a point in time expressed as Unix epoch seconds.
type Instant int64

// NeverLoggedIn is the reserved instant meaning "no login ever recorded".
//
// It is stored as a regular value so that it sorts after every real login
// time; it must never be rendered as a date.
const NeverLoggedIn Instant = 9999999999

// InstantOf converts t to an [Instant].
func InstantOf(t time.Time) Instant {
	return Instant(t.Unix())
}

// IsNever reports whether i is the [NeverLoggedIn] sentinel.
func (i Instant) IsNever() bool {
	return i == NeverLoggedIn
}

// Time converts i to a time.Time in UTC.
func (i Instant) Time() time.Time {
	return time.Unix(int64(i), 0).UTC()
}

// String returns the decimal epoch-seconds form used for persistence.
func (i Instant) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// ErrInstantOutOfRange is returned by [ParseInstant] for numbers that are not
// finite or do not fit an int64.
var ErrInstantOutOfRange = errors.New("instant out of range")

// ParseInstant coerces a stored attribute value to an [Instant].
// Float values such as "1700000000.25" are truncated toward zero.
func ParseInstant(s string) (Instant, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Instant(n), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	// -2^63 and 2^63 are exact in float64
	if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, ErrInstantOutOfRange
	}

	return Instant(int64(f)), nil
}

// FormatKind selects the textual representation produced for an [Instant].
type FormatKind string

const (
	// FormatRaw returns the instant unmodified.
	FormatRaw FormatKind = ""
	// FormatHuman renders a relative "3 hours ago" string.
	FormatHuman FormatKind = "human"
	// FormatDate renders the date part with the configured date pattern.
	FormatDate FormatKind = "date"
	// FormatTime renders the time of day with the configured time pattern.
	FormatTime FormatKind = "time"
)
