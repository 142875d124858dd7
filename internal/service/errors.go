// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrReadingTimestamp  = errors.New("error reading last login timestamp")
	ErrWritingTimestamp  = errors.New("error writing last login timestamp")
	ErrBackfillingStamps = errors.New("error backfilling last login timestamps")
	ErrWritingProfile    = errors.New("error writing profile section")
)
