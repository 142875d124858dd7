// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	cellPolicy     *bluemonday.Policy
	cellPolicyOnce sync.Once
)

// CellPolicy returns the allow-list applied to listing cells after the
// display hooks ran. It keeps inline emphasis and line breaks.
func CellPolicy() *bluemonday.Policy {
	cellPolicyOnce.Do(func() {
		p := bluemonday.NewPolicy()
		p.AllowElements("em", "strong", "b", "i", "br", "span", "small", "time", "abbr")
		p.AllowAttrs("datetime").OnElements("time")
		p.AllowAttrs("title").OnElements("abbr", "span", "time")
		p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("span")
		cellPolicy = p
	})
	return cellPolicy
}
