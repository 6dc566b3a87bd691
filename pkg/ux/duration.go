// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package ux

import (
	"fmt"
	"strings"
	"time"
)

var durationUnits = []struct {
	unit time.Duration
	name string
}{
	{24 * 365 * time.Hour, "years"},
	{24 * time.Hour, "days"},
	{time.Hour, "hours"},
	{time.Minute, "minutes"},
	{time.Second, "seconds"},
}

// FormatDuration returns a user friendly string for a duration, truncated to the second
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return "0 seconds"
	}
	parts := make([]string, 0, len(durationUnits))
	for _, u := range durationUnits {
		if n := d / u.unit; n > 0 {
			d -= n * u.unit
			parts = append(parts, fmt.Sprintf("%d %s", n, u.name))
		}
	}
	return strings.Join(parts, " ")
}
