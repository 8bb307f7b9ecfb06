// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.

package strength

import (
	"math"

	"github.com/toeirei/passforge/core/model"
)

// GuessesPerSecond is the assumed offline attack rate. On average half the
// space is searched, so the divisor is twice this rate.
const GuessesPerSecond = 1e6

// Bucket upper bounds in seconds.
const (
	minute  = 60
	hour    = 3600
	day     = 86400
	year    = 31536000
	century = 31536000000
)

// EstimateCrackTime buckets charsetSize^length / (2 * GuessesPerSecond).
// The computation runs in log space so 128-character passwords do not
// overflow.
func EstimateCrackTime(length, charsetSize int) model.CrackTime {
	if length <= 0 || charsetSize <= 0 {
		return model.CrackInstant
	}
	logSeconds := float64(length)*math.Log10(float64(charsetSize)) - math.Log10(2*GuessesPerSecond)
	switch {
	case logSeconds < 0:
		return model.CrackInstant
	case logSeconds < math.Log10(minute):
		return model.CrackSeconds
	case logSeconds < math.Log10(hour):
		return model.CrackMinutes
	case logSeconds < math.Log10(day):
		return model.CrackHours
	case logSeconds < math.Log10(year):
		return model.CrackDays
	case logSeconds < math.Log10(century):
		return model.CrackYears
	}
	return model.CrackCenturies
}
