package model

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/m-mizutani/goerr/v2"
)

// LegacySafeDays is the day count older dashboards display for a safe outlook
const LegacySafeDays = 9999

// Outlook is the result of an overflow estimation: either Safe or a number of
// days until the ceiling is reached. The zero value is Safe.
type Outlook struct {
	overflows bool
	days      int
}

// Safe returns an outlook with no overflow in sight
func Safe() Outlook {
	return Outlook{}
}

// Days returns an outlook that reaches the ceiling in n days
func Days(n int) Outlook {
	return Outlook{overflows: true, days: n}
}

// IsSafe returns true if no overflow is forecast
func (o Outlook) IsSafe() bool {
	return !o.overflows
}

// Days returns the day count and true, or 0 and false for a safe outlook
func (o Outlook) Days() (int, bool) {
	if !o.overflows {
		return 0, false
	}
	return o.days, true
}

// SentinelDays returns the day count, using LegacySafeDays for a safe outlook
func (o Outlook) SentinelDays() int {
	if !o.overflows {
		return LegacySafeDays
	}
	return o.days
}

// String returns "safe" or the number of days
func (o Outlook) String() string {
	if !o.overflows {
		return "safe"
	}
	return fmt.Sprintf("%d days", o.days)
}

type outlookJSON struct {
	Safe              bool `json:"safe"`
	DaysUntilOverflow *int `json:"days_until_overflow"`
}

// MarshalJSON encodes the outlook as {"safe":bool,"days_until_overflow":int|null}
func (o Outlook) MarshalJSON() ([]byte, error) {
	v := outlookJSON{Safe: !o.overflows}
	if o.overflows {
		days := o.days
		v.DaysUntilOverflow = &days
	}
	return json.Marshal(v)
}

// UnmarshalJSON decodes the representation produced by MarshalJSON
func (o *Outlook) UnmarshalJSON(data []byte) error {
	var v outlookJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return goerr.Wrap(err, "failed to unmarshal outlook")
	}
	if v.Safe || v.DaysUntilOverflow == nil {
		*o = Safe()
		return nil
	}
	*o = Days(*v.DaysUntilOverflow)
	return nil
}

// OverflowForecast is the outlook of a table together with the values it was derived from
type OverflowForecast struct {
	Outlook      Outlook `json:"outlook"`
	CurrentValue int64   `json:"current_value"`
	Ceiling      int64   `json:"ceiling"`
}

// CheckDegenerate reports ErrDegenerateInput when the prediction crosses the
// ceiling without growing past the current value. The division in
// EstimateDaysUntilOverflow would have a zero or negative denominator.
func CheckDegenerate(current, predicted int64, ceiling int64) error {
	if predicted > ceiling && predicted <= current {
		return goerr.Wrap(ErrDegenerateInput, "prediction does not grow past current value",
			goerr.V("current", current),
			goerr.V("predicted", predicted),
			goerr.V("ceiling", ceiling),
		)
	}
	return nil
}

// EstimateDaysUntilOverflow returns the number of days until the max id
// reaches ceiling, or Safe if the prediction stays at or below it. Degenerate
// inputs and non-positive growth are Safe. A table already past the ceiling
// has 0 days left.
func EstimateDaysUntilOverflow(current, predicted int64, rate GrowthRate, ceiling int64) Outlook {
	if predicted <= ceiling {
		return Safe()
	}
	if !rate.IsGrowing() || CheckDegenerate(current, predicted, ceiling) != nil {
		return Safe()
	}

	days := math.Floor(HorizonDays * float64(ceiling-current) / float64(predicted-current))
	if days < 0 {
		return Days(0)
	}
	return Days(int(days))
}

// OverflowPercentage returns how much of the identifier space is used, rounded
// half up and capped at 100.
func OverflowPercentage(current, ceiling int64) int {
	if ceiling <= 0 {
		return 100
	}
	pct := math.Floor(float64(current)/float64(ceiling)*100 + 0.5)
	return int(math.Min(pct, 100))
}

// GaugeStatus maps an overflow percentage to the progress gauge treatment
func GaugeStatus(percentage int) string {
	switch {
	case percentage > 90:
		return "exception"
	case percentage > 70:
		return "normal"
	default:
		return "success"
	}
}
