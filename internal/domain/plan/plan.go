// Package plan holds the pure care-plan rules: tier ordering, upgrade versus
// downgrade classification, downgrade deferral, billing expiry computation
// and shop discounts. Nothing here touches storage; the use case layer
// applies the results through repositories.
package plan

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

// Tier is a named care-plan level.
type Tier string

const (
	TierFree     Tier = "free"
	TierBasic    Tier = "basic"
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
)

// tierRanks defines the strict ordering free < basic < standard < premium.
var tierRanks = map[Tier]int{
	TierFree:     0,
	TierBasic:    1,
	TierStandard: 2,
	TierPremium:  3,
}

// discountPercents maps each tier to its shop discount.
var discountPercents = map[Tier]int{
	TierFree:     0,
	TierBasic:    5,
	TierStandard: 15,
	TierPremium:  20,
}

// ErrUnknownTier is returned when a tier name is not part of the catalog.
var ErrUnknownTier = errors.New("unknown care plan tier")

// Valid reports whether t is one of the four known tiers.
func (t Tier) Valid() bool {
	_, ok := tierRanks[t]

	return ok
}

// Rank returns the tier's position in the ordering, or -1 for unknown tiers.
func (t Tier) Rank() int {
	rank, ok := tierRanks[t]
	if !ok {
		return -1
	}

	return rank
}

// Change classifies a requested tier change.
type Change int

const (
	ChangeLateral Change = iota
	ChangeUpgrade
	ChangeDowngrade
)

// Classify compares the current and requested tiers.
func Classify(current, requested Tier) (Change, error) {
	if !current.Valid() {
		return ChangeLateral, errors.Wrapf(ErrUnknownTier, "current tier %q", current)
	}
	if !requested.Valid() {
		return ChangeLateral, errors.Wrapf(ErrUnknownTier, "requested tier %q", requested)
	}

	switch {
	case requested.Rank() > current.Rank():
		return ChangeUpgrade, nil
	case requested.Rank() < current.Rank():
		return ChangeDowngrade, nil
	default:
		return ChangeLateral, nil
	}
}

// DiscountPercent returns the shop discount for a tier. Unknown tiers get no
// discount rather than an error so a stale plan name never breaks the shop.
func DiscountPercent(t Tier) int {
	return discountPercents[t]
}

// DiscountedPrice applies the tier discount to a whole-peso price, rounding
// to the nearest peso.
func DiscountedPrice(price int64, t Tier) int64 {
	percent := DiscountPercent(t)
	if percent == 0 {
		return price
	}

	discounted := float64(price) * float64(100-percent) / 100

	return int64(math.Round(discounted))
}

// BillingPeriod is how often a plan renews.
type BillingPeriod string

const (
	BillingMonthly BillingPeriod = "monthly"
	BillingYearly  BillingPeriod = "yearly"
)

// ExpiryDate computes when a plan period started at the given time ends:
// one month for monthly billing, one year for yearly. Month arithmetic is
// clamped to the end of the target month, so subscribing on Jan 31 with
// monthly billing expires on the last day of February.
func ExpiryDate(from time.Time, period BillingPeriod) (time.Time, error) {
	switch period {
	case BillingMonthly:
		return addMonthsClamped(from, 1), nil
	case BillingYearly:
		return addMonthsClamped(from, 12), nil
	default:
		return time.Time{}, errors.Errorf("unknown billing period: %s", period)
	}
}

// NextMonthStart returns midnight on the first day of the month after t,
// in t's location. Deferred downgrades take effect at this instant.
func NextMonthStart(t time.Time) time.Time {
	year, month, _ := t.Date()

	return time.Date(year, month+1, 1, 0, 0, 0, 0, t.Location())
}

// addMonthsClamped adds months to t, rolling back to the last day of the
// intended month when the start day does not exist there (e.g. Jan 31 + 1
// month is clamped to Feb 28/29 instead of spilling into March).
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()

	firstOfTarget := time.Date(year, month+time.Month(months), 1, hour, minute, sec, t.Nanosecond(), t.Location())
	lastDay := daysIn(firstOfTarget.Year(), firstOfTarget.Month(), t.Location())
	if day > lastDay {
		day = lastDay
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, hour, minute, sec, t.Nanosecond(), t.Location())
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
