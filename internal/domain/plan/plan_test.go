package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Ordering(t *testing.T) {
	tests := []struct {
		name      string
		current   Tier
		requested Tier
		want      Change
	}{
		{name: "free to basic is upgrade", current: TierFree, requested: TierBasic, want: ChangeUpgrade},
		{name: "basic to premium is upgrade", current: TierBasic, requested: TierPremium, want: ChangeUpgrade},
		{name: "premium to basic is downgrade", current: TierPremium, requested: TierBasic, want: ChangeDowngrade},
		{name: "standard to free is downgrade", current: TierStandard, requested: TierFree, want: ChangeDowngrade},
		{name: "same tier is lateral", current: TierStandard, requested: TierStandard, want: ChangeLateral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change, err := Classify(tt.current, tt.requested)
			require.NoError(t, err)
			assert.Equal(t, tt.want, change)
		})
	}
}

func TestClassify_UnknownTier(t *testing.T) {
	_, err := Classify(TierFree, Tier("platinum"))
	require.ErrorIs(t, err, ErrUnknownTier)

	_, err = Classify(Tier(""), TierBasic)
	require.ErrorIs(t, err, ErrUnknownTier)
}

func TestDiscountedPrice(t *testing.T) {
	// Standard plan carries 15%: a 400 peso product displays as 340.
	assert.Equal(t, int64(340), DiscountedPrice(400, TierStandard))
	assert.Equal(t, int64(400), DiscountedPrice(400, TierFree))
	assert.Equal(t, int64(380), DiscountedPrice(400, TierBasic))
	assert.Equal(t, int64(320), DiscountedPrice(400, TierPremium))

	// Rounding is to the nearest peso, not truncation: 5% off 99 is 94.05.
	assert.Equal(t, int64(94), DiscountedPrice(99, TierBasic))
	// 15% off 399 is 339.15 -> 339.
	assert.Equal(t, int64(339), DiscountedPrice(399, TierStandard))
}

func TestDiscountedPrice_UnknownTierGetsNoDiscount(t *testing.T) {
	assert.Equal(t, int64(400), DiscountedPrice(400, Tier("mystery")))
}

func TestExpiryDate_MonthlyClampsToEndOfMonth(t *testing.T) {
	// Subscribing on Jan 31 must expire on the last day of February,
	// not an invalid date rolled into March.
	start := time.Date(2025, time.January, 31, 10, 30, 0, 0, time.UTC)

	expiry, err := ExpiryDate(start, BillingMonthly)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.February, 28, 10, 30, 0, 0, time.UTC), expiry)
}

func TestExpiryDate_MonthlyLeapYear(t *testing.T) {
	start := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)

	expiry, err := ExpiryDate(start, BillingMonthly)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), expiry)
}

func TestExpiryDate_MonthlyPlainMonth(t *testing.T) {
	start := time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC)

	expiry, err := ExpiryDate(start, BillingMonthly)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.April, 15, 9, 0, 0, 0, time.UTC), expiry)
}

func TestExpiryDate_Yearly(t *testing.T) {
	// Feb 29 on a leap year + 1 year clamps to Feb 28.
	start := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)

	expiry, err := ExpiryDate(start, BillingYearly)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), expiry)
}

func TestExpiryDate_UnknownPeriod(t *testing.T) {
	_, err := ExpiryDate(time.Now(), BillingPeriod("weekly"))
	assert.Error(t, err)
}

func TestNextMonthStart(t *testing.T) {
	assert.Equal(t,
		time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
		NextMonthStart(time.Date(2025, time.January, 17, 15, 4, 5, 0, time.UTC)),
	)
	// December rolls into January of the next year.
	assert.Equal(t,
		time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		NextMonthStart(time.Date(2025, time.December, 31, 23, 59, 0, 0, time.UTC)),
	)
}
