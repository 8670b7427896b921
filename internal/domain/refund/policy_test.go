//go:build unit

package refund_test

import (
	"testing"
	"time"

	"salon-booking/internal/domain/refund"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPolicyTiers(t *testing.T) {
	appointment := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	policy := refund.DefaultPolicy()

	cases := []struct {
		name        string
		before      time.Duration
		paid        int64
		wantRefund  int64
		wantPenalty int64
		wantPercent int
	}{
		{name: "25 hours before", before: 25 * time.Hour, paid: 1500, wantRefund: 1500, wantPenalty: 0, wantPercent: 100},
		{name: "exactly 24 hours is the 50% tier", before: 24 * time.Hour, paid: 1500, wantRefund: 750, wantPenalty: 750, wantPercent: 50},
		{name: "just over 24 hours", before: 24*time.Hour + time.Second, paid: 1500, wantRefund: 1500, wantPenalty: 0, wantPercent: 100},
		{name: "exactly 12 hours is the 30% tier", before: 12 * time.Hour, paid: 1500, wantRefund: 450, wantPenalty: 1050, wantPercent: 30},
		{name: "8 hours", before: 8 * time.Hour, paid: 2000, wantRefund: 600, wantPenalty: 1400, wantPercent: 30},
		{name: "exactly 6 hours is the 10% tier", before: 6 * time.Hour, paid: 800, wantRefund: 80, wantPenalty: 720, wantPercent: 10},
		{name: "exactly 3 hours refunds nothing", before: 3 * time.Hour, paid: 1500, wantRefund: 0, wantPenalty: 1500, wantPercent: 0},
		{name: "2 hours before", before: 2 * time.Hour, paid: 1500, wantRefund: 0, wantPenalty: 1500, wantPercent: 0},
		{name: "already started", before: -5 * time.Hour, paid: 1500, wantRefund: 0, wantPenalty: 1500, wantPercent: 0},
		{name: "half unit rounds up", before: 4 * time.Hour, paid: 1005, wantRefund: 101, wantPenalty: 904, wantPercent: 10},
		{name: "free appointment", before: 48 * time.Hour, paid: 0, wantRefund: 0, wantPenalty: 0, wantPercent: 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := policy.Quote(appointment, tc.paid, appointment.Add(-tc.before))
			assert.Equal(t, tc.wantRefund, q.RefundMinorUnits)
			assert.Equal(t, tc.wantPenalty, q.PenaltyMinorUnits)
			assert.Equal(t, tc.wantPercent, q.Percent)
		})
	}
}

func TestQuoteHoursLeft(t *testing.T) {
	appointment := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	q := refund.DefaultPolicy().Quote(appointment, 1500, appointment.Add(-(5*time.Hour + 14*time.Minute)))
	assert.InDelta(t, 5.2, q.HoursLeft, 1e-9)

	q = refund.DefaultPolicy().Quote(appointment, 1500, appointment.Add(90*time.Minute))
	assert.InDelta(t, -1.5, q.HoursLeft, 1e-9)
}

func TestRefundMonotonicAndConserving(t *testing.T) {
	appointment := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	policy := refund.DefaultPolicy()

	for _, paid := range []int64{0, 1, 799, 800, 1005, 1500, 2000, 123457} {
		prev := int64(-1)
		for minutes := -600; minutes <= 3000; minutes += 7 {
			now := appointment.Add(-time.Duration(minutes) * time.Minute)
			q := policy.Quote(appointment, paid, now)

			require.Equal(t, paid, q.RefundMinorUnits+q.PenaltyMinorUnits, "paid=%d minutes=%d", paid, minutes)
			require.GreaterOrEqual(t, q.RefundMinorUnits, prev, "paid=%d minutes=%d", paid, minutes)
			require.GreaterOrEqual(t, q.RefundMinorUnits, int64(0))
			prev = q.RefundMinorUnits
		}
	}
}

func TestNewPolicy(t *testing.T) {
	_, err := refund.NewPolicy(refund.Tier{AboveHours: 12, Fraction: 0.5}, refund.Tier{AboveHours: 24, Fraction: 1})
	assert.ErrorIs(t, err, refund.ErrInvalidTiers)

	_, err = refund.NewPolicy(refund.Tier{AboveHours: 24, Fraction: 0.5}, refund.Tier{AboveHours: 12, Fraction: 0.8})
	assert.ErrorIs(t, err, refund.ErrInvalidTiers)

	_, err = refund.NewPolicy(refund.Tier{AboveHours: 24, Fraction: 1.5})
	assert.ErrorIs(t, err, refund.ErrInvalidTiers)

	p, err := refund.NewPolicy(refund.Tier{AboveHours: 48, Fraction: 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Fraction(47))
	assert.Equal(t, 1.0, p.Fraction(49))
	assert.Len(t, p.Tiers(), 1)
}
