package refund

import (
	"errors"
	"math"
	"time"
)

var ErrInvalidTiers = errors.New("refund tiers must have strictly decreasing thresholds and non-increasing fractions in [0,1]")

const basisPoints = 10000

// Tier grants Fraction of the paid amount when strictly more than AboveHours remain
// before the appointment.
type Tier struct {
	AboveHours float64
	Fraction   float64
}

// Policy evaluates tiers top-down; the first match wins, and no match refunds nothing.
type Policy struct {
	tiers []Tier
}

func NewPolicy(tiers ...Tier) (Policy, error) {
	for i, t := range tiers {
		if t.Fraction < 0 || t.Fraction > 1 || math.IsNaN(t.Fraction) || math.IsNaN(t.AboveHours) {
			return Policy{}, ErrInvalidTiers
		}
		if i > 0 {
			prev := tiers[i-1]
			if t.AboveHours >= prev.AboveHours || t.Fraction > prev.Fraction {
				return Policy{}, ErrInvalidTiers
			}
		}
	}
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return Policy{tiers: out}, nil
}

// DefaultPolicy: >24h 100%, (12,24] 50%, (6,12] 30%, (3,6] 10%, otherwise nothing.
func DefaultPolicy() Policy {
	return Policy{tiers: []Tier{
		{AboveHours: 24, Fraction: 1.0},
		{AboveHours: 12, Fraction: 0.5},
		{AboveHours: 6, Fraction: 0.3},
		{AboveHours: 3, Fraction: 0.1},
	}}
}

func (p Policy) Tiers() []Tier {
	out := make([]Tier, len(p.tiers))
	copy(out, p.tiers)
	return out
}

func (p Policy) Fraction(hoursLeft float64) float64 {
	for _, t := range p.tiers {
		if hoursLeft > t.AboveHours {
			return t.Fraction
		}
	}
	return 0
}

type Quote struct {
	RefundMinorUnits  int64
	PenaltyMinorUnits int64
	Percent           int
	// HoursLeft is rounded to one decimal and negative for past appointments.
	HoursLeft float64
}

// Quote never fails: any instant pair and any non-negative amount map to a tier.
func (p Policy) Quote(appointmentAt time.Time, paidMinorUnits int64, now time.Time) Quote {
	hoursLeft := appointmentAt.Sub(now).Hours()
	bp := int64(math.Round(p.Fraction(hoursLeft) * basisPoints))

	refund := roundHalfUp(paidMinorUnits*bp, basisPoints)
	return Quote{
		RefundMinorUnits:  refund,
		PenaltyMinorUnits: paidMinorUnits - refund,
		Percent:           int(roundHalfUp(bp*100, basisPoints)),
		HoursLeft:         math.Round(hoursLeft*10) / 10,
	}
}

// roundHalfUp divides num by den rounding halves away from zero; den > 0.
func roundHalfUp(num, den int64) int64 {
	if num < 0 {
		return -((-num + den/2) / den)
	}
	return (num + den/2) / den
}
