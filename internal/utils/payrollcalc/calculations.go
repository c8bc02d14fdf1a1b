// Package payrollcalc holds the pure payroll and bonus arithmetic. Every
// function here is deterministic over its inputs: no clock reads, no
// randomness, no stored state. Services and tests share these so the
// per-category breakdowns reconcile exactly with per-sale events.
package payrollcalc

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/assureline/payroll_engine/internal/core/domain"
)

// BonusPolicy carries the configured rule constants. Defaults mirror the
// observed agency policy; all values are overridable through configuration.
type BonusPolicy struct {
	BrokerFeeRate       decimal.Decimal // fraction of (amount - deductible) paid as the baseline bonus
	BrokerFeeDeductible decimal.Decimal
	CrossSellBonus      decimal.Decimal
	LifeInsuranceBonus  decimal.Decimal
	ReviewBonus         decimal.Decimal
	HighValueThreshold  decimal.Decimal
	HighValueBonus      decimal.Decimal
}

// DefaultBonusPolicy returns the standard agency policy.
func DefaultBonusPolicy() BonusPolicy {
	return BonusPolicy{
		BrokerFeeRate:       decimal.NewFromFloat(0.10),
		BrokerFeeDeductible: decimal.NewFromInt(100),
		CrossSellBonus:      decimal.NewFromInt(50),
		LifeInsuranceBonus:  decimal.NewFromInt(10),
		ReviewBonus:         decimal.NewFromInt(10),
		HighValueThreshold:  decimal.NewFromInt(5000),
		HighValueBonus:      decimal.NewFromInt(100),
	}
}

// BrokerFeeBonus computes the baseline commission-style bonus on a sale:
// rate x (amount - deductible), floored at zero when the amount does not
// exceed the deductible.
func BrokerFeeBonus(amount decimal.Decimal, policy BonusPolicy) decimal.Decimal {
	base := amount.Sub(policy.BrokerFeeDeductible)
	if base.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return base.Mul(policy.BrokerFeeRate).Round(2)
}

// IsHighValue reports whether a sale amount meets the review threshold.
func IsHighValue(amount decimal.Decimal, policy BonusPolicy) bool {
	return amount.GreaterThanOrEqual(policy.HighValueThreshold)
}

// bonusEventNamespace seeds the deterministic event IDs. Recomputing a
// period from the same inputs must produce the identical event set, so IDs
// are content-derived (UUIDv5), never random.
var bonusEventNamespace = uuid.MustParse("9f2c1a58-7e41-4c30-bb3c-64c10a3f8d2e")

func eventID(employeeID string, category domain.BonusCategory, source string) string {
	return uuid.NewSHA1(bonusEventNamespace, []byte(employeeID+"|"+string(category)+"|"+source)).String()
}

// ComputeSaleBonuses applies every sale-triggered rule independently and
// additively: a single sale may trigger several categories. High-value
// events are emitted with Held=true; whether any event for the sale is paid
// out is decided later by the gatekeeper, not here.
func ComputeSaleBonuses(sale domain.PolicySale, policy BonusPolicy) []domain.BonusEvent {
	held := IsHighValue(sale.Amount, policy)

	events := make([]domain.BonusEvent, 0, 4)
	emit := func(category domain.BonusCategory, amount decimal.Decimal) {
		events = append(events, domain.BonusEvent{
			EventID:            eventID(sale.EmployeeID, category, sale.PolicyNumber),
			EmployeeID:         sale.EmployeeID,
			Category:           category,
			SourcePolicyNumber: sale.PolicyNumber,
			Amount:             amount,
			Held:               held,
		})
	}

	if bonus := BrokerFeeBonus(sale.Amount, policy); bonus.IsPositive() {
		emit(domain.BonusBrokerFee, bonus)
	}
	if sale.CrossSold {
		emit(domain.BonusCrossSell, policy.CrossSellBonus)
	}
	if sale.PolicyType == domain.PolicyLife {
		emit(domain.BonusLifeInsurance, policy.LifeInsuranceBonus)
	}
	if held {
		emit(domain.BonusHighValue, policy.HighValueBonus)
	}
	return events
}

// ComputeReviewBonuses emits one review-bonus event per submitted client
// review. Review bonuses are day-triggered, never sale-triggered, and are
// never held.
func ComputeReviewBonuses(reviews []domain.ClientReview, policy BonusPolicy) []domain.BonusEvent {
	events := make([]domain.BonusEvent, 0, len(reviews))
	for _, review := range reviews {
		date := review.ReviewDate
		events = append(events, domain.BonusEvent{
			EventID:    eventID(review.EmployeeID, domain.BonusReview, review.ReviewID),
			EmployeeID: review.EmployeeID,
			Category:   domain.BonusReview,
			SourceDate: &date,
			Amount:     policy.ReviewBonus,
		})
	}
	return events
}

// SplitHours divides total worked hours into regular and overtime portions
// against the employee's per-period threshold.
func SplitHours(totalHours, threshold decimal.Decimal) (regular, overtime decimal.Decimal) {
	if totalHours.LessThanOrEqual(threshold) {
		return totalHours, decimal.Zero
	}
	return threshold, totalHours.Sub(threshold)
}

// OvertimePay computes the pay for approved overtime hours at the given
// multiplier. Callers must only pass hours covered by an APPROVED request;
// unapproved overtime contributes zero pay by construction.
func OvertimePay(overtimeHours, hourlyRate, multiplier decimal.Decimal) decimal.Decimal {
	return overtimeHours.Mul(hourlyRate).Mul(multiplier).Round(2)
}

// SumByCategory rolls bonus events up into per-category subtotals with
// counts, in the stable order of domain.AllBonusCategories. Categories with
// no events are omitted.
func SumByCategory(events []domain.BonusEvent) []domain.BonusSubtotal {
	totals := make(map[domain.BonusCategory]*domain.BonusSubtotal, len(domain.AllBonusCategories))
	for _, ev := range events {
		st, ok := totals[ev.Category]
		if !ok {
			st = &domain.BonusSubtotal{Category: ev.Category, Amount: decimal.Zero}
			totals[ev.Category] = st
		}
		st.Amount = st.Amount.Add(ev.Amount)
		st.Count++
	}

	out := make([]domain.BonusSubtotal, 0, len(totals))
	for _, category := range domain.AllBonusCategories {
		if st, ok := totals[category]; ok {
			out = append(out, *st)
		}
	}
	return out
}

// SumAmounts returns the total of all event amounts.
func SumAmounts(events []domain.BonusEvent) decimal.Decimal {
	total := decimal.Zero
	for _, ev := range events {
		total = total.Add(ev.Amount)
	}
	return total
}

// PartitionHeld splits events into payable and held sets according to the
// set of policy numbers whose high-value review is still unresolved. Events
// not tied to any policy (review bonuses) are always payable.
func PartitionHeld(events []domain.BonusEvent, unresolvedPolicies map[string]bool) (payable, heldEvents []domain.BonusEvent) {
	for _, ev := range events {
		if ev.SourcePolicyNumber != "" && unresolvedPolicies[ev.SourcePolicyNumber] {
			ev.Held = true
			heldEvents = append(heldEvents, ev)
			continue
		}
		ev.Held = false
		payable = append(payable, ev)
	}
	return payable, heldEvents
}

// PeriodBounds is a convenience wrapper used by services when only a
// reference date is known.
func PeriodBounds(ref, epoch time.Time) (start, end time.Time) {
	p := domain.PeriodContaining(ref, epoch)
	return p.Start, p.End
}
