package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BonusCategory is the closed set of bonus components the rule engine can emit.
// Keeping this a tagged enumeration (not free-form strings) is what lets the
// period compiler reconcile per-category subtotals exactly against per-sale
// events.
type BonusCategory string

const (
	BonusBrokerFee     BonusCategory = "BROKER_FEE"
	BonusCrossSell     BonusCategory = "CROSS_SELL"
	BonusLifeInsurance BonusCategory = "LIFE_INSURANCE"
	BonusReview        BonusCategory = "REVIEW"
	BonusHighValue     BonusCategory = "HIGH_VALUE"
)

// AllBonusCategories lists every category in stable display order.
var AllBonusCategories = []BonusCategory{
	BonusBrokerFee,
	BonusCrossSell,
	BonusLifeInsurance,
	BonusReview,
	BonusHighValue,
}

// BonusEvent is a derived, append-only record: one per triggered bonus
// category per sale or per day. Events are never mutated; recomputing a
// period from the same inputs must yield the identical set.
//
// Exactly one of SourcePolicyNumber or SourceDate is set, depending on
// whether the trigger was a sale or a day's activity (e.g. client reviews).
type BonusEvent struct {
	EventID            string          `json:"eventID"`
	EmployeeID         string          `json:"employeeID"`
	Category           BonusCategory   `json:"category"`
	SourcePolicyNumber string          `json:"sourcePolicyNumber,omitempty"`
	SourceDate         *time.Time      `json:"sourceDate,omitempty"`
	Amount             decimal.Decimal `json:"amount"`

	// Held marks events whose payout is gated behind an unresolved
	// high-value review. Held events are tracked but excluded from
	// finalized totals until the notification resolves.
	Held bool `json:"held"`
}

// BonusSubtotal is a per-category rollup entry in a payroll summary.
type BonusSubtotal struct {
	Category BonusCategory   `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Count    int             `json:"count"`
}
