package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/assureline/payroll_engine/internal/core/domain"
)

// IngestSaleRequest is the fully-formed sale record handed over by a
// data-entry collaborator (chat flow, form, CSV import). The handoff is a
// single atomic call; the engine never sees a partially-built sale.
type IngestSaleRequest struct {
	PolicyNumber  string          `json:"policyNumber" binding:"required"`
	EmployeeID    string          `json:"employeeID" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	BrokerFee     decimal.Decimal `json:"brokerFee"`
	PolicyType    string          `json:"policyType" binding:"required,policytype"`
	CrossSold     bool            `json:"crossSold"`
	CrossSoldType *string         `json:"crossSoldType,omitempty"`
	SaleDate      time.Time       `json:"saleDate" binding:"required"`
}

// IngestSaleResponse reports the outcome of a sale ingestion: the derived
// bonus events and whether a high-value notification was newly created.
// Replayed policy numbers return NotificationCreated=false.
type IngestSaleResponse struct {
	PolicyNumber        string              `json:"policyNumber"`
	BonusEvents         []domain.BonusEvent `json:"bonusEvents"`
	NotificationCreated bool                `json:"notificationCreated"`
	Replayed            bool                `json:"replayed"`
}

// ToDomainSale converts a validated request into the immutable domain record.
func (r IngestSaleRequest) ToDomainSale(creatorUserID string, now time.Time) domain.PolicySale {
	sale := domain.PolicySale{
		PolicyNumber: r.PolicyNumber,
		EmployeeID:   r.EmployeeID,
		Amount:       r.Amount,
		BrokerFee:    r.BrokerFee,
		PolicyType:   domain.PolicyType(r.PolicyType),
		CrossSold:    r.CrossSold,
		SaleDate:     r.SaleDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if r.CrossSoldType != nil {
		t := domain.PolicyType(*r.CrossSoldType)
		sale.CrossSoldType = &t
	}
	return sale
}
