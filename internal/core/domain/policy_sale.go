package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PolicyType is the closed set of policy categories the agency sells.
type PolicyType string

const (
	PolicyLife       PolicyType = "LIFE"
	PolicyAuto       PolicyType = "AUTO"
	PolicyHome       PolicyType = "HOME"
	PolicyHealth     PolicyType = "HEALTH"
	PolicyCommercial PolicyType = "COMMERCIAL"
)

// KnownPolicyTypes lists every valid PolicyType, used for input validation.
var KnownPolicyTypes = []PolicyType{PolicyLife, PolicyAuto, PolicyHome, PolicyHealth, PolicyCommercial}

// ValidPolicyType reports whether s names a known policy type.
func ValidPolicyType(s string) bool {
	for _, t := range KnownPolicyTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}

// PolicySale is an immutable record of a single policy sold by an employee.
// PolicyNumber is the unique business key; bonus events and high-value
// notifications reference it rather than duplicating sale data.
type PolicySale struct {
	PolicyNumber  string          `json:"policyNumber"`
	EmployeeID    string          `json:"employeeID"`
	Amount        decimal.Decimal `json:"amount"`    // always > 0
	BrokerFee     decimal.Decimal `json:"brokerFee"` // >= 0
	PolicyType    PolicyType      `json:"policyType"`
	CrossSold     bool            `json:"crossSold"`
	CrossSoldType *PolicyType     `json:"crossSoldType,omitempty"`
	SaleDate      time.Time       `json:"saleDate"`
	AuditFields
}
