package domain

import "time"

// ClientReview is a submitted client review credited to an employee. Each
// review triggers a flat review bonus, independent of any sale value.
type ClientReview struct {
	ReviewID   string    `json:"reviewID"`
	EmployeeID string    `json:"employeeID"`
	ClientName string    `json:"clientName"`
	Rating     int       `json:"rating"` // 1..5
	ReviewDate time.Time `json:"reviewDate"`
	AuditFields
}
