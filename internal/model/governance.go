package model

import "time"

// Review status labels for governance policies.
const (
	PolicyStatusOK      = "OK"
	PolicyStatusDueSoon = "Due Soon"
	PolicyStatusExpired = "Expired"
)

// Policy is a governance document (code of conduct, whistleblower policy, ...)
// mapped to an ESRS requirement. NextReviewDate drives the reminder service.
type Policy struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"size:256;not null" json:"name"`
	DocumentVersion string    `gorm:"size:32" json:"documentVersion"`
	Owner           string    `gorm:"size:128" json:"owner"`
	LastUpdated     time.Time `gorm:"not null" json:"lastUpdated"`
	NextReviewDate  time.Time `gorm:"not null;index" json:"nextReviewDate"`
	ESRSRequirement string    `gorm:"column:esrs_requirement;size:16;index" json:"esrsRequirement"`
	IsImplemented   bool      `gorm:"not null" json:"isImplemented"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ReviewStatus classifies the policy against its next review date.
func (p *Policy) ReviewStatus(now time.Time) string {
	today := now.Truncate(24 * time.Hour)
	switch {
	case p.NextReviewDate.Before(today):
		return PolicyStatusExpired
	case p.NextReviewDate.Before(today.AddDate(0, 0, 90)):
		return PolicyStatusDueSoon
	default:
		return PolicyStatusOK
	}
}

// ProcurementYearData is the yearly governance/procurement summary (ESRS G1),
// one row per year with upsert-on-year semantics.
type ProcurementYearData struct {
	Year               int       `gorm:"primaryKey" json:"year"`
	CodeOfConductPct   int       `json:"codeOfConductPct"`
	WhistleblowerCases int       `json:"whistleblowerCases"`
	GDPRIncidents      int       `gorm:"column:gdpr_incidents" json:"gdprIncidents"`
	ITPurchaseCO2Tons  float64   `gorm:"column:it_purchase_co2_tons" json:"itPurchaseCo2Tons"`
	SupplierCoCPct     int       `gorm:"column:supplier_coc_pct" json:"supplierCocPct"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func (ProcurementYearData) TableName() string { return "procurement_year_data" }

// RiskItem is an entry in the risk register.
type RiskItem struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Description string    `gorm:"size:512;not null" json:"description"`
	Status      string    `gorm:"size:32;not null;default:Open" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}
