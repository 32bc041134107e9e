package model

import "time"

// GAP analysis status values for a disclosure requirement.
const (
	GapNotStarted    = "Not Started"
	GapInProgress    = "In Progress"
	GapPartial       = "Partial"
	GapCompliant     = "Compliant"
	GapNotApplicable = "N/A"
)

// DisclosureRequirement is one ESRS disclosure requirement in the fixed
// readiness checklist, keyed by its ESRS code.
type DisclosureRequirement struct {
	Code       string `gorm:"primaryKey;size:16" json:"code"`
	Title      string `gorm:"size:256;not null" json:"title"`
	Mandatory  bool   `gorm:"not null" json:"mandatory"`
	Applicable bool   `gorm:"not null" json:"applicable"`
}

// GapStatus is the mutable completion record for one requirement,
// keyed 1:1 to the requirement code and written via upsert.
type GapStatus struct {
	RequirementCode string    `gorm:"primaryKey;size:16" json:"requirementCode"`
	Status          string    `gorm:"size:32;not null" json:"status"`
	Owner           string    `gorm:"size:128" json:"owner"`
	EvidenceLink    string    `gorm:"size:512" json:"evidenceLink"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// DefaultChecklist is the seeded ESRS disclosure requirement set.
func DefaultChecklist() []DisclosureRequirement {
	return []DisclosureRequirement{
		{Code: "E1-1", Title: "Transition plan for climate change mitigation", Mandatory: true, Applicable: true},
		{Code: "E1-4", Title: "Targets related to climate change mitigation and adaptation", Mandatory: true, Applicable: true},
		{Code: "E1-5", Title: "Energy consumption and mix", Mandatory: true, Applicable: true},
		{Code: "E1-6", Title: "Gross Scopes 1, 2, 3 and total GHG emissions", Mandatory: true, Applicable: true},
		{Code: "E3-4", Title: "Water consumption", Mandatory: false, Applicable: true},
		{Code: "E5-5", Title: "Resource outflows and waste", Mandatory: false, Applicable: true},
		{Code: "S1-1", Title: "Policies related to own workforce", Mandatory: true, Applicable: true},
		{Code: "S1-6", Title: "Characteristics of the undertaking's employees", Mandatory: true, Applicable: true},
		{Code: "S1-14", Title: "Health and safety metrics", Mandatory: true, Applicable: true},
		{Code: "S1-16", Title: "Remuneration metrics (pay gap)", Mandatory: true, Applicable: true},
		{Code: "G1-1", Title: "Business conduct policies and corporate culture", Mandatory: true, Applicable: true},
		{Code: "G1-3", Title: "Prevention and detection of corruption and bribery", Mandatory: true, Applicable: true},
	}
}
