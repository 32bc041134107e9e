package model

import (
	"strings"
	"time"
)

// esrsTopicMap maps materiality keywords to ESRS standard codes.
// Ordered so classification is deterministic when several keywords match.
var esrsTopicMap = []struct {
	keyword string
	code    string
}{
	{"climate", "E1"},
	{"energy", "E1"},
	{"pollution", "E2"},
	{"water", "E3"},
	{"biodiversity", "E4"},
	{"circular economy", "E5"},
	{"resource use", "E5"},
	{"own workforce", "S1"},
	{"working condit", "S1"},
	{"value chain work", "S2"},
	{"supplier", "S2"},
	{"affected commun", "S3"},
	{"local commun", "S3"},
	{"consumer", "S4"},
	{"end-user", "S4"},
	{"business ethics", "G1"},
	{"governance", "G1"},
	{"anti-corruption", "G1"},
}

// MaterialityTopic is one row of the double materiality assessment.
// Scores run 1-10; a topic is material when either score reaches the
// CSRD threshold of 3.
type MaterialityTopic struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Topic          string    `gorm:"size:256;not null" json:"topic"`
	ImpactScore    int       `gorm:"not null" json:"impactScore"`
	FinancialScore int       `gorm:"not null" json:"financialScore"`
	ESRSCode       string    `gorm:"column:esrs_code;size:16" json:"esrsCode"`
	Category       string    `gorm:"size:128" json:"category"`
	IsMaterial     bool      `gorm:"not null" json:"isMaterial"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Classify fills ESRSCode and IsMaterial from the topic text and scores.
func (t *MaterialityTopic) Classify() {
	t.ESRSCode = "ESRS 2"
	haystack := strings.ToLower(t.Topic + " " + t.Category)
	for _, entry := range esrsTopicMap {
		if strings.Contains(haystack, entry.keyword) {
			t.ESRSCode = entry.code
			break
		}
	}
	t.IsMaterial = t.ImpactScore >= 3 || t.FinancialScore >= 3
}
