// Package report renders the CSRD markdown report and the audit workbook
// from the derived totals. Reports always render: a failed aggregate is
// logged and shown as zero rather than failing the whole document.
package report

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"esg-index-backend/internal/model"
	"esg-index-backend/internal/store"
)

// CSRD builds the yearly sustainability report as markdown, structured
// along the ESRS standards.
func CSRD(ctx context.Context, s store.Store, year int, companyName string, now time.Time) string {
	// Aggregates degrade to zero so the report always renders.
	orZero := func(what string, v float64, err error) float64 {
		if err != nil {
			log.Printf("report: %s unavailable: %v", what, err)
			return 0
		}
		return v
	}

	scope1Kg, err := s.Scope1TotalKg(ctx)
	scope1 := kgToTons(orZero("scope 1 total", scope1Kg, err))
	scope2Kg, err := s.Scope2MarketTotalKg(ctx)
	scope2 := kgToTons(orZero("scope 2 market total", scope2Kg, err))
	spendTons, err := s.SpendTotalTons(ctx)
	spendTons = orZero("spend total", spendTons, err)
	commuteKg, err := s.CommuteTotalKg(ctx)
	commuteTons := kgToTons(orZero("commute total", commuteKg, err))
	scope3 := spendTons + commuteTons

	renewablePct, err := s.RenewableSharePct(ctx, year)
	renewable := orZero("renewable share", renewablePct, err)

	hr, err := s.HRYear(ctx, year)
	if err != nil {
		log.Printf("report: HR data unavailable: %v", err)
		hr = nil
	}

	topics, err := s.MaterialTopics(ctx)
	if err != nil {
		log.Printf("report: material topics unavailable: %v", err)
	}
	policies, err := s.ListPolicies(ctx)
	if err != nil {
		log.Printf("report: policies unavailable: %v", err)
	}
	quality, err := s.CommuteQualityShares(ctx)
	if err != nil {
		log.Printf("report: commute quality breakdown unavailable: %v", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Sustainability Report %d\n**%s**\n\n", year, companyName)

	b.WriteString("## ESRS 2: General Disclosures\n### Material sustainability topics (DMA)\n")
	if len(topics) == 0 {
		b.WriteString("_No material topics identified._\n")
	}
	for _, t := range topics {
		fmt.Fprintf(&b, "- **%s** (%s, %s)\n", t.Topic, t.Category, t.ESRSCode)
	}

	b.WriteString("\n---\n\n## ESRS E1: Climate Change\n")
	fmt.Fprintf(&b, "- **Scope 1:** %.2f tonnes CO2e\n", scope1)
	fmt.Fprintf(&b, "- **Scope 2 (market-based):** %.2f tonnes CO2e\n", scope2)
	fmt.Fprintf(&b, "- **Scope 3:** %.2f tonnes CO2e (spend %.2f, commuting %.2f)\n", scope3, spendTons, commuteTons)
	fmt.Fprintf(&b, "\n**Total:** %.2f tonnes CO2e\n", scope1+scope2+scope3)
	fmt.Fprintf(&b, "\n- **Renewable electricity share:** %.1f%%\n", renewable)

	if len(quality) > 0 {
		b.WriteString("\n### Commuting data quality\n")
		labels := make([]string, 0, len(quality))
		for label := range quality {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			fmt.Fprintf(&b, "- %s: %.1f%%\n", label, quality[label])
		}
	}

	b.WriteString("\n---\n\n## ESRS S1: Own Workforce\n")
	writeWorkforce(&b, hr)

	b.WriteString("\n---\n\n## ESRS G1: Business Conduct\n### Active policies\n")
	if len(policies) == 0 {
		b.WriteString("_No policies registered._\n")
	}
	for _, p := range policies {
		fmt.Fprintf(&b, "- %s (version %s, %s)\n", p.Name, p.DocumentVersion, p.ReviewStatus(now))
	}

	fmt.Fprintf(&b, "\n---\n*Generated %s.*\n", now.Format("2006-01-02 15:04"))
	return b.String()
}

func writeWorkforce(b *strings.Builder, hr *model.HRYearData) {
	if hr == nil {
		b.WriteString("_No HR data registered for this year._\n")
		return
	}

	women, men := hr.ManagementWomen, hr.ManagementMen
	pct := 0.0
	if women+men > 0 {
		pct = float64(women) / float64(women+men) * 100
	}
	fmt.Fprintf(b, "- **Headcount:** %d internal, %d consultants\n", hr.InternalHeadcount, hr.ConsultantHeadcount)
	fmt.Fprintf(b, "- **Management gender split:** %d women, %d men (%.1f%% women)\n", women, men, pct)
	fmt.Fprintf(b, "- **eNPS:** %d\n", hr.ENPSInternal)
	fmt.Fprintf(b, "- **Sick leave:** %.1f%%\n", hr.SickLeavePct)
	fmt.Fprintf(b, "- **Gender pay gap:** %.1f%%\n", hr.GenderPayGapPct)
}

func kgToTons(kg float64) float64 { return kg / 1000.0 }
