package calc

import (
	"context"
	"fmt"
	"math"
	"strings"

	"esg-index-backend/internal/model"
	"esg-index-backend/internal/store"
)

// ReadinessSummary is the strict GAP view: only Compliant counts as done.
type ReadinessSummary struct {
	ScorePct     float64                `json:"scorePct"`
	Completed    int                    `json:"completed"`
	Total        int                    `json:"total"`
	Requirements []store.RequirementGap `json:"requirements"`
}

// GapScore computes the strict readiness percentage over the joined
// checklist. In Progress and Partial earn nothing here; the half-credit
// variant lives in IndexScore and the two are separate metrics on purpose.
func GapScore(rows []store.RequirementGap) (pct float64, completed, total int) {
	total = len(rows)
	for _, r := range rows {
		if r.Status == model.GapCompliant {
			completed++
		}
	}
	if total == 0 {
		return 0, 0, 0
	}
	return float64(completed) / float64(total) * 100, completed, total
}

// Readiness joins the requirement checklist against the GAP status table
// and scores it strictly.
func (s *Service) Readiness(ctx context.Context) (*ReadinessSummary, error) {
	rows, err := s.store.GapJoin(ctx)
	if err != nil {
		return nil, err
	}
	pct, completed, total := GapScore(rows)
	return &ReadinessSummary{
		ScorePct:     pct,
		Completed:    completed,
		Total:        total,
		Requirements: rows,
	}, nil
}

// Data-presence statuses for the ESRS index view.
const (
	IndexReported = "Reported"
	IndexPartial  = "Partial"
	IndexMissing  = "Missing"
)

// IndexEntry is one requirement in the ESRS index, with a status derived
// from the data actually present for the year.
type IndexEntry struct {
	Code    string `json:"code"`
	Title   string `json:"title"`
	Status  string `json:"status"`
	Comment string `json:"comment"`
}

// IndexResult is the ESRS index with its half-credit score.
type IndexResult struct {
	Year     int          `json:"year"`
	ScorePct float64      `json:"scorePct"`
	Entries  []IndexEntry `json:"entries"`
}

// IndexScore grants full credit for Reported and half credit for Partial,
// rounded to one decimal.
func IndexScore(entries []IndexEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	var reported, partial int
	for _, e := range entries {
		switch e.Status {
		case IndexReported:
			reported++
		case IndexPartial:
			partial++
		}
	}
	score := (float64(reported) + 0.5*float64(partial)) / float64(len(entries)) * 100
	return math.Round(score*10) / 10
}

// ESRSIndex classifies every checklist requirement by the data present for
// the year:
//   - E1-6 is Reported when scope 1, 2 and 3 data all exist, Partial when
//     only scope 1/2 activity rows exist;
//   - S1-16 requires a registered gender pay gap;
//   - G1-* and S1-1 look for governance policies mapped to the standard;
//   - other S1-* requirements need the yearly HR headcount.
func (s *Service) ESRSIndex(ctx context.Context, year int) (*IndexResult, error) {
	reqs, err := s.store.GapJoin(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.store.CountActivity(ctx, year)
	if err != nil {
		return nil, err
	}
	hr, err := s.store.HRYear(ctx, year)
	if err != nil {
		return nil, err
	}
	policyCounts := make(map[string]int64, 2)
	for _, prefix := range []string{"G1", "S1"} {
		n, err := s.store.CountPoliciesByPrefix(ctx, prefix)
		if err != nil {
			return nil, err
		}
		policyCounts[prefix] = n
	}

	entries := make([]IndexEntry, 0, len(reqs))
	for _, req := range reqs {
		entry := IndexEntry{
			Code:    req.Code,
			Title:   req.Title,
			Status:  IndexMissing,
			Comment: "No data found.",
		}

		switch {
		case req.Code == "E1-6":
			activity := counts.Fuel + counts.Energy
			if counts.Spend > 0 {
				entry.Status = IndexReported
				entry.Comment = fmt.Sprintf("Scope 1, 2 and 3 data present (%d rows).", activity+counts.Spend)
			} else if activity > 0 {
				entry.Status = IndexPartial
				entry.Comment = "Scope 3 data missing."
			}

		case req.Code == "S1-16":
			if hr != nil && hr.GenderPayGapPct > 0 {
				entry.Status = IndexReported
				entry.Comment = fmt.Sprintf("Pay gap registered: %.1f%%.", hr.GenderPayGapPct)
			}

		case strings.HasPrefix(req.Code, "G1") || req.Code == "S1-1":
			if n := policyCounts[req.Code[:2]]; n > 0 {
				entry.Status = IndexReported
				entry.Comment = fmt.Sprintf("%d governance documents found.", n)
			}

		case strings.HasPrefix(req.Code, "S1"):
			if hr != nil && hr.InternalHeadcount > 0 {
				entry.Status = IndexReported
				entry.Comment = "Baseline HR data present."
			}
		}

		entries = append(entries, entry)
	}

	return &IndexResult{
		Year:     year,
		ScorePct: IndexScore(entries),
		Entries:  entries,
	}, nil
}
