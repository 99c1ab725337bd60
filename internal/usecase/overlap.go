package usecase

import "github.com/enercore/backoffice/internal/entity"

// CheckPeriodOverlap validates a candidate date range against the periods of
// the other contracts sharing a delivery. A conflict exists when the candidate
// start or end falls inside a sibling period, or when the candidate fully
// contains one. Sibling-contains-candidate is already covered by the first two
// checks, so both containment directions hold.
//
// The first conflicting sibling short-circuits; the error is attributed to
// start_date, never one error per sibling.
func CheckPeriodOverlap(candidate entity.Period, siblings []entity.Period) *ValidationError {
	for _, s := range siblings {
		if s.Contains(candidate.Start) || s.Contains(candidate.End) || containsPeriod(candidate, s) {
			return &ValidationError{Field: "start_date", Message: "period overlaps another contract on this delivery"}
		}
	}
	return nil
}

func containsPeriod(outer, inner entity.Period) bool {
	return !inner.Start.Before(outer.Start) && !inner.End.After(outer.End)
}
