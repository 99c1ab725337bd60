package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/enercore/backoffice/internal/entity"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func period(start, end string) entity.Period {
	return entity.Period{Start: day(start), End: day(end)}
}

func TestCheckPeriodOverlapConflicts(t *testing.T) {
	existing := []entity.Period{period("2024-01-01", "2024-01-31")}

	tests := []struct {
		name      string
		candidate entity.Period
	}{
		{"start falls inside existing", period("2024-01-15", "2024-02-15")},
		{"end falls inside existing", period("2023-12-15", "2024-01-10")},
		{"candidate contains existing", period("2023-12-01", "2024-03-01")},
		{"existing contains candidate", period("2024-01-10", "2024-01-20")},
		{"identical period", period("2024-01-01", "2024-01-31")},
		{"touching on start boundary", period("2024-01-31", "2024-02-28")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflict := CheckPeriodOverlap(tt.candidate, existing)
			if assert.NotNil(t, conflict) {
				assert.Equal(t, "start_date", conflict.Field)
			}
		})
	}
}

func TestCheckPeriodOverlapDisjoint(t *testing.T) {
	existing := []entity.Period{period("2024-01-01", "2024-01-31")}

	assert.Nil(t, CheckPeriodOverlap(period("2024-02-01", "2024-02-28"), existing))
	assert.Nil(t, CheckPeriodOverlap(period("2023-11-01", "2023-12-31"), existing))
}

func TestCheckPeriodOverlapNoSiblings(t *testing.T) {
	assert.Nil(t, CheckPeriodOverlap(period("2024-01-01", "2024-01-31"), nil))
}

func TestCheckPeriodOverlapReportsFirstConflictOnly(t *testing.T) {
	existing := []entity.Period{
		period("2024-01-01", "2024-01-31"),
		period("2024-02-01", "2024-02-28"),
	}

	conflict := CheckPeriodOverlap(period("2024-01-15", "2024-02-15"), existing)
	if assert.NotNil(t, conflict) {
		assert.Equal(t, "start_date", conflict.Field)
	}
}
