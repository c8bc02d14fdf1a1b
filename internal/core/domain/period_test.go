package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assureline/payroll_engine/internal/core/domain"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestPeriodContaining_AnchorsToEpoch(t *testing.T) {
	tests := []struct {
		name      string
		ref       time.Time
		wantStart time.Time
	}{
		{
			name:      "epoch day starts the first period",
			ref:       epoch,
			wantStart: epoch,
		},
		{
			name:      "last day of the first period",
			ref:       time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
			wantStart: epoch,
		},
		{
			name:      "first day of the second period",
			ref:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "wall clock time does not shift the boundary",
			ref:       time.Date(2024, 1, 14, 23, 59, 59, 0, time.UTC),
			wantStart: epoch,
		},
		{
			name:      "day before the epoch falls in the preceding period",
			ref:       time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2023, 12, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "exactly one period before the epoch",
			ref:       time.Date(2023, 12, 18, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2023, 12, 18, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.PeriodContaining(tt.ref, epoch)
			assert.True(t, p.Start.Equal(tt.wantStart), "start %s, want %s", p.Start, tt.wantStart)
			assert.True(t, p.End.Equal(tt.wantStart.AddDate(0, 0, domain.PeriodLengthDays)))
			assert.True(t, p.Contains(tt.ref))
			require.NoError(t, p.Validate())
		})
	}
}

func TestPeriodContaining_Deterministic(t *testing.T) {
	ref := time.Date(2024, 3, 7, 11, 45, 0, 0, time.UTC)
	first := domain.PeriodContaining(ref, epoch)
	second := domain.PeriodContaining(ref, epoch)
	assert.Equal(t, first, second)
}

func TestPayrollPeriod_Contiguity(t *testing.T) {
	p := domain.PeriodContaining(epoch, epoch)

	next := p.Next()
	assert.True(t, next.Start.Equal(p.End), "periods must not gap or overlap")
	assert.False(t, p.Contains(next.Start), "interval end is exclusive")
	assert.True(t, next.Contains(next.Start))

	prev := p.Previous()
	assert.True(t, prev.End.Equal(p.Start))
}

func TestPayrollPeriod_Validate(t *testing.T) {
	good := domain.PeriodContaining(epoch, epoch)
	require.NoError(t, good.Validate())

	short := domain.PayrollPeriod{Start: good.Start, End: good.Start.AddDate(0, 0, 7)}
	assert.Error(t, short.Validate())

	ragged := domain.PayrollPeriod{Start: good.Start.Add(3 * time.Hour), End: good.End.Add(3 * time.Hour)}
	assert.Error(t, ragged.Validate())
}
