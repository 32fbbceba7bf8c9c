package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{"pending to approved", StatusPending, StatusApproved, true},
		{"pending to rejected", StatusPending, StatusRejected, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to pending", StatusPending, StatusPending, false},
		{"approved is terminal", StatusApproved, StatusCancelled, false},
		{"rejected is terminal", StatusRejected, StatusApproved, false},
		{"cancelled is terminal", StatusCancelled, StatusApproved, false},
		{"cancelled cannot be rejected", StatusCancelled, StatusRejected, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusApproved.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.True(t, StatusCancelled.Terminal())
}

func TestOverlaps(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name                       string
		aFrom, aTo, bFrom, bTo int
		want                       bool
	}{
		{"disjoint before", 1, 5, 6, 10, false},
		{"disjoint after", 6, 10, 1, 5, false},
		{"shared boundary day", 10, 12, 12, 14, true},
		{"contained", 1, 10, 3, 5, true},
		{"identical", 3, 5, 3, 5, true},
		{"single day ranges same day", 4, 4, 4, 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(day(tt.aFrom), day(tt.aTo), day(tt.bFrom), day(tt.bTo))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTypeValid(t *testing.T) {
	for _, typ := range []Type{TypeSick, TypeAnnual, TypeCasual, TypeUnpaid, TypeOther} {
		assert.True(t, typ.Valid())
	}
	assert.False(t, Type("Vacation").Valid())
	assert.False(t, Type("").Valid())
}
