package postgres

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	dup := &pq.Error{Code: uniqueViolation, Constraint: "bookings_one_active_per_renter"}

	testCases := []struct {
		name       string
		err        error
		constraint string
		expected   bool
	}{
		{name: "Matching constraint", err: dup, constraint: "bookings_one_active_per_renter", expected: true},
		{name: "Wrapped", err: fmt.Errorf("insert: %w", dup), constraint: "bookings_one_active_per_renter", expected: true},
		{name: "Any constraint", err: dup, expected: true},
		{name: "Other constraint", err: dup, constraint: "users_email_key", expected: false},
		{name: "Other code", err: &pq.Error{Code: "23503"}, expected: false},
		{name: "Not a pq error", err: errors.New("boom"), expected: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, isUniqueViolation(tc.err, tc.constraint))
		})
	}
}

func TestActiveStatuses(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"pending", "confirmed"}, activeStatuses())
}

func TestSchemaEnforcesOneActiveBooking(t *testing.T) {
	t.Parallel()

	assert.Contains(t, schema, "bookings_one_active_per_renter")
	assert.True(t, strings.Contains(schema, "WHERE status IN ('pending', 'confirmed')"),
		"the unique index must be partial over active statuses")
}
