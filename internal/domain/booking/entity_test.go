//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"oasis-backend/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(booking.Booking{}),
	cmpopts.EquateEmpty(),
}

func validCustomer(t *testing.T) booking.CustomerDetails {
	t.Helper()
	c, err := booking.NewCustomerDetails("Priya Sharma", "priya@example.com", "9876543210")
	require.NoError(t, err)
	return c
}

func validPackage(t *testing.T) booking.PackageDetails {
	t.Helper()
	p, err := booking.NewPackageDetails("Dubai Delight", "5 Days / 4 Nights", 2500000)
	require.NoError(t, err)
	return p
}

func TestCustomerDetails(t *testing.T) {
	type testCase struct {
		name  string
		cust  [3]string // name, email, phone
		errIs error
	}

	cases := []testCase{
		{name: "valid details OK", cust: [3]string{"Priya Sharma", "priya@example.com", "9876543210"}},
		{name: "name at lower bound (2) OK", cust: [3]string{"Jo", "jo@x.com", "9876543210"}},
		{name: "name below lower bound NG", cust: [3]string{"J", "jo@x.com", "9876543210"}, errIs: booking.ErrInvalidName},
		{name: "name above upper bound NG", cust: [3]string{strings.Repeat("a", 51), "jo@x.com", "9876543210"}, errIs: booking.ErrInvalidName},
		{name: "whitespace-only name NG", cust: [3]string{"   ", "jo@x.com", "9876543210"}, errIs: booking.ErrInvalidName},
		{name: "malformed email NG", cust: [3]string{"Priya", "not-an-email", "9876543210"}, errIs: booking.ErrInvalidEmail},
		{name: "phone with +91 prefix OK", cust: [3]string{"Priya", "priya@example.com", "+91 9876543210"}},
		{name: "short phone NG", cust: [3]string{"Priya", "priya@example.com", "12345"}, errIs: booking.ErrInvalidPhone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := booking.NewCustomerDetails(tc.cust[0], tc.cust[1], tc.cust[2])
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("untrusted fields are escaped and trimmed", func(t *testing.T) {
		c, err := booking.NewCustomerDetails("  <b>Jo</b>  ", "JO@Example.COM", "9876543210")
		require.NoError(t, err)
		assert.Equal(t, "&lt;b&gt;Jo&lt;/b&gt;", c.Name())
		assert.Equal(t, "jo@example.com", c.Email())
	})
}

func TestAmountBounds(t *testing.T) {
	bounds := booking.AmountBounds{Min: 1000, Max: 1000000}

	t.Run("inclusive at both ends", func(t *testing.T) {
		assert.NoError(t, bounds.Validate(1000))
		assert.NoError(t, bounds.Validate(1000000))
	})

	t.Run("one unit outside is rejected", func(t *testing.T) {
		assert.ErrorIs(t, bounds.Validate(999), booking.ErrInvalidAmount)
		assert.ErrorIs(t, bounds.Validate(1000001), booking.ErrInvalidAmount)
	})

	t.Run("minor unit conversion is exact", func(t *testing.T) {
		assert.Equal(t, int64(100000), booking.ToMinorUnits(1000))
	})
}

func TestStatusTransitions(t *testing.T) {
	type transition struct {
		from, to booking.Status
		allowed  bool
	}

	cases := []transition{
		{booking.StatusPending, booking.StatusConfirmed, true},
		{booking.StatusPending, booking.StatusCancelled, true},
		{booking.StatusPending, booking.StatusFailed, true},
		{booking.StatusConfirmed, booking.StatusCancelled, true},
		{booking.StatusConfirmed, booking.StatusRefunded, true},
		{booking.StatusCancelled, booking.StatusConfirmed, false},
		{booking.StatusFailed, booking.StatusConfirmed, false},
		{booking.StatusRefunded, booking.StatusConfirmed, false},
		{booking.StatusConfirmed, booking.StatusPending, false},
		{booking.StatusPending, booking.StatusRefunded, false},
	}

	for _, tc := range cases {
		t.Run(tc.from.String()+" -> "+tc.to.String(), func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}

	t.Run("Transition rejects backward move and keeps state", func(t *testing.T) {
		now := time.Now()
		b := booking.NewConfirmed(validCustomer(t), validPackage(t), booking.NewPaymentRef("order_1", "pay_1", "sig"), now)

		require.NoError(t, b.Transition(booking.StatusCancelled, now))
		err := b.Transition(booking.StatusConfirmed, now)
		assert.ErrorIs(t, err, booking.ErrInvalidStatusTransition)
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})
}

func TestReconstruct(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	id := uuid.New()
	cust := validCustomer(t)
	pkg := validPackage(t)
	pay := booking.NewPaymentRef("order_1", "pay_1", "sig")

	got := booking.Reconstruct(id, cust, pkg, pay, booking.StatusConfirmed, now, now)
	want := booking.Reconstruct(id, cust, pkg, pay, booking.StatusConfirmed, now, now)

	if diff := cmp.Diff(want, got, cmpOpts...); diff != "" {
		t.Errorf("Booking mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, id, got.ID())
	assert.True(t, got.IsConfirmed())
}
