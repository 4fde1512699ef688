//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"oasis-backend/internal/domain/booking"
	"oasis-backend/internal/domain/contact"
	"oasis-backend/internal/infra/events"
	"oasis-backend/internal/infra/gateway"
	"oasis-backend/internal/infra/mailer"
	"oasis-backend/internal/pkg/clock"
	"oasis-backend/internal/pkg/config"
	"oasis-backend/internal/pkg/errs"
	"oasis-backend/internal/pkg/signature"
	"oasis-backend/internal/usecase/commands"
	"oasis-backend/tests/common/builder"
	commandsmock "oasis-backend/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	gw       *commandsmock.MockPaymentGateway
	repo     *commandsmock.MockBookingRepository
	notifier *commandsmock.MockNotifier
	clk      *clock.MockClock
	cfg      config.Config
	cmds     commands.PaymentCommands
}

func (s *PaymentCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.gw = commandsmock.NewMockPaymentGateway(s.ctrl)
	s.repo = commandsmock.NewMockBookingRepository(s.ctrl)
	s.notifier = commandsmock.NewMockNotifier(s.ctrl)
	s.clk = clock.NewMockClock(time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC))
	s.cfg = config.NewTestConfig()
	s.cmds = commands.NewPaymentCommands(
		s.gw, s.repo, s.notifier, events.NopPublisher{}, s.clk,
		s.cfg.Razorpay, s.cfg.Payment,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func (s *PaymentCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPaymentCommandsSuite(t *testing.T) {
	suite.Run(t, new(PaymentCommandsTestSuite))
}

func (s *PaymentCommandsTestSuite) orderInput() commands.CreateOrderInput {
	b := builder.NewBookingBuilder()
	return commands.CreateOrderInput{
		AmountMajor: b.AmountMinor / 100,
		Currency:    "INR",
		PackageName: b.PackageName,
		Customer: commands.CustomerInput{
			Name:  b.CustomerName,
			Email: b.Email,
			Phone: b.Phone,
		},
	}
}

func (s *PaymentCommandsTestSuite) verifyInput() commands.VerifyPaymentInput {
	p := builder.NewPaymentBuilder()
	return commands.VerifyPaymentInput{
		OrderID:   p.OrderID,
		PaymentID: p.PaymentID,
		Signature: p.Sign(),
		Customer: commands.CustomerInput{
			Name:  p.Booking.CustomerName,
			Email: p.Booking.Email,
			Phone: p.Booking.Phone,
		},
		Package: commands.PackageInput{
			Name:        p.Booking.PackageName,
			Duration:    p.Booking.Duration,
			AmountMajor: p.Booking.AmountMinor / 100,
		},
	}
}

func (s *PaymentCommandsTestSuite) TestCreateOrder() {
	s.Run("success: amount converted to minor units before the gateway call", func() {
		in := s.orderInput()

		s.gw.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req gateway.OrderRequest) (*gateway.Order, error) {
				s.Equal(in.AmountMajor*100, req.Amount)
				s.Equal("INR", req.Currency)
				s.Contains(req.Receipt, "receipt_")
				s.Equal(in.PackageName, req.Notes["package_name"])
				return &gateway.Order{
					ID:       "order_created",
					Amount:   req.Amount,
					Currency: req.Currency,
					Receipt:  req.Receipt,
					Status:   "created",
				}, nil
			}).Times(1)
		s.gw.EXPECT().KeyID().Return("rzp_test_key").Times(1)

		handle, err := s.cmds.CreateOrder(context.Background(), in)
		s.NoError(err)
		s.Equal("order_created", handle.ID)
		s.Equal(in.AmountMajor*100, handle.Amount)
		s.Equal("rzp_test_key", handle.KeyID)
	})

	s.Run("error: amount outside bounds never reaches the gateway", func() {
		for _, amount := range []int64{999, 1000001, 0, -5} {
			in := s.orderInput()
			in.AmountMajor = amount

			_, err := s.cmds.CreateOrder(context.Background(), in)
			s.ErrorIs(err, errs.ErrValidation, "amount %d", amount)
		}
	})

	s.Run("error: invalid customer never reaches the gateway", func() {
		in := s.orderInput()
		in.Customer.Email = "not-an-email"

		_, err := s.cmds.CreateOrder(context.Background(), in)
		s.ErrorIs(err, errs.ErrValidation)
	})

	s.Run("error: bounds are inclusive at both ends", func() {
		for _, amount := range []int64{1000, 1000000} {
			in := s.orderInput()
			in.AmountMajor = amount

			s.gw.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
				Return(&gateway.Order{ID: "order_x", Amount: amount * 100, Currency: "INR"}, nil).Times(1)
			s.gw.EXPECT().KeyID().Return("rzp_test_key").Times(1)

			_, err := s.cmds.CreateOrder(context.Background(), in)
			s.NoError(err, "amount %d", amount)
		}
	})
}

func (s *PaymentCommandsTestSuite) TestVerifyPayment() {
	s.Run("success: valid signature persists and mails once", func() {
		in := s.verifyInput()
		stored := builder.NewBookingBuilder().Build()

		s.repo.EXPECT().CreateConfirmed(gomock.Any(), gomock.Any()).
			Return(stored, true, nil).Times(1)
		s.notifier.EXPECT().SendBookingConfirmation(gomock.Any(), stored).
			Return(mailer.Receipt{}, nil).Times(1)

		result, err := s.cmds.VerifyPayment(context.Background(), in)
		s.NoError(err)
		s.False(result.Replayed)
		s.Empty(result.Note)
		s.Equal(stored, result.Booking)
	})

	s.Run("error: tampered signature is rejected before any side effect", func() {
		in := s.verifyInput()
		in.Signature = in.Signature[:len(in.Signature)-1] + "0"

		_, err := s.cmds.VerifyPayment(context.Background(), in)
		s.ErrorIs(err, errs.ErrVerification)
	})

	s.Run("error: signature over different ids is rejected", func() {
		in := s.verifyInput()
		in.PaymentID = "pay_someoneElse"

		_, err := s.cmds.VerifyPayment(context.Background(), in)
		s.ErrorIs(err, errs.ErrVerification)
	})

	s.Run("success: replayed payment id returns the stored booking without mailing again", func() {
		in := s.verifyInput()
		stored := builder.NewBookingBuilder().Build()

		s.repo.EXPECT().CreateConfirmed(gomock.Any(), gomock.Any()).
			Return(stored, false, nil).Times(1)

		result, err := s.cmds.VerifyPayment(context.Background(), in)
		s.NoError(err)
		s.True(result.Replayed)
		s.Equal(stored, result.Booking)
	})

	s.Run("success: mail failure downgrades to an advisory note", func() {
		in := s.verifyInput()
		stored := builder.NewBookingBuilder().Build()

		s.repo.EXPECT().CreateConfirmed(gomock.Any(), gomock.Any()).
			Return(stored, true, nil).Times(1)
		s.notifier.EXPECT().SendBookingConfirmation(gomock.Any(), stored).
			Return(mailer.Receipt{}, errs.New("smtp connect refused")).Times(1)

		result, err := s.cmds.VerifyPayment(context.Background(), in)
		s.NoError(err)
		s.Equal("Email notification failed - will be sent manually", result.Note)
	})

	s.Run("error: storage failure after a valid signature is loud", func() {
		in := s.verifyInput()

		s.repo.EXPECT().CreateConfirmed(gomock.Any(), gomock.Any()).
			Return(nil, false, errs.New("connection reset")).Times(1)

		_, err := s.cmds.VerifyPayment(context.Background(), in)
		s.ErrorIs(err, errs.ErrPersistence)
	})
}

func (s *PaymentCommandsTestSuite) TestRefund() {
	s.Run("success: refund hits the gateway in minor units and records locally", func() {
		stored := builder.NewBookingBuilder().Build()

		s.gw.EXPECT().Refund(gomock.Any(), stored.Payment().PaymentID(), int64(2500000), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, amount int64, notes map[string]string) (*gateway.Refund, error) {
				s.Equal("Customer requested refund", notes["reason"])
				return &gateway.Refund{ID: "rfnd_1", Amount: amount, Status: "processed"}, nil
			}).Times(1)
		s.repo.EXPECT().FindByPaymentID(gomock.Any(), stored.Payment().PaymentID()).
			Return(stored, nil).Times(1)
		s.repo.EXPECT().UpdateStatusFrom(gomock.Any(), stored.ID(), booking.StatusConfirmed, booking.StatusRefunded, gomock.Any()).
			Return(stored, nil).Times(1)

		result, err := s.cmds.Refund(context.Background(), stored.Payment().PaymentID(), 25000, "")
		s.NoError(err)
		s.Equal("rfnd_1", result.ID)
		s.Equal("processed", result.Status)
	})

	s.Run("error: missing payment id", func() {
		_, err := s.cmds.Refund(context.Background(), "", 25000, "")
		s.ErrorIs(err, errs.ErrValidation)
	})
}

// memoryBookingStore is a minimal concurrent-safe store for exercising the
// verify path under parallel load; the gomock controller is not safe for
// interleaved expectations from many goroutines.
type memoryBookingStore struct {
	mu          sync.Mutex
	byPaymentID map[string]*booking.Booking
	created     int
}

func newMemoryBookingStore() *memoryBookingStore {
	return &memoryBookingStore{byPaymentID: map[string]*booking.Booking{}}
}

func (m *memoryBookingStore) Create(context.Context, *booking.Booking) error { return nil }

func (m *memoryBookingStore) CreateConfirmed(_ context.Context, b *booking.Booking) (*booking.Booking, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := b.Payment().PaymentID()
	if existing, ok := m.byPaymentID[key]; ok {
		return existing, false, nil
	}
	m.byPaymentID[key] = b
	m.created++
	return b, true, nil
}

func (m *memoryBookingStore) FindByID(context.Context, uuid.UUID) (*booking.Booking, error) {
	return nil, errs.New("not implemented")
}

func (m *memoryBookingStore) FindByPaymentID(_ context.Context, paymentID string) (*booking.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b, ok := m.byPaymentID[paymentID]; ok {
		return b, nil
	}
	return nil, errs.New("not found")
}

func (m *memoryBookingStore) List(context.Context) ([]*booking.Booking, error) { return nil, nil }

func (m *memoryBookingStore) UpdateStatusFrom(context.Context, uuid.UUID, booking.Status, booking.Status, time.Time) (*booking.Booking, error) {
	return nil, errs.New("not implemented")
}

func (m *memoryBookingStore) UpdatePendingByPayment(context.Context, string, string, booking.Status, time.Time) (*booking.Booking, error) {
	return nil, errs.New("not implemented")
}

type countingNotifier struct {
	mu    sync.Mutex
	sends int
}

func (c *countingNotifier) SendBookingConfirmation(context.Context, *booking.Booking) (mailer.Receipt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sends++
	return mailer.Receipt{}, nil
}

func (c *countingNotifier) SendContactNotification(context.Context, *contact.Inquiry) (mailer.Receipt, error) {
	return mailer.Receipt{}, nil
}

func TestVerifyPaymentConcurrentReplay(t *testing.T) {
	cfg := config.NewTestConfig()
	store := newMemoryBookingStore()
	notifier := &countingNotifier{}
	cmds := commands.NewPaymentCommands(
		nil, store, notifier, events.NopPublisher{},
		clock.NewMockClock(time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)),
		cfg.Razorpay, cfg.Payment,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	p := builder.NewPaymentBuilder()
	in := commands.VerifyPaymentInput{
		OrderID:   p.OrderID,
		PaymentID: p.PaymentID,
		Signature: signature.Payment(cfg.Razorpay.KeySecret, p.OrderID, p.PaymentID),
		Customer: commands.CustomerInput{
			Name:  p.Booking.CustomerName,
			Email: p.Booking.Email,
			Phone: p.Booking.Phone,
		},
		Package: commands.PackageInput{
			Name:        p.Booking.PackageName,
			Duration:    p.Booking.Duration,
			AmountMajor: p.Booking.AmountMinor / 100,
		},
	}

	const workers = 16
	var wg sync.WaitGroup
	replays := make([]bool, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			result, err := cmds.VerifyPayment(context.Background(), in)
			if err != nil {
				t.Errorf("worker %d: %v", n, err)
				return
			}
			replays[n] = result.Replayed
		}(i)
	}
	wg.Wait()

	if store.created != 1 {
		t.Fatalf("expected exactly one stored booking, got %d", store.created)
	}
	if notifier.sends != 1 {
		t.Fatalf("expected exactly one confirmation mail, got %d", notifier.sends)
	}
	fresh := 0
	for _, replayed := range replays {
		if !replayed {
			fresh++
		}
	}
	if fresh != 1 {
		t.Fatalf("expected exactly one non-replayed result, got %d", fresh)
	}
}
