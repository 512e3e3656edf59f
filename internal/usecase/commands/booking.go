package commands

import (
	"context"
	"log/slog"

	"nailbook/internal/domain/booking"
	reqdto "nailbook/internal/handler/dto/request"
	"nailbook/internal/infra"
	"nailbook/internal/pkg/clock"
	"nailbook/internal/pkg/errs"
	"nailbook/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound         = errs.New("product not found")
	ErrProductNotBookable      = errs.New("product is not bookable")
	ErrInvalidSlot             = errs.New("invalid slot")
	ErrSlotTaken               = errs.New("slot already taken")
	ErrInvalidBookingInput     = errs.New("invalid booking input")
	ErrPaymentSessionFailed    = errs.New("payment session failed")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrInvalidStatusOverride   = errs.New("invalid status override")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingResult struct {
	Booking   *queries.BookingView
	SnapToken string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*CreateBookingResult, error)
	OverrideStatus(ctx context.Context, id uuid.UUID, status string) error
	DeleteBooking(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	bookingRepo BookingRepository
	productRepo ProductRepository
	gateway     PaymentGateway
	clock       clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	productRepo ProductRepository,
	gateway PaymentGateway,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo: bookingRepo,
		productRepo: productRepo,
		gateway:     gateway,
		clock:       clock,
	}
}

// CreateBooking inserts a pending booking for the requested slot and opens a
// payment session for it. The unique slot index is the actual guard against
// double-booking; the SlotTaken pre-check only produces a friendlier error
// without burning an insert.
//
// A gateway failure after the insert is an accepted partial state: the
// booking stays pending without a token and the caller gets a payment
// session error. There is no compensating delete.
func (b *bookingCommandsImpl) CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*CreateBookingResult, error) {
	productSnap, err := b.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slot, err := req.ToSlot()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSlot)
	}

	customer, err := req.ToCustomer()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingInput)
	}

	taken, err := b.bookingRepo.SlotTaken(ctx, req.ProductID, slot)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if taken {
		return nil, ErrSlotTaken
	}

	entity := booking.NewBooking(
		booking.ProductSpec{ID: productSnap.ID, Name: productSnap.Name, Price: productSnap.Price},
		customer,
		slot,
		req.TrimmedNote(),
		b.clock.Now(),
	)

	if err := b.bookingRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrSlotTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	session, err := b.gateway.CreateSnapSession(ctx, SnapSessionInput{
		OrderID:       entity.OrderID().Value(),
		GrossAmount:   entity.Price(),
		ItemID:        productSnap.ID.String(),
		ItemName:      productSnap.Name,
		CustomerName:  customer.Name(),
		CustomerEmail: customer.Email(),
		CustomerPhone: customer.Phone(),
	})
	if err != nil {
		slog.Warn("payment session creation failed, booking kept pending",
			"order_id", entity.OrderID().Value(), "error", err.Error())
		return nil, errs.Mark(err, ErrPaymentSessionFailed)
	}

	entity.AttachSnapToken(session.Token)
	if err := b.bookingRepo.SetSnapToken(ctx, entity.ID(), session.Token); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CreateBookingResult{
		Booking:   bookingToView(entity),
		SnapToken: session.Token,
	}, nil
}

func (b *bookingCommandsImpl) OverrideStatus(ctx context.Context, id uuid.UUID, status string) error {
	newStatus, err := booking.NewStatus(status)
	if err != nil {
		return errs.Mark(err, ErrInvalidStatusOverride)
	}

	if err := b.bookingRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (b *bookingCommandsImpl) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	if err := b.bookingRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func bookingToView(b *booking.Booking) *queries.BookingView {
	return &queries.BookingView{
		ID:          b.ID(),
		ProductID:   b.ProductID(),
		ProductName: b.ProductName(),
		Price:       b.Price(),
		Name:        b.Customer().Name(),
		Email:       b.Customer().Email(),
		Phone:       b.Customer().Phone(),
		Address:     b.Customer().Address(),
		Note:        b.Note(),
		Date:        b.Slot().Date(),
		Time:        b.Slot().Time(),
		OrderID:     b.OrderID().Value(),
		SnapToken:   b.SnapToken(),
		Status:      b.Status().String(),
		CreatedAt:   b.CreatedAt(),
		UpdatedAt:   b.UpdatedAt(),
	}
}
