package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidTimeLabel = errors.New("time is not an offered slot")
	ErrInvalidStatus    = errors.New("invalid booking status")
	ErrInvalidCustomer  = errors.New("customer name and phone are required")
)

const dateLayout = "2006-01-02"

// TimeLabels are the hourly slots the salon offers each day.
var TimeLabels = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00",
}

// Slot is one bookable (date, time) pair. The time is a fixed label, not a
// point on a clock; slot equality is plain string equality.
type Slot struct {
	date string
	time string
}

func NewSlot(date, timeLabel string) (Slot, error) {
	date = strings.TrimSpace(date)
	if _, err := time.Parse(dateLayout, date); err != nil {
		return Slot{}, ErrInvalidDate
	}

	timeLabel = strings.TrimSpace(timeLabel)
	valid := false
	for _, l := range TimeLabels {
		if l == timeLabel {
			valid = true
			break
		}
	}
	if !valid {
		return Slot{}, ErrInvalidTimeLabel
	}

	return Slot{date: date, time: timeLabel}, nil
}

func ReconstructSlot(date, timeLabel string) Slot {
	return Slot{date: date, time: timeLabel}
}

func (s Slot) Date() string { return s.date }
func (s Slot) Time() string { return s.time }

func (s Slot) String() string {
	return s.date + " " + s.time
}

// OrderID identifies a booking towards the payment provider.
// Format: BOOK-<unix millis>-<uuid fragment>. The fragment disambiguates
// bookings created within the same millisecond.
type OrderID struct {
	value string
}

func NewOrderID(now time.Time) OrderID {
	frag := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return OrderID{value: fmt.Sprintf("BOOK-%d-%s", now.UnixMilli(), frag)}
}

func ReconstructOrderID(value string) OrderID {
	return OrderID{value: value}
}

func (o OrderID) Value() string { return o.value }

// Customer is the contact block captured with a booking. Email is optional
// and only used for the customer booking lookup.
type Customer struct {
	name    string
	email   string
	phone   string
	address string
}

func NewCustomer(name, email, phone, address string) (Customer, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return Customer{}, ErrInvalidCustomer
	}
	return Customer{
		name:    name,
		email:   strings.TrimSpace(email),
		phone:   phone,
		address: strings.TrimSpace(address),
	}, nil
}

func (c Customer) Name() string    { return c.name }
func (c Customer) Email() string   { return c.email }
func (c Customer) Phone() string   { return c.phone }
func (c Customer) Address() string { return c.address }
