package response

import (
	"time"

	"nailbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Price       int64     `json:"price"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address,omitempty"`
	Note        string    `json:"note,omitempty"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	OrderID     string    `json:"order_id"`
	SnapToken   string    `json:"snap_token,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var res BookingResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromBookingList(views []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = FromBookingView(v)
	}
	return res
}

type CreateBookingResponse struct {
	Booking   *BookingResponse `json:"booking"`
	SnapToken string           `json:"snap_token,omitempty"`
}

type TakenTimesResponse struct {
	Times []string `json:"times"`
}

type TotalPemasukanResponse struct {
	TotalPemasukan int64 `json:"totalPemasukan"`
}
