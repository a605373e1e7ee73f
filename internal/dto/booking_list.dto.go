package dto

import "time"

type BookingListDTO struct {
	ID             uint      `json:"id"`
	Reference      string    `json:"reference"`
	Date           time.Time `json:"date"`
	Status         string    `json:"status"`
	ServiceName    string    `json:"service_name"`
	PriceFormatted string    `json:"price_formatted"`
	BarbershopName string    `json:"barbershop_name"`
	PaymentURL     string    `json:"payment_url,omitempty"`
}
