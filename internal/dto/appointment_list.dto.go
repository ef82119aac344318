package dto

import "github.com/mamede573/BarberManager/internal/civil"

type AppointmentListDTO struct {
	ID            string     `json:"id"`
	BarberID      string     `json:"barber_id"`
	BarberName    string     `json:"barber_name"`
	ServiceIDs    []string   `json:"service_ids"`
	Date          civil.Date `json:"date"`
	Time          string     `json:"time"`
	TotalPrice    float64    `json:"total_price"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"payment_status"`
}
