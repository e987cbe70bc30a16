// File: handlers/bundle.go
package handlers

import "doctorsportal/services/user"

// HandlerBundle groups the handlers for route registration. Users is exposed
// separately because the admin middleware needs role lookups.
type HandlerBundle struct {
	Appointment *AppointmentHandler
	Booking     *BookingHandler
	Payment     *PaymentHandler
	User        *UserHandler
	Doctor      *DoctorHandler

	Users user.UserService
}
