package booking

// Stable business codes surfaced by the booking usecases.
const (
	CodeIncompleteSelection    = "incomplete_selection"
	CodeAuthenticationRequired = "authentication_required"
	CodePersistenceFailure     = "persistence_failure"
	CodeTimeConflict           = "time_conflict"
	CodeBookingNotFound        = "booking_not_found"
	CodeServiceNotFound        = "service_not_found"
	CodeBarbershopNotFound     = "barbershop_not_found"
	CodeInvalidState           = "invalid_state"
	CodeInvalidTime            = "invalid_time"
	CodeSubmissionInProgress   = "submission_in_progress"
)
