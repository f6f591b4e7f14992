package entity

// AppointmentFilter is a domain-level filter for querying a patient's
// appointments. Used by the repository layer to avoid coupling with
// delivery DTOs.
type AppointmentFilter struct {
	Status        string // optional single status value, "" means no filtering
	SortAscending bool   // direction of the (appointment_date, start_time) sort
}
