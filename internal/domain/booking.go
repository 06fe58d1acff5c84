package domain

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

// Booking lifecycle states. The remote service is the sole authority on
// transition legality; the client only decides which next actions to offer.
const (
	StatusRequested BookingStatus = "REQUESTED"
	StatusApproved  BookingStatus = "APPROVED"
	StatusRejected  BookingStatus = "REJECTED"
	StatusCompleted BookingStatus = "COMPLETED"
)

// Known reports whether the status is one the client's lifecycle recognizes.
// The service carries additional states (e.g. cancellation); those render
// verbatim with no actions offered.
func (s BookingStatus) Known() bool {
	switch s {
	case StatusRequested, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether no further transitions can be offered.
func (s BookingStatus) Terminal() bool {
	return s.Known() && len(s.NextStatuses()) == 0
}

// NextStatuses returns the syntactically reachable next states an owner may
// request from the current state:
//
//	REQUESTED -> APPROVED | REJECTED
//	APPROVED  -> COMPLETED
//
// REJECTED and COMPLETED are terminal. Unknown states yield nothing.
func (s BookingStatus) NextStatuses() []BookingStatus {
	switch s {
	case StatusRequested:
		return []BookingStatus{StatusApproved, StatusRejected}
	case StatusApproved:
		return []BookingStatus{StatusCompleted}
	}
	return nil
}

// TransitionLabel is the control label shown for a transition target.
func TransitionLabel(target BookingStatus) string {
	switch target {
	case StatusApproved:
		return "Approve"
	case StatusRejected:
		return "Reject"
	case StatusCompleted:
		return "Mark Completed"
	}
	return string(target)
}

// Booking is a rental request against an item. Client copies are transient
// and re-fetched after each mutation.
type Booking struct {
	ID         string        `json:"id"`
	ItemID     string        `json:"item_id"`
	RenterID   string        `json:"renter_id"`
	OwnerID    string        `json:"owner_id"`
	StartDate  string        `json:"start_date"`
	EndDate    string        `json:"end_date"`
	TotalPrice Money         `json:"total_price"`
	Status     BookingStatus `json:"status"`
	Notes      *string       `json:"notes,omitempty"`
}

// BookingList is the list response shape for booking queries.
type BookingList struct {
	Total    int       `json:"total"`
	Bookings []Booking `json:"bookings"`
}

// ShortID returns the first eight characters of the booking id for display.
func (b Booking) ShortID() string {
	if len(b.ID) <= 8 {
		return b.ID
	}
	return b.ID[:8]
}
