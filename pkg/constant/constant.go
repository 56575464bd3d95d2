package constant

import (
	"errors"
	"time"
)

const (
	CacheParentKey = "kickmatch"
)

const (
	RequestParamID = "id"

	RequestValidateUUID = "required,uuid"

	RequestHeaderSessionID = "X-Session-ID"
	LocalsRequestID        = "request_id"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"

	BookingFilterAll      = "all"
	BookingFilterUpcoming = "upcoming"
	BookingFilterPast     = "past"
)

const (
	VenueSourceRegistered = "registered"
	VenueSourcePlaces     = "places"
	VenueSourceDemo       = "demo"

	VenueMaxPhotos = 5
)

const (
	FullDateFormat = time.RFC3339
	DateFormat     = "2006-01-02"
	HoursFormat    = "15:04"

	SlotFirstHour = 6
	SlotLastHour  = 22
)

const (
	UserRoleAdmin = "9"
	UserRoleOwner = "5"
	UserRoleUser  = "1"
)

const (
	JwtFieldUser  = "user_id"
	JwtFieldEmail = "email"
	JwtFieldLevel = "level"
)

const (
	ContentTypeJPEG = "image/jpeg"
	ContentTypeJPG  = "image/jpg"
	ContentTypePNG  = "image/png"
	ContentTypeWEBP = "image/webp"
)

const (
	PaginationDefaultLimit = 10
	PaginationDefaultPage  = 1
)

var (
	ErrInvalidContextUserType = errors.New("invalid user type in context")
)
