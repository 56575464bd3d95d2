package entity

import (
	"fmt"
	"time"

	"github.com/savioruz/kickmatch/pkg/constant"
	"github.com/savioruz/kickmatch/pkg/failure"
	"github.com/savioruz/kickmatch/pkg/helper"
)

const (
	ReasonInvalidDate      = "invalid-date"
	ReasonInvalidStartTime = "invalid-start-time"
	ReasonInvalidEndTime   = "invalid-end-time"
	ReasonEndBeforeStart   = "end-before-start"
	ReasonNegativePrice    = "negative-price"
	ReasonCrossesMidnight  = "crosses-midnight"
)

// Quote is the computed shape of a booking before it is stored.
type Quote struct {
	Date          time.Time
	Start         time.Time
	End           time.Time
	DurationHours int
	PricePerHour  float64
	TotalPrice    float64
}

// ComputeBooking turns a day and a start/end selection into whole booked hours.
// Sub-hour selections book one hour, and End is moved to Start plus the booked hours.
// The booked span must end by midnight of the booking day.
func ComputeBooking(date, start, end string, pricePerHour float64, loc *time.Location) (Quote, error) {
	if loc == nil {
		loc = time.UTC
	}

	day, err := time.ParseInLocation(constant.DateFormat, date, loc)
	if err != nil {
		return Quote{}, failure.Validation(ReasonInvalidDate)
	}

	startAt, err := atClock(day, start)
	if err != nil {
		return Quote{}, failure.Validation(ReasonInvalidStartTime)
	}

	endAt, err := atClock(day, end)
	if err != nil {
		return Quote{}, failure.Validation(ReasonInvalidEndTime)
	}

	if !endAt.After(startAt) {
		return Quote{}, failure.Validation(ReasonEndBeforeStart)
	}

	if pricePerHour < 0 {
		return Quote{}, failure.Validation(ReasonNegativePrice)
	}

	hours := helper.CalculateDurationHours(startAt, endAt)

	bookedEnd := helper.CalculateEndTime(startAt, hours)
	if bookedEnd.After(day.AddDate(0, 0, 1)) {
		return Quote{}, failure.Validation(ReasonCrossesMidnight)
	}

	return Quote{
		Date:          day,
		Start:         startAt,
		End:           bookedEnd,
		DurationHours: hours,
		PricePerHour:  pricePerHour,
		TotalPrice:    pricePerHour * float64(hours),
	}, nil
}

func atClock(day time.Time, clock string) (time.Time, error) {
	t, err := time.Parse(constant.HoursFormat, clock)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	BookingID string `json:"booking_id,omitempty"`
	Selected  bool   `json:"selected,omitempty"`
}

// GenerateTimeSlots returns the hourly start labels from 06:00 to 22:00.
func GenerateTimeSlots() []string {
	slots := make([]string, 0, constant.SlotLastHour-constant.SlotFirstHour+1)
	for hour := constant.SlotFirstHour; hour <= constant.SlotLastHour; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
	}

	return slots
}

// AnnotateSlots marks each label as free or taken by the booking id in booked.
// A booked label is never selected.
func AnnotateSlots(labels []string, booked map[string]string, selected string) []TimeSlot {
	out := make([]TimeSlot, len(labels))

	for i, label := range labels {
		id, taken := booked[label]
		out[i] = TimeSlot{
			Time:      label,
			Available: !taken,
			BookingID: id,
			Selected:  !taken && label == selected,
		}
	}

	return out
}

// OccupiedLabels maps every hourly label a booking touches to that booking's id.
func OccupiedLabels(bookings []Booking) map[string]string {
	out := make(map[string]string)

	for _, b := range bookings {
		from := time.Date(b.Start.Year(), b.Start.Month(), b.Start.Day(), b.Start.Hour(), 0, 0, 0, b.Start.Location())
		for t := from; t.Before(b.End); t = t.Add(time.Hour) {
			out[t.Format(constant.HoursFormat)] = b.ID
		}
	}

	return out
}
