package helper

import (
	"math"
	"time"
)

func CalculateOffset(page, limit int) int {
	if page <= 0 || limit <= 0 {
		return 0
	}

	return (page - 1) * limit
}

func CalculateTotalPages(totalItems, limit int) int {
	if totalItems <= 0 || limit <= 0 {
		return 1
	}

	return (totalItems + limit - 1) / limit
}

// CalculateDurationHours floors the span to whole hours with a minimum of one.
func CalculateDurationHours(start, end time.Time) int {
	hours := int(math.Floor(end.Sub(start).Hours()))
	if hours < 1 {
		return 1
	}

	return hours
}

func CalculateEndTime(startTime time.Time, durationHours int) time.Time {
	return startTime.Add(time.Duration(durationHours) * time.Hour)
}
