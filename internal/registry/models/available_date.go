package models

import (
	"strings"
	"time"
)

const AvailableDateConstraints = "Available dates should be of the format yyyy-MM-dd, yyyy-MM-dd " +
	"and the start date should not be after the end date"

const dateLayout = "2006-01-02"

// AvailableDate is an inclusive range of days a person is available.
type AvailableDate struct {
	start time.Time
	end   time.Time
}

func ParseAvailableDate(raw string) (AvailableDate, error) {
	from, to, ok := strings.Cut(raw, ",")
	if !ok {
		return AvailableDate{}, invalid(AvailableDateConstraints)
	}
	start, err := time.Parse(dateLayout, strings.TrimSpace(from))
	if err != nil {
		return AvailableDate{}, invalid(AvailableDateConstraints)
	}
	end, err := time.Parse(dateLayout, strings.TrimSpace(to))
	if err != nil || end.Before(start) {
		return AvailableDate{}, invalid(AvailableDateConstraints)
	}
	return AvailableDate{start: start, end: end}, nil
}

func (d AvailableDate) Start() time.Time { return d.start }
func (d AvailableDate) End() time.Time   { return d.end }

func (d AvailableDate) String() string {
	return d.start.Format(dateLayout) + ", " + d.end.Format(dateLayout)
}
