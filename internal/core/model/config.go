package model

import (
	"math/rand"
	"time"
)

// IntervalRange defines the reminder interval. Min == Max means a fixed interval.
type IntervalRange struct {
	Min time.Duration
	Max time.Duration
}

// FixedInterval returns a range that always yields the given duration.
func FixedInterval(interval time.Duration) IntervalRange {
	return IntervalRange{Min: interval, Max: interval}
}

// IsRandom reports whether each cycle draws a new interval.
func (value IntervalRange) IsRandom() bool {
	return value.Max > value.Min
}

// Draw returns a whole number of seconds within [Min, Max], inclusive.
func (value IntervalRange) Draw(rng *rand.Rand) time.Duration {
	low := value.Min.Truncate(time.Second)
	high := value.Max.Truncate(time.Second)
	if low < time.Second {
		low = time.Second
	}
	if high <= low {
		return low
	}
	span := int64((high-low)/time.Second) + 1
	return low + time.Duration(rng.Int63n(span))*time.Second
}

// TimeKeeperConfig contains runtime settings for the reminder countdown.
type TimeKeeperConfig struct {
	Interval   IntervalRange
	QuietHours QuietHours
}
