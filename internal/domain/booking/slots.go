package booking

import "time"

// Business hours for the customer flow. The window is inclusive: the
// closing instant itself is bookable when the stepping lands on it.
const (
	OpeningHour  = 9
	ClosingHour  = 21
	SlotInterval = 45 * time.Minute
)

// GenerateDayTimeList returns the ordered HH:mm labels a customer can
// pick on the given calendar day. Only the day's date matters; any
// time-of-day on the argument is ignored.
//
// The loop advances and rechecks instead of precomputing a count, so
// changing the window or interval constants keeps working without
// rounding artifacts (the closing label only appears when a step lands
// on it exactly).
func GenerateDayTimeList(date time.Time) []string {
	loc := date.Location()

	cur := time.Date(date.Year(), date.Month(), date.Day(), OpeningHour, 0, 0, 0, loc)
	end := time.Date(date.Year(), date.Month(), date.Day(), ClosingHour, 0, 0, 0, loc)

	var list []string
	for !cur.After(end) {
		list = append(list, cur.Format("15:04"))
		cur = cur.Add(SlotInterval)
	}

	return list
}
