package locale

import (
	"fmt"
	"time"
)

var months = [...]string{
	time.January:   "janeiro",
	time.February:  "fevereiro",
	time.March:     "março",
	time.April:     "abril",
	time.May:       "maio",
	time.June:      "junho",
	time.July:      "julho",
	time.August:    "agosto",
	time.September: "setembro",
	time.October:   "outubro",
	time.November:  "novembro",
	time.December:  "dezembro",
}

// FormatDateTime renders a booking instant for confirmation messages:
// "10 de maio às 14:30".
func FormatDateTime(t time.Time) string {
	return fmt.Sprintf("%02d de %s às %s", t.Day(), months[t.Month()], t.Format("15:04"))
}
