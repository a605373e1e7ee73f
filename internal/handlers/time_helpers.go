package handlers

import (
	"time"

	"github.com/fsw-barber/booking-api/internal/models"
	"github.com/fsw-barber/booking-api/internal/timezone"
)

// parseDate reads a YYYY-MM-DD string as a calendar day in the default
// timezone. The submitter recomposes the final instant in the shop's
// own timezone, so only the day matters here.
func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, timezone.Location(""))
}

func parseDateInShop(shop *models.Barbershop, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(shop.Timezone),
	)
}
