package catalog

import (
	"fmt"
	"math"
	"time"

	"campusconnect-api/models"
)

const day = 24 * time.Hour

// DisplayDateLayout renders dates the way event cards show them.
const DisplayDateLayout = "January 2, 2006"

type Countdown struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Expired bool `json:"expired"`
}

// CountdownTo splits the time left until target. Once target has passed
// the countdown is expired and all fields are zero.
func CountdownTo(target, now time.Time) Countdown {
	left := target.Sub(now)
	if left < 0 {
		return Countdown{Expired: true}
	}
	return Countdown{
		Days:    int(left / day),
		Hours:   int(left % day / time.Hour),
		Minutes: int(left % time.Hour / time.Minute),
		Seconds: int(left % time.Minute / time.Second),
	}
}

// DaysUntil rounds the remaining time up to whole days.
func DaysUntil(date, now time.Time) int {
	return int(math.Ceil(date.Sub(now).Hours() / 24))
}

func DaysUntilLabel(date, now time.Time) string {
	days := DaysUntil(date, now)
	switch {
	case days < 0:
		return "Event has passed"
	case days == 0:
		return "Today!"
	case days == 1:
		return "Tomorrow"
	case days <= 7:
		return fmt.Sprintf("In %d days", days)
	case days <= 30:
		return "In " + plural(days/7, "week")
	default:
		return "In " + plural(days/30, "month")
	}
}

// Duration describes the span of a multi-day event.
func Duration(e models.Event) string {
	start, okStart := e.Day()
	end, okEnd := e.End()
	if !okStart || !okEnd {
		return "Duration varies"
	}
	hours := math.Abs(end.Sub(start).Hours())
	if hours < 24 {
		return plural(int(math.Round(hours)), "hour")
	}
	return plural(int(math.Round(hours/24)), "day")
}

var generalNews = []string{
	"🌟 New events added weekly - Check back often!",
	"💡 Tip: Bookmark your favorite events to never miss them!",
	"🎊 Join our community events and make lasting memories!",
}

const newsEvents = 5

// NewsUpdates builds the home page ticker from the next five upcoming
// events followed by the standing announcements.
func NewsUpdates(events []models.Event, now time.Time) []string {
	upcoming := SortEvents(EventsByStatus(events, models.StatusUpcoming), SortByDate)
	if len(upcoming) > newsEvents {
		upcoming = upcoming[:newsEvents]
	}
	updates := make([]string, 0, len(upcoming)+len(generalNews))
	for _, e := range upcoming {
		date, ok := e.Day()
		if !ok {
			continue
		}
		switch days := DaysUntil(date, now); {
		case days <= 7:
			updates = append(updates, fmt.Sprintf("🔥 %s - Only %d days left! Register now", e.Name, days))
		case days <= 14:
			updates = append(updates, fmt.Sprintf("📅 %s - Registration closing soon (%s)", e.Name, date.Format(DisplayDateLayout)))
		default:
			updates = append(updates, fmt.Sprintf("🎯 Upcoming: %s on %s", e.Name, date.Format(DisplayDateLayout)))
		}
	}
	return append(updates, generalNews...)
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
