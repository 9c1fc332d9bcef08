package task

import "time"

// TimeUntilDue reports how long until the task reverts to pending. Pending
// tasks, and tasks with no completion on record, are due immediately and
// report zero.
//
// Sub-day periods are exact: the task is due at lastCompletedAt + period.
// Periods of a day or more are day-aligned: the due instant is local midnight
// of the completion day plus the period rounded up to whole days, so a chore
// finished at 14:37 with a one-day period is due at 00:00 the next day
// instead of drifting through the afternoon.
func TimeUntilDue(t Task, now time.Time) time.Duration {
	if t.State != StateUpToDate || t.LastCompletedAt == nil {
		return 0
	}
	return dueInstant(*t.LastCompletedAt, t.PeriodMinutes).Sub(now)
}

func dueInstant(last time.Time, periodMinutes int) time.Time {
	if periodMinutes < minutesPerDay {
		return last.Add(time.Duration(periodMinutes) * time.Minute)
	}
	days := (periodMinutes + minutesPerDay - 1) / minutesPerDay
	midnight := time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, last.Location())
	return midnight.AddDate(0, 0, days)
}

var timeLeftUnits = []struct {
	seconds int64
	name    string
}{
	{7 * 24 * 3600, "week"},
	{24 * 3600, "day"},
	{3600, "hour"},
	{60, "minute"},
	{1, "second"},
}

// HumanizeTimeLeft renders a remaining duration for display: the largest
// non-zero unit plus the next-largest non-zero remainder ("1 day 3 hours",
// "5 minutes 12 seconds"). Durations of zero or less render as "due now".
func HumanizeTimeLeft(left time.Duration) string {
	if left <= 0 {
		return "due now"
	}
	secs := int64((left + time.Second - 1) / time.Second)
	for i, u := range timeLeftUnits {
		if secs < u.seconds {
			continue
		}
		out := pluralize(int(secs/u.seconds), u.name)
		if i+1 < len(timeLeftUnits) {
			if rem := (secs % u.seconds) / timeLeftUnits[i+1].seconds; rem > 0 {
				out += " " + pluralize(int(rem), timeLeftUnits[i+1].name)
			}
		}
		return out
	}
	return "due now"
}
