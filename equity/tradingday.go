package equity

import "time"

// NoonTime is the neutral clock time assumed for trades recorded without
// one: the trade stays on its own calendar date unless the reset time is
// after noon.
const NoonTime = "12:00"

const dateLayout = "2006-01-02"

// clockMinutes converts "HH:MM" to minutes past midnight. Unparseable
// strings resolve to noon so a bad time never shifts a trade's day.
func clockMinutes(clock string) int {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		t, _ = time.Parse("15:04", NoonTime)
	}
	return t.Hour()*60 + t.Minute()
}

// resetMinutes converts a reset time to minutes past midnight. An invalid
// reset falls back to plain midnight, which shifts nothing.
func resetMinutes(reset string) int {
	t, err := time.Parse("15:04", reset)
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

// previousDate returns the calendar date one day before date. A date that
// does not parse is returned unchanged.
func previousDate(date string) string {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return d.AddDate(0, 0, -1).Format(dateLayout)
}

// TradingDay resolves a trade's (date, clock) onto its logical trading day
// given the account's daily reset time. A trade stamped strictly before the
// reset time belongs to the previous calendar date; everything else belongs
// to its own date. A missing clock defaults to noon.
//
// Both the daily drawdown engine and the consistency checker must call this
// with the same reset time so day boundaries agree everywhere.
func TradingDay(date, clock, reset string) string {
	if date == "" {
		return ""
	}
	if clock == "" {
		clock = NoonTime
	}
	if clockMinutes(clock) < resetMinutes(reset) {
		return previousDate(date)
	}
	return date
}
