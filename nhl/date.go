package nhl

import (
	"fmt"
	"strconv"
	"time"
)

// apiDateLayout is the date format the NHL API uses in paths and payloads.
const apiDateLayout = "2006-01-02"

// nowToken is the literal the API accepts in place of a concrete date.
const nowToken = "now"

// seasonRolloverMonth is the month a new NHL season is considered to
// start. Before this month the current calendar year still belongs to
// the previous season.
const seasonRolloverMonth = time.October

// timeNow is swapped out in tests to pin the clock.
var timeNow = time.Now

// GameDate identifies a requestable date: either the "now" sentinel,
// resolved by the API at request time, or an explicit calendar day.
// The zero value is the "now" sentinel.
type GameDate struct {
	explicit bool
	day      time.Time
}

// Now returns the "now" sentinel date.
func Now() GameDate {
	return GameDate{}
}

// Today returns an explicit GameDate for the current local day.
func Today() GameDate {
	return DateOf(timeNow())
}

// DateOf returns an explicit GameDate for the day of t.
func DateOf(t time.Time) GameDate {
	y, m, d := t.Date()
	return GameDate{explicit: true, day: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// FromYMD returns an explicit GameDate, rejecting impossible calendar
// days such as February 30th.
func FromYMD(year int, month time.Month, day int) (GameDate, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return GameDate{}, fmt.Errorf("invalid date %04d-%02d-%02d", year, month, day)
	}
	return GameDate{explicit: true, day: t}, nil
}

// ParseGameDate parses either the "now" token or a YYYY-MM-DD date.
func ParseGameDate(s string) (GameDate, error) {
	if s == nowToken {
		return Now(), nil
	}
	t, err := time.Parse(apiDateLayout, s)
	if err != nil {
		return GameDate{}, fmt.Errorf("parse game date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// IsNow reports whether the date is the "now" sentinel.
func (d GameDate) IsNow() bool {
	return !d.explicit
}

// Time returns the underlying day for an explicit date. The sentinel
// resolves to the current day at the moment of the call.
func (d GameDate) Time() time.Time {
	if d.explicit {
		return d.day
	}
	return DateOf(timeNow()).day
}

// APIString formats the date for a request path: the "now" token for
// the sentinel, otherwise YYYY-MM-DD. The sentinel never resolves to a
// computed date string here; the API does that server side.
func (d GameDate) APIString() string {
	if !d.explicit {
		return nowToken
	}
	return d.day.Format(apiDateLayout)
}

// AddDays shifts the date by n days (n may be negative). The "now"
// sentinel resolves to today first, so the result is always explicit.
func (d GameDate) AddDays(n int) GameDate {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d GameDate) String() string {
	return d.APIString()
}

// Season identifies a two-year NHL season by its starting year. The
// API encodes a season as both years packed into one integer, e.g.
// 20232024 for the 2023-2024 season.
type Season struct {
	StartYear int
}

// NewSeason returns the season starting in startYear. The caller is
// trusted to pass a sane year; parsing paths validate strictly.
func NewSeason(startYear int) Season {
	return Season{StartYear: startYear}
}

// SeasonFromYears builds a season from both years, rejecting pairs
// that are not consecutive.
func SeasonFromYears(startYear, endYear int) (Season, error) {
	if endYear != startYear+1 {
		return Season{}, fmt.Errorf("invalid season years %d-%d: end year must be start year + 1", startYear, endYear)
	}
	return Season{StartYear: startYear}, nil
}

// ParseSeason parses the packed YYYYYYYY form, rejecting anything that
// is not two consecutive four-digit years.
func ParseSeason(s string) (Season, error) {
	if len(s) != 8 {
		return Season{}, fmt.Errorf("parse season %q: want 8 digits", s)
	}
	start, err := strconv.Atoi(s[:4])
	if err != nil {
		return Season{}, fmt.Errorf("parse season %q: %w", s, err)
	}
	end, err := strconv.Atoi(s[4:])
	if err != nil {
		return Season{}, fmt.Errorf("parse season %q: %w", s, err)
	}
	return SeasonFromYears(start, end)
}

// SeasonFromID converts the packed integer form (20232024) back into a
// Season, with the same validation as ParseSeason.
func SeasonFromID(id int64) (Season, error) {
	return ParseSeason(strconv.FormatInt(id, 10))
}

// CurrentSeason derives the season in progress from the current date:
// before seasonRolloverMonth the previous calendar year's season is
// still running.
func CurrentSeason() Season {
	now := timeNow()
	year := now.Year()
	if now.Month() < seasonRolloverMonth {
		year--
	}
	return NewSeason(year)
}

// EndYear returns the season's second year.
func (s Season) EndYear() int {
	return s.StartYear + 1
}

// ID returns the packed integer form, e.g. 20232024.
func (s Season) ID() int64 {
	id, _ := strconv.ParseInt(s.String(), 10, 64)
	return id
}

// String returns the packed YYYYYYYY form the API expects.
func (s Season) String() string {
	return fmt.Sprintf("%04d%04d", s.StartYear, s.EndYear())
}
