// internal/planner/schedule.go
package planner

import (
	"regexp"
	"strconv"
	"strings"
)

// Schedule is the inferred weekly rhythm: how many sessions, and on which
// named days when the user listed any. Days keep the week order, not the
// order they appeared in the answer.
type Schedule struct {
	Sessions int
	Days     []string // capitalized French day names, may be empty
}

// weekDays in calendar order; offsets are days from Monday, used to place
// session dates inside the week.
var weekDays = []struct {
	name   string // folded form, matched as substring
	label  string // display form
	offset int
}{
	{"lundi", "Lundi", 0},
	{"mardi", "Mardi", 1},
	{"mercredi", "Mercredi", 2},
	{"jeudi", "Jeudi", 3},
	{"vendredi", "Vendredi", 4},
	{"samedi", "Samedi", 5},
	{"dimanche", "Dimanche", 6},
}

var (
	eveningPattern  = regexp.MustCompile(`soiree|soirees|le soir|en soiree`)
	everyDayPattern = regexp.MustCompile(`tous les jours|toute la semaine|chaque jour|7j/7`)
	// "3x/semaine", "3 fois par semaine", "4 jours", "4 seances"
	countPattern = regexp.MustCompile(`(\d+)\s*(?:x|fois|jours?|seances?|entrainements?)`)
)

const defaultSessions = 3

// clampSessions bounds a weekly session count to [1,6].
func clampSessions(n int) int {
	if n < 1 {
		return 1
	}
	if n > 6 {
		return 6
	}
	return n
}

// InferSchedule derives the weekly session count and day labels from the raw
// availability answer. fallback is used when the text carries no usable
// signal; pass 0 for the standard default of 3.
//
// Priority order:
//  1. Two or more named weekdays plus an evening mention forces 6 sessions
//     (users who list specific days and add they are free in the evenings are
//     treated as "very available"; intentional, pending product review).
//  2. An explicit count ("3x/semaine", "4 jours"), clamped to [1,6].
//  3. An "every day" phrase means 6.
//  4. Otherwise the number of named weekdays, when any.
//  5. Otherwise the fallback.
func InferSchedule(availabilityText string, fallback int) Schedule {
	if fallback <= 0 {
		fallback = defaultSessions
	}
	folded := Fold(availabilityText)

	var days []string
	for _, wd := range weekDays {
		if strings.Contains(folded, wd.name) {
			days = append(days, wd.label)
		}
	}

	if len(days) >= 2 && eveningPattern.MatchString(folded) {
		return Schedule{Sessions: 6, Days: days}
	}

	if m := countPattern.FindStringSubmatch(folded); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return Schedule{Sessions: clampSessions(n), Days: days}
		}
	}

	if everyDayPattern.MatchString(folded) {
		return Schedule{Sessions: 6, Days: days}
	}

	if len(days) > 0 {
		return Schedule{Sessions: clampSessions(len(days)), Days: days}
	}

	return Schedule{Sessions: clampSessions(fallback)}
}

// dayOffset returns the position of a day label relative to Monday, or -1 for
// an unknown label.
func dayOffset(label string) int {
	for _, wd := range weekDays {
		if wd.label == label {
			return wd.offset
		}
	}
	return -1
}
