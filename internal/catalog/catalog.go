// Package catalog holds the fixed field catalogs the recruitment form is
// built from: every enum-valued field must take its value from here.
package catalog

import "time"

// DateLayout is the wire format for interview dates, e.g. "May 5, 2025".
const DateLayout = "January 2, 2006"

var DegreeTypes = []string{
	"Standalone Degree", "Dual Degree", "Working Professional", "Intern",
}

var Years = []string{"Foundation", "Diploma", "Degree"}

var Houses = []string{
	"Wayanad", "Sundarbans", "Saranda", "Pichavaram", "Nilgiri", "Namdapha",
	"Nallamala", "Kaziranga", "Kanha", "Gir", "Corbet", "Bandipur",
}

var Domains = []string{
	"Cybersecurity", "Web Development", "Web3", "Competitive Programming", "AI/ML",
}

var Teams = []string{
	"Content Team", "Technical Team", "Outreach Team", "Sponsorship Team", "UI/UX",
}

var TimeCommitments = []string{
	"Less than 5 hours/week", "5-10 hours/week", "10-15 hours/week",
	"More than 15 hours/week", "Only weekends", "Only weekdays",
}

var InterviewDates = []string{
	"May 5, 2025", "May 6, 2025", "May 7, 2025", "May 8, 2025",
	"May 9, 2025", "May 10, 2025", "May 11, 2025", "May 12, 2025",
}

var InterviewTimes = []string{
	"3:00 PM", "4:00 PM", "5:00 PM", "6:00 PM",
	"7:00 PM", "8:00 PM", "9:00 PM", "10:00 PM",
}

var teamDescriptions = map[string]string{
	"Content Team":     "Creating blogs, documentation, and educational content",
	"Technical Team":   "Building and maintaining tech projects",
	"Outreach Team":    "Managing community relations and partnerships",
	"Sponsorship Team": "Securing funding and sponsor relationships",
	"UI/UX":            "Designing user interfaces and experiences",
}

// TeamDescription returns the one-line blurb shown next to a team name, or
// an empty string for an unknown team.
func TeamDescription(team string) string {
	return teamDescriptions[team]
}

// NewInterviewWindow generates a window of consecutive interview dates
// beginning at start. Used when a recruitment round rolls over.
func NewInterviewWindow(start time.Time, days int) []string {
	dates := make([]string, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, start.AddDate(0, 0, i).Format(DateLayout))
	}
	return dates
}

// DateHasPassed reports whether date falls strictly before the current
// calendar day. Unparseable dates are treated as passed so they can never
// be selected.
func DateHasPassed(date string, now time.Time) bool {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return true
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return d.Before(today)
}

// SelectableInterviewDates returns the interview window with past dates
// excluded.
func SelectableInterviewDates(now time.Time) []string {
	out := make([]string, 0, len(InterviewDates))
	for _, d := range InterviewDates {
		if !DateHasPassed(d, now) {
			out = append(out, d)
		}
	}
	return out
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func ValidDegreeType(v string) bool     { return contains(DegreeTypes, v) }
func ValidYear(v string) bool           { return contains(Years, v) }
func ValidHouse(v string) bool          { return contains(Houses, v) }
func ValidDomain(v string) bool         { return contains(Domains, v) }
func ValidTeam(v string) bool           { return contains(Teams, v) }
func ValidTimeCommitment(v string) bool { return contains(TimeCommitments, v) }
func ValidInterviewDate(v string) bool  { return contains(InterviewDates, v) }
func ValidInterviewTime(v string) bool  { return contains(InterviewTimes, v) }
