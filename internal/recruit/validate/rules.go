// Package validate is the single declarative rule set for application
// fields. The form wizard and the submission handler both evaluate these
// rules, so the two enforcement points cannot drift.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/iitm-tech-society/recruit-backend/internal/catalog"
	"github.com/iitm-tech-society/recruit-backend/internal/recruit/domain"
)

var (
	emailPattern    = regexp.MustCompile(`(?i)^[a-zA-Z0-9._%+-]+@(ds|es)\.study\.iitm\.ac\.in$`)
	linkedinPattern = regexp.MustCompile(`(?i)^(https?://)?(www\.)?linkedin\.com/in/[a-zA-Z0-9_-]+/?$`)
	githubPattern   = regexp.MustCompile(`(?i)^(https?://)?(www\.)?github\.com/[a-zA-Z0-9_-]+/?$`)
)

// FieldError is one failed rule, addressed by the field's wire name.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Rules evaluates field constraints. The experience minimum varies between
// recruitment rounds, so it is injected rather than fixed.
type Rules struct {
	ExperienceMin int
}

func NewRules(experienceMin int) *Rules {
	return &Rules{ExperienceMin: experienceMin}
}

// RequiredFields is the precondition order the submission handler checks
// after the email itself.
var RequiredFields = []string{"fullName", "degreeType", "year", "house", "experience", "timeCommitment"}

// StepFields returns the fields that gate each wizard step. The review step
// has no fields of its own.
func StepFields(step int) []string {
	switch step {
	case 0:
		return []string{"email", "fullName", "degreeType", "year", "house", "linkedin", "github"}
	case 1:
		return []string{"domains", "experience"}
	case 2:
		return []string{"teams", "timeCommitment"}
	case 3:
		return []string{"interviewDates", "interviewTimes"}
	default:
		return nil
	}
}

// Field evaluates every rule for one field and returns the first failure,
// or nil if the value is acceptable.
func (r *Rules) Field(sub domain.Submission, field string) *FieldError {
	fail := func(msg string) *FieldError {
		return &FieldError{Field: field, Message: msg}
	}

	switch field {
	case "email":
		if strings.TrimSpace(sub.Email) == "" {
			return fail("Email is required")
		}
		if !emailPattern.MatchString(sub.Email) {
			return fail("Must be a valid IITM email (@ds.study.iitm.ac.in or @es.study.iitm.ac.in)")
		}
	case "fullName":
		if strings.TrimSpace(sub.FullName) == "" {
			return fail("Full name is required")
		}
	case "degreeType":
		if sub.DegreeType == "" {
			return fail("Please select your degree type")
		}
		if !catalog.ValidDegreeType(sub.DegreeType) {
			return fail(fmt.Sprintf("%q is not a recognized degree type", sub.DegreeType))
		}
	case "year":
		if sub.Year == "" {
			return fail("Please select your current level")
		}
		if !catalog.ValidYear(sub.Year) {
			return fail(fmt.Sprintf("%q is not a recognized level", sub.Year))
		}
	case "house":
		if sub.House == "" {
			return fail("Please select your house")
		}
		if !catalog.ValidHouse(sub.House) {
			return fail(fmt.Sprintf("%q is not a recognized house", sub.House))
		}
	case "linkedin":
		if sub.LinkedIn != "" && !linkedinPattern.MatchString(sub.LinkedIn) {
			return fail("Please enter a valid LinkedIn URL or leave it empty")
		}
	case "github":
		if sub.GitHub != "" && !githubPattern.MatchString(sub.GitHub) {
			return fail("Please enter a valid GitHub URL or leave it empty")
		}
	case "domains":
		if len(sub.Domains) == 0 {
			return fail("Select at least one domain of interest")
		}
		for _, d := range sub.Domains {
			if !catalog.ValidDomain(d) {
				return fail(fmt.Sprintf("%q is not a recognized domain", d))
			}
		}
	case "experience":
		if strings.TrimSpace(sub.Experience) == "" {
			return fail("Please describe your technical experience")
		}
		if len(sub.Experience) < r.ExperienceMin {
			return fail(fmt.Sprintf("Please provide at least %d characters", r.ExperienceMin))
		}
	case "teams":
		if len(sub.Teams) == 0 {
			return fail("Select at least one team you'd like to join")
		}
		for _, t := range sub.Teams {
			if !catalog.ValidTeam(t) {
				return fail(fmt.Sprintf("%q is not a recognized team", t))
			}
		}
	case "timeCommitment":
		if sub.TimeCommitment == "" {
			return fail("Please estimate your time commitment")
		}
		if !catalog.ValidTimeCommitment(sub.TimeCommitment) {
			return fail(fmt.Sprintf("%q is not a recognized time commitment", sub.TimeCommitment))
		}
	case "interviewDates":
		if len(sub.InterviewDates) == 0 {
			return fail("Select at least one available date")
		}
		for _, d := range sub.InterviewDates {
			if !catalog.ValidInterviewDate(d) {
				return fail(fmt.Sprintf("%q is not an offered interview date", d))
			}
		}
	case "interviewTimes":
		if len(sub.InterviewTimes) == 0 {
			return fail("Select at least one preferred time slot")
		}
		for _, t := range sub.InterviewTimes {
			if !catalog.ValidInterviewTime(t) {
				return fail(fmt.Sprintf("%q is not an offered time slot", t))
			}
		}
	}

	return nil
}

// Step evaluates the rules gating one wizard step, in field order.
func (r *Rules) Step(sub domain.Submission, step int) []FieldError {
	var errs []FieldError
	for _, f := range StepFields(step) {
		if fe := r.Field(sub, f); fe != nil {
			errs = append(errs, *fe)
		}
	}
	return errs
}

// All evaluates the union of every step's rules, for the final submit.
func (r *Rules) All(sub domain.Submission) []FieldError {
	var errs []FieldError
	for step := 0; step <= 3; step++ {
		errs = append(errs, r.Step(sub, step)...)
	}
	return errs
}

// ValidEmail reports whether the address matches the institutional pattern.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Missing returns the wire name of the first absent required field, or ""
// when all are present. Presence only: enum membership and length bounds
// are a separate, schema-level concern.
func Missing(sub domain.Submission) string {
	for _, f := range RequiredFields {
		var v string
		switch f {
		case "fullName":
			v = sub.FullName
		case "degreeType":
			v = sub.DegreeType
		case "year":
			v = sub.Year
		case "house":
			v = sub.House
		case "experience":
			v = sub.Experience
		case "timeCommitment":
			v = sub.TimeCommitment
		}
		if strings.TrimSpace(v) == "" {
			return f
		}
	}
	return ""
}

// Schema evaluates every non-presence constraint: enum membership, the
// experience minimum, URL patterns, and non-empty multi-selects. Failures
// come back one per field for the handler's details list.
func (r *Rules) Schema(sub domain.Submission) []FieldError {
	var errs []FieldError
	fields := []string{
		"degreeType", "year", "house", "linkedin", "github", "domains",
		"experience", "teams", "timeCommitment", "interviewDates", "interviewTimes",
	}
	for _, f := range fields {
		if fe := r.Field(sub, f); fe != nil {
			errs = append(errs, *fe)
		}
	}
	return errs
}
