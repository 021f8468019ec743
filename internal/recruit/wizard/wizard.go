// Package wizard drives a candidate through the five-step application flow,
// accumulating one draft submission and gating each step on its own fields.
package wizard

import (
	"context"
	"time"

	"github.com/iitm-tech-society/recruit-backend/internal/catalog"
	"github.com/iitm-tech-society/recruit-backend/internal/recruit/domain"
	"github.com/iitm-tech-society/recruit-backend/internal/recruit/validate"
)

// StepNames are the ordered wizard stages.
var StepNames = []string{"Basic Info", "Expertise", "Teams & Commitment", "Interview", "Review & Submit"}

const lastStep = 4

type NotificationKind string

const (
	NoticeSuccess NotificationKind = "success"
	NoticeError   NotificationKind = "error"
	NoticeWarning NotificationKind = "warning"
)

// Notification is the transient message shown after a transition attempt.
type Notification struct {
	Kind    NotificationKind
	Message string
}

// Submitter sends a completed submission to the server. A returned error's
// message is what the candidate sees.
type Submitter interface {
	Submit(ctx context.Context, sub domain.Submission) error
}

// Wizard holds the in-memory draft. It is discarded on successful
// submission; there is no resume capability.
type Wizard struct {
	rules     *validate.Rules
	submitter Submitter
	now       func() time.Time

	step     int
	draft    domain.Submission
	notice   *Notification
	inFlight bool
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithClock overrides the time source used for past-date checks.
func WithClock(now func() time.Time) Option {
	return func(w *Wizard) { w.now = now }
}

func New(rules *validate.Rules, submitter Submitter, opts ...Option) *Wizard {
	w := &Wizard{
		rules:     rules,
		submitter: submitter,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Wizard) Step() int { return w.step }

// Progress is the percentage shown on the progress bar: ceil(step/4 * 100).
func (w *Wizard) Progress() int { return w.step * 100 / lastStep }

// Draft returns the accumulated field values.
func (w *Wizard) Draft() domain.Submission { return w.draft }

// Notice returns and clears the pending transient notification.
func (w *Wizard) Notice() *Notification {
	n := w.notice
	w.notice = nil
	return n
}

func (w *Wizard) notify(kind NotificationKind, msg string) {
	w.notice = &Notification{Kind: kind, Message: msg}
}

// Set assigns a scalar field of the draft by its wire name.
func (w *Wizard) Set(field, value string) {
	switch field {
	case "email":
		w.draft.Email = value
	case "fullName":
		w.draft.FullName = value
	case "degreeType":
		w.draft.DegreeType = value
	case "year":
		w.draft.Year = value
	case "house":
		w.draft.House = value
	case "linkedin":
		w.draft.LinkedIn = value
	case "github":
		w.draft.GitHub = value
	case "domainWhy":
		w.draft.DomainWhy = value
	case "teamWhy":
		w.draft.TeamWhy = value
	case "experience":
		w.draft.Experience = value
	case "motivation":
		w.draft.Motivation = value
	case "timeCommitment":
		w.draft.TimeCommitment = value
	case "additionalInfo":
		w.draft.AdditionalInfo = value
	}
}

// ToggleDomain adds or removes a domain selection.
func (w *Wizard) ToggleDomain(v string) { w.draft.Domains = toggle(w.draft.Domains, v) }

// ToggleTeam adds or removes a team selection.
func (w *Wizard) ToggleTeam(v string) { w.draft.Teams = toggle(w.draft.Teams, v) }

// ToggleInterviewTime adds or removes a time-slot selection.
func (w *Wizard) ToggleInterviewTime(v string) { w.draft.InterviewTimes = toggle(w.draft.InterviewTimes, v) }

// ToggleInterviewDate adds or removes an interview-date selection. A date
// that has already passed leaves the selection unchanged and raises a
// transient warning.
func (w *Wizard) ToggleInterviewDate(v string) {
	if catalog.DateHasPassed(v, w.now()) {
		w.notify(NoticeWarning, v+" has already passed and cannot be selected.")
		return
	}
	w.draft.InterviewDates = toggle(w.draft.InterviewDates, v)
}

func toggle(set []string, v string) []string {
	for i, s := range set {
		if s == v {
			return append(set[:i:i], set[i+1:]...)
		}
	}
	return append(set, v)
}

// Advance validates the active step's fields and moves forward when they
// all pass. On failure the wizard stays put and the first failing field's
// message surfaces as a warning.
func (w *Wizard) Advance() bool {
	errs := w.rules.Step(w.draft, w.step)
	if len(errs) > 0 {
		w.notify(NoticeWarning, errs[0].Message)
		return false
	}
	if w.step < lastStep {
		w.step++
	}
	return true
}

// Retreat moves back one step unconditionally.
func (w *Wizard) Retreat() {
	if w.step > 0 {
		w.step--
	}
}

// Submit runs the union of all step rules, then hands the record to the
// submitter. Only meaningful on the review step; a submission already in
// flight is ignored so one candidate cannot double-submit.
func (w *Wizard) Submit(ctx context.Context) bool {
	if w.step != lastStep || w.inFlight {
		return false
	}
	if errs := w.rules.All(w.draft); len(errs) > 0 {
		w.notify(NoticeWarning, errs[0].Message)
		return false
	}

	w.inFlight = true
	err := w.submitter.Submit(ctx, w.draft)
	w.inFlight = false

	if err != nil {
		w.notify(NoticeError, err.Error())
		return false
	}

	w.draft = domain.Submission{}
	w.step = 0
	w.notify(NoticeSuccess, "Application submitted successfully!")
	return true
}
