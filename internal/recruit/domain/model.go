package domain

import (
	"time"

	"github.com/google/uuid"
)

// Submission is the payload a candidate sends: the full application record
// minus store-assigned identity and timestamps. Decoding into this closed
// struct is the allow-list; unknown payload fields never reach storage.
type Submission struct {
	Email          string   `json:"email"`
	FullName       string   `json:"fullName"`
	DegreeType     string   `json:"degreeType"`
	Year           string   `json:"year"`
	House          string   `json:"house"`
	LinkedIn       string   `json:"linkedin,omitempty"`
	GitHub         string   `json:"github,omitempty"`
	Domains        []string `json:"domains"`
	DomainWhy      string   `json:"domainWhy,omitempty"`
	Teams          []string `json:"teams"`
	TeamWhy        string   `json:"teamWhy,omitempty"`
	Experience     string   `json:"experience"`
	Motivation     string   `json:"motivation,omitempty"`
	TimeCommitment string   `json:"timeCommitment"`
	InterviewDates []string `json:"interviewDates"`
	InterviewTimes []string `json:"interviewTimes"`
	AdditionalInfo string   `json:"additionalInfo,omitempty"`
}

// Application is one stored candidate submission.
type Application struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"fullName"`
	DegreeType     string    `json:"degreeType"`
	Year           string    `json:"year"`
	House          string    `json:"house"`
	LinkedIn       string    `json:"linkedin,omitempty"`
	GitHub         string    `json:"github,omitempty"`
	Domains        []string  `json:"domains"`
	DomainWhy      string    `json:"domainWhy,omitempty"`
	Teams          []string  `json:"teams"`
	TeamWhy        string    `json:"teamWhy,omitempty"`
	Experience     string    `json:"experience"`
	Motivation     string    `json:"motivation,omitempty"`
	TimeCommitment string    `json:"timeCommitment"`
	InterviewDates []string  `json:"interviewDates"`
	InterviewTimes []string  `json:"interviewTimes"`
	AdditionalInfo string    `json:"additionalInfo,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Record maps a validated submission onto an Application, field by field.
func (s Submission) Record() Application {
	return Application{
		Email:          s.Email,
		FullName:       s.FullName,
		DegreeType:     s.DegreeType,
		Year:           s.Year,
		House:          s.House,
		LinkedIn:       s.LinkedIn,
		GitHub:         s.GitHub,
		Domains:        s.Domains,
		DomainWhy:      s.DomainWhy,
		Teams:          s.Teams,
		TeamWhy:        s.TeamWhy,
		Experience:     s.Experience,
		Motivation:     s.Motivation,
		TimeCommitment: s.TimeCommitment,
		InterviewDates: s.InterviewDates,
		InterviewTimes: s.InterviewTimes,
		AdditionalInfo: s.AdditionalInfo,
	}
}
