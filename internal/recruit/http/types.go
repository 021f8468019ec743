package http

// Response is the envelope every recruit endpoint answers with.
type Response struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
	Details []string `json:"details,omitempty"`
}

// TeamOption pairs a team name with the blurb shown on the form.
type TeamOption struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// OptionsResponse is the field catalog the front end renders from. Interview
// dates only include days that have not passed.
type OptionsResponse struct {
	DegreeTypes     []string     `json:"degreeTypes"`
	Years           []string     `json:"years"`
	Houses          []string     `json:"houses"`
	Domains         []string     `json:"domains"`
	Teams           []TeamOption `json:"teams"`
	TimeCommitments []string     `json:"timeCommitments"`
	InterviewDates  []string     `json:"interviewDates"`
	InterviewTimes  []string     `json:"interviewTimes"`
}
