package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iitm-tech-society/recruit-backend/internal/recruit/domain"
)

func validSubmission() domain.Submission {
	return domain.Submission{
		Email:          "21f1000000@ds.study.iitm.ac.in",
		FullName:       "Asha Verma",
		DegreeType:     "Standalone Degree",
		Year:           "Diploma",
		House:          "Kanha",
		Domains:        []string{"Web Development"},
		Experience:     strings.Repeat("Built and shipped things. ", 5),
		Teams:          []string{"Technical Team"},
		TimeCommitment: "5-10 hours/week",
		InterviewDates: []string{"May 5, 2025"},
		InterviewTimes: []string{"3:00 PM"},
	}
}

func TestValidEmail(t *testing.T) {
	t.Run("ds suffix accepted", func(t *testing.T) {
		assert.True(t, ValidEmail("21f1000000@ds.study.iitm.ac.in"))
	})

	t.Run("es suffix accepted", func(t *testing.T) {
		assert.True(t, ValidEmail("22f2000000@es.study.iitm.ac.in"))
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.True(t, ValidEmail("21F1000000@DS.STUDY.IITM.AC.IN"))
	})

	t.Run("other domains rejected", func(t *testing.T) {
		assert.False(t, ValidEmail("someone@gmail.com"))
		assert.False(t, ValidEmail("someone@study.iitm.ac.in"))
		assert.False(t, ValidEmail("someone@cs.study.iitm.ac.in"))
	})

	t.Run("suffix must terminate the address", func(t *testing.T) {
		assert.False(t, ValidEmail("a@ds.study.iitm.ac.in.evil.com"))
	})
}

func TestFieldRules(t *testing.T) {
	rules := NewRules(50)

	t.Run("valid submission has no failures", func(t *testing.T) {
		assert.Empty(t, rules.All(validSubmission()))
	})

	t.Run("empty email", func(t *testing.T) {
		sub := validSubmission()
		sub.Email = ""
		fe := rules.Field(sub, "email")
		require.NotNil(t, fe)
		assert.Equal(t, "Email is required", fe.Message)
	})

	t.Run("empty domains", func(t *testing.T) {
		sub := validSubmission()
		sub.Domains = nil
		fe := rules.Field(sub, "domains")
		require.NotNil(t, fe)
		assert.Equal(t, "Select at least one domain of interest", fe.Message)
	})

	t.Run("unknown domain value", func(t *testing.T) {
		sub := validSubmission()
		sub.Domains = []string{"Astrology"}
		fe := rules.Field(sub, "domains")
		require.NotNil(t, fe)
		assert.Contains(t, fe.Message, "Astrology")
	})

	t.Run("short experience names the minimum", func(t *testing.T) {
		sub := validSubmission()
		sub.Experience = "too short"
		fe := rules.Field(sub, "experience")
		require.NotNil(t, fe)
		assert.Equal(t, "Please provide at least 50 characters", fe.Message)
	})

	t.Run("experience minimum is configurable", func(t *testing.T) {
		strict := NewRules(100)
		sub := validSubmission()
		sub.Experience = strings.Repeat("x", 80)

		assert.Nil(t, rules.Field(sub, "experience"))
		fe := strict.Field(sub, "experience")
		require.NotNil(t, fe)
		assert.Equal(t, "Please provide at least 100 characters", fe.Message)
	})

	t.Run("optional urls accept empty", func(t *testing.T) {
		sub := validSubmission()
		assert.Nil(t, rules.Field(sub, "linkedin"))
		assert.Nil(t, rules.Field(sub, "github"))
	})

	t.Run("optional urls validate when present", func(t *testing.T) {
		sub := validSubmission()
		sub.LinkedIn = "https://linkedin.com/in/asha-verma"
		sub.GitHub = "https://github.com/ashaverma"
		assert.Nil(t, rules.Field(sub, "linkedin"))
		assert.Nil(t, rules.Field(sub, "github"))

		sub.LinkedIn = "https://example.com/asha"
		sub.GitHub = "github.com/asha verma"
		assert.NotNil(t, rules.Field(sub, "linkedin"))
		assert.NotNil(t, rules.Field(sub, "github"))
	})
}

func TestStep(t *testing.T) {
	rules := NewRules(50)

	t.Run("step failures only cover that step's fields", func(t *testing.T) {
		sub := validSubmission()
		sub.Domains = nil
		sub.Teams = nil

		errs := rules.Step(sub, 1)
		require.Len(t, errs, 1)
		assert.Equal(t, "domains", errs[0].Field)
	})

	t.Run("review step has no fields", func(t *testing.T) {
		assert.Nil(t, StepFields(4))
		assert.Empty(t, rules.Step(domain.Submission{}, 4))
	})
}

func TestMissing(t *testing.T) {
	t.Run("complete submission", func(t *testing.T) {
		assert.Empty(t, Missing(validSubmission()))
	})

	t.Run("reports fields in precondition order", func(t *testing.T) {
		sub := validSubmission()
		sub.FullName = "  "
		sub.House = ""
		assert.Equal(t, "fullName", Missing(sub))
	})

	t.Run("each required field is detected", func(t *testing.T) {
		for _, field := range RequiredFields {
			sub := validSubmission()
			switch field {
			case "fullName":
				sub.FullName = ""
			case "degreeType":
				sub.DegreeType = ""
			case "year":
				sub.Year = ""
			case "house":
				sub.House = ""
			case "experience":
				sub.Experience = ""
			case "timeCommitment":
				sub.TimeCommitment = ""
			}
			assert.Equal(t, field, Missing(sub))
		}
	})
}

func TestSchema(t *testing.T) {
	rules := NewRules(50)

	t.Run("collects every enum violation", func(t *testing.T) {
		sub := validSubmission()
		sub.House = "Gryffindor"
		sub.TimeCommitment = "Whenever"

		errs := rules.Schema(sub)
		require.Len(t, errs, 2)
		fields := []string{errs[0].Field, errs[1].Field}
		assert.Contains(t, fields, "house")
		assert.Contains(t, fields, "timeCommitment")
	})
}
