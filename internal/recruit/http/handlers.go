// Package http is the authoritative boundary for application submissions:
// it re-validates every payload and persists through the configured policy.
package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iitm-tech-society/recruit-backend/config"
	"github.com/iitm-tech-society/recruit-backend/internal/catalog"
	"github.com/iitm-tech-society/recruit-backend/internal/recruit/domain"
	"github.com/iitm-tech-society/recruit-backend/internal/recruit/validate"
)

// Store is what the handler needs from the persistence layer.
type Store interface {
	Upsert(ctx context.Context, app domain.Application) (*domain.Application, error)
	Insert(ctx context.Context, app domain.Application) (*domain.Application, error)
	GetByEmail(ctx context.Context, email string) (*domain.Application, error)
	List(ctx context.Context) ([]domain.Application, error)
}

type Handler struct {
	store  Store
	rules  *validate.Rules
	policy config.SubmissionPolicy
	now    func() time.Time
}

func NewHandler(store Store, rules *validate.Rules, policy config.SubmissionPolicy) *Handler {
	return &Handler{
		store:  store,
		rules:  rules,
		policy: policy,
		now:    time.Now,
	}
}

func (h *Handler) submit(c *gin.Context) {
	var sub domain.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
		return
	}

	// Email first: it is the record key, nothing proceeds without it.
	if fe := h.rules.Field(sub, "email"); fe != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: fe.Message})
		return
	}

	if field := validate.Missing(sub); field != "" {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "Missing required field: " + field})
		return
	}

	if errs := h.rules.Schema(sub); len(errs) > 0 {
		details := make([]string, 0, len(errs))
		for _, fe := range errs {
			details = append(details, fe.Error())
		}
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "Validation failed.", Details: details})
		return
	}

	record := sub.Record()

	var (
		stored *domain.Application
		err    error
	)
	switch h.policy {
	case config.PolicyInsert:
		stored, err = h.store.Insert(c.Request.Context(), record)
	default:
		stored, err = h.store.Upsert(c.Request.Context(), record)
	}
	if err != nil {
		log.Printf("[recruit] submission write failed email=%s err=%v", sub.Email, err)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "An error occurred while processing your application.",
		})
		return
	}

	log.Printf("[recruit] application stored id=%s email=%s policy=%s", stored.ID, stored.Email, h.policy)
	c.JSON(http.StatusOK, Response{Success: true, Message: "Application submitted successfully."})
}

func (h *Handler) options(c *gin.Context) {
	teams := make([]TeamOption, 0, len(catalog.Teams))
	for _, t := range catalog.Teams {
		teams = append(teams, TeamOption{Name: t, Description: catalog.TeamDescription(t)})
	}

	c.JSON(http.StatusOK, OptionsResponse{
		DegreeTypes:     catalog.DegreeTypes,
		Years:           catalog.Years,
		Houses:          catalog.Houses,
		Domains:         catalog.Domains,
		Teams:           teams,
		TimeCommitments: catalog.TimeCommitments,
		InterviewDates:  catalog.SelectableInterviewDates(h.now()),
		InterviewTimes:  catalog.InterviewTimes,
	})
}

func (h *Handler) getByEmail(c *gin.Context) {
	email := c.Param("email")
	if !validate.ValidEmail(email) {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid email"})
		return
	}

	app, err := h.store.GetByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, Response{Success: false, Error: "application not found"})
			return
		}
		log.Printf("[recruit] read failed email=%s err=%v", email, err)
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "application": app})
}

func (h *Handler) list(c *gin.Context) {
	apps, err := h.store.List(c.Request.Context())
	if err != nil {
		log.Printf("[recruit] list failed err=%v", err)
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "applications": apps})
}
