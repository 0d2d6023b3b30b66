package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/gulfrate/gulfrate/internal/dto"
	"github.com/gulfrate/gulfrate/internal/model"
)

type LeadStore interface {
	Insert(ctx context.Context, lead *model.Lead) error
	MarkEmailSent(ctx context.Context, id int64) error
}

type Mailer interface {
	SendLeadConfirmation(ctx context.Context, lead *model.Lead) error
}

type EventPublisher interface {
	PublishLeadCreated(ctx context.Context, lead *model.Lead) error
}

type validationErr struct {
	field   string
	message string
}

func (e *validationErr) Error() string {
	return fmt.Sprintf("%s: %s", e.field, e.message)
}

// AsFieldError reports whether err is a field-level validation failure.
func AsFieldError(err error) (dto.FieldError, bool) {
	if ve, ok := err.(*validationErr); ok {
		return dto.FieldError{Field: ve.field, Message: ve.message}, true
	}
	return dto.FieldError{}, false
}

type LeadService struct {
	leads  LeadStore
	mailer Mailer
	events EventPublisher
}

func NewLeadService(leads LeadStore, mailer Mailer, events EventPublisher) *LeadService {
	return &LeadService{leads: leads, mailer: mailer, events: events}
}

// CreateLead persists a rate-alert subscription and dispatches a confirmation
// email. The lead row commits first; the email, the email_sent flip and the
// lead-created event are all best-effort and never fail the request.
func (s *LeadService) CreateLead(ctx context.Context, req *dto.CreateLeadRequest) (*model.Lead, error) {
	if !req.Consent {
		return nil, &validationErr{field: "consent", message: "You must agree to receive alerts"}
	}

	lead := &model.Lead{
		FullName:     req.FullName,
		Email:        req.Email,
		CountryCode:  req.CountryCode,
		Phone:        req.Phone,
		FromCurrency: req.FromCurrency,
		ToCurrency:   req.ToCurrency,
		Consent:      req.Consent,
		CountryCode2: req.CountryCode2,
	}
	if req.TargetRate != "" {
		lead.TargetRate = &req.TargetRate
	}
	if lead.CountryCode2 == "" {
		lead.CountryCode2 = "sa"
	}

	if err := s.leads.Insert(ctx, lead); err != nil {
		return nil, err
	}

	if err := s.mailer.SendLeadConfirmation(ctx, lead); err != nil {
		log.Warn().Err(err).Int64("lead_id", lead.ID).Msg("confirmation email not sent")
	} else if err := s.leads.MarkEmailSent(ctx, lead.ID); err != nil {
		log.Warn().Err(err).Int64("lead_id", lead.ID).Msg("failed to mark email sent")
	} else {
		lead.EmailSent = true
	}

	if s.events != nil {
		if err := s.events.PublishLeadCreated(ctx, lead); err != nil {
			log.Warn().Err(err).Int64("lead_id", lead.ID).Msg("lead event not published")
		}
	}

	return lead, nil
}
