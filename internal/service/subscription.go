package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	"github.com/Arittroskr32/CyberPiT-backend/internal/errors"
	"github.com/Arittroskr32/CyberPiT-backend/internal/logger"
	"github.com/Arittroskr32/CyberPiT-backend/internal/mailer"
)

// maxSurfacedSendErrors caps how many per-recipient failures a newsletter
// response carries. The full list still goes to the log.
const maxSurfacedSendErrors = 5

// SubscribeStatus reports what a subscribe call actually did, so the
// surface can greet a returning subscriber differently from a duplicate.
type SubscribeStatus int

const (
	SubscribedNew SubscribeStatus = iota
	SubscribedAlready
	SubscribedAgain
)

type SubscriptionService interface {
	Subscribe(email string) (domain.Subscription, SubscribeStatus, error)
	List() ([]domain.Subscription, error)
	Unsubscribe(token string) error
	SetActive(id int64, active bool) (domain.Subscription, error)
	Delete(id int64) error
	DeleteBatch(ids []int64) (int64, error)
	DeleteAll() (int64, error)
	SendNewsletter(ctx context.Context, subject, body string) (mailer.Outcome, error)
}

type SubscriptionStorage interface {
	SaveSubscription(email, token string) (domain.Subscription, bool, bool, error)
	Subscriptions() ([]domain.Subscription, error)
	ActiveSubscriberEmails() ([]string, error)
	DeactivateSubscription(token string) error
	SetSubscriptionActive(id int64, active bool) (domain.Subscription, error)
	DeleteSubscription(id int64) error
	DeleteSubscriptions(ids []int64) (int64, error)
	DeleteAllSubscriptions() (int64, error)
}

// NewsletterDispatcher sends one message to many recipients.
type NewsletterDispatcher interface {
	Dispatch(ctx context.Context, recipients []string, msg mailer.Message) mailer.Outcome
}

type Subscriptions struct {
	storage    SubscriptionStorage
	dispatcher NewsletterDispatcher
}

func NewSubscriptions(storage SubscriptionStorage, dispatcher NewsletterDispatcher) *Subscriptions {
	return &Subscriptions{storage: storage, dispatcher: dispatcher}
}

// Subscribe adds an address to the list or reactivates it. The status
// distinguishes a fresh signup, a still-active duplicate, and an
// unsubscribed address coming back.
func (s *Subscriptions) Subscribe(email string) (domain.Subscription, SubscribeStatus, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return domain.Subscription{}, SubscribedNew, errors.BadRequest("Email is required")
	}
	sub, existed, wasActive, err := s.storage.SaveSubscription(email, uuid.NewString())
	if err != nil {
		return domain.Subscription{}, SubscribedNew, err
	}
	switch {
	case !existed:
		return sub, SubscribedNew, nil
	case wasActive:
		return sub, SubscribedAlready, nil
	default:
		return sub, SubscribedAgain, nil
	}
}

func (s *Subscriptions) List() ([]domain.Subscription, error) {
	return s.storage.Subscriptions()
}

func (s *Subscriptions) Unsubscribe(token string) error {
	return s.storage.DeactivateSubscription(token)
}

// SetActive toggles a subscriber from the admin panel without touching
// the unsubscribe token.
func (s *Subscriptions) SetActive(id int64, active bool) (domain.Subscription, error) {
	return s.storage.SetSubscriptionActive(id, active)
}

func (s *Subscriptions) Delete(id int64) error {
	return s.storage.DeleteSubscription(id)
}

func (s *Subscriptions) DeleteBatch(ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, errors.BadRequest("No subscription ids provided")
	}
	return s.storage.DeleteSubscriptions(ids)
}

func (s *Subscriptions) DeleteAll() (int64, error) {
	return s.storage.DeleteAllSubscriptions()
}

// SendNewsletter pushes a message to every active subscriber. The outcome
// reports per-recipient results; surfaced errors are capped so a huge list
// can't blow up the response.
func (s *Subscriptions) SendNewsletter(ctx context.Context, subject, body string) (mailer.Outcome, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" || strings.TrimSpace(body) == "" {
		return mailer.Outcome{}, errors.BadRequest("Subject and message are required")
	}

	recipients, err := s.storage.ActiveSubscriberEmails()
	if err != nil {
		return mailer.Outcome{}, err
	}
	if len(recipients) == 0 {
		return mailer.Outcome{}, errors.BadRequest("No active subscribers")
	}

	outcome := s.dispatcher.Dispatch(ctx, recipients, mailer.Message{Subject: subject, Body: body})
	if len(outcome.Errors) > maxSurfacedSendErrors {
		for _, e := range outcome.Errors[maxSurfacedSendErrors:] {
			logger.Log.Error("newsletter send failure", "error", e)
		}
		outcome.Errors = outcome.Errors[:maxSurfacedSendErrors]
	}
	return outcome, nil
}
