package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	dto "workbase.com/workbase/internal/data_models"
	apperrors "workbase.com/workbase/internal/errors"
	"workbase.com/workbase/internal/integrations/gcal"
	model "workbase.com/workbase/internal/models"
	repository "workbase.com/workbase/internal/repositories"
)

const googlePullLimit = 50

// GoogleCalendar is the subset of the Google Calendar client the scheduler uses.
type GoogleCalendar interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	TokenSource(ctx context.Context, token *oauth2.Token) oauth2.TokenSource
	Upcoming(ctx context.Context, ts oauth2.TokenSource, from time.Time, max int64) ([]gcal.RemoteEvent, error)
	Insert(ctx context.Context, ts oauth2.TokenSource, ev gcal.RemoteEvent) (string, error)
	Delete(ctx context.Context, ts oauth2.TokenSource, id string) error
}

type CalendarService struct {
	repo   *repository.CalendarRepository
	google GoogleCalendar
	now    func() time.Time
}

// NewCalendarService builds the scheduler. google may be nil, in which case
// the sync operations report ErrCalendarUnavailable.
func NewCalendarService(repo *repository.CalendarRepository, google GoogleCalendar) *CalendarService {
	return &CalendarService{repo: repo, google: google, now: utcNow}
}

func (s *CalendarService) CreateEvent(ctx context.Context, ownerID string, req dto.CreateEventRequest) (*model.CalendarEvent, error) {
	title, err := requireText(req.Title, "title")
	if err != nil {
		return nil, err
	}
	if req.EndsAt.Before(req.StartsAt) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	now := s.now()
	event := &model.CalendarEvent{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       title,
		Description: req.Description,
		StartsAt:    req.StartsAt.UTC(),
		EndsAt:      req.EndsAt.UTC(),
		AllDay:      req.AllDay,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (s *CalendarService) GetEvent(ctx context.Context, ownerID, id string) (*model.CalendarEvent, error) {
	return s.repo.FindByID(ctx, ownerID, id)
}

func (s *CalendarService) ListEvents(ctx context.Context, ownerID string, from, to time.Time) ([]model.CalendarEvent, error) {
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return nil, apperrors.ErrInvalidTimeRange
	}
	return s.repo.ListRange(ctx, ownerID, from, to)
}

func (s *CalendarService) UpdateEvent(ctx context.Context, ownerID, id string, req dto.UpdateEventRequest) (*model.CalendarEvent, error) {
	event, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if event.Title, err = requireText(*req.Title, "title"); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.StartsAt != nil {
		event.StartsAt = req.StartsAt.UTC()
	}
	if req.EndsAt != nil {
		event.EndsAt = req.EndsAt.UTC()
	}
	if req.AllDay != nil {
		event.AllDay = *req.AllDay
	}
	if event.EndsAt.Before(event.StartsAt) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	event.Version = req.Version
	if err := s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	event.UpdatedAt = s.now()
	return event, nil
}

// DeleteEvent removes the local event. A linked Google event is deleted too;
// a failure there is logged and does not keep the local event alive.
func (s *CalendarService) DeleteEvent(ctx context.Context, ownerID, id string) error {
	event, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}

	if event.GoogleEventID == "" || s.google == nil {
		return nil
	}
	ts, err := s.tokenSource(ctx, ownerID)
	if err != nil {
		return nil
	}
	if err := s.google.Delete(ctx, ts, event.GoogleEventID); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("event", id).Msg("failed to delete linked google event")
	}
	return nil
}

func (s *CalendarService) GoogleAuthURL(state string) (string, error) {
	if s.google == nil {
		return "", apperrors.ErrCalendarUnavailable
	}
	return s.google.AuthURL(state), nil
}

func (s *CalendarService) ConnectGoogle(ctx context.Context, ownerID, code string) error {
	if s.google == nil {
		return apperrors.ErrCalendarUnavailable
	}

	token, err := s.google.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("google code exchange: %w: %w", apperrors.ErrUpstreamFailed, err)
	}

	return s.saveToken(ctx, ownerID, token)
}

func (s *CalendarService) saveToken(ctx context.Context, ownerID string, token *oauth2.Token) error {
	return s.repo.SaveToken(ctx, &model.GoogleToken{
		OwnerID:      ownerID,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Expiry:       token.Expiry,
		UpdatedAt:    s.now(),
	})
}

// tokenSource loads the owner's Google credentials. A token refreshed while
// serving the request is written back, so the next request starts from it
// instead of refreshing again.
func (s *CalendarService) tokenSource(ctx context.Context, ownerID string) (oauth2.TokenSource, error) {
	if s.google == nil {
		return nil, apperrors.ErrCalendarUnavailable
	}
	stored, err := s.repo.FindToken(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	token := &oauth2.Token{
		AccessToken:  stored.AccessToken,
		RefreshToken: stored.RefreshToken,
		TokenType:    stored.TokenType,
		Expiry:       stored.Expiry,
	}
	return &savingTokenSource{
		base:    oauth2.ReuseTokenSource(token, s.google.TokenSource(ctx, token)),
		current: token.AccessToken,
		save: func(refreshed *oauth2.Token) {
			if err := s.saveToken(context.WithoutCancel(ctx), ownerID, refreshed); err != nil {
				log.Ctx(ctx).Warn().Err(err).Msg("failed to store refreshed google token")
			}
		},
	}, nil
}

type savingTokenSource struct {
	base oauth2.TokenSource
	save func(*oauth2.Token)

	mu      sync.Mutex
	current string
}

func (t *savingTokenSource) Token() (*oauth2.Token, error) {
	token, err := t.base.Token()
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if token.AccessToken != t.current {
		t.current = token.AccessToken
		t.save(token)
	}
	return token, nil
}

// PushToGoogle copies a local event to the owner's Google calendar and
// remembers the remote id. Already linked events are returned unchanged.
func (s *CalendarService) PushToGoogle(ctx context.Context, ownerID, id string) (*model.CalendarEvent, error) {
	ts, err := s.tokenSource(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	event, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if event.GoogleEventID != "" {
		return event, nil
	}

	googleID, err := s.google.Insert(ctx, ts, gcal.RemoteEvent{
		Title:       event.Title,
		Description: event.Description,
		StartsAt:    event.StartsAt,
		EndsAt:      event.EndsAt,
		AllDay:      event.AllDay,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUpstreamFailed, err)
	}

	if err := s.repo.SetGoogleEventID(ctx, id, googleID); err != nil {
		return nil, fmt.Errorf("failed to link event: %w", err)
	}
	event.GoogleEventID = googleID
	return event, nil
}

// GoogleUpcoming lists upcoming events straight from Google without storing them.
func (s *CalendarService) GoogleUpcoming(ctx context.Context, ownerID string) ([]gcal.RemoteEvent, error) {
	ts, err := s.tokenSource(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	events, err := s.google.Upcoming(ctx, ts, s.now(), googlePullLimit)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUpstreamFailed, err)
	}
	return events, nil
}
