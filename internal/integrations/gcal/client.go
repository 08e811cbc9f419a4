// Package gcal wraps the Google Calendar API for pushing and pulling events
// on behalf of a user who granted OAuth2 access.
package gcal

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const dateLayout = "2006-01-02"

type RemoteEvent struct {
	ID          string
	Title       string
	Description string
	StartsAt    time.Time
	EndsAt      time.Time
	AllDay      bool
}

type Client struct {
	config     *oauth2.Config
	calendarID string
}

func New(clientID, clientSecret, redirectURL string) *Client {
	return &Client{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     google.Endpoint,
			Scopes:       []string{calendar.CalendarEventsScope},
		},
		calendarID: "primary",
	}
}

// AuthURL is the consent page the user is sent to. Offline access is
// requested so a refresh token comes back with the first exchange.
func (c *Client) AuthURL(state string) string {
	return c.config.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

func (c *Client) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return c.config.Exchange(ctx, code)
}

// TokenSource hands out token until it expires and then refreshes it
// against Google with the refresh token.
func (c *Client) TokenSource(ctx context.Context, token *oauth2.Token) oauth2.TokenSource {
	return c.config.TokenSource(ctx, token)
}

func (c *Client) service(ctx context.Context, ts oauth2.TokenSource) (*calendar.Service, error) {
	return calendar.NewService(ctx, option.WithTokenSource(ts))
}

func (c *Client) Upcoming(ctx context.Context, ts oauth2.TokenSource, from time.Time, max int64) ([]RemoteEvent, error) {
	srv, err := c.service(ctx, ts)
	if err != nil {
		return nil, err
	}

	list, err := srv.Events.List(c.calendarID).
		TimeMin(from.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(max).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list google events: %w", err)
	}

	events := make([]RemoteEvent, 0, len(list.Items))
	for _, item := range list.Items {
		ev, err := fromGoogle(item)
		if err != nil {
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

func (c *Client) Insert(ctx context.Context, ts oauth2.TokenSource, ev RemoteEvent) (string, error) {
	srv, err := c.service(ctx, ts)
	if err != nil {
		return "", err
	}

	created, err := srv.Events.Insert(c.calendarID, toGoogle(ev)).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("insert google event: %w", err)
	}
	return created.Id, nil
}

func (c *Client) Delete(ctx context.Context, ts oauth2.TokenSource, id string) error {
	srv, err := c.service(ctx, ts)
	if err != nil {
		return err
	}

	if err := srv.Events.Delete(c.calendarID, id).Context(ctx).Do(); err != nil {
		return fmt.Errorf("delete google event: %w", err)
	}
	return nil
}

func toGoogle(ev RemoteEvent) *calendar.Event {
	out := &calendar.Event{
		Summary:     ev.Title,
		Description: ev.Description,
	}
	if ev.AllDay {
		out.Start = &calendar.EventDateTime{Date: ev.StartsAt.Format(dateLayout)}
		// Google treats the end date of an all-day event as exclusive.
		out.End = &calendar.EventDateTime{Date: ev.EndsAt.AddDate(0, 0, 1).Format(dateLayout)}
		return out
	}
	out.Start = &calendar.EventDateTime{DateTime: ev.StartsAt.Format(time.RFC3339)}
	out.End = &calendar.EventDateTime{DateTime: ev.EndsAt.Format(time.RFC3339)}
	return out
}

func fromGoogle(item *calendar.Event) (RemoteEvent, error) {
	ev := RemoteEvent{
		ID:          item.Id,
		Title:       item.Summary,
		Description: item.Description,
	}
	if item.Start == nil || item.End == nil {
		return ev, fmt.Errorf("event %s has no start or end", item.Id)
	}

	if item.Start.DateTime == "" {
		ev.AllDay = true
		start, err := time.Parse(dateLayout, item.Start.Date)
		if err != nil {
			return ev, err
		}
		end, err := time.Parse(dateLayout, item.End.Date)
		if err != nil {
			return ev, err
		}
		ev.StartsAt = start
		ev.EndsAt = end.AddDate(0, 0, -1)
		return ev, nil
	}

	start, err := time.Parse(time.RFC3339, item.Start.DateTime)
	if err != nil {
		return ev, err
	}
	end, err := time.Parse(time.RFC3339, item.End.DateTime)
	if err != nil {
		return ev, err
	}
	ev.StartsAt = start.UTC()
	ev.EndsAt = end.UTC()
	return ev, nil
}
