package meeting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// ErrProviderUnavailable indicates the provider did not issue a link in time.
// The caller may retry; an accepted request is never left half-transitioned.
var ErrProviderUnavailable = errors.New("meeting link provider unavailable")

// defaultSessionLength is used when the caller supplies no scheduled time.
const defaultSessionLength = time.Hour

// LinkProvider issues a meeting URI for a scheduled swap session.
type LinkProvider interface {
	Provision(ctx context.Context, scheduledTime *time.Time, title string) (string, error)
}

// GoogleCalendarProvider creates a calendar event with a Meet conference and
// returns its join link.
type GoogleCalendarProvider struct {
	service    *calendar.Service
	calendarID string
	timeout    time.Duration
}

// NewGoogleCalendarProvider builds a provider from a service-account
// credentials file.
func NewGoogleCalendarProvider(ctx context.Context, credentialsPath, calendarID string, timeout time.Duration) (*GoogleCalendarProvider, error) {
	svc, err := calendar.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("error initializing calendar service: %w", err)
	}
	if calendarID == "" {
		calendarID = "primary"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &GoogleCalendarProvider{service: svc, calendarID: calendarID, timeout: timeout}, nil
}

// Provision inserts a calendar event carrying a Meet conference request and
// returns the conference URI. Failures and timeouts surface as
// ErrProviderUnavailable so the accept transition can be safely retried.
func (p *GoogleCalendarProvider) Provision(ctx context.Context, scheduledTime *time.Time, title string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now().Add(24 * time.Hour)
	if scheduledTime != nil {
		start = *scheduledTime
	}
	end := start.Add(defaultSessionLength)

	event := &calendar.Event{
		Summary: title,
		Start:   &calendar.EventDateTime{DateTime: start.Format(time.RFC3339)},
		End:     &calendar.EventDateTime{DateTime: end.Format(time.RFC3339)},
		ConferenceData: &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId: uuid.NewString(),
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{
					Type: "hangoutsMeet",
				},
			},
		},
	}

	created, err := p.service.Events.Insert(p.calendarID, event).
		ConferenceDataVersion(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	if created.HangoutLink != "" {
		return created.HangoutLink, nil
	}
	if created.ConferenceData != nil {
		for _, entry := range created.ConferenceData.EntryPoints {
			if entry.EntryPointType == "video" && entry.Uri != "" {
				return entry.Uri, nil
			}
		}
	}
	return "", fmt.Errorf("%w: event created without a conference link", ErrProviderUnavailable)
}

// FallbackProvider generates meet-style links locally. Used when no calendar
// credentials are configured (development, tests).
type FallbackProvider struct{}

// NewFallbackProvider creates a new FallbackProvider
func NewFallbackProvider() *FallbackProvider {
	return &FallbackProvider{}
}

// Provision returns a unique meet URI without calling out anywhere.
func (p *FallbackProvider) Provision(ctx context.Context, scheduledTime *time.Time, title string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	return "https://meet.skillswap.dev/" + uuid.NewString(), nil
}
