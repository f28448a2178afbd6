package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// dateFormat is the date-only layout Google uses for all-day events.
const dateFormat = "2006-01-02"

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	// Try service account first
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		// Service Account path
		tokenSource := config.TokenSource(ctx)
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	// Fallback: try OAuth2 installed app credentials
	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}

	// For OAuth2 Desktop app: use a static token if token.json exists
	tokenData, tokenErr := os.ReadFile("token.json")
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token.json found: use Service Account instead")
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token.json: %w", jsonErr)
	}

	tokenSource := oauthConfig.TokenSource(ctx, &tok)
	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}

	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent creates a new Google Calendar event.
func (c *Client) CreateEvent(ctx context.Context, req EventRequest) (*Event, error) {
	created, err := c.service.Events.Insert(calendarID(req.CalendarID), toGoogleEvent(req)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}
	return fromGoogleEvent(created), nil
}

// GetEvent fetches a single event by id.
func (c *Client) GetEvent(ctx context.Context, calID, eventID string) (*Event, error) {
	item, err := c.service.Events.Get(calendarID(calID), eventID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar event: %w", err)
	}
	return fromGoogleEvent(item), nil
}

// UpdateEvent replaces an event's summary and times.
func (c *Client) UpdateEvent(ctx context.Context, eventID string, req EventRequest) (*Event, error) {
	updated, err := c.service.Events.Update(calendarID(req.CalendarID), eventID, toGoogleEvent(req)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update calendar event: %w", err)
	}
	return fromGoogleEvent(updated), nil
}

// DeleteEvent removes an event.
func (c *Client) DeleteEvent(ctx context.Context, calID, eventID string) error {
	if err := c.service.Events.Delete(calendarID(calID), eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	return nil
}

// ListEvents returns single (recurrence-expanded) events in [TimeMin, TimeMax),
// ordered by start time.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]*Event, error) {
	call := c.service.Events.List(calendarID(req.CalendarID)).
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	events, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	result := make([]*Event, 0, len(events.Items))
	for _, item := range events.Items {
		result = append(result, fromGoogleEvent(item))
	}
	return result, nil
}

func calendarID(id string) string {
	if id == "" {
		return "primary"
	}
	return id
}

// toGoogleEvent converts an EventRequest to the wire shape. All-day events use
// date-only start/end (end date exclusive); timed events use RFC3339 with an
// explicit timezone.
func toGoogleEvent(req EventRequest) *calendar.Event {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
	}

	if req.AllDay {
		event.Start = &calendar.EventDateTime{Date: req.StartTime.Format(dateFormat)}
		event.End = &calendar.EventDateTime{Date: req.EndTime.Format(dateFormat)}
		return event
	}

	event.Start = &calendar.EventDateTime{
		DateTime: req.StartTime.Format(time.RFC3339),
		TimeZone: req.Timezone,
	}
	event.End = &calendar.EventDateTime{
		DateTime: req.EndTime.Format(time.RFC3339),
		TimeZone: req.Timezone,
	}
	return event
}

// fromGoogleEvent converts a wire event back. An event with a date-only start
// is all-day.
func fromGoogleEvent(item *calendar.Event) *Event {
	ev := &Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		HtmlLink:    item.HtmlLink,
		Status:      item.Status,
	}

	if item.Start != nil {
		if item.Start.Date != "" {
			ev.AllDay = true
			ev.StartTime, _ = time.Parse(dateFormat, item.Start.Date)
		} else {
			ev.StartTime, _ = time.Parse(time.RFC3339, item.Start.DateTime)
		}
	}
	if item.End != nil {
		if item.End.Date != "" {
			ev.EndTime, _ = time.Parse(dateFormat, item.End.Date)
		} else {
			ev.EndTime, _ = time.Parse(time.RFC3339, item.End.DateTime)
		}
	}

	return ev
}
