package reservio

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hradek/salon-booking-ai/pkg/logging"
)

const defaultTimeout = 15 * time.Second

var (
	// ErrUnavailable signals the scheduling backend could not be reached
	// or returned a server-side failure.
	ErrUnavailable = errors.New("reservio: backend unavailable")
	// ErrBookingRejected signals the backend refused the booking,
	// typically because the slot was taken in the meantime.
	ErrBookingRejected = errors.New("reservio: booking rejected")
)

// Client is a typed HTTP client for the Reservio JSON:API scheduling backend.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *logging.Logger

	// ResourceID narrows availability queries to one staff resource.
	// Empty means all resources of the business.
	ResourceID string
}

// NewClient creates a Reservio API client. An empty baseURL selects the
// production endpoint.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *logging.Logger) *Client {
	if baseURL == "" {
		baseURL = "https://api.reservio.com/v2"
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// GetBusiness returns the public profile of a business.
func (c *Client) GetBusiness(ctx context.Context, businessID string) (*Business, error) {
	var out document[resource[businessAttributes]]
	if err := c.get(ctx, "/businesses/"+url.PathEscape(businessID), nil, &out); err != nil {
		return nil, err
	}

	a := out.Data.Attributes
	addr := strings.TrimSpace(strings.Join(nonEmpty(a.Address.Street, a.Address.City, a.Address.Zip, a.Address.Country), ", "))
	return &Business{
		ID:      out.Data.ID,
		Name:    a.Name,
		Address: addr,
		Phone:   a.Phone,
		Email:   a.Email,
		Website: a.Website,
	}, nil
}

// GetServices returns all bookable services of a business.
func (c *Client) GetServices(ctx context.Context, businessID string) ([]Service, error) {
	var out document[[]resource[serviceAttributes]]
	if err := c.get(ctx, "/businesses/"+url.PathEscape(businessID)+"/services", nil, &out); err != nil {
		return nil, err
	}

	services := make([]Service, 0, len(out.Data))
	for _, r := range out.Data {
		if r.ID == "" || r.Attributes.Name == "" {
			return nil, fmt.Errorf("reservio: malformed service entry (id=%q)", r.ID)
		}
		services = append(services, Service{
			ID:       r.ID,
			Name:     r.Attributes.Name,
			Duration: time.Duration(r.Attributes.Duration) * time.Second,
		})
	}
	return services, nil
}

// GetSlots returns booking slots for a service within [from, to].
// Slot timestamps that fail to parse are treated as a hard error rather
// than silently skipped.
func (c *Client) GetSlots(ctx context.Context, businessID, serviceID string, from, to time.Time) ([]Slot, error) {
	params := url.Values{}
	params.Set("filter[from]", from.UTC().Format(time.RFC3339))
	params.Set("filter[to]", to.UTC().Format(time.RFC3339))
	params.Set("filter[serviceId]", serviceID)
	if c.ResourceID != "" {
		params.Set("filter[resourceId]", c.ResourceID)
	}

	var out document[[]resource[slotAttributes]]
	if err := c.get(ctx, "/businesses/"+url.PathEscape(businessID)+"/availability/booking-slots", params, &out); err != nil {
		return nil, err
	}

	slots := make([]Slot, 0, len(out.Data))
	for _, r := range out.Data {
		start, err := time.Parse(time.RFC3339, r.Attributes.Start)
		if err != nil {
			return nil, fmt.Errorf("reservio: malformed slot start %q: %w", r.Attributes.Start, err)
		}
		end, err := time.Parse(time.RFC3339, r.Attributes.End)
		if err != nil {
			return nil, fmt.Errorf("reservio: malformed slot end %q: %w", r.Attributes.End, err)
		}
		slots = append(slots, Slot{Start: start, End: end})
	}
	return slots, nil
}

// CreateBooking creates a booking for a confirmed slot.
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	payload := map[string]any{
		"data": map[string]any{
			"type": "booking",
			"attributes": map[string]any{
				"bookedClientName": req.ClientName,
				"note":             req.Note,
				"via":              "application",
			},
			"relationships": map[string]any{
				"event": map[string]any{
					"data": map[string]any{
						"type": "event",
						"attributes": map[string]any{
							"start":     req.Slot.Start.Format(time.RFC3339),
							"end":       req.Slot.End.Format(time.RFC3339),
							"name":      req.ClientName,
							"eventType": "appointment",
						},
						"relationships": map[string]any{
							"service": map[string]any{
								"data": map[string]any{
									"type": "service",
									"id":   req.ServiceID,
								},
							},
						},
					},
				},
				"client": map[string]any{
					"data": map[string]any{
						"type": "client",
						"attributes": map[string]any{
							"name":  req.ClientName,
							"email": req.ClientEmail,
							"phone": req.ClientPhone,
						},
					},
				},
			},
		},
	}

	var out document[resource[struct {
		Status string `json:"status"`
	}]]
	if err := c.post(ctx, "/businesses/"+url.PathEscape(req.BusinessID)+"/bookings", payload, &out); err != nil {
		return nil, err
	}
	if out.Data.ID == "" {
		return nil, fmt.Errorf("%w: empty booking id", ErrBookingRejected)
	}
	return &Booking{ID: out.Data.ID, Status: out.Data.Attributes.Status}, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("reservio: create request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("reservio: marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("reservio: create request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, truncate(respBody))
	case resp.StatusCode == http.StatusConflict, resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: status %d: %s", ErrBookingRejected, resp.StatusCode, truncate(respBody))
	case resp.StatusCode >= 300:
		return fmt.Errorf("reservio: status %d: %s", resp.StatusCode, truncate(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("reservio: unmarshal response: %w", err)
	}
	return nil
}

func truncate(b []byte) string {
	s := string(b)
	if len(s) > 300 {
		s = s[:300]
	}
	return s
}

func nonEmpty(parts ...string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}
