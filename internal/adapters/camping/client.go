// internal/adapters/camping/client.go
package camping

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"camping_arequita/internal/adapters/observability"
	"camping_arequita/internal/domain"
)

// Client talks to the campground's public backend API. It performs no
// retries: a triggered fetch either lands or fails once, and the caller's
// policy decides what a failure means.
type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base string, rps int) (*Client, error) {
	if base == "" {
		return nil, fmt.Errorf("backend base URL is required")
	}
	if rps <= 0 {
		rps = 10
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 15 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// ---- Public API ----

func (c *Client) HeroImages(ctx context.Context) ([]string, error) {
	var raw []any
	if err := c.get(ctx, c.base+"/public/hero-images", &raw); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

// Services passes query/typ through as server-side filter hints. Whether the
// backend honors them is unknown; callers re-filter locally regardless.
func (c *Client) Services(ctx context.Context, lang domain.Language, query, typ string) ([]domain.Accommodation, error) {
	q := url.Values{}
	q.Set("lang", string(lang))
	if query != "" {
		q.Set("q", query)
	}
	if typ != "" && typ != domain.TypeAll {
		q.Set("type", typ)
	}
	var raw []map[string]any
	if err := c.get(ctx, c.base+"/public/services?"+q.Encode(), &raw); err != nil {
		return nil, err
	}
	return mapServices(raw), nil
}

func (c *Client) Testimonials(ctx context.Context, lang domain.Language, serviceID string, page, perPage int) (domain.TestimonialsPage, error) {
	q := url.Values{}
	q.Set("lang", string(lang))
	if serviceID != "" {
		q.Set("service_id", serviceID)
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))

	var raw map[string]any
	if err := c.get(ctx, c.base+"/public/testimonios?"+q.Encode(), &raw); err != nil {
		return domain.TestimonialsPage{}, err
	}
	return mapTestimonialsPage(raw), nil
}

func (c *Client) CreatePreReservation(ctx context.Context, req domain.PreReservation) (domain.Ack, error) {
	body := map[string]any{
		"service_id": req.ServiceID,
		"full_name":  req.FullName,
		"email":      req.Email,
		"phone":      req.Phone,
		"guests":     req.Guests,
		"check_in":   req.CheckIn,
		"check_out":  req.CheckOut,
		"notes":      req.Notes,
		"lang":       req.Lang,
	}
	var ack domain.Ack
	if err := c.post(ctx, c.base+"/public/pre-reservations", body, &ack); err != nil {
		return nil, err
	}
	return ack, nil
}

func (c *Client) CreateSuggestion(ctx context.Context, req domain.Suggestion) (domain.Ack, error) {
	body := map[string]any{
		"name":         req.Name,
		"email":        req.Email,
		"confirmEmail": req.ConfirmEmail,
		"category":     req.Category,
		"message":      req.Message,
		"lang":         req.Lang,
	}
	var ack domain.Ack
	if err := c.post(ctx, c.base+"/public/suggestions", body, &ack); err != nil {
		return nil, err
	}
	return ack, nil
}

// ---- Internals ----

var (
	ErrNotFound    = errors.New("camping: not found")
	ErrBadRequest  = errors.New("camping: bad request")
	ErrUnavailable = errors.New("camping: backend unavailable")
)

func (c *Client) get(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, u string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	// Submissions carry a client-generated id so the backend can correlate
	// duplicates from impatient double-clicks.
	req.Header.Set("X-Request-ID", uuid.NewString())
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if err := c.rl.Wait(req.Context()); err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "camping-arequita-site/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("backend", req.URL.Path, 0, time.Since(start))
		if req.Context().Err() != nil {
			return req.Context().Err()
		}
		return err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("backend", req.URL.Path, resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		if out == nil {
			io.Copy(io.Discard, resp.Body)
			return nil
		}
		return json.NewDecoder(resp.Body).Decode(out)

	case http.StatusNoContent:
		io.Copy(io.Discard, resp.Body)
		return nil

	case http.StatusNotFound:
		return ErrNotFound

	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: %s", ErrBadRequest, strings.TrimSpace(string(b)))

	case http.StatusTooManyRequests, http.StatusInternalServerError,
		http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)

	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
}
