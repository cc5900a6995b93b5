package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// CampusFeedHandler proxies the university's public events feed and
// normalizes it into a compact list for the map client. The upstream URL is
// configured via CAMPUS_FEED_URL; when unset the endpoint reports the feed
// as unconfigured rather than failing at startup.
type CampusFeedHandler struct {
	FeedURL string
	Client  *http.Client
}

// NewCampusFeedHandler constructs a handler with a bounded-timeout client.
func NewCampusFeedHandler(feedURL string) *CampusFeedHandler {
	return &CampusFeedHandler{
		FeedURL: feedURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// feedVenue is the venue sub-object of a normalized feed event.
type feedVenue struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	Province *string `json:"province"`
	Zip      *string `json:"zip"`
}

// FeedEvent is one normalized event from the upstream feed.
type FeedEvent struct {
	ID          uint64     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	StartDate   string     `json:"start_date"`
	EndDate     string     `json:"end_date"`
	AllDay      bool       `json:"all_day"`
	Venue       *feedVenue `json:"venue"`
	ImageURL    *string    `json:"image_url"`
}

// upstreamFeed mirrors the subset of the upstream payload we read. The feed
// follows The Events Calendar REST shape, so venue/image are objects with
// their own field names.
type upstreamFeed struct {
	Events []struct {
		ID          uint64 `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		StartDate   string `json:"start_date"`
		EndDate     string `json:"end_date"`
		AllDay      bool   `json:"all_day"`
		Venue       *struct {
			Venue    *string `json:"venue"`
			Address  *string `json:"address"`
			City     *string `json:"city"`
			Province *string `json:"province"`
			Zip      *string `json:"zip"`
		} `json:"venue"`
		Image *struct {
			URL *string `json:"url"`
		} `json:"image"`
	} `json:"events"`
}

// List handles GET /api/campus-events. Upstream failures map to 502 so the
// client can distinguish a broken feed from a broken API.
func (h *CampusFeedHandler) List(c echo.Context) error {
	if h.FeedURL == "" {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "campus events feed not configured"})
	}

	req, err := http.NewRequestWithContext(c.Request().Context(), http.MethodGet, h.FeedURL, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to build feed request"})
	}
	resp, err := h.Client.Do(req)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "failed to fetch campus events"})
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "failed to fetch campus events"})
	}

	var payload upstreamFeed
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "invalid feed response"})
	}

	events := make([]FeedEvent, 0, len(payload.Events))
	for _, ev := range payload.Events {
		out := FeedEvent{
			ID:          ev.ID,
			Title:       ev.Title,
			Description: ev.Description,
			URL:         ev.URL,
			StartDate:   ev.StartDate,
			EndDate:     ev.EndDate,
			AllDay:      ev.AllDay,
		}
		if ev.Venue != nil {
			out.Venue = &feedVenue{
				Name:     ev.Venue.Venue,
				Address:  ev.Venue.Address,
				City:     ev.Venue.City,
				Province: ev.Venue.Province,
				Zip:      ev.Venue.Zip,
			}
		}
		if ev.Image != nil {
			out.ImageURL = ev.Image.URL
		}
		events = append(events, out)
	}
	return c.JSON(http.StatusOK, events)
}
