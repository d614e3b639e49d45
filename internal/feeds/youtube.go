// Package feeds adapts the YouTube channel RSS feed to JSON for embedding
// on the studio website.
package feeds

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/wenlaunch/proposal-backend/internal/apperrors"
	"github.com/wenlaunch/proposal-backend/internal/metrics"
)

// Video is one feed entry in client-facing shape.
type Video struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Link      string `json:"link"`
	Thumbnail string `json:"thumbnail"`
	Published string `json:"published"`
	Updated   string `json:"updated"`
}

// Client fetches channel feeds, caching the raw XML in redis when a cache
// is configured.
type Client struct {
	// BaseURL is overridable so tests can point at an httptest server.
	BaseURL string

	http  *http.Client
	cache *redis.Client // nil disables caching
	ttl   time.Duration
	log   *zap.Logger
}

// NewClient builds the feed client. cache may be nil.
func NewClient(cache *redis.Client, ttl time.Duration, log *zap.Logger) *Client {
	return &Client{
		BaseURL: "https://www.youtube.com",
		http:    &http.Client{Timeout: 15 * time.Second},
		cache:   cache,
		ttl:     ttl,
		log:     log,
	}
}

// FetchXML returns the raw feed XML for a channel, from cache when fresh.
// Cache failures degrade to a direct fetch.
func (c *Client) FetchXML(ctx context.Context, channelID string) (string, error) {
	cacheKey := "ytfeed:" + channelID

	if c.cache != nil {
		if cached, err := c.cache.Get(ctx, cacheKey).Result(); err == nil {
			return cached, nil
		}
	}

	feedURL := fmt.Sprintf("%s/feeds/videos.xml?channel_id=%s", c.BaseURL, url.QueryEscape(channelID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return "", apperrors.NewUpstream("youtube", err)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.ObserveUpstream("youtube", time.Since(start), err)
	if err != nil {
		return "", apperrors.NewUpstream("youtube", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apperrors.NewUpstream("youtube", fmt.Errorf("feed returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.NewUpstream("youtube", err)
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, cacheKey, string(body), c.ttl).Err(); err != nil {
			c.log.Warn("feed cache write failed", zap.String("channel", channelID), zap.Error(err))
		}
	}
	return string(body), nil
}

type feedXML struct {
	Entries []entryXML `xml:"entry"`
}

type entryXML struct {
	VideoID   string `xml:"videoId"`
	Title     string `xml:"title"`
	Published string `xml:"published"`
	Updated   string `xml:"updated"`
	Link      struct {
		Href string `xml:"href,attr"`
	} `xml:"link"`
}

// ParseEntries extracts up to max videos from the feed XML. Entries without
// a video id are skipped; the thumbnail URL is derived from the id.
func ParseEntries(xmlText string, max int) ([]Video, error) {
	var feed feedXML
	if err := xml.Unmarshal([]byte(xmlText), &feed); err != nil {
		return nil, apperrors.NewUpstream("youtube", fmt.Errorf("parse feed: %w", err))
	}

	videos := make([]Video, 0, max)
	for _, e := range feed.Entries {
		if len(videos) >= max {
			break
		}
		if e.VideoID == "" {
			continue
		}

		link := e.Link.Href
		if link == "" {
			link = "https://www.youtube.com/watch?v=" + e.VideoID
		}
		updated := e.Updated
		if updated == "" {
			updated = e.Published
		}

		videos = append(videos, Video{
			ID:        e.VideoID,
			Title:     e.Title,
			Link:      link,
			Thumbnail: fmt.Sprintf("https://i.ytimg.com/vi/%s/maxresdefault.jpg", e.VideoID),
			Published: e.Published,
			Updated:   updated,
		})
	}
	return videos, nil
}
