package feed

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"mediafeed/internal/domain"
)

// Feed is a fetched channel feed, reduced to what the sync pipeline needs.
type Feed struct {
	Title    string
	ImageURL string // as published, possibly relative to the feed locator
	Items    []Item
}

// Item is one feed entry. CanonicalID carries the provider-supplied
// identifier extension when present; GUID is the entry's native id.
type Item struct {
	GUID         string
	CanonicalID  string
	Title        string
	Description  string
	Published    time.Time
	Duration     *int64 // seconds, nil when the extension is absent or unparsable
	Authors      []string
	EnclosureURL string
}

// ExternalID is the upsert matching key: the canonical identifier when
// the feed supplies one, otherwise the native entry id.
func (i Item) ExternalID() string {
	if i.CanonicalID != "" {
		return i.CanonicalID
	}
	return i.GUID
}

// Config holds fetcher configuration.
type Config struct {
	Timeout   time.Duration
	UserAgent string
}

// Fetcher retrieves and parses RSS/Atom feeds.
type Fetcher struct {
	client    *http.Client
	userAgent string
	parser    *gofeed.Parser
	logger    *slog.Logger
}

func NewFetcher(cfg Config, logger *slog.Logger) *Fetcher {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "MediaFeed/1.0"
	}
	return &Fetcher{
		client:    &http.Client{Timeout: cfg.Timeout},
		userAgent: cfg.UserAgent,
		parser:    gofeed.NewParser(),
		logger:    logger.With("component", "feed"),
	}
}

// Fetch retrieves the feed at the given locator. Transport failures come
// back as *domain.FetchError, body failures as *domain.ParseError, so the
// job layer can schedule redelivery for either.
func (f *Fetcher) Fetch(ctx context.Context, feedURL string) (*Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, &domain.FetchError{URL: feedURL, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &domain.FetchError{URL: feedURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.FetchError{URL: feedURL, Err: fmt.Errorf("unexpected status: %d", resp.StatusCode)}
	}

	parsed, err := f.parser.Parse(resp.Body)
	if err != nil {
		return nil, &domain.ParseError{URL: feedURL, Err: err}
	}

	return f.transform(parsed), nil
}

func (f *Fetcher) transform(parsed *gofeed.Feed) *Feed {
	out := &Feed{Title: parsed.Title}
	if parsed.Image != nil {
		out.ImageURL = parsed.Image.URL
	}

	out.Items = make([]Item, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		item := Item{
			GUID:        entry.GUID,
			Title:       entry.Title,
			Description: entry.Description,
		}

		if entry.PublishedParsed != nil {
			item.Published = entry.PublishedParsed.UTC()
		} else {
			f.logger.Warn("entry has no parsable publish date", "guid", entry.GUID)
		}

		if entry.DublinCoreExt != nil && len(entry.DublinCoreExt.Identifier) > 0 {
			item.CanonicalID = entry.DublinCoreExt.Identifier[0]
		}

		if entry.ITunesExt != nil && entry.ITunesExt.Duration != "" {
			if secs, err := ParseDuration(entry.ITunesExt.Duration); err != nil {
				f.logger.Warn("unparsable duration, leaving unset",
					"guid", entry.GUID,
					"duration", entry.ITunesExt.Duration,
				)
			} else {
				item.Duration = &secs
			}
		}

		if entry.ITunesExt != nil && entry.ITunesExt.Author != "" {
			item.Authors = []string{entry.ITunesExt.Author}
		} else {
			for _, person := range entry.Authors {
				if person != nil && person.Name != "" {
					item.Authors = append(item.Authors, person.Name)
				}
			}
		}

		for _, enc := range entry.Enclosures {
			if enc != nil && enc.URL != "" {
				item.EnclosureURL = enc.URL
				break
			}
		}

		out.Items = append(out.Items, item)
	}

	return out
}

// ParseDuration parses an iTunes-style duration: plain seconds, MM:SS
// or HH:MM:SS.
func ParseDuration(raw string) (int64, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("malformed duration %q", raw)
	}

	var total int64
	for _, part := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("malformed duration %q", raw)
		}
		total = total*60 + n
	}
	return total, nil
}

// ResolveURL makes ref absolute against the feed locator. A ref that is
// already absolute is returned as is; an unparsable base leaves ref alone.
func ResolveURL(base, ref string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}
