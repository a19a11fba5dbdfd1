package feed

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediafeed/internal/domain"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"
     xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd"
     xmlns:dc="http://purl.org/dc/elements/1.1/">
  <channel>
    <title>Test Show</title>
    <image>
      <url>/art/cover.jpg</url>
      <title>Test Show</title>
      <link>http://example.com</link>
    </image>
    <item>
      <guid>http://example.com/ep1</guid>
      <title>Episode One</title>
      <description>the first one</description>
      <pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate>
      <dc:identifier>yt:video:abc123</dc:identifier>
      <itunes:duration>1:02:03</itunes:duration>
      <itunes:author>Alice</itunes:author>
      <enclosure url="http://cdn.example.com/ep1.mp3" length="1024" type="audio/mpeg"/>
    </item>
    <item>
      <guid>ep2</guid>
      <title>Episode Two</title>
      <pubDate>Tue, 03 Jan 2006 15:04:05 GMT</pubDate>
      <itunes:duration>bogus</itunes:duration>
    </item>
  </channel>
</rss>`

func testFetcher(t *testing.T) *Fetcher {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewFetcher(Config{Timeout: 5 * time.Second}, logger)
}

func TestFetch_ParsesFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer server.Close()

	fetched, err := testFetcher(t).Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "Test Show", fetched.Title)
	assert.Equal(t, "/art/cover.jpg", fetched.ImageURL)
	require.Len(t, fetched.Items, 2)

	first := fetched.Items[0]
	assert.Equal(t, "http://example.com/ep1", first.GUID)
	assert.Equal(t, "yt:video:abc123", first.CanonicalID)
	assert.Equal(t, "yt:video:abc123", first.ExternalID())
	assert.Equal(t, "Episode One", first.Title)
	assert.Equal(t, "the first one", first.Description)
	assert.Equal(t, time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC), first.Published)
	require.NotNil(t, first.Duration)
	assert.Equal(t, int64(3723), *first.Duration)
	assert.Equal(t, []string{"Alice"}, first.Authors)
	assert.Equal(t, "http://cdn.example.com/ep1.mp3", first.EnclosureURL)

	second := fetched.Items[1]
	assert.Equal(t, "ep2", second.GUID)
	assert.Equal(t, "ep2", second.ExternalID())
	assert.Nil(t, second.Duration, "unparsable duration must stay unset")
	assert.Empty(t, second.EnclosureURL)
}

func TestFetch_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := testFetcher(t).Fetch(context.Background(), server.URL)

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, server.URL, fetchErr.URL)
}

func TestFetch_UnparsableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("this is not a feed"))
	}))
	defer server.Close()

	_, err := testFetcher(t).Fetch(context.Background(), server.URL)

	var parseErr *domain.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestFetch_SendsUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer server.Close()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	fetcher := NewFetcher(Config{UserAgent: "MediaFeed-Test/1.0"}, logger)

	_, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "MediaFeed-Test/1.0", gotAgent)
}

func TestParseDuration(t *testing.T) {
	cases := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "90", want: 90},
		{raw: "02:30", want: 150},
		{raw: "1:02:03", want: 3723},
		{raw: " 10:00 ", want: 600},
		{raw: "0", want: 0},
		{raw: "", wantErr: true},
		{raw: "bogus", wantErr: true},
		{raw: "1:2:3:4", wantErr: true},
		{raw: "-5", wantErr: true},
		{raw: "1:-2", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParseDuration(tc.raw)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveURL(t *testing.T) {
	cases := []struct {
		name string
		base string
		ref  string
		want string
	}{
		{
			name: "relative against feed",
			base: "http://feeds.example.com/show/rss.xml",
			ref:  "/art/cover.jpg",
			want: "http://feeds.example.com/art/cover.jpg",
		},
		{
			name: "already absolute",
			base: "http://feeds.example.com/show/rss.xml",
			ref:  "https://cdn.example.com/cover.jpg",
			want: "https://cdn.example.com/cover.jpg",
		},
		{
			name: "sibling path",
			base: "http://feeds.example.com/show/rss.xml",
			ref:  "cover.jpg",
			want: "http://feeds.example.com/show/cover.jpg",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveURL(tc.base, tc.ref))
		})
	}
}
