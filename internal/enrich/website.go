package enrich

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/net/html"
)

// maxBodyBytes caps how much of a company page is read.
const maxBodyBytes = 512 * 1024

// Page holds the parts of a company website the enricher cares about.
type Page struct {
	Title       string
	Description string
	Text        string
}

// WebsiteFetcher retrieves and parses a company website.
type WebsiteFetcher interface {
	Fetch(ctx context.Context, url string) (*Page, error)
}

// HTTPFetcher implements WebsiteFetcher with net/http and x/net/html.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a fetcher with the given total request timeout.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: timeout,
				}).DialContext,
				TLSHandshakeTimeout: timeout,
			},
		},
	}
}

// Fetch downloads a company page and extracts title, meta description, and
// visible text.
func (f *HTTPFetcher) Fetch(ctx context.Context, targetURL string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, normalizeURL(targetURL), nil)
	if err != nil {
		return nil, eris.Wrap(err, "enrich: create request")
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; LeadGenBot/1.0)")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "enrich: fetch website")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, eris.Errorf("enrich: status %d from %s", resp.StatusCode, targetURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, eris.Wrap(err, "enrich: read body")
	}

	page, err := ParsePage(string(body))
	if err != nil {
		return nil, err
	}
	return page, nil
}

// normalizeURL prepends https:// when the provider returned a bare domain.
func normalizeURL(u string) string {
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return "https://" + u
}

// ParsePage extracts title, meta description, and visible text from markup.
func ParsePage(markup string) (*Page, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, eris.Wrap(err, "enrich: parse html")
	}

	page := &Page{}
	var sb strings.Builder
	walk(doc, page, &sb)
	page.Text = collapseWhitespace(sb.String())
	page.Title = strings.TrimSpace(page.Title)
	page.Description = strings.TrimSpace(page.Description)

	return page, nil
}

// walk visits the DOM, collecting the title, the description meta tag, and
// text content outside of script/style/nav/footer subtrees.
func walk(n *html.Node, page *Page, sb *strings.Builder) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "nav", "footer", "noscript":
			return
		case "title":
			if n.FirstChild != nil && page.Title == "" {
				page.Title = n.FirstChild.Data
			}
		case "meta":
			if strings.EqualFold(attr(n, "name"), "description") && page.Description == "" {
				page.Description = attr(n, "content")
			}
		}
	}

	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		sb.WriteString(" ")
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, page, sb)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

// collapseWhitespace squeezes runs of whitespace into single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
