package pipeline_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pressgate/pressgate"
	"github.com/pressgate/pressgate/mock"
	"github.com/pressgate/pressgate/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// okFetcher returns a 200 response with the given body.
func okFetcher(body string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (*pressgate.Response, error) {
			return &pressgate.Response{StatusCode: 200, Body: body}, nil
		},
	}
}

// articleExtractor returns the given article for any input.
func articleExtractor(article *pressgate.Article) *mock.Extractor {
	return &mock.Extractor{
		ExtractFn: func(html, pageURL string) (*pressgate.Article, error) {
			return article, nil
		},
	}
}

// unreachedExtractor fails the test if extraction is attempted.
func unreachedExtractor(t *testing.T) *mock.Extractor {
	t.Helper()
	return &mock.Extractor{
		ExtractFn: func(html, pageURL string) (*pressgate.Article, error) {
			t.Fatal("extractor called on a short-circuit path")
			return nil, nil
		},
	}
}

func TestPipeline_KnownPaywallDomain(t *testing.T) {
	t.Parallel()

	t.Run("short-circuits without a network call", func(t *testing.T) {
		t.Parallel()

		fetcher := okFetcher("irrelevant")
		p := pipeline.New(fetcher, unreachedExtractor(t))

		res := p.FetchArticleContent(context.Background(), "https://www.nytimes.com/2024/01/02/article.html")

		assert.False(t, res.Success)
		assert.True(t, res.PaywallDetected)
		assert.NotEmpty(t, res.Error)
		assert.Empty(t, res.Content)
		assert.Empty(t, res.Excerpt)
		assert.Zero(t, fetcher.FetchInvoked)
	})

	t.Run("malformed URL fails open and proceeds to fetch", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*pressgate.Response, error) {
				return nil, errors.New("unsupported protocol scheme")
			},
		}
		p := pipeline.New(fetcher, unreachedExtractor(t))

		res := p.FetchArticleContent(context.Background(), "http://%zz invalid")

		assert.False(t, res.Success)
		assert.False(t, res.PaywallDetected)
		assert.Equal(t, 1, fetcher.FetchInvoked)
	})
}

func TestPipeline_StatusPolicy(t *testing.T) {
	t.Parallel()

	t.Run("access-denial statuses are paywalls", func(t *testing.T) {
		t.Parallel()

		for _, code := range []int{401, 402, 403} {
			fetcher := &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (*pressgate.Response, error) {
					return &pressgate.Response{StatusCode: code, Body: "denied"}, nil
				},
			}
			p := pipeline.New(fetcher, unreachedExtractor(t))

			res := p.FetchArticleContent(context.Background(), "https://example.com/a")

			assert.False(t, res.Success, "status %d", code)
			assert.True(t, res.PaywallDetected, "status %d", code)
			assert.Contains(t, res.Error, "HTTP", "status %d", code)
		}
	})

	t.Run("other non-2xx statuses are plain failures", func(t *testing.T) {
		t.Parallel()

		for _, code := range []int{301, 404, 429, 500, 503} {
			fetcher := &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (*pressgate.Response, error) {
					return &pressgate.Response{StatusCode: code, Body: ""}, nil
				},
			}
			p := pipeline.New(fetcher, unreachedExtractor(t))

			res := p.FetchArticleContent(context.Background(), "https://example.com/a")

			assert.False(t, res.Success, "status %d", code)
			assert.False(t, res.PaywallDetected, "status %d", code)
			assert.Contains(t, res.Error, "HTTP", "status %d", code)
		}
	})

	t.Run("non-200 2xx statuses proceed", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("word ", 200)
		p := pipeline.New(&mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*pressgate.Response, error) {
				return &pressgate.Response{StatusCode: 203, Body: "<html>ok</html>"}, nil
			},
		}, articleExtractor(&pressgate.Article{Title: "T", TextContent: text}))

		res := p.FetchArticleContent(context.Background(), "https://example.com/a")
		assert.True(t, res.Success)
	})
}

func TestPipeline_TransportFailure(t *testing.T) {
	t.Parallel()

	fetcher := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (*pressgate.Response, error) {
			return nil, errors.New("context deadline exceeded")
		},
	}
	p := pipeline.New(fetcher, unreachedExtractor(t))

	res := p.FetchArticleContent(context.Background(), "https://slow.example.com/a")

	assert.False(t, res.Success)
	assert.False(t, res.PaywallDetected)
	assert.Contains(t, res.Error, "deadline exceeded")
}

func TestPipeline_PaywallPhraseInRawHTML(t *testing.T) {
	t.Parallel()

	html := `<html><body><div class="gate">Subscribe to continue reading.</div></body></html>`
	p := pipeline.New(okFetcher(html), unreachedExtractor(t))

	res := p.FetchArticleContent(context.Background(), "https://example.com/a")

	assert.False(t, res.Success)
	assert.True(t, res.PaywallDetected)
	assert.Equal(t, "Paywall detected in content", res.Error)
}

func TestPipeline_ParseFailure(t *testing.T) {
	t.Parallel()

	t.Run("extractor error", func(t *testing.T) {
		t.Parallel()

		p := pipeline.New(okFetcher("<html></html>"), &mock.Extractor{
			ExtractFn: func(html, pageURL string) (*pressgate.Article, error) {
				return nil, errors.New("no readable node")
			},
		})

		res := p.FetchArticleContent(context.Background(), "https://example.com/a")

		assert.False(t, res.Success)
		assert.False(t, res.PaywallDetected)
		assert.Equal(t, "Could not parse article content", res.Error)
	})

	t.Run("empty text content", func(t *testing.T) {
		t.Parallel()

		p := pipeline.New(okFetcher("<html></html>"),
			articleExtractor(&pressgate.Article{Title: "Empty", TextContent: ""}))

		res := p.FetchArticleContent(context.Background(), "https://example.com/a")

		assert.False(t, res.Success)
		assert.False(t, res.PaywallDetected)
		assert.Equal(t, "Could not parse article content", res.Error)
	})

	t.Run("whitespace-only text content", func(t *testing.T) {
		t.Parallel()

		p := pipeline.New(okFetcher("<html></html>"),
			articleExtractor(&pressgate.Article{Title: "Blank", TextContent: " \n\t "}))

		res := p.FetchArticleContent(context.Background(), "https://example.com/a")

		assert.False(t, res.Success)
		assert.Equal(t, "Could not parse article content", res.Error)
	})
}

func TestPipeline_ShortContentWithGateLanguage(t *testing.T) {
	t.Parallel()

	p := pipeline.New(okFetcher("<html>clean</html>"),
		articleExtractor(&pressgate.Article{
			Title:       "The Headline That Got Through",
			TextContent: "Preview text. Subscription required to read the rest.",
			Byline:      "A. Reporter",
		}))

	res := p.FetchArticleContent(context.Background(), "https://example.com/a")

	assert.False(t, res.Success)
	assert.True(t, res.PaywallDetected)
	assert.Equal(t, "Content too short - likely paywall truncated", res.Error)

	// The title survives this path; content and excerpt are cleared.
	assert.Equal(t, "The Headline That Got Through", res.Title)
	assert.Empty(t, res.Content)
	assert.Empty(t, res.Excerpt)
}

func TestPipeline_ShortCleanContentSucceeds(t *testing.T) {
	t.Parallel()

	p := pipeline.New(okFetcher("<html>clean</html>"),
		articleExtractor(&pressgate.Article{Title: "Brief", TextContent: "A short but genuine article body."}))

	res := p.FetchArticleContent(context.Background(), "https://example.com/a")

	assert.True(t, res.Success)
	assert.False(t, res.PaywallDetected)
	assert.Equal(t, "A short but genuine article body.", res.Content)
}

func TestPipeline_Success(t *testing.T) {
	t.Parallel()

	t.Run("populates every field", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("sentence ", 100) // 900 bytes, no collapse needed
		p := pipeline.New(okFetcher("<html>body</html>"),
			articleExtractor(&pressgate.Article{
				Title:       "A Proper Article",
				TextContent: text,
				Byline:      "Jane Writer",
				SiteName:    "Example Post",
			}))

		res := p.FetchArticleContent(context.Background(), "https://example.com/a")

		require.True(t, res.Success)
		assert.False(t, res.PaywallDetected)
		assert.Empty(t, res.Error)
		assert.Equal(t, "A Proper Article", res.Title)
		assert.Equal(t, "Jane Writer", res.Byline)
		assert.Equal(t, "Example Post", res.SiteName)
		assert.Equal(t, strings.TrimSpace(text), res.Content)
		assert.Equal(t, res.Content[:pressgate.ExcerptLen], res.Excerpt)
		assert.True(t, strings.HasPrefix(res.Content, res.Excerpt))
	})

	t.Run("collapses whitespace in content", func(t *testing.T) {
		t.Parallel()

		p := pipeline.New(okFetcher("<html>body</html>"),
			articleExtractor(&pressgate.Article{
				Title:       "Spacing",
				TextContent: "first\n\nparagraph\t\there " + strings.Repeat("pad ", 150),
			}))

		res := p.FetchArticleContent(context.Background(), "https://example.com/a")

		require.True(t, res.Success)
		assert.True(t, strings.HasPrefix(res.Content, "first paragraph here pad"))
		assert.NotContains(t, res.Content, "\n")
		assert.NotContains(t, res.Content, "  ")
	})

	t.Run("truncates content to the bound", func(t *testing.T) {
		t.Parallel()

		p := pipeline.New(okFetcher("<html>body</html>"),
			articleExtractor(&pressgate.Article{
				Title:       "Long Read",
				TextContent: strings.Repeat("x", pressgate.MaxContentLen+5000),
			}))

		res := p.FetchArticleContent(context.Background(), "https://example.com/a")

		require.True(t, res.Success)
		assert.Len(t, res.Content, pressgate.MaxContentLen)
		assert.Len(t, res.Excerpt, pressgate.ExcerptLen)
		assert.Equal(t, res.Content[:pressgate.ExcerptLen], res.Excerpt)
	})

	t.Run("gate phrase beyond the scan window is not detected", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("a", 2500) + " subscription required " + strings.Repeat("b", 1000)
		p := pipeline.New(okFetcher("<html>"+text+"</html>"),
			articleExtractor(&pressgate.Article{Title: "Deep", TextContent: text}))

		res := p.FetchArticleContent(context.Background(), "https://example.com/a")

		assert.True(t, res.Success)
		assert.False(t, res.PaywallDetected)
	})
}

func TestPipeline_Idempotence(t *testing.T) {
	t.Parallel()

	p := pipeline.New(okFetcher("<html>stable body</html>"),
		articleExtractor(&pressgate.Article{
			Title:       "Stable",
			TextContent: strings.Repeat("same words ", 80),
			Byline:      "B. Writer",
			SiteName:    "Stable Site",
		}))

	first := p.FetchArticleContent(context.Background(), "https://example.com/a")
	second := p.FetchArticleContent(context.Background(), "https://example.com/a")

	assert.Equal(t, first, second)
}
