// Package settings resolves the ward branding stamped on every document.
// Any failure falls back to a fixed localized template so composition never
// blocks on branding.
package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/flanksource/commons/logger"
	"gopkg.in/yaml.v3"

	"github.com/flanksource/wardclerk/api"
)

var log = logger.GetLogger("settings")

const (
	// DefaultTimeout bounds the settings request and the logo download
	DefaultTimeout  = 5 * time.Second
	maxSettingsSize = 1 << 20
	maxLogoSize     = 4 << 20
)

// Source yields the branding template.
type Source interface {
	Template(ctx context.Context) (api.Template, error)
}

// Load asks src for the template and fills blank fields from the locale
// default. A nil source or any error yields api.DefaultTemplate(locale).
func Load(ctx context.Context, src Source, locale string) api.Template {
	if src == nil {
		return api.DefaultTemplate(locale)
	}
	t, err := src.Template(ctx)
	if err != nil {
		log.Warnf("using the default template: %v", err)
		return api.DefaultTemplate(locale)
	}
	return t.WithDefaults(locale)
}

// HTTPSource reads GET {BaseURL}/settings.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
	Timeout time.Duration
}

func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPSource{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
		Timeout: timeout,
	}
}

// Template implements Source. A logo that cannot be downloaded is dropped
// with a warning.
func (s *HTTPSource) Template(ctx context.Context) (api.Template, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	endpoint := s.BaseURL + "/settings"
	body, err := get(ctx, s.client(), endpoint, maxSettingsSize)
	if err != nil {
		return api.Template{}, err
	}
	var t api.Template
	if err := json.Unmarshal(body, &t); err != nil {
		return api.Template{}, fmt.Errorf("failed to decode %s: %w", endpoint, err)
	}

	if t.LogoURL != "" {
		logoURL, err := resolve(endpoint, t.LogoURL)
		if err == nil {
			t.Logo, err = get(ctx, s.client(), logoURL, maxLogoSize)
		}
		if err != nil {
			log.Warnf("logo %s unavailable: %v", t.LogoURL, err)
			t.Logo = nil
		}
	}
	return t, nil
}

func (s *HTTPSource) client() *http.Client {
	if s.Client != nil {
		return s.Client
	}
	return http.DefaultClient
}

func (s *HTTPSource) timeout() time.Duration {
	if s.Timeout > 0 {
		return s.Timeout
	}
	return DefaultTimeout
}

// FileSource reads a YAML (or JSON) template from disk. A relative logoUrl
// is a path next to the file.
type FileSource struct {
	Path string
}

// Template implements Source.
func (s FileSource) Template(ctx context.Context) (api.Template, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return api.Template{}, fmt.Errorf("failed to read template: %w", err)
	}
	var t api.Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return api.Template{}, fmt.Errorf("failed to parse template %s: %w", s.Path, err)
	}
	if t.LogoURL == "" {
		return t, nil
	}

	if u, err := url.Parse(t.LogoURL); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
		defer cancel()
		t.Logo, err = get(ctx, http.DefaultClient, t.LogoURL, maxLogoSize)
		if err != nil {
			log.Warnf("logo %s unavailable: %v", t.LogoURL, err)
		}
		return t, nil
	}

	path := t.LogoURL
	if !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(s.Path), path)
	}
	if t.Logo, err = os.ReadFile(path); err != nil {
		log.Warnf("logo %s unavailable: %v", path, err)
		t.Logo = nil
	}
	return t, nil
}

// Static is a fixed template, useful for tests and embedding.
type Static api.Template

// Template implements Source.
func (s Static) Template(context.Context) (api.Template, error) {
	return api.Template(s), nil
}

func get(ctx context.Context, client *http.Client, target string, limit int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid url %s: %w", target, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", target, err)
	}
	defer resp.Body.Close() // nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get %s: %s", target, resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", target, err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%s is larger than %d bytes", target, limit)
	}
	return body, nil
}

// resolve makes ref absolute against base.
func resolve(base, ref string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	r, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	return b.ResolveReference(r).String(), nil
}
