package indicators

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/beevik/etree"
	"github.com/finapp-cl/finance-service/internal/cache"
	"github.com/finapp-cl/finance-service/internal/config"
	"github.com/sirupsen/logrus"
)

// FallbackUF is the hardcoded UF value used when no fetch has ever succeeded
// and nothing is cached.
const FallbackUF = 38600

// Doer abstracts the HTTP client so tests can stub responses.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// UFClient fetches the daily UF value from mindicador.cl, with the CMF feed
// as a secondary source. The value is cached for the calendar day (UTC) and
// optionally written through to a shared cache store. Value never fails: it
// degrades to the last cached value and finally to FallbackUF.
type UFClient struct {
	mindicadorURL string
	cmfURL        string
	cmfAPIKey     string
	client        Doer
	store         cache.Repository
	log           *logrus.Logger
	now           func() time.Time

	mu         sync.Mutex
	lastValue  float64
	lastUpdate string
}

// NewUFClient initializes a UF client. store may be nil.
func NewUFClient(cfg *config.Config, log *logrus.Logger, store cache.Repository) *UFClient {
	return &UFClient{
		mindicadorURL: cfg.MindicadorURL,
		cmfURL:        cfg.CMFURL,
		cmfAPIKey:     cfg.CMFAPIKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		store: store,
		log:   log,
		now:   time.Now,
	}
}

// Value returns the UF value for today. Concurrent calls on the same day
// observe the cached value without re-fetching; the first call of a new day
// triggers a fetch. Races between concurrent first calls may cause a few
// redundant fetches, which all write the same externally-sourced value.
func (c *UFClient) Value() float64 {
	today := c.now().UTC().Format("2006-01-02")

	c.mu.Lock()
	if c.lastUpdate == today && c.lastValue > 0 {
		value := c.lastValue
		c.mu.Unlock()
		return value
	}
	previous := c.lastValue
	c.mu.Unlock()

	if c.store != nil {
		if raw, ok := c.store.Get("uf:" + today); ok {
			if value, err := strconv.ParseFloat(raw, 64); err == nil && value > 0 {
				c.remember(today, value)
				return value
			}
		}
	}

	value, err := c.fetch()
	if err != nil {
		c.log.Errorf("Failed to fetch UF value: %v", err)
		if previous > 0 {
			return previous
		}
		return FallbackUF
	}

	c.remember(today, value)
	if c.store != nil {
		if err := c.store.Set("uf:"+today, strconv.FormatFloat(value, 'f', -1, 64)); err != nil {
			c.log.Warnf("Failed to persist UF value: %v", err)
		}
	}
	c.log.Infof("UF value updated: %.2f", value)
	return value
}

func (c *UFClient) remember(day string, value float64) {
	c.mu.Lock()
	c.lastValue = value
	c.lastUpdate = day
	c.mu.Unlock()
}

// fetch tries mindicador.cl first and falls back to the CMF feed when an API
// key is configured.
func (c *UFClient) fetch() (float64, error) {
	value, err := c.fetchMindicador()
	if err == nil {
		return value, nil
	}
	c.log.Warnf("mindicador.cl request failed: %v", err)

	if c.cmfAPIKey == "" {
		return 0, err
	}
	return c.fetchCMF()
}

// fetchMindicador queries the mindicador.cl JSON API.
func (c *UFClient) fetchMindicador() (float64, error) {
	req, err := http.NewRequest("GET", c.mindicadorURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %v", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var payload struct {
		Serie []struct {
			Valor float64 `json:"valor"`
		} `json:"serie"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("failed to parse response: %v", err)
	}
	if len(payload.Serie) == 0 {
		return 0, fmt.Errorf("no UF data in response")
	}

	value := payload.Serie[0].Valor
	if value <= 0 {
		return 0, fmt.Errorf("invalid UF value: %f", value)
	}
	return value, nil
}

// fetchCMF queries the CMF XML API and parses the Chilean-formatted value.
func (c *UFClient) fetchCMF() (float64, error) {
	url := fmt.Sprintf("%s?apikey=%s&formato=xml", c.cmfURL, c.cmfAPIKey)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %v", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return 0, fmt.Errorf("failed to parse XML: %v", err)
	}

	elements := doc.FindElements("//UFs/UF/Valor")
	if len(elements) == 0 {
		return 0, fmt.Errorf("no UF data found in XML")
	}

	value, err := parseChileanNumber(elements[0].Text())
	if err != nil {
		return 0, fmt.Errorf("failed to parse UF value: %v", err)
	}
	return value, nil
}

// parseChileanNumber parses values like "39.383,07" (dot thousands, comma
// decimals).
func parseChileanNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}
