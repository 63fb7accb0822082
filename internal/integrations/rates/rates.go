package rates

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/finwell/finance-service/internal/config"
	"github.com/sirupsen/logrus"
)

// Client fetches daily reference exchange rates from the ECB feed. The
// engines never depend on it; the contract is supply a value or fail.
type Client struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

// NewClient initializes a new rates client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		url: cfg.RatesURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// fetch retrieves the raw XML feed
func (c *Client) fetch() ([]byte, error) {
	resp, err := c.client.Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	c.log.Debugf("rates XML response: %d bytes", len(body))
	return body, nil
}

// parseRates extracts currency/rate pairs from the daily feed
func (c *Client) parseRates(rawBody []byte) (map[string]float64, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %v", err)
	}

	cubes := doc.FindElements("//Cube")
	result := make(map[string]float64)
	for _, cube := range cubes {
		currency := cube.SelectAttrValue("currency", "")
		if currency == "" {
			continue
		}
		rate, err := strconv.ParseFloat(cube.SelectAttrValue("rate", ""), 64)
		if err != nil {
			continue
		}
		result[currency] = rate
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("no rate data found in XML")
	}
	return result, nil
}

// GetRates retrieves the full table of daily reference rates
func (c *Client) GetRates() (map[string]float64, error) {
	body, err := c.fetch()
	if err != nil {
		return nil, err
	}

	result, err := c.parseRates(body)
	if err != nil {
		return nil, err
	}

	c.log.Infof("Retrieved %d reference rates", len(result))
	return result, nil
}

// GetRate retrieves the daily reference rate for one currency
func (c *Client) GetRate(currency string) (float64, error) {
	all, err := c.GetRates()
	if err != nil {
		return 0, err
	}
	rate, ok := all[strings.ToUpper(currency)]
	if !ok {
		return 0, fmt.Errorf("no rate for currency %q", currency)
	}
	return rate, nil
}
