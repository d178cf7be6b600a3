package sienge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/siengefin/backend/internal/infrastructure/config"
)

// ErrFetchFailed marks a failed bulk-data request (transport error or
// non-2xx response). Callers treat it as an empty batch and keep the run going.
var ErrFetchFailed = errors.New("sienge fetch failed")

const dateLayout = "2006-01-02"

// Client talks to the Sienge bulk-data API using HTTP basic auth.
type Client struct {
	baseURL             string
	username            string
	password            string
	selectionType       string
	correctionIndexerID int
	httpClient          *http.Client
	logger              *zap.Logger
	now                 func() time.Time
}

// NewClient builds a Client from configuration.
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	return &Client{
		baseURL:             cfg.Sienge.APIBaseURL(),
		username:            cfg.Sienge.Username,
		password:            cfg.Sienge.Password,
		selectionType:       cfg.Sync.SelectionType,
		correctionIndexerID: cfg.Sync.CorrectionIndexerID,
		httpClient:          &http.Client{Timeout: cfg.Sienge.Timeout},
		logger:              logger.Named("sienge"),
		now:                 time.Now,
	}
}

// FetchIncome returns the accounts-receivable installments issued or
// modified within [start, end].
func (c *Client) FetchIncome(ctx context.Context, start, end time.Time) ([]IncomeRaw, error) {
	params := url.Values{}
	params.Set("startDate", start.Format(dateLayout))
	params.Set("endDate", end.Format(dateLayout))
	params.Set("selectionType", c.selectionType)

	c.logger.Info("Fetching income data",
		zap.String("start_date", start.Format(dateLayout)),
		zap.String("end_date", end.Format(dateLayout)),
		zap.String("selection_type", c.selectionType),
	)

	raw, err := c.get(ctx, "/income", params)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		c.logger.Warn("No data field in income response")
		return []IncomeRaw{}, nil
	}

	var records []IncomeRaw
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: decoding income data: %v", ErrFetchFailed, err)
	}

	c.logger.Info("Fetched income records", zap.Int("count", len(records)))
	return records, nil
}

// FetchOutcome returns the accounts-payable installments issued or
// modified within [start, end]. Corrected balances are computed against
// the configured indexer as of today.
func (c *Client) FetchOutcome(ctx context.Context, start, end time.Time) ([]OutcomeRaw, error) {
	params := url.Values{}
	params.Set("startDate", start.Format(dateLayout))
	params.Set("endDate", end.Format(dateLayout))
	params.Set("selectionType", c.selectionType)
	params.Set("correctionIndexerId", strconv.Itoa(c.correctionIndexerID))
	params.Set("correctionDate", c.now().Format(dateLayout))

	c.logger.Info("Fetching outcome data",
		zap.String("start_date", start.Format(dateLayout)),
		zap.String("end_date", end.Format(dateLayout)),
		zap.String("selection_type", c.selectionType),
	)

	raw, err := c.get(ctx, "/outcome", params)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		c.logger.Warn("No data field in outcome response")
		return []OutcomeRaw{}, nil
	}

	var records []OutcomeRaw
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: decoding outcome data: %v", ErrFetchFailed, err)
	}

	c.logger.Info("Fetched outcome records", zap.Int("count", len(records)))
	return records, nil
}

// get performs an authenticated GET and returns the raw "data" array,
// or nil when the response carries no data field.
func (c *Client) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", ErrFetchFailed, err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrFetchFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrFetchFailed, path, resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrFetchFailed, err)
	}

	return env.Data, nil
}
