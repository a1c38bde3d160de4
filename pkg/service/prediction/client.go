package prediction

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/idwatch/pkg/domain/interfaces"
	"github.com/secmon-lab/idwatch/pkg/domain/model"
)

const (
	defaultTimeout  = 10 * time.Second
	maxResponseSize = 1 << 20
)

// Option configures the prediction clients
type Option func(*options)

type options struct {
	httpClient *http.Client
}

// WithHTTPClient sets the HTTP client used for requests
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithTimeout sets the timeout of the default HTTP client
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.httpClient = &http.Client{Timeout: timeout}
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Client fetches predictions from the prediction endpoint of a table
type Client struct {
	httpClient *http.Client
	url        string
}

var _ interfaces.PredictionSource = (*Client)(nil)

// New creates a prediction client for the given endpoint
func New(url string, opts ...Option) *Client {
	o := newOptions(opts)
	return &Client{
		httpClient: o.httpClient,
		url:        url,
	}
}

// Predict fetches {"predicted_max_id_in_30_days": int} from the endpoint
func (c *Client) Predict(ctx context.Context) (*model.Prediction, error) {
	var body struct {
		Predicted *int64 `json:"predicted_max_id_in_30_days"`
	}
	if err := getJSON(ctx, c.httpClient, c.url, &body); err != nil {
		return nil, err
	}
	if body.Predicted == nil {
		return nil, goerr.New("prediction response missing predicted_max_id_in_30_days",
			goerr.T(model.ErrTagSourceUnavailable),
			goerr.V("url", c.url))
	}

	return &model.Prediction{PredictedMaxIDIn30Days: *body.Predicted}, nil
}

// CurrentClient fetches the current max id from a sibling endpoint
type CurrentClient struct {
	httpClient *http.Client
	url        string
}

var _ interfaces.CurrentSource = (*CurrentClient)(nil)

// NewCurrent creates a current max id client for the given endpoint
func NewCurrent(url string, opts ...Option) *CurrentClient {
	o := newOptions(opts)
	return &CurrentClient{
		httpClient: o.httpClient,
		url:        url,
	}
}

// CurrentMaxID fetches {"current_max_id": int} from the endpoint
func (c *CurrentClient) CurrentMaxID(ctx context.Context) (int64, error) {
	var body struct {
		Current *int64 `json:"current_max_id"`
	}
	if err := getJSON(ctx, c.httpClient, c.url, &body); err != nil {
		return 0, err
	}
	if body.Current == nil {
		return 0, goerr.New("current response missing current_max_id",
			goerr.T(model.ErrTagSourceUnavailable),
			goerr.V("url", c.url))
	}

	return *body.Current, nil
}

// Static is a CurrentSource for deployments without a current max id endpoint
type Static int64

// CurrentMaxID returns the static value
func (s Static) CurrentMaxID(ctx context.Context) (int64, error) {
	return int64(s), nil
}

// Sources holds the collaborators needed to project one table
type Sources struct {
	Prediction interfaces.PredictionSource
	Current    interfaces.CurrentSource
}

// FromTableConfig builds the sources of a configured table
func FromTableConfig(table model.TableConfig, opts ...Option) Sources {
	sources := Sources{
		Prediction: New(table.PredictionURL, opts...),
	}
	if table.CurrentURL != "" {
		sources.Current = NewCurrent(table.CurrentURL, opts...)
	} else {
		sources.Current = Static(table.CurrentMaxID)
	}
	return sources
}

func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to create request",
			goerr.T(model.ErrTagSourceUnavailable),
			goerr.V("url", url))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to reach prediction source",
			goerr.T(model.ErrTagSourceUnavailable),
			goerr.V("url", url))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return goerr.New("prediction source returned error status",
			goerr.T(model.ErrTagSourceUnavailable),
			goerr.V("url", url),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(snippet)))
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode prediction source response",
			goerr.T(model.ErrTagSourceUnavailable),
			goerr.V("url", url))
	}

	return nil
}
