package destination

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const httpTimeout = 10 * time.Second

// newHTTPClient returns an http.Client with a 10-second timeout.
func newHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// doPost sends body as JSON and decodes the JSON response into dst.
func doPost(ctx context.Context, client *http.Client, rawURL string, headers map[string]string, body, dst any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request for %s: %w", rawURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request for %s: %w", rawURL, err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("POST %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("POST %s returned status %d", rawURL, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding response from %s: %w", rawURL, err)
	}

	return nil
}

// ---- hosted document store (Data API) ----

// DataAPIClient reads destination documents from a hosted document-store Data API.
type DataAPIClient struct {
	baseURL    string
	apiKey     string
	dataSource string
	database   string
	collection string
	client     *http.Client
}

const (
	defaultDataSource = "Cluster0"
	defaultDatabase   = "tripsaver"
	defaultCollection = "destinations"
)

// NewDataAPIClient constructs a client for the given endpoint and key.
func NewDataAPIClient(baseURL, apiKey string) *DataAPIClient {
	return &DataAPIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		dataSource: defaultDataSource,
		database:   defaultDatabase,
		collection: defaultCollection,
		client:     newHTTPClient(),
	}
}

type findRequest struct {
	DataSource string         `json:"dataSource"`
	Database   string         `json:"database"`
	Collection string         `json:"collection"`
	Filter     map[string]any `json:"filter,omitempty"`
}

type findResponse struct {
	Documents []dataAPIDocument `json:"documents"`
}

type dataAPIDocument struct {
	ID          string     `json:"id"`
	State       string     `json:"state"`
	Categories  []Category `json:"categories"`
	BestMonths  []int      `json:"bestMonths"`
	AvoidMonths []int      `json:"avoidMonths"`
	Climate     Climate    `json:"climate"`
	Budget      BudgetTier `json:"budget"`
	Agoda       string     `json:"agoda"`
}

// toDestination maps a stored document. Documents seeded without an explicit
// id are keyed by their booking slug minus the country suffix.
func (doc dataAPIDocument) toDestination() Destination {
	id := doc.ID
	if id == "" {
		id = strings.TrimSuffix(doc.Agoda, "-in")
	}
	return Destination{
		ID:          id,
		State:       doc.State,
		Categories:  doc.Categories,
		BestMonths:  doc.BestMonths,
		AvoidMonths: doc.AvoidMonths,
		Climate:     doc.Climate,
		Budget:      doc.Budget,
		BookingSlug: doc.Agoda,
	}
}

// Destinations fetches every document in the destinations collection.
func (c *DataAPIClient) Destinations(ctx context.Context) ([]Destination, error) {
	return c.find(ctx, nil)
}

// DestinationsByState fetches documents for one state.
func (c *DataAPIClient) DestinationsByState(ctx context.Context, state string) ([]Destination, error) {
	return c.find(ctx, map[string]any{"state": state})
}

func (c *DataAPIClient) find(ctx context.Context, filter map[string]any) ([]Destination, error) {
	req := findRequest{
		DataSource: c.dataSource,
		Database:   c.database,
		Collection: c.collection,
		Filter:     filter,
	}

	var raw findResponse
	headers := map[string]string{"api-key": c.apiKey}
	if err := doPost(ctx, c.client, c.baseURL+"/action/find", headers, req, &raw); err != nil {
		return nil, fmt.Errorf("data api find: %w: %w", ErrCatalogUnavailable, err)
	}

	out := make([]Destination, 0, len(raw.Documents))
	for _, doc := range raw.Documents {
		out = append(out, doc.toDestination())
	}
	return out, nil
}
