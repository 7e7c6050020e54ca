package resource

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// RemoteError is a non-success response from the resource store. The client
// relays it untouched; interpreting the failure belongs to the caller.
type RemoteError struct {
	Op         string
	Collection string
	Status     int
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("resource: %s %s: unexpected status %d", e.Op, e.Collection, e.Status)
}

// Client issues reads and writes against a collection-oriented REST store.
// Every method is a single round trip; there is no caching or batching.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// Execute runs a query descriptor and decodes the response array into out.
func (c *Client) Execute(ctx context.Context, q Query, out any) error {
	target := c.baseURL + "/" + q.Collection
	if encoded := q.encode(); encoded != "" {
		target += "?" + encoded
	}
	return c.do(ctx, "query", q.Collection, http.MethodGet, target, nil, out)
}

func (c *Client) List(ctx context.Context, collection string, out any) error {
	return c.Execute(ctx, Query{Collection: collection}, out)
}

func (c *Client) FilterEqual(ctx context.Context, collection, field, value string, out any) error {
	return c.Execute(ctx, Query{
		Collection: collection,
		Filters:    []Filter{{Field: field, Value: value}},
	}, out)
}

func (c *Client) SortedBy(ctx context.Context, collection, field string, ascending bool, out any) error {
	return c.Execute(ctx, Query{
		Collection: collection,
		Sort:       &Sort{Field: field, Ascending: ascending},
	}, out)
}

// GetOne fetches a single record by id. A 404 reports found=false rather
// than an error; every other non-2xx status is a RemoteError.
func (c *Client) GetOne(ctx context.Context, collection, id string, out any) (bool, error) {
	target := c.baseURL + "/" + collection + "/" + id
	err := c.do(ctx, "get", collection, http.MethodGet, target, nil, out)
	if err != nil {
		var remote *RemoteError
		if errors.As(err, &remote) && remote.Status == http.StatusNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Insert creates a record; the store assigns the id. The stored record is
// decoded into out when out is non-nil.
func (c *Client) Insert(ctx context.Context, collection string, record, out any) error {
	target := c.baseURL + "/" + collection
	return c.do(ctx, "insert", collection, http.MethodPost, target, record, out)
}

// Patch applies a partial update to one record and decodes the merged
// result into out when out is non-nil. The store applies the patch
// atomically: a failed patch leaves the record untouched.
func (c *Client) Patch(ctx context.Context, collection, id string, partial, out any) error {
	target := c.baseURL + "/" + collection + "/" + id
	return c.do(ctx, "patch", collection, http.MethodPatch, target, partial, out)
}

func (c *Client) do(ctx context.Context, op, collection, method, target string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("resource: %s %s: encode body: %w", op, collection, err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("resource: %s %s: %w", op, collection, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("resource: %s %s: %w", op, collection, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &RemoteError{Op: op, Collection: collection, Status: res.StatusCode}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("resource: %s %s: decode response: %w", op, collection, err)
	}
	return nil
}
