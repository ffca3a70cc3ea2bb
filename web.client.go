package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

var _ BookAPIClient = (*httpBookAPIClient)(nil) // ensure httpBookAPIClient implements BookAPIClient.

// BookAPIClient mirrors the books api operations for the web views. Each call
// is synchronous and reports the http status code the api answered with, so
// the caller can decide between rendering, redirecting or falling back.
type BookAPIClient interface {
	GetAll(ctx context.Context) ([]Book, int, error)
	GetOne(ctx context.Context, id string) (Book, int, error)
	Create(ctx context.Context, book Book) (Book, int, error)
	Update(ctx context.Context, book Book) (Book, int, error)
	Delete(ctx context.Context, id string) (int, error)
}

// clientEnvelope matches the api response models with the data
// left raw so each operation decodes its own payload type.
type clientEnvelope struct {
	RequestID string          `json:"requestid"`
	Status    int             `json:"status"`
	Message   string          `json:"message"`
	Total     *int            `json:"total,omitempty"`
	Data      json.RawMessage `json:"data"`
}

// httpBookAPIClient implements the BookAPIClient interface over plain http calls.
type httpBookAPIClient struct {
	logger  *zap.Logger
	baseURL string
	client  *http.Client
}

// NewBookAPIClient provides a ready to use books api client. The
// timeout comes from the web section of the configuration.
func NewBookAPIClient(logger *zap.Logger, config *Config) BookAPIClient {
	return &httpBookAPIClient{
		logger:  logger,
		baseURL: config.Web.APIBaseURL,
		client:  &http.Client{Timeout: config.Web.RequestTimeout},
	}
}

func (c *httpBookAPIClient) call(ctx context.Context, method, path string, body interface{}) (*clientEnvelope, int, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, 0, err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer res.Body.Close()

	envelope := &clientEnvelope{}
	if err = json.NewDecoder(res.Body).Decode(envelope); err != nil {
		return nil, res.StatusCode, fmt.Errorf("books api client: decoding %s %s response: %w", method, path, err)
	}
	return envelope, res.StatusCode, nil
}

// GetAll fetches the full books collection from the api.
func (c *httpBookAPIClient) GetAll(ctx context.Context) ([]Book, int, error) {
	envelope, status, err := c.call(ctx, http.MethodGet, "/v1/books", nil)
	if err != nil {
		return nil, status, err
	}
	if status != http.StatusOK {
		return nil, status, nil
	}
	var books []Book
	if err = json.Unmarshal(envelope.Data, &books); err != nil {
		return nil, status, err
	}
	return books, status, nil
}

// GetOne fetches a single book from the api.
func (c *httpBookAPIClient) GetOne(ctx context.Context, id string) (Book, int, error) {
	var book Book
	envelope, status, err := c.call(ctx, http.MethodGet, "/v1/books/"+id, nil)
	if err != nil {
		return book, status, err
	}
	if status != http.StatusOK {
		return book, status, nil
	}
	err = json.Unmarshal(envelope.Data, &book)
	return book, status, err
}

// Create submits a candidate book to the api and returns the echoed entity.
func (c *httpBookAPIClient) Create(ctx context.Context, book Book) (Book, int, error) {
	envelope, status, err := c.call(ctx, http.MethodPost, "/v1/books", book)
	if err != nil {
		return book, status, err
	}
	if status != http.StatusOK {
		return book, status, nil
	}
	var created Book
	err = json.Unmarshal(envelope.Data, &created)
	return created, status, err
}

// Update submits a full replacement of an existing book to the api.
func (c *httpBookAPIClient) Update(ctx context.Context, book Book) (Book, int, error) {
	envelope, status, err := c.call(ctx, http.MethodPut, "/v1/books/"+book.ID, book)
	if err != nil {
		return book, status, err
	}
	if status != http.StatusOK {
		return book, status, nil
	}
	var updated Book
	err = json.Unmarshal(envelope.Data, &updated)
	return updated, status, err
}

// Delete asks the api to remove a book.
func (c *httpBookAPIClient) Delete(ctx context.Context, id string) (int, error) {
	_, status, err := c.call(ctx, http.MethodDelete, "/v1/books/"+id, nil)
	return status, err
}
