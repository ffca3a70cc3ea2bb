package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const mockedTime = "2023-07-02 00:00:00 +0000 UTC"

// newTestAPIHandler wires an api handler on top of the provided storage
// and queue mocks with a frozen clock and a predictable ids generator.
func newTestAPIHandler(repo BookStorage, queue Queuer) *APIHandler {
	config := &Config{}
	config.Server.LongRequestWriteTimeout = time.Second
	bs := NewBookService(zap.NewNop(), config, NewMockClocker(), repo, queue)
	return NewAPIHandler(
		zap.NewNop(),
		config,
		&Statistics{started: NewMockClocker().Now()},
		NewMockClocker(),
		NewMockUIDHandler("cb8f2136-fae4-4200-85d9-3533c7f8c70d"),
		NewBookValidator(),
		bs,
	)
}

func okQueuer() *MockQueuer {
	return &MockQueuer{
		PushFunc: func(ctx context.Context, qid string, book Book) error {
			return nil
		},
	}
}

// TestStatusHandler ensures api handler can provides its status.
func TestStatusHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	w := httptest.NewRecorder()
	api := newTestAPIHandler(nil, nil)
	api.Status(w, req, httprouter.Params{})
	res := w.Result()
	defer res.Body.Close()
	data, err := io.ReadAll(res.Body)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/json; charset=UTF-8", res.Header.Get("Content-Type"))
	m := make(map[string]interface{})
	err = json.Unmarshal(data, &m)
	assert.NoError(t, err)

	_, ok := m["requestid"]
	assert.True(t, ok)

	v, ok := m["status"]
	assert.True(t, ok)
	assert.Equal(t, "up & running since 0 mins", v)

	v, ok = m["message"]
	assert.True(t, ok)
	assert.Equal(t, v, "Hello. Books store api is available. Enjoy :)")
}

// TestCreateBookHandler ensures api handler can create a book.
//
//nolint:funlen
func TestCreateBookHandler(t *testing.T) {
	t.Run("should pass: valid payload", func(t *testing.T) {
		var added Book
		mockRepo := &MockBookStorage{
			AddFunc: func(ctx context.Context, id string, book Book) error {
				added = book
				return nil
			},
		}
		api := newTestAPIHandler(mockRepo, okQueuer())

		book := Book{
			Title:       "Test book title",
			Description: "Test book description",
			Author:      "Jerome Amon",
			Price:       "10$",
		}
		payload, err := json.Marshal(book)
		assert.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/v1/books", bytes.NewBuffer(payload))
		w := httptest.NewRecorder()
		api.CreateBook(w, req, httprouter.Params{})
		res := w.Result()
		defer res.Body.Close()
		data, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "application/json; charset=UTF-8", res.Header.Get("Content-Type"))

		resultMap := make(map[string]interface{})
		err = json.Unmarshal(data, &resultMap)
		assert.NoError(t, err)

		_, ok := resultMap["requestid"]
		assert.True(t, ok)

		v, ok := resultMap["status"]
		assert.True(t, ok)
		assert.Equal(t, float64(http.StatusOK), v)

		v, ok = resultMap["message"]
		assert.True(t, ok)
		assert.Equal(t, "Book created successfully.", v)

		v, ok = resultMap["data"]
		assert.True(t, ok)

		bookMap, ok := v.(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, "b:cb8f2136-fae4-4200-85d9-3533c7f8c70d", bookMap["id"])
		assert.Equal(t, "Test book title", bookMap["title"])
		assert.Equal(t, "Test book description", bookMap["description"])
		assert.Equal(t, "Jerome Amon", bookMap["author"])
		assert.Equal(t, "10$", bookMap["price"])
		assert.Equal(t, mockedTime, bookMap["createdAt"])
		assert.Equal(t, mockedTime, bookMap["updatedAt"])

		// the echoed entity is exactly what reached the storage.
		assert.Equal(t, "b:cb8f2136-fae4-4200-85d9-3533c7f8c70d", added.ID)
		assert.Equal(t, "Test book title", added.Title)
	})

	t.Run("should pass: client provided id is honored", func(t *testing.T) {
		var addedID string
		mockRepo := &MockBookStorage{
			AddFunc: func(ctx context.Context, id string, book Book) error {
				addedID = id
				return nil
			},
		}
		api := newTestAPIHandler(mockRepo, okQueuer())

		payload := []byte(`{"id":"1", "title":"A", "description":"B", "author":"C", "price":"1$"}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/books", bytes.NewBuffer(payload))
		w := httptest.NewRecorder()
		api.CreateBook(w, req, httprouter.Params{})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "1", addedID)

		data, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		resultMap := make(map[string]interface{})
		assert.NoError(t, json.Unmarshal(data, &resultMap))
		bookMap, ok := resultMap["data"].(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, "1", bookMap["id"])
	})

	t.Run("should fail: storage insertion failure", func(t *testing.T) {
		mockRepo := &MockBookStorage{
			AddFunc: func(ctx context.Context, id string, book Book) error {
				return errors.New("storage failure")
			},
		}
		api := newTestAPIHandler(mockRepo, okQueuer())

		book := Book{
			Title:       "Test book title",
			Description: "Test book description",
			Author:      "Jerome Amon",
			Price:       "10$",
		}

		payload, err := json.Marshal(book)
		assert.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/v1/books", bytes.NewBuffer(payload))
		w := httptest.NewRecorder()
		api.CreateBook(w, req, httprouter.Params{})
		res := w.Result()
		defer res.Body.Close()
		data, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
		assert.Equal(t, "application/json; charset=UTF-8", res.Header.Get("Content-Type"))

		resultMap := make(map[string]interface{})
		err = json.Unmarshal(data, &resultMap)
		assert.NoError(t, err)

		v, ok := resultMap["status"]
		assert.True(t, ok)
		assert.Equal(t, float64(http.StatusInternalServerError), v)

		v, ok = resultMap["message"]
		assert.True(t, ok)
		assert.Equal(t, "failed to create the book", v)
	})

	t.Run("should fail: invalid payload", func(t *testing.T) {
		api := newTestAPIHandler(&MockBookStorage{}, okQueuer())
		jsonStringPayload := `{"title":1, "description":"Test book description", "author":"Jerome Amon", "price":"10$"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/books", bytes.NewBuffer([]byte(jsonStringPayload)))
		w := httptest.NewRecorder()
		api.CreateBook(w, req, httprouter.Params{})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, "application/json; charset=UTF-8", res.Header.Get("Content-Type"))
		data, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		expected := `{"requestid":"", "status":400, "message":"failed to create the book",
		"data":{"id":"", "title":"", "description":"Test book description", "author":"Jerome Amon", "price":"10$", "createdAt":"", "updatedAt":""}}`
		assert.JSONEq(t, expected, string(data))
	})

	t.Run("should fail: required field in payload", func(t *testing.T) {
		testCases := []struct {
			name     string
			payload  []byte
			status   int
			expected string
		}{
			{
				name:     "empty",
				payload:  []byte(`{"title":"", "description":"Test book description", "author":"Jerome Amon", "price":"10$"}`),
				status:   http.StatusBadRequest,
				expected: `{"requestid":"", "status":400, "message":"failed to create the book", "data":["title is required"]}`,
			},
			{
				name:     "missing",
				payload:  []byte(`{"description":"Test book description", "author":"Jerome Amon", "price":"10$"}`),
				status:   http.StatusBadRequest,
				expected: `{"requestid":"", "status":400, "message":"failed to create the book", "data":["title is required"]}`,
			},
			{
				name:     "several missing",
				payload:  []byte(`{"description":"Test book description"}`),
				status:   http.StatusBadRequest,
				expected: `{"requestid":"", "status":400, "message":"failed to create the book", "data":["title is required", "author is required", "price is required"]}`,
			},
		}

		// a nil AddFunc would panic so any storage call fails the test loudly.
		persisted := false
		mockRepo := &MockBookStorage{
			AddFunc: func(ctx context.Context, id string, book Book) error {
				persisted = true
				return nil
			},
		}
		api := newTestAPIHandler(mockRepo, okQueuer())

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				req := httptest.NewRequest(http.MethodPost, "/v1/books", bytes.NewBuffer(tc.payload))
				w := httptest.NewRecorder()
				api.CreateBook(w, req, httprouter.Params{})
				res := w.Result()
				defer res.Body.Close()
				assert.Equal(t, tc.status, res.StatusCode)
				assert.Equal(t, "application/json; charset=UTF-8", res.Header.Get("Content-Type"))
				data, err := io.ReadAll(res.Body)
				assert.NoError(t, err)
				assert.JSONEq(t, tc.expected, string(data))
				assert.False(t, persisted)
			})
		}
	})
}

// TestGetOneBookHandler ensures fetching one book maps each
// storage outcome to the right status code.
func TestGetOneBookHandler(t *testing.T) {
	storedBook := Book{
		ID:          "b:0",
		Title:       "Test book title",
		Description: "Test book description",
		Author:      "Jerome Amon",
		Price:       "10$",
		CreatedAt:   mockedTime,
		UpdatedAt:   mockedTime,
	}

	t.Run("should pass: existing book", func(t *testing.T) {
		mockRepo := &MockBookStorage{
			GetOneFunc: func(ctx context.Context, id string) (Book, error) {
				return storedBook, nil
			},
		}
		api := newTestAPIHandler(mockRepo, okQueuer())
		req := httptest.NewRequest(http.MethodGet, "/v1/books/b:0", nil)
		w := httptest.NewRecorder()
		api.GetOneBook(w, req, httprouter.Params{httprouter.Param{Key: "id", Value: "b:0"}})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusOK, res.StatusCode)
		data, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		expected := `{"requestid":"", "status":200, "message":"Book fetched successfully.",
		"data":{"id":"b:0", "title":"Test book title", "description":"Test book description", "author":"Jerome Amon",
		"price":"10$", "createdAt":"2023-07-02 00:00:00 +0000 UTC", "updatedAt":"2023-07-02 00:00:00 +0000 UTC"}}`
		assert.JSONEq(t, expected, string(data))
	})

	t.Run("should fail: missing book", func(t *testing.T) {
		mockRepo := &MockBookStorage{
			GetOneFunc: func(ctx context.Context, id string) (Book, error) {
				return Book{}, ErrBookNotFound
			},
		}
		api := newTestAPIHandler(mockRepo, okQueuer())
		req := httptest.NewRequest(http.MethodGet, "/v1/books/b:1", nil)
		w := httptest.NewRecorder()
		api.GetOneBook(w, req, httprouter.Params{httprouter.Param{Key: "id", Value: "b:1"}})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		data, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		expected := `{"requestid":"", "status":404, "message":"book does not exist",
		"data":{"id":"", "title":"", "description":"", "author":"", "price":"", "createdAt":"", "updatedAt":""}}`
		assert.JSONEq(t, expected, string(data))
	})

	t.Run("should fail: storage failure", func(t *testing.T) {
		mockRepo := &MockBookStorage{
			GetOneFunc: func(ctx context.Context, id string) (Book, error) {
				return Book{}, errors.New("storage failure")
			},
		}
		api := newTestAPIHandler(mockRepo, okQueuer())
		req := httptest.NewRequest(http.MethodGet, "/v1/books/b:1", nil)
		w := httptest.NewRecorder()
		api.GetOneBook(w, req, httprouter.Params{httprouter.Param{Key: "id", Value: "b:1"}})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	})
}

// TestGetAllBooksHandler ensures fetching the collection returns the
// total field and maps a storage failure to 500.
func TestGetAllBooksHandler(t *testing.T) {
	t.Run("should pass: two books", func(t *testing.T) {
		mockRepo := &MockBookStorage{
			GetAllFunc: func(ctx context.Context) ([]Book, error) {
				return []Book{{ID: "b:0"}, {ID: "b:1"}}, nil
			},
		}
		api := newTestAPIHandler(mockRepo, okQueuer())
		req := httptest.NewRequest(http.MethodGet, "/v1/books", nil)
		w := httptest.NewRecorder()
		api.GetAllBooks(w, req, httprouter.Params{})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusOK, res.StatusCode)
		data, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		resultMap := make(map[string]interface{})
		assert.NoError(t, json.Unmarshal(data, &resultMap))
		assert.Equal(t, float64(2), resultMap["total"])
		assert.Equal(t, "All books fetched successfully.", resultMap["message"])
		books, ok := resultMap["data"].([]interface{})
		assert.True(t, ok)
		assert.Equal(t, 2, len(books))
	})

	t.Run("should fail: storage failure", func(t *testing.T) {
		mockRepo := &MockBookStorage{
			GetAllFunc: func(ctx context.Context) ([]Book, error) {
				return nil, errors.New("storage failure")
			},
		}
		api := newTestAPIHandler(mockRepo, okQueuer())
		req := httptest.NewRequest(http.MethodGet, "/v1/books", nil)
		w := httptest.NewRecorder()
		api.GetAllBooks(w, req, httprouter.Params{})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	})
}

// TestDeleteOneBookHandler ensures the delete endpoint checks the
// existence of the book before removing it.
func TestDeleteOneBookHandler(t *testing.T) {
	storedBook := Book{ID: "b:0", Title: "Test book title"}

	t.Run("should pass: existing book", func(t *testing.T) {
		deleted := false
		mockRepo := &MockBookStorage{
			GetOneFunc: func(ctx context.Context, id string) (Book, error) {
				return storedBook, nil
			},
			DeleteFunc: func(ctx context.Context, id string) error {
				deleted = true
				return nil
			},
		}
		api := newTestAPIHandler(mockRepo, okQueuer())
		req := httptest.NewRequest(http.MethodDelete, "/v1/books/b:0", nil)
		w := httptest.NewRecorder()
		api.DeleteOneBook(w, req, httprouter.Params{httprouter.Param{Key: "id", Value: "b:0"}})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.True(t, deleted)
		data, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		resultMap := make(map[string]interface{})
		assert.NoError(t, json.Unmarshal(data, &resultMap))
		assert.Equal(t, "Book deleted successfully.", resultMap["message"])
	})

	t.Run("should fail: missing book", func(t *testing.T) {
		mockRepo := &MockBookStorage{
			GetOneFunc: func(ctx context.Context, id string) (Book, error) {
				return Book{}, ErrBookNotFound
			},
		}
		api := newTestAPIHandler(mockRepo, okQueuer())

		missingBookID := "b:cb8f2136-fae4-4200-85d9-3533c7f8c70d"
		req := httptest.NewRequest(http.MethodDelete, "/v1/books/"+missingBookID, nil)
		w := httptest.NewRecorder()
		api.DeleteOneBook(w, req, httprouter.Params{httprouter.Param{Key: "id", Value: missingBookID}})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Equal(t, "application/json; charset=UTF-8", res.Header.Get("Content-Type"))
		data, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		expected := `{"requestid":"", "status":404, "message":"book does not exist",
		"data":{"id":"", "title":"", "description":"", "author":"", "price":"", "createdAt":"", "updatedAt":""}}`
		assert.JSONEq(t, expected, string(data))
	})

	t.Run("should fail: storage failure on delete", func(t *testing.T) {
		mockRepo := &MockBookStorage{
			GetOneFunc: func(ctx context.Context, id string) (Book, error) {
				return storedBook, nil
			},
			DeleteFunc: func(ctx context.Context, id string) error {
				return errors.New("storage failure")
			},
		}
		api := newTestAPIHandler(mockRepo, okQueuer())
		req := httptest.NewRequest(http.MethodDelete, "/v1/books/b:0", nil)
		w := httptest.NewRecorder()
		api.DeleteOneBook(w, req, httprouter.Params{httprouter.Param{Key: "id", Value: "b:0"}})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	})
}

// TestUpdateBookHandler ensures the replace endpoint rejects id mismatches
// before touching the storage and keeps a missing book distinguishable
// from an invalid payload.
//
//nolint:funlen
func TestUpdateBookHandler(t *testing.T) {
	existing := Book{
		ID:          "1",
		Title:       "Old title",
		Description: "Old description",
		Author:      "Jerome Amon",
		Price:       "10$",
		CreatedAt:   "2023-07-01 10:00:00 +0000 UTC",
		UpdatedAt:   "2023-07-01 10:00:00 +0000 UTC",
	}

	t.Run("should pass: full replacement", func(t *testing.T) {
		var updated Book
		mockRepo := &MockBookStorage{
			GetOneFunc: func(ctx context.Context, id string) (Book, error) {
				return existing, nil
			},
			UpdateFunc: func(ctx context.Context, id string, book Book) (Book, error) {
				updated = book
				return book, nil
			},
		}
		api := newTestAPIHandler(mockRepo, okQueuer())

		payload := []byte(`{"id":"1", "title":"New title", "description":"New description", "author":"Jerome Amon", "price":"20$"}`)
		req := httptest.NewRequest(http.MethodPut, "/v1/books/1", bytes.NewBuffer(payload))
		w := httptest.NewRecorder()
		api.UpdateBook(w, req, httprouter.Params{httprouter.Param{Key: "id", Value: "1"}})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusOK, res.StatusCode)

		// creation timestamp survives the replacement, update one is restamped.
		assert.Equal(t, existing.CreatedAt, updated.CreatedAt)
		assert.Equal(t, mockedTime, updated.UpdatedAt)
		assert.Equal(t, "New title", updated.Title)

		data, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		resultMap := make(map[string]interface{})
		assert.NoError(t, json.Unmarshal(data, &resultMap))
		assert.Equal(t, "Book updated successfully.", resultMap["message"])
		bookMap, ok := resultMap["data"].(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, "1", bookMap["id"])
		assert.Equal(t, existing.CreatedAt, bookMap["createdAt"])
	})

	t.Run("should fail: body id does not match path id", func(t *testing.T) {
		// no storage call at all is expected on mismatch so both
		// mock functions report any access.
		read, wrote := false, false
		mockRepo := &MockBookStorage{
			GetOneFunc: func(ctx context.Context, id string) (Book, error) {
				read = true
				return existing, nil
			},
			UpdateFunc: func(ctx context.Context, id string, book Book) (Book, error) {
				wrote = true
				return book, nil
			},
		}
		api := newTestAPIHandler(mockRepo, okQueuer())

		payload := []byte(`{"id":"1", "title":"New title", "description":"New description", "author":"Jerome Amon", "price":"20$"}`)
		req := httptest.NewRequest(http.MethodPut, "/v1/books/2", bytes.NewBuffer(payload))
		w := httptest.NewRecorder()
		api.UpdateBook(w, req, httprouter.Params{httprouter.Param{Key: "id", Value: "2"}})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.False(t, read)
		assert.False(t, wrote)

		data, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		resultMap := make(map[string]interface{})
		assert.NoError(t, json.Unmarshal(data, &resultMap))
		assert.Equal(t, "book id in body does not match the path id", resultMap["message"])
	})

	t.Run("should fail: missing book", func(t *testing.T) {
		mockRepo := &MockBookStorage{
			GetOneFunc: func(ctx context.Context, id string) (Book, error) {
				return Book{}, ErrBookNotFound
			},
		}
		api := newTestAPIHandler(mockRepo, okQueuer())

		payload := []byte(`{"id":"1", "title":"New title", "description":"New description", "author":"Jerome Amon", "price":"20$"}`)
		req := httptest.NewRequest(http.MethodPut, "/v1/books/1", bytes.NewBuffer(payload))
		w := httptest.NewRecorder()
		api.UpdateBook(w, req, httprouter.Params{httprouter.Param{Key: "id", Value: "1"}})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusNotFound, res.StatusCode)

		data, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		resultMap := make(map[string]interface{})
		assert.NoError(t, json.Unmarshal(data, &resultMap))
		assert.Equal(t, "book does not exist", resultMap["message"])
	})

	t.Run("should fail: existence read failure", func(t *testing.T) {
		mockRepo := &MockBookStorage{
			GetOneFunc: func(ctx context.Context, id string) (Book, error) {
				return Book{}, errors.New("storage failure")
			},
		}
		api := newTestAPIHandler(mockRepo, okQueuer())

		payload := []byte(`{"id":"1", "title":"New title", "description":"New description", "author":"Jerome Amon", "price":"20$"}`)
		req := httptest.NewRequest(http.MethodPut, "/v1/books/1", bytes.NewBuffer(payload))
		w := httptest.NewRecorder()
		api.UpdateBook(w, req, httprouter.Params{httprouter.Param{Key: "id", Value: "1"}})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	})

	t.Run("should fail: invalid replacement payload", func(t *testing.T) {
		wrote := false
		mockRepo := &MockBookStorage{
			GetOneFunc: func(ctx context.Context, id string) (Book, error) {
				return existing, nil
			},
			UpdateFunc: func(ctx context.Context, id string, book Book) (Book, error) {
				wrote = true
				return book, nil
			},
		}
		api := newTestAPIHandler(mockRepo, okQueuer())

		payload := []byte(`{"id":"1", "title":"", "description":"New description", "author":"Jerome Amon", "price":"20$"}`)
		req := httptest.NewRequest(http.MethodPut, "/v1/books/1", bytes.NewBuffer(payload))
		w := httptest.NewRecorder()
		api.UpdateBook(w, req, httprouter.Params{httprouter.Param{Key: "id", Value: "1"}})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.False(t, wrote)

		data, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		expected := `{"requestid":"", "status":400, "message":"failed to update the book", "data":["title is required"]}`
		assert.JSONEq(t, expected, string(data))
	})

	t.Run("should fail: storage failure on replacement", func(t *testing.T) {
		mockRepo := &MockBookStorage{
			GetOneFunc: func(ctx context.Context, id string) (Book, error) {
				return existing, nil
			},
			UpdateFunc: func(ctx context.Context, id string, book Book) (Book, error) {
				return book, errors.New("storage failure")
			},
		}
		api := newTestAPIHandler(mockRepo, okQueuer())

		payload := []byte(`{"id":"1", "title":"New title", "description":"New description", "author":"Jerome Amon", "price":"20$"}`)
		req := httptest.NewRequest(http.MethodPut, "/v1/books/1", bytes.NewBuffer(payload))
		w := httptest.NewRecorder()
		api.UpdateBook(w, req, httprouter.Params{httprouter.Param{Key: "id", Value: "1"}})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	})
}

// TestBooksLifecycleScenario drives the api endpoints through a full
// create/get/update/delete sequence backed by an in-memory storage.
func TestBooksLifecycleScenario(t *testing.T) {
	store := map[string]Book{}
	mockRepo := &MockBookStorage{
		AddFunc: func(ctx context.Context, id string, book Book) error {
			store[id] = book
			return nil
		},
		GetOneFunc: func(ctx context.Context, id string) (Book, error) {
			book, ok := store[id]
			if !ok {
				return Book{}, ErrBookNotFound
			}
			return book, nil
		},
		UpdateFunc: func(ctx context.Context, id string, book Book) (Book, error) {
			store[id] = book
			return book, nil
		},
		DeleteFunc: func(ctx context.Context, id string) error {
			if _, ok := store[id]; !ok {
				return ErrBookNotFound
			}
			delete(store, id)
			return nil
		},
	}
	api := newTestAPIHandler(mockRepo, okQueuer())

	do := func(method, target string, body []byte, ps httprouter.Params, handle httprouter.Handle) *http.Response {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewBuffer(body)
		}
		req := httptest.NewRequest(method, target, reader)
		w := httptest.NewRecorder()
		handle(w, req, ps)
		return w.Result()
	}

	// create a book under the caller chosen id "1".
	res := do(http.MethodPost, "/v1/books",
		[]byte(`{"id":"1", "title":"A", "description":"B", "author":"C", "price":"1$"}`), httprouter.Params{}, api.CreateBook)
	require.Equal(t, http.StatusOK, res.StatusCode)
	res.Body.Close()

	// the created book is retrievable.
	res = do(http.MethodGet, "/v1/books/1", nil,
		httprouter.Params{httprouter.Param{Key: "id", Value: "1"}}, api.GetOneBook)
	require.Equal(t, http.StatusOK, res.StatusCode)
	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	res.Body.Close()
	resultMap := make(map[string]interface{})
	require.NoError(t, json.Unmarshal(data, &resultMap))
	bookMap := resultMap["data"].(map[string]interface{})
	assert.Equal(t, "1", bookMap["id"])
	assert.Equal(t, "A", bookMap["title"])

	// replacing under a different path id is rejected.
	res = do(http.MethodPut, "/v1/books/2",
		[]byte(`{"id":"1", "title":"A2", "description":"B", "author":"C", "price":"1$"}`),
		httprouter.Params{httprouter.Param{Key: "id", Value: "2"}}, api.UpdateBook)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	res.Body.Close()

	// deleting the book then fetching it again reports a missing book.
	res = do(http.MethodDelete, "/v1/books/1", nil,
		httprouter.Params{httprouter.Param{Key: "id", Value: "1"}}, api.DeleteOneBook)
	require.Equal(t, http.StatusOK, res.StatusCode)
	res.Body.Close()

	res = do(http.MethodGet, "/v1/books/1", nil,
		httprouter.Params{httprouter.Param{Key: "id", Value: "1"}}, api.GetOneBook)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	res.Body.Close()
}
