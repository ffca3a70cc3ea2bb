package main

import (
	"context"
	"time"
)

// This file contains mocks definitions needed to perform unit tests.

type MockBookStorage struct {
	AddFunc    func(ctx context.Context, id string, book Book) error
	GetOneFunc func(ctx context.Context, id string) (Book, error)
	DeleteFunc func(ctx context.Context, id string) error
	UpdateFunc func(ctx context.Context, id string, book Book) (Book, error)
	GetAllFunc func(ctx context.Context) ([]Book, error)
}

// Add mocks the behavior of book creation by the repository.
func (m *MockBookStorage) Add(ctx context.Context, id string, book Book) error {
	return m.AddFunc(ctx, id, book)
}

// GetOne mocks the behavior of retrieving a book by the repository.
func (m *MockBookStorage) GetOne(ctx context.Context, id string) (Book, error) {
	return m.GetOneFunc(ctx, id)
}

// Delete mocks the behavior of deleting a book by the repository.
func (m *MockBookStorage) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

// Update mocks the behavior of updating a book by the repository.
func (m *MockBookStorage) Update(ctx context.Context, id string, book Book) (Book, error) {
	return m.UpdateFunc(ctx, id, book)
}

// GetAll mocks the behavior of retrieving all books by the repository.
func (m *MockBookStorage) GetAll(ctx context.Context) ([]Book, error) {
	return m.GetAllFunc(ctx)
}

// MockQueuer implements a fake Queuer.
type MockQueuer struct {
	PushFunc func(ctx context.Context, qid string, book Book) error
	PopFunc  func(ctx context.Context, qids ...string) (string, Book, error)
}

// Push mocks the behavior of enqueuing a book.
func (m *MockQueuer) Push(ctx context.Context, qid string, book Book) error {
	return m.PushFunc(ctx, qid, book)
}

// Pop mocks the behavior of dequeuing a book.
func (m *MockQueuer) Pop(ctx context.Context, qids ...string) (string, Book, error) {
	return m.PopFunc(ctx, qids...)
}

// MockClocker implements a fake Clocker.
type MockClocker struct {
	MockNow time.Time
}

// NewMockClocker returns a mocked instance with fixed time.
func NewMockClocker() *MockClocker {
	return &MockClocker{time.Date(2023, 0o7, 0o2, 0o0, 0o0, 0o0, 0o00000000, time.UTC)}
}

// Now returns an already defined time to be used as mock. This
// equals to `Sun, 02 Jul 2023 00:00:00 UTC` in time.RFC1123 format.
// equals to `2023-07-02 00:00:00 +0000 UTC` in String format.
func (mck *MockClocker) Now() time.Time {
	return mck.MockNow
}

// Zero returns zero time.
func (mck *MockClocker) Zero() time.Time {
	return time.Time{}
}

// MockUIDHandler implements a fake UIDHandler.
type MockUIDHandler struct {
	MockedUID string
}

// NewMockUIDHandler returns a mocked instance with predictable id.
func NewMockUIDHandler(id string) *MockUIDHandler {
	return &MockUIDHandler{MockedUID: id}
}

// Generate constructs a predictable id to be used as mock.
func (muid *MockUIDHandler) Generate(prefix string) string {
	return prefix + ":" + muid.MockedUID
}

// MockBookAPIClient implements a fake BookAPIClient for the web views tests.
type MockBookAPIClient struct {
	GetAllFunc func(ctx context.Context) ([]Book, int, error)
	GetOneFunc func(ctx context.Context, id string) (Book, int, error)
	CreateFunc func(ctx context.Context, book Book) (Book, int, error)
	UpdateFunc func(ctx context.Context, book Book) (Book, int, error)
	DeleteFunc func(ctx context.Context, id string) (int, error)
}

// GetAll mocks the behavior of fetching all books from the api.
func (m *MockBookAPIClient) GetAll(ctx context.Context) ([]Book, int, error) {
	return m.GetAllFunc(ctx)
}

// GetOne mocks the behavior of fetching one book from the api.
func (m *MockBookAPIClient) GetOne(ctx context.Context, id string) (Book, int, error) {
	return m.GetOneFunc(ctx, id)
}

// Create mocks the behavior of submitting a new book to the api.
func (m *MockBookAPIClient) Create(ctx context.Context, book Book) (Book, int, error) {
	return m.CreateFunc(ctx, book)
}

// Update mocks the behavior of submitting a book replacement to the api.
func (m *MockBookAPIClient) Update(ctx context.Context, book Book) (Book, int, error) {
	return m.UpdateFunc(ctx, book)
}

// Delete mocks the behavior of asking the api to remove a book.
func (m *MockBookAPIClient) Delete(ctx context.Context, id string) (int, error) {
	return m.DeleteFunc(ctx, id)
}
