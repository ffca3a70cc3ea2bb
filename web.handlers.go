package main

import (
	"html/template"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// WebHandler serves the server-rendered views of the book store. It never
// reaches the storage layer directly: every operation goes through the
// books api client. Any api answer other than 200 collapses into the
// single not-found page, the real status only survives in the logs.
type WebHandler struct {
	logger *zap.Logger
	config *Config
	client BookAPIClient
	tmpl   *template.Template
}

// NewWebHandler provides a ready to use web views handler.
func NewWebHandler(logger *zap.Logger, config *Config, client BookAPIClient) (*WebHandler, error) {
	tmpl, err := ParseWebTemplates()
	if err != nil {
		return nil, err
	}
	return &WebHandler{
		logger: logger,
		config: config,
		client: client,
		tmpl:   tmpl,
	}, nil
}

func (wh *WebHandler) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")
	if err := wh.tmpl.ExecuteTemplate(w, name, data); err != nil {
		wh.logger.Error("web: failed to render view", zap.String("view", name), zap.Error(err))
	}
}

// renderNotFound serves the fallback page used for every non-200 api answer.
func (wh *WebHandler) renderNotFound(w http.ResponseWriter, status int, err error) {
	wh.logger.Error("web: books api call did not succeed", zap.Int("api.status", status), zap.Error(err))
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")
	w.WriteHeader(http.StatusNotFound)
	if terr := wh.tmpl.ExecuteTemplate(w, "notfound", nil); terr != nil {
		wh.logger.Error("web: failed to render not found view", zap.Error(terr))
	}
}

// BooksPage lists all books of the store.
func (wh *WebHandler) BooksPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	books, status, err := wh.client.GetAll(r.Context())
	if err != nil || status != http.StatusOK {
		wh.renderNotFound(w, status, err)
		return
	}
	wh.render(w, "books", map[string]interface{}{"Books": books})
}

// BookPage shows the details of one book.
func (wh *WebHandler) BookPage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	book, status, err := wh.client.GetOne(r.Context(), ps.ByName("id"))
	if err != nil || status != http.StatusOK {
		wh.renderNotFound(w, status, err)
		return
	}
	wh.render(w, "book", map[string]interface{}{"Book": book})
}

// NewBookPage shows the creation form.
func (wh *WebHandler) NewBookPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	wh.render(w, "form", map[string]interface{}{
		"Title":  "Add a book",
		"Action": "/web/books/create",
		"Book":   Book{},
	})
}

// EditBookPage shows the edition form prefilled from the api.
func (wh *WebHandler) EditBookPage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	book, status, err := wh.client.GetOne(r.Context(), ps.ByName("id"))
	if err != nil || status != http.StatusOK {
		wh.renderNotFound(w, status, err)
		return
	}
	wh.render(w, "form", map[string]interface{}{
		"Title":  "Edit " + book.Title,
		"Action": "/web/books/update/" + book.ID,
		"Book":   book,
	})
}

// SubmitNewBook forwards the creation form to the api then
// redirects to the new book page on success.
func (wh *WebHandler) SubmitNewBook(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	book := Book{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Author:      r.FormValue("author"),
		Price:       r.FormValue("price"),
	}
	created, status, err := wh.client.Create(r.Context(), book)
	if err != nil || status != http.StatusOK {
		wh.renderNotFound(w, status, err)
		return
	}
	http.Redirect(w, r, "/web/books/view/"+created.ID, http.StatusSeeOther)
}

// SubmitEditBook forwards the edition form to the api as a full
// replacement then redirects to the book page on success.
func (wh *WebHandler) SubmitEditBook(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	book := Book{
		ID:          ps.ByName("id"),
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Author:      r.FormValue("author"),
		Price:       r.FormValue("price"),
	}
	updated, status, err := wh.client.Update(r.Context(), book)
	if err != nil || status != http.StatusOK {
		wh.renderNotFound(w, status, err)
		return
	}
	http.Redirect(w, r, "/web/books/view/"+updated.ID, http.StatusSeeOther)
}

// SubmitDeleteBook asks the api to remove the book then redirects to the list.
func (wh *WebHandler) SubmitDeleteBook(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	status, err := wh.client.Delete(r.Context(), ps.ByName("id"))
	if err != nil || status != http.StatusOK {
		wh.renderNotFound(w, status, err)
		return
	}
	http.Redirect(w, r, "/web/books", http.StatusSeeOther)
}
