package main

import (
	"github.com/julienschmidt/httprouter"
)

// SetupWebRoutes injects the server-rendered views endpoints. Action names
// come before the book id so no route conflicts with the router wildcards.
func (wh *WebHandler) SetupWebRoutes(router *httprouter.Router, m *MiddlewareMap) *httprouter.Router {
	router.RedirectTrailingSlash = true
	router.GET("/web/books", m.public(wh.BooksPage))
	router.GET("/web/books/new", m.public(wh.NewBookPage))
	router.GET("/web/books/view/:id", m.public(wh.BookPage))
	router.GET("/web/books/edit/:id", m.public(wh.EditBookPage))
	router.POST("/web/books/create", m.public(wh.SubmitNewBook))
	router.POST("/web/books/update/:id", m.public(wh.SubmitEditBook))
	router.POST("/web/books/delete/:id", m.public(wh.SubmitDeleteBook))
	return router
}
