package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.jwtMiddleware)
	// File bodies are binary; the JSON content-type middleware stays off.
	fileMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders)

	mux := pat.New()

	// Auth
	mux.Post("/auth/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/auth/token", standardMiddleware.ThenFunc(app.userHandler.Token))
	mux.Post("/auth/validate", standardMiddleware.ThenFunc(app.userHandler.ValidateToken))

	// Items. Literal paths are registered before /items/:id so pat does not
	// swallow them as an id.
	mux.Post("/items", authMiddleware.ThenFunc(app.itemHandler.CreateItem))
	mux.Get("/items", standardMiddleware.ThenFunc(app.itemHandler.GetItems))
	mux.Get("/items/with-store", standardMiddleware.ThenFunc(app.itemHandler.GetItemsWithStores))
	mux.Get("/items/with-store-custom-sql", standardMiddleware.ThenFunc(app.itemHandler.GetItemsWithStoresCustomSQL))
	mux.Get("/items/paginated", standardMiddleware.ThenFunc(app.itemHandler.GetPaginatedItems))
	mux.Get("/items/paginated-custom-sql", standardMiddleware.ThenFunc(app.itemHandler.GetPaginatedItemsCustomSQL))
	mux.Post("/items/:id/stores", authMiddleware.ThenFunc(app.itemStoreHandler.CreateStore))
	mux.Get("/items/:id/stores", standardMiddleware.ThenFunc(app.itemStoreHandler.GetStoresByItem))
	mux.Get("/items/:id", standardMiddleware.ThenFunc(app.itemHandler.GetItemByID))
	mux.Put("/items/:id", authMiddleware.ThenFunc(app.itemHandler.UpdateItem))
	mux.Del("/items/:id", authMiddleware.ThenFunc(app.itemHandler.DeleteItem))

	// Store listings
	mux.Put("/stores/:id", authMiddleware.ThenFunc(app.itemStoreHandler.UpdateStore))
	mux.Del("/stores/:id", authMiddleware.ThenFunc(app.itemStoreHandler.DeleteStore))

	// Files
	mux.Post("/files/upload", fileMiddleware.ThenFunc(app.fileHandler.Upload))
	mux.Post("/files/upload-multiple", fileMiddleware.ThenFunc(app.fileHandler.UploadMultiple))
	mux.Get("/files/download/:id", fileMiddleware.ThenFunc(app.fileHandler.Download))
	mux.Get("/files/images/:id", fileMiddleware.ThenFunc(app.fileHandler.ServeImage))

	return mux
}
