package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"itemBack/internal/services"
)

type ItemHandler struct {
	Service *services.ItemService
}

type itemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	userID, ok := requesterID(r)
	if !ok {
		writeError(w, errAuthRequired)
		return
	}

	var name, description string
	if req.Name != nil {
		name = *req.Name
	}
	if req.Description != nil {
		description = *req.Description
	}

	item, err := h.Service.CreateItem(r.Context(), name, description, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "Item created successfully.", item)
}

func (h *ItemHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.GetItems(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Success", items)
}

func (h *ItemHandler) GetItemByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "Invalid item ID")
		return
	}

	item, err := h.Service.GetItemByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Success", item)
}

func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "Invalid item ID")
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}
	if req.Name == nil && req.Description == nil {
		writeBadRequest(w, "Nothing to update. Provide name or description.")
		return
	}

	userID, ok := requesterID(r)
	if !ok {
		writeError(w, errAuthRequired)
		return
	}

	item, err := h.Service.UpdateItem(r.Context(), id, userID, req.Name, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Item updated successfully.", item)
}

func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "Invalid item ID")
		return
	}

	userID, ok := requesterID(r)
	if !ok {
		writeError(w, errAuthRequired)
		return
	}

	message, err := h.Service.DeleteItem(r.Context(), id, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, message, nil)
}

func (h *ItemHandler) GetItemsWithStores(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.GetItemsWithStores(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Success", items)
}

func (h *ItemHandler) GetItemsWithStoresCustomSQL(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.GetItemsWithStoresCustomSQL(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Success", items)
}

func (h *ItemHandler) GetPaginatedItems(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 10)

	result, err := h.Service.GetPaginatedItems(r.Context(), page, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Success", result)
}

func (h *ItemHandler) GetPaginatedItemsCustomSQL(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 10)

	result, err := h.Service.GetPaginatedItemsCustomSQL(r.Context(), page, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Success", result)
}
