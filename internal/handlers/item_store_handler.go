package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"itemBack/internal/models"
	"itemBack/internal/services"
)

type ItemStoreHandler struct {
	Service *services.ItemStoreService
}

type storeCreateRequest struct {
	StoreName string  `json:"store_name"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
}

type storeUpdateRequest struct {
	StoreName *string  `json:"store_name"`
	Price     *float64 `json:"price"`
	Stock     *int     `json:"stock"`
}

func (h *ItemStoreHandler) CreateStore(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "Invalid item ID")
		return
	}

	var req storeCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	userID, ok := requesterID(r)
	if !ok {
		writeError(w, errAuthRequired)
		return
	}

	store, err := h.Service.CreateStore(r.Context(), userID, models.ItemStore{
		ItemID:    itemID,
		StoreName: req.StoreName,
		Price:     req.Price,
		Stock:     req.Stock,
	})
	if err != nil {
		if isForeignKeyConstraintError(err) {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse(models.CodeValidation, "Item does not exist."))
			return
		}
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "Store listing created successfully.", store)
}

func (h *ItemStoreHandler) GetStoresByItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "Invalid item ID")
		return
	}

	stores, err := h.Service.GetStoresByItem(r.Context(), itemID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Success", stores)
}

func (h *ItemStoreHandler) UpdateStore(w http.ResponseWriter, r *http.Request) {
	storeID, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "Invalid store ID")
		return
	}

	var req storeUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}
	if req.StoreName == nil && req.Price == nil && req.Stock == nil {
		writeBadRequest(w, "Nothing to update. Provide store_name, price or stock.")
		return
	}

	userID, ok := requesterID(r)
	if !ok {
		writeError(w, errAuthRequired)
		return
	}

	store, err := h.Service.UpdateStore(r.Context(), userID, storeID, req.StoreName, req.Price, req.Stock)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Store listing updated successfully.", store)
}

func (h *ItemStoreHandler) DeleteStore(w http.ResponseWriter, r *http.Request) {
	storeID, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "Invalid store ID")
		return
	}

	userID, ok := requesterID(r)
	if !ok {
		writeError(w, errAuthRequired)
		return
	}

	message, err := h.Service.DeleteStore(r.Context(), userID, storeID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, message, nil)
}
