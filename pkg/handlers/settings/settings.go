package settings

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/chris/library-lending/pkg/api"
	"github.com/chris/library-lending/pkg/fees"
	"github.com/chris/library-lending/pkg/mapping"
	"github.com/chris/library-lending/pkg/storage"
)

// SettingsHandler serves the admin-editable late fee configuration.
type SettingsHandler struct {
	Store storage.SettingsStore
	// Fees resolves the configuration in effect, including the default when nothing is stored.
	Fees fees.Provider
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(store storage.SettingsStore, provider fees.Provider) *SettingsHandler {
	return &SettingsHandler{Store: store, Fees: provider}
}

// GetLateFeeConfig returns the configuration the next fee computation will use.
func (h *SettingsHandler) GetLateFeeConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.Fees.LateFeeConfig(r.Context())
	if err != nil {
		slog.Error("failed to read late fee configuration", "error", err)
		http.Error(w, "Failed to retrieve late fee configuration", http.StatusInternalServerError)
		return
	}

	writeConfig(w, cfg)
}

// PutLateFeeConfig replaces the configuration. It applies to every open and closed loan from the next read on.
func (h *SettingsHandler) PutLateFeeConfig(w http.ResponseWriter, r *http.Request) {
	var body api.LateFeeConfig
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	cfg := mapping.ToDomainLateFeeConfig(&body)
	if err := cfg.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	if err := h.Store.PutLateFeeConfig(r.Context(), cfg); err != nil {
		slog.Error("failed to save late fee configuration", "error", err)
		http.Error(w, "Failed to save late fee configuration", http.StatusInternalServerError)
		return
	}

	writeConfig(w, cfg)
}

func writeConfig(w http.ResponseWriter, cfg fees.Config) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiLateFeeConfig(cfg)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
