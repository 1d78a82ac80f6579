package web

import (
	"net/http"
	"strings"

	"playerhub/internal/application/orchestrators"
	webhookDomain "playerhub/internal/domain/webhook"
)

func handleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	switch r.Method {
	case "GET":
		cfg, ok, err := stores.WebhookStore.GetActive(ctx)
		if err != nil {
			storeError(w, err)
			return
		}
		if !ok {
			writeJSON(w, http.StatusOK, emptyObject)
			return
		}
		writeJSON(w, http.StatusOK, cfg)

	case "POST":
		var input struct {
			URL          string `json:"url"`
			CreateBackup bool   `json:"createBackup"`
		}
		if err := decode(r, &input); err != nil {
			badRequest(w, "invalid JSON body")
			return
		}
		cfg, err := orchestrators.ExecuteConfigureWebhook(ctx, orchestrators.ConfigureWebhookInput{
			URL:          input.URL,
			CreateBackup: input.CreateBackup,
		}, orchestrators.ConfigureWebhookDeps{WebhookStore: stores.WebhookStore, Now: timeNow})
		if err != nil {
			if strings.Contains(err.Error(), "required") {
				badRequest(w, err.Error())
				return
			}
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, cfg)

	case "DELETE":
		if err := stores.WebhookStore.DeleteAll(ctx); err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})

	default:
		methodNotAllowed(w)
	}
}

// handleWebhookByID serves PUT /api/webhook/{id}: a partial update of the
// stored recovery fields.
func handleWebhookByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != "PUT" {
		methodNotAllowed(w)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/webhook/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	var input struct {
		URL          *string               `json:"url"`
		IsActive     *bool                 `json:"isActive"`
		Backup       *webhookDomain.Backup `json:"backupData"`
		RecoveryCode *string               `json:"recoveryCode"`
		ConfigExport *string               `json:"configExport"`
	}
	if err := decode(r, &input); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	patch := webhookDomain.Patch{
		URL:          input.URL,
		IsActive:     input.IsActive,
		RecoveryCode: input.RecoveryCode,
		ConfigExport: input.ConfigExport,
	}
	if input.Backup != nil {
		b := input.Backup
		patch.Backup = &b
	}

	cfg, ok, err := stores.WebhookStore.Update(r.Context(), id, patch)
	if err != nil {
		storeError(w, err)
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "webhook not found"})
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}
