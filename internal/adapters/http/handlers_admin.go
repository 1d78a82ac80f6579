package web

import (
	"errors"
	"net/http"

	"playerhub/internal/application/orchestrators"
	webhookDomain "playerhub/internal/domain/webhook"
)

func passwordDeps() orchestrators.ValidatePasswordDeps {
	return orchestrators.ValidatePasswordDeps{Credentials: stores.Credentials, Now: timeNow}
}

func recoveryDeps() orchestrators.RecoveryDeps {
	return orchestrators.RecoveryDeps{WebhookStore: stores.WebhookStore, Now: timeNow}
}

// handlePasswordGenerate mints a fresh 24h admin password and delivers it
// through the notification channels. The response never carries the
// plaintext.
func handlePasswordGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		methodNotAllowed(w)
		return
	}
	result, err := orchestrators.ExecuteGeneratePassword(r.Context(), orchestrators.GeneratePasswordDeps{
		WebhookStore: stores.WebhookStore,
		Credentials:  stores.Credentials,
		Notifier:     notifier,
		EmailSender:  emailSender,
		EmailTarget:  emailTarget,
		Now:          timeNow,
	})
	if errors.Is(err, orchestrators.ErrWebhookNotConfigured) {
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func handlePasswordValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		methodNotAllowed(w)
		return
	}
	var input struct {
		Password string `json:"password"`
	}
	if err := decode(r, &input); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	ok, err := orchestrators.ExecuteValidatePassword(r.Context(), input.Password, passwordDeps())
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"valid": ok})
}

// handlePassword serves GET (status without plaintext) and DELETE
// (immediate expiry).
func handlePassword(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		info, err := orchestrators.ExecutePasswordInfo(r.Context(), passwordDeps())
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, info)

	case "DELETE":
		if err := orchestrators.ExecuteExpirePassword(r.Context(), passwordDeps()); err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"expired": true})

	default:
		methodNotAllowed(w)
	}
}

func handleWebhookTest(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		methodNotAllowed(w)
		return
	}
	ok, err := orchestrators.ExecuteTestWebhook(r.Context(), orchestrators.TestWebhookDeps{
		WebhookStore: stores.WebhookStore,
		Notifier:     notifier,
		Now:          timeNow,
	})
	if errors.Is(err, orchestrators.ErrWebhookNotConfigured) {
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"delivered": ok})
}

func handleRecoveryCode(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		methodNotAllowed(w)
		return
	}
	code, err := orchestrators.ExecuteGenerateRecoveryCode(r.Context(), recoveryDeps())
	if errors.Is(err, orchestrators.ErrWebhookNotConfigured) {
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"recoveryCode": code})
}

// handleRecover restores a configuration, either from the active config's
// backup snapshot or from a presented recovery code.
func handleRecover(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		methodNotAllowed(w)
		return
	}
	var input struct {
		RecoveryCode string `json:"recoveryCode"`
	}
	if err := decode(r, &input); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	var cfg webhookDomain.Config
	var err error
	if input.RecoveryCode != "" {
		cfg, err = orchestrators.ExecuteRecoverWithCode(r.Context(), input.RecoveryCode, recoveryDeps())
	} else {
		cfg, err = orchestrators.ExecuteRecoverFromBackup(r.Context(), recoveryDeps())
	}
	switch {
	case errors.Is(err, orchestrators.ErrInvalidRecoveryCode):
		writeJSON(w, http.StatusForbidden, map[string]string{"error": err.Error()})
	case errors.Is(err, orchestrators.ErrNoBackup), errors.Is(err, orchestrators.ErrWebhookNotConfigured):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case err != nil:
		storeError(w, err)
	default:
		writeJSON(w, http.StatusOK, cfg)
	}
}

func handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		methodNotAllowed(w)
		return
	}
	blob, err := orchestrators.ExecuteExportConfiguration(r.Context(), recoveryDeps())
	if errors.Is(err, orchestrators.ErrWebhookNotConfigured) {
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"configExport": blob})
}

func handleImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		methodNotAllowed(w)
		return
	}
	var input struct {
		ConfigExport string `json:"configExport"`
	}
	if err := decode(r, &input); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	cfg, err := orchestrators.ExecuteImportConfiguration(r.Context(), input.ConfigExport, recoveryDeps())
	if errors.Is(err, webhookDomain.ErrInvalidExport) {
		badRequest(w, err.Error())
		return
	}
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// handleReset wipes every webhook configuration. Irreversible.
func handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		methodNotAllowed(w)
		return
	}
	if err := orchestrators.ExecuteEmergencyReset(r.Context(), recoveryDeps()); err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"reset": true})
}
