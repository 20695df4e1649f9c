// Package v1 contains the route handlers for the workspace-secrets API.
package v1

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/devworkspace-io/workspace-secrets/pkg/errors"
	"github.com/devworkspace-io/workspace-secrets/pkg/logger"
	"github.com/devworkspace-io/workspace-secrets/pkg/namespaces"
	"github.com/devworkspace-io/workspace-secrets/pkg/secrets"
)

// CredentialRoutes defines the routes for the credential API.
type CredentialRoutes struct {
	manager *secrets.Manager
}

// CredentialRouter creates a new router for the credential API.
func CredentialRouter(manager *secrets.Manager) http.Handler {
	routes := CredentialRoutes{manager: manager}

	r := chi.NewRouter()
	r.Post("/", routes.saveCredential)
	return r
}

type saveCredentialRequest struct {
	// Actor identifies the user the credential is saved for.
	Actor actorRequest `json:"actor"`

	// Token is the personal access token to persist.
	Token secrets.PersonalAccessToken `json:"token"`
}

type actorRequest struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

// saveCredential persists a git credential secret for the actor. Unlike the
// profile/preferences paths, credential save is a user-visible action, so
// failures are always surfaced.
func (c *CredentialRoutes) saveCredential(w http.ResponseWriter, r *http.Request) {
	var req saveCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Errorf("failed to decode request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Actor.UserID == "" || req.Token.SCMProviderURL == "" || req.Token.Token == "" {
		http.Error(w, "actor.userId, token.scmProviderUrl and token.token are required", http.StatusBadRequest)
		return
	}

	actor := namespaces.Actor{UserID: req.Actor.UserID, UserName: req.Actor.UserName}
	if req.Token.UserID == "" {
		req.Token.UserID = req.Actor.UserID
	}

	if err := c.manager.CreateOrReplace(r.Context(), actor, req.Token); err != nil {
		logger.Errorf("failed to save git credential: %v", err)
		switch {
		case errors.IsUnsatisfiedPrecondition(err):
			http.Error(w, "no workspace namespace exists for the user", http.StatusPreconditionFailed)
		default:
			http.Error(w, "failed to save git credential", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
