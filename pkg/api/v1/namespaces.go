package v1

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/devworkspace-io/workspace-secrets/pkg/logger"
	"github.com/devworkspace-io/workspace-secrets/pkg/namespaces"
)

// NamespaceRoutes defines the routes for the namespace provisioning API.
type NamespaceRoutes struct {
	provisioner *namespaces.Provisioner
}

// NamespaceRouter creates a new router for the namespace provisioning API.
func NamespaceRouter(provisioner *namespaces.Provisioner) http.Handler {
	routes := NamespaceRoutes{provisioner: provisioner}

	r := chi.NewRouter()
	r.Post("/", routes.provisionNamespace)
	return r
}

type provisionNamespaceRequest struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

// provisionNamespace ensures the actor's workspace namespace exists and
// returns its metadata. User information secrets are written best-effort as
// part of provisioning; their failures never fail this call.
func (n *NamespaceRoutes) provisionNamespace(w http.ResponseWriter, r *http.Request) {
	var req provisionNamespaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Errorf("failed to decode request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.UserID == "" || req.UserName == "" {
		http.Error(w, "userId and userName are required", http.StatusBadRequest)
		return
	}

	meta, err := n.provisioner.Provision(r.Context(), namespaces.Actor{
		UserID:   req.UserID,
		UserName: req.UserName,
	})
	if err != nil {
		logger.Errorf("failed to provision namespace: %v", err)
		http.Error(w, "failed to provision namespace", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(meta); err != nil {
		http.Error(w, "failed to encode namespace metadata", http.StatusInternalServerError)
		return
	}
}
