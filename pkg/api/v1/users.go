package v1

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/devworkspace-io/workspace-secrets/pkg/events"
	"github.com/devworkspace-io/workspace-secrets/pkg/logger"
	"github.com/devworkspace-io/workspace-secrets/pkg/users"
)

// UserRoutes defines the routes for the user directory API.
type UserRoutes struct {
	directory *users.Directory
	bus       *events.Bus
}

// UserRouter creates a new router for the user directory API.
func UserRouter(directory *users.Directory, bus *events.Bus) http.Handler {
	routes := UserRoutes{directory: directory, bus: bus}

	r := chi.NewRouter()
	r.Post("/", routes.registerUser)
	return r
}

type registerUserRequest struct {
	users.User  `json:",inline"`
	Preferences map[string]string `json:"preferences,omitempty"`
}

// registerUser persists a user record in the directory and publishes the
// user-persisted event, which regenerates the user information secrets.
func (u *UserRoutes) registerUser(w http.ResponseWriter, r *http.Request) {
	var req registerUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Errorf("failed to decode request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID == "" || req.Name == "" {
		http.Error(w, "id and name are required", http.StatusBadRequest)
		return
	}

	if err := u.directory.Register(r.Context(), req.User, req.Preferences); err != nil {
		logger.Errorf("failed to register user: %v", err)
		http.Error(w, "failed to register user", http.StatusInternalServerError)
		return
	}

	u.bus.PublishUserPersisted(r.Context(), events.UserPersistedEvent{User: req.User})

	w.WriteHeader(http.StatusCreated)
}
