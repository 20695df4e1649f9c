package namespaces

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/devworkspace-io/workspace-secrets/pkg/annotations"
	"github.com/devworkspace-io/workspace-secrets/pkg/events"
	"github.com/devworkspace-io/workspace-secrets/pkg/k8s"
	"github.com/devworkspace-io/workspace-secrets/pkg/logger"
	"github.com/devworkspace-io/workspace-secrets/pkg/telemetry"
	"github.com/devworkspace-io/workspace-secrets/pkg/users"
)

// Provisioner provisions workspace namespaces and maintains the fixed-name
// user profile and preferences secrets inside them.
//
// The user secrets are best-effort side effects: namespace provisioning must
// not fail because auxiliary user metadata could not be written, so every
// failure on that path is logged and swallowed.
type Provisioner struct {
	resolver    Resolver
	store       k8s.SecretStore
	users       users.Service
	preferences users.PreferenceService
}

// NewProvisioner creates a namespace provisioner.
func NewProvisioner(
	resolver Resolver,
	store k8s.SecretStore,
	userService users.Service,
	preferenceService users.PreferenceService,
) *Provisioner {
	return &Provisioner{
		resolver:    resolver,
		store:       store,
		users:       userService,
		preferences: preferenceService,
	}
}

// Provision ensures the actor's workspace namespace exists, then attempts to
// write the user profile and preferences secrets into it. Only the namespace
// provisioning itself can fail; secret failures are logged and swallowed.
func (p *Provisioner) Provision(ctx context.Context, actor Actor) (*Meta, error) {
	meta, err := p.resolver.Provision(ctx, actor)
	if err != nil {
		return nil, err
	}

	user, err := p.users.GetByID(ctx, actor.UserID)
	if err != nil {
		logger.Errorw("could not find current user, skipping creation of user information secrets",
			"user_id", actor.UserID, "error", err)
		telemetry.RecordAuxiliaryFailure("user_lookup")
		return meta, nil
	}

	if err := p.createOrUpdateSecrets(ctx, user); err != nil {
		logger.Errorw("failure while creating user information secrets",
			"user_id", user.ID, "error", err)
	}

	return meta, nil
}

// HandleUserPersisted reacts to a user-persisted event by (re)generating the
// user information secrets for the event's user. There is no subscriber
// contract to propagate errors, so failures are logged, never re-raised.
func (p *Provisioner) HandleUserPersisted(ctx context.Context, event events.UserPersistedEvent) {
	if err := p.createOrUpdateSecrets(ctx, &event.User); err != nil {
		logger.Errorw("failure while creating user information secrets",
			"user_id", event.User.ID, "error", err)
	}
}

func (p *Provisioner) createOrUpdateSecrets(ctx context.Context, user *users.User) error {
	namespace, err := p.resolver.EvaluateName(ctx, ResolutionContext{
		UserID:   user.ID,
		UserName: user.Name,
	})
	if err != nil {
		return err
	}

	profile := userSecret(annotations.UserProfileSecretName, annotations.UserProfileMountPath,
		map[string]string{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		})
	if err := p.store.CreateOrReplaceSecret(ctx, namespace, profile); err != nil {
		telemetry.RecordUpsert(telemetry.KindProfile, telemetry.OutcomeError)
		return err
	}
	telemetry.RecordUpsert(telemetry.KindProfile, telemetry.OutcomeCreated)

	preferences, err := p.preferences.Find(ctx, user.ID)
	if err != nil {
		logger.Errorw("could not find user preferences, skipping creation of user preferences secret",
			"user_id", user.ID, "error", err)
		telemetry.RecordAuxiliaryFailure("preferences_lookup")
		return nil
	}

	prefsSecret := userSecret(annotations.UserPreferencesSecretName, annotations.UserPreferencesMountPath,
		preferences)
	if err := p.store.CreateOrReplaceSecret(ctx, namespace, prefsSecret); err != nil {
		telemetry.RecordUpsert(telemetry.KindPreferences, telemetry.OutcomeError)
		return err
	}
	telemetry.RecordUpsert(telemetry.KindPreferences, telemetry.OutcomeCreated)

	return nil
}

// userSecret builds a fixed-name user information secret. Identity is the
// name, so the write is an unconditional create-or-replace with no matching.
func userSecret(name, mountPath string, data map[string]string) *corev1.Secret {
	byteData := make(map[string][]byte, len(data))
	for k, v := range data {
		byteData[k] = []byte(v)
	}

	return &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Name:        name,
			Labels:      annotations.UserSecretLabels(),
			Annotations: annotations.UserSecretAnnotations(mountPath),
		},
		Type: corev1.SecretTypeOpaque,
		Data: byteData,
	}
}
