package secrets

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/rand"

	"github.com/devworkspace-io/workspace-secrets/pkg/annotations"
	"github.com/devworkspace-io/workspace-secrets/pkg/errors"
	"github.com/devworkspace-io/workspace-secrets/pkg/k8s"
	"github.com/devworkspace-io/workspace-secrets/pkg/logger"
	"github.com/devworkspace-io/workspace-secrets/pkg/namespaces"
	"github.com/devworkspace-io/workspace-secrets/pkg/telemetry"
)

// nameSuffixLength is the length of the random suffix appended to generated
// credential secret names.
const nameSuffixLength = 5

// Manager is the credential secret upsert engine. It decides reuse-vs-create
// for the (provider URL, user id) pair and issues exactly one store write per
// call; retry policy, if any, is the caller's concern.
type Manager struct {
	resolver namespaces.Resolver
	store    k8s.SecretStore
}

// NewManager creates a credential secret manager.
func NewManager(resolver namespaces.Resolver, store k8s.SecretStore) *Manager {
	return &Manager{resolver: resolver, store: store}
}

// CreateOrReplace ensures the actor's namespace holds exactly one up-to-date
// credential secret for the token's (provider URL, user id) pair.
//
// It fails with an unsatisfied_precondition error when no namespace is
// resolvable for the actor, and with a persistence_failure error when the
// provider URL is malformed or the store reports an infrastructure error.
//
// Concurrent calls for the same pair are not mutually excluded: the
// list-then-write sequence is not transactional, so racing writers can in
// theory leave duplicates behind. Subsequent calls converge on one of them.
func (m *Manager) CreateOrReplace(ctx context.Context, actor namespaces.Actor, token PersonalAccessToken) error {
	namespace, err := m.firstNamespace(ctx, actor)
	if err != nil {
		telemetry.RecordUpsert(telemetry.KindCredential, telemetry.OutcomeError)
		return err
	}

	// To avoid duplicating secrets we try to reuse an existing one by matching
	// provider URL and user id, and update it. Otherwise, create a new one.
	candidates, err := m.store.ListSecrets(ctx, namespace, annotations.SearchLabels())
	if err != nil {
		telemetry.RecordUpsert(telemetry.KindCredential, telemetry.OutcomeError)
		return errors.NewPersistenceFailureError(err.Error(), err)
	}

	outcome := telemetry.OutcomeReused
	secret := FindReusable(candidates, token)
	if secret == nil {
		secret = newCredentialSecret(token)
		outcome = telemetry.OutcomeCreated
	}

	encoded, err := EncodeCredentials(token)
	if err != nil {
		telemetry.RecordUpsert(telemetry.KindCredential, telemetry.OutcomeError)
		return errors.NewPersistenceFailureError(err.Error(), err)
	}
	secret.Data = map[string][]byte{
		annotations.CredentialsSecretKey: encoded,
	}

	if err := m.store.CreateOrReplaceSecret(ctx, namespace, secret); err != nil {
		telemetry.RecordUpsert(telemetry.KindCredential, telemetry.OutcomeError)
		return errors.NewPersistenceFailureError(err.Error(), err)
	}

	telemetry.RecordUpsert(telemetry.KindCredential, outcome)
	logger.Infow("stored git credential secret",
		"namespace", namespace, "secret", secret.Name, "outcome", outcome)
	return nil
}

// firstNamespace returns the first workspace namespace owned by the actor.
// Credentials are written into a pre-provisioned user namespace, so repeated
// calls are expected to resolve the same namespace.
func (m *Manager) firstNamespace(ctx context.Context, actor namespaces.Actor) (string, error) {
	metas, err := m.resolver.List(ctx, actor)
	if err != nil {
		return "", errors.NewPersistenceFailureError(err.Error(), err)
	}
	if len(metas) == 0 {
		return "", errors.NewUnsatisfiedPreconditionError(
			"no user namespace found, cannot persist SCM credentials", nil)
	}
	return metas[0].Name, nil
}

// newCredentialSecret builds a brand-new credential secret carrying the
// creation-time labels and the default plus instance-specific annotations.
func newCredentialSecret(token PersonalAccessToken) *corev1.Secret {
	anns := annotations.DefaultCredentialAnnotations()
	anns[annotations.AnnotationSCMURL] = token.SCMProviderURL
	anns[annotations.AnnotationUserID] = token.UserID

	return &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Name:        annotations.CredentialsSecretNamePrefix + rand.String(nameSuffixLength),
			Labels:      annotations.NewCredentialSecretLabels(),
			Annotations: anns,
		},
		Type: corev1.SecretTypeOpaque,
	}
}
