package k8s

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/client-go/kubernetes"

	"github.com/devworkspace-io/workspace-secrets/pkg/errors"
)

// SecretStore is the object-store surface the provisioners depend on:
// label-selected listing and create-or-replace, both scoped to a namespace.
type SecretStore interface {
	// ListSecrets returns the secrets in the namespace matching all the given labels.
	ListSecrets(ctx context.Context, namespace string, matchLabels map[string]string) ([]corev1.Secret, error)

	// CreateOrReplaceSecret writes the secret into the namespace, creating it
	// if absent and replacing it if a secret with the same name exists.
	CreateOrReplaceSecret(ctx context.Context, namespace string, secret *corev1.Secret) error
}

type secretStore struct {
	clientset kubernetes.Interface
}

// NewSecretStore creates a SecretStore backed by the given clientset.
func NewSecretStore(clientset kubernetes.Interface) SecretStore {
	return &secretStore{clientset: clientset}
}

func (s *secretStore) ListSecrets(
	ctx context.Context, namespace string, matchLabels map[string]string,
) ([]corev1.Secret, error) {
	list, err := s.clientset.CoreV1().Secrets(namespace).List(ctx, metav1.ListOptions{
		LabelSelector: labels.SelectorFromSet(matchLabels).String(),
	})
	if err != nil {
		return nil, errors.NewInfrastructureError("failed to list secrets in namespace "+namespace, err)
	}
	return list.Items, nil
}

func (s *secretStore) CreateOrReplaceSecret(
	ctx context.Context, namespace string, secret *corev1.Secret,
) error {
	secrets := s.clientset.CoreV1().Secrets(namespace)

	existing, err := secrets.Get(ctx, secret.Name, metav1.GetOptions{})
	if apierrors.IsNotFound(err) {
		if _, err := secrets.Create(ctx, secret, metav1.CreateOptions{}); err != nil {
			return errors.NewInfrastructureError("failed to create secret "+secret.Name, err)
		}
		return nil
	}
	if err != nil {
		return errors.NewInfrastructureError("failed to get secret "+secret.Name, err)
	}

	// Replace semantics: the incoming object wins, but the update must carry
	// the stored resource version for the store's optimistic concurrency check.
	secret.ResourceVersion = existing.ResourceVersion
	if _, err := secrets.Update(ctx, secret, metav1.UpdateOptions{}); err != nil {
		return errors.NewInfrastructureError("failed to replace secret "+secret.Name, err)
	}
	return nil
}
