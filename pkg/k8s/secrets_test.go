package k8s

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

func opaqueSecret(name string, labels map[string]string, data map[string][]byte) *corev1.Secret {
	return &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Name:   name,
			Labels: labels,
		},
		Type: corev1.SecretTypeOpaque,
		Data: data,
	}
}

func TestListSecretsFiltersByLabels(t *testing.T) {
	t.Parallel()

	seed := func(name string, labels map[string]string) *corev1.Secret {
		s := opaqueSecret(name, labels, nil)
		s.Namespace = "ns"
		return s
	}
	clientset := fake.NewClientset(
		seed("matching", map[string]string{"app": "workspace", "kind": "credential"}),
		seed("partial", map[string]string{"app": "workspace"}),
		seed("unrelated", map[string]string{"app": "other"}),
	)
	store := NewSecretStore(clientset)

	items, err := store.ListSecrets(context.Background(), "ns", map[string]string{
		"app":  "workspace",
		"kind": "credential",
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "matching", items[0].Name)
}

func TestCreateOrReplaceSecretCreates(t *testing.T) {
	t.Parallel()

	clientset := fake.NewClientset()
	store := NewSecretStore(clientset)

	secret := opaqueSecret("fresh", nil, map[string][]byte{"key": []byte("value")})
	require.NoError(t, store.CreateOrReplaceSecret(context.Background(), "ns", secret))

	stored, err := clientset.CoreV1().Secrets("ns").Get(context.Background(), "fresh", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), stored.Data["key"])
}

func TestCreateOrReplaceSecretReplaces(t *testing.T) {
	t.Parallel()

	clientset := fake.NewClientset()
	store := NewSecretStore(clientset)
	ctx := context.Background()

	first := opaqueSecret("existing", map[string]string{"keep": "me"}, map[string][]byte{"key": []byte("old")})
	require.NoError(t, store.CreateOrReplaceSecret(ctx, "ns", first))

	second := opaqueSecret("existing", map[string]string{"keep": "me"}, map[string][]byte{"key": []byte("new")})
	require.NoError(t, store.CreateOrReplaceSecret(ctx, "ns", second))

	stored, err := clientset.CoreV1().Secrets("ns").Get(ctx, "existing", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), stored.Data["key"])

	list, err := clientset.CoreV1().Secrets("ns").List(ctx, metav1.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
}
