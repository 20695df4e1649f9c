package namespaces

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/devworkspace-io/workspace-secrets/pkg/annotations"
)

func TestEvaluateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		template      string
		resolutionCtx ResolutionContext
		want          string
		wantErr       bool
	}{
		{
			name:          "default template",
			template:      "",
			resolutionCtx: ResolutionContext{UserID: "u1", UserName: "alice"},
			want:          "alice-workspaces",
		},
		{
			name:          "userid placeholder",
			template:      "ws-<userid>",
			resolutionCtx: ResolutionContext{UserID: "u1", UserName: "alice"},
			want:          "ws-u1",
		},
		{
			name:          "both placeholders",
			template:      "<username>-<userid>",
			resolutionCtx: ResolutionContext{UserID: "u1", UserName: "alice"},
			want:          "alice-u1",
		},
		{
			name:          "unresolvable placeholder",
			template:      "<group>-workspaces",
			resolutionCtx: ResolutionContext{UserID: "u1", UserName: "alice"},
			wantErr:       true,
		},
		{
			name:          "empty username evaluates to invalid name",
			template:      "<username>-workspaces",
			resolutionCtx: ResolutionContext{UserID: "u1"},
			wantErr:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resolver := NewKubeResolver(fake.NewClientset(), tt.template)
			got, err := resolver.EvaluateName(context.Background(), tt.resolutionCtx)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProvisionCreatesNamespace(t *testing.T) {
	t.Parallel()

	clientset := fake.NewClientset()
	resolver := NewKubeResolver(clientset, "")
	ctx := context.Background()

	meta, err := resolver.Provision(ctx, Actor{UserID: "u1", UserName: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "alice-workspaces", meta.Name)

	ns, err := clientset.CoreV1().Namespaces().Get(ctx, "alice-workspaces", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, annotations.WorkspacesNamespaceLabels(), ns.Labels)
	assert.Equal(t, "u1", ns.Annotations[annotations.AnnotationUserID])
	assert.Equal(t, "alice", ns.Annotations[annotations.AnnotationUsername])
}

func TestProvisionIsIdempotent(t *testing.T) {
	t.Parallel()

	clientset := fake.NewClientset()
	resolver := NewKubeResolver(clientset, "")
	ctx := context.Background()
	actor := Actor{UserID: "u1", UserName: "alice"}

	first, err := resolver.Provision(ctx, actor)
	require.NoError(t, err)
	second, err := resolver.Provision(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, first.Name, second.Name)

	list, err := clientset.CoreV1().Namespaces().List(ctx, metav1.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
}

func TestListFiltersByOwner(t *testing.T) {
	t.Parallel()

	clientset := fake.NewClientset()
	resolver := NewKubeResolver(clientset, "")
	ctx := context.Background()

	_, err := resolver.Provision(ctx, Actor{UserID: "u1", UserName: "alice"})
	require.NoError(t, err)
	_, err = resolver.Provision(ctx, Actor{UserID: "u2", UserName: "bob"})
	require.NoError(t, err)

	metas, err := resolver.List(ctx, Actor{UserID: "u1", UserName: "alice"})
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Equal(t, "alice-workspaces", metas[0].Name)

	metas, err = resolver.List(ctx, Actor{UserID: "u3", UserName: "carol"})
	require.NoError(t, err)
	assert.Empty(t, metas)
}
