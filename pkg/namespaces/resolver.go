package namespaces

import (
	"context"
	"fmt"
	"strings"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/client-go/kubernetes"

	"github.com/devworkspace-io/workspace-secrets/pkg/annotations"
	"github.com/devworkspace-io/workspace-secrets/pkg/errors"
)

// Name template placeholders.
const (
	usernamePlaceholder = "<username>"
	useridPlaceholder   = "<userid>"

	// DefaultNameTemplate is the namespace name template used when none is configured.
	DefaultNameTemplate = usernamePlaceholder + "-workspaces"
)

// phaseAttribute is the Meta attribute key carrying the namespace phase.
const phaseAttribute = "phase"

// KubeResolver resolves workspace namespaces directly against a Kubernetes
// cluster. Namespaces are named by evaluating a template over the actor's
// identity, labeled with the workspaces-namespace label set, and annotated
// with the owning user so List can filter by owner.
type KubeResolver struct {
	clientset kubernetes.Interface
	template  string
}

// NewKubeResolver creates a resolver using the given name template.
// An empty template falls back to DefaultNameTemplate.
func NewKubeResolver(clientset kubernetes.Interface, template string) *KubeResolver {
	if template == "" {
		template = DefaultNameTemplate
	}
	return &KubeResolver{clientset: clientset, template: template}
}

// EvaluateName implements Resolver.
func (r *KubeResolver) EvaluateName(_ context.Context, resolutionCtx ResolutionContext) (string, error) {
	name := strings.ReplaceAll(r.template, usernamePlaceholder, resolutionCtx.UserName)
	name = strings.ReplaceAll(name, useridPlaceholder, resolutionCtx.UserID)

	if strings.Contains(name, "<") {
		return "", errors.NewInfrastructureError(
			fmt.Sprintf("namespace template %q contains an unresolvable placeholder", r.template), nil)
	}
	if name == "" || strings.HasPrefix(name, "-") {
		return "", errors.NewInfrastructureError(
			fmt.Sprintf("namespace template %q evaluated to invalid name %q", r.template, name), nil)
	}
	return name, nil
}

// List implements Resolver.
func (r *KubeResolver) List(ctx context.Context, actor Actor) ([]Meta, error) {
	list, err := r.clientset.CoreV1().Namespaces().List(ctx, metav1.ListOptions{
		LabelSelector: labels.SelectorFromSet(annotations.WorkspacesNamespaceLabels()).String(),
	})
	if err != nil {
		return nil, errors.NewInfrastructureError("failed to list workspace namespaces", err)
	}

	var metas []Meta
	for i := range list.Items {
		ns := &list.Items[i]
		if ns.Annotations[annotations.AnnotationUserID] != actor.UserID {
			continue
		}
		metas = append(metas, toMeta(ns))
	}
	return metas, nil
}

// Provision implements Resolver. It is idempotent: an already existing
// namespace is returned as-is.
func (r *KubeResolver) Provision(ctx context.Context, actor Actor) (*Meta, error) {
	name, err := r.EvaluateName(ctx, ResolutionContext{UserID: actor.UserID, UserName: actor.UserName})
	if err != nil {
		return nil, err
	}

	existing, err := r.clientset.CoreV1().Namespaces().Get(ctx, name, metav1.GetOptions{})
	if err == nil {
		meta := toMeta(existing)
		return &meta, nil
	}
	if !apierrors.IsNotFound(err) {
		return nil, errors.NewInfrastructureError("failed to get namespace "+name, err)
	}

	namespace := &corev1.Namespace{
		ObjectMeta: metav1.ObjectMeta{
			Name:   name,
			Labels: annotations.WorkspacesNamespaceLabels(),
			Annotations: map[string]string{
				annotations.AnnotationUserID:   actor.UserID,
				annotations.AnnotationUsername: actor.UserName,
			},
		},
	}
	created, err := r.clientset.CoreV1().Namespaces().Create(ctx, namespace, metav1.CreateOptions{})
	if err != nil {
		// A concurrent provision for the same actor may have won the race.
		if apierrors.IsAlreadyExists(err) {
			return r.Provision(ctx, actor)
		}
		return nil, errors.NewInfrastructureError("failed to create namespace "+name, err)
	}

	meta := toMeta(created)
	return &meta, nil
}

func toMeta(ns *corev1.Namespace) Meta {
	return Meta{
		Name: ns.Name,
		Attributes: map[string]string{
			phaseAttribute: string(ns.Status.Phase),
		},
	}
}
