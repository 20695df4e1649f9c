// Package annotations defines the label and annotation schema applied to
// workspace secrets. The key names and values are a durable wire contract:
// the mount-injection subsystem discovers secrets by these labels and drives
// mounting from these annotations, so they must stay byte-for-byte stable.
package annotations

const (
	// LabelPartOf is the standard Kubernetes part-of label key
	LabelPartOf = "app.kubernetes.io/part-of"

	// LabelComponent is the standard Kubernetes component label key
	LabelComponent = "app.kubernetes.io/component"

	// PartOfValue marks objects managed by this system
	PartOfValue = "che.eclipse.org"

	// WorkspaceSecretComponent is the component value for workspace secrets
	WorkspaceSecretComponent = "workspace-secret"

	// WorkspacesNamespaceComponent is the component value for workspace namespaces
	WorkspacesNamespaceComponent = "workspaces-namespace"

	// DevWorkspacePrefix is the prefix of devworkspace controller keys
	DevWorkspacePrefix = "controller.devfile.io"

	// LabelGitCredential marks a secret as a git credential on creation
	LabelGitCredential = DevWorkspacePrefix + "/git-credential"

	// LabelWatchSecret tells the devworkspace controller to watch the secret
	LabelWatchSecret = DevWorkspacePrefix + "/watch-secret"

	// LabelMountToDevWorkspace tells the devworkspace controller to mount the secret
	LabelMountToDevWorkspace = DevWorkspacePrefix + "/mount-to-devworkspace"

	// AnnotationAutomount is the automount flag for workspace secrets
	AnnotationAutomount = "che.eclipse.org/automount-workspace-secret"

	// AnnotationMountPath is the path the secret is mounted at
	AnnotationMountPath = "che.eclipse.org/mount-path"

	// AnnotationMountAs is the mount mode of the secret (file or env)
	AnnotationMountAs = "che.eclipse.org/mount-as"

	// AnnotationGitCredentials marks a secret as carrying git credentials
	AnnotationGitCredentials = "che.eclipse.org/git-credential"

	// AnnotationDevWorkspaceMountPath mirrors the mount path for the devworkspace controller
	AnnotationDevWorkspaceMountPath = DevWorkspacePrefix + "/mount-path"

	// AnnotationDevWorkspaceMountAs mirrors the mount mode for the devworkspace controller
	AnnotationDevWorkspaceMountAs = DevWorkspacePrefix + "/mount-as"

	// AnnotationSCMURL carries the source-control provider URL of a credential secret
	AnnotationSCMURL = "che.eclipse.org/scm-url"

	// AnnotationSCMUsername carries the source-control username of a credential secret
	AnnotationSCMUsername = "che.eclipse.org/scm-username"

	// AnnotationUserID carries the id of the user owning the secret
	AnnotationUserID = "che.eclipse.org/che-userid"

	// AnnotationUsername carries the name of the user owning a workspace namespace
	AnnotationUsername = "che.eclipse.org/username"

	// CredentialsMountPath is where the git-credentials file is mounted in a workspace
	CredentialsMountPath = "/.git-credentials"

	// CredentialsSecretKey is the data key holding the encoded credentials line
	CredentialsSecretKey = "credentials"

	// CredentialsSecretNamePrefix is the name prefix of generated credential secrets
	CredentialsSecretNamePrefix = "git-credentials-secret-"

	// UserProfileSecretName is the fixed name of the user profile secret
	UserProfileSecretName = "user-profile"

	// UserPreferencesSecretName is the fixed name of the user preferences secret
	UserPreferencesSecretName = "user-preferences"

	// UserProfileMountPath is where the profile secret is mounted in a workspace
	UserProfileMountPath = "/config/user/profile"

	// UserPreferencesMountPath is where the preferences secret is mounted in a workspace
	UserPreferencesMountPath = "/config/user/preferences"

	// OAuth2TokenNamePrefix marks token names derived from an OAuth2 exchange
	OAuth2TokenNamePrefix = "oauth2-"

	// TrueValue is the canonical true value used in labels and annotations
	TrueValue = "true"
)

// SearchLabels returns the label set used to discover candidate workspace
// secrets. It deliberately excludes the creation-only labels so that
// externally created secrets are still discoverable for reuse.
func SearchLabels() map[string]string {
	return map[string]string{
		LabelPartOf:    PartOfValue,
		LabelComponent: WorkspaceSecretComponent,
	}
}

// NewCredentialSecretLabels returns the label set applied to newly created
// credential secrets: the search labels plus the credential and watch
// markers. Reused secrets keep their existing labels untouched.
func NewCredentialSecretLabels() map[string]string {
	labels := SearchLabels()
	labels[LabelGitCredential] = TrueValue
	labels[LabelWatchSecret] = TrueValue
	return labels
}

// DefaultCredentialAnnotations returns the fixed annotations applied to newly
// created credential secrets. The instance-specific SCM URL and user id
// annotations are added by the caller.
func DefaultCredentialAnnotations() map[string]string {
	return map[string]string{
		AnnotationAutomount:             TrueValue,
		AnnotationMountPath:             CredentialsMountPath,
		AnnotationMountAs:               "file",
		AnnotationGitCredentials:        TrueValue,
		AnnotationDevWorkspaceMountPath: CredentialsMountPath,
	}
}

// UserSecretLabels returns the label set applied to the fixed-name user
// profile and preferences secrets.
func UserSecretLabels() map[string]string {
	return map[string]string{
		LabelMountToDevWorkspace: TrueValue,
	}
}

// UserSecretAnnotations returns the mount annotations for a fixed-name user
// secret mounted as a file at the given path.
func UserSecretAnnotations(mountPath string) map[string]string {
	return map[string]string{
		AnnotationDevWorkspaceMountAs:   "file",
		AnnotationDevWorkspaceMountPath: mountPath,
	}
}

// WorkspacesNamespaceLabels returns the label set applied to namespaces
// provisioned for user workspaces.
func WorkspacesNamespaceLabels() map[string]string {
	return map[string]string{
		LabelPartOf:    PartOfValue,
		LabelComponent: WorkspacesNamespaceComponent,
	}
}
