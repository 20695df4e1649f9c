// Package secrets reconciles git credential secrets in workspace namespaces.
// Given a personal access token it ensures exactly one up-to-date credential
// secret exists per (provider URL, user id) pair, reusing an existing secret
// when one matches and creating a fresh one otherwise.
package secrets

// PersonalAccessToken identifies a personal access token for a
// source-control provider.
type PersonalAccessToken struct {
	// SCMProviderURL is the provider URL. It must parse as a well-formed URL;
	// trailing slashes are normalized when matching existing secrets.
	SCMProviderURL string `json:"scmProviderUrl"`

	// UserID is the id of the platform user owning the token.
	UserID string `json:"cheUserId"`

	// SCMUserName is the provider-side username. May be empty for providers
	// whose user object has no username.
	SCMUserName string `json:"scmUserName,omitempty"`

	// SCMOrganization is the provider-side organization, for providers that
	// carry an organization instead of a username.
	SCMOrganization string `json:"scmOrganization,omitempty"`

	// SCMTokenName is the token name. The oauth2- prefix marks tokens derived
	// from an OAuth2 exchange.
	SCMTokenName string `json:"scmTokenName,omitempty"`

	// Token is the secret token value.
	Token string `json:"token"`
}
