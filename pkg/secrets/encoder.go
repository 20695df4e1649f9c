package secrets

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/devworkspace-io/workspace-secrets/pkg/annotations"
)

// EncodeCredentials builds the single git-credentials line stored under the
// "credentials" data key:
//
//	<scheme>://<usernameSegment>:<encodedToken>@<host>[:<port>]
//
// The port segment is omitted when the provider URL has no explicit port or
// the port is 80; any other explicit port, including 443, is retained.
// A malformed provider URL is a hard error.
func EncodeCredentials(token PersonalAccessToken) ([]byte, error) {
	scmURL, err := url.Parse(token.SCMProviderURL)
	if err != nil {
		return nil, fmt.Errorf("malformed SCM provider URL %q: %w", token.SCMProviderURL, err)
	}
	if scmURL.Scheme == "" || scmURL.Hostname() == "" {
		return nil, fmt.Errorf("malformed SCM provider URL %q: missing scheme or host", token.SCMProviderURL)
	}

	portSegment := ""
	if port := scmURL.Port(); port != "" && port != "80" {
		portSegment = ":" + port
	}

	line := fmt.Sprintf("%s://%s:%s@%s%s",
		scmURL.Scheme,
		usernameSegment(token),
		url.QueryEscape(token.Token),
		scmURL.Hostname(),
		portSegment,
	)
	return []byte(line), nil
}

// usernameSegment returns the identity portion of the credential line. For
// OAuth2-derived tokens it is "oauth2"; otherwise it is the SCM username, or
// the literal "username" when the token carries an organization instead.
// Providers without a username in their user object have an organization
// field, which is what the literal fallback supports.
func usernameSegment(token PersonalAccessToken) string {
	if strings.HasPrefix(token.SCMTokenName, annotations.OAuth2TokenNamePrefix) {
		return "oauth2"
	}
	if token.SCMOrganization == "" {
		return token.SCMUserName
	}
	return "username"
}
