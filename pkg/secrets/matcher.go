package secrets

import (
	"strconv"
	"strings"

	corev1 "k8s.io/api/core/v1"

	"github.com/devworkspace-io/workspace-secrets/pkg/annotations"
)

// FindReusable returns the first candidate secret that already holds the
// credentials for the token's (provider URL, user id) pair, or nil when none
// matches. Candidates are expected to be pre-selected by the search labels.
//
// Provider URLs are compared with trailing slashes trimmed on both sides, so
// a URL entered with or without a trailing slash finds the same secret
// instead of producing a duplicate. If duplicates exist out-of-band, which
// of them is returned is unspecified.
func FindReusable(candidates []corev1.Secret, token PersonalAccessToken) *corev1.Secret {
	wantURL := trimTrailingSlash(token.SCMProviderURL)

	for i := range candidates {
		anns := candidates[i].GetAnnotations()
		if len(anns) == 0 {
			continue
		}
		if isCredential, _ := strconv.ParseBool(anns[annotations.AnnotationGitCredentials]); !isCredential {
			continue
		}
		if trimTrailingSlash(anns[annotations.AnnotationSCMURL]) != wantURL {
			continue
		}
		if anns[annotations.AnnotationUserID] != token.UserID {
			continue
		}
		return &candidates[i]
	}
	return nil
}

func trimTrailingSlash(url string) string {
	return strings.TrimRight(url, "/")
}
