package host

import (
	"strings"

	"apex/internal/models"
)

// confined checks that hostname is a single path element and that urlPath
// has no ".." segment. Symlinks under the root are still followed. Control
// characters are refused so they never reach Location or a redirect body.
func confined(hostname, urlPath string) (models.Kind, bool) {
	if hasControl(hostname) || hasControl(urlPath) {
		return models.BadRequest, false
	}

	switch hostname {
	case "", ".", "..":
		return models.NotFound, false
	}
	if strings.ContainsAny(hostname, `/\`) {
		return models.NotFound, false
	}

	if urlPath != "" && urlPath[0] != '/' {
		return models.NotFound, false
	}
	for _, segment := range strings.Split(urlPath, "/") {
		if segment == ".." {
			return models.NotFound, false
		}
	}

	return models.Serve, true
}

func hasControl(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] == 0x7f {
			return true
		}
	}
	return false
}
