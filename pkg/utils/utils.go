// File: pkg/utils/utils.go
package utils

import (
	"encoding/base64"
	"strings"
)

// SplitScope splits a package name of the form '@scope/name' into its scope
// (without '@') and base name. Unscoped names return an empty scope.
func SplitScope(name string) (scope, base string) {
	if !strings.HasPrefix(name, "@") {
		return "", name
	}
	parts := strings.SplitN(name[1:], "/", 2)
	if len(parts) != 2 {
		return "", name
	}
	return parts[0], parts[1]
}

// AssetID is the identifier the CDN uses for a package name.
func AssetID(name string) string {
	return base64.StdEncoding.EncodeToString([]byte(name))
}
