// Package auth holds the owner gate used by privileged bot commands.
package auth

import "slices"

// Authorized reports whether callerID appears in the configured allow-list.
func Authorized(callerID string, allowList []string) bool {
	if callerID == "" {
		return false
	}

	return slices.Contains(allowList, callerID)
}
