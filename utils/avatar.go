// utils/avatar.go
package utils

import (
	"fmt"
	"net/url"
)

// AvatarURL builds a ui-avatars.com placeholder for vendors without a photo.
func AvatarURL(name, background string) string {
	if background == "" {
		background = "f97316"
	}
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=%s&color=fff",
		url.QueryEscape(name), background)
}
