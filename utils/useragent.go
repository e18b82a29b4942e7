package utils

import (
	"regexp"
	"strings"
)

// Coarse device/browser classification for the scan analytics cards.
// Anything we can't place stays "unknown".
type DeviceInfo struct {
	DeviceType  string // mobile | tablet | desktop | unknown
	Vendor      string
	BrowserName string
}

var (
	reMobile = regexp.MustCompile(`(?i)Mobile|Android|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`)
	reTablet = regexp.MustCompile(`(?i)iPad|Tablet|PlayBook|Silk`)

	reApple   = regexp.MustCompile(`(?i)iPhone|iPad|iPod|Macintosh`)
	reAndroid = regexp.MustCompile(`(?i)Android`)
	reWindows = regexp.MustCompile(`(?i)Windows`)
	reLinux   = regexp.MustCompile(`(?i)Linux`)
)

func isTablet(ua string) bool {
	if reTablet.MatchString(ua) {
		return true
	}
	// Android without "Mobile" in the UA is a tablet
	return reAndroid.MatchString(ua) && !strings.Contains(ua, "Mobile")
}

func ParseUserAgent(ua string) DeviceInfo {
	info := DeviceInfo{DeviceType: "unknown", Vendor: "unknown", BrowserName: "unknown"}
	if ua == "" {
		return info
	}

	if reMobile.MatchString(ua) {
		if isTablet(ua) {
			info.DeviceType = "tablet"
		} else {
			info.DeviceType = "mobile"
		}
	} else {
		info.DeviceType = "desktop"
	}

	switch {
	case reApple.MatchString(ua):
		info.Vendor = "Apple"
	case reAndroid.MatchString(ua):
		switch {
		case strings.Contains(ua, "Samsung"):
			info.Vendor = "Samsung"
		case strings.Contains(ua, "LG"):
			info.Vendor = "LG"
		case strings.Contains(ua, "HTC"):
			info.Vendor = "HTC"
		case strings.Contains(ua, "Sony"):
			info.Vendor = "Sony"
		default:
			info.Vendor = "Android"
		}
	case reWindows.MatchString(ua):
		info.Vendor = "Microsoft"
	case reLinux.MatchString(ua):
		info.Vendor = "Linux"
	}

	// order matters: Chrome UAs also contain Safari, Edge contains Chrome
	switch {
	case strings.Contains(ua, "Edge") || strings.Contains(ua, "Edg/"):
		info.BrowserName = "Edge"
	case strings.Contains(ua, "Opera") || strings.Contains(ua, "OPR"):
		info.BrowserName = "Opera"
	case strings.Contains(ua, "Chrome"):
		info.BrowserName = "Chrome"
	case strings.Contains(ua, "Firefox"):
		info.BrowserName = "Firefox"
	case strings.Contains(ua, "Safari"):
		info.BrowserName = "Safari"
	case strings.Contains(ua, "MSIE") || strings.Contains(ua, "Trident"):
		info.BrowserName = "Internet Explorer"
	}

	return info
}
