package models

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
)

// Platforms lists every supported destination in display order.
var Platforms = []Platform{
	PlatformInstagram,
	PlatformFacebook,
	PlatformTwitter,
	PlatformLinkedIn,
}

type PlatformInfo struct {
	ID    Platform `json:"id"`
	Name  string   `json:"name"`
	Icon  string   `json:"icon"`
	Color string   `json:"color"`
}

func IsValidPlatform(id string) bool {
	for _, p := range Platforms {
		if string(p) == id {
			return true
		}
	}
	return false
}

// UniquePlatforms collapses duplicates, keeping the first occurrence.
func UniquePlatforms(ids []string) []Platform {
	seen := make(map[string]struct{}, len(ids))
	out := make([]Platform, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, Platform(id))
	}
	return out
}
