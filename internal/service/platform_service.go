package service

import (
	"github.com/maheshrc27/postcalendar/internal/models"
)

// PlatformService resolves platform ids to display metadata.
type PlatformService interface {
	Lookup(id string) (*models.PlatformInfo, bool)
	List() []models.PlatformInfo
}

type platformService struct {
	byID map[models.Platform]models.PlatformInfo
}

var platformCatalog = []models.PlatformInfo{
	{ID: models.PlatformInstagram, Name: "Instagram", Icon: "instagram", Color: "#E4405F"},
	{ID: models.PlatformFacebook, Name: "Facebook", Icon: "facebook", Color: "#1877F2"},
	{ID: models.PlatformTwitter, Name: "Twitter", Icon: "twitter", Color: "#1DA1F2"},
	{ID: models.PlatformLinkedIn, Name: "LinkedIn", Icon: "linkedin", Color: "#0A66C2"},
}

func NewPlatformService() PlatformService {
	byID := make(map[models.Platform]models.PlatformInfo, len(platformCatalog))
	for _, p := range platformCatalog {
		byID[p.ID] = p
	}
	return &platformService{byID: byID}
}

func (s *platformService) Lookup(id string) (*models.PlatformInfo, bool) {
	info, ok := s.byID[models.Platform(id)]
	if !ok {
		return nil, false
	}
	return &info, true
}

func (s *platformService) List() []models.PlatformInfo {
	out := make([]models.PlatformInfo, 0, len(models.Platforms))
	for _, id := range models.Platforms {
		out = append(out, s.byID[id])
	}
	return out
}
