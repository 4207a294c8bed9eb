package business

import (
	"github.com/Agurato/overcast/internal/model"
)

// Placeholders used when the catalog does not provide a value
const (
	UnknownName    = "Unknown"
	UnknownRole    = "Unknown Role"
	UnknownDate    = "Unknown Date"
	NoProfileImage = "/images/no-profile.svg"
)

type PhotoLinker interface {
	GetPhotoLink(key string) string
}

// CastIntersector finds the people credited in two casts
type CastIntersector struct {
	PhotoLinker
}

func NewCastIntersector(pl PhotoLinker) *CastIntersector {
	return &CastIntersector{
		PhotoLinker: pl,
	}
}

// Intersect joins both casts on the person ID, in the order of the first cast
func (ci CastIntersector) Intersect(cast1, cast2 *model.Cast, title1, title2 model.ResolvedTitle) []model.CommonCastEntry {
	common := []model.CommonCastEntry{}
	for _, member1 := range cast1.Members() {
		member2, ok := cast2.Get(member1.PersonID)
		if !ok {
			continue
		}
		common = append(common, model.CommonCastEntry{
			PersonID:        member1.PersonID,
			Name:            orDefault(member1.Name, UnknownName),
			ProfileImageURL: ci.profileImageURL(member1.ProfilePath),
			Character1:      orDefault(member1.Character(), UnknownRole),
			Character2:      orDefault(member2.Character(), UnknownRole),
			ReleaseDate1:    title1.ReleaseDateString(UnknownDate),
			ReleaseDate2:    title2.ReleaseDateString(UnknownDate),
		})
	}
	return common
}

func (ci CastIntersector) profileImageURL(profilePath string) string {
	if profilePath == "" {
		return NoProfileImage
	}
	return ci.PhotoLinker.GetPhotoLink(profilePath)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
