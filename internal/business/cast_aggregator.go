package business

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Agurato/overcast/internal/model"
)

// CastCatalog fetches credits from the metadata catalog
type CastCatalog interface {
	GetMovieCredits(ctx context.Context, movieID int) ([]model.CastCredit, error)
	GetShowCredits(ctx context.Context, showID int) ([]model.CastCredit, error)
	GetShowAggregateCredits(ctx context.Context, showID int) ([]model.AggregateCredit, error)
	GetShowSeasonCredits(ctx context.Context, showID, seasonNumber int) ([]model.CastCredit, error)
	GetShowMetadata(ctx context.Context, showID int) (model.ShowMetadata, error)
}

// CastAggregator builds the deduplicated cast of a title
type CastAggregator struct {
	CastCatalog
}

func NewCastAggregator(cc CastCatalog) *CastAggregator {
	return &CastAggregator{
		CastCatalog: cc,
	}
}

// Aggregate returns the cast of a resolved title, keyed by person
func (ca CastAggregator) Aggregate(ctx context.Context, title model.ResolvedTitle) (*model.Cast, error) {
	switch title.Kind {
	case model.KindMovie:
		return ca.movieCast(ctx, title.ID)
	case model.KindShow:
		return ca.showCast(ctx, title.ID)
	}
	return nil, fmt.Errorf("cannot get cast of '%s': unsupported media kind %s", title.Query, title.Kind)
}

func (ca CastAggregator) movieCast(ctx context.Context, movieID int) (*model.Cast, error) {
	credits, err := ca.CastCatalog.GetMovieCredits(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("could not get credits of movie %d: %w", movieID, err)
	}
	cast := model.NewCast()
	for _, credit := range credits {
		// The same actor can be credited once per character
		if member, inserted := cast.Insert(newCastMember(credit)); !inserted {
			member.AddCharacter(credit.Character)
		}
	}
	return cast, nil
}

func (ca CastAggregator) showCast(ctx context.Context, showID int) (*model.Cast, error) {
	credits, err := ca.CastCatalog.GetShowAggregateCredits(ctx, showID)
	if err != nil {
		log.Warn().Err(err).Int("showID", showID).Msg("Aggregate credits unavailable, falling back to season credits")
		return ca.showCastBySeason(ctx, showID)
	}

	cast := model.NewCast()
	for _, credit := range credits {
		roles := lo.Uniq(lo.Filter(credit.Roles, func(role string, _ int) bool {
			return role != ""
		}))
		member, inserted := cast.Insert(model.CastMember{
			PersonID:       credit.PersonID,
			Name:           credit.Name,
			CharacterNames: roles,
			ProfilePath:    credit.ProfilePath,
		})
		if !inserted {
			for _, role := range roles {
				member.AddCharacter(role)
			}
		}
	}
	return cast, nil
}

// showCastBySeason rebuilds a show's cast from its main credits and the credits of every season
func (ca CastAggregator) showCastBySeason(ctx context.Context, showID int) (*model.Cast, error) {
	metadata, err := ca.CastCatalog.GetShowMetadata(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("could not get details of show %d: %w", showID, err)
	}
	cast := model.NewCast()
	if metadata.SeasonCount == nil || *metadata.SeasonCount <= 0 {
		log.Warn().Int("showID", showID).Msg("Show has no known season, returning an empty cast")
		return cast, nil
	}

	mainCredits, err := ca.CastCatalog.GetShowCredits(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("could not get credits of show %d: %w", showID, err)
	}
	for _, credit := range mainCredits {
		mergeSeasonCredit(cast, credit)
	}

	for season := 1; season <= *metadata.SeasonCount; season++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		seasonCredits, err := ca.CastCatalog.GetShowSeasonCredits(ctx, showID, season)
		if err != nil {
			log.Debug().Err(err).Int("showID", showID).Int("season", season).Msg("Skipping season credits")
			continue
		}
		for _, credit := range seasonCredits {
			mergeSeasonCredit(cast, credit)
		}
	}
	return cast, nil
}

// mergeSeasonCredit inserts a new person, or appends the credited character to an existing one.
// Names are only ever appended, and never when the stored characters are empty or already contain it.
func mergeSeasonCredit(cast *model.Cast, credit model.CastCredit) {
	member, inserted := cast.Insert(newCastMember(credit))
	if inserted {
		return
	}
	stored := member.Character()
	if credit.Character == "" || stored == "" || strings.Contains(stored, credit.Character) {
		return
	}
	member.CharacterNames = append(member.CharacterNames, credit.Character)
}

func newCastMember(credit model.CastCredit) model.CastMember {
	member := model.CastMember{
		PersonID:    credit.PersonID,
		Name:        credit.Name,
		ProfilePath: credit.ProfilePath,
	}
	member.AddCharacter(credit.Character)
	return member
}
