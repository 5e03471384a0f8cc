package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jongleur-maersk/tracking-portal/internal/core/domain"
)

const collectionSiteSettings = "site_settings"

// SiteSettingsRepository reads the single site identity document maintained by
// the back office.
type SiteSettingsRepository struct {
	col *mongo.Collection
}

func NewSiteSettingsRepository(db *mongo.Database) *SiteSettingsRepository {
	return &SiteSettingsRepository{col: db.Collection(collectionSiteSettings)}
}

// Load returns the stored settings with empty fields filled from defaults.
// An absent document yields the pure defaults, not an error.
func (r *SiteSettingsRepository) Load(ctx context.Context) (domain.SiteSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.SiteSettings
	err := r.col.FindOne(ctx, bson.M{}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.DefaultSiteSettings(), nil
		}
		return domain.SiteSettings{}, fmt.Errorf("load site settings: %w", err)
	}
	return s.FillDefaults(), nil
}
