package seed

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/feedback-hub/internal/domain/auth"
	"github.com/BruksfildServices01/feedback-hub/internal/domain/catalog"
	"github.com/BruksfildServices01/feedback-hub/internal/domain/review"
	"github.com/BruksfildServices01/feedback-hub/internal/domain/settings"
	"github.com/BruksfildServices01/feedback-hub/internal/models"
	authuc "github.com/BruksfildServices01/feedback-hub/internal/usecase/auth"
	"github.com/BruksfildServices01/feedback-hub/internal/validators"
)

const (
	DefaultAdminEmail    = "admin@feedbackhub.com"
	DefaultAdminPassword = "admin123"
)

type Options struct {
	AdminEmail    string
	AdminPassword string
	// SampleData adds the demo stores and reviews when the catalog is
	// empty.
	SampleData bool
}

type Result struct {
	AdminEmail   string
	AdminCreated bool
	Stores       int
	Reviews      int
}

type Seeder struct {
	users    auth.UserRepository
	stores   catalog.Repository
	reviews  review.Repository
	settings settings.Repository
	log      zerolog.Logger
}

func New(
	users auth.UserRepository,
	stores catalog.Repository,
	reviews review.Repository,
	settings settings.Repository,
	log zerolog.Logger,
) *Seeder {
	return &Seeder{
		users:    users,
		stores:   stores,
		reviews:  reviews,
		settings: settings,
		log:      log,
	}
}

// Run provisions the admin user, the settings row and optionally the demo
// catalog. Running it again changes nothing.
func (s *Seeder) Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.AdminEmail == "" {
		opts.AdminEmail = DefaultAdminEmail
	}
	if opts.AdminPassword == "" {
		opts.AdminPassword = DefaultAdminPassword
	}

	res := &Result{AdminEmail: validators.NormalizeEmail(opts.AdminEmail)}

	// --------------------------------------------------
	// Admin
	// --------------------------------------------------
	hash, err := authuc.HashPassword(opts.AdminPassword)
	if err != nil {
		return nil, errors.Wrap(err, "hash admin password")
	}

	candidate := &models.User{
		Email:        res.AdminEmail,
		PasswordHash: hash,
		Role:         string(auth.RoleAdmin),
	}
	admin, err := s.users.EnsureUser(ctx, candidate)
	if err != nil {
		return nil, errors.Wrap(err, "ensure admin user")
	}
	res.AdminCreated = admin.ID == candidate.ID
	s.log.Info().Str("email", admin.Email).Bool("created", res.AdminCreated).Msg("admin user ready")

	// --------------------------------------------------
	// Settings
	// --------------------------------------------------
	defaults := settings.Defaults()
	defaults.NotificationEmail = res.AdminEmail
	if _, err := s.settings.GetOrCreate(ctx, defaults); err != nil {
		return nil, errors.Wrap(err, "ensure settings")
	}

	if !opts.SampleData {
		return res, nil
	}

	// --------------------------------------------------
	// Demo catalog
	// --------------------------------------------------
	existing, err := s.stores.ListStores(ctx, catalog.DefaultLanguage)
	if err != nil {
		return nil, errors.Wrap(err, "list stores")
	}
	if len(existing) > 0 {
		s.log.Info().Int("stores", len(existing)).Msg("catalog not empty, skipping sample data")
		return res, nil
	}

	var storeIDs []string
	for _, sample := range sampleStores {
		store := &models.Store{}
		first := sample[0]
		if err := s.stores.CreateStore(ctx, store, &first); err != nil {
			return nil, errors.Wrap(err, "create sample store")
		}
		for _, tr := range sample[1:] {
			tr.StoreID = store.ID
			if _, err := s.stores.UpsertTranslation(ctx, &tr); err != nil {
				return nil, errors.Wrap(err, "create sample translation")
			}
		}
		storeIDs = append(storeIDs, store.ID)
	}
	res.Stores = len(storeIDs)

	for i, sample := range sampleReviews {
		rating := sample.rating
		rv := &models.Review{
			StoreID:    storeIDs[i%len(storeIDs)],
			Rating:     &rating,
			Comment:    sample.comment,
			Language:   catalog.DefaultLanguage,
			IsApproved: defaults.AutoApprove,
		}
		if err := s.reviews.Create(ctx, rv); err != nil {
			return nil, errors.Wrap(err, "create sample review")
		}
	}
	res.Reviews = len(sampleReviews)

	s.log.Info().Int("stores", res.Stores).Int("reviews", res.Reviews).Msg("sample data created")
	return res, nil
}
