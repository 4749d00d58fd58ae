package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/delicious-backend/internal/domain"
	"github.com/heartmarshall/delicious-backend/internal/service/auth"
	"github.com/heartmarshall/delicious-backend/internal/service/listing"
	"github.com/heartmarshall/delicious-backend/internal/service/review"
	"github.com/heartmarshall/delicious-backend/pkg/ctxutil"
)

// allPhases defines the canonical execution order. Later phases reference
// records created by earlier ones.
var allPhases = []string{"users", "listings", "reviews"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline loads the sample data files phase by phase. Users are
// idempotent (existing emails are reused); listings and reviews are
// appended on every run.
type Pipeline struct {
	log     *slog.Logger
	deps    Deps
	cfg     Config
	results map[string]PhaseResult

	userIDs    map[string]uuid.UUID
	listingIDs map[string]uuid.UUID
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, deps Deps, cfg Config) *Pipeline {
	return &Pipeline{
		log:        log.With("component", "seeder"),
		deps:       deps,
		cfg:        cfg,
		results:    make(map[string]PhaseResult),
		userIDs:    make(map[string]uuid.UUID),
		listingIDs: make(map[string]uuid.UUID),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run, still in canonical order. Unknown phase names are an error.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun, err := selectPhases(phases)
	if err != nil {
		return err
	}

	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase), slog.Bool("dry_run", p.cfg.DryRun))

		var result PhaseResult
		switch phase {
		case "users":
			result = p.runUsers(ctx)
		case "listings":
			result = p.runListings(ctx)
		case "reviews":
			result = p.runReviews(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			continue
		}
		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("inserted", result.Inserted),
			slog.Int("skipped", result.Skipped),
			slog.Int("errors", result.Errors),
			slog.Duration("duration", result.Duration),
		)
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

func selectPhases(phases []string) ([]string, error) {
	if len(phases) == 0 {
		return allPhases, nil
	}
	filter := make(map[string]bool, len(phases))
	for _, ph := range phases {
		filter[ph] = true
	}

	var selected []string
	for _, ph := range allPhases {
		if filter[ph] {
			selected = append(selected, ph)
			delete(filter, ph)
		}
	}
	if len(filter) > 0 {
		unknown := slices.Sorted(maps.Keys(filter))
		return nil, fmt.Errorf("unknown phases: %s", strings.Join(unknown, ", "))
	}
	return selected, nil
}

func (p *Pipeline) runUsers(ctx context.Context) PhaseResult {
	records, err := loadJSON[UserRecord](p.cfg.UsersPath)
	if err != nil {
		return PhaseResult{Err: err}
	}
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(records)}
	}

	var result PhaseResult
	for _, rec := range records {
		res, err := p.deps.Accounts.Register(ctx, auth.RegisterInput{
			Email:           rec.Email,
			Name:            rec.Name,
			Password:        p.cfg.Password,
			PasswordConfirm: p.cfg.Password,
		})
		switch {
		case err == nil:
			p.userIDs[res.User.Email] = res.User.ID
			result.Inserted++
		case errors.Is(err, domain.ErrAlreadyExists):
			if _, lookupErr := p.resolveUser(ctx, rec.Email); lookupErr != nil {
				p.recordError(&result, "user", rec.Email, lookupErr)
				continue
			}
			result.Skipped++
		default:
			p.recordError(&result, "user", rec.Email, err)
		}
	}
	return result
}

func (p *Pipeline) runListings(ctx context.Context) PhaseResult {
	records, err := loadJSON[ListingRecord](p.cfg.ListingsPath)
	if err != nil {
		return PhaseResult{Err: err}
	}
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(records)}
	}

	var result PhaseResult
	for _, rec := range records {
		authorID, err := p.resolveUser(ctx, rec.Author)
		if err != nil {
			p.recordError(&result, "listing", rec.Name, err)
			continue
		}

		input := listing.CreateListingInput{
			Name:        rec.Name,
			Description: rec.Description,
			Tags:        rec.Tags,
			Photo:       rec.Photo,
		}
		if rec.Location != nil {
			input.Location = &listing.LocationInput{Lng: rec.Location.Lng, Lat: rec.Location.Lat, Address: rec.Location.Address}
		}

		created, err := p.deps.Listings.CreateListing(ctxutil.WithUserID(ctx, authorID), input)
		if err != nil {
			p.recordError(&result, "listing", rec.Name, err)
			continue
		}
		p.listingIDs[rec.Name] = created.ID
		result.Inserted++
	}
	return result
}

func (p *Pipeline) runReviews(ctx context.Context) PhaseResult {
	records, err := loadJSON[ReviewRecord](p.cfg.ReviewsPath)
	if err != nil {
		return PhaseResult{Err: err}
	}
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(records)}
	}

	var result PhaseResult
	for _, rec := range records {
		listingID, ok := p.listingIDs[rec.Listing]
		if !ok {
			p.recordError(&result, "review", rec.Listing, fmt.Errorf("listing %q was not seeded in this run", rec.Listing))
			continue
		}
		authorID, err := p.resolveUser(ctx, rec.Author)
		if err != nil {
			p.recordError(&result, "review", rec.Listing, err)
			continue
		}

		_, err = p.deps.Reviews.AddReview(ctxutil.WithUserID(ctx, authorID), review.AddReviewInput{
			ListingID: listingID,
			Text:      rec.Text,
			Rating:    rec.Rating,
		})
		if err != nil {
			p.recordError(&result, "review", rec.Listing, err)
			continue
		}
		result.Inserted++
	}
	return result
}

// resolveUser returns the id of a user seeded in this run, falling back to
// a lookup by email.
func (p *Pipeline) resolveUser(ctx context.Context, email string) (uuid.UUID, error) {
	email = domain.NormalizeEmail(email)
	if id, ok := p.userIDs[email]; ok {
		return id, nil
	}
	u, err := p.deps.Users.GetByEmail(ctx, email)
	if err != nil {
		return uuid.Nil, fmt.Errorf("resolve user %s: %w", email, err)
	}
	p.userIDs[email] = u.ID
	return u.ID, nil
}

func (p *Pipeline) recordError(result *PhaseResult, kind, key string, err error) {
	result.Errors++
	p.log.Warn("seed record failed",
		slog.String("kind", kind),
		slog.String("key", key),
		slog.String("error", err.Error()),
	)
}
