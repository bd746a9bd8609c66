package store

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/matzehuels/plansmith/pkg/core/plan"
	perrors "github.com/matzehuels/plansmith/pkg/errors"
	"github.com/matzehuels/plansmith/pkg/observability"
)

// Store saves and retrieves plans.
type Store interface {
	// Save inserts p or replaces the plan with the same id. The creation
	// time of a replaced plan is kept.
	Save(ctx context.Context, p *plan.Plan) error

	// Get returns the plan with the given id.
	Get(ctx context.Context, id string) (*plan.Plan, error)

	// List returns a summary of every stored plan, newest first.
	List(ctx context.Context) ([]Summary, error)

	// Delete removes the plan with the given id.
	Delete(ctx context.Context, id string) error

	Close() error
}

// Summary describes a stored plan without its geometry.
type Summary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Rooms     int       `json:"rooms"`
	Area      float64   `json:"area"`
	CreatedAt time.Time `json:"createdAt"`
}

// Summarize builds the summary of p created at t.
func Summarize(p *plan.Plan, t time.Time) Summary {
	return Summary{
		ID:        p.ID,
		Name:      p.Name,
		Rooms:     len(p.Rooms),
		Area:      p.TotalArea(),
		CreatedAt: t,
	}
}

// ErrNotFound is wrapped by every error for a missing plan.
var ErrNotFound = errors.New("plan not found")

// Location prefixes understood by Open.
const (
	MemoryLocation = "memory"
	mongoScheme    = "mongodb://"
	mongoSRVScheme = "mongodb+srv://"
)

// Open returns the store for location: "memory" for a [MemoryStore], a
// mongodb:// or mongodb+srv:// URI for a [MongoStore], and anything else
// is treated as a SQLite database path.
func Open(ctx context.Context, location string) (Store, error) {
	switch {
	case location == "" || location == MemoryLocation:
		return NewMemoryStore(), nil
	case strings.HasPrefix(location, mongoScheme), strings.HasPrefix(location, mongoSRVScheme):
		return NewMongoStore(ctx, location, DefaultMongoDatabase)
	default:
		return NewSQLiteStore(ctx, location)
	}
}

// =============================================================================
// Helpers
// =============================================================================

func checkPlan(p *plan.Plan) error {
	if p == nil {
		return perrors.New(perrors.ErrCodeInvalidInput, "plan is nil")
	}
	return perrors.ValidatePlanID(p.ID)
}

func notFound(id string) error {
	return perrors.Wrap(perrors.ErrCodePlanNotFound, ErrNotFound, "plan %s", id)
}

func storageErr(err error, op string) error {
	if err == nil {
		return nil
	}
	return perrors.Wrap(perrors.ErrCodeStorage, err, "%s", op)
}

// observe reports one store operation to the registered hooks.
func observe(ctx context.Context, backend, op string, start time.Time, err error) {
	observability.Store().OnStore(ctx, observability.StoreEvent{
		Backend:  backend,
		Op:       op,
		Duration: time.Since(start),
		Err:      err,
	})
}

func sortSummaries(s []Summary) {
	sort.Slice(s, func(i, j int) bool {
		if !s[i].CreatedAt.Equal(s[j].CreatedAt) {
			return s[i].CreatedAt.After(s[j].CreatedAt)
		}
		return s[i].ID < s[j].ID
	})
}
