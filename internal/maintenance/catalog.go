package maintenance

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rentfleet/vehicle-care/internal/db"
	"github.com/rentfleet/vehicle-care/internal/models"
	"github.com/zoobzio/clockz"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrBlankName       = errors.New("maintenance type name must not be blank")
	ErrInvalidInterval = errors.New("recommended interval must not be negative")
	ErrNameTaken       = errors.New("maintenance type name already exists")
	ErrTypeNotFound    = errors.New("maintenance type not found")
	ErrTypeInUse       = errors.New("maintenance type is referenced by performed maintenance")
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrEntryNotFound   = errors.New("performed maintenance entry not found")
)

// Catalog is the name-unique registry of maintenance-type definitions.
// Name matching is case-sensitive and exact.
type Catalog struct {
	types     db.MaintenanceTypeCollection
	performed db.PerformedMaintenanceCollection
	clock     clockz.Clock
}

// NewCatalog creates a catalog backed by the given collections.
func NewCatalog(types db.MaintenanceTypeCollection, performed db.PerformedMaintenanceCollection) *Catalog {
	return &Catalog{
		types:     types,
		performed: performed,
		clock:     clockz.RealClock,
	}
}

// WithClock sets a custom clock for testing.
func (c *Catalog) WithClock(clock clockz.Clock) *Catalog {
	c.clock = clock
	return c
}

// CreateType registers a new maintenance type. The name must be non-blank
// and unused, and the interval non-negative (zero disables the type).
func (c *Catalog) CreateType(ctx context.Context, name string, intervalKm int) (*models.MaintenanceType, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrBlankName
	}
	if intervalKm < 0 {
		return nil, ErrInvalidInterval
	}

	if _, err := c.types.FindTypeByName(ctx, name); err == nil {
		return nil, ErrNameTaken
	} else if !errors.Is(err, db.ErrNoDocument) {
		return nil, fmt.Errorf("check name uniqueness: %w", err)
	}

	now := c.clock.Now()
	mt := models.MaintenanceType{
		ID:                    primitive.NewObjectID(),
		Name:                  name,
		RecommendedIntervalKm: intervalKm,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := c.types.InsertType(ctx, mt); err != nil {
		return nil, fmt.Errorf("insert maintenance type: %w", err)
	}
	return &mt, nil
}

// UpdateType renames a maintenance type and/or changes its interval. Name
// uniqueness is re-checked excluding the record's own id.
func (c *Catalog) UpdateType(ctx context.Context, id, newName string, newIntervalKm int) (*models.MaintenanceType, error) {
	if strings.TrimSpace(newName) == "" {
		return nil, ErrBlankName
	}
	if newIntervalKm < 0 {
		return nil, ErrInvalidInterval
	}

	existing, err := c.types.FindTypeByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNoDocument) {
			return nil, ErrTypeNotFound
		}
		return nil, fmt.Errorf("load maintenance type: %w", err)
	}

	if byName, err := c.types.FindTypeByName(ctx, newName); err == nil {
		if byName.ID != existing.ID {
			return nil, ErrNameTaken
		}
	} else if !errors.Is(err, db.ErrNoDocument) {
		return nil, fmt.Errorf("check name uniqueness: %w", err)
	}

	existing.Name = newName
	existing.RecommendedIntervalKm = newIntervalKm
	existing.UpdatedAt = c.clock.Now()
	if err := c.types.UpdateType(ctx, id, *existing); err != nil {
		return nil, fmt.Errorf("update maintenance type: %w", err)
	}
	return existing, nil
}

// DeleteType removes a maintenance type. Deletion is blocked while any
// performed-maintenance entry references the type.
func (c *Catalog) DeleteType(ctx context.Context, id string) error {
	if _, err := c.types.FindTypeByID(ctx, id); err != nil {
		if errors.Is(err, db.ErrNoDocument) {
			return ErrTypeNotFound
		}
		return fmt.Errorf("load maintenance type: %w", err)
	}

	count, err := c.performed.CountPerformedByType(ctx, id)
	if err != nil {
		return fmt.Errorf("count references: %w", err)
	}
	if count > 0 {
		return ErrTypeInUse
	}

	if err := c.types.DeleteType(ctx, id); err != nil {
		return fmt.Errorf("delete maintenance type: %w", err)
	}
	return nil
}

// ListTypes returns all maintenance-type definitions.
func (c *Catalog) ListTypes(ctx context.Context) ([]models.MaintenanceType, error) {
	return c.types.FindTypes(ctx)
}

// GetType returns one maintenance type by id.
func (c *Catalog) GetType(ctx context.Context, id string) (*models.MaintenanceType, error) {
	mt, err := c.types.FindTypeByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNoDocument) {
			return nil, ErrTypeNotFound
		}
		return nil, err
	}
	return mt, nil
}
