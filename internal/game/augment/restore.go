package augment

import (
	"fmt"

	"github.com/udisondev/augmarket/internal/model"
)

// CheckState re-resolves every persisted augmentation name against the catalog.
// Called after loading a save; an unknown name is a data-integrity error.
func CheckState(catalog *Registry, owned []model.OwnedAugmentation, queued []model.QueuedAugmentation) error {
	for _, o := range owned {
		t, err := catalog.Lookup(o.Name)
		if err != nil {
			return fmt.Errorf("owned augmentation: %w", err)
		}
		if o.Level < 1 {
			return fmt.Errorf("owned augmentation %q: invalid level %d", o.Name, o.Level)
		}
		if o.Level > 1 && t.pricing.Mode != PricingRepeatable {
			return fmt.Errorf("owned augmentation %q: level %d on non-repeatable augmentation", o.Name, o.Level)
		}
	}
	for _, q := range queued {
		if _, err := catalog.Lookup(q.Name); err != nil {
			return fmt.Errorf("queued augmentation: %w", err)
		}
	}
	return nil
}
