package augment

import "fmt"

// UnknownTemplateError is returned when a name is absent from the registry.
type UnknownTemplateError struct {
	Name string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown augmentation %q", e.Name)
}

// Is makes errors.Is(err, ErrUnknownTemplate) match.
func (e *UnknownTemplateError) Is(target error) bool {
	return target == ErrUnknownTemplate
}

// DuplicateTemplateError is returned when a name is registered twice.
type DuplicateTemplateError struct {
	Name string
}

func (e *DuplicateTemplateError) Error() string {
	return fmt.Sprintf("duplicate augmentation %q", e.Name)
}

// Is makes errors.Is(err, ErrDuplicateTemplate) match.
func (e *DuplicateTemplateError) Is(target error) bool {
	return target == ErrDuplicateTemplate
}

// MissingFactionWarning reports a propagation target that does not exist.
// Non-fatal: propagation continues with the remaining factions.
type MissingFactionWarning struct {
	Augmentation string
	Faction      string
}

func (w MissingFactionWarning) Error() string {
	return fmt.Sprintf("augmentation %q: faction %q not found", w.Augmentation, w.Faction)
}
