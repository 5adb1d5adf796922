package services

import "fmt"

// ConfigError is a fatal configuration-integrity failure: a rubric level,
// role family, or archetype the scoring pipeline depends on cannot be
// resolved. It is never swallowed or defaulted, since an incomplete rubric
// would silently corrupt every downstream score.
type ConfigError struct {
	Entity string
	Slug   string
	Detail string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("rubric configuration error: %s %q: %s", e.Entity, e.Slug, e.Detail)
}
