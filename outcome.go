package ddmin

import "github.com/coregx/ddmin/cache"

// Outcome is the verdict of testing a configuration: Pass or Fail. Fail
// means "interesting" in delta-debugging terminology. Outcome is an alias
// for cache.Outcome so that a Test implementation and a Cache agree on the
// same concrete type without either package importing the other.
type Outcome = cache.Outcome

const (
	// Pass means the configuration does not exhibit the interesting
	// property.
	Pass = cache.Pass
	// Fail means the configuration is interesting.
	Fail = cache.Fail
)
