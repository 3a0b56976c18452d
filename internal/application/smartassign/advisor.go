// Package smartassign classifies new tickets against the skill and queue
// catalogs using an LLM. Recommendations are advisory; callers decide
// whether to persist them.
package smartassign

import "context"

// Recommendation is the advisor's output. Empty slices and a nil queue ID
// mean "no confident match".
type Recommendation struct {
	SkillIDs []string
	QueueID  *string
}

// Advisor produces a routing recommendation for a ticket. Implementations
// never fail: any internal error degrades to an empty recommendation so
// ticket creation is never blocked by the advisor.
type Advisor interface {
	SmartAssign(ctx context.Context, title, content string) Recommendation
}
