// Package migrate runs version migrations: ordered stages of rules that
// turn the current content of project files into text edits, flushed
// stage by stage so every rule sees the output of the rules before it.
package migrate

import "github.com/yaklabco/ngmigrate/pkg/workspace"

// Rule computes the edits one migration step makes to one file.
type Rule interface {
	// ID returns the unique identifier used in reports and the disable list
	// (e.g., "igx-tabs-header").
	ID() string

	// Name returns a short human-readable name.
	Name() string

	// Description returns what the rule changes.
	Description() string

	// Kind returns the kind of file the rule applies to.
	Kind() workspace.Kind

	// Apply inspects ctx and records edits through it.
	//
	// Rules must:
	//   - Compute edits only from the content in ctx.
	//   - Emit nothing for content that is already migrated.
	//   - Return an error only for internal failures; nothing to change is
	//     not an error.
	Apply(ctx *RuleContext) error
}

// BaseRule provides the descriptive half of the Rule interface.
// Embed it in rule implementations and provide Apply.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
type BaseRule struct {
	id   string
	name string
	desc string
	kind workspace.Kind
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc string, kind workspace.Kind) BaseRule {
	return BaseRule{id: id, name: name, desc: desc, kind: kind}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns what the rule changes.
func (r *BaseRule) Description() string {
	return r.desc
}

// Kind returns the kind of file the rule applies to.
func (r *BaseRule) Kind() workspace.Kind {
	return r.kind
}

// funcRule adapts a function to the Rule interface.
type funcRule struct {
	BaseRule
	apply func(*RuleContext) error
}

// RuleFunc returns a Rule that calls apply.
func RuleFunc(base BaseRule, apply func(*RuleContext) error) Rule {
	return &funcRule{BaseRule: base, apply: apply}
}

func (r *funcRule) Apply(ctx *RuleContext) error {
	return r.apply(ctx)
}
