package naming

// Engine evaluates names against the rule table in priority order.
// An Engine is immutable after New and safe for concurrent use.
type Engine struct {
	defs []RuleDef
}

// Option configures an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	disabled map[int]bool
}

// WithDisabledRules skips the given rule numbers during evaluation.
// Unknown numbers are ignored.
func WithDisabledRules(numbers ...int) Option {
	return func(o *engineOptions) {
		for _, n := range numbers {
			o.disabled[n] = true
		}
	}
}

// New creates an Engine over the static rule table.
func New(opts ...Option) *Engine {
	o := engineOptions{disabled: make(map[int]bool)}
	for _, opt := range opts {
		opt(&o)
	}

	defs := make([]RuleDef, 0, len(ruleTable))
	for _, def := range ruleTable {
		if o.disabled[def.Number] {
			continue
		}
		defs = append(defs, def)
	}
	return &Engine{defs: defs}
}

// defaultEngine evaluates with every rule enabled.
var defaultEngine = New()

// Evaluate classifies name using the default engine.
func Evaluate(name string) ValidationResult {
	return defaultEngine.Evaluate(name)
}

// Evaluate returns the first rule matching name, or a not-recognized result.
// The name must already be in canonical form; see Canonical.
func (e *Engine) Evaluate(name string) ValidationResult {
	for _, def := range e.defs {
		if def.Check == nil {
			continue
		}
		msg, ok := def.Check(name)
		if !ok {
			continue
		}
		rule := def.Rule.clone()
		return ValidationResult{
			Valid:   true,
			Message: msg,
			Rule:    &rule,
		}
	}

	return ValidationResult{
		Valid:   false,
		Message: MessageNotRecognized,
	}
}

// Enabled reports whether the engine evaluates the given rule number.
func (e *Engine) Enabled(number int) bool {
	for _, def := range e.defs {
		if def.Number == number {
			return true
		}
	}
	return false
}
