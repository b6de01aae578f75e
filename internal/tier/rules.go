package tier

// Rule names recorded alongside a classification.
const (
	RuleTier4    = "tier-4"
	RuleTier3    = "tier-3"
	RuleTier2    = "tier-2"
	RuleTier1    = "tier-1"
	RuleTier0    = "tier-0"
	RuleFallback = "fallback"
)

type rule struct {
	name  string
	tier  int
	match func(c Checks, a Answers) bool
}

// cascade is evaluated top-down and the first match wins. The predicates
// overlap (an answer set can satisfy tier 3 and tier 1 at once), so the
// order 4, 3, 2, 1, 0 decides the outcome and must not change.
var cascade = []rule{
	{name: RuleTier4, tier: 4, match: advancedFullStack},
	{name: RuleTier3, tier: 3, match: multiFramework},
	{name: RuleTier2, tier: 2, match: fullStackNextJS},
	{name: RuleTier1, tier: 1, match: crudDeveloper},
	{name: RuleTier0, tier: 0, match: beginner},
}

// Next.js, at least one backend framework, Go APIs, and authenticated APIs
// outside Next.js.
func advancedFullStack(c Checks, a Answers) bool {
	return c.HasNextJS &&
		c.KnowsBackendFramework &&
		a.KnowsGolang == GolangBuildAPIs &&
		a.CanBuildAuthAPI.buildsStandaloneAPIs()
}

// Authenticated CRUD with a database, no Go, and either Next.js plus a
// backend framework building APIs, or Laravel alone.
func multiFramework(c Checks, a Answers) bool {
	if a.CanBuildCRUD != CRUDWithDB || a.CanImplementAuth != AuthOAuth || a.KnowsGolang != GolangNone {
		return false
	}
	nextWithBackend := c.HasNextJS && c.KnowsBackendFramework && a.CanBuildAuthAPI.buildsStandaloneAPIs()
	laravel := c.KnowsLaravel && a.CanBuildAuthAPI == AuthAPIExpressHono
	return nextWithBackend || laravel
}

// Authenticated, deployed Next.js apps without standalone API experience.
func fullStackNextJS(c Checks, a Answers) bool {
	return c.HasNextJS &&
		a.CanBuildCRUD == CRUDWithDB &&
		a.CanImplementAuth == AuthOAuth &&
		a.HasDeployed != DeployedNone &&
		(c.NoBackendFramework || a.CanBuildAuthAPI == AuthAPINextJSOnly || a.CanBuildAuthAPI == AuthAPINone)
}

// Database-backed CRUD with React or Next.js but no authentication.
func crudDeveloper(c Checks, a Answers) bool {
	return (c.HasNextJS || c.HasReact) &&
		a.CanBuildCRUD == CRUDWithDB &&
		a.CanImplementAuth == AuthNone
}

// Web fundamentals and React, not yet building CRUD with a database.
func beginner(c Checks, a Answers) bool {
	return c.HasHTML && c.HasCSS && c.HasJS && c.HasReact &&
		(a.CanBuildCRUD == CRUDNone || a.CanBuildCRUD == CRUDWithoutDB)
}

// Match is a classification together with the rule that produced it.
type Match struct {
	Result   Result `json:"result"`
	Rule     string `json:"rule"`
	Fallback bool   `json:"fallback"`
}

// Evaluate runs the cascade and reports which rule matched. It is total:
// answers that match no rule get the fallback record.
func Evaluate(a Answers) Match {
	checks := ExtractChecks(a)
	for _, r := range cascade {
		if r.match(checks, a) {
			return Match{Result: tierResults[r.tier].clone(), Rule: r.name}
		}
	}
	return Match{Result: Fallback(), Rule: RuleFallback, Fallback: true}
}

// Classify maps answers to a tier result. Identical answers always yield an
// identical result.
func Classify(a Answers) Result {
	return Evaluate(a).Result
}

// Rules returns the rule names in evaluation order, followed by the fallback.
func Rules() []string {
	names := make([]string, 0, len(cascade)+1)
	for _, r := range cascade {
		names = append(names, r.name)
	}
	return append(names, RuleFallback)
}
