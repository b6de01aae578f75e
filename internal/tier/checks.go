package tier

import "slices"

// Checks are capability flags derived from the raw answer sets. They are
// recomputed on every evaluation.
type Checks struct {
	HasHTML   bool
	HasCSS    bool
	HasJS     bool
	HasReact  bool // react or nextjs
	HasNextJS bool

	KnowsExpress bool
	KnowsHono    bool
	KnowsLaravel bool

	KnowsBackendFramework bool
	// NoBackendFramework is true for an explicit "none" selection and for a
	// selection containing none of express, hono and laravel. Both are
	// treated the same.
	NoBackendFramework bool
}

// ExtractChecks derives the capability flags. Unrecognised tokens are ignored.
func ExtractChecks(a Answers) Checks {
	web := a.WebTechnologies
	backend := a.BackendFrameworks

	c := Checks{
		HasHTML:   slices.Contains(web, TechHTML),
		HasCSS:    slices.Contains(web, TechCSS),
		HasJS:     slices.Contains(web, TechJavaScript),
		HasReact:  slices.Contains(web, TechReact) || slices.Contains(web, TechNextJS),
		HasNextJS: slices.Contains(web, TechNextJS),

		KnowsExpress: slices.Contains(backend, FrameworkExpress),
		KnowsHono:    slices.Contains(backend, FrameworkHono),
		KnowsLaravel: slices.Contains(backend, FrameworkLaravel),
	}
	c.KnowsBackendFramework = c.KnowsExpress || c.KnowsHono || c.KnowsLaravel
	c.NoBackendFramework = slices.Contains(backend, FrameworkNone) || !c.KnowsBackendFramework

	return c
}
