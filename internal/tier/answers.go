// Package tier classifies assessment answers into one of five ordinal skill
// tiers. Everything in this package is pure: no I/O, no shared mutable state,
// safe for concurrent use.
package tier

// Recognised values of the web technologies question.
const (
	TechHTML       = "html"
	TechCSS        = "css"
	TechJavaScript = "javascript"
	TechReact      = "react"
	TechNextJS     = "nextjs"
)

// Recognised values of the backend frameworks question.
const (
	FrameworkNone    = "none"
	FrameworkExpress = "express"
	FrameworkHono    = "hono"
	FrameworkLaravel = "laravel"
)

type CRUDLevel string

const (
	CRUDNone      CRUDLevel = "no"
	CRUDWithoutDB CRUDLevel = "without-db"
	CRUDWithDB    CRUDLevel = "with-db"
)

type AuthLevel string

const (
	AuthNone  AuthLevel = "no"
	AuthBasic AuthLevel = "basic"
	AuthOAuth AuthLevel = "oauth"
)

type GolangLevel string

const (
	GolangNone      GolangLevel = "no"
	GolangBasics    GolangLevel = "basics"
	GolangBuildAPIs GolangLevel = "can-build-apis"
)

type DeploymentLevel string

const (
	DeployedNone         DeploymentLevel = "no"
	DeployedFrontendOnly DeploymentLevel = "frontend-only"
	DeployedFullstack    DeploymentLevel = "fullstack"
)

type AuthAPILevel string

const (
	AuthAPINone        AuthAPILevel = "no"
	AuthAPINextJSOnly  AuthAPILevel = "nextjs-only"
	AuthAPIExpressHono AuthAPILevel = "express-hono"
	AuthAPIMultiple    AuthAPILevel = "multiple"
)

// Answers is one respondent's normalised assessment. Absent fields must be
// filled with the lowest-capability value (or an empty set) before the
// answers reach this package.
type Answers struct {
	WebTechnologies   []string        `json:"webTechnologies"`
	CanBuildCRUD      CRUDLevel       `json:"canBuildCRUD"`
	CanImplementAuth  AuthLevel       `json:"canImplementAuth"`
	BackendFrameworks []string        `json:"backendFrameworks"`
	KnowsGolang       GolangLevel     `json:"knowsGolang"`
	HasDeployed       DeploymentLevel `json:"hasDeployed"`
	CanBuildAuthAPI   AuthAPILevel    `json:"canBuildAuthAPI"`
}

// Lowest returns the weakest possible answer set.
func Lowest() Answers {
	return Answers{
		WebTechnologies:   []string{},
		CanBuildCRUD:      CRUDNone,
		CanImplementAuth:  AuthNone,
		BackendFrameworks: []string{},
		KnowsGolang:       GolangNone,
		HasDeployed:       DeployedNone,
		CanBuildAuthAPI:   AuthAPINone,
	}
}

func (l AuthAPILevel) buildsStandaloneAPIs() bool {
	return l == AuthAPIExpressHono || l == AuthAPIMultiple
}
