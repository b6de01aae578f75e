package tier

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidAnswers marks answers rejected by Validate. A fallback
// classification is never reported through this error.
var ErrInvalidAnswers = errors.New("invalid assessment answers")

// InvalidAnswerError names the offending field and value.
type InvalidAnswerError struct {
	Field string
	Value string
}

func (e *InvalidAnswerError) Error() string {
	return fmt.Sprintf("%s: unrecognised value %q for %s", ErrInvalidAnswers, e.Value, e.Field)
}

func (e *InvalidAnswerError) Unwrap() error {
	return ErrInvalidAnswers
}

var (
	crudLevels       = []CRUDLevel{CRUDNone, CRUDWithoutDB, CRUDWithDB}
	authLevels       = []AuthLevel{AuthNone, AuthBasic, AuthOAuth}
	golangLevels     = []GolangLevel{GolangNone, GolangBasics, GolangBuildAPIs}
	deploymentLevels = []DeploymentLevel{DeployedNone, DeployedFrontendOnly, DeployedFullstack}
	authAPILevels    = []AuthAPILevel{AuthAPINone, AuthAPINextJSOnly, AuthAPIExpressHono, AuthAPIMultiple}
)

// Validate checks that every single-select field holds a recognised value.
// Set fields may contain unknown tokens; they are inert during
// classification and are not rejected here.
func Validate(a Answers) error {
	switch {
	case !slices.Contains(crudLevels, a.CanBuildCRUD):
		return &InvalidAnswerError{Field: "canBuildCRUD", Value: string(a.CanBuildCRUD)}
	case !slices.Contains(authLevels, a.CanImplementAuth):
		return &InvalidAnswerError{Field: "canImplementAuth", Value: string(a.CanImplementAuth)}
	case !slices.Contains(golangLevels, a.KnowsGolang):
		return &InvalidAnswerError{Field: "knowsGolang", Value: string(a.KnowsGolang)}
	case !slices.Contains(deploymentLevels, a.HasDeployed):
		return &InvalidAnswerError{Field: "hasDeployed", Value: string(a.HasDeployed)}
	case !slices.Contains(authAPILevels, a.CanBuildAuthAPI):
		return &InvalidAnswerError{Field: "canBuildAuthAPI", Value: string(a.CanBuildAuthAPI)}
	}
	return nil
}
