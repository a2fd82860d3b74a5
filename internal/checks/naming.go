package checks

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/codegauntlet/gauntlet/pkg/check"
)

// SnakeCaseNames fails with "camel_case_vars" at the first bound identifier
// containing an uppercase letter, unless the name is whitelisted (library
// conventions like sqlalchemy's Session or Base).
func SnakeCaseNames(req *check.Request) (*check.Outcome, error) {
	units, err := req.Submission.Units()
	if err != nil {
		return nil, err
	}
	for _, u := range units {
		for _, d := range definedNames(u) {
			if !hasUpper(d.name) {
				continue
			}
			if req.Exceptions.Exempt(IDSnakeCaseNames, d.name) {
				continue
			}
			return check.Failf("camel_case_vars", fmt.Sprintf("rename, e.g., %s.", d.name)), nil
		}
	}
	return nil, nil
}

func hasUpper(name string) bool {
	return strings.IndexFunc(name, unicode.IsUpper) >= 0
}

// NoShortNames fails with "short_variable_names" at the first bound
// identifier shorter than the configured minimum, unless whitelisted
// (loop counters and coordinates like a, b, x1, y2, _).
func NoShortNames(req *check.Request) (*check.Outcome, error) {
	units, err := req.Submission.Units()
	if err != nil {
		return nil, err
	}
	for _, u := range units {
		for _, d := range definedNames(u) {
			if len(d.name) >= req.Settings.MinNameLength {
				continue
			}
			if req.Exceptions.Exempt(IDNoShortNames, d.name) {
				continue
			}
			return check.Failf("short_variable_names", d.name), nil
		}
	}
	return nil, nil
}

// NoBlacklistedNames fails with "bad_variable_names" at the first bound
// identifier found in this validator's list of meaningless names (data,
// result, value, ...).
func NoBlacklistedNames(req *check.Request) (*check.Outcome, error) {
	units, err := req.Submission.Units()
	if err != nil {
		return nil, err
	}
	banned := req.Exceptions[IDNoBlacklistedNames]
	for _, u := range units {
		for _, d := range definedNames(u) {
			if banned.Contains(d.name) {
				return check.Failf("bad_variable_names", d.name), nil
			}
		}
	}
	return nil, nil
}

// NoBlacklistedDirectories fails with "blacklisted_directory" when the
// submission tracks files under editor or cache directories (.idea,
// __pycache__, ...).
func NoBlacklistedDirectories(req *check.Request) (*check.Outcome, error) {
	paths, err := req.Submission.FilePaths()
	if err != nil {
		return nil, err
	}
	banned := req.Exceptions[IDNoBlacklistedDirectories]
	for _, p := range paths {
		parts := strings.Split(p, "/")
		for _, dir := range parts[:max(len(parts)-1, 0)] {
			if banned.Contains(dir) {
				return check.Failf("blacklisted_directory", dir), nil
			}
		}
	}
	return nil, nil
}
