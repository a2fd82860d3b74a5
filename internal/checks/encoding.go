package checks

import (
	"bytes"
	"unicode/utf8"

	"github.com/codegauntlet/gauntlet/pkg/check"
)

var bomPrefix = []byte{0xEF, 0xBB, 0xBF}

// SourcesInUTF8 fails with "sources_not_utf8" naming the first source file
// whose contents are not valid UTF-8.
func SourcesInUTF8(req *check.Request) (*check.Outcome, error) {
	units, err := req.Submission.Units()
	if err != nil {
		return nil, err
	}
	for _, u := range units {
		if !utf8.Valid(u.Source) {
			return check.Failf("sources_not_utf8", u.Path), nil
		}
	}
	return nil, nil
}

// NoBOM fails with "has_bom" naming the first source file that starts with
// a UTF-8 byte order mark.
func NoBOM(req *check.Request) (*check.Outcome, error) {
	units, err := req.Submission.Units()
	if err != nil {
		return nil, err
	}
	for _, u := range units {
		if bytes.HasPrefix(u.Source, bomPrefix) {
			return check.Failf("has_bom", u.Path), nil
		}
	}
	return nil, nil
}
