package checks

import (
	"bytes"

	"github.com/codegauntlet/gauntlet/pkg/check"
)

// HasReadmeFile fails with "no_readme" when the submission does not track
// a file with the configured readme name at the repository root.
func HasReadmeFile(req *check.Request) (*check.Outcome, error) {
	paths, err := req.Submission.FilePaths()
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		if p == req.Settings.ReadmeFilename {
			return nil, nil
		}
	}
	return check.Fail("no_readme"), nil
}

// ChangedReadme fails with "readme_not_changed" when the submission's
// readme is byte-identical to the reference's. Without a reference, or
// when the reference has no readme to compare against, the check passes
// vacuously.
func ChangedReadme(req *check.Request) (*check.Outcome, error) {
	if req.Reference == nil {
		return nil, nil
	}
	refReadme, err := req.Reference.FileContents(req.Settings.ReadmeFilename)
	if err != nil {
		return nil, nil
	}
	subReadme, err := req.Submission.FileContents(req.Settings.ReadmeFilename)
	if err != nil {
		return nil, err
	}
	if bytes.Equal(subReadme, refReadme) {
		return check.Fail("readme_not_changed"), nil
	}
	return nil, nil
}
