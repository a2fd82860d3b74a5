package checks

import (
	"strings"

	"github.com/codegauntlet/gauntlet/pkg/check"
)

// HasMoreCommitsThanReference fails with "no_new_code" when the submission
// does not have strictly more commits than the reference. Without a
// reference the check passes vacuously.
func HasMoreCommitsThanReference(req *check.Request) (*check.Outcome, error) {
	if req.Reference == nil {
		return nil, nil
	}
	subCount, err := req.Submission.CommitCount()
	if err != nil {
		return nil, err
	}
	refCount, err := req.Reference.CommitCount()
	if err != nil {
		return nil, err
	}
	if refCount >= subCount {
		return check.Fail("no_new_code"), nil
	}
	return nil, nil
}

// CommitMessagesNotBlacklisted warns with "bad_commit_messages" when any of
// the last N commit subjects is one of the throwaway messages in this
// validator's list ("fix", "update", "done", ...). Matching is
// case-insensitive on the trimmed subject.
func CommitMessagesNotBlacklisted(req *check.Request) (*check.Outcome, error) {
	messages, err := req.Submission.CommitMessages(req.Settings.LastCommitsToCheck)
	if err != nil {
		return nil, err
	}
	banned := req.Exceptions[IDCommitMessagesNotBlacklisted]
	for _, msg := range messages {
		normalized := strings.ToLower(strings.TrimSpace(msg))
		if banned.Contains(normalized) {
			return check.Failf("bad_commit_messages", msg), nil
		}
	}
	return nil, nil
}
