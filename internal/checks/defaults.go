package checks

import (
	"github.com/codegauntlet/gauntlet/internal/rules"
	"github.com/codegauntlet/gauntlet/pkg/check"
)

// Validator identities. These are stable: they key exception lists and
// appear in user-facing output.
const (
	IDHasMoreCommitsThanReference  check.ID = "has_more_commits_than_reference"
	IDCommitMessagesNotBlacklisted check.ID = "commit_messages_not_blacklisted"
	IDHasReadmeFile                check.ID = "has_readme_file"
	IDChangedReadme                check.ID = "changed_readme"
	IDSourcesInUTF8                check.ID = "sources_in_utf8"
	IDNoBOM                        check.ID = "no_bom"
	IDNoSyntaxErrors               check.ID = "no_syntax_errors"
	IDIndentsAreFourSpaces         check.ID = "indents_are_four_spaces"
	IDNoBuiltinShadowing           check.ID = "no_builtin_shadowing"
	IDNoBlacklistedDirectories     check.ID = "no_blacklisted_directories"
	IDSnakeCaseNames               check.ID = "snake_case_names"
	IDNoShortNames                 check.ID = "no_short_names"
	IDNoBlacklistedNames           check.ID = "no_blacklisted_names"
	IDNoStarImports                check.ID = "no_star_imports"
	IDNoLocalImports               check.ID = "no_local_imports"
	IDNoTrailingSemicolons         check.ID = "no_trailing_semicolons"
	IDNoLongLines                  check.ID = "no_long_lines"
	IDMcCabeComplexityOK           check.ID = "mccabe_complexity_ok"
	IDNoExitCalls                  check.ID = "no_exit_calls"
	IDNoBuiltinMinMax              check.ID = "no_builtin_min_max"
)

// TokenMinMaxChallenge activates the min/max builtin ban for exercises
// that ask for a hand-written implementation.
const TokenMinMaxChallenge = "min_max_challenge"

// Group names in gate order. Earlier groups are preconditions for later
// ones: style checks on a repository with no commits are meaningless.
const (
	GroupCommits  = "commits"
	GroupReadme   = "readme"
	GroupEncoding = "encoding"
	GroupBOM      = "bom"
	GroupSyntax   = "syntax"
	GroupGeneral  = "general"
)

// DefaultRegistry assembles the standard battery with its default
// exception lists. Callers may reconfigure the result before handing it to
// an engine.
func DefaultRegistry() *rules.Registry {
	return rules.NewBuilder().
		WithErrorValidator(GroupCommits, check.Entry{ID: IDHasMoreCommitsThanReference, Check: HasMoreCommitsThanReference}).
		WithWarningValidator(GroupCommits, check.Entry{ID: IDCommitMessagesNotBlacklisted, Check: CommitMessagesNotBlacklisted}).
		WithErrorValidator(GroupReadme, check.Entry{ID: IDHasReadmeFile, Check: HasReadmeFile}).
		WithErrorValidator(GroupEncoding, check.Entry{ID: IDSourcesInUTF8, Check: SourcesInUTF8}).
		WithErrorValidator(GroupBOM, check.Entry{ID: IDNoBOM, Check: NoBOM}).
		WithErrorValidator(GroupSyntax, check.Entry{ID: IDNoSyntaxErrors, Check: NoSyntaxErrors}).
		WithWarningValidator(GroupSyntax, check.Entry{ID: IDIndentsAreFourSpaces, Check: IndentsAreFourSpaces}).
		WithWarningValidator(GroupSyntax, check.Entry{ID: IDNoBuiltinShadowing, Check: NoBuiltinShadowing}).
		WithErrorValidator(GroupGeneral, check.Entry{ID: IDNoBlacklistedDirectories, Check: NoBlacklistedDirectories}).
		WithErrorValidator(GroupGeneral, check.Entry{ID: IDChangedReadme, Check: ChangedReadme}).
		WithErrorValidator(GroupGeneral, check.Entry{ID: IDSnakeCaseNames, Check: SnakeCaseNames}).
		WithErrorValidator(GroupGeneral, check.Entry{ID: IDMcCabeComplexityOK, Check: McCabeComplexityOK}).
		WithErrorValidator(GroupGeneral, check.Entry{ID: IDNoStarImports, Check: NoStarImports}).
		WithErrorValidator(GroupGeneral, check.Entry{ID: IDNoLocalImports, Check: NoLocalImports}).
		WithErrorValidator(GroupGeneral, check.Entry{ID: IDNoBlacklistedNames, Check: NoBlacklistedNames}).
		WithErrorValidator(GroupGeneral, check.Entry{ID: IDNoShortNames, Check: NoShortNames}).
		WithErrorValidator(GroupGeneral, check.Entry{ID: IDNoTrailingSemicolons, Check: NoTrailingSemicolons}).
		WithErrorValidator(GroupGeneral, check.Entry{ID: IDNoExitCalls, Check: NoExitCalls}).
		WithErrorValidator(GroupGeneral, check.Entry{ID: IDNoBuiltinMinMax, Check: NoBuiltinMinMax, RequiredToken: TokenMinMaxChallenge}).
		WithWarningValidator(GroupGeneral, check.Entry{ID: IDNoLongLines, Check: NoLongLines}).
		WithExceptionList(IDNoBlacklistedNames,
			"list", "lists", "input", "cnt", "data", "name", "load", "value",
			"object", "file", "result", "item", "num", "info", "n",
		).
		WithExceptionList(IDCommitMessagesNotBlacklisted,
			"win", "commit", "commit#1", "fix", "minor edits", "update", "done",
			"first commit", "start", "refactor", "!", "bug fix", "corrected",
			"add files via upload", "test", "fixed", "minor bugfix",
			"minor bugfixes", "finished", "fixes", "",
		).
		WithExceptionList(IDNoBlacklistedDirectories,
			".idea", "__pycache__", ".vscode",
		).
		WithExceptionList(IDNoShortNames,
			"a", "b", "c", "x", "y", "x1", "x2", "y1", "y2", "_",
		).
		WithExceptionList(IDSnakeCaseNames,
			"Session", "Base", "User", "Order", "Address",
		).
		WithExceptionList(IDNoExitCalls,
			"main",
		).
		WithExceptionList(IDNoLocalImports,
			"manage.py",
		).
		Build()
}
