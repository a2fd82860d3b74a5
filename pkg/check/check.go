// Package check defines the contracts shared between the validation engine,
// the validator registry, and individual validator implementations: outcomes,
// the validator calling convention, exception lists, and the read-only
// repository view validators inspect.
package check

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// ID is the stable identity of a validator. It keys exception lists and is
// used for removal and reporting. IDs never change once a validator ships.
type ID string

// Outcome is a single detected problem. A nil *Outcome means the check passed.
type Outcome struct {
	// Slug is the machine-readable problem category (e.g. "no_readme").
	Slug string
	// Message is optional human-readable detail; empty means no detail.
	Message string
}

// Fail builds an outcome with the given slug and no message.
func Fail(slug string) *Outcome {
	return &Outcome{Slug: slug}
}

// Failf builds an outcome with the given slug and message.
func Failf(slug, message string) *Outcome {
	return &Outcome{Slug: slug, Message: message}
}

// Validator is a single check over one or two repositories. It returns a nil
// outcome on success. An error return signals a collaborator fault (an
// unreadable repository, a broken check) and is never converted into an
// outcome; the engine propagates it unchanged.
type Validator func(req *Request) (*Outcome, error)

// Request carries everything a validator may consult. New capabilities are
// added as new fields so existing validators keep compiling and simply
// ignore what they do not use.
type Request struct {
	// Submission is the repository under validation. Never nil.
	Submission Repository
	// Reference is the repository the submission is compared against.
	// Nil when no reference was supplied; validators that need one must
	// decide their own no-reference policy (usually a vacuous pass).
	Reference Repository
	// Exceptions maps validator IDs to their exemption sets.
	Exceptions ExceptionLists
	// Token is the active run token; empty means no restriction requested.
	Token string
	// Settings holds threshold knobs shared by the default validators.
	Settings Settings
}

// Entry is one registered validator: its identity, its callable, and an
// optional activation token. An entry with a RequiredToken runs only when
// the run's active token equals it; otherwise it is skipped as a vacuous
// pass in both phases.
type Entry struct {
	ID            ID
	Check         Validator
	RequiredToken string
}

// Set is an unordered collection of exempt values.
type Set map[string]struct{}

// NewSet builds a Set from the given values.
func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Contains reports whether the set holds value.
func (s Set) Contains(value string) bool {
	_, ok := s[value]
	return ok
}

// ExceptionLists maps validator identity to the values exempted from that
// validator. Absent keys behave as empty sets.
type ExceptionLists map[ID]Set

// Exempt reports whether value is exempt for the validator with the given
// identity. Lookup is O(1); a missing list exempts nothing.
func (e ExceptionLists) Exempt(id ID, value string) bool {
	return e[id].Contains(value)
}

// Settings holds the thresholds consulted by the default validators.
type Settings struct {
	// ReadmeFilename is the file whose presence satisfies the readme gate.
	ReadmeFilename string
	// MinNameLength is the shortest acceptable identifier length.
	MinNameLength int
	// LastCommitsToCheck bounds how many recent commit messages are read.
	LastCommitsToCheck int
	// TabSize is the expected indentation width in spaces.
	TabSize int
	// MaxComplexity is the cyclomatic complexity ceiling per function.
	MaxComplexity int
	// MaxLineLength is the style limit for source lines.
	MaxLineLength int
}

// DefaultSettings returns the thresholds the default battery ships with.
func DefaultSettings() Settings {
	return Settings{
		ReadmeFilename:     "README.md",
		MinNameLength:      2,
		LastCommitsToCheck: 5,
		TabSize:            4,
		MaxComplexity:      7,
		MaxLineLength:      100,
	}
}

// Unit is one parsed source file. Root is nil when the file could not be
// parsed at all; validators may interpret that as a syntax-error finding.
// Source is the raw file content the tree's byte offsets index into.
type Unit struct {
	Path   string
	Source []byte
	Root   *sitter.Node
}

// Repository is the read-only view of one repository the engine threads to
// validators. Implementations are expected to be lazy: parsing and git
// queries happen on first use, and repeated calls return cached results.
// The engine never mutates a Repository.
type Repository interface {
	// Units returns the parsed source units with their repo-relative paths,
	// in a stable order.
	Units() ([]Unit, error)
	// CommitCount returns the number of commits reachable from HEAD.
	CommitCount() (int, error)
	// CommitMessages returns the subject lines of the most recent n commits,
	// newest first. It returns fewer when the history is shorter.
	CommitMessages(n int) ([]string, error)
	// FileContents returns the raw contents of the file at the given
	// repo-relative path.
	FileContents(path string) ([]byte, error)
	// FilePaths returns the repo-relative paths of all tracked files.
	FilePaths() ([]string, error)
}
