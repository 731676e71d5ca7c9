package grammar

import "github.com/sirupsen/logrus"

// Option configures a parse call, following the functional-option shape
// used throughout the teacher stack (gluon's Server WithXxx options).
// The defaults (defaultOptions) are silent, with no input-length cap and
// a nested-comment depth limit of 64: the parser stays a pure function
// unless a caller opts into logging.
type Option interface {
	apply(*options)
}

type options struct {
	logger           logrus.FieldLogger
	traceProductions bool
	maxCommentDepth  int
	maxInputLength   int
	normalizeNFC     bool
}

func defaultOptions() options {
	return options{maxCommentDepth: 64}
}

type optionFunc func(*options)

func (f optionFunc) apply(o *options) { f(o) }

// WithLogger attaches a logrus.FieldLogger that receives Debug-level
// entries for parse failures and, if WithTraceProductions is also set,
// a Trace-level entry each time consume/consumeWith accepts a token.
// Entering a production is not itself logged. Without a logger the
// parser never logs (spec §5: no I/O by default).
func WithLogger(l logrus.FieldLogger) Option {
	return optionFunc(func(o *options) { o.logger = l })
}

// WithTraceProductions enables per-production Trace logging; it has no
// effect unless WithLogger is also supplied.
func WithTraceProductions(enabled bool) Option {
	return optionFunc(func(o *options) { o.traceProductions = enabled })
}

// WithMaxCommentDepth bounds nested-comment recursion (spec §9's
// nested-comment output convention has no inherent depth limit; this
// guards the recursive-descent stack against pathological input). A
// value of 0 disables the check.
func WithMaxCommentDepth(n int) Option {
	return optionFunc(func(o *options) { o.maxCommentDepth = n })
}

// WithMaxInputLength rejects input longer than n bytes before parsing.
// Default 0 (unlimited), matching spec §5's O(n) totality claim; opt in
// for untrusted-input call sites that also want an absolute cap ahead of
// the recovery production's raw-slice allocation.
func WithMaxInputLength(n int) Option {
	return optionFunc(func(o *options) { o.maxInputLength = n })
}

// WithNFCNormalization runs golang.org/x/text/unicode/norm's NFC form
// over display-name text before EscapedDisplayName escapes it. Off by
// default so verbatim UTF-8 passthrough (spec §1 non-goals) remains the
// baseline behavior.
func WithNFCNormalization() Option {
	return optionFunc(func(o *options) { o.normalizeNFC = true })
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	return o
}
