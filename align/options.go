package align

// Functional configuration for Align.
//
//   - Option / Options follow the usual functional-options shape; Options
//     fields are unexported and resolved through gatherOptions.
//   - Defaults: DefaultScoring(), no alphabet check.
//   - Constructors panic only on nonsensical values (programmer error).

const panicEmptyAlphabet = "align: WithAlphabet: alphabet must be non-empty"

// Option mutates Options. Later options override earlier ones.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	scoring  Scoring
	alphabet Alphabet // empty = accept any byte
}

// DefaultOptions returns the zero-configuration used by Align.
func DefaultOptions() Options {
	return Options{scoring: DefaultScoring()}
}

// Scoring returns the resolved scoring.
func (o Options) Scoring() Scoring { return o.scoring }

// Alphabet returns the resolved alphabet; empty means unchecked.
func (o Options) Alphabet() Alphabet { return o.alphabet }

// WithScoring replaces all three scores at once.
func WithScoring(sc Scoring) Option {
	return func(o *Options) { o.scoring = sc }
}

// WithMatch sets the score for equal symbols.
func WithMatch(score int) Option {
	return func(o *Options) { o.scoring.Match = score }
}

// WithMismatch sets the score for differing symbols.
func WithMismatch(score int) Option {
	return func(o *Options) { o.scoring.Mismatch = score }
}

// WithGap sets the score for both insertion and deletion.
func WithGap(score int) Option {
	return func(o *Options) { o.scoring.Gap = score }
}

// WithAlphabet makes Align reject sequences containing symbols outside al.
// Panics if al is empty.
func WithAlphabet(al Alphabet) Option {
	if al == "" {
		panic(panicEmptyAlphabet)
	}

	return func(o *Options) { o.alphabet = al }
}

// gatherOptions applies opts over DefaultOptions. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Resolve applies opts over DefaultOptions and returns the result.
func Resolve(opts ...Option) Options {
	return gatherOptions(opts...)
}
