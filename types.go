package intl

// MessageDescriptor identifies a message pattern. ID addresses the active
// catalog; DefaultMessage is the authored fallback pattern used when the
// catalog has no entry; Description is authoring metadata and never
// affects formatting.
type MessageDescriptor struct {
	ID             string
	DefaultMessage string
	Description    string
}

// MessageFormatter evaluates a message pattern against substitution
// values. Implementations receive the owning shape for locale, catalog,
// and formatter access, and return the evaluated part sequence. The
// default engine handles {name} placeholders and <tag>...</tag> regions;
// richer grammars plug in through this interface.
type MessageFormatter interface {
	FormatParts(shape *Intl, desc MessageDescriptor, values map[string]any) ([]Node, error)
}

// PluralCategory names a CLDR plural form.
type PluralCategory string

const (
	PluralZero  PluralCategory = "zero"
	PluralOne   PluralCategory = "one"
	PluralTwo   PluralCategory = "two"
	PluralFew   PluralCategory = "few"
	PluralMany  PluralCategory = "many"
	PluralOther PluralCategory = "other"
)
