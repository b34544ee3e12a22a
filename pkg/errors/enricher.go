package errors

// Enricher converts plain errors into ActionableErrors.
type Enricher struct{}

// NewEnricher creates a new Enricher.
func NewEnricher() *Enricher {
	return &Enricher{}
}

// Enrich wraps err with a category and suggestions. The path is the affected
// path if the caller knows it; pass "" otherwise. A nil err returns nil.
func (e *Enricher) Enrich(err error, path string) ActionableError {
	if err == nil {
		return nil
	}

	category := Categorize(err)

	return NewActionableError(err, category, suggestionsFor(category, path), path)
}
