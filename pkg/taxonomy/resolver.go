package taxonomy

// Stage identifies which lookup resolved a label.
type Stage string

// Resolution stages.
const (
	StageTable      Stage = "table"
	StageClassifier Stage = "classifier"
	StageNone       Stage = "none"
)

// Resolver applies the mapping table first and falls back to the classifier.
type Resolver struct {
	table      *Table
	classifier *Classifier
}

// NewResolver creates a Resolver. Nil arguments get the defaults.
func NewResolver(table *Table, classifier *Classifier) *Resolver {
	if table == nil {
		table = DefaultTable()
	}
	if classifier == nil {
		classifier = DefaultClassifier()
	}
	return &Resolver{table: table, classifier: classifier}
}

// Resolve maps a raw label to its canonical pair. A StageNone result means
// the label is unknown and the field should be discarded.
func (r *Resolver) Resolve(label string) (Canonical, Stage) {
	if c, ok := r.table.Lookup(label); ok {
		return c, StageTable
	}
	if c, ok := r.classifier.Classify(label); ok {
		return c, StageClassifier
	}
	return Canonical{}, StageNone
}
