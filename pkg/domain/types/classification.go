package types

import "github.com/m-mizutani/goerr/v2"

// Classification is a risk classification label derived from the
// impact x likelihood score bucketing. The value is stored precomputed
// in the risks table.
type Classification string

const (
	ClassificationLow         Classification = "Low"
	ClassificationModerate    Classification = "Moderate"
	ClassificationSignificant Classification = "Significant"
)

// Classifications returns all known classification labels.
func Classifications() []Classification {
	return []Classification{
		ClassificationLow,
		ClassificationModerate,
		ClassificationSignificant,
	}
}

func (x Classification) String() string {
	return string(x)
}

// Validate checks if the classification is a known label
func (x Classification) Validate() error {
	switch x {
	case ClassificationLow, ClassificationModerate, ClassificationSignificant:
		return nil
	}
	return goerr.New("unknown classification", goerr.V("classification", string(x)))
}
