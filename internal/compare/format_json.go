package compare

import (
	"time"

	"github.com/goccy/go-json"
)

// JSONFormatter writes a comparison as a standalone document. Advanced
// results carry their simulation statistics.
type JSONFormatter struct {
	Pretty bool
	Now    func() time.Time // nil uses time.Now
}

type comparisonDocument struct {
	GeneratedAt time.Time `json:"generatedAt"`
	Methods     int       `json:"methods"`
	*ComparisonSet
}

func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	now := time.Now
	if jf.Now != nil {
		now = jf.Now
	}
	doc := comparisonDocument{
		GeneratedAt:   now().UTC(),
		Methods:       len(compSet.All()),
		ComparisonSet: compSet,
	}

	var (
		data []byte
		err  error
	)
	if jf.Pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
