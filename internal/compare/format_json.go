package compare

import (
	"encoding/json"
)

// JSONFormatter formats comparison results as JSON
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// Marshal encodes the comparison set; decimals are written as strings
func (jf *JSONFormatter) Marshal(compSet *ComparisonSet) ([]byte, error) {
	if jf.Pretty {
		return json.MarshalIndent(compSet, "", "  ")
	}
	return json.Marshal(compSet)
}

// Format generates JSON output for comparison results
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	data, err := jf.Marshal(compSet)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
