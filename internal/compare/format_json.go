package compare

import (
	"encoding/json"
)

// JSONFormatter formats batch results as JSON
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// Format generates JSON output for batch results
func (jf *JSONFormatter) Format(b *BatchResult) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(b, "", "  ")
	} else {
		data, err = json.Marshal(b)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}
