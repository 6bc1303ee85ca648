package grammarfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

func decodeYAML(data []byte) ([]fileCommand, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var fs fileSet
	if err := dec.Decode(&fs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("missing required field: commands")
		}
		return nil, fmt.Errorf("invalid YAML: %v", err)
	}
	if fs.Commands == nil {
		return nil, fmt.Errorf("missing required field: commands")
	}
	return fs.Commands, nil
}
