package formats

import (
	"encoding/json"

	"fnoutline/internal/core/ports"
)

type JSONGenerator struct {
	Indent string
}

func NewJSONGenerator() *JSONGenerator {
	return &JSONGenerator{Indent: "  "}
}

func (j *JSONGenerator) Generate(res ports.RunResult) (string, error) {
	if res.Files == nil {
		res.Files = []ports.FileOutline{}
	}
	data, err := json.MarshalIndent(res, "", j.Indent)
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
