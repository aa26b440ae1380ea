package formats

import (
	"fmt"
	"strings"

	"fnoutline/internal/core/ports"
)

type TSVGenerator struct{}

func NewTSVGenerator() *TSVGenerator {
	return &TSVGenerator{}
}

// Generate writes one row per declaration. Files without declarations
// produce no rows.
func (t *TSVGenerator) Generate(res ports.RunResult) (string, error) {
	var buf strings.Builder

	buf.WriteString("File\tName\tKind\tNameLine\tNameColumn\tEndLine\tContextKind\tContextName\n")
	for _, file := range res.Files {
		for _, d := range file.Declarations {
			ctxKind, ctxName := contextColumns(d)
			buf.WriteString(fmt.Sprintf("%s\t%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
				escapeTSV(file.Path),
				escapeTSV(d.Name),
				d.Kind,
				d.NameLine,
				d.NameColumn,
				d.EndLine,
				ctxKind,
				escapeTSV(ctxName),
			))
		}
	}

	return buf.String(), nil
}
