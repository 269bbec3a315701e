package llvm

import (
	"embed"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/Manu343726/tdesc/pkg/isa"
)

//go:embed templates
var Templates embed.FS

// Generates LLVM tablegen register info files from a target register
// description. The emitted tables are the downstream contract of the
// description engine: register defs with their display names and indices,
// plus one RegisterClass def per registered class.
type Generator struct {
	template *template.Template
}

func NewGenerator() (*Generator, error) {
	funcs := template.FuncMap{
		"ToUpper": strings.ToUpper,
		"ToLower": strings.ToLower,
		"String":  fmt.Sprint,
		"Join": func(separator string, items []string) string {
			return strings.Join(items, separator)
		},
	}

	t, err := template.New("RegisterInfo.td").Funcs(funcs).
		ParseFS(Templates, "templates/*.td")

	if err != nil {
		return nil, err
	}

	return &Generator{
		template: t,
	}, nil
}

func (g *Generator) GenerateTo(writer io.Writer, description *isa.TargetDescription) error {
	return g.template.Execute(writer, description)
}

func (g *Generator) Generate(outputFile string, description *isa.TargetDescription) error {
	f, err := os.Create(outputFile)

	if err != nil {
		return err
	}

	defer f.Close()

	return g.GenerateTo(f, description)
}
