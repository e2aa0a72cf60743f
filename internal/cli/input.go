package cli

import (
	"github.com/spf13/cobra"

	flowio "github.com/matzehuels/flowbox/pkg/io"
)

// inputFlags are the mutually exclusive input file flags shared by render
// and view.
type inputFlags struct {
	yaml string
	json string
	toml string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.yaml, "yaml", "y", "", "path to a YAML workflow definition")
	cmd.Flags().StringVarP(&f.json, "json", "j", "", "path to a JSON workflow definition")
	cmd.Flags().StringVarP(&f.toml, "toml", "t", "", "path to a TOML workflow definition")
	cmd.MarkFlagsMutuallyExclusive("yaml", "json", "toml")
	cmd.MarkFlagsOneRequired("yaml", "json", "toml")
	_ = cmd.MarkFlagFilename("yaml", "yaml", "yml")
	_ = cmd.MarkFlagFilename("json", "json")
	_ = cmd.MarkFlagFilename("toml", "toml")
}

// resolve returns the selected path and its format.
func (f *inputFlags) resolve() (string, flowio.Format) {
	switch {
	case f.yaml != "":
		return f.yaml, flowio.FormatYAML
	case f.toml != "":
		return f.toml, flowio.FormatTOML
	default:
		return f.json, flowio.FormatJSON
	}
}

// read loads the selected input file.
func (f *inputFlags) read() ([]byte, flowio.Format, error) {
	path, format := f.resolve()
	data, err := flowio.ReadFile(path)
	return data, format, err
}
