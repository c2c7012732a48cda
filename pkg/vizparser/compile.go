package vizparser

import "github.com/vvsql/vvsql/pkg/vizmodel"

// Compile parses vizText and lifts it into validated VizSpec values in one
// step, the composition most callers (pkg/split's downstream and the CLI's
// parse/validate commands) actually want.
func Compile(vizText string) ([]*vizmodel.VizSpec, error) {
	prog, err := Parse(vizText)
	if err != nil {
		return nil, err
	}

	specs, err := BuildSpecs(prog)
	if err != nil {
		return nil, err
	}

	for _, spec := range specs {
		if err := vizmodel.Validate(spec); err != nil {
			return nil, err
		}
	}

	return specs, nil
}
