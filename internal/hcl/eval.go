package hcl

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/joho/godotenv"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// newEvalContext builds the context query expressions are evaluated in.
func newEvalContext(environ []string, envFile string) (*hcl.EvalContext, error) {
	var overlay map[string]string
	if envFile != "" {
		var err error
		overlay, err = godotenv.Read(envFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file %s: %w", envFile, err)
		}
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envObject(environ, overlay),
		},
		Functions: map[string]function.Function{
			"upper":     stdlib.UpperFunc,
			"lower":     stdlib.LowerFunc,
			"trimspace": stdlib.TrimSpaceFunc,
			"format":    stdlib.FormatFunc,
		},
	}, nil
}

// envObject turns KEY=VALUE pairs into a cty object. Values from overlay win.
func envObject(environ []string, overlay map[string]string) cty.Value {
	vals := make(map[string]cty.Value, len(environ)+len(overlay))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vals[k] = cty.StringVal(v)
	}
	for k, v := range overlay {
		vals[k] = cty.StringVal(v)
	}

	if len(vals) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(vals)
}
