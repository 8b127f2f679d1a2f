package builddir

import (
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/grovetools/launch/errors"
)

// EvalExpression evaluates a computed build-directory expression against the
// current environment and returns the resulting path string. Expressions use
// HCL syntax with three variables in scope:
//
//	env  - map of environment variables
//	root - project root, or "" when unknown
//	dir  - current file's directory, or "" when no file is active
//
// Paths are built with template interpolation, e.g. "${root}/build" or
// "${env.HOME}/builds". A null result is treated as absent rather than an
// error.
func EvalExpression(src string, ctx Context) (string, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(src), "build_dir", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return "", errors.ExpressionInvalid(src, diags)
	}

	val, diags := expr.Value(evalContext(ctx))
	if diags.HasErrors() {
		return "", errors.ExpressionInvalid(src, diags)
	}
	if val.IsNull() {
		return "", nil
	}

	val, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", errors.ExpressionInvalid(src, err)
	}

	return val.AsString(), nil
}

// evalContext builds the HCL evaluation scope for an invocation.
func evalContext(ctx Context) *hcl.EvalContext {
	envVars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		if idx := strings.Index(kv, "="); idx > 0 {
			envVars[kv[:idx]] = cty.StringVal(kv[idx+1:])
		}
	}

	env := cty.MapValEmpty(cty.String)
	if len(envVars) > 0 {
		env = cty.MapVal(envVars)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env":  env,
			"root": cty.StringVal(ctx.ProjectRoot),
			"dir":  cty.StringVal(ctx.fileDir()),
		},
	}
}
