package builddir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalExpression(t *testing.T) {
	ctx := Context{
		CurrentFile: "/proj/src/main.c",
		ProjectRoot: "/proj",
	}

	tests := []struct {
		name string
		expr string
		want string
	}{
		{"string literal", `"/opt/build"`, "/opt/build"},
		{"root interpolation", `"${root}/build"`, "/proj/build"},
		{"dir variable", `dir`, "/proj/src"},
		{"conditional on root", `root != "" ? root : dir`, "/proj"},
		{"null is absent", `null`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvalExpression(tt.expr, ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvalExpressionEnv(t *testing.T) {
	t.Setenv("LAUNCH_EXPR_TEST", "/from/env")

	got, err := EvalExpression(`env.LAUNCH_EXPR_TEST`, Context{})
	require.NoError(t, err)
	assert.Equal(t, "/from/env", got)

	got, err = EvalExpression(`"${env.LAUNCH_EXPR_TEST}/bin"`, Context{})
	require.NoError(t, err)
	assert.Equal(t, "/from/env/bin", got)
}

func TestEvalExpressionErrors(t *testing.T) {
	_, err := EvalExpression(`((`, Context{})
	assert.Error(t, err)

	_, err = EvalExpression(`undefined_variable`, Context{})
	assert.Error(t, err)
}
