package table_test

import (
	"strings"
	"testing"

	"github.com/eriklarko/truth-tabler/src/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaTeXNot(t *testing.T) {
	built := buildTable(t, "(- A)", table.Options{ShowSteps: true})

	expected := strings.Join([]string{
		`\begin{tabular}{|c|c|}`,
		`\hline`,
		`A & \neg A \\`,
		`\hline`,
		`F & T \\`,
		`\hline`,
		`T & F \\`,
		`\hline`,
		`\end{tabular}`,
	}, "\n")
	assert.Equal(t, expected, built.LaTeX())
}

func TestLaTeXWithoutSteps(t *testing.T) {
	built := buildTable(t, "(A => B)", table.Options{ShowSteps: false})

	expected := strings.Join([]string{
		`\begin{tabular}{|c|c|c|}`,
		`\hline`,
		`A & B & (A \rightarrow B) \\`,
		`\hline`,
		`F & F & T \\`,
		`\hline`,
		`F & T & T \\`,
		`\hline`,
		`T & F & F \\`,
		`\hline`,
		`T & T & T \\`,
		`\hline`,
		`\end{tabular}`,
	}, "\n")
	assert.Equal(t, expected, built.LaTeX())
}

func TestLaTeXHeaderShowsEverySubExpression(t *testing.T) {
	built := buildTable(t, "((A * B) + C)", table.Options{ShowSteps: true})
	rendered := built.LaTeX()

	header := strings.Split(rendered, "\n")[2]
	assert.Equal(t, `A & B & (A \wedge B) & C & ((A \wedge B) \vee C) \\`, header)

	require.True(t, strings.HasPrefix(rendered, `\begin{tabular}{|c|c|c|c|c|}`))
	require.True(t, strings.HasSuffix(rendered, `\end{tabular}`))
}
