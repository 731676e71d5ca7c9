package grammar

import (
	"testing"

	"github.com/juga0/useridaddr/component"
	"github.com/stretchr/testify/require"
)

// TestGoldenScenarios transcribes spec §8's concrete scenario table.
func TestGoldenScenarios(t *testing.T) {
	tests := []struct {
		name  string
		start func(string, ...Option) ([]component.Component, error)
		input string
		want  []component.Component
	}{
		{
			name:  "name-addr with bare atom display name",
			start: NameAddr,
			input: `Alice <alice@example.org>`,
			want: []component.Component{
				component.NewText("Alice"),
				component.NewWS(),
				component.NewAddress("alice@example.org"),
			},
		},
		{
			name:  "name-addr with quoted display name containing literal parens",
			start: NameAddr,
			input: `"Alice (work)" <alice@example.org>`,
			want: []component.Component{
				component.NewText("Alice (work)"),
				component.NewWS(),
				component.NewAddress("alice@example.org"),
			},
		},
		{
			name:  "name-addr with leading whitespace and no display name",
			start: NameAddr,
			input: ` <alice@example.org>`,
			want: []component.Component{
				component.NewWS(),
				component.NewAddress("alice@example.org"),
			},
		},
		{
			name:  "addr-spec with comments on both sides of the boundary",
			start: AddrSpec,
			input: `a.b (x) @ (y) example.org`,
			want: []component.Component{
				component.NewComment("x"),
				component.NewComment("y"),
				component.NewAddress("a.b@example.org"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start(tt.input)
			require.NoError(t, err)
			require.True(t, component.Equal(got, tt.want), "got %s, want %s", component.String(got), component.String(tt.want))
		})
	}
}

func TestGoldenScenarioNonEmailURIRecovery(t *testing.T) {
	got, err := NameAddrOrOther(`Alice <ssh://host.example>`)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, component.NewText("Alice"), got[0])
	require.Equal(t, component.NewWS(), got[1])
	require.Equal(t, component.InvalidAddress, got[2].Kind())
	require.Equal(t, "ssh://host.example", string(got[2].Raw()))
}

func TestGoldenScenarioEscapedDisplayNameQuoting(t *testing.T) {
	got, err := EscapedDisplayName(`Alice, the Great`)
	require.NoError(t, err)
	require.Equal(t, `"Alice, the Great"`, got)
}
