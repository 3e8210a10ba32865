package plugin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semterms/ontology/memory"
)

func newBindingPlugin(t *testing.T, validateLabels bool) *BindingPlugin {
	t.Helper()
	adapter := memory.New()
	adapter.AddTerm("GO:0008150", "biological_process")
	base := newTestBase(t, adapter, map[string]string{"GO": "stub:go"})
	return NewBindingPlugin(base, validateLabels)
}

func TestBindingLabelAgrees(t *testing.T) {
	p := newBindingPlugin(t, true)

	issues := p.CheckBinding(context.Background(), "GO:0008150", "Biological Process")
	assert.Empty(t, issues)
}

func TestBindingLabelMismatchIsError(t *testing.T) {
	p := newBindingPlugin(t, true)

	issues := p.CheckBinding(context.Background(), "GO:0008150", "cellular component")
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Equal(t, "GO:0008150", issues[0].Value)
}

func TestBindingLabelCheckDisabled(t *testing.T) {
	p := newBindingPlugin(t, false)
	assert.False(t, p.ValidatesLabels())

	issues := p.CheckBinding(context.Background(), "GO:0008150", "cellular component")
	assert.Empty(t, issues)
}

func TestBindingAbsentTermIsWarning(t *testing.T) {
	p := newBindingPlugin(t, true)

	issues := p.CheckBinding(context.Background(), "GO:9999999", "whatever")
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
}

func TestBindingInvalidCURIE(t *testing.T) {
	p := newBindingPlugin(t, true)

	issues := p.CheckBinding(context.Background(), "not-a-curie", "whatever")
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
}

func TestBindingEmptyClaimedLabelSkipsComparison(t *testing.T) {
	p := newBindingPlugin(t, true)

	issues := p.CheckBinding(context.Background(), "GO:0008150", "")
	assert.Empty(t, issues)
}
