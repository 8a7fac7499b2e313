package llpsi

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyStemRule(t *testing.T) {
	tests := []struct {
		nominative   string
		construction string
		rules        []StemRule
		want         string
	}{
		{"puella", "-ae", aRulesSingular, "puell"},
		{"ager", "-grī", oRulesSingular, "agr"},
		{"liber", "-brī", oRulesSingular, "libr"},
		{"puer", "-erī", oRulesSingular, "puer"},
		{"dominus", "-ī", oRulesSingular, "domin"},
		{"nōmen", "-inis", consRulesSingular, "nōmin"},
		{"homō", "-inis", consRulesSingular, "homin"},
		{"leō", "-ōnis", consRulesSingular, "leōn"},
		{"caput", "-itis", consRulesSingular, "capit"},
		{"pater", "-tris", consRulesSingular, "patr"},
		{"tempus", "-oris", consRulesSingular, "tempor"},
		{"mōs", "-ōris", consRulesSingular, "mōr"},
		{"melior", "-ōris", consRulesSingular, "meliōr"},
		{"animal", "-ālis", iPureRulesSingular, "animāl"},
		{"mare", "-is", iPureRulesSingular, "mar"},
		{"urbs", "-bis", iMixedRulesSingular, "urb"},
		{"nox", "-ctis", iMixedRulesSingular, "noct"},
		{"mōns", "-ontis", iMixedRulesSingular, "mont"},
		{"pars", "-rtis", iMixedRulesSingular, "part"},
		{"līberī", "-ōrum", oRulesPlural, "līber"},
		{"pulcher", "-chrum", usAUmRules, "pulchr"},
	}
	for _, tt := range tests {
		got, err := ApplyStemRule(tt.nominative, tt.construction, tt.rules)
		require.NoError(t, err, "%s, %s", tt.nominative, tt.construction)
		assert.Equal(t, tt.want, got, "%s, %s", tt.nominative, tt.construction)
	}
}

func TestApplyStemRuleNoMatch(t *testing.T) {
	_, err := ApplyStemRule("rosa", "-ōris", consRulesSingular)
	var se *StemError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "rosa", se.Nominative)
	assert.ErrorIs(t, err, ErrDataIntegrity)
}

func TestGenericRuleWarns(t *testing.T) {
	var buf bytes.Buffer
	saved := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = saved })

	got, err := ApplyStemRule("nihil", "-ī", oRulesSingular)
	require.NoError(t, err)
	assert.Equal(t, "nihil", got)
	assert.Contains(t, buf.String(), "generic stem rule")
	assert.Contains(t, buf.String(), `"nominative":"nihil"`)
}

func TestRuleTablesHaveNoShadowedEndings(t *testing.T) {
	for name, rules := range ruleTables {
		rule, i, j, found := shadowedEnding(rules)
		assert.False(t, found, "%s: rule %d ending %d shadows ending %d", name, rule, i, j)
	}
}

func TestShadowedEnding(t *testing.T) {
	rules := []StemRule{{"-is", []EndingRule{{"s", ""}, {"is", ""}}}}
	rule, i, j, found := shadowedEnding(rules)
	assert.True(t, found)
	assert.Equal(t, []int{0, 0, 1}, []int{rule, i, j})

	rules = []StemRule{{"-is", nil}, {"-is", nil}}
	rule, _, _, found = shadowedEnding(rules)
	assert.True(t, found)
	assert.Equal(t, 1, rule)
}
