package laverb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func conjugate(t *testing.T, tmpl string) *Paradigm {
	t.Helper()
	args, err := ParseTemplate(tmpl)
	require.NoError(t, err, "ParseTemplate(%q)", tmpl)
	p, err := MakeData(args)
	require.NoError(t, err, "MakeData(%q)", tmpl)
	return p
}

func TestParseTemplate(t *testing.T) {
	args, err := ParseTemplate("{{la-conj|irreg|sum|prefix=necesse }}")
	require.NoError(t, err)
	assert.Equal(t, "irreg", args.Positional(1))
	assert.Equal(t, "sum", args.Positional(2))
	assert.Equal(t, "necesse ", args["prefix"])

	for _, bad := range []string{"", "la-conj|1|amō", "{{foo|1|amō}}", "{{la-conj}}"} {
		_, err := ParseTemplate(bad)
		assert.Error(t, err, "ParseTemplate(%q)", bad)
	}
}

func TestRegularConjugations(t *testing.T) {
	tests := []struct {
		tmpl string
		key  string
		want string
	}{
		{"{{la-conj|1+|amō}}", "1s_pres_actv_indc", "amō"},
		{"{{la-conj|1+|amō}}", "3p_impf_actv_indc", "amābant"},
		{"{{la-conj|1+|amō}}", "3s_perf_actv_indc", "amāvit"},
		{"{{la-conj|1+|amō}}", "1s_perf_pasv_indc", "amātus sum"},
		{"{{la-conj|1+|amō}}", "pres_actv_inf", "amāre"},
		{"{{la-conj|2|habeō|habu|habit}}", "3s_pres_actv_indc", "habet"},
		{"{{la-conj|2|habeō|habu|habit}}", "1s_futr_actv_indc", "habēbō"},
		{"{{la-conj|2|habeō|habu|habit}}", "3p_plup_actv_indc", "habuerant"},
		{"{{la-conj|2|videō|vīd|vīs}}", "3s_impf_actv_subj", "vidēret"},
		{"{{la-conj|3|dūcō|dūx|duct}}", "3p_pres_actv_indc", "dūcunt"},
		{"{{la-conj|3|dūcō|dūx|duct}}", "3s_futr_actv_indc", "dūcet"},
		{"{{la-conj|3|dūcō|dūx|duct}}", "3s_pres_pasv_indc", "dūcitur"},
		{"{{la-conj|3|capiō|cēp|capt}}", "3p_pres_actv_indc", "capiunt"},
		{"{{la-conj|3|capiō|cēp|capt}}", "pres_pasv_inf", "capī"},
		{"{{la-conj|4+|audiō}}", "3p_pres_actv_indc", "audiunt"},
		{"{{la-conj|4+|audiō}}", "3s_perf_actv_indc", "audīvit"},
		{"{{la-conj|4+|audiō}}", "sup_acc", "audītum"},
	}
	for _, tt := range tests {
		p := conjugate(t, tt.tmpl)
		assert.Equal(t, tt.want, p.Form(tt.key), "%s %s", tt.tmpl, tt.key)
	}
}

func TestDeponent(t *testing.T) {
	p := conjugate(t, "{{la-conj|1+.depon|hortor}}")
	assert.Equal(t, "hortātur", p.Form("3s_pres_pasv_indc"))
	assert.Equal(t, "hortārī", p.Form("pres_pasv_inf"))
	assert.Equal(t, "hortātus est", p.Form("3s_perf_pasv_indc"))
	assert.Empty(t, p.Form("3s_pres_actv_indc"))
	assert.Equal(t, "hortāns", p.Form("pres_actv_ptc"))
	assert.True(t, p.Info.Has(SubDeponent))

	p = conjugate(t, "{{la-conj|3.depon|loquor|locūt}}")
	assert.Equal(t, "loquitur", p.Form("3s_pres_pasv_indc"))
	assert.Equal(t, "loquī", p.Form("pres_pasv_inf"))
	assert.Equal(t, "locūtī sunt", p.Form("3p_perf_pasv_indc"))
}

func TestSemiDeponent(t *testing.T) {
	p := conjugate(t, "{{la-conj|2.semidepon|audeō|aus}}")
	assert.Equal(t, "audet", p.Form("3s_pres_actv_indc"))
	assert.Equal(t, "ausus est", p.Form("3s_perf_pasv_indc"))
	assert.Empty(t, p.Form("3s_perf_actv_indc"))
	assert.Empty(t, p.Form("3s_pres_pasv_indc"))
}

func TestIrregular(t *testing.T) {
	tests := []struct {
		tmpl string
		key  string
		want string
	}{
		{"{{la-conj|irreg|sum}}", "3s_pres_actv_indc", "est"},
		{"{{la-conj|irreg|sum}}", "3s_perf_actv_indc", "fuit"},
		{"{{la-conj|irreg|sum}}", "futr_actv_inf", "futūrum esse"},
		{"{{la-conj|irreg|possum}}", "3s_pres_actv_indc", "potest"},
		{"{{la-conj|irreg|possum}}", "3p_perf_actv_indc", "potuērunt"},
		{"{{la-conj|irreg|volō}}", "3s_pres_actv_indc", "vult"},
		{"{{la-conj|irreg|volō}}", "pres_actv_inf", "velle"},
		{"{{la-conj|irreg|eō}}", "3p_pres_actv_indc", "eunt"},
		{"{{la-conj|irreg|eō}}", "3s_pres_pasv_indc", "ītur"},
		{"{{la-conj|irreg|abeō}}", "3s_pres_actv_indc", "abit"},
		{"{{la-conj|irreg|sum|prefix=necesse }}", "3s_futr_actv_indc", "necesse erit"},
	}
	for _, tt := range tests {
		p := conjugate(t, tt.tmpl)
		assert.Equal(t, tt.want, p.Form(tt.key), "%s %s", tt.tmpl, tt.key)
	}

	_, err := MakeData(Args{"1": "irreg", "2": "ferō"})
	assert.ErrorIs(t, err, ErrBadTemplate)
}

func TestImpersonalAndOverrides(t *testing.T) {
	p := conjugate(t, "{{la-conj|2.impers|oporteō|oportu|-}}")
	assert.Equal(t, "oportet", p.Form("3s_pres_actv_indc"))
	assert.Empty(t, p.Form("1s_pres_actv_indc"))

	p = conjugate(t, "{{la-conj|3|dūcō|dūx|duct|2s_pres_actv_impr=dūc}}")
	assert.Equal(t, []string{"dūc"}, p.Forms["2s_pres_actv_impr"])
}

func TestBadLemma(t *testing.T) {
	_, err := MakeData(Args{"1": "2", "2": "amō"})
	assert.ErrorIs(t, err, ErrBadTemplate)
	_, err = MakeData(Args{"1": "9", "2": "amō"})
	assert.ErrorIs(t, err, ErrBadTemplate)
}
