package llpsi

// Stem rule tables. Order matters inside every table: the first matching
// construction and the first matching nominative ending win, so the more
// specific ending always comes first and a catch-all "" comes last.

var aRulesSingular = []StemRule{
	{"-ae", []EndingRule{{"a", ""}}},
}

var aRulesPlural = []StemRule{
	{"-ārum", []EndingRule{{"ae", ""}}},
}

var oRulesSingular = []StemRule{
	{"-ī", []EndingRule{{"us", ""}, {"um", ""}, {"", ""}}},
	{"-erī", []EndingRule{{"er", "er"}}},
	{"-trī", []EndingRule{{"ter", "tr"}}},
	{"-brī", []EndingRule{{"ber", "br"}}},
	{"-grī", []EndingRule{{"ger", "gr"}}},
	{"-chrī", []EndingRule{{"cher", "chr"}}},
}

var oRulesPlural = []StemRule{
	{"-ōrum", []EndingRule{{"ī", ""}, {"a", ""}}},
}

var uRulesSingular = []StemRule{
	{"-ūs", []EndingRule{{"us", ""}, {"ū", ""}}},
}

var uRulesPlural = []StemRule{
	{"-uum", []EndingRule{{"ūs", ""}, {"ua", ""}}},
}

var eRulesSingular = []StemRule{
	{"-ēī", []EndingRule{{"ēs", ""}}},
	{"-eī", []EndingRule{{"ēs", ""}}},
}

var eRulesPlural = []StemRule{
	{"-ērum", []EndingRule{{"ēs", ""}}},
}

var consRulesSingular = []StemRule{
	{"-ōris", []EndingRule{{"ior", "iōr"}, {"ius", "iōr"}, {"or", "ōr"}, {"ōs", "ōr"}}},
	{"-oris", []EndingRule{{"or", "or"}, {"us", "or"}, {"ur", "or"}}},
	{"-ōnis", []EndingRule{{"ō", "ōn"}}},
	{"-inis", []EndingRule{{"en", "in"}, {"ō", "in"}, {"is", "in"}}},
	{"-itis", []EndingRule{{"ut", "it"}, {"es", "it"}}},
	{"-ūris", []EndingRule{{"ūs", "ūr"}}},
	{"-tris", []EndingRule{{"ter", "tr"}}},
	{"-eris", []EndingRule{{"er", "er"}, {"us", "er"}}},
	{"-is", []EndingRule{{"is", ""}, {"", ""}}},
}

var consRulesPlural = []StemRule{
	{"-um", []EndingRule{{"ēs", ""}, {"a", ""}}},
}

var iPureRulesSingular = []StemRule{
	{"-ālis", []EndingRule{{"al", "āl"}}},
	{"-āris", []EndingRule{{"ar", "ār"}}},
	{"-cris", []EndingRule{{"cer", "cr"}}},
	{"-bris", []EndingRule{{"ber", "br"}}},
	{"-tris", []EndingRule{{"ter", "tr"}}},
	{"-is", []EndingRule{{"is", ""}, {"e", ""}}},
	{"-ns", []EndingRule{{"ēns", "ent"}}},
	{"-entis", []EndingRule{{"ēns", "ent"}}},
	{"-antis", []EndingRule{{"āns", "ant"}}},
	{"-ōcis", []EndingRule{{"ōx", "ōc"}}},
	{"-ācis", []EndingRule{{"āx", "āc"}}},
	{"-īcis", []EndingRule{{"īx", "īc"}}},
}

var iPureRulesPlural = []StemRule{
	{"-ium", []EndingRule{{"ēs", ""}, {"ia", ""}, {"a", ""}}},
}

var iMixedRulesSingular = []StemRule{
	{"-is", []EndingRule{{"is", ""}, {"ēs", ""}}},
	{"-antis", []EndingRule{{"āns", "ant"}}},
	{"-entis", []EndingRule{{"ēns", "ent"}}},
	{"-ontis", []EndingRule{{"ōns", "ont"}}},
	{"-rtis", []EndingRule{{"rs", "rt"}}},
	{"-tris", []EndingRule{{"ter", "tr"}}},
	{"-bis", []EndingRule{{"bs", "b"}}},
	{"-cis", []EndingRule{{"x", "c"}}},
	{"-ctis", []EndingRule{{"x", "ct"}}},
}

var iMixedRulesPlural = []StemRule{
	{"-ium", []EndingRule{{"ēs", ""}}},
}

// usAUmRules derive the stem of an -us/-a/-um adjective from its
// masculine nominative and neuter construction.
var usAUmRules = []StemRule{
	{"-um", []EndingRule{{"us", ""}}},
	{"-brum", []EndingRule{{"ber", "br"}}},
	{"-chrum", []EndingRule{{"cher", "chr"}}},
	{"-grum", []EndingRule{{"ger", "gr"}}},
	{"-trum", []EndingRule{{"ter", "tr"}}},
	{"-erum", []EndingRule{{"er", "er"}}},
}

// ruleTables names every table for diagnostics.
var ruleTables = map[string][]StemRule{
	"a singular":       aRulesSingular,
	"a plural":         aRulesPlural,
	"o singular":       oRulesSingular,
	"o plural":         oRulesPlural,
	"u singular":       uRulesSingular,
	"u plural":         uRulesPlural,
	"e singular":       eRulesSingular,
	"e plural":         eRulesPlural,
	"cons singular":    consRulesSingular,
	"cons plural":      consRulesPlural,
	"i-pure singular":  iPureRulesSingular,
	"i-pure plural":    iPureRulesPlural,
	"i-mixed singular": iMixedRulesSingular,
	"i-mixed plural":   iMixedRulesPlural,
	"us-a-um":          usAUmRules,
}
