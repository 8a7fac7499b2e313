package llpsi

import "strings"

// paradigm builds an override table from two space-separated rows in case
// order (nom acc gen dat abl voc), singular then plural. "-" marks a
// missing form.
func paradigm(singular, plural string) Overrides {
	ovr := make(Overrides, len(AllSlots))
	for n, row := range []string{singular, plural} {
		for i, form := range strings.Fields(row) {
			if form == "-" || i >= len(AllCases) {
				continue
			}
			ovr[Slot{Casus: AllCases[i], Numerus: Numerus(n)}] = form
		}
	}
	return ovr
}

// genders returns one table per gender.
func genders(m, f, n Overrides) [3]Overrides {
	return [3]Overrides{Masculine: m, Feminine: f, Neuter: n}
}

// same returns the same table for every gender.
func same(o Overrides) [3]Overrides {
	return genders(o, o, o)
}

var (
	egoForms = same(paradigm(
		"ego mē meī mihi mē -",
		"nōs nōs nostrum nōbīs nōbīs -"))
	tuForms = same(paradigm(
		"tū tē tuī tibi tē tū",
		"vōs vōs vestrum vōbīs vōbīs vōs"))
	nosForms = same(paradigm(
		"- - - - - -",
		"nōs nōs nostrum nōbīs nōbīs -"))
	vosForms = same(paradigm(
		"- - - - - -",
		"vōs vōs vestrum vōbīs vōbīs vōs"))
	seForms = same(paradigm(
		"- sē suī sibi sē -",
		"- sē suī sibi sē -"))
)

// pronounTable maps a pronoun lemma to its paradigm per gender.
var pronounTable = map[string][3]Overrides{
	"ego":  egoForms,
	"nōs":  nosForms,
	"tū":   tuForms,
	"vōs":  vosForms,
	"sē":   seForms,
	"sēsē": seForms,
	"is": genders(
		paradigm("is eum eius eī eō is", "iī eōs eōrum iīs iīs iī"),
		paradigm("ea eam eius eī eā ea", "eae eās eārum iīs iīs eae"),
		paradigm("id id eius eī eō id", "ea ea eōrum iīs iīs ea"),
	),
	"hic": genders(
		paradigm("hic hunc huius huic hōc hic", "hī hōs hōrum hīs hīs hī"),
		paradigm("haec hanc huius huic hāc haec", "hae hās hārum hīs hīs hae"),
		paradigm("hoc hoc huius huic hōc hoc", "haec haec hōrum hīs hīs haec"),
	),
	"ille": genders(
		paradigm("ille illum illīus illī illō ille", "illī illōs illōrum illīs illīs illī"),
		paradigm("illa illam illīus illī illā illa", "illae illās illārum illīs illīs illae"),
		paradigm("illud illud illīus illī illō illud", "illa illa illōrum illīs illīs illa"),
	),
	"iste": genders(
		paradigm("iste istum istīus istī istō iste", "istī istōs istōrum istīs istīs istī"),
		paradigm("ista istam istīus istī istā ista", "istae istās istārum istīs istīs istae"),
		paradigm("istud istud istīus istī istō istud", "ista ista istōrum istīs istīs ista"),
	),
	"ipse": genders(
		paradigm("ipse ipsum ipsīus ipsī ipsō ipse", "ipsī ipsōs ipsōrum ipsīs ipsīs ipsī"),
		paradigm("ipsa ipsam ipsīus ipsī ipsā ipsa", "ipsae ipsās ipsārum ipsīs ipsīs ipsae"),
		paradigm("ipsum ipsum ipsīus ipsī ipsō ipsum", "ipsa ipsa ipsōrum ipsīs ipsīs ipsa"),
	),
	"īdem": genders(
		paradigm("īdem eundem eiusdem eīdem eōdem īdem", "iīdem eōsdem eōrundem iīsdem iīsdem iīdem"),
		paradigm("eadem eandem eiusdem eīdem eādem eadem", "eaedem eāsdem eārundem iīsdem iīsdem eaedem"),
		paradigm("idem idem eiusdem eīdem eōdem idem", "eadem eadem eōrundem iīsdem iīsdem eadem"),
	),
	"quis": genders(
		paradigm("quis quem cuius cui quō quis", "quī quōs quōrum quibus quibus quī"),
		paradigm("quae quam cuius cui quā quae", "quae quās quārum quibus quibus quae"),
		paradigm("quid quid cuius cui quō quid", "quae quae quōrum quibus quibus quae"),
	),
	"quī": genders(
		paradigm("quī quem cuius cui quō -", "quī quōs quōrum quibus quibus -"),
		paradigm("quae quam cuius cui quā -", "quae quās quārum quibus quibus -"),
		paradigm("quod quod cuius cui quō -", "quae quae quōrum quibus quibus -"),
	),
	"aliquis": genders(
		paradigm("aliquis aliquem alicuius alicui aliquō aliquis", "aliquī aliquōs aliquōrum aliquibus aliquibus aliquī"),
		paradigm("aliquis aliquem alicuius alicui aliquō aliquis", "aliquae aliquās aliquārum aliquibus aliquibus aliquae"),
		paradigm("aliquid aliquid alicuius alicui aliquō aliquid", "aliquae aliquae aliquōrum aliquibus aliquibus aliquae"),
	),
	"aliquī": genders(
		paradigm("aliquī aliquem alicuius alicui aliquō aliquī", "aliquī aliquōs aliquōrum aliquibus aliquibus aliquī"),
		paradigm("aliqua aliquam alicuius alicui aliquā aliqua", "aliquae aliquās aliquārum aliquibus aliquibus aliquae"),
		paradigm("aliquod aliquod alicuius alicui aliquō aliquod", "aliqua aliqua aliquōrum aliquibus aliquibus aliqua"),
	),
	"nēmō": same(paradigm(
		"nēmō nēminem nēminis nēminī nēmine nēmō",
		"- - - - - -")),
	"quisque": genders(
		paradigm("quisque quemque cuiusque cuique quōque quisque", "quīque quōsque quōrumque quibusque quibusque quīque"),
		paradigm("quaeque quamque cuiusque cuique quāque quaeque", "quaeque quāsque quārumque quibusque quibusque quaeque"),
		paradigm("quodque quodque cuiusque cuique quōque quodque", "quaeque quaeque quōrumque quibusque quibusque quaeque"),
	),
	"quisnam": func() [3]Overrides {
		mf := paradigm("quisnam quemnam cuiusnam cuinam quōnam quisnam", "quīnam quōsnam quōrumnam quibusnam quibusnam quīnam")
		return genders(mf, mf,
			paradigm("quidnam quidnam cuiusnam cuinam quōnam quidnam", "quaenam quaenam quōrumnam quibusnam quibusnam quaenam"))
	}(),
	"quisquam": genders(
		paradigm("quisquam quemquam cuiusquam cuiquam quōquam quisquam", "quīquam quōsquam quōrumquam quibusquam quibusquam quīquam"),
		paradigm("quaequam quamquam cuiusquam cuiquam quāquam quaequam", "quaequam quāsquam quārumquam quibusquam quibusquam quaequam"),
		paradigm("quidquam quidquam cuiusquam cuiquam quōquam quidquam", "quaequam quaequam quōrumquam quibusquam quibusquam quaequam"),
	),
	"quīdam": genders(
		paradigm("quīdam quendam cuiusdam cuidam quōdam quīdam", "quīdam quōsdam quōrundam quibusdam quibusdam quīdam"),
		paradigm("quaedam quamdam cuiusdam cuidam quādam quaedam", "quaedam quāsdam quārundam quibusdam quibusdam quaedam"),
		paradigm("quiddam quiddam cuiusdam cuidam quōdam quiddam", "quaedam quaedam quōrundam quibusdam quibusdam quaedam"),
	),
}
