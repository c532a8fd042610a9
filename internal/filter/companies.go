package filter

// Established med-device and medtech employers. Matched as a folded
// substring of the company name, so "Stryker Corp" still counts.
var knownCompanies = []string{
	//Big medtech / diversified
	"stryker", "medtronic", "johnson & johnson", "j&j", "johnson johnson",
	"abbott", "baxter", "becton dickinson", "bd ", "boston scientific",
	"ge healthcare", "siemens healthineers", "philips", "cardinal health",
	"edwards lifesciences", "danaher", "hologic",
	//Orthopedics / spine / trauma
	"arthrex", "zimmer biomet", "zimmer", "smith+nephew", "smith & nephew",
	"depuy", "synthes", "depuy synthes", "nuvasive", "globus medical",
	"alphatec", "orthofix", "wright medical", "exactech", "anika",
	"conformis", "medacta", "paragon 28", "treace",
	//Surgical / robotics
	"intuitive", "intuitive surgical", "mako", "mazor",
	"think surgical", "vicarious surgical",
	//Cardiovascular / interventional
	"edwards", "abiomed", "shockwave", "penumbra", "silk road medical",
	"teleflex", "merit medical", "cordis", "spectranetics", "aortica",
	"atricure", "cardiovascular systems", "inari medical",
	//Endoscopy / visualization
	"ambu", "karl storz", "olympus", "conmed", "artivion",
	"applied medical", "richard wolf",
	//Neuro / cranial
	"natus medical", "integra lifesciences", "integra", "nevro",
	"axonics", "nuvectra", "bioventus",
	//Wound care / tissue
	"acelity", "kinetic concepts", "solventum", "3m health",
	"mimedx", "organogenesis", "polynovo", "derma sciences",
	//Dental / ENT
	"align technology", "dentsply sirona", "dentsply", "envista",
	"straumann", "henry schein", "patterson",
	//Diabetes / monitoring
	"dexcom", "insulet", "tandem diabetes", "senseonics",
	"medela", "masimo",
	//Diagnostics / imaging
	"exact sciences", "caris life sciences",
	"guardant health", "natera", "veracyte",
	//General med / surgical supply
	"medline", "owens & minor", "molnlycke", "halyard",
	"icad", "haemonetics",
	//Ophthalmology
	"alcon", "bausch", "cooper surgical", "coopersurgical",
	"johnson vision", "amo ",
	//Contract / specialized
	"tela bio", "cirtec medical", "integer holdings",
	"cantel medical", "steris", "getinge",
	//Other notable
	"resmed", "hill-rom", "hillrom", "livanova", "bioatla",
	"procept biorobotics", "transmedics", "inspire medical",
	"acutus medical", "zynex medical", "surmodics", "repligen",
}
