package config

// DefaultSubjectCodes is the full set of subject pages published in the class
// schedule. Used when CATALOG_SUBJECT_CODES is not set.
var DefaultSubjectCodes = []string{
	"ACCT", "AFRS", "ASLD", "AIS", "AMST", "ANTH", "ARAB", "ART", "AH", "AAAS",
	"ASAM", "AxST", "ASTR", "AT", "BIOL", "BME", "BLAW", "CBA", "KHMR", "CHzE",
	"CHEM", "CHLS", "CDFS", "CHIN", "CzE", "CLSC", "COMM", "CWL", "CECS", "XYZ",
	"CEM", "CAFF", "COUN", "CRJU", "XENR", "DANC", "DESN", "DPT", "ERTH", "ECON",
	"EDLD", "EDCI", "EDEC", "EDEL", "EDSE", "EDSS", "EDSP", "EDAD", "EDzP",
	"ETEC", "EzE", "EMER", "ENGR", "EzT", "ENGL", "ES", "ENV", "ESzP", "EESJ",
	"FMD", "FIL", "FEA", "FIN", "FSCI", "FREN", "GEOG", "GERM", "GERN", "GBA",
	"GK", "HCA", "HzSC", "HEBW", "HIND", "HIST", "HM", "HDEV", "HRM", "IzS",
	"INTL", "IxST", "ITAL", "JAPN", "JOUR", "KIN", "KOR", "LAT", "CxLA", "LxST",
	"LING", "MGMT", "MKTG", "MATH", "MTED", "MAE", "MzS", "MUS", "NSCI", "NRSG",
	"NUTR", "OSI", "PHIL", "PHSC", "PHYS", "POSC", "PSY", "PPA", "REC", "RxST",
	"RGR", "RUSS", "SCED", "SzW", "SOC", "SPAN", "SLP", "STAT", "SDHE", "SRL",
	"SxI", "SCM", "THEA", "TRST", "UNIV", "UHP", "UDCP", "VIET", "WGSS",
}
