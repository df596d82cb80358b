package soc

// subGroupBaseKeywords holds baseline descriptive keywords per sub-group
// key, used to enrich templates whose authored keyword lists are thin or
// absent. Entries are unioned with the template's own keywords at seed time;
// duplicates are removed later in the generation pass.
var subGroupBaseKeywords = map[string][]string{
	"11-10": {"leadership", "planning", "decision making", "budgeting"},
	"11-20": {"campaigns", "branding", "market research"},
	"11-30": {"payroll", "compliance", "staffing"},
	"11-90": {"management", "coordination", "oversight"},
	"13-10": {"project management", "procurement", "compliance", "reporting"},
	"13-20": {"financial analysis", "budgeting", "forecasting"},
	"15-10": {"troubleshooting", "technical support", "networks"},
	"15-12": {"programming", "databases", "cloud", "debugging"},
	"15-13": {"programming", "architecture", "testing", "agile"},
	"15-20": {"probability", "optimization", "quantitative analysis"},
	"17-10": {"blueprints", "site planning", "building codes"},
	"17-20": {"mathematics", "modeling", "specifications", "testing"},
	"17-30": {"cad", "technical drawings", "measurements"},
	"19-10": {"experiments", "data collection", "publications"},
	"19-20": {"experiments", "instrumentation", "analysis"},
	"19-30": {"interviews", "statistics", "fieldwork"},
	"19-40": {"samples", "quality control", "instruments"},
	"21-10": {"case management", "crisis intervention", "referrals"},
	"21-20": {"ministry", "counseling", "community programs"},
	"23-10": {"contracts", "trials", "legal advice", "briefs"},
	"23-20": {"case files", "filings", "legal support"},
	"25-10": {"lectures", "scholarship", "advising"},
	"25-20": {"lesson planning", "assessment", "student development"},
	"25-30": {"instruction", "training", "learning support"},
	"25-40": {"cataloging", "reference", "collections"},
	"27-10": {"illustration", "layout", "creative direction"},
	"27-20": {"performance", "rehearsal", "audiences"},
	"27-30": {"reporting", "editing", "storytelling", "content"},
	"27-40": {"cameras", "editing", "recording", "equipment"},
	"29-10": {"treatment", "medicine", "patients", "examinations"},
	"29-20": {"lab tests", "medical records", "procedures"},
	"31-10": {"daily living", "vital signs", "mobility assistance"},
	"33-10": {"training", "incident command", "scheduling"},
	"33-20": {"hazards", "emergency response", "equipment"},
	"33-30": {"investigations", "reports", "community policing"},
	"33-90": {"surveillance", "access control", "patrols"},
	"35-10": {"inventory", "staff scheduling", "food safety"},
	"35-20": {"recipes", "menu", "food safety"},
	"35-30": {"orders", "tables", "guests"},
	"37-20": {"sanitation", "custodial", "building care"},
	"37-30": {"mowing", "pruning", "irrigation"},
	"39-20": {"animals", "feeding", "exercise"},
	"39-50": {"hair", "skin care", "clients"},
	"41-20": {"transactions", "merchandise", "registers"},
	"41-30": {"quotas", "prospecting", "client relationships"},
	"41-40": {"accounts", "product knowledge", "contracts"},
	"43-40": {"spreadsheets", "invoices", "record keeping"},
	"43-60": {"phones", "calendars", "documents"},
	"45-20": {"crops", "livestock", "equipment operation"},
	"47-20": {"tools", "blueprints", "safety", "materials"},
	"49-20": {"diagnostics", "wiring", "calibration"},
	"49-30": {"engines", "parts", "inspections"},
	"51-40": {"lathes", "precision", "tolerances"},
	"53-30": {"routes", "vehicle inspection", "logs"},
	"53-70": {"forklifts", "pallets", "shipping"},
}
