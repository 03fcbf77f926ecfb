package chatbot

// Static rule tables for the assistant. All matching is case-insensitive
// substring containment, so every keyword below is lowercase.

const contactBlock = "Email: carlos@cherrera.dev\n" +
	"LinkedIn: linkedin.com/in/carlos-herrera-dev\n" +
	"GitHub: github.com/cherrera-dev"

var intents = []Intent{
	{
		ID:       "greeting",
		Name:     "Greeting",
		Keywords: []string{"hello", "hey", "greetings", "good morning", "good afternoon"},
		Response: "Hey there! I'm Carlos' portfolio assistant. Ask me about his skills, experience, projects, or how to get in touch.",
		Priority: 1,
		Category: "about",
	},
	{
		ID:       "about-me",
		Name:     "About Carlos",
		Keywords: []string{"who are you", "about", "yourself", "background", "bio", "tell me more"},
		Response: "Carlos Herrera is a full-stack developer based in Austin, TX. He builds data-heavy web applications end to end, from database design through API and UI. Outside of work he contributes to open source and mentors junior developers.",
		Priority: 1,
		Category: "about",
	},
	{
		ID:       "skills",
		Name:     "Skills",
		Keywords: []string{"skill", "technolog", "tech stack", "stack", "languages", "frameworks", "tools"},
		Response: "Carlos works mainly with TypeScript, React, Node.js, Go, and PostgreSQL. He's also comfortable with Docker, AWS, Redis, and CI/CD pipelines. Ask about a specific technology if you want details.",
		Priority: 2,
		Category: "skills",
	},
	{
		ID:       "projects",
		Name:     "Projects",
		Keywords: []string{"project", "portfolio", "showcase", "built", "side project"},
		Response: "Carlos' showcase includes the CMH Data Management System, StockTrack Inventory, the RouteWise Logistics Planner, and the Lumen Analytics Dashboard. Name any of them and I'll give you the details.",
		Priority: 2,
		Category: "projects",
	},
	{
		ID:       "experience",
		Name:     "Experience",
		Keywords: []string{"experience", "career", "job history", "worked", "company", "employer"},
		Response: "Carlos has 8+ years of professional experience: currently a senior engineer at Meridian Software, previously at DataBridge Labs and a logistics startup. He's led teams of up to five engineers and owned systems end to end.",
		Priority: 2,
		Category: "experience",
	},
	{
		ID:       "contact",
		Name:     "Contact",
		Keywords: []string{"contact", "email", "reach", "get in touch", "linkedin", "phone"},
		Response: "The best way to reach Carlos:\n\n" + contactBlock + "\n\nHe usually replies within a day.",
		Priority: 3,
		Category: "contact",
	},
	{
		ID:       "cv",
		Name:     "CV",
		Keywords: []string{"cv", "resume", "curriculum", "download"},
		Response: "You can download Carlos' CV from the site header, or email him at carlos@cherrera.dev for the latest PDF version.",
		Priority: 3,
		Category: "cv",
	},
}

var documentSections = []DocumentSection{
	{
		ID:    "bio",
		Title: "About Carlos",
		Content: "Carlos Herrera is a full-stack software developer with a focus on data-intensive web applications. " +
			"He started out building internal tooling for a logistics company and has since shipped production systems " +
			"for healthcare, retail, and analytics clients. He cares about readable code, boring reliable infrastructure, " +
			"and interfaces that don't make users think. When he's not coding he's usually climbing or tinkering with home automation.",
		Keywords: []string{"bio", "about", "carlos", "developer", "full stack", "background"},
	},
	{
		ID:    "skills",
		Title: "Technical Skills",
		Content: "Frontend: React, TypeScript, Next.js, Tailwind CSS, and a long history with plain JavaScript and CSS. " +
			"Backend: Node.js, Go, Express, REST API design, WebSockets. Data: PostgreSQL, MongoDB, Redis, and schema design " +
			"for reporting workloads. Infrastructure: Docker, AWS (ECS, S3, RDS), GitHub Actions, and infrastructure as code with Terraform.",
		Keywords: []string{"skills", "react", "typescript", "node", "go", "postgresql", "docker", "aws", "tech stack"},
	},
	{
		ID:    "experience",
		Title: "Work Experience",
		Content: "Senior Software Engineer at Meridian Software (2021-present): leads the platform team building a multi-tenant " +
			"analytics product. Software Engineer at DataBridge Labs (2018-2021): built ETL pipelines and customer-facing dashboards. " +
			"Junior Developer at HaulLine Logistics (2016-2018): internal fleet tracking and dispatch tools. " +
			"Across all three roles he has owned features from database schema to production deploy.",
		Keywords: []string{"experience", "work history", "meridian", "databridge", "senior engineer", "career"},
	},
	{
		ID:    "education",
		Title: "Education & Certifications",
		Content: "BSc in Computer Science from the University of Texas at San Antonio, graduated 2016. " +
			"AWS Certified Solutions Architect Associate. Regular attendee and occasional speaker at local Go and React meetups.",
		Keywords: []string{"education", "degree", "university", "certification", "computer science"},
	},
	{
		ID:    "services",
		Title: "Freelance Services",
		Content: "Carlos takes on a small number of freelance engagements per year: full-stack product builds, " +
			"API design and integration work, performance audits of existing React or Node applications, and " +
			"technical advising for early-stage teams. Engagements start with a free 30-minute scoping call.",
		Keywords: []string{"services", "freelance", "consulting", "hire", "audit", "advising"},
	},
}

// projectKeywords is matched first-hit-wins against chat input, so order
// matters: more specific triggers go before generic ones.
var projectKeywords = []ProjectKeywordEntry{
	{
		Keyword: "cmh",
		Slug:    "cmh-data-management-system",
		Title:   "CMH Data Management System",
		Snippet: "A records management platform for a community health network: role-based access, bulk CSV import with validation, and a reporting module that replaced a weekly manual spreadsheet process.",
	},
	{
		Keyword: "data management",
		Slug:    "cmh-data-management-system",
		Title:   "CMH Data Management System",
		Snippet: "A records management platform for a community health network: role-based access, bulk CSV import with validation, and a reporting module that replaced a weekly manual spreadsheet process.",
	},
	{
		Keyword: "stocktrack",
		Slug:    "stocktrack-inventory",
		Title:   "StockTrack Inventory",
		Snippet: "A barcode-driven inventory system for a three-warehouse retailer, with live stock levels over WebSockets and automated reorder suggestions.",
	},
	{
		Keyword: "inventory",
		Slug:    "stocktrack-inventory",
		Title:   "StockTrack Inventory",
		Snippet: "A barcode-driven inventory system for a three-warehouse retailer, with live stock levels over WebSockets and automated reorder suggestions.",
	},
	{
		Keyword: "routewise",
		Slug:    "routewise-logistics-planner",
		Title:   "RouteWise Logistics Planner",
		Snippet: "Route planning and driver dispatch for regional delivery fleets. Cut average planning time from 45 minutes to under 5 per day per dispatcher.",
	},
	{
		Keyword: "logistics",
		Slug:    "routewise-logistics-planner",
		Title:   "RouteWise Logistics Planner",
		Snippet: "Route planning and driver dispatch for regional delivery fleets. Cut average planning time from 45 minutes to under 5 per day per dispatcher.",
	},
	{
		Keyword: "lumen",
		Slug:    "lumen-analytics-dashboard",
		Title:   "Lumen Analytics Dashboard",
		Snippet: "A self-serve analytics dashboard with drag-and-drop chart building on top of a PostgreSQL reporting schema and a query cache in Redis.",
	},
}

var contextualRules = []contextualRule{
	{
		// Client inquiry: sounds like the visitor needs something built.
		groups: [][]string{
			{"assistant", "help", "need"},
			{"project", "build", "develop"},
		},
		response: "Sounds like you need a project built! Carlos takes on a limited number of freelance engagements.\n\n" +
			"The best next step is a short scoping call — reach out and include a couple of lines about what you have in mind:\n\n" +
			contactBlock,
	},
	{
		groups: [][]string{
			{"price", "cost", "rate", "budget", "charge"},
		},
		response: "Rates depend on scope: fixed-price for well-defined builds, day rate for open-ended work.\n\n" +
			"Send a short description of the project and Carlos will come back with a realistic estimate:\n\n" +
			contactBlock,
	},
	{
		groups: [][]string{
			{"hire", "hiring", "freelance", "available for", "availability"},
		},
		response: "Carlos is selectively available for freelance and contract work, and open to hearing about interesting full-time roles.\n\n" +
			"Reach out directly:\n\n" + contactBlock,
	},
}

var fallbackResponses = []string{
	"Hmm, I'm not sure about that one. Try asking about Carlos' skills, experience, or projects!",
	"I didn't quite catch that. I can tell you about Carlos' background, his tech stack, or any of his projects.",
	"That's outside what I know. Ask me about Carlos' work experience, projects, or how to contact him.",
	"Good question — but not one I have an answer for. I'm best at questions about Carlos' skills, projects, and experience.",
	"I don't have anything on that, sorry! For anything I can't answer, you can always email carlos@cherrera.dev directly.",
}
