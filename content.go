package main

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Project is one case-study card in the work section.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Repo        string   `json:"repo,omitempty"`
	Tags        []string `json:"tags"`
}

// Job is one entry of the experience timeline.
type Job struct {
	Title   string   `json:"title"`
	Company string   `json:"company"`
	Start   string   `json:"start"`
	End     string   `json:"end"`
	Logo    string   `json:"logo"`
	Bullets []string `json:"bullets"`
}

// Certification is one certificate card.
type Certification struct {
	Name       string `json:"name"`
	Issuer     string `json:"issuer"`
	Date       string `json:"date"`
	Credential string `json:"credential,omitempty"`
}

// Education is the degree box next to the certificates.
type Education struct {
	Degree      string   `json:"degree"`
	Institution string   `json:"institution"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Logo        string   `json:"logo"`
	Highlights  []string `json:"highlights"`
}

// FAQItem is one accordion entry.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// NavItem is a header navigation button.
type NavItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Content is everything the page renders.
type Content struct {
	Name           string          `json:"name"`
	Role           string          `json:"role"`
	Email          string          `json:"email"`
	About          string          `json:"about"`
	OrbitSkills    []string        `json:"orbit_skills"`
	Skills         []string        `json:"skills"`
	Projects       []Project       `json:"projects"`
	Jobs           []Job           `json:"jobs"`
	Education      Education       `json:"education"`
	Learning       []string        `json:"learning"`
	Certifications []Certification `json:"certifications"`
	FAQ            []FAQItem       `json:"faq"`
	Nav            []NavItem       `json:"nav"`
}

// navSections are the sections with a header button, in page order.
var navSections = []string{"work", "skills", "experience", "contact"}

// pageSections are the ids of every section of the page, in order.
var pageSections = []string{"hero", "work", "skills", "experience", "certifications", "faq", "contact"}

func knownSection(id string) bool {
	for _, s := range pageSections {
		if s == id {
			return true
		}
	}
	return false
}

func navItems() []NavItem {
	title := cases.Title(language.English)
	items := make([]NavItem, 0, len(navSections))
	for _, id := range navSections {
		items = append(items, NavItem{ID: id, Label: title.String(strings.ReplaceAll(id, "-", " "))})
	}
	return items
}

var siteContent = Content{
	Name:  "Zach Kordas-Potter",
	Role:  "Software Developer",
	Email: "zachkordaspotter@gmail.com",
	About: `I build software that is useful and a little fun, and I like knowing how things work
underneath. Most projects start as a small idea and turn into an excuse to learn a new language,
tool or problem. Away from the keyboard I train Muay Thai and shoot pool.`,
	OrbitSkills: []string{"Go", "Python", "JavaScript", "SQL", "Docker", "Linux", "Git", "HTMX"},
	Skills: []string{
		"Go", "Python", "JavaScript", "TypeScript", "SQL", "SQLite",
		"Gin", "HTMX", "Tailwind CSS", "Docker", "Linux", "Git",
	},
	Projects: []Project{
		{
			Title:       "Terminal Mail",
			Description: "A terminal email client in Go with fuzzy finding, built on the Charmbracelet TUI libraries and go-imap.",
			Image:       "/images/projects/mail.webp",
			Tags:        []string{"Go", "TUI", "IMAP"},
		},
		{
			Title:       "Terminal Music",
			Description: "A TUI music player that streams YouTube Music through yt-dlp and mpv straight from the command line.",
			Image:       "/images/projects/music.webp",
			Tags:        []string{"Go", "TUI", "mpv"},
		},
		{
			Title:       "Game Recommender",
			Description: "Content-based game recommendations from TF-IDF vectors and cosine similarity, with interactive charts and live filtering by reviews.",
			Image:       "/images/projects/games.webp",
			Tags:        []string{"Python", "ML", "Data viz"},
		},
		{
			Title:       "This Portfolio",
			Description: "A Go and Gin site with HTMX interactions and a scroll-driven animation layer compiled to WebAssembly.",
			Image:       "/images/projects/portfolio.webp",
			Tags:        []string{"Go", "Gin", "WebAssembly"},
		},
	},
	Jobs: []Job{
		{
			Title:   "Presentation Expert",
			Company: "Target",
			Start:   "Aug 2023",
			End:     "Present",
			Logo:    "/images/TargetLogo.webp",
			Bullets: []string{
				"Ran more than 300 merchandising transitions on tight timelines by organising team workflows",
				"Streamlined backroom inventory and the hand-off between floor and logistics teams",
				"Standardised daily pricing and signage checks across departments",
			},
		},
		{
			Title:   "Manager",
			Company: "Jasons Catered Events",
			Start:   "Aug 2016",
			End:     "Present",
			Logo:    "/images/jasonsCateringLogo.webp",
			Bullets: []string{
				"Coordinated custom menus and dietary requirements for every client",
				"Troubleshot AV equipment and ran digital order tracking for events",
				"Planned supply inventory and deliveries between venues",
			},
		},
	},
	Education: Education{
		Degree:      "Bachelor of Computer Science",
		Institution: "Western Governors University",
		Start:       "Sept 2019",
		End:         "May 2023",
		Logo:        "/images/WGU-logo.webp",
		Highlights: []string{
			"Graduated Magna Cum Laude",
			"Coursework in data structures, algorithms and web development",
		},
	},
	Learning: []string{"WebAssembly", "Distributed systems", "Rust"},
	Certifications: []Certification{
		{Name: "Project+", Issuer: "CompTIA", Date: "July 2022", Credential: "SRRRPGBSWBRQCCDJ"},
		{Name: "Agile Project Management", Issuer: "CompTIA", Date: "2022"},
		{Name: "Go Fundamentals", Issuer: "Self-study", Date: "2024"},
	},
	FAQ: []FAQItem{
		{Question: "What are you looking for?", Answer: "A backend or full-stack role where Go is part of the stack."},
		{Question: "Are you open to remote work?", Answer: "Yes, remote or hybrid both work for me."},
		{Question: "What do you build in your spare time?", Answer: "Terminal tools, small web services and whatever I am curious about that month."},
		{Question: "How do I reach you?", Answer: "The contact form below, or copy my email from the top of the page."},
	},
}

func init() {
	siteContent.Nav = navItems()
}
