package content

import "fmt"

// Project is one portfolio entry.
type Project struct {
	ID          string
	Title       string
	Description string
	Image       string
	Tags        []string
	GitHub      string
	LiveURL     string
	Year        string
}

// Path is the project's detail page.
func (p Project) Path() string { return "/projects/" + p.ID }

func (p Project) clone() Project {
	p.Tags = append([]string(nil), p.Tags...)
	return p
}

// DefaultFeatured is how many projects the home page shows.
const DefaultFeatured = 3

var projects = []Project{
	{
		ID:          "e-commerce-platform",
		Title:       "E-Commerce Platform",
		Description: "A full-stack e-commerce solution with real-time inventory management, secure payment processing, and an intuitive admin dashboard.",
		Image:       "/projects/project-1.jpg",
		Tags:        []string{"Next.js", "Node.js", "MongoDB", "Stripe", "Redis"},
		GitHub:      "https://github.com/dhruvvakharia",
		LiveURL:     "https://example.com",
		Year:        "2024",
	},
	{
		ID:          "ai-chatbot-assistant",
		Title:       "AI Chatbot Assistant",
		Description: "An intelligent conversational AI powered by GPT-4, featuring context-aware responses, multi-language support, and seamless integrations.",
		Image:       "/projects/project-2.jpg",
		Tags:        []string{"Python", "OpenAI", "FastAPI", "React", "Docker"},
		GitHub:      "https://github.com/dhruvvakharia",
		LiveURL:     "https://example.com",
		Year:        "2024",
	},
	{
		ID:          "task-management-app",
		Title:       "Task Management App",
		Description: "A collaborative project management tool with real-time updates, Kanban boards, team chat, and detailed analytics dashboards.",
		Image:       "/projects/project-3.jpg",
		Tags:        []string{"React", "Firebase", "TypeScript", "Tailwind CSS"},
		GitHub:      "https://github.com/dhruvvakharia",
		LiveURL:     "https://example.com",
		Year:        "2023",
	},
	{
		ID:          "health-fitness-tracker",
		Title:       "Health & Fitness Tracker",
		Description: "A comprehensive mobile app for tracking workouts, nutrition, sleep patterns, and health metrics with personalized recommendations.",
		Image:       "/projects/project-4.jpg",
		Tags:        []string{"React Native", "Expo", "Node.js", "PostgreSQL"},
		GitHub:      "https://github.com/dhruvvakharia",
		LiveURL:     "https://example.com",
		Year:        "2023",
	},
	{
		ID:          "cloud-infrastructure-dashboard",
		Title:       "Cloud Infrastructure Dashboard",
		Description: "A real-time monitoring dashboard for AWS infrastructure with cost optimization insights, alerts, and automated scaling recommendations.",
		Image:       "/projects/project-5.jpg",
		Tags:        []string{"AWS", "Python", "React", "Terraform", "Grafana"},
		GitHub:      "https://github.com/dhruvvakharia",
		Year:        "2023",
	},
	{
		ID:          "social-media-analytics",
		Title:       "Social Media Analytics",
		Description: "An analytics platform for tracking social media performance across multiple platforms with sentiment analysis and competitor insights.",
		Image:       "/projects/project-6.jpg",
		Tags:        []string{"Python", "Django", "PostgreSQL", "Chart.js", "NLP"},
		GitHub:      "https://github.com/dhruvvakharia",
		LiveURL:     "https://example.com",
		Year:        "2022",
	},
}

// Projects returns every project in display order.
func Projects() []Project {
	return firstN(projects, len(projects))
}

// ProjectByID returns the project with the given id.
func ProjectByID(id string) (Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p.clone(), true
		}
	}
	return Project{}, false
}

// LookupProject is ProjectByID for callers that want an error.
func LookupProject(id string) (Project, error) {
	p, ok := ProjectByID(id)
	if !ok {
		return Project{}, fmt.Errorf("project %q: %w", id, ErrNotFound)
	}
	return p, nil
}

// FeaturedProjects returns the first count projects.
func FeaturedProjects(count int) []Project {
	return firstN(projects, count)
}

// RelatedProjects returns up to count projects other than id, in display
// order.
func RelatedProjects(id string, count int) []Project {
	others := make([]Project, 0, len(projects))
	for _, p := range projects {
		if p.ID != id {
			others = append(others, p)
		}
	}
	return firstN(others, count)
}

func firstN(ps []Project, n int) []Project {
	if n < 0 {
		n = 0
	}
	if n > len(ps) {
		n = len(ps)
	}
	out := make([]Project, n)
	for i := range out {
		out[i] = ps[i].clone()
	}
	return out
}
