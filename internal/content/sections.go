package content

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Hero is the home page opening block.
type Hero struct {
	FirstName string
	LastName  string
	Subtitle  string
	Tagline   string
	Image     string
	ImageAlt  string
	Primary   Link
	Secondary Link
}

// Link is a labelled href.
type Link struct {
	Name string
	Href string
}

// Service is one panel of the pinned services section.
type Service struct {
	ID          string
	Number      string
	Title       string
	Description string
	Features    []string
}

// ProcessStep is one card of the process section.
type ProcessStep struct {
	Number      string
	Title       string
	Description string
}

// Stat is a count-up figure.
type Stat struct {
	Value  int
	Suffix string
	Label  string
}

var printer = message.NewPrinter(language.English)

// Format renders v with digit grouping and the stat's suffix.
func (s Stat) Format(v int) string {
	return printer.Sprintf("%d%s", v, s.Suffix)
}

// Testimonial is one carousel slide.
type Testimonial struct {
	ID      int
	Quote   string
	Author  string
	Role    string
	Company string
}

// Initials is the avatar text for the author.
func (t Testimonial) Initials() string {
	var b strings.Builder
	for _, f := range strings.Fields(t.Author) {
		b.WriteString(strings.ToUpper(f[:1]))
	}
	return b.String()
}

// FAQItem is one accordion entry.
type FAQItem struct {
	ID       int
	Question string
	Answer   string
}

// ContactDetail is a row of the contact sidebar. Href is empty for plain
// text rows.
type ContactDetail struct {
	Label string
	Value string
	Href  string
}

// ShortFAQ is how many questions the contact page shows.
const ShortFAQ = 3

var (
	hero = Hero{
		FirstName: "Dhruv",
		LastName:  "Vakharia",
		Subtitle:  Role,
		Tagline:   "I design and build fast, accessible web applications that turn complex ideas into products people enjoy using.",
		Image:     "/images/hero.jpg",
		ImageAlt:  Owner + " - " + Role,
		Primary:   Link{Name: "Let's Work Together", Href: "/contact"},
		Secondary: Link{Name: "View Projects", Href: "/projects"},
	}

	aboutText = "I'm a Full Stack Developer passionate about creating exceptional digital experiences. With expertise in modern web technologies, I transform complex ideas into elegant, user-friendly applications."

	stats = []Stat{
		{Value: 5, Suffix: "+", Label: "Years Experience"},
		{Value: 50, Suffix: "+", Label: "Projects Completed"},
		{Value: 10, Suffix: "+", Label: "Happy Clients"},
		{Value: 100, Suffix: "%", Label: "Commitment"},
	}

	services = []Service{
		{
			ID:          "web-development",
			Number:      "01",
			Title:       "Web Development",
			Description: "Building fast, scalable, and modern web applications using cutting-edge technologies. From simple landing pages to complex enterprise solutions.",
			Features:    []string{"React & Next.js", "Node.js & Express", "Database Design", "API Development"},
		},
		{
			ID:          "mobile-development",
			Number:      "02",
			Title:       "Mobile Development",
			Description: "Creating cross-platform mobile applications that deliver native-like experiences on both iOS and Android devices.",
			Features:    []string{"React Native", "Expo", "Native Features", "App Store Deployment"},
		},
		{
			ID:          "ui-ux-design",
			Number:      "03",
			Title:       "UI/UX Design",
			Description: "Designing intuitive and visually stunning user interfaces that prioritize user experience and drive engagement.",
			Features:    []string{"User Research", "Wireframing", "Prototyping", "Design Systems"},
		},
		{
			ID:          "cloud-solutions",
			Number:      "04",
			Title:       "Cloud Services",
			Description: "Architecting and deploying scalable cloud infrastructure using modern DevOps practices and cloud-native technologies.",
			Features:    []string{"AWS & GCP", "Docker & Kubernetes", "CI/CD Pipelines", "Infrastructure as Code"},
		},
	}

	processSteps = []ProcessStep{
		{Number: "01", Title: "Discovery", Description: "Understanding your vision, goals, and requirements through in-depth discussions and research to lay a solid foundation."},
		{Number: "02", Title: "Strategy", Description: "Developing a comprehensive roadmap and technical architecture that aligns with your business objectives."},
		{Number: "03", Title: "Design & Develop", Description: "Bringing ideas to life through iterative design and development, with regular feedback loops for refinement."},
		{Number: "04", Title: "Launch & Support", Description: "Deploying your solution and providing ongoing support to ensure continued success and optimization."},
	}

	testimonials = []Testimonial{
		{ID: 1, Quote: "Dhruv transformed our outdated platform into a modern, user-friendly application. His technical expertise and attention to detail exceeded our expectations.", Author: "Sarah Chen", Role: "CTO", Company: "TechStartup Inc."},
		{ID: 2, Quote: "Working with Dhruv was a game-changer for our business. He delivered a robust e-commerce solution that increased our online sales by 150%.", Author: "Michael Rodriguez", Role: "Founder", Company: "RetailHub"},
		{ID: 3, Quote: "Exceptional communication and technical skills. Dhruv not only built what we asked for but also suggested improvements that made the final product even better.", Author: "Emily Watson", Role: "Product Manager", Company: "InnovateCo"},
		{ID: 4, Quote: "Dhruv's expertise in both frontend and backend development made our project seamless. He's our go-to developer for all future projects.", Author: "David Kim", Role: "CEO", Company: "Digital Solutions"},
	}

	faqItems = []FAQItem{
		{ID: 1, Question: "What is your development process?", Answer: "My development process follows an agile methodology with clear phases: Discovery, Planning, Design, Development, Testing, and Launch. I maintain regular communication and provide updates throughout each phase to ensure the project stays on track."},
		{ID: 2, Question: "How long does a typical project take?", Answer: "Project timelines vary based on complexity and scope. A simple website can take 2-4 weeks, while a complex web application might take 2-4 months. I'll provide a detailed timeline estimate after our initial consultation."},
		{ID: 3, Question: "What technologies do you specialize in?", Answer: "I specialize in modern web technologies including React, Next.js, Node.js, Python, and cloud platforms like AWS. I also have experience with mobile development using React Native and various database systems."},
		{ID: 4, Question: "Do you provide ongoing support after launch?", Answer: "Yes, I offer ongoing maintenance and support packages to ensure your application runs smoothly. This includes bug fixes, security updates, performance optimization, and feature enhancements as needed."},
		{ID: 5, Question: "How do you handle project communication?", Answer: "I believe in transparent and regular communication. We'll have scheduled check-ins, and I'm available via email, Slack, or video calls. You'll always know the status of your project and any challenges we're addressing."},
	}

	navLinks = []Link{
		{Name: "Home", Href: "/"},
		{Name: "Projects", Href: "/projects"},
		{Name: "Contact", Href: "/contact"},
	}

	socialLinks = []Link{
		{Name: "GitHub", Href: "https://github.com/dhruvvakharia"},
		{Name: "LinkedIn", Href: "https://linkedin.com/in/dhruvvakharia"},
		{Name: "Twitter", Href: "https://twitter.com/dhruvvakharia"},
	}

	contactDetails = []ContactDetail{
		{Label: "Email", Value: "hello@dhruvvakharia.com", Href: "mailto:hello@dhruvvakharia.com"},
		{Label: "Location", Value: "Mumbai, India"},
		{Label: "Availability", Value: "Open to new projects"},
	}
)

// HeroBlock returns the hero copy.
func HeroBlock() Hero { return hero }

// AboutText is the paragraph revealed word by word on the home page.
func AboutText() string { return aboutText }

// Stats returns the count-up figures.
func Stats() []Stat { return append([]Stat(nil), stats...) }

// Services returns the service panels in order.
func Services() []Service {
	out := make([]Service, len(services))
	for i, s := range services {
		s.Features = append([]string(nil), s.Features...)
		out[i] = s
	}
	return out
}

// Process returns the process steps in order.
func Process() []ProcessStep { return append([]ProcessStep(nil), processSteps...) }

// Testimonials returns the carousel slides in order.
func Testimonials() []Testimonial { return append([]Testimonial(nil), testimonials...) }

// FAQ returns every question, or only the first ShortFAQ when all is false.
func FAQ(all bool) []FAQItem {
	items := faqItems
	if !all && len(items) > ShortFAQ {
		items = items[:ShortFAQ]
	}
	return append([]FAQItem(nil), items...)
}

// NavLinks returns the primary navigation.
func NavLinks() []Link { return append([]Link(nil), navLinks...) }

// SocialLinks returns the external profiles.
func SocialLinks() []Link { return append([]Link(nil), socialLinks...) }

// ContactDetails returns the contact sidebar rows.
func ContactDetails() []ContactDetail { return append([]ContactDetail(nil), contactDetails...) }
