// ABOUTME: Extractors that turn portfolio facts into normalized documents
// ABOUTME: One transform per category; output is deterministic across runs
package content

import (
	"fmt"
	"strings"

	"github.com/aasim-shah/portfolio-assistant/internal/models"
)

// ExtractAll returns the full document list in a stable order. Same input
// data always produces an identical list with identical ids, which is what
// makes re-ingestion reproducible.
func ExtractAll() []models.Document {
	var docs []models.Document
	docs = append(docs, ExtractAbout()...)
	docs = append(docs, ExtractExperience()...)
	docs = append(docs, ExtractServices()...)
	docs = append(docs, ExtractServicePlans()...)
	docs = append(docs, ExtractProjects()...)
	docs = append(docs, ExtractSkills()...)
	docs = append(docs, ExtractTestimonials()...)
	docs = append(docs, ExtractFAQ()...)
	docs = append(docs, ExtractStats()...)
	docs = append(docs, ExtractContact()...)
	return docs
}

// ExtractAbout produces the single about/profile document
func ExtractAbout() []models.Document {
	availability := "Not currently available"
	if Owner.Available {
		availability = "Available for work"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", Owner.FullName)
	fmt.Fprintf(&b, "Role: %s\n", Owner.Role)
	fmt.Fprintf(&b, "Location: %s\n\n", Owner.Location)
	fmt.Fprintf(&b, "Professional Summary:\n%s\n\n", Owner.Summary)
	fmt.Fprintf(&b, "Availability: %s\n\n", availability)
	b.WriteString("Contact:\n")
	fmt.Fprintf(&b, "- Email: %s\n", Owner.Email)
	fmt.Fprintf(&b, "- Phone: %s\n", Owner.Phone)
	fmt.Fprintf(&b, "- Upwork: %s\n", Owner.Upwork)
	fmt.Fprintf(&b, "- Fiverr: %s\n", Owner.Fiverr)
	fmt.Fprintf(&b, "- GitHub: %s", Owner.GitHub)

	return []models.Document{{
		ID:       "about-main",
		Category: models.CategoryAbout,
		Title:    "About " + Owner.Name,
		Text:     b.String(),
		Metadata: models.Metadata{
			Source:   "content#Owner",
			Entities: []string{Owner.Name, Owner.FullName},
			Keywords: []string{"about", "developer", "mern", "fullstack", "contact", "hire"},
		},
	}}
}

// ExtractExperience produces one document per employment entry
func ExtractExperience() []models.Document {
	docs := make([]models.Document, 0, len(Experience))
	for _, exp := range Experience {
		text := fmt.Sprintf(
			"Position: %s\nCompany: %s (%s)\nPeriod: %s\nDescription: %s",
			exp.Title, exp.Company, exp.Label, exp.Years, exp.Description)
		if exp.Link != "" {
			text += "\nCompany Website: " + exp.Link
		}
		docs = append(docs, models.Document{
			ID:       fmt.Sprintf("experience-%d", exp.ID),
			Category: models.CategoryExperience,
			Title:    exp.Title,
			Text:     text,
			Metadata: models.Metadata{
				Source:   "content#Experience",
				Entities: []string{exp.Company, exp.Title},
				Keywords: []string{"experience", "work", "job", strings.ToLower(exp.Company)},
			},
		})
	}
	return docs
}

// ExtractServices produces one document per service offering
func ExtractServices() []models.Document {
	docs := make([]models.Document, 0, len(Services))
	for _, svc := range Services {
		docs = append(docs, models.Document{
			ID:       fmt.Sprintf("service-%d", svc.ID),
			Category: models.CategoryServices,
			Title:    svc.Title,
			Text:     fmt.Sprintf("Service: %s\nDescription: %s", svc.Title, svc.Description),
			Metadata: models.Metadata{
				Source:   "content#Services",
				Entities: []string{svc.Title},
				Keywords: []string{"service", "offer", strings.ToLower(svc.Title)},
			},
		})
	}
	return docs
}

// ExtractServicePlans produces one document per priced plan
func ExtractServicePlans() []models.Document {
	docs := make([]models.Document, 0, len(ServicePlans))
	for _, plan := range ServicePlans {
		text := fmt.Sprintf(
			"Service: %s\nPrice: %s per hour\nDescription: %s\nCompleted Works: %s\nExperience: %s\nTotal Hours Worked: %s\nBooking Link: %s",
			plan.Service, plan.Price, plan.Description, plan.CompletedWorks,
			plan.Experience, plan.HoursWorked, plan.BookingLink)
		docs = append(docs, models.Document{
			ID:       fmt.Sprintf("service-plan-%d", plan.ID),
			Category: models.CategoryServices,
			Title:    plan.Service,
			Text:     text,
			Metadata: models.Metadata{
				Source:   "content#ServicePlans",
				Entities: []string{plan.Service},
				Keywords: []string{"price", "rate", "cost", "hire", strings.ToLower(plan.Service)},
			},
		})
	}
	return docs
}

// ExtractProjects produces one document per showcase project
func ExtractProjects() []models.Document {
	docs := make([]models.Document, 0, len(Showcases))
	for _, p := range Showcases {
		text := fmt.Sprintf(
			"Project: %s\nDescription: %s\nType: %s\nTheme: %s\nPages: %d\nLink: %s",
			p.Title, p.Description, p.Type, p.Theme, p.Pages, p.Link)
		docs = append(docs, models.Document{
			ID:       fmt.Sprintf("project-%d", p.ID),
			Category: models.CategoryProjects,
			Title:    p.Title,
			Text:     text,
			Metadata: models.Metadata{
				Source:   "content#Showcases",
				Entities: []string{p.Title, p.Type},
				Keywords: []string{"project", "portfolio", "work", strings.ToLower(p.Title)},
			},
		})
	}
	return docs
}

// ExtractSkills produces one document per stack technology
func ExtractSkills() []models.Document {
	docs := make([]models.Document, 0, len(Stack))
	for _, s := range Stack {
		docs = append(docs, models.Document{
			ID:       fmt.Sprintf("skill-%d", s.ID),
			Category: models.CategorySkills,
			Title:    s.Title,
			Text:     fmt.Sprintf("Technology: %s\nCategory: %s\nDocumentation: %s", s.Title, s.Description, s.Link),
			Metadata: models.Metadata{
				Source:   "content#Stack",
				Entities: []string{s.Title},
				Keywords: []string{"skill", "technology", "stack", strings.ToLower(s.Title)},
			},
		})
	}
	return docs
}

// ExtractTestimonials produces one document per client review
func ExtractTestimonials() []models.Document {
	docs := make([]models.Document, 0, len(Testimonials))
	for _, t := range Testimonials {
		docs = append(docs, models.Document{
			ID:       fmt.Sprintf("testimonial-%d", t.ID),
			Category: models.CategoryTestimonials,
			Title:    "Testimonial from " + t.Name,
			Text:     fmt.Sprintf("Client: %s\nLocation: %s\nFeedback: %q", t.Name, t.Location, t.Quote),
			Metadata: models.Metadata{
				Source:   "content#Testimonials",
				Entities: []string{t.Name},
				Keywords: []string{"testimonial", "review", "feedback", "client"},
			},
		})
	}
	return docs
}

// ExtractFAQ produces one document per question
func ExtractFAQ() []models.Document {
	docs := make([]models.Document, 0, len(FAQs))
	for i, faq := range FAQs {
		docs = append(docs, models.Document{
			ID:       fmt.Sprintf("faq-%d", i),
			Category: models.CategoryFAQ,
			Title:    faq.Question,
			Text:     fmt.Sprintf("Question: %s\nAnswer: %s", faq.Question, faq.Answer),
			Metadata: models.Metadata{
				Source:   "content#FAQs",
				Entities: []string{},
				Keywords: []string{"faq", "question", "answer", "help"},
			},
		})
	}
	return docs
}

// ExtractStats produces one aggregate document for the headline statistics
func ExtractStats() []models.Document {
	lines := make([]string, 0, len(Counters))
	for _, c := range Counters {
		lines = append(lines, fmt.Sprintf("%s: %d+", c.Title, c.Value))
	}
	return []models.Document{{
		ID:       "stats-overview",
		Category: models.CategoryAbout,
		Title:    "Portfolio Statistics",
		Text:     "Portfolio Statistics and Achievements:\n" + strings.Join(lines, "\n"),
		Metadata: models.Metadata{
			Source:   "content#Counters",
			Entities: []string{},
			Keywords: []string{"stats", "numbers", "clients", "experience", "projects"},
		},
	}}
}

// ExtractContact produces the single contact document
func ExtractContact() []models.Document {
	var b strings.Builder
	fmt.Fprintf(&b, "Contact %s:\n\n", Owner.Name)
	fmt.Fprintf(&b, "Email: %s\n", Owner.Email)
	fmt.Fprintf(&b, "Phone: %s\n\n", Owner.Phone)
	b.WriteString("Freelance Platforms:\n")
	fmt.Fprintf(&b, "- Upwork: %s\n", Owner.Upwork)
	fmt.Fprintf(&b, "- Fiverr: %s\n\n", Owner.Fiverr)
	b.WriteString("Social Media:\n")
	fmt.Fprintf(&b, "- GitHub: %s\n\n", Owner.GitHub)
	fmt.Fprintf(&b, "Schedule a Meeting:\nYou can schedule a %s.\n\n", Owner.Schedule)
	fmt.Fprintf(&b, "Business Location:\n%s", Owner.Location)

	return []models.Document{{
		ID:       "contact-info",
		Category: models.CategoryContact,
		Title:    "Contact Information",
		Text:     b.String(),
		Metadata: models.Metadata{
			Source:   "content#Owner",
			Entities: []string{Owner.Email},
			Keywords: []string{"contact", "email", "phone", "hire", "reach", "schedule", "call"},
		},
	}}
}
