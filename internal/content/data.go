// ABOUTME: The portfolio facts served by the assistant, ported from the site content
// ABOUTME: This is the entire knowledge corpus; the extractor turns it into documents
package content

// Profile holds the site owner's identity and contact details
type Profile struct {
	Name      string
	FullName  string
	Role      string
	Location  string
	Summary   string
	Email     string
	Phone     string
	Upwork    string
	Fiverr    string
	GitHub    string
	Schedule  string
	Available bool
}

// ExperienceEntry is one employment record
type ExperienceEntry struct {
	ID          int
	Years       string
	Title       string
	Company     string
	Label       string
	Description string
	Link        string
}

// Service is one offering shown on the services page
type Service struct {
	ID          int
	Title       string
	Description string
}

// ServicePlan is a priced service with track-record figures
type ServicePlan struct {
	ID             int
	Service        string
	Price          string
	Description    string
	CompletedWorks string
	Experience     string
	HoursWorked    string
	BookingLink    string
}

// Showcase is one featured project
type Showcase struct {
	ID          int
	Title       string
	Description string
	Link        string
	Type        string
	Theme       string
	Pages       int
}

// StackItem is one technology in the tech stack
type StackItem struct {
	ID          int
	Title       string
	Description string
	Link        string
}

// Testimonial is one client review
type Testimonial struct {
	ID       int
	Name     string
	Location string
	Quote    string
}

// FAQ is one frequently asked question with its answer
type FAQ struct {
	Question string
	Answer   string
}

// Counter is one headline statistic
type Counter struct {
	Title string
	Value int
}

// Owner describes the portfolio's subject
var Owner = Profile{
	Name:     "Aasim Shah",
	FullName: "Syed Aasim Shah",
	Role:     "Senior MERN Stack Developer / Full-Stack Developer",
	Location: "Rawalpindi, Pakistan",
	Summary: "I craft high-performance web apps, seamless APIs, and dynamic " +
		"full-stack solutions, turning ideas into reality. Specialized in MERN " +
		"stack development, RESTful and GraphQL APIs, cloud and DevOps (AWS, " +
		"Docker, CI/CD), and cross-platform mobile development with Flutter.",
	Email:     "contact@aasimshah.com",
	Phone:     "+92-348-3360070",
	Upwork:    "https://www.upwork.com/freelancers/aasimshah",
	Fiverr:    "https://www.fiverr.com/users/aaasimmshah",
	GitHub:    "https://www.github.com/aasim-shah",
	Schedule:  "15-minute call via the Cal.com widget on the website",
	Available: true,
}

// Experience lists employment history, most recent first
var Experience = []ExperienceEntry{
	{
		ID:      1,
		Years:   "2024 - Present",
		Title:   "Senior MERN Stack Developer",
		Company: "Dcodax PVT LTD",
		Label:   "Tech Firm",
		Description: "Developing scalable APIs for a multi-vendor hotel management " +
			"system, integrating third-party services, and optimizing performance.",
		Link: "dcodax.com",
	},
	{
		ID:      2,
		Years:   "2022 - 2024",
		Title:   "MERN Stack Developer (Backend)",
		Company: "ItecExperts",
		Label:   "Software House",
		Description: "Built and optimized backend systems for multiple web and " +
			"cross-platform applications, ensuring high performance and security.",
		Link: "itecexperts.com",
	},
	{
		ID:      3,
		Years:   "2020 - 2022",
		Title:   "Backend Developer",
		Company: "47apps",
		Label:   "Software House",
		Description: "Developed and maintained backend systems for a variety of web " +
			"applications, including e-commerce platforms and content management systems.",
		Link: "",
	},
}

// Services lists the service categories offered
var Services = []Service{
	{1, "MERN Stack Development", "Building scalable and high-performance web applications using MongoDB, Express, React, and Node.js."},
	{2, "API Development", "Designing and developing RESTful and GraphQL APIs for seamless data communication."},
	{3, "Cloud & DevOps", "Deploying and managing cloud-based applications with CI/CD pipelines, Docker, and AWS."},
	{4, "Complete Project Development", "End-to-end development including website, admin dashboard, cross-platform mobile app in Flutter, and AWS deployment."},
}

// ServicePlans lists priced plans with track records
var ServicePlans = []ServicePlan{
	{
		ID: 1, Service: "MERN Stack Development", Price: "$30",
		Description:    "Building scalable and high-performance web applications using MongoDB, Express, React, and Node.js.",
		CompletedWorks: "50+", Experience: "5+ years", HoursWorked: "1500+ hours",
		BookingLink: Owner.Upwork,
	},
	{
		ID: 2, Service: "API Development", Price: "$40+",
		Description:    "Designing and developing RESTful and GraphQL APIs for seamless data communication.",
		CompletedWorks: "40+", Experience: "5+ years", HoursWorked: "1200+ hours",
		BookingLink: Owner.Upwork,
	},
	{
		ID: 3, Service: "Cloud & DevOps", Price: "$80+",
		Description:    "Deploying and managing cloud-based applications with CI/CD pipelines, Docker, and AWS.",
		CompletedWorks: "25+", Experience: "2+ years", HoursWorked: "900+ hours",
		BookingLink: Owner.Upwork,
	},
	{
		ID: 4, Service: "Complete Project Development", Price: "$30+",
		Description:    "End-to-end development including website, admin dashboard, cross-platform mobile app in Flutter, and AWS deployment.",
		CompletedWorks: "20+", Experience: "5+ years", HoursWorked: "2000+ hours",
		BookingLink: Owner.Upwork,
	},
}

// Showcases lists featured projects
var Showcases = []Showcase{
	{
		ID: 1, Title: "HOHEAL",
		Description: "A SaaS-based multi-vendor hotel management system with admin, hotel, management, and staff panels.",
		Link:        "http://172.86.108.103:4000/en", Type: "SaaS", Theme: "Light", Pages: 30,
	},
	{
		ID: 2, Title: "PIKUP POS",
		Description: "A full-fledged e-commerce website with a custom admin panel, order management, and payment gateway integration.",
		Link:        "https://pikuppos.hostdonor.com/", Type: "E-Commerce", Theme: "Dark", Pages: 80,
	},
	{
		ID: 3, Title: "Premier Vehicles",
		Description: "A Flutter app with an admin panel where users can list and sell their vehicles, including integrated payment options.",
		Link:        "github.com/aasim-shah/premier_dashboard", Type: "Marketplace", Theme: "Dark", Pages: 20,
	},
	{
		ID: 4, Title: "Cloud-Based API Services",
		Description: "A scalable backend solution with RESTful & GraphQL APIs, authentication, and AWS deployment.",
		Link:        "https://api.myservice.com", Type: "Backend", Theme: "Light", Pages: 10,
	},
}

// Stack lists the technologies worked with
var Stack = []StackItem{
	{1, "Next.js", "Full-Stack React Framework", "https://nextjs.org"},
	{2, "Node.js", "JavaScript Runtime", "https://nodejs.org"},
	{3, "Express.js", "Fast Node.js Framework", "https://expressjs.com"},
	{4, "Fastify", "High-Performance Backend", "https://www.fastify.io"},
	{5, "MongoDB", "NoSQL Database", "https://www.mongodb.com"},
	{6, "PostgreSQL", "Relational Database", "https://www.postgresql.org"},
	{7, "Docker", "Containerization Platform", "https://www.docker.com"},
	{8, "TypeScript", "Strongly Typed JavaScript", "https://www.typescriptlang.org"},
	{9, "GraphQL", "API Query Language", "https://graphql.org"},
	{10, "CI/CD", "Continuous Integration & Deployment", "https://about.gitlab.com/topics/ci-cd"},
}

// Testimonials lists client reviews
var Testimonials = []Testimonial{
	{1, "Sarah Thompson", "New York City, USA.",
		"The MERN stack web application Syed built for my business is top-notch! It's fast, scalable, and has completely streamlined our operations."},
	{2, "John Anderson", "Sydney, Australia.",
		"Syed's API development skills are outstanding! He designed a seamless and efficient RESTful API for our mobile and web apps, making integrations smooth."},
	{3, "Mark Davis", "London, UK.",
		"From backend optimization to cloud deployment, Syed handled our entire project flawlessly. Our platform is now running with excellent performance on AWS."},
	{4, "Laura Adams", "Madrid, Spain.",
		"Syed delivered a full-stack solution, including a responsive website, an admin dashboard, and a cross-platform Flutter app. The end-to-end development was executed perfectly!"},
}

// FAQs lists the questions answered on the site
var FAQs = []FAQ{
	{
		"Can you work with clients remotely?",
		"Absolutely! I have experience working with clients from all around the world. Through effective communication channels such as email, video calls, and project management tools, I ensure seamless collaboration regardless of geographical location.",
	},
	{
		"Will my website be mobile-friendly?",
		"Absolutely! Mobile responsiveness is a top priority in today's digital landscape. I design and develop websites that are fully responsive and adaptable to various devices and screen sizes. Your website will provide an optimal user experience whether accessed via desktops, smartphones, or tablets.",
	},
	{
		"How long does it typically take to complete a project?",
		"The timeline for each project varies depending on its scope and complexity. Factors such as the number of pages, functionalities, and the client feedback process can impact the timeline. Upon discussing your project requirements, I will provide you with a realistic timeline and keep you updated throughout the process.",
	},
	{
		"Can you integrate third-party tools into my website?",
		"Yes, I have experience integrating various third-party tools, plugins, and platforms into websites. Whether you need to integrate e-commerce functionalities, social media integration, email marketing services, or anything else, I can recommend and help ensure smooth integration.",
	},
	{
		"Do you offer website maintenance?",
		"Yes, I offer website maintenance services to ensure your website remains up to date, secure, and optimized. From performance updates to adding new features and content, I can provide ongoing support to keep your website running smoothly.",
	},
	{
		"How do you handle website revisions?",
		"I value your input and collaboration throughout the design process. Upon completing an initial design, I encourage you to provide feedback. I incorporate your suggestions and revisions to ensure the final product aligns with your vision.",
	},
	{
		"Can you optimize my website?",
		"Certainly! I incorporate search engine optimization (SEO) best practices into my development process. This includes using relevant keywords, optimizing meta tags, creating search-engine-friendly URLs, and ensuring your website has a solid foundation for better search engine visibility.",
	},
	{
		"What are your payment terms?",
		"Payment terms may vary depending on the project scope and duration. Generally, I request an initial deposit before commencing work.",
	},
}

// Counters lists the headline statistics
var Counters = []Counter{
	{"Happy Clients", 45},
	{"Year of Experience", 5},
	{"Completed Projects", 40},
}
