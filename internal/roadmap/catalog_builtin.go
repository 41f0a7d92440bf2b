package roadmap

// DefaultCatalog returns the built-in curriculum catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog(builtinKeys, builtinFallback)
}

var builtinKeys = []CatalogKey{
	{
		Key: "frontend developer",
		Entries: []CatalogEntry{
			{Category: "HTML", Topics: []string{"HTML Basics & Semantic Tags", "HTML Forms & Validation", "HTML5 APIs & Features"}},
			{Category: "CSS", Topics: []string{"CSS Fundamentals & Selectors", "CSS Flexbox Layout", "CSS Grid System", "CSS Animations & Transitions", "Responsive Design & Media Queries"}},
			{Category: "JavaScript", Topics: []string{"JavaScript Basics & Syntax", "DOM Manipulation", "ES6+ Features", "Async JavaScript & Promises", "Fetch API & AJAX"}},
			{Category: "React", Topics: []string{"React Fundamentals", "Components & Props", "State & Hooks", "React Router", "Context API & State Management"}},
			{Category: "Tools", Topics: []string{"Git & GitHub", "NPM & Package Management", "Webpack/Vite", "Browser DevTools"}},
			{Category: "Projects", Topics: []string{"Portfolio Website", "Todo App with React", "E-commerce Product Page", "Weather Dashboard", "Final Capstone Project"}},
		},
	},
	{
		Key: "backend developer",
		Entries: []CatalogEntry{
			{Category: "Programming", Topics: []string{"Programming Fundamentals", "OOP Concepts", "Data Structures", "Algorithms Basics"}},
			{Category: "Node.js", Topics: []string{"Node.js Basics", "Express.js Framework", "RESTful API Design", "Middleware & Error Handling"}},
			{Category: "Databases", Topics: []string{"SQL Fundamentals", "MongoDB Basics", "Database Design", "ORMs & Query Builders"}},
			{Category: "Authentication", Topics: []string{"JWT & Sessions", "OAuth & Social Login", "Security Best Practices"}},
			{Category: "Advanced", Topics: []string{"GraphQL Basics", "WebSockets & Real-time", "Caching Strategies", "API Testing"}},
			{Category: "Deployment", Topics: []string{"Docker Basics", "CI/CD Pipelines", "Cloud Deployment", "Monitoring & Logging"}},
		},
	},
	{
		Key: "data science",
		Entries: []CatalogEntry{
			{Category: "Python", Topics: []string{"Python Fundamentals", "NumPy & Arrays", "Pandas DataFrames", "Data Cleaning Techniques"}},
			{Category: "Visualization", Topics: []string{"Matplotlib Basics", "Seaborn & Advanced Plots", "Interactive Dashboards"}},
			{Category: "Statistics", Topics: []string{"Descriptive Statistics", "Probability Theory", "Hypothesis Testing", "Correlation & Regression"}},
			{Category: "ML Basics", Topics: []string{"Machine Learning Fundamentals", "Supervised Learning", "Unsupervised Learning", "Model Evaluation"}},
			{Category: "Tools", Topics: []string{"Jupyter Notebooks", "Scikit-learn", "SQL for Data Analysis"}},
			{Category: "Projects", Topics: []string{"EDA Project", "Prediction Model", "Classification Task", "Final ML Project"}},
		},
	},
	{
		Key: "mobile developer",
		Entries: []CatalogEntry{
			{Category: "Basics", Topics: []string{"Mobile Development Overview", "UI/UX Principles", "App Architecture"}},
			{Category: "React Native", Topics: []string{"React Native Basics", "Components & Styling", "Navigation", "State Management"}},
			{Category: "Native Features", Topics: []string{"Camera & Media", "Geolocation", "Push Notifications", "Local Storage"}},
			{Category: "API Integration", Topics: []string{"REST API Calls", "Authentication", "Data Synchronization"}},
			{Category: "Advanced", Topics: []string{"Performance Optimization", "Testing", "App Deployment"}},
			{Category: "Projects", Topics: []string{"Todo Mobile App", "Weather App", "Social Media Clone", "Final Project"}},
		},
	},
	{
		Key: "devops",
		Entries: []CatalogEntry{
			{Category: "Linux", Topics: []string{"Linux Fundamentals", "Shell Scripting", "System Administration"}},
			{Category: "Networking", Topics: []string{"Networking Basics", "DNS & Load Balancing", "Security Fundamentals"}},
			{Category: "Containers", Topics: []string{"Docker Basics", "Docker Compose", "Container Orchestration"}},
			{Category: "CI/CD", Topics: []string{"Git Workflows", "Jenkins/GitHub Actions", "Automated Testing", "Deployment Pipelines"}},
			{Category: "Cloud", Topics: []string{"AWS/Azure Basics", "Infrastructure as Code", "Monitoring & Logging"}},
			{Category: "Advanced", Topics: []string{"Kubernetes", "Terraform", "Security Best Practices", "Incident Management"}},
		},
	},
}

var builtinFallback = []CatalogEntry{
	{Category: "Fundamentals", Topics: []string{"Programming Basics", "Problem Solving", "Data Structures", "Algorithms"}},
	{Category: "Core Concepts", Topics: []string{"OOP Principles", "Design Patterns", "Clean Code", "Testing"}},
	{Category: "Tools", Topics: []string{"Version Control", "IDEs & Editors", "Debugging Techniques"}},
	{Category: "Practice", Topics: []string{"Coding Challenges", "Mini Projects", "Code Reviews"}},
	{Category: "Advanced", Topics: []string{"System Design", "Performance", "Security", "Best Practices"}},
	{Category: "Projects", Topics: []string{"Portfolio Projects", "Open Source", "Capstone Project"}},
}
