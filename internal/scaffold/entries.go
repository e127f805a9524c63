package scaffold

// RoutePrefix is prepended to every entry path.
const RoutePrefix = "/docs/"

// DefaultEntries lists the pages stamped by `shanksdocs scaffold`.
func DefaultEntries() []Entry {
	return []Entry{
		// CLI
		{Path: "cli/new", Title: "shanks new", Description: "Create a new Shanks project"},
		{Path: "cli/create", Title: "shanks create", Description: "Generate CRUD endpoints and authentication"},
		{Path: "cli/generate", Title: "shanks generate", Description: "Generate Django structure for deployment"},
		{Path: "cli/run", Title: "shanks run", Description: "Start the development server"},

		// SORM
		{Path: "sorm/database", Title: "Database Setup", Description: "Configure and setup your database"},
		{Path: "sorm/migrations", Title: "Migrations", Description: "Manage database migrations"},
		{Path: "sorm/admin", Title: "Admin Panel", Description: "Django admin panel configuration"},

		// Routing
		{Path: "routing", Title: "Routing", Description: "Express.js-like routing for Django"},
		{Path: "routing/basic", Title: "Basic Routes", Description: "Define basic routes with decorators"},
		{Path: "routing/groups", Title: "Route Groups", Description: "Group routes with common prefixes"},
		{Path: "routing/dynamic", Title: "Dynamic Routes", Description: "Handle dynamic URL parameters"},
		{Path: "routing/methods", Title: "HTTP Methods", Description: "Handle GET, POST, PUT, DELETE requests"},

		// Authentication
		{Path: "authentication", Title: "Authentication", Description: "User authentication and authorization"},
		{Path: "authentication/jwt", Title: "JWT Authentication", Description: "JSON Web Token authentication"},
		{Path: "authentication/session", Title: "Session Authentication", Description: "Django session-based auth"},
		{Path: "authentication/middleware", Title: "Auth Middleware", Description: "Protect routes with middleware"},

		// Middleware
		{Path: "middleware", Title: "Middleware", Description: "Express.js-style middleware"},
		{Path: "middleware/builtin", Title: "Built-in Middleware", Description: "Auto-cache and smart invalidation"},
		{Path: "middleware/custom", Title: "Custom Middleware", Description: "Create your own middleware"},
		{Path: "middleware/cors", Title: "CORS", Description: "Cross-Origin Resource Sharing setup"},

		// Caching
		{Path: "caching", Title: "Caching", Description: "Built-in caching for 10x performance"},
		{Path: "caching/auto", Title: "Auto Cache", Description: "Automatic caching for GET requests"},
		{Path: "caching/manual", Title: "Manual Cache", Description: "Manual cache control"},
		{Path: "caching/invalidation", Title: "Cache Invalidation", Description: "Smart cache invalidation"},

		// ORM
		{Path: "orm", Title: "ORM", Description: "Prisma-like ORM for Django"},
		{Path: "orm/models", Title: "Models", Description: "Define database models"},
		{Path: "orm/queries", Title: "Queries", Description: "Query your database"},
		{Path: "orm/relationships", Title: "Relationships", Description: "Model relationships"},

		// Configuration
		{Path: "configuration", Title: "Configuration", Description: "Configure your Shanks application"},
		{Path: "configuration/env", Title: "Environment Variables", Description: "Manage environment variables"},
		{Path: "configuration/database", Title: "Database Configuration", Description: "Configure database connections"},
		{Path: "configuration/settings", Title: "Settings", Description: "Django settings configuration"},

		// Swagger
		{Path: "swagger", Title: "Swagger/OpenAPI", Description: "Auto-generated API documentation"},

		// Deployment
		{Path: "deployment/generate", Title: "Generate Django", Description: "Convert to standard Django structure"},
		{Path: "deployment/heroku", Title: "Deploy to Heroku", Description: "Deploy your app to Heroku"},
		{Path: "deployment/railway", Title: "Deploy to Railway", Description: "Deploy your app to Railway"},
		{Path: "deployment/docker", Title: "Docker Deployment", Description: "Containerize your application"},

		// Examples
		{Path: "examples", Title: "Examples", Description: "Real-world examples and tutorials"},
		{Path: "examples/blog", Title: "Blog API", Description: "Build a complete blog API"},
		{Path: "examples/ecommerce", Title: "E-commerce API", Description: "Build an e-commerce backend"},
		{Path: "examples/chat", Title: "Real-time Chat", Description: "Build a real-time chat application"},
	}
}
