package docs

// @title Hybrid Recommendation Viewer API
// @version 1.0
// @description Viewer over precomputed hybrid (CBF+CF) project recommendations with a per-user profile editor
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @schemes http https
