package main

import "github.com/videochef/recipe-api/cmd"

// @title           Recipe Extraction API
// @version         1.0.0
// @description     Extracts structured bilingual recipes from social media cooking videos
// @contact.name    API Support
// @contact.url     https://github.com/videochef/recipe-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer token issued by the identity provider
func main() {
	cmd.Execute()
}
