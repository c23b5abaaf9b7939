// internal/api/handlers/page.go

package handlers

import (
	"html/template"

	"github.com/soumik-d/magicbricks-scraper/internal/domain"
)

type pageData struct {
	URL     string
	Warning string
	Error   string
	Columns []string
	Records []domain.Property
	HasData bool
}

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<title>MagicBricks Web Scraper</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 2em auto; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
.warning { color: #b45309; }
.error { color: #b91c1c; }
</style>
</head>
<body>
<h1>MagicBricks Web Scraper</h1>
<form method="POST" action="/scrape">
<input type="text" name="url" size="60" placeholder="Enter URL of the real estate page" value="{{.URL}}">
<button type="submit">Get Data</button>
</form>
{{if .Warning}}<p class="warning">{{.Warning}}</p>{{end}}
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{if .Records}}
<h2>Scraped Property Data</h2>
<table>
<tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
{{range .Records}}
<tr><td>{{.Location}}</td><td>{{.PropertyType}}</td><td>{{.Price}}</td><td>{{.Size}}</td><td>{{.Bedrooms}}</td><td>{{.SoldBy}}</td></tr>
{{end}}
</table>
{{end}}
{{if .HasData}}<p><a href="/download">Download data as Excel</a></p>{{end}}
</body>
</html>
`))
