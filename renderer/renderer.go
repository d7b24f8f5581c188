// Package renderer renders omnifolio data as markdown.
//
// Each report is a view struct (built from a Bundle, or decoded from json)
// executed against embedded text/template files.
// A template named "x_y.md" is a partial of the "x.md" assembly.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// RenderAccounts renders the list of accounts to a markdown string.
func RenderAccounts(a *Accounts) string {
	return renderTemplate("accounts", "accounts.md", nil, a)
}

// RenderAssets renders the list of assets to a markdown string.
func RenderAssets(a *Assets) string {
	return renderTemplate("assets", "assets.md", nil, a)
}

// RenderTransactions renders the transactions of an account to a markdown string.
func RenderTransactions(t *AccountTransactions) string {
	return renderTemplate("transactions", "transactions.md", nil, t)
}

// RenderPrices renders the market data of an asset to a markdown string.
func RenderPrices(p *AssetPrices) string {
	partials := map[string]string{
		"prices_timeseries": "prices_timeseries.md",
		"prices_events":     "prices_events.md",
	}
	return renderTemplate("prices", "prices.md", partials, p)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
