package main

import (
	"time"

	"github.com/fwojciec/docqa"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Output  string        `short:"o" default:"output.xlsx" help:"Spreadsheet file to write (overwritten)"`
	Sheet   string        `default:"mySheet" help:"Worksheet name"`
	Static  bool          `help:"Fetch pages over plain HTTP instead of a headless browser"`
	Verbose bool          `short:"v" help:"Log every page visit and the final write"`
	Rate    float64       `default:"0" help:"Maximum page loads per second per domain (0 = unlimited)"`
	Timeout time.Duration `default:"0s" help:"Per-page load timeout (0 = wait indefinitely)"`
	Width   int           `default:"1920" help:"Browser viewport width"`
	Height  int           `default:"980" help:"Browser viewport height"`
	Sidebar string        `default:".sidebar-menu" help:"CSS selector of the navigation sidebar"`
	Title   string        `default:".page-title" help:"CSS selector of the article title"`
	Body    string        `default:".article-page-container" help:"CSS selector of the article body"`
}

// Selectors returns the page selectors configured on the command line.
func (c *CLI) Selectors() docqa.Selectors {
	return docqa.Selectors{
		Sidebar: c.Sidebar,
		Title:   c.Title,
		Body:    c.Body,
	}
}
