package crawl

import "fmt"

// FormatProgress renders a progress event as a console line.
func FormatProgress(e ProgressEvent) string {
	switch e.Type {
	case ProgressLinksCollected:
		return fmt.Sprintf("Collected %d links. Fetching headings...", e.Total)
	case ProgressPageDone:
		if e.Completed >= e.Total {
			return fmt.Sprintf("Progress: %d / %d. Done!", e.Completed, e.Total)
		}
		return fmt.Sprintf("Progress: %d / %d. Next: %s", e.Completed, e.Total, e.Next)
	default:
		return ""
	}
}
