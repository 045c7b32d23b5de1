package workbench

// Converter transforms HTML content into Markdown. Used by document loaders
// so that HTML files index as readable text rather than markup.
type Converter interface {
	Convert(html string) (string, error)
}
