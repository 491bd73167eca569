package domain

// ExtractedDocument is the text pulled out of a fetched PDF, bounded to the
// page range actually used. It is created once by the extractor and never
// mutated afterwards.
type ExtractedDocument struct {
	Text      string `json:"text"`
	MinPage   int    `json:"min_page"`
	MaxPage   int    `json:"max_page"`
	SourceURL string `json:"source_url"`
}

// PageCount returns the number of pages covered by the extraction.
func (d *ExtractedDocument) PageCount() int {
	if d.MaxPage < d.MinPage {
		return 0
	}
	return d.MaxPage - d.MinPage + 1
}
