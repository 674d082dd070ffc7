package models

type SearchItem struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"The Musical Hop"`
}

// SearchResult is the search page payload.
type SearchResult struct {
	Count int          `json:"count" example:"1"`
	Data  []SearchItem `json:"data"`
}

func NewSearchResult(items []SearchItem) *SearchResult {
	if items == nil {
		items = []SearchItem{}
	}
	return &SearchResult{
		Count: len(items),
		Data:  items,
	}
}
