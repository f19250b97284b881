package dto

import "fyyur/internal/listing"

// SearchForm for POST /venues/search and POST /artists/search
type SearchForm struct {
	SearchTerm string `form:"search_term" json:"search_term"`
}

type SearchResponse struct {
	Count int               `json:"count"`
	Data  []listing.Summary `json:"data"`
}

func NewSearchResponse(data []listing.Summary) SearchResponse {
	return SearchResponse{Count: len(data), Data: data}
}
