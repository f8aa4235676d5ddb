package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

// defaultLimit caps how many hits a query returns. A personal blog never
// has enough posts to page through.
const defaultLimit = 50

// Search returns the IDs of published posts matching the query, best
// match first. An empty query matches nothing.
func (s *Index) Search(ctx context.Context, queryString string) ([]string, error) {
	queryString = strings.TrimSpace(queryString)
	if queryString == "" {
		return []string{}, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	searchRequest := bleve.NewSearchRequestOptions(buildPostQuery(queryString), defaultLimit, 0, false)

	searchResult, err := s.index.SearchInContext(ctx, searchRequest)
	if err != nil {
		return nil, fmt.Errorf("execute search: %w", err)
	}

	ids := make([]string, 0, len(searchResult.Hits))
	for _, hit := range searchResult.Hits {
		ids = append(ids, hit.ID)
	}

	return ids, nil
}

// buildPostQuery combines title, content, and tag matches with fuzzy and
// prefix variants for typo tolerance and as-you-type search.
func buildPostQuery(queryString string) query.Query {
	queries := []query.Query{}

	titleMatch := bleve.NewMatchQuery(queryString)
	titleMatch.SetField("title")
	titleMatch.SetBoost(3.0)
	queries = append(queries, titleMatch)

	contentMatch := bleve.NewMatchQuery(queryString)
	contentMatch.SetField("content")
	queries = append(queries, contentMatch)

	tagMatch := bleve.NewTermQuery(strings.ToLower(queryString))
	tagMatch.SetField("tags")
	tagMatch.SetBoost(2.0)
	queries = append(queries, tagMatch)

	// Typo tolerance on the title
	fuzzyQuery := bleve.NewFuzzyQuery(queryString)
	fuzzyQuery.SetFuzziness(1)
	fuzzyQuery.SetField("title")
	fuzzyQuery.SetBoost(0.8)
	queries = append(queries, fuzzyQuery)

	// Prefix query for autocomplete (minimum 2 chars)
	if len(queryString) >= 2 {
		prefixQuery := bleve.NewPrefixQuery(strings.ToLower(queryString))
		prefixQuery.SetField("title")
		prefixQuery.SetBoost(0.5)
		queries = append(queries, prefixQuery)
	}

	return bleve.NewDisjunctionQuery(queries...)
}
