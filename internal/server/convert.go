package server

import (
	"similar_groups/internal/domain/entity"
	"similar_groups/pkg/lox"
	"similar_groups/pkg/rest"
)

func newRESTSearchResponse(result entity.SearchResult) rest.SearchResponse {
	return rest.SearchResponse{
		ClassificationDetails: lox.Map(result.Classifications, newRESTClassificationDetail),
		RemarkDetails:         lox.Map(result.RemarkClassifications, newRESTClassificationDetail),
	}
}

func newRESTClassificationDetail(detail entity.ClassificationDetail) rest.ClassificationDetail {
	codes := detail.GroupCodes
	if codes == nil {
		codes = []string{}
	}

	return rest.ClassificationDetail{
		Classification: detail.Classification,
		GroupCodes:     codes,
	}
}
