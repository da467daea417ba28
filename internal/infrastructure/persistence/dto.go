package persistence

import (
	"fmt"

	"similar_groups/internal/domain/entity"
	"similar_groups/internal/domain/value"
	"similar_groups/pkg/lox"
)

// similarGroupSchema строка таблицы similar_groups. Она же кладётся в кэш,
// поэтому у полей есть json теги.
type similarGroupSchema struct {
	GroupCode      string `db:"group_code"      json:"groupCode"`
	Classification string `db:"classification"  json:"classification"`
	GeneralSimilar bool   `db:"general_similar" json:"generalSimilar"`
	RemarkSimilar  bool   `db:"remark_similar"  json:"remarkSimilar"`
	RelatedCodes   string `db:"related_codes"   json:"relatedCodes,omitempty"`
}

func fromSimilarGroup(g entity.SimilarGroup) similarGroupSchema {
	return similarGroupSchema{
		GroupCode:      g.GroupCode.String(),
		Classification: g.Classification,
		GeneralSimilar: g.GeneralSimilar,
		RemarkSimilar:  g.RemarkSimilar,
		RelatedCodes:   value.JoinGroupCodes(g.RelatedCodes),
	}
}

func (s similarGroupSchema) toDomain() (entity.SimilarGroup, error) {
	code, err := value.ParseGroupCode(s.GroupCode)
	if err != nil {
		return entity.SimilarGroup{}, fmt.Errorf("value.ParseGroupCode: %w", err)
	}

	related, err := value.ParseRelatedCodes(s.RelatedCodes)
	if err != nil {
		return entity.SimilarGroup{}, fmt.Errorf("value.ParseRelatedCodes: %w", err)
	}

	return entity.SimilarGroup{
		GroupCode:      code,
		Classification: s.Classification,
		GeneralSimilar: s.GeneralSimilar,
		RemarkSimilar:  s.RemarkSimilar,
		RelatedCodes:   related,
	}, nil
}

func toDomainList(schemas []similarGroupSchema) ([]entity.SimilarGroup, error) {
	return lox.MapErr(schemas, similarGroupSchema.toDomain)
}
