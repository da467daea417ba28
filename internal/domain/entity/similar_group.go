package entity

import "similar_groups/internal/domain/value"

// SimilarGroup строка справочника: код группы в одном классе и группировки,
// в которые он входит.
type SimilarGroup struct {
	GroupCode      value.GroupCode
	Classification string
	GeneralSimilar bool
	RemarkSimilar  bool
	RelatedCodes   []value.GroupCode
}

// SimilarGroupKey уникален в пределах хранилища справочника.
type SimilarGroupKey struct {
	GroupCode      value.GroupCode
	Classification string
}

func (g SimilarGroup) Key() SimilarGroupKey {
	return SimilarGroupKey{
		GroupCode:      g.GroupCode,
		Classification: g.Classification,
	}
}
