package entity

// ClassificationDetail коды для отображения, найденные в одном классе.
type ClassificationDetail struct {
	Classification string
	GroupCodes     []string
}

type SearchResult struct {
	Classifications       []ClassificationDetail
	RemarkClassifications []ClassificationDetail
}

func (r SearchResult) Empty() bool {
	return len(r.Classifications) == 0 && len(r.RemarkClassifications) == 0
}
