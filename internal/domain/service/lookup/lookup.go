package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"git.appkode.ru/pub/go/failure"
	"github.com/samber/lo"

	"similar_groups/internal/domain/entity"
	"similar_groups/internal/domain/value"
	"similar_groups/pkg/errcodes"
	"similar_groups/pkg/logx"
	"similar_groups/pkg/lox"
)

// Сообщения для пользователя, форма поиска показывает их как есть.
const (
	MessageMalformedCode = "類似群コードの形式が正しくありません。"
	MessageNotFound      = "該当する区分が見つかりませんでした。"
)

type SimilarGroupRepository interface {
	FindByCode(ctx context.Context, code value.GroupCode) ([]entity.SimilarGroup, error)
}

type Service struct {
	repo   SimilarGroupRepository
	policy value.AnnotationPolicy
}

func NewService(repo SimilarGroupRepository) *Service {
	return &Service{
		repo:   repo,
		policy: value.AnnotateAllPolicy(),
	}
}

func (s *Service) WithAnnotationPolicy(policy value.AnnotationPolicy) *Service {
	s.policy = policy
	return s
}

// Search находит классы для каждого кода из текста запроса.
func (s *Service) Search(ctx context.Context, raw string) (entity.SearchResult, error) {
	codes, err := value.ParseGroupCodes(value.NormalizeInput(raw))
	if err != nil {
		return entity.SearchResult{}, failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseGroupCodes: %w", err),
			failure.WithCode(errcodes.InvalidGroupCode),
			failure.WithDescription(MessageMalformedCode),
		)
	}

	agg := newAggregation(codes)

	for _, code := range lo.Uniq(codes) {
		groups, err := s.repo.FindByCode(ctx, code)
		if err != nil {
			return entity.SearchResult{}, fmt.Errorf("repo.FindByCode: %w", err)
		}

		if len(groups) == 0 {
			logger(ctx).Debug("no similar group found", logx.Stringer(logx.FieldGroupCode, code))
			continue
		}

		for _, group := range groups {
			agg.add(code, group, s.policy.Applies(group.Classification))
		}
	}

	result := agg.result()
	if result.Empty() {
		return entity.SearchResult{}, failure.NewNotFoundError(
			fmt.Sprintf("no classification found for %d codes", len(codes)),
			failure.WithCode(errcodes.ClassificationNotFound),
			failure.WithDescription(MessageNotFound),
		)
	}

	logger(ctx).Debug(
		"similar groups resolved",
		slog.Int("codes", len(codes)),
		slog.Int("classifications", len(result.Classifications)),
		slog.Int("remark-classifications", len(result.RemarkClassifications)),
	)

	return result, nil
}

type codeSet map[value.GroupCode]struct{}

type aggregation struct {
	input          codeSet
	general        map[string]codeSet
	remark         map[string]codeSet
	relatedByLabel map[string]map[value.GroupCode][]value.GroupCode
}

func newAggregation(codes []value.GroupCode) *aggregation {
	input := make(codeSet, len(codes))
	for _, code := range codes {
		input[code] = struct{}{}
	}

	return &aggregation{
		input:          input,
		general:        make(map[string]codeSet),
		remark:         make(map[string]codeSet),
		relatedByLabel: make(map[string]map[value.GroupCode][]value.GroupCode),
	}
}

func (a *aggregation) add(code value.GroupCode, group entity.SimilarGroup, annotate bool) {
	if group.GeneralSimilar {
		addToSet(a.general, group.Classification, code)
	}

	if group.RemarkSimilar {
		addToSet(a.remark, group.Classification, code)
	}

	if !annotate || len(group.RelatedCodes) == 0 {
		return
	}

	matched := lo.Filter(group.RelatedCodes, func(related value.GroupCode, _ int) bool {
		_, ok := a.input[related]
		return ok
	})
	if len(matched) == 0 {
		return
	}

	byCode, ok := a.relatedByLabel[group.Classification]
	if !ok {
		byCode = make(map[value.GroupCode][]value.GroupCode)
		a.relatedByLabel[group.Classification] = byCode
	}

	byCode[code] = lo.Uniq(append(byCode[code], matched...))
}

func addToSet(m map[string]codeSet, classification string, code value.GroupCode) {
	set, ok := m[classification]
	if !ok {
		set = make(codeSet)
		m[classification] = set
	}

	set[code] = struct{}{}
}

func (a *aggregation) result() entity.SearchResult {
	return entity.SearchResult{
		Classifications: details(a.general, func(classification string, code value.GroupCode) string {
			related := a.relatedByLabel[classification][code]
			if len(related) == 0 {
				return code.String()
			}

			return code.String() + " (" + value.JoinGroupCodes(related) + ")"
		}),
		RemarkClassifications: details(a.remark, func(_ string, code value.GroupCode) string {
			return code.String()
		}),
	}
}

func details(m map[string]codeSet, display func(string, value.GroupCode) string) []entity.ClassificationDetail {
	result := lox.MapEntries(m, func(classification string, set codeSet) entity.ClassificationDetail {
		codes := make([]value.GroupCode, 0, len(set))
		for code := range set {
			codes = append(codes, code)
		}

		slices.Sort(codes)

		return entity.ClassificationDetail{
			Classification: classification,
			GroupCodes: lox.Map(codes, func(code value.GroupCode) string {
				return display(classification, code)
			}),
		}
	})

	SortClassifications(result)

	return result
}

// SortClassifications сортирует классы по первому числу в метке, так что
// 第2類 идёт раньше 第10類. Метки без цифр идут в конце в строковом порядке.
func SortClassifications(details []entity.ClassificationDetail) {
	slices.SortFunc(details, func(a, b entity.ClassificationDetail) int {
		return compareLabels(a.Classification, b.Classification)
	})
}

func compareLabels(a, b string) int {
	na, okA := leadingNumber(a)
	nb, okB := leadingNumber(b)

	switch {
	case okA && okB:
		if c := compareNumbers(na, nb); c != 0 {
			return c
		}
	case okA:
		return -1
	case okB:
		return 1
	}

	return strings.Compare(a, b)
}
