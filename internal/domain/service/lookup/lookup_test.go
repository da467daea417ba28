package lookup_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"similar_groups/internal/domain/entity"
	"similar_groups/internal/domain/service/lookup"
	"similar_groups/internal/domain/value"
	"similar_groups/pkg/errcodes"
	"similar_groups/pkg/tests"
)

type stubRepository struct {
	groups []entity.SimilarGroup
	calls  []value.GroupCode
	err    error
}

func (s *stubRepository) FindByCode(_ context.Context, code value.GroupCode) ([]entity.SimilarGroup, error) {
	s.calls = append(s.calls, code)

	if s.err != nil {
		return nil, s.err
	}

	var result []entity.SimilarGroup

	for _, g := range s.groups {
		if g.GroupCode == code {
			result = append(result, g)
		}
	}

	return result, nil
}

func codes(cc ...string) []value.GroupCode {
	result := make([]value.GroupCode, len(cc))
	for i, c := range cc {
		result[i] = value.GroupCode(c)
	}

	return result
}

func TestServiceSearch(t *testing.T) {
	groups := []entity.SimilarGroup{
		{GroupCode: "09A01", Classification: "第9類", GeneralSimilar: true},
		{GroupCode: "09A01", Classification: "第10類", GeneralSimilar: true, RemarkSimilar: true},
		{GroupCode: "01A01", Classification: "第2類", GeneralSimilar: true},
		{GroupCode: "01A01", Classification: "第1類", GeneralSimilar: true, RelatedCodes: codes("09A01", "35K01")},
		{GroupCode: "11A01", Classification: "備考", RemarkSimilar: true},
		{GroupCode: "11A02", Classification: "第11類", RemarkSimilar: true},
	}

	testCases := []struct {
		name     string
		policy   value.AnnotationPolicy
		input    string
		expected entity.SearchResult
	}{
		{
			name:   "Duplicate token is aggregated once",
			policy: value.AnnotateAllPolicy(),
			input:  "09A01 09A01",
			expected: entity.SearchResult{
				Classifications: []entity.ClassificationDetail{
					{Classification: "第9類", GroupCodes: []string{"09A01"}},
					{Classification: "第10類", GroupCodes: []string{"09A01"}},
				},
				RemarkClassifications: []entity.ClassificationDetail{
					{Classification: "第10類", GroupCodes: []string{"09A01"}},
				},
			},
		},
		{
			name:   "Whitespace, lower case and full width input",
			policy: value.AnnotateAllPolicy(),
			input:  "\t０１ａ０１ \n\n 11a02 ",
			expected: entity.SearchResult{
				Classifications: []entity.ClassificationDetail{
					{Classification: "第1類", GroupCodes: []string{"01A01"}},
					{Classification: "第2類", GroupCodes: []string{"01A01"}},
				},
				RemarkClassifications: []entity.ClassificationDetail{
					{Classification: "第11類", GroupCodes: []string{"11A02"}},
				},
			},
		},
		{
			name:   "Related codes present in request are annotated",
			policy: value.AnnotateAllPolicy(),
			input:  "01A01 09A01 99Z99",
			expected: entity.SearchResult{
				Classifications: []entity.ClassificationDetail{
					{Classification: "第1類", GroupCodes: []string{"01A01 (09A01)"}},
					{Classification: "第2類", GroupCodes: []string{"01A01"}},
					{Classification: "第9類", GroupCodes: []string{"09A01"}},
					{Classification: "第10類", GroupCodes: []string{"09A01"}},
				},
				RemarkClassifications: []entity.ClassificationDetail{
					{Classification: "第10類", GroupCodes: []string{"09A01"}},
				},
			},
		},
		{
			name:   "Annotation disabled",
			policy: value.AnnotateNonePolicy(),
			input:  "01A01 09A01",
			expected: entity.SearchResult{
				Classifications: []entity.ClassificationDetail{
					{Classification: "第1類", GroupCodes: []string{"01A01"}},
					{Classification: "第2類", GroupCodes: []string{"01A01"}},
					{Classification: "第9類", GroupCodes: []string{"09A01"}},
					{Classification: "第10類", GroupCodes: []string{"09A01"}},
				},
				RemarkClassifications: []entity.ClassificationDetail{
					{Classification: "第10類", GroupCodes: []string{"09A01"}},
				},
			},
		},
		{
			name:   "Annotation inside allowlist",
			policy: value.AnnotateOnlyPolicy("第1類"),
			input:  "01A01 09A01",
			expected: entity.SearchResult{
				Classifications: []entity.ClassificationDetail{
					{Classification: "第1類", GroupCodes: []string{"01A01 (09A01)"}},
					{Classification: "第2類", GroupCodes: []string{"01A01"}},
					{Classification: "第9類", GroupCodes: []string{"09A01"}},
					{Classification: "第10類", GroupCodes: []string{"09A01"}},
				},
				RemarkClassifications: []entity.ClassificationDetail{
					{Classification: "第10類", GroupCodes: []string{"09A01"}},
				},
			},
		},
		{
			name:   "Annotation outside allowlist",
			policy: value.AnnotateOnlyPolicy("第2類"),
			input:  "01A01 09A01",
			expected: entity.SearchResult{
				Classifications: []entity.ClassificationDetail{
					{Classification: "第1類", GroupCodes: []string{"01A01"}},
					{Classification: "第2類", GroupCodes: []string{"01A01"}},
					{Classification: "第9類", GroupCodes: []string{"09A01"}},
					{Classification: "第10類", GroupCodes: []string{"09A01"}},
				},
				RemarkClassifications: []entity.ClassificationDetail{
					{Classification: "第10類", GroupCodes: []string{"09A01"}},
				},
			},
		},
		{
			name:   "Remark only match and label without digits last",
			policy: value.AnnotateAllPolicy(),
			input:  "11A01 11A02",
			expected: entity.SearchResult{
				Classifications: []entity.ClassificationDetail{},
				RemarkClassifications: []entity.ClassificationDetail{
					{Classification: "第11類", GroupCodes: []string{"11A02"}},
					{Classification: "備考", GroupCodes: []string{"11A01"}},
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			svc := lookup.NewService(&stubRepository{groups: groups}).WithAnnotationPolicy(tc.policy)

			result, err := svc.Search(context.Background(), tc.input)
			rq.NoError(err)
			rq.Equal(tc.expected, result)
		})
	}
}

func TestServiceSearchCodesSorted(t *testing.T) {
	rq := require.New(t)

	repo := &stubRepository{groups: []entity.SimilarGroup{
		{GroupCode: "09B02", Classification: "第9類", GeneralSimilar: true},
		{GroupCode: "09A01", Classification: "第9類", GeneralSimilar: true},
		{GroupCode: "09A03", Classification: "第9類", GeneralSimilar: true},
	}}

	result, err := lookup.NewService(repo).Search(context.Background(), "09B02 09A03 09A01")
	rq.NoError(err)
	rq.Equal([]string{"09A01", "09A03", "09B02"}, result.Classifications[0].GroupCodes)
}

func TestServiceSearchMalformedCode(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "One leading digit", input: "1A01"},
		{name: "Second token malformed", input: "09A01 09AA1"},
		{name: "Extra characters", input: "09A011"},
		{name: "Symbol instead of letter", input: "09-01"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			repo := &stubRepository{}

			_, err := lookup.NewService(repo).Search(context.Background(), tc.input)
			rq.Error(err)
			rq.True(failure.IsInvalidArgumentError(err))
			rq.Equal(errcodes.InvalidGroupCode, failure.Code(err))
			rq.Empty(repo.calls)
		})
	}
}

func TestServiceSearchRandomCodes(t *testing.T) {
	rq := require.New(t)

	randomizer := tests.NewRandomizer()

	for range 100 {
		valid := []string{randomizer.GroupCode(), randomizer.GroupCode()}

		repo := &stubRepository{}

		_, err := lookup.NewService(repo).Search(context.Background(), strings.Join(valid, " "))
		rq.True(failure.IsNotFoundError(err), "input %v", valid)
		rq.NotEmpty(repo.calls)

		mixed := append(valid, randomizer.MalformedGroupCode())
		if randomizer.Bool() {
			mixed[0], mixed[2] = mixed[2], mixed[0]
		}

		repo = &stubRepository{}

		_, err = lookup.NewService(repo).Search(context.Background(), strings.Join(mixed, " "))
		rq.True(failure.IsInvalidArgumentError(err), "input %v", mixed)
		rq.Empty(repo.calls)
	}
}

func TestServiceSearchNotFound(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "Unknown code", input: "11A01"},
		{name: "Empty input", input: "   "},
		{name: "Only classification flags unset", input: "20A01"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			repo := &stubRepository{groups: []entity.SimilarGroup{
				{GroupCode: "20A01", Classification: "第20類"},
			}}

			_, err := lookup.NewService(repo).Search(context.Background(), tc.input)
			rq.Error(err)
			rq.True(failure.IsNotFoundError(err))
			rq.Equal(errcodes.ClassificationNotFound, failure.Code(err))
		})
	}
}

func TestServiceSearchRepositoryError(t *testing.T) {
	rq := require.New(t)

	errBoom := errors.New("boom")

	_, err := lookup.NewService(&stubRepository{err: errBoom}).Search(context.Background(), "09A01")
	rq.ErrorIs(err, errBoom)
	rq.False(failure.IsNotFoundError(err))
}

func TestServiceSearchLooksUpDistinctCodes(t *testing.T) {
	rq := require.New(t)

	repo := &stubRepository{groups: []entity.SimilarGroup{
		{GroupCode: "09A01", Classification: "第9類", GeneralSimilar: true},
	}}

	_, err := lookup.NewService(repo).Search(context.Background(), "09A01 09a01 ０９Ａ０１")
	rq.NoError(err)
	rq.Equal(codes("09A01"), repo.calls)
}

func TestSortClassifications(t *testing.T) {
	rq := require.New(t)

	details := []entity.ClassificationDetail{
		{Classification: "備考"},
		{Classification: "第10類"},
		{Classification: "第2類"},
		{Classification: "その他"},
		{Classification: "2類"},
		{Classification: "第99999999999999999999類"},
		{Classification: "第010類"},
	}

	lookup.SortClassifications(details)

	labels := make([]string, len(details))
	for i, d := range details {
		labels[i] = d.Classification
	}

	rq.Equal([]string{"2類", "第2類", "第010類", "第10類", "第99999999999999999999類", "その他", "備考"}, labels)
}
