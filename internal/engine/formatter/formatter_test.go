package formatter_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/lineagetools/taxlin/internal/adapters/cache"
	"github.com/lineagetools/taxlin/internal/core/domain"
	"github.com/lineagetools/taxlin/internal/core/ports/mocks"
	"github.com/lineagetools/taxlin/internal/engine/formatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fullChain is an ancestor chain carrying all seven recognized ranks plus
// unranked nodes, the way a real NCBI chain interleaves them.
var fullChain = []domain.TaxonID{1, 131567, 2, 1224, 1236, 91347, 543, 561, 562}

func fullNames() map[domain.TaxonID]string {
	return map[domain.TaxonID]string{
		1:      "root",
		131567: "cellular organisms",
		2:      "Bacteria",
		1224:   "Pseudomonadota",
		1236:   "Gammaproteobacteria",
		91347:  "Enterobacterales",
		543:    "Enterobacteriaceae",
		561:    "Escherichia",
		562:    "Escherichia coli",
	}
}

func fullRanks() map[domain.TaxonID]string {
	return map[domain.TaxonID]string{
		1:      "no rank",
		131567: "no rank",
		2:      "domain",
		1224:   "phylum",
		1236:   "class",
		91347:  "order",
		543:    "family",
		561:    "genus",
		562:    "species",
	}
}

func setupFormatterTest(t *testing.T) (*formatter.Formatter, *mocks.MockTaxonomy, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)

	tax := mocks.NewMockTaxonomy(ctrl)
	tax.EXPECT().Ref().Return("test.db").AnyTimes()

	log := mocks.NewMockLogger(ctrl)

	f := formatter.New(tax, cache.NewMemory(0), log)
	return f, tax, log
}

func expectChain(tax *mocks.MockTaxonomy, id domain.TaxonID, chain []domain.TaxonID, names map[domain.TaxonID]string, ranks map[domain.TaxonID]string) {
	tax.EXPECT().Lineage(gomock.Any(), id).Return(chain, nil)
	tax.EXPECT().Names(gomock.Any(), chain).Return(names, nil)
	tax.EXPECT().Ranks(gomock.Any(), chain).Return(ranks, nil)
}

func TestFormat_SevenRanksInOrder(t *testing.T) {
	f, tax, _ := setupFormatterTest(t)
	expectChain(tax, 562, fullChain, fullNames(), fullRanks())

	res := f.Format(context.Background(), 562)
	require.True(t, res.OK())

	want := "d__Bacteria|p__Pseudomonadota|c__Gammaproteobacteria|o__Enterobacterales|f__Enterobacteriaceae|g__Escherichia|s__Escherichia_coli"
	assert.Equal(t, want, res.Lineage)

	tokens := regexp.MustCompile(`\|`).Split(res.Lineage, -1)
	require.Len(t, tokens, 7)
	tokenRe := regexp.MustCompile(`^[dpcofgs]__\S+$`)
	for _, tok := range tokens {
		assert.Regexp(t, tokenRe, tok)
	}
}

func TestFormat_SpacesBecomeUnderscores(t *testing.T) {
	f, tax, _ := setupFormatterTest(t)
	chain := []domain.TaxonID{562}
	expectChain(tax, 562, chain,
		map[domain.TaxonID]string{562: "Escherichia coli"},
		map[domain.TaxonID]string{562: "species"},
	)

	res := f.Format(context.Background(), 562)
	require.True(t, res.OK())
	assert.Equal(t, "s__Escherichia_coli", res.Lineage)
}

func TestFormat_NoRecognizedRanksIsEmptyNotFailure(t *testing.T) {
	f, tax, _ := setupFormatterTest(t)
	chain := []domain.TaxonID{1, 131567}
	expectChain(tax, 131567, chain,
		map[domain.TaxonID]string{1: "root", 131567: "cellular organisms"},
		map[domain.TaxonID]string{1: "no rank", 131567: "no rank"},
	)

	res := f.Format(context.Background(), 131567)
	require.True(t, res.OK())
	assert.Empty(t, res.Lineage)
}

func TestFormat_UnrecognizedRanksAreSkippedSilently(t *testing.T) {
	f, tax, _ := setupFormatterTest(t)
	chain := []domain.TaxonID{2, 1224, 91061}
	expectChain(tax, 91061, chain,
		map[domain.TaxonID]string{2: "Bacteria", 1224: "Pseudomonadota", 91061: "Bacilli"},
		map[domain.TaxonID]string{2: "domain", 1224: "phylum", 91061: "subclass"},
	)

	res := f.Format(context.Background(), 91061)
	require.True(t, res.OK())
	assert.Equal(t, "d__Bacteria|p__Pseudomonadota", res.Lineage)
}

func TestFormat_CacheHitSkipsLookup(t *testing.T) {
	f, tax, _ := setupFormatterTest(t)
	// Strict Times(1): the second Format call must not touch the taxonomy.
	tax.EXPECT().Lineage(gomock.Any(), domain.TaxonID(562)).Return(fullChain, nil).Times(1)
	tax.EXPECT().Names(gomock.Any(), fullChain).Return(fullNames(), nil).Times(1)
	tax.EXPECT().Ranks(gomock.Any(), fullChain).Return(fullRanks(), nil).Times(1)

	first := f.Format(context.Background(), 562)
	second := f.Format(context.Background(), 562)

	require.True(t, first.OK())
	assert.Equal(t, first.Lineage, second.Lineage)
}

func TestFormat_FailureIsCachedToo(t *testing.T) {
	f, tax, log := setupFormatterTest(t)
	tax.EXPECT().Lineage(gomock.Any(), domain.TaxonID(-1)).
		Return(nil, domain.ErrUnknownTaxon).Times(1)
	// Logged once with the offending id; the cached replay stays silent.
	log.EXPECT().Error(gomock.Any()).Times(1)

	first := f.Format(context.Background(), -1)
	second := f.Format(context.Background(), -1)

	require.False(t, first.OK())
	require.False(t, second.OK())
	assert.ErrorIs(t, first.Err, domain.ErrUnknownTaxon)
	assert.ErrorIs(t, second.Err, domain.ErrUnknownTaxon)
}

func TestFormat_MissingNameForRecognizedRankFails(t *testing.T) {
	f, tax, log := setupFormatterTest(t)
	log.EXPECT().Error(gomock.Any()).Times(1)
	chain := []domain.TaxonID{561, 562}
	expectChain(tax, 562, chain,
		map[domain.TaxonID]string{561: "Escherichia"},
		map[domain.TaxonID]string{561: "genus", 562: "species"},
	)

	res := f.Format(context.Background(), 562)
	require.False(t, res.OK())
	assert.ErrorIs(t, res.Err, domain.ErrNameMissing)
}

func TestFormat_CacheKeyIncludesDatabaseRef(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	shared := cache.NewMemory(0)

	chain := []domain.TaxonID{562}
	ranks := map[domain.TaxonID]string{562: "species"}

	taxA := mocks.NewMockTaxonomy(ctrl)
	taxA.EXPECT().Ref().Return("a.db").AnyTimes()
	taxA.EXPECT().Lineage(gomock.Any(), domain.TaxonID(562)).Return(chain, nil).Times(1)
	taxA.EXPECT().Names(gomock.Any(), chain).Return(map[domain.TaxonID]string{562: "Escherichia coli"}, nil).Times(1)
	taxA.EXPECT().Ranks(gomock.Any(), chain).Return(ranks, nil).Times(1)

	taxB := mocks.NewMockTaxonomy(ctrl)
	taxB.EXPECT().Ref().Return("b.db").AnyTimes()
	taxB.EXPECT().Lineage(gomock.Any(), domain.TaxonID(562)).Return(chain, nil).Times(1)
	taxB.EXPECT().Names(gomock.Any(), chain).Return(map[domain.TaxonID]string{562: "Shigella flexneri"}, nil).Times(1)
	taxB.EXPECT().Ranks(gomock.Any(), chain).Return(ranks, nil).Times(1)

	resA := formatter.New(taxA, shared, log).Format(context.Background(), 562)
	resB := formatter.New(taxB, shared, log).Format(context.Background(), 562)

	require.True(t, resA.OK())
	require.True(t, resB.OK())
	assert.Equal(t, "s__Escherichia_coli", resA.Lineage)
	assert.Equal(t, "s__Shigella_flexneri", resB.Lineage)
}

func TestFormatBatch_FailureIsolation(t *testing.T) {
	f, tax, log := setupFormatterTest(t)
	log.EXPECT().Error(gomock.Any()).Times(1)

	humanChain := []domain.TaxonID{9606}
	mouseChain := []domain.TaxonID{10090}
	expectChain(tax, 9606, humanChain,
		map[domain.TaxonID]string{9606: "Homo sapiens"},
		map[domain.TaxonID]string{9606: "species"},
	)
	tax.EXPECT().Lineage(gomock.Any(), domain.TaxonID(-1)).Return(nil, domain.ErrUnknownTaxon)
	expectChain(tax, 10090, mouseChain,
		map[domain.TaxonID]string{10090: "Mus musculus"},
		map[domain.TaxonID]string{10090: "species"},
	)

	out := f.FormatBatch(context.Background(), []domain.TaxonID{9606, -1, 10090})

	require.Len(t, out, 3)
	assert.Equal(t, "s__Homo_sapiens", out[9606].Lineage)
	assert.Equal(t, "s__Mus_musculus", out[10090].Lineage)
	require.False(t, out[-1].OK())
	assert.ErrorIs(t, out[-1].Err, domain.ErrUnknownTaxon)
}

func TestFormatBatch_DuplicatesCollapseToOneKey(t *testing.T) {
	f, tax, _ := setupFormatterTest(t)
	chain := []domain.TaxonID{9606}
	names := map[domain.TaxonID]string{9606: "Homo sapiens"}
	ranks := map[domain.TaxonID]string{9606: "species"}
	// The batch loop resolves each occurrence; writes are identical.
	tax.EXPECT().Lineage(gomock.Any(), domain.TaxonID(9606)).Return(chain, nil).Times(2)
	tax.EXPECT().Names(gomock.Any(), chain).Return(names, nil).Times(2)
	tax.EXPECT().Ranks(gomock.Any(), chain).Return(ranks, nil).Times(2)

	out := f.FormatBatch(context.Background(), []domain.TaxonID{9606, 9606})

	require.Len(t, out, 1)
	assert.Equal(t, "s__Homo_sapiens", out[9606].Lineage)
}

func TestFormat_MatchesFormatBatch(t *testing.T) {
	f, tax, _ := setupFormatterTest(t)
	expectChain(tax, 562, fullChain, fullNames(), fullRanks())
	expectChain(tax, 562, fullChain, fullNames(), fullRanks())

	single := f.Format(context.Background(), 562)
	batch := f.FormatBatch(context.Background(), []domain.TaxonID{562})

	require.True(t, single.OK())
	require.True(t, batch[562].OK())
	assert.Equal(t, single.Lineage, batch[562].Lineage)
}
