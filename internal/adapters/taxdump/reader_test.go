package taxdump

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lineagetools/taxlin/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nodesFixture = "1\t|\t1\t|\tno rank\t|\t\t|\n" +
	"2\t|\t131567\t|\tdomain\t|\t\t|\n" +
	"131567\t|\t1\t|\tno rank\t|\t\t|\n" +
	"562\t|\t561\t|\tspecies\t|\t\t|\n" +
	"561\t|\t2\t|\tgenus\t|\t\t|\n"

const namesFixture = "1\t|\troot\t|\t\t|\tscientific name\t|\n" +
	"2\t|\tBacteria\t|\tBacteria <bacteria>\t|\tscientific name\t|\n" +
	"2\t|\teubacteria\t|\t\t|\tgenbank common name\t|\n" +
	"131567\t|\tcellular organisms\t|\t\t|\tscientific name\t|\n" +
	"561\t|\tEscherichia\t|\t\t|\tscientific name\t|\n" +
	"562\t|\tEscherichia coli\t|\t\t|\tscientific name\t|\n" +
	"562\t|\tE. coli\t|\t\t|\tcommon name\t|\n"

func TestSplitDumpLine(t *testing.T) {
	fields := splitDumpLine("562\t|\t561\t|\tspecies\t|\t\t|")
	require.Len(t, fields, 4)
	assert.Equal(t, "562", fields[0])
	assert.Equal(t, "561", fields[1])
	assert.Equal(t, "species", fields[2])
}

func TestParseNodes(t *testing.T) {
	nodes, err := parseNodes(context.Background(), strings.NewReader(nodesFixture))
	require.NoError(t, err)

	require.Len(t, nodes, 5)
	assert.Equal(t, domain.TaxonID(561), nodes[562].parent)
	assert.Equal(t, "species", nodes[562].rank)
	assert.Equal(t, domain.TaxonID(1), nodes[1].parent, "root is self-parented")
}

func TestParseNodes_Malformed(t *testing.T) {
	_, err := parseNodes(context.Background(), strings.NewReader("562\t|\t561\t|\n"))
	assert.ErrorContains(t, err, domain.ErrDumpParseFailed.Error())
}

func TestParseNames_KeepsScientificNamesOnly(t *testing.T) {
	names, err := parseNames(context.Background(), strings.NewReader(namesFixture))
	require.NoError(t, err)

	require.Len(t, names, 5)
	assert.Equal(t, "Escherichia coli", names[562])
	assert.Equal(t, "Bacteria", names[2], "common-name rows must not overwrite scientific names")
}

func TestOpenDump_UnsupportedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxdump.zip")
	require.NoError(t, os.WriteFile(path, []byte("not a dump"), 0o600))

	_, err := openDump(path)
	assert.ErrorContains(t, err, domain.ErrDumpOpenFailed.Error())
}

func TestOpenDump_DirMissingNames(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nodes.dmp"), []byte(nodesFixture), 0o600))

	_, err := openDump(dir)
	assert.ErrorContains(t, err, domain.ErrDumpIncomplete.Error())
}
