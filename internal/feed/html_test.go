package feed

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHTML = `<html><body>
<h1>Leaderboard</h1>
<table class="leaderboard">
  <thead>
    <tr><th>POS</th><th>PLAYER</th><th>SCORE</th><th>R1</th><th>R2</th><th>R3</th><th>R4</th><th>TOT</th></tr>
  </thead>
  <tbody>
    <tr><td>1</td><td> Scottie Scheffler </td><td>-12</td><td>67</td><td>66</td><td>68</td><td>67</td><td>268</td></tr>
    <tr><td>T2</td><td>Rory McIlroy</td><td>-9</td><td>69</td><td>68</td><td>70</td><td>68</td><td>275</td></tr>
    <tr><td>CUT</td><td>Max Homa</td><td>CUT</td><td>74</td><td>75</td><td>--</td><td>--</td><td>149</td></tr>
  </tbody>
</table>
<table><tr><td>footer</td></tr></table>
</body></html>`

func TestParseHTMLTable(t *testing.T) {
	rows, err := ParseHTMLTable(strings.NewReader(sampleHTML))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Scottie Scheffler", rows[0]["PLAYER"])
	assert.Equal(t, "-12", rows[0]["SCORE"])
	assert.Equal(t, "T2", rows[1]["POS"])
	assert.Equal(t, "--", rows[2]["R3"])
}

func TestParseHTMLTable_HeaderInFirstRow(t *testing.T) {
	page := `<table>
		<tr><td>Name</td><td>RelativeScore</td><td></td></tr>
		<tr><td>Jon Rahm</td><td>+2</td><td>ignored</td></tr>
		<tr></tr>
		<tr><td>Viktor Hovland</td></tr>
	</table>`

	rows, err := ParseHTMLTable(strings.NewReader(page))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Jon Rahm", rows[0]["Name"])
	assert.Equal(t, "+2", rows[0]["RelativeScore"])
	assert.Len(t, rows[0], 2)
	assert.Equal(t, "Viktor Hovland", rows[1]["Name"])
	_, hasScore := rows[1]["RelativeScore"]
	assert.False(t, hasScore)
}

func TestParseHTMLTable_NoTable(t *testing.T) {
	_, err := ParseHTMLTable(strings.NewReader("<html><body><p>Tournament starts Thursday</p></body></html>"))
	assert.True(t, errors.Is(err, ErrNoTable), "got %v", err)
}
