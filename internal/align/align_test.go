package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wasade/pairalign/internal/sequence"
	"github.com/wasade/pairalign/internal/submat"
)

func mustProfile(t testing.TB, rows ...string) *sequence.Profile {
	t.Helper()

	seqs := make([]*sequence.Sequence, len(rows))
	for i, r := range rows {
		seq, err := sequence.New(r)
		require.NoError(t, err)
		seqs[i] = seq
	}

	p, err := sequence.NewProfile(seqs...)
	require.NoError(t, err)
	return p
}

func scoreRows(sm *ScoreMatrix) [][]float64 {
	rows := make([][]float64, sm.Rows())
	for i := range rows {
		rows[i] = make([]float64, sm.Cols())
		for j := range rows[i] {
			rows[i][j] = sm.At(i, j)
		}
	}
	return rows
}

func moveRows(tm *TracebackMatrix) [][]Move {
	rows := make([][]Move, tm.Rows())
	for i := range rows {
		rows[i] = make([]Move, tm.Cols())
		for j := range rows[i] {
			rows[i][j] = tm.At(i, j)
		}
	}
	return rows
}

func TestFirstLargest(t *testing.T) {
	t.Run("strictly largest wins regardless of position", func(t *testing.T) {
		got := firstLargest(
			scoredMove{5, Left},
			scoredMove{6, Up},
			scoredMove{5, Diagonal},
			scoredMove{7, End},
		)
		assert.Equal(t, scoredMove{7, End}, got)
	})

	t.Run("first candidate wins exact ties", func(t *testing.T) {
		got := firstLargest(
			scoredMove{5, Up},
			scoredMove{5, Diagonal},
			scoredMove{5, Left},
		)
		assert.Equal(t, scoredMove{5, Up}, got)
	})

	t.Run("later equal candidate does not replace", func(t *testing.T) {
		got := firstLargest(scoredMove{3, Diagonal}, scoredMove{3, End})
		assert.Equal(t, scoredMove{3, Diagonal}, got)
	})
}

func TestSubstitutionScore(t *testing.T) {
	m := submat.NewNucleotide(5, -4)

	tests := []struct {
		name     string
		colA     []byte
		colB     []byte
		gapScore float64
		want     float64
	}{
		{"single match", []byte("A"), []byte("A"), 0, 5.0},
		{"single mismatch", []byte("A"), []byte("C"), 0, -4.0},
		{"two against one", []byte("AC"), []byte("A"), 0, 0.5},
		{"two against two", []byte("AC"), []byte("AC"), 0, 0.5},
		{"gap column free", []byte("AA"), []byte("A-"), 0, 2.5},
		{"gap column scored", []byte("AA"), []byte("A-"), 1, 3.0},
		{"gap against gap", []byte("-"), []byte("-"), 1, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SubstitutionScore(tt.colA, tt.colB, m, tt.gapScore)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}

	low := submat.NewNucleotide(1, -2)
	got, err := SubstitutionScore([]byte("AA"), []byte("A-"), low, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got, 0.0001)
}

func TestSubstitutionScoreUnknownSymbol(t *testing.T) {
	m := submat.NewNucleotide(5, -4)

	_, err := SubstitutionScore([]byte("X"), []byte("A"), m, 0)
	require.Error(t, err)

	var unknown *UnknownSymbolError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, []byte("X"), unknown.Symbols)

	_, err = SubstitutionScore([]byte("X"), []byte("J"), m, 0)
	require.Error(t, err)
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, []byte("XJ"), unknown.Symbols)
}

func TestInitMatricesGlobalPenalized(t *testing.T) {
	a := mustProfile(t, "ACG")
	b := mustProfile(t, "ACGT")
	p := Params{GapOpen: 5, GapExtend: 2, PenalizeTerminalGaps: true}

	sm, tm := InitMatrices(a, b, Global, p)
	require.Equal(t, 5, sm.Rows())
	require.Equal(t, 4, sm.Cols())

	assert.Equal(t, []float64{0, -5, -7, -9}, scoreRows(sm)[0])
	firstCol := make([]float64, sm.Rows())
	for i := range firstCol {
		firstCol[i] = sm.At(i, 0)
	}
	assert.Equal(t, []float64{0, -5, -7, -9, -11}, firstCol)

	assert.Equal(t, []Move{End, Left, Left, Left}, moveRows(tm)[0])
	for i := 1; i < tm.Rows(); i++ {
		assert.Equal(t, Up, tm.At(i, 0))
	}
	for i := 1; i < tm.Rows(); i++ {
		for j := 1; j < tm.Cols(); j++ {
			assert.Equal(t, Uninitialized, tm.At(i, j))
		}
	}
}

func TestInitMatricesGlobalFreeTerminalGaps(t *testing.T) {
	a := mustProfile(t, "ACG")
	b := mustProfile(t, "ACGT")
	p := Params{GapOpen: 5, GapExtend: 2}

	sm, tm := InitMatrices(a, b, Global, p)

	for j := 0; j < sm.Cols(); j++ {
		assert.Zero(t, sm.At(0, j))
	}
	for i := 0; i < sm.Rows(); i++ {
		assert.Zero(t, sm.At(i, 0))
	}

	// Traceback borders are identical in both global variants.
	assert.Equal(t, []Move{End, Left, Left, Left}, moveRows(tm)[0])
	for i := 1; i < tm.Rows(); i++ {
		assert.Equal(t, Up, tm.At(i, 0))
	}
}

func TestInitMatricesLocal(t *testing.T) {
	a := mustProfile(t, "ACG")
	b := mustProfile(t, "ACGT")

	sm, tm := InitMatrices(a, b, Local, Params{GapOpen: 5, GapExtend: 2})

	for i := 0; i < sm.Rows(); i++ {
		for j := 0; j < sm.Cols(); j++ {
			assert.Zero(t, sm.At(i, j))
		}
	}
	for j := 0; j < tm.Cols(); j++ {
		assert.Equal(t, End, tm.At(0, j))
	}
	for i := 0; i < tm.Rows(); i++ {
		assert.Equal(t, End, tm.At(i, 0))
	}
	for i := 1; i < tm.Rows(); i++ {
		for j := 1; j < tm.Cols(); j++ {
			assert.Equal(t, Uninitialized, tm.At(i, j))
		}
	}
}

func TestFillMatricesGlobalPenalized(t *testing.T) {
	a := mustProfile(t, "ACG")
	b := mustProfile(t, "ACGT")
	p := Params{
		GapOpen:              5,
		GapExtend:            2,
		Matrix:               submat.NewNucleotide(5, -4),
		PenalizeTerminalGaps: true,
	}

	sm, tm, err := FillMatrices(a, b, Global, p)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{
		{0, -5, -7, -9},
		{-5, 5, 0, -2},
		{-7, 0, 10, 5},
		{-9, -2, 5, 15},
		{-11, -4, 3, 10},
	}, scoreRows(sm))

	assert.Equal(t, [][]Move{
		{End, Left, Left, Left},
		{Up, Diagonal, Left, Left},
		{Up, Up, Diagonal, Left},
		{Up, Up, Up, Diagonal},
		{Up, Up, Up, Up},
	}, moveRows(tm))
}

func TestFillMatricesAveragesProfileColumns(t *testing.T) {
	// Doubling every row leaves the column means, and therefore the
	// matrices, unchanged.
	a := mustProfile(t, "ACG", "ACG")
	b := mustProfile(t, "ACGT", "ACGT")
	p := Params{
		GapOpen:              5,
		GapExtend:            2,
		Matrix:               submat.NewNucleotide(5, -4),
		PenalizeTerminalGaps: true,
	}

	sm, tm, err := FillMatrices(a, b, Global, p)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{
		{0, -5, -7, -9},
		{-5, 5, 0, -2},
		{-7, 0, 10, 5},
		{-9, -2, 5, 15},
		{-11, -4, 3, 10},
	}, scoreRows(sm))

	assert.Equal(t, Up, tm.At(4, 3))
}

func TestFillMatricesGlobalFreeTerminalGaps(t *testing.T) {
	a := mustProfile(t, "ACG")
	b := mustProfile(t, "ACGT")
	p := Params{
		GapOpen:   5,
		GapExtend: 2,
		Matrix:    submat.NewNucleotide(5, -4),
	}

	sm, tm, err := FillMatrices(a, b, Global, p)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{
		{0, 0, 0, 0},
		{0, 5, 0, 0},
		{0, 0, 10, 5},
		{0, -2, 5, 15},
		{0, 0, 3, 15},
	}, scoreRows(sm))

	res := Traceback(tm, sm, a, b, 4, 3)
	assert.Equal(t, 15.0, res.Score)
	assert.Equal(t, "ACG-", string(res.AlignedA[0]))
	assert.Equal(t, "ACGT", string(res.AlignedB[0]))
}

func TestFillMatricesLocal(t *testing.T) {
	a := mustProfile(t, "ACGT")
	b := mustProfile(t, "CG")
	p := Params{
		GapOpen:   5,
		GapExtend: 2,
		Matrix:    submat.NewNucleotide(5, -4),
	}

	sm, tm, err := FillMatrices(a, b, Local, p)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{
		{0, 0, 0, 0, 0},
		{0, 0, 5, 0, 0},
		{0, 0, 0, 10, 5},
	}, scoreRows(sm))

	// A gap move that exactly ties the zero restart loses to it, so those
	// cells re-mark as restarts.
	assert.Equal(t, [][]Move{
		{End, End, End, End, End},
		{End, End, Diagonal, End, End},
		{End, End, End, Diagonal, Left},
	}, moveRows(tm))

	row, col := sm.Argmax()
	assert.Equal(t, 2, row)
	assert.Equal(t, 3, col)

	res := Traceback(tm, sm, a, b, row, col)
	assert.Equal(t, 10.0, res.Score)
	assert.Equal(t, "CG", string(res.AlignedA[0]))
	assert.Equal(t, "CG", string(res.AlignedB[0]))
	assert.Equal(t, 1, res.StartA)
	assert.Equal(t, 0, res.StartB)
	assert.Equal(t, 2, res.ConsumedA)
	assert.Equal(t, 2, res.ConsumedB)
}

func TestFillMatricesTieOrder(t *testing.T) {
	p := Params{GapOpen: 5, GapExtend: 0.5, Matrix: submat.NewNucleotide(5, -4)}

	t.Run("leftward gap wins a diagonal tie", func(t *testing.T) {
		a := mustProfile(t, "GG")
		b := mustProfile(t, "G")

		sm, tm, err := FillMatrices(a, b, Global, p)
		require.NoError(t, err)

		// At (1,2) the free trailing leftward gap and the diagonal match
		// both score 5.
		require.Equal(t, 5.0, sm.At(1, 2))
		assert.Equal(t, Left, tm.At(1, 2))

		res := Traceback(tm, sm, a, b, 1, 2)
		assert.Equal(t, 5.0, res.Score)
		assert.Equal(t, "GG", string(res.AlignedA[0]))
		assert.Equal(t, "G-", string(res.AlignedB[0]))
	})

	t.Run("diagonal wins an upward gap tie", func(t *testing.T) {
		a := mustProfile(t, "A")
		b := mustProfile(t, "AA")

		sm, tm, err := FillMatrices(a, b, Global, p)
		require.NoError(t, err)

		// At (2,1) the diagonal match and the free trailing upward gap
		// both score 5.
		require.Equal(t, 5.0, sm.At(2, 1))
		assert.Equal(t, Diagonal, tm.At(2, 1))
	})
}

func TestFillMatricesUnknownSymbol(t *testing.T) {
	a := mustProfile(t, "AWG")
	b := mustProfile(t, "ACGT")
	p := Params{
		GapOpen:   5,
		GapExtend: 2,
		Matrix:    submat.NewNucleotide(5, -4),
	}

	sm, tm, err := FillMatrices(a, b, Global, p)
	require.Error(t, err)
	assert.Nil(t, sm)
	assert.Nil(t, tm)

	var unknown *UnknownSymbolError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, []byte("W"), unknown.Symbols)
}

func TestTracebackGlobal(t *testing.T) {
	a := mustProfile(t, "ACG")
	b := mustProfile(t, "ACGT")
	p := Params{
		GapOpen:              5,
		GapExtend:            2,
		Matrix:               submat.NewNucleotide(5, -4),
		PenalizeTerminalGaps: true,
	}

	sm, tm, err := FillMatrices(a, b, Global, p)
	require.NoError(t, err)

	res := Traceback(tm, sm, a, b, sm.Rows()-1, sm.Cols()-1)
	assert.Equal(t, 10.0, res.Score)
	assert.Equal(t, "ACG-", string(res.AlignedA[0]))
	assert.Equal(t, "ACGT", string(res.AlignedB[0]))
	assert.Equal(t, 0, res.StartA)
	assert.Equal(t, 0, res.StartB)
	assert.Equal(t, 3, res.ConsumedA)
	assert.Equal(t, 4, res.ConsumedB)
}

func TestTracebackScoreComesFromStartCell(t *testing.T) {
	a := mustProfile(t, "ACG")
	b := mustProfile(t, "ACGT")
	p := Params{
		GapOpen:              5,
		GapExtend:            2,
		Matrix:               submat.NewNucleotide(5, -4),
		PenalizeTerminalGaps: true,
	}

	sm, tm, err := FillMatrices(a, b, Global, p)
	require.NoError(t, err)

	// Force the walk to stop two steps in, with a different score at the
	// stop cell. The reported score must still come from the start cell,
	// not from where the walk ended.
	tm.Set(2, 2, End)
	sm.Set(2, 2, 7)

	res := Traceback(tm, sm, a, b, 4, 3)
	assert.Equal(t, 10.0, res.Score)
	assert.Equal(t, "G-", string(res.AlignedA[0]))
	assert.Equal(t, "GT", string(res.AlignedB[0]))
	assert.Equal(t, 2, res.StartA)
	assert.Equal(t, 2, res.StartB)
	assert.Equal(t, 1, res.ConsumedA)
	assert.Equal(t, 2, res.ConsumedB)
}

func TestTracebackProfileRows(t *testing.T) {
	a := mustProfile(t, "ACG", "ACG")
	b := mustProfile(t, "ACGT")
	p := Params{
		GapOpen:              5,
		GapExtend:            2,
		Matrix:               submat.NewNucleotide(5, -4),
		PenalizeTerminalGaps: true,
	}

	sm, tm, err := FillMatrices(a, b, Global, p)
	require.NoError(t, err)

	res := Traceback(tm, sm, a, b, sm.Rows()-1, sm.Cols()-1)
	require.Len(t, res.AlignedA, 2)
	require.Len(t, res.AlignedB, 1)

	// Gap columns are inserted in lockstep across all rows of a profile.
	assert.Equal(t, string(res.AlignedA[0]), string(res.AlignedA[1]))
	assert.Len(t, res.AlignedA[0], len(res.AlignedB[0]))
}

func TestGlobalAlignProtein(t *testing.T) {
	a := mustProfile(t, "HEAGAWGHEE")
	b := mustProfile(t, "PAWHEAE")
	p := Params{
		GapOpen:   10,
		GapExtend: 5,
		Matrix:    submat.Blosum50(),
	}

	sm, tm, err := FillMatrices(a, b, Global, p)
	require.NoError(t, err)

	res := Traceback(tm, sm, a, b, sm.Rows()-1, sm.Cols()-1)
	assert.Equal(t, 23.0, res.Score)
	assert.Equal(t, "HEAGAWGHEE-", string(res.AlignedA[0]))
	assert.Equal(t, "---PAW-HEAE", string(res.AlignedB[0]))
	assert.Equal(t, 0, res.StartA)
	assert.Equal(t, 0, res.StartB)
}

func TestLocalAlignProtein(t *testing.T) {
	a := mustProfile(t, "HEAGAWGHEE")
	b := mustProfile(t, "PAWHEAE")
	p := Params{
		GapOpen:   10,
		GapExtend: 5,
		Matrix:    submat.Blosum50(),
	}

	sm, tm, err := FillMatrices(a, b, Local, p)
	require.NoError(t, err)

	row, col := sm.Argmax()
	res := Traceback(tm, sm, a, b, row, col)
	assert.Equal(t, 26.0, res.Score)
	assert.Equal(t, "AWGHE", string(res.AlignedA[0]))
	assert.Equal(t, "AW-HE", string(res.AlignedB[0]))
	assert.Equal(t, 4, res.StartA)
	assert.Equal(t, 1, res.StartB)
	assert.Equal(t, 5, res.ConsumedA)
	assert.Equal(t, 4, res.ConsumedB)
}

func TestScoreMatrixArgmaxFirstTie(t *testing.T) {
	sm := NewScoreMatrix(2, 2)
	sm.Set(0, 1, 7)
	sm.Set(1, 0, 7)

	row, col := sm.Argmax()
	assert.Equal(t, 0, row)
	assert.Equal(t, 1, col)
}

func TestScoreOnlyMatchesFullFill(t *testing.T) {
	nt := submat.NewNucleotide(5, -4)

	tests := []struct {
		name string
		a    string
		b    string
		mode Mode
		p    Params
		want float64
	}{
		{
			name: "global penalized",
			a:    "ACG", b: "ACGT",
			mode: Global,
			p:    Params{GapOpen: 5, GapExtend: 2, Matrix: nt, PenalizeTerminalGaps: true},
			want: 10.0,
		},
		{
			name: "global free terminal gaps",
			a:    "ACG", b: "ACGT",
			mode: Global,
			p:    Params{GapOpen: 5, GapExtend: 2, Matrix: nt},
			want: 15.0,
		},
		{
			name: "local",
			a:    "ACGT", b: "CG",
			mode: Local,
			p:    Params{GapOpen: 5, GapExtend: 2, Matrix: nt},
			want: 10.0,
		},
		{
			name: "global nucleotide",
			a:    "GACCTTGACCAGGTACC", b: "GAACTTTGACGTAAC",
			mode: Global,
			p:    Params{GapOpen: 5, GapExtend: 0.5, Matrix: nt},
			want: 41.0,
		},
		{
			name: "global protein",
			a:    "HEAGAWGHEE", b: "PAWHEAE",
			mode: Global,
			p:    Params{GapOpen: 10, GapExtend: 5, Matrix: submat.Blosum50()},
			want: 23.0,
		},
		{
			name: "local protein",
			a:    "HEAGAWGHEE", b: "PAWHEAE",
			mode: Local,
			p:    Params{GapOpen: 10, GapExtend: 5, Matrix: submat.Blosum50()},
			want: 26.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScoreOnly(mustProfile(t, tt.a), mustProfile(t, tt.b), tt.mode, tt.p)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestScoreOnlyUnknownSymbol(t *testing.T) {
	_, err := ScoreOnly(
		mustProfile(t, "AWG"),
		mustProfile(t, "ACGT"),
		Global,
		Params{GapOpen: 5, GapExtend: 2, Matrix: submat.NewNucleotide(5, -4)},
	)
	require.Error(t, err)

	var unknown *UnknownSymbolError
	assert.ErrorAs(t, err, &unknown)
}

func benchProfiles(b *testing.B) (*sequence.Profile, *sequence.Profile) {
	b.Helper()

	s1 := ""
	s2 := ""
	for i := 0; i < 250; i++ {
		s1 += "ACGT"
		s2 += "AGCT"
	}
	return mustProfile(b, s1), mustProfile(b, s2)
}

func BenchmarkFillMatricesGlobal(b *testing.B) {
	pa, pb := benchProfiles(b)
	p := Params{GapOpen: 5, GapExtend: 2, Matrix: submat.NewNucleotide(2, -3), PenalizeTerminalGaps: true}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = FillMatrices(pa, pb, Global, p)
	}
}

func BenchmarkFillMatricesLocal(b *testing.B) {
	pa, pb := benchProfiles(b)
	p := Params{GapOpen: 5, GapExtend: 2, Matrix: submat.NewNucleotide(2, -3)}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = FillMatrices(pa, pb, Local, p)
	}
}

func BenchmarkScoreOnly(b *testing.B) {
	pa, pb := benchProfiles(b)
	p := Params{GapOpen: 5, GapExtend: 2, Matrix: submat.NewNucleotide(2, -3), PenalizeTerminalGaps: true}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ScoreOnly(pa, pb, Global, p)
	}
}
