package puzzle

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		numbers []int
		target  int
		msg     string
	}{
		{[]int{25, 50, 75, 100, 8, 9}, 952, ""},
		{[]int{3, 4}, 7, ""},
		{[]int{3}, 7, "at least 2 numbers"},
		{nil, 7, "at least 2 numbers"},
		{[]int{3, 0}, 7, "numbers[1] must be positive"},
		{[]int{-3, 4}, 7, "numbers[0] must be positive"},
		{[]int{3, 4}, 0, "target must be positive"},
		{[]int{3, 4}, -7, "target must be positive"},
	}
	for _, test := range tests {
		_, err := New(test.numbers, test.target)
		if test.msg == "" {
			assert.NoError(t, err, "%v -> %d", test.numbers, test.target)
		} else if assert.Error(t, err, "%v -> %d", test.numbers, test.target) {
			assert.Contains(t, err.Error(), test.msg)
		}
	}
}

func TestString(t *testing.T) {
	p := Puzzle{Numbers: []int{25, 50, 8}, Target: 952}
	assert.Equal(t, "[25, 50, 8] -> 952", p.String())
	assert.Equal(t, "[]", FormatNumbers(nil))
}

func TestParse(t *testing.T) {
	p, err := Parse(strings.NewReader("numbers: [25, 50, 75, 100, 8, 9]\ntarget: 952\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{25, 50, 75, 100, 8, 9}, p.Numbers)
	assert.Equal(t, 952, p.Target)
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"",
		"numbers: [1]\ntarget: 3\n",
		"numbers: [1, 2]\ntarget: 0\n",
		"numbers: [1, 2]\ntarget: 3\nlimit: 30\n",
		"numbers: one, two\n",
	}
	for _, input := range inputs {
		_, err := Parse(strings.NewReader(input))
		assert.Error(t, err, "parsing %q should fail", input)
	}
}

func TestWriteLoad(t *testing.T) {
	p := &Puzzle{Numbers: []int{100, 75, 3, 3, 1, 7}, Target: 512}
	var buf bytes.Buffer
	require.NoError(t, p.Write(&buf))
	assert.Equal(t, "numbers: [100, 75, 3, 3, 1, 7]\ntarget: 512\n", buf.String())

	path := filepath.Join(t.TempDir(), "puzzle.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, p, loaded)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	for nbLarge := 0; nbLarge <= len(Large); nbLarge++ {
		g := NewGenerator(uint64(nbLarge))
		for i := 0; i < 50; i++ {
			p, err := g.Generate(nbLarge)
			require.NoError(t, err)
			require.Len(t, p.Numbers, Size)
			assert.GreaterOrEqual(t, p.Target, MinTarget)
			assert.LessOrEqual(t, p.Target, MaxTarget)
			for j, n := range p.Numbers {
				if j < nbLarge {
					assert.Contains(t, Large, n)
				} else {
					assert.GreaterOrEqual(t, n, 1)
					assert.LessOrEqual(t, n, 10)
				}
			}
			assertAtMost(t, p.Numbers[:nbLarge], 1)
			assertAtMost(t, p.Numbers[nbLarge:], 2)
		}
	}
}

// assertAtMost checks no value appears more than limit times in numbers.
func assertAtMost(t *testing.T, numbers []int, limit int) {
	t.Helper()
	count := make(map[int]int)
	for _, n := range numbers {
		count[n]++
		assert.LessOrEqual(t, count[n], limit, "%d drawn too many times in %v", n, numbers)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p1, err := NewGenerator(42).Generate(2)
	require.NoError(t, err)
	p2, err := NewGenerator(42).Generate(2)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}

func TestGenerateInvalid(t *testing.T) {
	g := NewGenerator(1)
	_, err := g.Generate(-1)
	assert.Error(t, err)
	_, err = g.Generate(5)
	assert.Error(t, err)
}
