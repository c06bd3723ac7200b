package rain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRing(t *testing.T) {
	r := newRing(3)
	require.Equal(t, 3, r.size())
	for age := 0; age < 3; age++ {
		assert.Equal(t, blank, r.at(age))
	}

	r.push(cell{r: 'a'})
	r.push(cell{r: 'b'})
	assert.Equal(t, 'b', r.at(0).r)
	assert.Equal(t, 'a', r.at(1).r)
	assert.Equal(t, ' ', r.at(2).r)

	r.push(cell{r: 'c'})
	r.push(cell{r: 'd'})
	assert.Equal(t, 'd', r.at(0).r)
	assert.Equal(t, 'c', r.at(1).r)
	assert.Equal(t, 'b', r.at(2).r)
	assert.Equal(t, 'd', r.at(3).r, "ages wrap around the ring")
}

func TestRing_MinimumSize(t *testing.T) {
	r := newRing(0)
	require.Equal(t, 1, r.size())
	r.push(cell{r: 'x'})
	assert.Equal(t, 'x', r.at(0).r)
}

func newTestColumn(size int) *column {
	return newColumn(size, Options{Color: ColorGreen, HighlightColor: ColorWhite, HighlightThreshold: 2})
}

func TestColumnTick_Idle(t *testing.T) {
	c := newTestColumn(4)
	c.visible.push(cell{r: 'z'})
	c.tick(1)
	assert.Equal(t, blank, c.visible.at(0))
	assert.Equal(t, 'z', c.visible.at(1).r)
}

func TestColumnTick_WritesLineWithHighlight(t *testing.T) {
	c := newTestColumn(8)
	c.addLine("héllo")

	for i := 0; i < 5; i++ {
		c.tick(2)
	}
	want := []cell{
		{'o', ColorGreen},
		{'l', ColorGreen},
		{'l', ColorGreen},
		{'é', ColorWhite},
		{'h', ColorWhite},
	}
	for age, w := range want {
		assert.Equal(t, w, c.visible.at(age), "age %d", age)
	}

	// line done: the next tick pushes the separator spaces
	c.tick(2)
	assert.Empty(t, c.pending)
	assert.Equal(t, blank, c.visible.at(0))
	assert.Equal(t, blank, c.visible.at(1))
	assert.Equal(t, 'o', c.visible.at(2).r)
}

func TestColumnTick_ZeroSpaces(t *testing.T) {
	c := newTestColumn(4)
	c.addLine("a")
	c.addLine("b")

	c.tick(0) // a
	c.tick(0) // end of a, nothing pushed
	c.tick(0) // b

	assert.Equal(t, 'b', c.visible.at(0).r)
	assert.Equal(t, 'a', c.visible.at(1).r)
}

func TestColumnTick_EmptyLine(t *testing.T) {
	c := newTestColumn(4)
	c.addLine("")
	c.tick(1)
	assert.Empty(t, c.pending)
	assert.Equal(t, blank, c.visible.at(0))
}

func TestColumnUnwritten(t *testing.T) {
	c := newTestColumn(4)
	c.addLine("abc")
	c.addLine("def")
	c.tick(1)

	assert.Equal(t, []string{"bc", "def"}, c.unwritten())
}
