package catalog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	layout := DefaultLayout()
	border := "+-" + strings.Repeat("-", 25) + "-+-" + strings.Repeat("-", 15) + "-+-" + strings.Repeat("-", 14) + "-+"

	t.Run("empty catalog writes nothing", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, Catalog{}, layout))
		assert.Empty(t, buf.String())

		require.NoError(t, Render(&buf, nil, layout))
		assert.Empty(t, buf.String())
	})

	t.Run("single product", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, Catalog{{Name: "bread", Shop: "Market1", Cost: 2.5}}, layout))

		header := "| " + pad(9, "Product", 9) + " | " + pad(5, "Shop", 6) + " | " + pad(5, "Cost", 5) + " |"
		dataRow := "| " + pad(10, "bread", 10) + " | " + pad(4, "Market1", 4) + " | " + pad(5, "2.5", 6) + " |"

		expected := strings.Join([]string{border, header, border, dataRow, border}, "\n") + "\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("one row per product in order", func(t *testing.T) {
		c := Catalog{
			{Name: "first", Shop: "A", Cost: 1},
			{Name: "second", Shop: "B", Cost: 2},
			{Name: "third", Shop: "A", Cost: 3},
		}

		var buf bytes.Buffer
		require.NoError(t, Render(&buf, c, layout))

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		// border, header, border, then row+border per product
		require.Len(t, lines, 3+2*len(c))

		for i, p := range c {
			rowLine := lines[3+2*i]
			assert.Contains(t, rowLine, p.Name)
			assert.Equal(t, border, lines[4+2*i])
		}
		assert.Equal(t, 1, strings.Count(buf.String(), "Product"))
	})

	t.Run("wide characters are centred by display width", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, Catalog{{Name: "面包", Shop: "Лавка", Cost: 3}}, layout))

		lines := strings.Split(buf.String(), "\n")
		assert.Equal(t, "| "+pad(10, "面包", 11)+" | "+pad(5, "Лавка", 5)+" | "+pad(6, "3", 7)+" |", lines[3])
	})

	t.Run("overlong text is not truncated", func(t *testing.T) {
		long := strings.Repeat("x", 40)
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, Catalog{{Name: long, Shop: "A", Cost: 1}}, layout))
		assert.Contains(t, buf.String(), "| "+long+" |")
	})

	t.Run("custom layout", func(t *testing.T) {
		custom := Layout{Headers: [3]string{"Товар", "Магазин", "Стоимость"}, Widths: [3]int{10, 10, 10}}
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, Catalog{{Name: "a", Shop: "b", Cost: 1}}, custom))

		lines := strings.Split(buf.String(), "\n")
		assert.Equal(t, "+-"+strings.Repeat("-", 10)+"-+-"+strings.Repeat("-", 10)+"-+-"+strings.Repeat("-", 10)+"-+", lines[0])
		assert.Equal(t, "| "+pad(2, "Товар", 3)+" | "+pad(1, "Магазин", 2)+" | "+pad(0, "Стоимость", 1)+" |", lines[1])
	})
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "2.5", FormatCost(2.5))
	assert.Equal(t, "3", FormatCost(3))
	assert.Equal(t, "0", FormatCost(0))
	assert.Equal(t, "-3.75", FormatCost(-3.75))
	assert.Equal(t, "1000000000", FormatCost(1e9))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func pad(left int, s string, right int) string {
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
