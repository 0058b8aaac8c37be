package service

import (
	"testing"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"
)

func TestCleanContentForIndex(t *testing.T) {
	s := &searchService{sanitizer: bluemonday.StrictPolicy()}

	t.Run("strips embedded markup", func(t *testing.T) {
		got := s.cleanContentForIndex(`<p>Servo wiring</p><div>step one</div><script>alert(1)</script>`)
		assert.Equal(t, "Servo wiring step one", got)
	})

	t.Run("block tags become word boundaries", func(t *testing.T) {
		got := s.cleanContentForIndex("first line<br>second line</p>third")
		assert.Equal(t, "first line second line third", got)
	})

	t.Run("unescapes entities", func(t *testing.T) {
		got := s.cleanContentForIndex("resistance &amp; voltage &gt; 5V")
		assert.Equal(t, "resistance & voltage > 5V", got)
	})

	t.Run("normalizes whitespace", func(t *testing.T) {
		got := s.cleanContentForIndex("gear   ratio\n\n\ttable")
		assert.Equal(t, "gear ratio table", got)
	})

	t.Run("plain markdown text survives", func(t *testing.T) {
		got := s.cleanContentForIndex("## Assembly\n\nAttach the *bracket* to the chassis.")
		assert.Equal(t, "## Assembly Attach the *bracket* to the chassis.", got)
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		assert.Equal(t, "", s.cleanContentForIndex(""))
	})
}
