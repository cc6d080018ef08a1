package overlay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/overlay/core/bundle"
	"github.com/dmitrymomot/overlay/core/node"
	"github.com/dmitrymomot/overlay/core/overlay"
)

// errorCollector is a sink capturing the error batch of a render call.
type errorCollector struct {
	errs []error
}

func (ec *errorCollector) sink(err error) {
	ec.errs = append(ec.errs, err)
}

func testBundle(t *testing.T) *bundle.Bundle {
	t.Helper()
	b := bundle.MustNew("en")
	require.NoError(t, b.ParseTOML([]byte(`
plain = "Save"

[greeting]
value = "Hello, {$name}!"
[greeting.attributes]
title = "Greeting tooltip"

[hint]
[hint.attributes]
title = "T"
"aria-label" = "Hint label"

[link]
value = "Click <a>here</a> now"

[broken]
value = "Hi {$name}, {$missing}!"
`)))
	return b
}

func testContext(t *testing.T, ec *errorCollector, extra ...overlay.Option) *overlay.Context {
	t.Helper()
	opts := append([]overlay.Option{
		overlay.WithBundles(testBundle(t)),
		overlay.WithErrorSink(ec.sink),
	}, extra...)
	ctx, err := overlay.New(opts...)
	require.NoError(t, err)
	return ctx
}

func tpl(n *node.Node) []*node.Node {
	return []*node.Node{n}
}

func TestRenderValidation(t *testing.T) {
	t.Parallel()

	t.Run("nil context is fatal", func(t *testing.T) {
		var c *overlay.Context
		out, err := c.Render(overlay.Request{ID: "plain"})
		assert.ErrorIs(t, err, overlay.ErrMissingContext)
		assert.Nil(t, out)
	})

	t.Run("more than one template node is fatal", func(t *testing.T) {
		var ec errorCollector
		c := testContext(t, &ec)

		out, err := c.Render(overlay.Request{
			ID:       "plain",
			Template: []*node.Node{node.Element("p", nil), node.Element("p", nil)},
		})
		assert.ErrorIs(t, err, overlay.ErrInvalidChildCount)
		assert.Nil(t, out)
	})
}

func TestRenderResolution(t *testing.T) {
	t.Parallel()

	t.Run("missing id reports and falls back to template", func(t *testing.T) {
		var ec errorCollector
		c := testContext(t, &ec)
		template := node.Element("p", nil, node.Text("fallback"))

		out, err := c.Render(overlay.Request{Template: tpl(template)})
		require.NoError(t, err)
		assert.Equal(t, "<p>fallback</p>", out.String())
		require.Len(t, ec.errs, 1)
		assert.ErrorIs(t, ec.errs[0], overlay.ErrNoMessageID)
	})

	t.Run("no bundles reports NoBundlesLoaded", func(t *testing.T) {
		var ec errorCollector
		c, err := overlay.New(overlay.WithErrorSink(ec.sink))
		require.NoError(t, err)

		out, err := c.Render(overlay.Request{ID: "plain", Template: tpl(node.Element("p", nil))})
		require.NoError(t, err)
		assert.Equal(t, "<p></p>", out.String())
		require.Len(t, ec.errs, 1)
		assert.ErrorIs(t, ec.errs[0], overlay.ErrNoBundlesLoaded)
	})

	t.Run("unknown id reports MessageNotFound with the id", func(t *testing.T) {
		var ec errorCollector
		c := testContext(t, &ec)
		template := node.Element("p", nil, node.Text("fallback"))

		out, err := c.Render(overlay.Request{ID: "nope", Template: tpl(template)})
		require.NoError(t, err)
		assert.Equal(t, "<p>fallback</p>", out.String())
		require.Len(t, ec.errs, 1)
		assert.ErrorIs(t, ec.errs[0], overlay.ErrMessageNotFound)
		assert.Contains(t, ec.errs[0].Error(), `"nope"`)
	})

	t.Run("fallback without template renders nothing", func(t *testing.T) {
		var ec errorCollector
		c := testContext(t, &ec)

		out, err := c.Render(overlay.Request{ID: "nope"})
		require.NoError(t, err)
		assert.Nil(t, out)
		require.Len(t, ec.errs, 1)
	})

	t.Run("fallback clone does not alias the template", func(t *testing.T) {
		var ec errorCollector
		c := testContext(t, &ec)
		template := node.Element("p", nil, node.Text("fallback"))

		out, err := c.Render(overlay.Request{ID: "nope", Template: tpl(template)})
		require.NoError(t, err)
		assert.NotSame(t, template, out)
		assert.NotSame(t, template.Children[0], out.Children[0])
	})

	t.Run("chain resolves in order", func(t *testing.T) {
		first := bundle.MustNew("pl")
		require.NoError(t, first.AddMessage(bundle.NewMessage("plain", "Zapisz", nil)))

		var ec errorCollector
		c, err := overlay.New(
			overlay.WithBundles(first, testBundle(t)),
			overlay.WithErrorSink(ec.sink),
		)
		require.NoError(t, err)

		out, err := c.Render(overlay.Request{ID: "plain", Template: tpl(node.Element("span", nil))})
		require.NoError(t, err)
		assert.Equal(t, "<span>Zapisz</span>", out.String())

		// "greeting" only exists in the second bundle.
		out, err = c.Render(overlay.Request{
			ID:       "greeting",
			Template: tpl(node.Element("span", nil)),
			Vars:     map[string]any{"name": "Ada"},
		})
		require.NoError(t, err)
		assert.Equal(t, "<span>Hello, Ada!</span>", out.String())
		assert.Empty(t, ec.errs)
	})
}

func TestRenderFlatPath(t *testing.T) {
	t.Parallel()

	t.Run("formats the value as sole content", func(t *testing.T) {
		var ec errorCollector
		c := testContext(t, &ec)

		out, err := c.Render(overlay.Request{
			ID:       "greeting",
			Template: tpl(node.Element("p", node.Props{"class": "msg"}, node.Text("old"))),
			Vars:     map[string]any{"name": "Ada"},
		})
		require.NoError(t, err)
		assert.Equal(t, `<p class="msg">Hello, Ada!</p>`, out.String())
		assert.Empty(t, ec.errs)
	})

	t.Run("no template yields a bare text node", func(t *testing.T) {
		var ec errorCollector
		c := testContext(t, &ec)

		out, err := c.Render(overlay.Request{
			ID:   "greeting",
			Vars: map[string]any{"name": "Ada"},
		})
		require.NoError(t, err)
		require.NotNil(t, out)
		assert.Equal(t, node.KindText, out.Kind)
		assert.Equal(t, "Hello, Ada!", out.Text)
	})

	t.Run("text template is replaced by the value", func(t *testing.T) {
		var ec errorCollector
		c := testContext(t, &ec)

		out, err := c.Render(overlay.Request{
			ID:       "plain",
			Template: tpl(node.Text("fallback")),
		})
		require.NoError(t, err)
		assert.Equal(t, "Save", out.Text)
	})

	t.Run("text template survives an attributes-only message", func(t *testing.T) {
		var ec errorCollector
		c := testContext(t, &ec)

		out, err := c.Render(overlay.Request{
			ID:       "hint",
			Template: tpl(node.Text("fallback")),
		})
		require.NoError(t, err)
		assert.Equal(t, "fallback", out.Text)
	})

	t.Run("void template takes props only", func(t *testing.T) {
		var ec errorCollector
		c := testContext(t, &ec)

		out, err := c.Render(overlay.Request{
			ID:       "greeting",
			Template: tpl(node.Element("input", node.Props{"type": "text"})),
			Vars:     map[string]any{"name": "Ada"},
			Attrs:    map[string]bool{"title": true},
		})
		require.NoError(t, err)
		assert.Equal(t, `<input title="Greeting tooltip" type="text">`, out.String())
		assert.Empty(t, out.Children)
	})

	t.Run("attributes-only message keeps developer children", func(t *testing.T) {
		var ec errorCollector
		c := testContext(t, &ec)

		out, err := c.Render(overlay.Request{
			ID:       "hint",
			Template: tpl(node.Element("p", nil, node.Text("own content"))),
			Attrs:    map[string]bool{"title": true},
		})
		require.NoError(t, err)
		assert.Equal(t, `<p title="T">own content</p>`, out.String())
	})

	t.Run("formatting errors keep best-effort text and are reported", func(t *testing.T) {
		var ec errorCollector
		c := testContext(t, &ec)

		out, err := c.Render(overlay.Request{
			ID:       "broken",
			Template: tpl(node.Element("p", nil)),
			Vars:     map[string]any{"name": "Ada"},
		})
		require.NoError(t, err)
		assert.Equal(t, "<p>Hi Ada, {$missing}!</p>", out.String())
		require.Len(t, ec.errs, 1)
	})

	t.Run("template is never mutated", func(t *testing.T) {
		var ec errorCollector
		c := testContext(t, &ec)
		template := node.Element("p", node.Props{"class": "msg"}, node.Text("old"))

		_, err := c.Render(overlay.Request{
			ID:       "greeting",
			Template: tpl(template),
			Vars:     map[string]any{"name": "Ada"},
			Attrs:    map[string]bool{"title": true},
		})
		require.NoError(t, err)
		assert.Equal(t, node.Props{"class": "msg"}, template.Props)
		require.Len(t, template.Children, 1)
		assert.Equal(t, "old", template.Children[0].Text)
	})
}

func TestRenderAttributes(t *testing.T) {
	t.Parallel()

	t.Run("attributes are opt-in", func(t *testing.T) {
		var ec errorCollector
		c := testContext(t, &ec)

		out, err := c.Render(overlay.Request{
			ID:       "greeting",
			Template: tpl(node.Element("p", nil)),
			Vars:     map[string]any{"name": "Ada"},
		})
		require.NoError(t, err)
		assert.NotContains(t, out.String(), "title")
	})

	t.Run("only allowed and defined names localize", func(t *testing.T) {
		var ec errorCollector
		c := testContext(t, &ec)

		out, err := c.Render(overlay.Request{
			ID:       "hint",
			Template: tpl(node.Element("p", nil)),
			Attrs: map[string]bool{
				"title":      true,
				"aria-label": false, // explicitly not allowed
				"onclick":    true,  // allowed but not in the message
			},
		})
		require.NoError(t, err)
		assert.Equal(t, `<p title="T"></p>`, out.String())
	})

	t.Run("localized attribute overrides the template prop", func(t *testing.T) {
		var ec errorCollector
		c := testContext(t, &ec)

		out, err := c.Render(overlay.Request{
			ID:       "hint",
			Template: tpl(node.Element("p", node.Props{"title": "dev", "class": "x"})),
			Attrs:    map[string]bool{"title": true},
		})
		require.NoError(t, err)
		assert.Equal(t, `<p class="x" title="T"></p>`, out.String())
	})
}

func TestRenderIdempotence(t *testing.T) {
	t.Parallel()

	var ec1, ec2 errorCollector
	c1 := testContext(t, &ec1)
	c2 := testContext(t, &ec2)

	req := overlay.Request{
		ID:       "broken",
		Template: tpl(node.Element("p", nil)),
		Vars:     map[string]any{"name": "Ada"},
	}

	out1, err := c1.Render(req)
	require.NoError(t, err)
	out2, err := c1.Render(req)
	require.NoError(t, err)
	out3, err := c2.Render(req)
	require.NoError(t, err)

	assert.Equal(t, out1.String(), out2.String())
	assert.Equal(t, out1.String(), out3.String())
	// Same error batch per call: two renders on c1, one on c2.
	assert.Len(t, ec1.errs, 2)
	assert.Len(t, ec2.errs, 1)
	assert.Equal(t, ec1.errs[0].Error(), ec2.errs[0].Error())
}

func TestContextOptions(t *testing.T) {
	t.Parallel()

	t.Run("rejects nil bundle entries", func(t *testing.T) {
		_, err := overlay.New(overlay.WithBundles(nil))
		assert.Error(t, err)
	})

	t.Run("rejects nil sink and parser", func(t *testing.T) {
		_, err := overlay.New(overlay.WithErrorSink(nil))
		assert.Error(t, err)
		_, err = overlay.New(overlay.WithMarkupParser(nil))
		assert.Error(t, err)
	})

	t.Run("rejects empty void tag table", func(t *testing.T) {
		_, err := overlay.New(overlay.WithVoidTags(nil))
		assert.Error(t, err)
	})

	t.Run("HasMessage walks the chain", func(t *testing.T) {
		var ec errorCollector
		c := testContext(t, &ec)
		assert.True(t, c.HasMessage("plain"))
		assert.False(t, c.HasMessage("nope"))

		var nilCtx *overlay.Context
		assert.False(t, nilCtx.HasMessage("plain"))
		assert.Nil(t, nilCtx.Bundles())
	})
}
