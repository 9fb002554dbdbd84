package plugins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/internal/adapters/plugins"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestDefaultForType_NoneRegistered(t *testing.T) {
	r := plugins.NewRegistry()
	p, err := r.DefaultForType(domain.KindTemplates)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestDefaultForType_SingleDefault(t *testing.T) {
	r := plugins.NewRegistry()
	r.Register(domain.KindTemplates, &plugins.Passthrough{
		PluginName: "handlebars",
		Kinds:      []domain.TreeKind{domain.KindTemplates},
		Default:    true,
	})
	r.Register(domain.KindTemplates, &plugins.Passthrough{
		PluginName: "secondary",
		Kinds:      []domain.TreeKind{domain.KindTemplates},
	})

	p, err := r.DefaultForType(domain.KindTemplates)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "handlebars", p.Name())
}

func TestDefaultForType_TwoDefaultsListsBothNames(t *testing.T) {
	r := plugins.NewRegistry()
	r.Register(domain.KindTemplates, &plugins.Passthrough{
		PluginName: "handlebars",
		Kinds:      []domain.TreeKind{domain.KindTemplates},
		Default:    true,
	})
	r.Register(domain.KindTemplates, &plugins.Passthrough{
		PluginName: "mustache",
		Kinds:      []domain.TreeKind{domain.KindTemplates},
		Default:    true,
	})

	_, err := r.DefaultForType(domain.KindTemplates)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateDefaultPlugin)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	meta := zErr.Metadata()
	assert.Equal(t, "handlebars", meta["first"])
	assert.Equal(t, "mustache", meta["second"])
}

func TestExtensionsForType_UnionDeduplicated(t *testing.T) {
	r := plugins.NewRegistry()
	r.Register(domain.KindStyles, &plugins.Passthrough{
		PluginName: "css",
		Exts:       []string{"css"},
	})
	r.Register(domain.KindStyles, &plugins.Passthrough{
		PluginName: "sass",
		Exts:       []string{"scss", "css"},
	})

	assert.Equal(t, []string{"css", "scss"}, r.ExtensionsForType(domain.KindStyles))
}

func TestNewDefaultRegistry_PassthroughDefaults(t *testing.T) {
	r := plugins.NewDefaultRegistry()

	for _, kind := range []domain.TreeKind{domain.KindApp, domain.KindTemplates, domain.KindStyles} {
		p, err := r.DefaultForType(kind)
		require.NoError(t, err)
		require.NotNil(t, p, "kind %s", kind)

		in := domain.NewSourceTree("app", true)
		out, err := p.Process(in)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	}
}
