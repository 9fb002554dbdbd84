package commands_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/cmd/stitch/commands"
	"go.trai.ch/stitch/internal/adapters/plugins"
	"go.trai.ch/stitch/internal/app"
	"go.trai.ch/stitch/internal/build"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/stitch/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig() *domain.Config {
	return &domain.Config{
		Environment: "development",
		Trees:       map[string]string{"app": "app"},
		OutputPaths: domain.OutputPaths{
			Vendor: domain.VendorPaths{JS: "assets/vendor.js", CSS: "assets/vendor.css"},
		},
	}
}

func newTestApp(t *testing.T, ctrl *gomock.Controller,
	loader *mocks.MockConfigLoader,
	discoverer *mocks.MockAddonDiscoverer,
	materializer *mocks.MockTreeMaterializer,
) *app.App {
	t.Helper()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	telemetry := mocks.NewMockTelemetry(ctrl)
	telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			v := mocks.NewMockVertex(ctrl)
			v.EXPECT().Complete(gomock.Any())
			return ctx, v
		}).AnyTimes()

	return app.New(loader, discoverer, plugins.NewDefaultRegistry(),
		materializer, telemetry, log)
}

func TestBuild_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockDiscoverer := mocks.NewMockAddonDiscoverer(ctrl)
	mockMaterializer := mocks.NewMockTreeMaterializer(ctrl)

	a := newTestApp(t, ctrl, mockLoader, mockDiscoverer, mockMaterializer)
	cli := commands.New(a)

	root := t.TempDir()
	mockLoader.EXPECT().Load(root).Return(testConfig(), nil).Times(1)
	mockDiscoverer.EXPECT().Discover(root, "development").Return(nil, nil).Times(1)
	mockMaterializer.EXPECT().
		Materialize(gomock.Any(), gomock.Any(), filepath.Join(root, app.DefaultOutputDir)).
		Return(nil).Times(1)

	cli.SetArgs([]string{"build", root})

	err := cli.Execute(context.Background())
	assert.NoError(t, err)
}

func TestBuild_EnvironmentAndOutputFlags(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockDiscoverer := mocks.NewMockAddonDiscoverer(ctrl)
	mockMaterializer := mocks.NewMockTreeMaterializer(ctrl)

	a := newTestApp(t, ctrl, mockLoader, mockDiscoverer, mockMaterializer)
	cli := commands.New(a)

	root := t.TempDir()
	mockLoader.EXPECT().Load(root).Return(testConfig(), nil).Times(1)
	mockDiscoverer.EXPECT().Discover(root, "production").Return(nil, nil).Times(1)
	mockMaterializer.EXPECT().
		Materialize(gomock.Any(), gomock.Any(), filepath.Join(root, "out")).
		Return(nil).Times(1)

	cli.SetArgs([]string{"build", root, "-e", "production", "-o", "out"})

	err := cli.Execute(context.Background())
	assert.NoError(t, err)
}

func TestBuild_MaterializeFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockDiscoverer := mocks.NewMockAddonDiscoverer(ctrl)
	mockMaterializer := mocks.NewMockTreeMaterializer(ctrl)

	a := newTestApp(t, ctrl, mockLoader, mockDiscoverer, mockMaterializer)
	cli := commands.New(a)

	root := t.TempDir()
	mockLoader.EXPECT().Load(root).Return(testConfig(), nil).Times(1)
	mockDiscoverer.EXPECT().Discover(root, "development").Return(nil, nil).Times(1)
	mockMaterializer.EXPECT().
		Materialize(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("disk full")).Times(1)

	cli.SetArgs([]string{"build", root})

	err := cli.Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrBuildExecutionFailed)
}

func TestVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := newTestApp(t, ctrl,
		mocks.NewMockConfigLoader(ctrl),
		mocks.NewMockAddonDiscoverer(ctrl),
		mocks.NewMockTreeMaterializer(ctrl))
	cli := commands.New(a)

	// The version command writes to stdout directly
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))

	require.NoError(t, w.Close())
	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)

	assert.Equal(t, "stitch version "+build.Version+"\n", buf.String())
}
