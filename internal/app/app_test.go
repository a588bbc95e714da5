package app_test

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.faultline.dev/faultline/internal/adapters/logger"
	"go.faultline.dev/faultline/internal/adapters/telemetry"
	"go.faultline.dev/faultline/internal/app"
	"go.faultline.dev/faultline/internal/core/domain"
	"go.faultline.dev/faultline/internal/core/ports/mocks"
	"go.faultline.dev/faultline/internal/engine"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newApp(t *testing.T, loader *mocks.MockExperimentLoader, provider *mocks.MockActivityProvider) *app.App {
	t.Helper()
	log := logger.NewWithWriter(io.Discard)
	eng := engine.New(provider, log, telemetry.NewNoop())
	return app.New(loader, eng, log)
}

func TestApp_Run_WritesJournal(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockExperimentLoader(ctrl)
	provider := mocks.NewMockActivityProvider(ctrl)

	exp := &domain.Experiment{
		Title:      "disk pressure",
		Activities: []domain.Activity{{Name: "fill-tmp"}},
	}
	loader.EXPECT().Load("experiment.yaml").Return(exp, nil)
	provider.EXPECT().Validate(gomock.Any()).Return(nil)
	provider.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Outcome{ExitCode: 0, Stdout: "done\n"}, nil)

	journalPath := filepath.Join(t.TempDir(), "journal.json")
	err := newApp(t, loader, provider).Run(context.Background(), app.RunOptions{
		ExperimentPath: "experiment.yaml",
		JournalPath:    journalPath,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(journalPath)
	require.NoError(t, err)

	var journal domain.Journal
	require.NoError(t, json.Unmarshal(data, &journal))
	require.Equal(t, "disk pressure", journal.Title)
	require.Equal(t, domain.RunStatusCompleted, journal.Status)
	require.Len(t, journal.Activities, 1)
}

func TestApp_Run_JournalWrittenOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockExperimentLoader(ctrl)
	provider := mocks.NewMockActivityProvider(ctrl)

	exp := &domain.Experiment{
		Title:      "failing",
		Activities: []domain.Activity{{Name: "boom"}},
	}
	loader.EXPECT().Load(gomock.Any()).Return(exp, nil)
	provider.EXPECT().Validate(gomock.Any()).Return(nil)
	provider.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Outcome{}, zerr.Wrap(domain.ErrFailedActivity, "process activity failed with return code 2 (expected 0)"))

	journalPath := filepath.Join(t.TempDir(), "journal.json")
	err := newApp(t, loader, provider).Run(context.Background(), app.RunOptions{
		ExperimentPath: "experiment.yaml",
		JournalPath:    journalPath,
	})
	require.ErrorIs(t, err, domain.ErrExperimentFailed)

	var journal domain.Journal
	data, err := os.ReadFile(journalPath)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &journal))
	require.Equal(t, domain.RunStatusFailed, journal.Status)
}

func TestApp_Run_VarsMergeIntoConfiguration(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockExperimentLoader(ctrl)
	provider := mocks.NewMockActivityProvider(ctrl)

	exp := &domain.Experiment{
		Title:         "vars",
		Configuration: domain.Configuration{"region": "us-east-1", "keep": "yes"},
		Activities:    []domain.Activity{{Name: "a"}},
	}
	loader.EXPECT().Load(gomock.Any()).Return(exp, nil)
	provider.EXPECT().Validate(gomock.Any()).Return(nil)
	provider.EXPECT().Run(gomock.Any(), gomock.Any(),
		domain.Configuration{"region": "eu-west-1", "keep": "yes"}, gomock.Any()).
		Return(domain.Outcome{}, nil)

	err := newApp(t, loader, provider).Run(context.Background(), app.RunOptions{
		ExperimentPath: "experiment.yaml",
		Vars:           map[string]string{"region": "eu-west-1"},
	})
	require.NoError(t, err)
}

func TestApp_Run_LoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockExperimentLoader(ctrl)
	provider := mocks.NewMockActivityProvider(ctrl)

	loader.EXPECT().Load(gomock.Any()).Return(nil, zerr.New("failed to read experiment file"))

	err := newApp(t, loader, provider).Run(context.Background(), app.RunOptions{
		ExperimentPath: "missing.yaml",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load experiment")
}

func TestApp_Validate(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockExperimentLoader(ctrl)
	provider := mocks.NewMockActivityProvider(ctrl)

	exp := &domain.Experiment{
		Title:      "ok",
		Activities: []domain.Activity{{Name: "a"}},
	}
	loader.EXPECT().Load("experiment.yaml").Return(exp, nil)
	provider.EXPECT().Validate(gomock.Any()).Return(nil)

	require.NoError(t, newApp(t, loader, provider).Validate(context.Background(), "experiment.yaml"))
}

func TestApp_Validate_PropagatesInvalidActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockExperimentLoader(ctrl)
	provider := mocks.NewMockActivityProvider(ctrl)

	exp := &domain.Experiment{
		Title:      "bad",
		Activities: []domain.Activity{{Name: "broken"}},
	}
	loader.EXPECT().Load(gomock.Any()).Return(exp, nil)
	provider.EXPECT().Validate(gomock.Any()).
		Return(zerr.Wrap(domain.ErrInvalidActivity, "a process activity must have a path"))

	err := newApp(t, loader, provider).Validate(context.Background(), "experiment.yaml")
	require.ErrorIs(t, err, domain.ErrInvalidActivity)
}
