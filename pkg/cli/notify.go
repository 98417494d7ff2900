package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/herald/pkg/cli/config"
	"github.com/m-mizutani/herald/pkg/domain/model"
	"github.com/m-mizutani/herald/pkg/infra/bitbucket"
	"github.com/m-mizutani/herald/pkg/infra/memory"
	"github.com/m-mizutani/herald/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdNotify() *cli.Command {
	var (
		srcCfg    config.Sources
		bbCfg     config.Bitbucket
		eventPath string
	)

	flags := append(srcCfg.Flags(), bbCfg.Flags()...)
	flags = append(flags, &cli.StringFlag{
		Name:        "event",
		Usage:       "Path to a build event JSON file (\"-\" for stdin)",
		Value:       "-",
		Destination: &eventPath,
		Sources:     cli.EnvVars("HERALD_EVENT"),
	})

	return &cli.Command{
		Name:  "notify",
		Usage: "Send one build status for a build event, e.g. from a CI post stage",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			event, err := readEvent(eventPath)
			if err != nil {
				return err
			}

			resolver, err := srcCfg.Configure(&bbCfg)
			if err != nil {
				return err
			}

			notifyUC := usecase.NewNotify(
				resolver,
				memory.NewRevisionStore(),
				bitbucket.NewFactory(),
				resolver,
				memory.NewMarkerStore(),
			)

			logger.Info("Dispatching one-shot notification",
				"build", event.Build.Identity(),
				"result", string(event.Build.Result),
			)

			if event.Build.Result.Terminal() {
				return notifyUC.OnCompleted(ctx, event)
			}
			return notifyUC.OnCheckout(ctx, event)
		},
	}
}

func readEvent(path string) (*model.BuildEvent, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open event file", goerr.V("path", path))
		}
		defer f.Close()
		r = f
	}

	var event model.BuildEvent
	if err := json.NewDecoder(r).Decode(&event); err != nil {
		return nil, goerr.Wrap(err, "failed to decode build event")
	}
	return &event, nil
}
