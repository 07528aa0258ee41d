package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/aegee-muenchen/dirsync/pkg/cli/config"
	"github.com/aegee-muenchen/dirsync/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"
)

func cmdMembersSync() *cli.Command {
	var (
		rosterCfg    config.Roster
		directoryCfg config.Directory
		policyCfg    config.Policy
	)

	flags := joinFlags(
		rosterCfg.Flags(),
		directoryCfg.Flags(),
		policyCfg.Flags(),
	)

	return &cli.Command{
		Name:  "members-sync",
		Usage: "Report roster members missing from the members group, and group members unknown to the roster",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := rosterCfg.Validate(); err != nil {
				return err
			}
			policy, err := policyCfg.Configure()
			if err != nil {
				return err
			}

			logger.Info("Starting members sync",
				slog.Any("roster", rosterCfg),
				slog.Any("directory", directoryCfg),
				slog.Any("policy", policy),
			)

			directoryClient, err := directoryCfg.Configure(ctx)
			if err != nil {
				return err
			}

			uc := usecase.NewReconcile(
				rosterCfg.Configure(),
				directoryClient,
				policy,
				rosterCfg.Account(),
			)
			result, err := uc.MembersSync(ctx)
			if err != nil {
				return err
			}

			newPrinter(os.Stdout).MembersSync(result, policy)
			return nil
		},
	}
}
