package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-config-stamper/internal/app"
	"github.com/MKhiriev/go-config-stamper/internal/config"
	"github.com/MKhiriev/go-config-stamper/internal/environ"
	"github.com/MKhiriev/go-config-stamper/internal/logger"
	"github.com/MKhiriev/go-config-stamper/internal/service"
	"github.com/MKhiriev/go-config-stamper/internal/store"
	"github.com/MKhiriev/go-config-stamper/models"
)

// reportedError marks an error that was already logged by the command.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func newRootCmd(env environ.Bindings, info models.AppBuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   app.AppName + " [flags] <file> [clientId] [tenantId] [url] [keyName] [guid] [emails] [publicPem] [privatePem]",
		Short: "Stamp environment values into a JSON configuration file",
		Long: `Reads the JSON object in <file>, sets valueClientId, valueTenantId, valueUrl,
valueKeyName, valueGuid, valueEmails, valuePublicPem and valuePrivatePem from
the environment variables of the same names and writes the file back in place.

Unset variables remove their key. The optional positional values are accepted
but ignored unless --args-fallback is given.

Flags must come before <file>. Everything after <file> is taken as a
positional value, so values that start with a dash (PEM keys) are never read
as flags.`,
		Version:       info.String(),
		Args:          cobra.RangeArgs(1, 1+len(models.Fields)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, env)
		},
	}

	config.RegisterFlags(cmd.Flags())
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func run(cmd *cobra.Command, args []string, env environ.Bindings) error {
	cfg, err := config.GetStructuredConfig(cmd.Flags(), env.Map())
	if err != nil {
		log := logger.NewLogger(app.AppName, cmd.ErrOrStderr())
		log.Error().Err(err).Msg(app.MsgInvalidConfig)
		return reportedError{err}
	}

	level, _ := logger.ParseLevel(cfg.Log.Level)
	log := logger.New(app.AppName, cmd.ErrOrStderr(), cfg.Log.Format, level)

	fileStore := store.NewFileStore(cfg.Stamp.AtomicWrite(), log)
	services := service.NewServices(fileStore, *cfg, models.NewArguments(args[1:]), log)

	if err = services.StamperService.Stamp(cmd.Context(), args[0], env); err != nil {
		log.Error().Err(err).Msg(app.MsgStampFailed)
		return reportedError{err}
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), app.MsgValuesReplaced)
	return err
}

// execute runs cmd and returns the process exit code. Errors the command did
// not log itself (argument and flag errors) are logged here.
func execute(ctx context.Context, cmd *cobra.Command) int {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var reported reportedError
	if !errors.As(err, &reported) {
		log := logger.NewLogger(app.AppName, cmd.ErrOrStderr())
		log.Error().Err(err).Msg(app.MsgInvalidInvocation)
	}

	return 1
}
