package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"time"

	"github.com/leapstack-labs/arffkit/internal/watch"
	"github.com/leapstack-labs/arffkit/pkg/arff"
	"github.com/spf13/cobra"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-describe an ARFF file every time it changes",
		Long: `Describe an ARFF file, then describe it again after every save until
interrupted with Ctrl-C. Parse errors are reported and watching continues.`,
		Example: `  arffkit watch iris.arff`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runWatch(ctx, NewCommandContext(cmd), args[0])
		},
	}

	return cmd
}

func runWatch(ctx context.Context, c *CommandContext, path string) error {
	r := c.Renderer
	opts := watch.Options{
		Parse:    c.Cfg.ParseOptions(c.Logger),
		Encoding: c.Cfg.Encoding,
		Logger:   c.Logger,
	}

	err := watch.Watch(ctx, path, opts, func(doc *arff.Document, err error) {
		r.Muted(time.Now().Format(time.TimeOnly) + " " + path)
		if err != nil {
			r.Error(err.Error())
			return
		}
		if err := renderDescribe(c, doc); err != nil {
			r.Error(err.Error())
		}
		r.Println()
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
