package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/pipeline"
	"github.com/matzehuels/tagcloud/pkg/server"
	"github.com/matzehuels/tagcloud/pkg/session"
)

// serveCommand creates the serve command for the HTTP session API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		sessionTTL time.Duration
		noCache    bool
		lf         layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP layout session API",
		Long: `Run the HTTP layout session API.

Each session owns one layout. Clients create a session, post sizes to it one
at a time and fetch the layout as JSON, PNG or SVG. Idle sessions expire
after --session-ttl.

Render settings (fill, stroke, background, scale) come from the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.pipelineOptions()
			if err := lf.apply(cmd, &opts); err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Server.Addr
			}
			if !cmd.Flags().Changed("session-ttl") {
				ttl, err := c.Config.sessionTTL()
				if err != nil {
					return err
				}
				sessionTTL = ttl
			}
			if sessionTTL <= 0 {
				return errors.New(errors.ErrCodeInvalidConfig, "session-ttl must be positive, got %s", sessionTTL)
			}
			return c.runServe(cmd.Context(), opts, addr, sessionTTL, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().DurationVar(&sessionTTL, "session-ttl", session.DefaultTTL, "idle time before a session expires")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	lf.register(cmd)

	return cmd
}

// runServe validates options, starts the session sweeper and blocks serving
// until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, opts pipeline.Options, addr string, ttl time.Duration, noCache bool) error {
	if err := opts.ValidateForLayout(); err != nil {
		return err
	}
	renderOpts := opts
	if err := renderOpts.ValidateForRender(); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	logger := loggerFromContext(ctx)
	store := session.NewMemoryStore(ttl, opts.CloudOptions()...)
	go store.Run(ctx, session.DefaultCleanupInterval, func(n int) {
		logger.Debug("expired sessions", "count", n)
	})

	srv := server.New(store, runner,
		server.WithRenderOptions(renderOpts),
		server.WithLogger(logger),
	)

	printSuccess("Serving layout sessions")
	printKeyValue("Address", StyleLink.Render("http://"+addr))
	printKeyValue("Session TTL", ttl.String())
	printNewline()

	return srv.ListenAndServe(ctx, addr)
}
