// Command landing serves the BYD CARE Distribution landing page and its
// contact form, and can export the page or build inquiry mailto links offline.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v2"

	"github.com/bydcare/landing/internal/config"
	"github.com/bydcare/landing/internal/content"
	"github.com/bydcare/landing/internal/domain"
	"github.com/bydcare/landing/internal/handler"
	"github.com/bydcare/landing/internal/logger"
	"github.com/bydcare/landing/internal/middleware"
	"github.com/bydcare/landing/internal/prompt"
	"github.com/bydcare/landing/internal/render"
	"github.com/bydcare/landing/internal/service"
	"github.com/bydcare/landing/internal/telemetry"
)

// Swapped in tests.
var (
	createOutput    = func(path string) (io.WriteCloser, error) { return os.Create(path) }
	newPromptDriver = prompt.NewSurveyDriver
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "landing",
		Usage: "BYD CARE Distribution landing page",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "recipient",
				Aliases: []string{"r"},
				Value:   config.DefaultRecipient,
				Usage:   "Email address inquiries are sent to",
				EnvVars: []string{"RECIPIENT"},
			},
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   config.DefaultPort,
				Usage:   "HTTP server port",
				EnvVars: []string{"PORT"},
			},
			&cli.StringFlag{
				Name:    "content",
				Usage:   "YAML file overriding the embedded page content",
				EnvVars: []string{"CONTENT_FILE"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the web server",
				Action: runServe,
			},
			{
				Name:  "render",
				Usage: "Write the landing page HTML for static hosting",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file (default: stdout)",
					},
				},
				Action: runRender,
			},
			{
				Name:  "mailto",
				Usage: "Build the inquiry mailto link for the given form values",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Contact name"},
					&cli.StringFlag{Name: "email", Usage: "Contact email"},
					&cli.StringFlag{Name: "company", Usage: "Company"},
					&cli.StringFlag{Name: "volume", Usage: "Monthly volume (units), free text"},
					&cli.StringFlag{Name: "message", Usage: "Message"},
					&cli.BoolFlag{
						Name:    "interactive",
						Aliases: []string{"i"},
						Usage:   "Prompt for each field, offering flag values as defaults",
					},
					&cli.BoolFlag{
						Name:  "decoded",
						Usage: "Also print the plain subject and body",
					},
				},
				Action: runMailto,
			},
		},
		Action: runServe,
	}
}

// loadCatalog returns the embedded catalog unless a content file is given.
func loadCatalog(path string) (*content.Catalog, error) {
	if path == "" {
		return content.Default()
	}
	return content.LoadFile(path)
}

// listenPort returns the port for serve, whether it runs as the named
// command or as the app's default action.
func listenPort(c *cli.Context) string {
	if port := c.String("port"); port != "" {
		return port
	}
	return config.DefaultPort
}

func runServe(c *cli.Context) error {
	ctx := c.Context
	port := listenPort(c)

	catalog, err := loadCatalog(c.String("content"))
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	builder, err := service.NewContactIntentBuilder(c.String("recipient"))
	if err != nil {
		return fmt.Errorf("failed to configure recipient: %w", err)
	}

	shutdownTracing, err := telemetry.Init(ctx, config.DefaultServiceName)
	if err != nil {
		return fmt.Errorf("failed to init tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			slog.Error("failed to shut down tracing", "error", err)
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	h, err := handler.New(catalog, builder, service.PlaceholderSubmitter{}, reg)
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	metrics, err := middleware.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	server := &http.Server{
		Addr: ":" + port,
		Handler: telemetry.Middleware(
			middleware.RequestID(middleware.AccessLog(metrics.Handler(mux))),
			"landing",
		),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "server_addr", "http://localhost:"+port, "recipient", builder.Recipient())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, config.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func runRender(c *cli.Context) (err error) {
	catalog, err := loadCatalog(c.String("content"))
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	builder, err := service.NewContactIntentBuilder(c.String("recipient"))
	if err != nil {
		return fmt.Errorf("failed to configure recipient: %w", err)
	}

	renderer, err := render.NewPageRenderer()
	if err != nil {
		return err
	}

	var out io.Writer = c.App.Writer
	if path := c.String("output"); path != "" {
		f, createErr := createOutput(path)
		if createErr != nil {
			return fmt.Errorf("create output file: %w", createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close output file: %w", cerr)
			}
		}()
		out = f
	}

	var form domain.ContactForm
	err = renderer.Render(out, render.View{
		Catalog:   catalog,
		Recipient: builder.Recipient(),
		Fields:    domain.ContactFields,
		Form:      form,
		Intent:    builder.Build(form),
		Year:      time.Now().Year(),
	})
	if err != nil {
		return err
	}

	slog.Debug("page rendered", "output", c.String("output"))
	return nil
}

func runMailto(c *cli.Context) error {
	builder, err := service.NewContactIntentBuilder(c.String("recipient"))
	if err != nil {
		return fmt.Errorf("failed to configure recipient: %w", err)
	}

	form := domain.ContactForm{
		Name:    c.String("name"),
		Email:   c.String("email"),
		Company: c.String("company"),
		Volume:  c.String("volume"),
		Message: c.String("message"),
	}

	if c.Bool("interactive") {
		form, err = prompt.CollectContactForm(c.Context, newPromptDriver(), form)
		if err != nil {
			return fmt.Errorf("failed to collect form: %w", err)
		}
	}

	intent := builder.Build(form)

	if c.Bool("decoded") {
		fmt.Fprintf(c.App.Writer, "Subject: %s\n\n%s\n\n", intent.Subject, intent.Body)
	}
	fmt.Fprintln(c.App.Writer, intent.MailtoURI)
	return nil
}
