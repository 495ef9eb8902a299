package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/livebud/cli"
	"github.com/livebud/color"
	"github.com/matthewmueller/lmtranslate"
	"github.com/matthewmueller/lmtranslate/internal/provision"
	"github.com/matthewmueller/lmtranslate/providers/openai"
	"github.com/matthewmueller/lmtranslate/sandbox/local"
)

const defaultBaseURL = "http://localhost:1234"

// Exit statuses
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// Provisioner makes sure the client library is available
type Provisioner interface {
	Ensure(ctx context.Context) error
}

func New(log *slog.Logger) *CLI {
	return &CLI{
		log:    log,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Provisioner: provision.New(log, local.New("."), os.Stderr,
			provision.Module("github.com/openai/openai-go",
				"go", "get", "github.com/openai/openai-go@v1.12.0",
			),
		),
	}
}

type CLI struct {
	log         *slog.Logger
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	Provisioner Provisioner
	HTTPClient  *http.Client
}

// Run provisions, parses and dispatches, returning the process exit status
func (c *CLI) Run(ctx context.Context, args ...string) int {
	if err := c.Provisioner.Ensure(ctx); err != nil {
		fmt.Fprintf(c.Stderr, "error: %v\n", err)
		return exitFailure
	}
	err := c.Parse(ctx, args...)
	if err == nil {
		return exitOK
	}
	var failure *lmtranslate.Failure
	var opErr *operationError
	switch {
	case errors.As(err, &failure):
		fmt.Fprintln(c.Stderr, failure.Error())
		return exitFailure
	case errors.Is(err, lmtranslate.ErrEmptyInput):
		fmt.Fprintln(c.Stderr, "error: the text to translate is empty.")
		return exitFailure
	case errors.As(err, &opErr):
		fmt.Fprintf(c.Stderr, "error: %v\n", opErr.err)
		return exitFailure
	default:
		// Anything that didn't come out of an operation is a parse error
		fmt.Fprintf(c.Stderr, "error: %v\n", err)
		fmt.Fprintln(c.Stderr, color.Dim("run `lmtranslate -h` for usage"))
		return exitUsage
	}
}

var errMissingCommand = errors.New("cli: missing command, expected list-models or translate")

// operationError marks errors returned by a command after parsing succeeded
type operationError struct {
	err error
}

func (e *operationError) Error() string { return e.err.Error() }
func (e *operationError) Unwrap() error { return e.err }

func operation(err error) error {
	if err == nil {
		return nil
	}
	return &operationError{err}
}

func (c *CLI) Parse(ctx context.Context, args ...string) error {
	cli := cli.New("lmtranslate", "translate English to Japanese with a local inference server")
	cli.Run(func(ctx context.Context) error {
		return errMissingCommand
	})

	{ // $ lmtranslate list-models
		in := new(ListModels)
		cli := cli.Command("list-models", "print the available models as a JSON array")
		cli.Flag("base-url", "base url of the inference server").String(&in.BaseURL).Default(defaultBaseURL)
		cli.Run(func(ctx context.Context) error {
			return operation(c.ListModels(ctx, in))
		})
	}

	{ // $ lmtranslate translate
		in := new(Translate)
		cli := cli.Command("translate", "translate English text to Japanese")
		cli.Flag("model", "model to translate with").String(&in.Model)
		cli.Flag("text", "text to translate, read from stdin when omitted").Optional().String(&in.Text)
		cli.Flag("base-url", "base url of the inference server").String(&in.BaseURL).Default(defaultBaseURL)
		cli.Run(func(ctx context.Context) error {
			return operation(c.Translate(ctx, in))
		})
	}

	return cli.Parse(ctx, args...)
}

func (c *CLI) provider(baseURL string) *openai.Client {
	var options []openai.Option
	if c.HTTPClient != nil {
		options = append(options, openai.WithHTTPClient(c.HTTPClient))
	}
	return openai.New(c.log, baseURL, options...)
}

type ListModels struct {
	BaseURL string
}

// ListModels prints the server's models as a single-line JSON array
func (c *CLI) ListModels(ctx context.Context, in *ListModels) error {
	ids, err := lmtranslate.ListModels(ctx, c.provider(in.BaseURL), in.BaseURL)
	if err != nil {
		return err
	}
	out, err := encodeList(ids)
	if err != nil {
		return fmt.Errorf("cli: encoding models: %w", err)
	}
	fmt.Fprintln(c.Stdout, out)
	return nil
}

type Translate struct {
	BaseURL string
	Model   string
	Text    *string
}

var errRead = errors.New("cli: unable to read stdin")

// Translate prints the Japanese translation of the source text
func (c *CLI) Translate(ctx context.Context, in *Translate) error {
	text, err := c.source(in.Text)
	if err != nil {
		return err
	}
	translated, err := lmtranslate.Translate(ctx, c.provider(in.BaseURL), in.BaseURL, in.Model, text)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.Stdout, translated)
	return nil
}

// source returns --text when it has content, otherwise all of stdin
func (c *CLI) source(text *string) (string, error) {
	if text != nil && strings.TrimSpace(*text) != "" {
		return *text, nil
	}
	data, err := io.ReadAll(c.Stdin)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errRead, err)
	}
	return string(data), nil
}
