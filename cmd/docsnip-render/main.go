// Command docsnip-render prints a snippet from a YAML description read from
// a file or stdin.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"

	"github.com/shhac/docsnip/internal/domain"
	apperrors "github.com/shhac/docsnip/internal/errors"
	"github.com/shhac/docsnip/internal/logging"
	"github.com/shhac/docsnip/internal/render"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func kindNames() string {
	names := make([]string, 0, len(domain.Kinds()))
	for _, k := range domain.Kinds() {
		names = append(names, string(k))
	}
	return strings.Join(names, "|")
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "docsnip-render",
		Usage:     "Render a documentation snippet from YAML",
		ArgsUsage: "<" + kindNames() + ">",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "Read YAML from `PATH` instead of stdin"},
			&cli.BoolFlag{Name: "debug", Usage: "Log debug output to stderr", Sources: cli.EnvVars("DOCSNIP_DEBUG")},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger := logging.NewConsoleLogger(cmd.ErrWriter, cmd.Bool("debug"))

			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected one snippet kind (%s)", kindNames())
			}
			kind, err := domain.ParseKind(cmd.Args().First())
			if err != nil {
				return err
			}

			in, closeInput, err := openInput(cmd.String("file"), cmd.Reader)
			if err != nil {
				return err
			}
			defer closeInput()

			logger.Debug("rendering snippet", slog.String("kind", string(kind)), slog.String("file", cmd.String("file")))

			out, err := render.Render(kind, in)
			if err != nil {
				var verrs apperrors.ValidationErrors
				if errors.As(err, &verrs) {
					for _, v := range verrs {
						fmt.Fprintln(cmd.ErrWriter, v.Error())
					}
					return fmt.Errorf("%d invalid field(s): %w", len(verrs), apperrors.ErrInvalidInput)
				}
				return err
			}

			_, err = fmt.Fprintln(cmd.Writer, out)
			return err
		},
	}
}

// openInput returns the named file, or stdin when path is empty or "-".
func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
