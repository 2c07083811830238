package cli

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/diff-findings/pkg/controller/diff"
	"github.com/urfave/cli/v3"
)

type Runner struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	LDFlags *LDFlags
	LogE    *logrus.Entry
	FS      afero.Fs
}

type LDFlags struct {
	Version string
	Commit  string
	Date    string
}

var ErrUsage = errors.New("usage: diff-findings <old report> <new report>")

func (r *Runner) Run(ctx context.Context, args ...string) error {
	ldFlags := r.LDFlags
	if ldFlags == nil {
		ldFlags = &LDFlags{}
	}
	cmd := &cli.Command{
		Name:  "diff-findings",
		Usage: "Output findings of a new report which don't exist in an old report",
		Description: `diff-findings compares two reports of a linter such as cppcheck and outputs findings of the new report
which have no similar finding in the old report.

$ diff-findings old.txt new.txt

A finding starts with a line "<file>:<line number>:" and continues until the next such line.
Findings which only moved to another line or changed a few characters are treated as known.
`,
		ArgsUsage:       "<old report> <new report>",
		Version:         ldFlags.Version + " (" + ldFlags.Commit + ")",
		HideHelpCommand: true,
		Writer:          r.Stdout,
		ErrWriter:       r.Stderr,
		Reader:          r.Stdin,
		Action:          r.action,
	}
	return cmd.Run(ctx, args) //nolint:wrapcheck
}

func (r *Runner) action(ctx context.Context, c *cli.Command) error {
	args := c.Args().Slice()
	if len(args) != 2 { //nolint:mnd
		return ErrUsage
	}
	fs := r.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}
	ctrl := diff.New(fs, r.Stdout, &diff.Param{
		OldReportPath: args[0],
		NewReportPath: args[1],
	})
	return ctrl.Run(ctx, r.LogE) //nolint:wrapcheck
}
