// Package diff implements the core flow of diff-findings.
// It reads an old and a new report, filters out the findings of the new report
// which already exist in the old one, and writes the remaining findings as is.
package diff

import (
	"io"

	"github.com/spf13/afero"
)

type Controller struct {
	fs     afero.Fs
	stdout io.Writer
	param  *Param
}

type Param struct {
	OldReportPath string
	NewReportPath string
}

func New(fs afero.Fs, stdout io.Writer, param *Param) *Controller {
	return &Controller{
		fs:     fs,
		stdout: stdout,
		param:  param,
	}
}
