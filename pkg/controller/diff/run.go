package diff

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/diff-findings/pkg/finding"
)

func (c *Controller) Run(_ context.Context, logE *logrus.Entry) error {
	// Both reports are parsed before anything is written.
	known, err := finding.ReadFile(c.fs, c.param.OldReportPath)
	if err != nil {
		return fmt.Errorf("read the old report: %w", err)
	}
	findings, err := finding.ReadFile(c.fs, c.param.NewReportPath)
	if err != nil {
		return fmt.Errorf("read the new report: %w", err)
	}
	logE.WithFields(logrus.Fields{
		"old_report":   c.param.OldReportPath,
		"new_report":   c.param.NewReportPath,
		"old_findings": len(known),
		"new_findings": len(findings),
	}).Debug("read reports")

	for _, f := range findings {
		closest, distance, ok := finding.Closest(f, known)
		if ok {
			logE.WithFields(logrus.Fields{
				"finding":  firstLine(f),
				"known":    firstLine(closest),
				"distance": distance,
			}).Debug("ignore a known finding")
			continue
		}
		if _, err := io.WriteString(c.stdout, f); err != nil {
			return fmt.Errorf("output a finding: %w", err)
		}
	}
	return nil
}

func firstLine(record string) string {
	line, _, _ := strings.Cut(record, "\n")
	return strings.TrimSuffix(line, "\r")
}
